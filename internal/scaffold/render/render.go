// Package render resolves template references against a template root and
// renders them with the scaffolding helper functions. Templates compile
// once and are cached by reference string; the assets are static, so the
// cache never invalidates.
package render

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"sync"
	"text/template"

	"github.com/quillforge/quill/internal/debug"
)

//go:embed templates
var embeddedTemplates embed.FS

// TemplateRootEnv overrides the template root with a directory on disk.
// Without it the templates bundled into the binary are used.
const TemplateRootEnv = "QUILL_TEMPLATE_ROOT"

// NotFoundError reports a template reference that could not be resolved
// against the template root.
type NotFoundError struct {
	// Ref is the unresolved reference.
	Ref string
}

// Error returns the error message.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("template not found: %s", e.Ref)
}

// Renderer renders template references and inline template text.
// References are slash-separated paths relative to the template root.
type Renderer struct {
	root  fs.FS
	mu    sync.Mutex
	cache map[string]*template.Template
}

// NewRenderer creates a renderer over the discovered template root:
// the QUILL_TEMPLATE_ROOT directory when set, otherwise the embedded
// template assets.
func NewRenderer() *Renderer {
	if dir := os.Getenv(TemplateRootEnv); dir != "" {
		debug.DebugValue("[render] template root override", dir)
		return NewRendererFS(os.DirFS(dir))
	}
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		// The embed directive guarantees the directory exists.
		panic(err)
	}
	return NewRendererFS(sub)
}

// NewRendererFS creates a renderer over an explicit template root.
func NewRendererFS(root fs.FS) *Renderer {
	return &Renderer{
		root:  root,
		cache: make(map[string]*template.Template),
	}
}

// Render resolves ref against the template root and renders it with ctx.
// Returns a *NotFoundError when the reference does not resolve.
func (r *Renderer) Render(ref string, ctx any) (string, error) {
	tmpl, err := r.lookup(ref)
	if err != nil {
		return "", err
	}
	var out strings.Builder
	if err := tmpl.Execute(&out, ctx); err != nil {
		return "", fmt.Errorf("rendering %s: %w", ref, err)
	}
	return out.String(), nil
}

// RenderInline renders template text directly, without a filesystem lookup.
func (r *Renderer) RenderInline(text string, ctx any) (string, error) {
	tmpl, err := template.New("inline").Funcs(Funcs()).Parse(text)
	if err != nil {
		return "", fmt.Errorf("parsing inline template: %w", err)
	}
	var out strings.Builder
	if err := tmpl.Execute(&out, ctx); err != nil {
		return "", fmt.Errorf("rendering inline template: %w", err)
	}
	return out.String(), nil
}

// Has reports whether a reference resolves without rendering it.
func (r *Renderer) Has(ref string) bool {
	_, err := r.lookup(ref)
	return err == nil
}

// lookup returns the compiled template for ref, compiling and caching it on
// first use.
func (r *Renderer) lookup(ref string) (*template.Template, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if tmpl, ok := r.cache[ref]; ok {
		return tmpl, nil
	}

	body, err := fs.ReadFile(r.root, ref)
	if err != nil {
		return nil, &NotFoundError{Ref: ref}
	}
	tmpl, err := template.New(ref).Funcs(Funcs()).Parse(string(body))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", ref, err)
	}
	r.cache[ref] = tmpl
	return tmpl, nil
}
