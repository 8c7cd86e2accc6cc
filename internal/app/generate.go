// Package app implements the quill workflows: package generation,
// configuration checking, and generator listing. The orchestrator here
// drives registered generators through validation, templating, formatting,
// and manifest synthesis.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/quillforge/quill/internal/debug"
	"github.com/quillforge/quill/internal/format"
	"github.com/quillforge/quill/internal/scaffold/generators"
	"github.com/quillforge/quill/internal/scaffold/manifest"
	"github.com/quillforge/quill/internal/scaffold/model"
	"github.com/quillforge/quill/internal/scaffold/render"
)

// GenerateOptions holds options for one package generation run.
type GenerateOptions struct {
	// Framework selects the generator via the registry's primary lookup.
	Framework model.Framework
	// Config describes the package to generate.
	Config *model.Configuration
	// DryRun walks the full pipeline without writing anything.
	DryRun bool
}

// Orchestrator runs generation against an injected registry and renderer.
type Orchestrator struct {
	registry *generators.Registry
	renderer *render.Renderer
}

// NewOrchestrator creates an orchestrator over the given registry and
// renderer.
func NewOrchestrator(registry *generators.Registry, renderer *render.Renderer) *Orchestrator {
	return &Orchestrator{registry: registry, renderer: renderer}
}

// GeneratePackage generates one package. It is one-shot and synchronous:
// it either completes or fails partway, and files written before a failure
// are reported but never rolled back. The returned result always carries a
// non-empty Error when Success is false.
func (o *Orchestrator) GeneratePackage(ctx context.Context, opts GenerateOptions) *model.GenerationResult {
	debug.DebugSection("[app] GeneratePackage workflow start")
	debug.DebugValue("[app] Framework", opts.Framework)
	debug.DebugValue("[app] Package name", opts.Config.Name)
	debug.DebugValue("[app] Output directory", opts.Config.OutputDir)
	debug.DebugValue("[app] Dry run", opts.DryRun)

	result := &model.GenerationResult{}
	cfg := opts.Config

	// Unrecognized extension flags are a caller error, caught before any
	// generator work.
	if err := validateExtensions(cfg); err != nil {
		return failed(result, err)
	}

	// Step 1: resolve the generator.
	gen, ok := o.registry.GetPrimary(opts.Framework)
	if !ok {
		return failed(result, NewGeneratorNotFoundError(
			fmt.Sprintf("no generator registered for framework %q", opts.Framework)))
	}
	desc := gen.Descriptor()
	debug.DebugValue("[app] Resolved generator", desc.ID)

	// Step 2: validate the configuration. Error-severity issues fail the
	// run before any I/O; warnings are carried into the result.
	issues := gen.Validate(cfg)
	result.Warnings = append(result.Warnings, model.Messages(issues, model.SeverityWarning)...)
	if model.HasErrors(issues) {
		msgs := model.Messages(issues, model.SeverityError)
		return failed(result, NewValidationError(
			fmt.Sprintf("invalid configuration: %s", strings.Join(msgs, "; ")), nil))
	}

	// Step 3: prepare the output directory. Pre-existing directories are
	// fine; files may be overwritten.
	if !opts.DryRun {
		if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
			return failed(result, NewWriteError(
				fmt.Sprintf("failed to create output directory %s", cfg.OutputDir), err))
		}
	}

	// Step 4: build the shared template context.
	tctx := buildContext(cfg, gen)

	// Step 5: generate files in declaration order, common before
	// framework-specific.
	for _, spec := range gen.Files(cfg) {
		if err := ctx.Err(); err != nil {
			return failed(result, NewWriteError("generation cancelled", err))
		}
		if !spec.Included(cfg) {
			debug.Debug("[app] Skipping %s (condition false)", spec.Path)
			continue
		}

		content, err := o.materialize(spec, desc.Framework, tctx)
		if err != nil {
			return failed(result, err)
		}

		formatted, ferr := format.Format(spec.Path, content)
		if ferr != nil {
			// Formatting is cosmetic; keep the raw render and move on.
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("could not format %s: %v", spec.Path, ferr))
			formatted = content
		}

		if !opts.DryRun {
			if err := writeFile(cfg.OutputDir, spec.Path, formatted); err != nil {
				return failed(result, err)
			}
		}
		result.Files = append(result.Files, spec.Path)
	}

	// Step 6: synthesize and write the manifest, always last among files.
	manifestData, err := manifest.Synthesize(cfg, gen.Dependencies(cfg), gen.Exports(cfg), gen.PackageExtras(cfg))
	if err != nil {
		return failed(result, NewWriteError("failed to synthesize package.json", err))
	}
	if !opts.DryRun {
		if err := writeFile(cfg.OutputDir, "package.json", manifestData); err != nil {
			return failed(result, err)
		}
	}
	result.Files = append(result.Files, "package.json")

	result.Success = true
	result.NextSteps = nextSteps(cfg)

	// Step 7: the post-generation hook runs after everything is
	// persisted. Its failure fails the run; written files stay on disk.
	if !opts.DryRun {
		if err := gen.PostGenerate(ctx, cfg, result); err != nil {
			result.Success = false
			result.NextSteps = nil
			return failed(result, fmt.Errorf("post-generation hook failed: %w", err))
		}
	}

	debug.Debug("[app] GeneratePackage workflow completed: %d files", len(result.Files))
	return result
}

// materialize produces the content for one file spec, rendering
// template-backed specs through the renderer with reference fallback.
func (o *Orchestrator) materialize(spec model.GeneratedFileSpec, fw model.Framework, tctx map[string]any) ([]byte, *AppError) {
	if !spec.IsTemplate() {
		return []byte(spec.Content), nil
	}

	var lastErr error
	for _, ref := range fallbackRefs(spec.Template, fw) {
		out, err := o.renderer.Render(ref, tctx)
		if err == nil {
			if ref != spec.Template {
				debug.Debug("[app] Template %s resolved via fallback %s", spec.Template, ref)
			}
			return []byte(out), nil
		}
		lastErr = err
		var notFound *render.NotFoundError
		if !errors.As(err, &notFound) {
			// Render failures other than not-found are not retried.
			return nil, NewTemplateNotFoundError(
				fmt.Sprintf("failed to render template %s", ref), err)
		}
	}
	return nil, NewTemplateNotFoundError(
		fmt.Sprintf("template %s not found (fallbacks exhausted)", spec.Template), lastErr)
}

// fallbackRefs returns the reference itself followed by the derived
// alternate forms tried when it does not resolve: the basename with a
// redundant framework-name prefix stripped, then the basename under
// common/. Template-authoring mistakes matching one of these forms are
// silently tolerated; anything else is fatal.
func fallbackRefs(ref string, fw model.Framework) []string {
	refs := []string{ref}

	dir, base := filepath.Dir(ref), filepath.Base(ref)
	if stripped, ok := strings.CutPrefix(base, string(fw)+"-"); ok {
		refs = append(refs, dir+"/"+stripped)
		base = stripped
	}
	if dir != "common" {
		refs = append(refs, "common/"+base)
	}
	return refs
}

// writeFile writes content under outputDir, creating parent directories as
// needed.
func writeFile(outputDir, relPath string, content []byte) *AppError {
	target := filepath.Join(outputDir, relPath)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return NewWriteError(fmt.Sprintf("failed to create directory for %s", relPath), err)
	}
	if err := os.WriteFile(target, content, 0o644); err != nil {
		return NewWriteError(fmt.Sprintf("failed to write %s", relPath), err)
	}
	debug.Debug("[app] Wrote %s (%d bytes)", relPath, len(content))
	return nil
}

// validateExtensions rejects extension flags outside the recognized set.
func validateExtensions(cfg *model.Configuration) *AppError {
	recognized := make(map[string]bool)
	for _, key := range model.RecognizedExtensions() {
		recognized[key] = true
	}
	for key := range cfg.Extensions {
		if !recognized[key] {
			return NewValidationError(
				fmt.Sprintf("unrecognized extension flag %q (recognized: %s)",
					key, strings.Join(model.RecognizedExtensions(), ", ")), nil)
		}
	}
	return nil
}

// failed finalizes a result with a failure message.
func failed(result *model.GenerationResult, err error) *model.GenerationResult {
	result.Success = false
	result.Error = err.Error()
	debug.Debug("[app] Generation failed: %v", err)
	return result
}
