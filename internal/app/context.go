package app

import (
	"time"

	"github.com/quillforge/quill/internal/scaffold/generators"
	"github.com/quillforge/quill/internal/scaffold/manifest"
	"github.com/quillforge/quill/internal/scaffold/model"
)

// buildContext assembles the single template context shared by every file
// rendered in one generation run: the raw configuration fields, the
// rendering timestamp, the dependency sets grouped by kind, the export
// entries, the manifest extras, and the generator identity.
func buildContext(cfg *model.Configuration, gen generators.Generator) map[string]any {
	desc := gen.Descriptor()
	groups := manifest.GroupDependencies(gen.Dependencies(cfg))

	now := time.Now()
	return map[string]any{
		"Name":           cfg.Name,
		"ShortName":      model.ShortName(cfg.Name),
		"Description":    cfg.Description,
		"PackageType":    string(cfg.PackageType),
		"RuntimeTarget":  string(cfg.RuntimeTarget),
		"ModuleFormat":   string(cfg.ModuleFormat),
		"BuildTool":      string(cfg.BuildTool),
		"PackageManager": string(cfg.PackageManager),
		"License":        cfg.License,
		"Author":         cfg.Author,
		"RepositoryURL":  cfg.RepositoryURL,
		"IncludeExample": cfg.IncludeExample,
		"Extensions":     cfg.Extensions,

		"Framework":   string(desc.Framework),
		"GeneratorID": desc.ID,
		"Timestamp":   now.Format(time.RFC3339),
		"Year":        now.Year(),

		"Dependencies":         groups[model.DependencyRuntime],
		"DevDependencies":      groups[model.DependencyDev],
		"PeerDependencies":     groups[model.DependencyPeer],
		"OptionalDependencies": groups[model.DependencyOptional],
		"Exports":              gen.Exports(cfg),
		"Extras":               gen.PackageExtras(cfg),
	}
}
