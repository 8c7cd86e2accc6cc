package generators

import (
	"github.com/quillforge/quill/internal/scaffold/model"
)

// NewSvelte builds the Svelte generator.
func NewSvelte() *Base {
	desc := model.Descriptor{
		ID:          "svelte",
		Framework:   model.FrameworkSvelte,
		Name:        "Svelte",
		Description: "Svelte component libraries",
		Version:     "1.0.0",
		PackageTypes: []model.PackageType{
			model.PackageTypeLibrary,
			model.PackageTypeComponent,
		},
		RuntimeTargets: []model.RuntimeTarget{
			model.TargetBrowser,
			model.TargetUniversal,
		},
		RecommendedBuildTool: model.BuildToolVite,
	}

	return New(desc, Hooks{
		Dependencies: func(cfg *model.Configuration) []model.DependencySpec {
			return []model.DependencySpec{
				model.Dep("svelte", "^4.2.19", model.DependencyPeer),
				model.Dep("@sveltejs/vite-plugin-svelte", "^3.1.2", model.DependencyDev),
				model.Dep("svelte-check", "^4.0.2", model.DependencyDev),
				model.Dep("@testing-library/svelte", "^5.2.1", model.DependencyDev),
			}
		},
		Files: func(cfg *model.Configuration) []model.GeneratedFileSpec {
			files := []model.GeneratedFileSpec{
				{Path: "src/index.ts", Template: "svelte/index.ts.tmpl"},
				{Path: "src/components/Example.svelte", Template: "svelte/component.svelte.tmpl"},
				{Path: "src/components/Example.test.ts", Template: "svelte/component.test.ts.tmpl"},
				{Path: "svelte.config.js", Template: "svelte/svelte.config.js.tmpl"},
				{Path: "eslint.config.js", Template: "svelte/eslint.config.js.tmpl"},
			}
			files = append(files, exampleProjectFiles("svelte")...)
			return files
		},
		PackageExtras: func(cfg *model.Configuration) map[string]any {
			return map[string]any{
				"scripts": map[string]string{
					"typecheck": "svelte-check --tsconfig ./tsconfig.json",
				},
			}
		},
		Validate: func(cfg *model.Configuration) []model.Issue {
			if cfg.BuildTool != model.BuildToolVite {
				return []model.Issue{model.Warning("buildTool",
					"Svelte libraries are usually built with vite; other build tools need extra plugin wiring")}
			}
			return nil
		},
	})
}
