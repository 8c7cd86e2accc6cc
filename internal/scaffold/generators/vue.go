package generators

import (
	"github.com/quillforge/quill/internal/scaffold/model"
)

// NewVue builds the Vue generator.
func NewVue() *Base {
	desc := model.Descriptor{
		ID:          "vue",
		Framework:   model.FrameworkVue,
		Name:        "Vue",
		Description: "Vue 3 component and composable libraries",
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
				model.Dep("vue", "^3.5.6", model.DependencyPeer),
				model.Dep("@vue/test-utils", "^2.4.6", model.DependencyDev),
				model.Dep("vue-tsc", "^2.1.6", model.DependencyDev),
				model.Dep("@vitejs/plugin-vue", "^5.1.3", model.DependencyDev),
			}
		},
		Files: func(cfg *model.Configuration) []model.GeneratedFileSpec {
			files := []model.GeneratedFileSpec{
				{Path: "src/index.ts", Template: "vue/index.ts.tmpl"},
				{Path: "src/components/Example.vue", Template: "vue/component.vue.tmpl"},
				{Path: "src/components/Example.test.ts", Template: "vue/component.test.ts.tmpl"},
				{Path: "src/composables/useExample.ts", Template: "vue/composable.ts.tmpl"},
				{Path: "eslint.config.js", Template: "vue/eslint.config.js.tmpl"},
			}
			files = append(files, exampleProjectFiles("vue")...)
			return files
		},
		PackageExtras: func(cfg *model.Configuration) map[string]any {
			return map[string]any{
				"scripts": map[string]string{
					"typecheck": "vue-tsc --noEmit",
				},
			}
		},
		Validate: func(cfg *model.Configuration) []model.Issue {
			if cfg.PackageType == model.PackageTypeComponent && cfg.ModuleFormat == model.FormatCJS {
				return []model.Issue{model.Warning("moduleFormat",
					"Vue component libraries are usually published as ESM; cjs limits consumer tooling")}
			}
			return nil
		},
	})
}
