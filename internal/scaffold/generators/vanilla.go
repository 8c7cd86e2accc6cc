package generators

import (
	"github.com/quillforge/quill/internal/scaffold/model"
)

// NewVanilla builds the framework-free TypeScript generator.
func NewVanilla() *Base {
	desc := model.Descriptor{
		ID:          "vanilla",
		Framework:   model.FrameworkVanilla,
		Name:        "Vanilla TypeScript",
		Description: "framework-free TypeScript libraries",
		Version:     "1.0.0",
		PackageTypes: []model.PackageType{
			model.PackageTypeLibrary,
			model.PackageTypeUtility,
		},
		RuntimeTargets: []model.RuntimeTarget{
			model.TargetBrowser,
			model.TargetNode,
			model.TargetUniversal,
		},
		RecommendedBuildTool: model.BuildToolTsup,
	}

	return New(desc, Hooks{
		Files: func(cfg *model.Configuration) []model.GeneratedFileSpec {
			return []model.GeneratedFileSpec{
				{Path: "src/index.ts", Template: "vanilla/index.ts.tmpl"},
				{Path: "src/example.ts", Template: "vanilla/example.ts.tmpl"},
				{Path: "src/example.test.ts", Template: "vanilla/example.test.ts.tmpl"},
				{Path: "eslint.config.js", Template: "vanilla/eslint.config.js.tmpl"},
			}
		},
	})
}
