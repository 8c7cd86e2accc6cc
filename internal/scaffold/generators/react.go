package generators

import (
	"github.com/quillforge/quill/internal/scaffold/model"
)

// NewReact builds the React generator.
func NewReact() *Base {
	desc := model.Descriptor{
		ID:          "react",
		Framework:   model.FrameworkReact,
		Name:        "React",
		Description: "React component and hook libraries",
		Version:     "1.0.0",
		PackageTypes: []model.PackageType{
			model.PackageTypeLibrary,
			model.PackageTypeComponent,
			model.PackageTypeHook,
		},
		RuntimeTargets: []model.RuntimeTarget{
			model.TargetBrowser,
			model.TargetNode,
			model.TargetUniversal,
		},
		RecommendedBuildTool: model.BuildToolTsup,
	}

	return New(desc, Hooks{
		Dependencies: func(cfg *model.Configuration) []model.DependencySpec {
			return []model.DependencySpec{
				model.Dep("react", "^18.3.1", model.DependencyPeer),
				model.Dep("react-dom", "^18.3.1", model.DependencyPeer),
				model.Dep("@types/react", "^18.3.5", model.DependencyDev),
				model.Dep("@types/react-dom", "^18.3.0", model.DependencyDev),
				model.Dep("@testing-library/react", "^16.0.1", model.DependencyDev),
				model.Dep("jsdom", "^25.0.0", model.DependencyDev),
			}
		},
		Files: func(cfg *model.Configuration) []model.GeneratedFileSpec {
			files := []model.GeneratedFileSpec{
				{Path: "src/index.ts", Template: "react/index.ts.tmpl"},
				{Path: "src/components/Example.tsx", Template: "react/component.tsx.tmpl"},
				{Path: "src/components/Example.test.tsx", Template: "react/component.test.tsx.tmpl"},
				{Path: "src/hooks/useExample.ts", Template: "react/hook.ts.tmpl"},
				{Path: "eslint.config.js", Template: "react/eslint.config.js.tmpl"},
			}
			files = append(files, exampleProjectFiles("react")...)
			return files
		},
		PackageExtras: func(cfg *model.Configuration) map[string]any {
			return map[string]any{
				"peerDependenciesMeta": map[string]any{
					"react-dom": map[string]any{"optional": true},
				},
			}
		},
		Validate: func(cfg *model.Configuration) []model.Issue {
			if cfg.RuntimeTarget == model.TargetNode {
				return []model.Issue{model.Warning("runtimeTarget",
					"React libraries typically target browser or universal rather than node")}
			}
			return nil
		},
	})
}

// exampleProjectFiles returns the conditional example sub-project specs a
// browser framework contributes when the configuration requests them.
func exampleProjectFiles(framework string) []model.GeneratedFileSpec {
	includeExample := func(c *model.Configuration) bool { return c.IncludeExample }
	return []model.GeneratedFileSpec{
		{Path: "example/package.json", Template: framework + "/example-package.json.tmpl", Condition: includeExample},
		{Path: "example/index.html", Template: framework + "/example-index.html.tmpl", Condition: includeExample},
	}
}
