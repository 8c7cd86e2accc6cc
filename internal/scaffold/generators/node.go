package generators

import (
	"github.com/quillforge/quill/internal/scaffold/model"
)

// NewNode builds the Node.js generator. It is the only generator supporting
// the cli package type, which adds a bin entry and an executable export
// subpath.
func NewNode() *Base {
	desc := model.Descriptor{
		ID:          "node",
		Framework:   model.FrameworkNode,
		Name:        "Node.js",
		Description: "Node.js libraries and command-line tools",
		Version:     "1.0.0",
		PackageTypes: []model.PackageType{
			model.PackageTypeLibrary,
			model.PackageTypeUtility,
			model.PackageTypeCLI,
		},
		RuntimeTargets: []model.RuntimeTarget{
			model.TargetNode,
			model.TargetUniversal,
		},
		RecommendedBuildTool: model.BuildToolTsup,
	}

	return New(desc, Hooks{
		Dependencies: func(cfg *model.Configuration) []model.DependencySpec {
			deps := []model.DependencySpec{
				model.Dep("@types/node", "^22.5.5", model.DependencyDev),
			}
			if cfg.PackageType == model.PackageTypeCLI {
				deps = append(deps, model.Dep("commander", "^12.1.0", model.DependencyRuntime))
			}
			return deps
		},
		Exports: func(cfg *model.Configuration) []model.ExportEntry {
			if cfg.PackageType != model.PackageTypeCLI {
				return nil
			}
			entry := model.ExportEntry{
				Subpath: "./cli",
				Types:   "./dist/cli.d.ts",
				Import:  "./dist/cli.js",
				Default: "./dist/cli.js",
			}
			if cfg.ModuleFormat == model.FormatDual {
				entry.Require = "./dist/cli.cjs"
			}
			return []model.ExportEntry{entry}
		},
		Files: func(cfg *model.Configuration) []model.GeneratedFileSpec {
			isCLI := func(c *model.Configuration) bool { return c.PackageType == model.PackageTypeCLI }
			return []model.GeneratedFileSpec{
				{Path: "src/index.ts", Template: "node/index.ts.tmpl"},
				{Path: "src/example.ts", Template: "node/example.ts.tmpl"},
				{Path: "src/example.test.ts", Template: "node/example.test.ts.tmpl"},
				{Path: "src/cli.ts", Template: "node/cli.ts.tmpl", Condition: isCLI},
				{Path: "eslint.config.js", Template: "node/eslint.config.js.tmpl"},
			}
		},
		PackageExtras: func(cfg *model.Configuration) map[string]any {
			extras := map[string]any{
				"engines": map[string]string{"node": ">=18"},
			}
			if cfg.PackageType == model.PackageTypeCLI {
				extras["bin"] = map[string]string{
					model.ShortName(cfg.Name): "./dist/cli.js",
				}
			}
			return extras
		},
		Validate: func(cfg *model.Configuration) []model.Issue {
			if cfg.PackageType == model.PackageTypeCLI && cfg.ModuleFormat == model.FormatCJS {
				return []model.Issue{model.Warning("moduleFormat",
					"new CLI tools are usually published as esm; cjs is supported but discouraged")}
			}
			return nil
		},
	})
}

// RegisterDefaults registers the five built-in generators on a registry.
// Called once at process start; registration order fixes the primary
// generator per framework.
func RegisterDefaults(r *Registry) {
	r.Register(NewReact())
	r.Register(NewVue())
	r.Register(NewSvelte())
	r.Register(NewVanilla())
	r.Register(NewNode())
}
