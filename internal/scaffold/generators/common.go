package generators

import (
	"github.com/quillforge/quill/internal/scaffold/model"
)

// buildToolDeps maps each build tool to its own dev dependency.
var buildToolDeps = map[model.BuildTool]model.DependencySpec{
	model.BuildToolTsup:    model.Dep("tsup", "^8.3.0", model.DependencyDev),
	model.BuildToolVite:    model.Dep("vite", "^5.4.8", model.DependencyDev),
	model.BuildToolRollup:  model.Dep("rollup", "^4.21.0", model.DependencyDev),
	model.BuildToolEsbuild: model.Dep("esbuild", "^0.23.1", model.DependencyDev),
}

// buildToolConfigFiles maps each build tool to its config file spec.
var buildToolConfigFiles = map[model.BuildTool]model.GeneratedFileSpec{
	model.BuildToolTsup:    {Path: "tsup.config.ts", Template: "common/tsup.config.ts.tmpl"},
	model.BuildToolVite:    {Path: "vite.config.ts", Template: "common/vite.config.ts.tmpl"},
	model.BuildToolRollup:  {Path: "rollup.config.mjs", Template: "common/rollup.config.mjs.tmpl"},
	model.BuildToolEsbuild: {Path: "esbuild.config.mjs", Template: "common/esbuild.config.mjs.tmpl"},
}

// commonDependencies returns the dependency set every generated package
// carries: the TypeScript toolchain, the configured build tool, and the
// test runner.
func commonDependencies(cfg *model.Configuration) []model.DependencySpec {
	deps := []model.DependencySpec{
		model.Dep("typescript", "^5.6.2", model.DependencyDev),
		model.Dep("vitest", "^2.1.1", model.DependencyDev),
	}
	if tool, ok := buildToolDeps[cfg.BuildTool]; ok {
		deps = append(deps, tool)
	}
	return deps
}

// commonFiles returns the file specs every generated package shares:
// manifest-adjacent files, the build-tool config selected by the
// configuration, the test-runner config, and the extension-flag driven
// conditional files.
func commonFiles(cfg *model.Configuration) []model.GeneratedFileSpec {
	files := []model.GeneratedFileSpec{
		{Path: ".gitignore", Template: "common/gitignore.tmpl"},
		{Path: "README.md", Template: "common/readme.md.tmpl"},
		{
			Path:      "LICENSE",
			Template:  "common/license.tmpl",
			Condition: func(c *model.Configuration) bool { return c.License != "" },
		},
		{Path: "tsconfig.json", Template: "common/tsconfig.json.tmpl"},
	}
	if spec, ok := buildToolConfigFiles[cfg.BuildTool]; ok {
		files = append(files, spec)
	}
	files = append(files, model.GeneratedFileSpec{
		Path: "vitest.config.ts", Template: "common/vitest.config.ts.tmpl",
	})

	// Extension-flag driven files; all conditional.
	files = append(files,
		model.GeneratedFileSpec{
			Path:     ".github/workflows/ci.yml",
			Template: "common/ci.yml.tmpl",
			Condition: func(c *model.Configuration) bool {
				return c.Extension(model.ExtensionCI) == "github"
			},
		},
		model.GeneratedFileSpec{
			Path:     ".husky/pre-commit",
			Template: "common/pre-commit.tmpl",
			Condition: func(c *model.Configuration) bool {
				return c.Extension(model.ExtensionHooks) == "true"
			},
		},
		model.GeneratedFileSpec{
			Path:     ".changeset/config.json",
			Template: "common/changeset-config.json.tmpl",
			Condition: func(c *model.Configuration) bool {
				return c.Extension(model.ExtensionChangelog) == "changesets"
			},
		},
	)
	return files
}

// commonExtras returns the manifest extras shared by all generators.
func commonExtras(cfg *model.Configuration) map[string]any {
	return map[string]any{
		"sideEffects": false,
		"files":       []string{"dist"},
	}
}
