package cli

import "regexp"

// Common flag names and descriptions
const (
	// Flag names
	FlagName           = "name"
	FlagDescription    = "description"
	FlagType           = "type"
	FlagTarget         = "target"
	FlagFormat         = "format"
	FlagBuildTool      = "build-tool"
	FlagPackageManager = "package-manager"
	FlagLicense        = "license"
	FlagAuthor         = "author"
	FlagRepo           = "repo"
	FlagOutput         = "output"
	FlagExample        = "example"
	FlagPreset         = "preset"
	FlagConfig         = "config"
	FlagDryRun         = "dry-run"
	FlagYes            = "yes"
	FlagJSON           = "json"
	FlagNoColor        = "no-color"
	FlagQuiet          = "quiet"
	FlagDebug          = "debug"

	// Flag descriptions
	DescName           = "Package name (e.g. my-lib or @scope/my-lib)"
	DescDescription    = "Package description"
	DescType           = "Package type (library, component, hook, utility, cli)"
	DescTarget         = "Runtime target (browser, node, universal)"
	DescFormat         = "Module format (esm, cjs, dual)"
	DescBuildTool      = "Build tool (tsup, vite, rollup, esbuild)"
	DescPackageManager = "Package manager (npm, pnpm, yarn, bun)"
	DescLicense        = "SPDX license identifier"
	DescAuthor         = "Package author"
	DescRepo           = "Repository URL"
	DescOutput         = "Output directory"
	DescExample        = "Include an example sub-project"
	DescPreset         = "Preset name or preset file path"
	DescConfig         = "Path to a saved configuration file"
	DescDryRun         = "Show what would be generated without writing files"
	DescYes            = "Skip the wizard; fail on missing required values"
	DescJSON           = "Output as JSON"
	DescNoColor        = "Disable colored output"
	DescQuiet          = "Suppress non-error output"
	DescDebug          = "Enable debug logging"
)

// Repository URL pattern: https or git+ssh style URLs.
var repoURLPattern = regexp.MustCompile(`^(https://|git@|git\+ssh://).+`)
