package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/quillforge/quill/internal/app"
	"github.com/quillforge/quill/internal/config"
	"github.com/quillforge/quill/internal/scaffold/generators"
	"github.com/quillforge/quill/internal/scaffold/model"
	"github.com/quillforge/quill/internal/scaffold/render"
)

// newCmd represents the new command
var newCmd = &cobra.Command{
	Use:   "new [framework]",
	Short: "Generate a new package",
	Long: `Generate a new package for the given framework.

Values not provided as flags are asked interactively, except with --yes
or --config. Presets supply defaults and extension flags (CI workflow,
git hooks, changelog tooling).

Examples:
  quill new
  quill new react --name @acme/buttons
  quill new node --name my-tool --type cli --yes
  quill new --config ./pkg.quill.json
  quill new vue --name widgets --preset oss --dry-run`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNew,
}

// New command flags
var (
	newName           string
	newDescription    string
	newType           string
	newTarget         string
	newFormat         string
	newBuildTool      string
	newPackageManager string
	newLicense        string
	newAuthor         string
	newRepo           string
	newOutput         string
	newExample        bool
	newPreset         string
	newConfigPath     string
	newDryRun         bool
	newYes            bool
)

func init() {
	// Flags for new
	newCmd.Flags().StringVar(&newName, FlagName, "", DescName)
	newCmd.Flags().StringVar(&newDescription, FlagDescription, "", DescDescription)
	newCmd.Flags().StringVar(&newType, FlagType, "", DescType)
	newCmd.Flags().StringVar(&newTarget, FlagTarget, "", DescTarget)
	newCmd.Flags().StringVar(&newFormat, FlagFormat, "", DescFormat)
	newCmd.Flags().StringVar(&newBuildTool, FlagBuildTool, "", DescBuildTool)
	newCmd.Flags().StringVar(&newPackageManager, FlagPackageManager, "", DescPackageManager)
	newCmd.Flags().StringVar(&newLicense, FlagLicense, "", DescLicense)
	newCmd.Flags().StringVar(&newAuthor, FlagAuthor, "", DescAuthor)
	newCmd.Flags().StringVar(&newRepo, FlagRepo, "", DescRepo)
	newCmd.Flags().StringVarP(&newOutput, FlagOutput, "o", "", DescOutput)
	newCmd.Flags().BoolVar(&newExample, FlagExample, false, DescExample)
	newCmd.Flags().StringVar(&newPreset, FlagPreset, "", DescPreset)
	newCmd.Flags().StringVar(&newConfigPath, FlagConfig, "", DescConfig)
	newCmd.Flags().BoolVarP(&newDryRun, FlagDryRun, "d", false, DescDryRun)
	newCmd.Flags().BoolVarP(&newYes, FlagYes, "y", false, DescYes)
}

func runNew(cmd *cobra.Command, args []string) error {
	registry := newRegistry()

	framework, cfg, err := buildConfiguration(args)
	if err != nil {
		return err
	}

	// Interactive wizard fills whatever is still missing, unless the
	// caller opted out.
	if !newYes && newConfigPath == "" {
		if err := promptForConfiguration(registry, &framework, cfg); err != nil {
			return err
		}
	}
	applyFallbacks(registry, framework, cfg)

	if newDryRun {
		printInfo("[DRY RUN] No files will be written")
	}
	printProgress(fmt.Sprintf("Generating %s package %s", framework, cfg.Name))

	orch := app.NewOrchestrator(registry, render.NewRenderer())
	result := orch.GeneratePackage(cmd.Context(), app.GenerateOptions{
		Framework: framework,
		Config:    cfg,
		DryRun:    newDryRun,
	})

	for _, warning := range result.Warnings {
		printWarning(warning)
	}
	if !result.Success {
		for _, file := range result.Files {
			printInfo("  written: " + file)
		}
		return fmt.Errorf("generation failed: %s", result.Error)
	}

	printSuccess(fmt.Sprintf("Generated %d files in %s", len(result.Files), cfg.OutputDir))
	for _, file := range result.Files {
		printInfo("  " + file)
	}
	if len(result.NextSteps) > 0 {
		printHeader("Next steps")
		for _, step := range result.NextSteps {
			printInfo("  " + step)
		}
	}
	return nil
}

// buildConfiguration assembles the configuration from the config file (if
// any), tool defaults, the preset, and flags, in increasing precedence.
func buildConfiguration(args []string) (model.Framework, *model.Configuration, error) {
	cfg := &model.Configuration{}
	var framework model.Framework

	if newConfigPath != "" {
		file, err := config.LoadConfigurationFile(newConfigPath)
		if err != nil {
			return "", nil, err
		}
		fw, err := model.ParseFramework(file.Framework)
		if err != nil {
			return "", nil, err
		}
		framework = fw
		c := file.Configuration
		cfg = &c
	}

	if len(args) == 1 {
		fw, err := model.ParseFramework(args[0])
		if err != nil {
			return "", nil, err
		}
		framework = fw
	}

	// Flags override everything below them.
	if newName != "" {
		cfg.Name = newName
	}
	if newDescription != "" {
		cfg.Description = newDescription
	}
	if newType != "" {
		cfg.PackageType = model.PackageType(newType)
	}
	if newTarget != "" {
		cfg.RuntimeTarget = model.RuntimeTarget(newTarget)
	}
	if newFormat != "" {
		cfg.ModuleFormat = model.ModuleFormat(newFormat)
	}
	if newBuildTool != "" {
		cfg.BuildTool = model.BuildTool(newBuildTool)
	}
	if newPackageManager != "" {
		cfg.PackageManager = model.PackageManager(newPackageManager)
	}
	if newLicense != "" {
		cfg.License = newLicense
	}
	if newAuthor != "" {
		cfg.Author = newAuthor
	}
	if newRepo != "" {
		if !repoURLPattern.MatchString(newRepo) {
			return "", nil, fmt.Errorf("invalid repository URL: %s", newRepo)
		}
		cfg.RepositoryURL = newRepo
	}
	if newOutput != "" {
		cfg.OutputDir = newOutput
	}
	if newExample {
		cfg.IncludeExample = true
	}

	// Preset defaults fill fields flags left empty.
	if newPreset != "" {
		preset, err := config.LoadPreset(newPreset)
		if err != nil {
			return "", nil, err
		}
		preset.Apply(cfg)
	}

	// Tool configuration supplies the last layer of defaults.
	toolCfg, err := config.NewLoader().LoadOrDefault(config.DefaultConfigPath())
	if err != nil {
		return "", nil, err
	}
	if cfg.License == "" {
		cfg.License = toolCfg.Defaults.License
	}
	if cfg.Author == "" {
		cfg.Author = toolCfg.Defaults.Author
	}
	if cfg.PackageManager == "" {
		cfg.PackageManager = model.PackageManager(toolCfg.Defaults.PackageManager)
	}
	if cfg.ModuleFormat == "" {
		cfg.ModuleFormat = model.ModuleFormat(toolCfg.Defaults.ModuleFormat)
	}

	return framework, cfg, nil
}

// applyFallbacks fills the remaining optional fields from the generator's
// metadata so non-interactive runs need only a framework and a name.
func applyFallbacks(registry *generators.Registry, framework model.Framework, cfg *model.Configuration) {
	gen, ok := registry.GetPrimary(framework)
	if !ok {
		return
	}
	desc := gen.Descriptor()
	if cfg.PackageType == "" && len(desc.PackageTypes) > 0 {
		cfg.PackageType = desc.PackageTypes[0]
	}
	if cfg.RuntimeTarget == "" && len(desc.RuntimeTargets) > 0 {
		cfg.RuntimeTarget = desc.RuntimeTargets[0]
	}
	if cfg.BuildTool == "" {
		cfg.BuildTool = desc.RecommendedBuildTool
	}
	if cfg.ModuleFormat == "" {
		cfg.ModuleFormat = model.FormatESM
	}
	if cfg.PackageManager == "" {
		cfg.PackageManager = model.PackageManagerPnpm
	}
	if cfg.OutputDir == "" && cfg.Name != "" {
		cfg.OutputDir = filepath.Join(".", model.ShortName(cfg.Name))
	}
}
