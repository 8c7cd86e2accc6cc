package cli

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"

	"github.com/quillforge/quill/internal/scaffold/generators"
	"github.com/quillforge/quill/internal/scaffold/model"
)

// promptForConfiguration interactively fills the fields the caller left
// empty. Fields already set by flags, a preset, or the tool configuration
// are never asked again.
func promptForConfiguration(registry *generators.Registry, framework *model.Framework, cfg *model.Configuration) error {
	if *framework == "" {
		fw, err := promptFramework(registry)
		if err != nil {
			return err
		}
		*framework = fw
	}

	gen, ok := registry.GetPrimary(*framework)
	if !ok {
		return fmt.Errorf("no generator registered for framework %q", *framework)
	}
	desc := gen.Descriptor()

	if cfg.Name == "" {
		name, err := promptPackageName()
		if err != nil {
			return err
		}
		cfg.Name = name
	}

	if cfg.Description == "" {
		prompt := &survey.Input{
			Message: "Description",
			Help:    "Short description used in package.json and the README",
		}
		if err := survey.AskOne(prompt, &cfg.Description); err != nil {
			return err
		}
	}

	if cfg.PackageType == "" {
		value, err := promptSelect("Package type", packageTypeOptions(desc), string(desc.PackageTypes[0]))
		if err != nil {
			return err
		}
		cfg.PackageType = model.PackageType(value)
	}

	if cfg.RuntimeTarget == "" {
		value, err := promptSelect("Runtime target", runtimeTargetOptions(desc), string(desc.RuntimeTargets[0]))
		if err != nil {
			return err
		}
		cfg.RuntimeTarget = model.RuntimeTarget(value)
	}

	if cfg.ModuleFormat == "" {
		value, err := promptSelect("Module format", []string{
			string(model.FormatESM),
			string(model.FormatCJS),
			string(model.FormatDual),
		}, string(model.FormatESM))
		if err != nil {
			return err
		}
		cfg.ModuleFormat = model.ModuleFormat(value)
	}

	if cfg.BuildTool == "" {
		value, err := promptSelect("Build tool", []string{
			string(model.BuildToolTsup),
			string(model.BuildToolVite),
			string(model.BuildToolRollup),
			string(model.BuildToolEsbuild),
		}, string(desc.RecommendedBuildTool))
		if err != nil {
			return err
		}
		cfg.BuildTool = model.BuildTool(value)
	}

	if cfg.PackageManager == "" {
		value, err := promptSelect("Package manager", []string{
			string(model.PackageManagerNpm),
			string(model.PackageManagerPnpm),
			string(model.PackageManagerYarn),
			string(model.PackageManagerBun),
		}, string(model.PackageManagerPnpm))
		if err != nil {
			return err
		}
		cfg.PackageManager = model.PackageManager(value)
	}

	if cfg.OutputDir == "" {
		prompt := &survey.Input{
			Message: "Output directory",
			Default: "./" + model.ShortName(cfg.Name),
		}
		if err := survey.AskOne(prompt, &cfg.OutputDir, survey.WithValidator(survey.Required)); err != nil {
			return err
		}
	}

	if !cfg.IncludeExample {
		prompt := &survey.Confirm{
			Message: "Include an example sub-project?",
			Default: false,
		}
		if err := survey.AskOne(prompt, &cfg.IncludeExample); err != nil {
			return err
		}
	}

	return nil
}

// promptFramework asks which framework to generate for.
func promptFramework(registry *generators.Registry) (model.Framework, error) {
	supported := registry.SupportedFrameworks()
	options := make([]string, 0, len(supported))
	for _, fw := range supported {
		options = append(options, string(fw))
	}

	var result string
	prompt := &survey.Select{
		Message: "Framework",
		Options: options,
	}
	if err := survey.AskOne(prompt, &result); err != nil {
		return "", err
	}
	return model.Framework(result), nil
}

// promptPackageName asks for an npm package name, rejecting invalid ones
// before generation starts.
func promptPackageName() (string, error) {
	var result string
	prompt := &survey.Input{
		Message: "Package name",
		Help:    "npm package name, optionally scoped (e.g. @acme/buttons)",
	}

	nameValidator := func(val interface{}) error {
		str, ok := val.(string)
		if !ok {
			return fmt.Errorf("expected string, got %T", val)
		}
		if !model.IsValidPackageName(str) {
			return fmt.Errorf("not a valid npm package name")
		}
		return nil
	}

	if err := survey.AskOne(prompt, &result, survey.WithValidator(survey.ComposeValidators(survey.Required, nameValidator))); err != nil {
		return "", err
	}
	return result, nil
}

// promptSelect asks a single-choice question.
func promptSelect(message string, options []string, def string) (string, error) {
	var result string
	prompt := &survey.Select{
		Message: message,
		Options: options,
		Default: def,
	}
	if err := survey.AskOne(prompt, &result); err != nil {
		return "", err
	}
	return result, nil
}

func packageTypeOptions(desc model.Descriptor) []string {
	options := make([]string, 0, len(desc.PackageTypes))
	for _, t := range desc.PackageTypes {
		options = append(options, string(t))
	}
	return options
}

func runtimeTargetOptions(desc model.Descriptor) []string {
	options := make([]string, 0, len(desc.RuntimeTargets))
	for _, t := range desc.RuntimeTargets {
		options = append(options, string(t))
	}
	return options
}
