package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quillforge/quill/internal/app"
	"github.com/quillforge/quill/internal/config"
	"github.com/quillforge/quill/internal/scaffold/model"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check CONFIG_FILE",
	Short: "Validate a saved configuration without generating",
	Long: `Validate a saved configuration file against its generator.

The check command loads the configuration, runs the same validation that
generation would run, and reports every issue found. Nothing is written.
The command exits non-zero when error-severity issues are present;
warnings alone do not fail the check.

Examples:
  quill check ./pkg.quill.json
  quill check ./pkg.quill.json --json`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

// Check command flags
var checkJSON bool

func init() {
	// Flags for check
	checkCmd.Flags().BoolVar(&checkJSON, FlagJSON, false, DescJSON)
}

func runCheck(cmd *cobra.Command, args []string) error {
	file, err := config.LoadConfigurationFile(args[0])
	if err != nil {
		return err
	}

	fw, err := model.ParseFramework(file.Framework)
	if err != nil {
		return err
	}

	result, err := app.CheckConfiguration(newRegistry(), fw, &file.Configuration)
	if err != nil {
		return err
	}

	if checkJSON {
		return printCheckJSON(result)
	}

	for _, issue := range result.Issues {
		msg := issue.Message
		if issue.Field != "" {
			msg = issue.Field + ": " + msg
		}
		if issue.Severity == model.SeverityError {
			printErrorMsg(msg)
		} else {
			printWarning(msg)
		}
	}

	if !result.Valid {
		return fmt.Errorf("configuration is invalid (%d issues, generator %s)", len(result.Issues), result.GeneratorID)
	}
	printSuccess(fmt.Sprintf("Configuration is valid (generator %s)", result.GeneratorID))
	return nil
}

func printCheckJSON(result *app.CheckResult) error {
	out := struct {
		Valid       bool          `json:"valid"`
		GeneratorID string        `json:"generator_id"`
		Issues      []model.Issue `json:"issues"`
	}{
		Valid:       result.Valid,
		GeneratorID: result.GeneratorID,
		Issues:      result.Issues,
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal check result: %w", err)
	}
	fmt.Println(string(data))
	if !out.Valid {
		return fmt.Errorf("configuration is invalid")
	}
	return nil
}
