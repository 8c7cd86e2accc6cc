package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered generators",
	Long: `List the registered generators with their supported package types,
runtime targets, and recommended build tool.

Examples:
  quill list
  quill list --json`,
	RunE: runList,
}

// List command flags
var listJSON bool

func init() {
	// Flags for list
	listCmd.Flags().BoolVar(&listJSON, FlagJSON, false, DescJSON)
}

func runList(cmd *cobra.Command, args []string) error {
	registry := newRegistry()
	descriptors := registry.GetAllMetadata()

	if listJSON {
		data, err := json.MarshalIndent(descriptors, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal generator metadata: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	printHeader(fmt.Sprintf("Registered generators (%d)", len(descriptors)))
	for _, desc := range descriptors {
		printInfo(fmt.Sprintf("%s (%s) v%s", desc.ID, desc.Framework, desc.Version))
		printInfo("  " + desc.Description)

		types := make([]string, 0, len(desc.PackageTypes))
		for _, t := range desc.PackageTypes {
			types = append(types, string(t))
		}
		targets := make([]string, 0, len(desc.RuntimeTargets))
		for _, t := range desc.RuntimeTargets {
			targets = append(targets, string(t))
		}
		printInfo("  types: " + strings.Join(types, ", "))
		printInfo("  targets: " + strings.Join(targets, ", "))
		printInfo("  build tool: " + string(desc.RecommendedBuildTool))
	}
	return nil
}
