package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quillforge/quill/internal/debug"
	"github.com/quillforge/quill/internal/scaffold/generators"
)

// Global flags
var (
	globalNoColor bool
	globalQuiet   bool
	globalDebug   bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "quill",
	Short: "Scaffold modern JavaScript and TypeScript packages",
	Long: `quill scaffolds publish-ready JavaScript/TypeScript packages.

Use "quill new <framework>" to generate a package for react, vue, svelte,
vanilla, or node. Generation renders templated source, build, and test
configuration and synthesizes a package.json from the selected generator's
dependencies and exports.

Run "quill list" to see the registered generators and "quill check" to
validate a saved configuration without generating anything.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Set debug mode
		debug.SetDebug(globalDebug)
		debug.SetNoColor(globalNoColor)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		printError(err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVar(&globalNoColor, FlagNoColor, false, DescNoColor)
	rootCmd.PersistentFlags().BoolVarP(&globalQuiet, FlagQuiet, "q", false, DescQuiet)
	rootCmd.PersistentFlags().BoolVar(&globalDebug, FlagDebug, false, DescDebug)

	// Add subcommands
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(versionCmd)
}

// newRegistry builds the registry with the built-in generators. Each
// command invocation constructs its own registry; nothing is shared
// through package-level state.
func newRegistry() *generators.Registry {
	reg := generators.NewRegistry()
	generators.RegisterDefaults(reg)
	return reg
}

// printError prints an error message to stderr
func printError(err error) {
	if globalQuiet {
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}
