// pestgenie-preview is the development host for PestGenie screen schemas.
// It validates schema documents, renders them once against fixture data, and
// runs an interactive terminal preview with live editing and hot reload.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags.
	verbose    bool
	configPath string

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "pestgenie-preview",
	Short: "Preview and validate PestGenie screen schemas",
	Long: `pestgenie-preview is the development host for server-driven screens.

A screen schema is a versioned JSON document describing a component tree.
This tool checks documents before they ship, renders them against fixture
route data, and previews them interactively with editing and hot reload.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// The demo owns the terminal; it builds a file-backed logger of
		// its own so log lines cannot tear the display.
		if cmd.Name() == "demo" {
			return nil
		}
		cfg := zap.NewProductionConfig()
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [schema.json]",
	Short: "Check a schema document without rendering it",
	Long: `Decodes a schema document and lints every node against its kind's
required attributes. Decode failures name the offending JSON path; lint
failures list every node that would render as an inline error.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

var renderCmd = &cobra.Command{
	Use:   "render [schema.json]",
	Short: "Render a schema once against fixture data and print it",
	Long: `Renders the screen against generated route fixtures and writes the
result to stdout. Output is sized to the terminal when attached to one and
fixed-width plain text when piped.

With no argument the screen comes from the config file, falling back to the
built-in demo route screen.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRender,
}

var demoCmd = &cobra.Command{
	Use:   "demo [schema.json]",
	Short: "Interactive preview with editing and hot reload",
	Long: `Runs the screen in an interactive terminal session. Tab moves between
controls, enter activates or edits the focused one, and arrow keys adjust
sliders, steppers, pickers, and dates. When the schema comes from a file it
is re-decoded on every save; a save that fails to decode keeps the previous
screen on display.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDemo,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default pestgenie.yaml when present)")

	renderCmd.Flags().IntVar(&renderWidth, "width", 0, "Render width in cells (default: terminal width, 72 when piped)")

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(demoCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
