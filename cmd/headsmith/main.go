package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/teranos/headsmith/am"
	"github.com/teranos/headsmith/cmd/headsmith/commands"
	"github.com/teranos/headsmith/display"
	"github.com/teranos/headsmith/errors"
	"github.com/teranos/headsmith/logger"
)

var rootCmd = &cobra.Command{
	Use:   "headsmith",
	Short: "headsmith - Mini block and alphabet head generator",
	Long: `headsmith - Generate decorative head configuration from the texture catalog.

headsmith resolves every material in the rule table, and every character of
every alphabet font, to a catalog texture and writes the head YAML files the
plugin loads.

Available commands:
  generate - Generate mini block and alphabet YAML files
  count    - Count heads per YAML file
  encode   - Add the base64 texture column to a catalog CSV
  am       - Show and validate headsmith configuration ("I am")
  version  - Show version information

Examples:
  headsmith generate                      # Generate with configured paths
  headsmith generate -i heads.csv -o out  # Override catalog and output dir
  headsmith count                         # Write head-count.json files
  headsmith encode heads.csv > b64.csv    # Add base64_texture column
  headsmith am show --format json         # Show configuration`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")

		cfg, err := am.Load()
		if err != nil {
			return errors.Wrap(err, "failed to load configuration")
		}

		if err := logger.Initialize(cfg.Log.JSON, verbosity); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		styled := display.ConfigureStyling(os.Stdout, display.ShouldOutputJSON(cmd))
		logger.Logger.Debugw("Logger initialized",
			"verbosity", logger.LevelName(verbosity),
			"styled", styled)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Cleanup()
	},
}

func init() {
	// Add global flags
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv, -vvv, -vvvv)")

	// Add commands
	rootCmd.AddCommand(commands.GenerateCmd)
	rootCmd.AddCommand(commands.CountCmd)
	rootCmd.AddCommand(commands.EncodeCmd)
	rootCmd.AddCommand(commands.AmCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		for _, hint := range errors.GetAllHints(err) {
			fmt.Fprintln(os.Stderr, "Hint:", hint)
		}
		os.Exit(1)
	}
}
