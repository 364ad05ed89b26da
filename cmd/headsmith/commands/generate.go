package commands

import (
	"context"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/teranos/headsmith/am"
	"github.com/teranos/headsmith/catalog"
	"github.com/teranos/headsmith/display"
	"github.com/teranos/headsmith/emit"
	"github.com/teranos/headsmith/errors"
	"github.com/teranos/headsmith/generate"
	"github.com/teranos/headsmith/logger"
	"github.com/teranos/headsmith/rules"
)

// GenerateCmd represents the generate command
var GenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate mini block and alphabet YAML files",
	Long: `Resolve the rule table's material roster and alphabet fonts against the
texture catalog and write the generated head files.

Writes to the output directory:
  mini_blocks_GENERATED.yml      one mini block per resolved material
  alphabet_GENERATED/<font>.yml  one file per font with at least one glyph
  missing_GENERATED.json         everything that could not be resolved

Examples:
  headsmith generate
  headsmith generate -i data/heads-db-b64.csv -o data --no-alphabet
  headsmith generate -r data/generate_config.toml --json`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	GenerateCmd.Flags().StringP("input", "i", "", "Catalog CSV (default from generate.input)")
	GenerateCmd.Flags().StringP("output-dir", "o", "", "Output directory (default from generate.output_dir)")
	GenerateCmd.Flags().StringP("rules", "r", "", "Rule table TOML (default from generate.rules)")
	GenerateCmd.Flags().Bool("no-alphabet", false, "Skip alphabet generation")
	GenerateCmd.Flags().Bool("json", false, "Output the run summary as JSON")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := am.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load configuration")
	}
	gen := generateConfigFromFlags(cmd, cfg.Generate)
	if err := gen.Validate(); err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	runID := uuid.NewString()
	ctx = logger.WithComponent(logger.WithRunID(ctx, runID), "generate")
	log := logger.LoggerFromContext(ctx)

	table, err := rules.Load(gen.Rules, logger.WithContext(logger.ComponentLogger("rules"), ctx))
	if err != nil {
		return err
	}
	if logger.ShouldLogAll(logger.Verbosity) {
		log.Debugf("Rule table:\n%s", spew.Sdump(table))
	}

	rows, err := catalog.Load(gen.Input)
	if err != nil {
		return err
	}
	log.Infow("Loaded catalog", logger.FieldFile, gen.Input, logger.FieldCount, len(rows))

	opts := generate.DefaultOptions()
	opts.Trace = logger.ShouldLogTrace(logger.Verbosity)
	opts.SkipAlphabet = gen.NoAlphabet

	result, err := generate.Run(ctx, table, rows, opts)
	if err != nil {
		return err
	}

	writer := emit.NewWriter(gen.OutputDir, emit.LayoutFromConfig(gen), logger.WithContext(logger.ComponentLogger("emit"), ctx))
	report, err := writer.WriteAll(result)
	if err != nil {
		return err
	}

	summary := display.NewGenerateSummary(runID, result, report, !gen.NoAlphabet)
	if display.ShouldOutputJSON(cmd) {
		return display.OutputJSON(cmd.OutOrStdout(), summary)
	}
	display.PrintGenerate(cmd.OutOrStdout(), summary)
	return nil
}

// generateConfigFromFlags overlays explicitly set flags on the configured values
func generateConfigFromFlags(cmd *cobra.Command, gen am.GenerateConfig) am.GenerateConfig {
	flags := cmd.Flags()
	if flags.Changed("input") {
		gen.Input, _ = flags.GetString("input")
	}
	if flags.Changed("output-dir") {
		gen.OutputDir, _ = flags.GetString("output-dir")
	}
	if flags.Changed("rules") {
		gen.Rules, _ = flags.GetString("rules")
	}
	if flags.Changed("no-alphabet") {
		gen.NoAlphabet, _ = flags.GetBool("no-alphabet")
	}
	return gen
}
