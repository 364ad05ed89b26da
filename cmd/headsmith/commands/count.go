package commands

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/teranos/headsmith/am"
	"github.com/teranos/headsmith/display"
	"github.com/teranos/headsmith/emit"
	"github.com/teranos/headsmith/errors"
	"github.com/teranos/headsmith/heads"
	"github.com/teranos/headsmith/logger"
)

// CountCmd represents the count command
var CountCmd = &cobra.Command{
	Use:   "count",
	Short: "Count heads per YAML file",
	Long: `Count the entries under "heads" in every head file and write the
per-file counts plus a total as JSON for the docs site and the plugin jar.

Head files come from, in order of preference:
  --plugin-config   the head-files list of <root>/config.yml
  count.files       an explicit list in the configuration
  --scan            every *.yml below <root>/<scan>

Examples:
  headsmith count
  headsmith count --root headsmith/src/main/resources --scan heads
  headsmith count -o docs/util/head-count.json --json`,
	Args: cobra.NoArgs,
	RunE: runCount,
}

func init() {
	CountCmd.Flags().String("root", "", "Resources directory head files are relative to (default from count.root)")
	CountCmd.Flags().String("scan", "", "Directory below root scanned for *.yml (default from count.scan_dir)")
	CountCmd.Flags().StringSliceP("output", "o", nil, "JSON summary destinations (default from count.outputs)")
	CountCmd.Flags().Bool("plugin-config", false, "Read the head file list from the plugin's config.yml")
	CountCmd.Flags().Bool("json", false, "Print the counts as JSON instead of a summary")
}

func runCount(cmd *cobra.Command, args []string) error {
	cfg, err := am.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load configuration")
	}
	count := countConfigFromFlags(cmd, cfg.Count)
	if err := count.Validate(); err != nil {
		return err
	}

	log := logger.ComponentLogger("count")

	files := count.Files
	usePluginConfig, _ := cmd.Flags().GetBool("plugin-config")
	switch {
	case usePluginConfig:
		files, err = heads.PluginHeadFiles(count.Root)
	case len(files) == 0:
		files, err = heads.Scan(count.Root, count.ScanDir)
	}
	if err != nil {
		return err
	}
	log.Infow("Counting head files", logger.FieldPath, count.Root, logger.FieldCount, len(files))

	counts, err := heads.Count(count.Root, files)
	if err != nil {
		return err
	}

	data, err := heads.Encode(counts)
	if err != nil {
		return err
	}
	for _, out := range count.Outputs {
		if err := os.MkdirAll(filepath.Dir(out), am.DefaultDirPermissions); err != nil {
			return errors.Wrapf(err, "failed to create directory for %s", out)
		}
		if err := emit.WriteFileAtomic(out, data); err != nil {
			return err
		}
		log.Debugw("Wrote head counts", logger.FieldPath, out, logger.FieldTotalCount, counts.Total)
	}

	if display.ShouldOutputJSON(cmd) {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	display.PrintCounts(cmd.OutOrStdout(), counts, count.Outputs)
	return nil
}

func countConfigFromFlags(cmd *cobra.Command, count am.CountConfig) am.CountConfig {
	flags := cmd.Flags()
	if flags.Changed("root") {
		count.Root, _ = flags.GetString("root")
	}
	if flags.Changed("scan") {
		count.ScanDir, _ = flags.GetString("scan")
		// An explicit scan wins over a configured file list
		count.Files = nil
	}
	if flags.Changed("output") {
		count.Outputs, _ = flags.GetStringSlice("output")
	}
	return count
}
