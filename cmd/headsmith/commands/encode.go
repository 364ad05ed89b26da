package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/teranos/headsmith/errors"
	"github.com/teranos/headsmith/logger"
	"github.com/teranos/headsmith/texture"
)

// EncodeCmd represents the encode command
var EncodeCmd = &cobra.Command{
	Use:   "encode <catalog.csv>",
	Short: "Add the base64 texture column to a catalog CSV",
	Long: `Read a catalog CSV whose third column holds texture hashes and write it to
stdout with an extra base64_texture column carrying the skin payload.

Example:
  headsmith encode data/heads-db.csv > data/heads-db-b64.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runEncode,
}

func runEncode(cmd *cobra.Command, args []string) error {
	path := args[0]
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Wrapf(errors.ErrNotFound, "catalog %s", path)
		}
		return errors.Wrapf(err, "failed to open %s", path)
	}
	defer f.Close()

	stats, err := texture.AppendColumn(f, cmd.OutOrStdout())
	if err != nil {
		return errors.Wrapf(err, "failed to encode %s", path)
	}

	logger.ComponentLogger("encode").Infow("Encoded textures",
		logger.FieldFile, path,
		logger.FieldCount, stats.Encoded,
		logger.FieldTotalCount, stats.Rows)
	return nil
}
