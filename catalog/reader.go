package catalog

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/teranos/headsmith/errors"
)

// Load reads the catalog at path
func Load(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WithHint(
				errors.Wrapf(errors.ErrNotFound, "catalog %s", path),
				"pass --input or set generate.input in headsmith.toml")
		}
		return nil, errors.Wrapf(err, "failed to open catalog %s", path)
	}
	defer f.Close()

	rows, err := Read(f)
	if err != nil {
		return nil, errors.Wrapf(err, "catalog %s", path)
	}
	return rows, nil
}

// Read parses catalog rows from r. The first record is a header and is discarded.
func Read(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // short rows degrade, they are not errors
	reader.LazyQuotes = true
	reader.ReuseRecord = false

	var rows []Row
	header := true
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to parse catalog")
		}
		if header {
			header = false
			continue
		}

		line, _ := reader.FieldPos(0)
		rows = append(rows, NewRow(record, line))
	}
	return rows, nil
}
