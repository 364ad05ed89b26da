// Package texture derives the base64 skin payload a player head needs from a
// texture hash, and adds it as a column to the catalog CSV.
package texture

import (
	"encoding/base64"
	"encoding/csv"
	"encoding/json"
	"io"

	"github.com/teranos/headsmith/errors"
)

const (
	// URLPrefix is where the game fetches skin textures from
	URLPrefix = "http://textures.minecraft.net/texture/"
	// ColumnHeader names the appended column
	ColumnHeader = "base64_texture"
	// HashColumn is the catalog column holding the texture hash
	HashColumn = 2
)

type payload struct {
	Textures struct {
		Skin struct {
			URL string `json:"url"`
		} `json:"SKIN"`
	} `json:"textures"`
}

// Encode returns the base64 of {"textures":{"SKIN":{"url":"<URLPrefix><hash>"}}}
func Encode(hash string) string {
	var p payload
	p.Textures.Skin.URL = URLPrefix + hash
	// Marshal of a fixed string-only struct cannot fail
	data, _ := json.Marshal(p)
	return base64.StdEncoding.EncodeToString(data)
}

// Stats summarises an AppendColumn pass
type Stats struct {
	Rows    int
	Encoded int
}

// AppendColumn copies a CSV from r to w with a base64_texture column added.
// Data rows with fewer than three columns get an empty cell.
func AppendColumn(r io.Reader, w io.Writer) (Stats, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	writer := csv.NewWriter(w)
	writer.UseCRLF = true

	var stats Stats
	for header := true; ; header = false {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			line, _ := reader.FieldPos(0)
			return stats, errors.Wrapf(err, "failed to read CSV near line %d", line)
		}

		switch {
		case header:
			record = append(record, ColumnHeader)
		case len(record) > HashColumn:
			record = append(record, Encode(record[HashColumn]))
			stats.Rows++
			stats.Encoded++
		default:
			record = append(record, "")
			stats.Rows++
		}

		if err := writer.Write(record); err != nil {
			return stats, errors.Wrap(err, "failed to write CSV")
		}
	}

	writer.Flush()
	return stats, errors.Wrap(writer.Error(), "failed to flush CSV")
}
