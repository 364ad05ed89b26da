// Package heads counts the entries of head YAML files for the docs site and
// the plugin jar.
package heads

import (
	"bytes"
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/teranos/headsmith/errors"
)

// TotalKey is the summary key written after the per-file counts
const TotalKey = "total"

// PluginConfigFile is the plugin config listing the head files it loads
const PluginConfigFile = "config.yml"

// FileCount is the number of heads in one file
type FileCount struct {
	File  string
	Heads int
}

// Counts are per-file head counts in scan order
type Counts struct {
	Files []FileCount
	Total int
}

// MarshalJSON writes {"<file>": n, ..., "total": N} keeping file order
func (c Counts) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for _, f := range c.Files {
		if err := writeMember(&buf, f.File, f.Heads); err != nil {
			return nil, err
		}
		buf.WriteByte(',')
	}
	if err := writeMember(&buf, TotalKey, c.Total); err != nil {
		return nil, err
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeMember(buf *bytes.Buffer, key string, n int) error {
	k, err := json.Marshal(key)
	if err != nil {
		return err
	}
	buf.Write(k)
	buf.WriteByte(':')
	v, _ := json.Marshal(n)
	buf.Write(v)
	return nil
}

// Scan lists every *.yml file below root/dir, sorted, as slash paths relative
// to root (e.g. "heads/candles.yml").
func Scan(root, dir string) ([]string, error) {
	base := filepath.Join(root, dir)
	var files []string
	err := filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != ".yml" {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.WithHint(errors.Wrapf(errors.ErrNotFound, "head directory %s", base),
				"pass --root pointing at the plugin resources directory")
		}
		return nil, errors.Wrapf(err, "failed to scan %s", base)
	}
	sort.Strings(files)
	return files, nil
}

// PluginHeadFiles reads the head-files list from the plugin config in root
func PluginHeadFiles(root string) ([]string, error) {
	path := filepath.Join(root, PluginConfigFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrapf(errors.ErrNotFound, "plugin config %s", path)
		}
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}

	var cfg struct {
		HeadFiles []string `yaml:"head-files"`
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", path)
	}
	return cfg.HeadFiles, nil
}

// Count decodes each file's heads mapping and counts its keys. Files that do
// not exist are skipped; a file without a heads mapping counts zero.
func Count(root string, files []string) (Counts, error) {
	var counts Counts
	for _, file := range files {
		path := filepath.Join(root, filepath.FromSlash(file))
		data, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return Counts{}, errors.Wrapf(err, "failed to read %s", path)
		}

		n, err := countHeads(data)
		if err != nil {
			return Counts{}, errors.Wrapf(err, "failed to parse %s", path)
		}
		counts.Files = append(counts.Files, FileCount{File: file, Heads: n})
		counts.Total += n
	}
	return counts, nil
}

func countHeads(data []byte) (int, error) {
	var doc struct {
		Heads yaml.Node `yaml:"heads"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return 0, err
	}
	if doc.Heads.Kind != yaml.MappingNode {
		return 0, nil
	}
	return len(doc.Heads.Content) / 2, nil
}

// Encode renders counts as two-space indented JSON
func Encode(c Counts) ([]byte, error) {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode head counts")
	}
	return append(data, '\n'), nil
}
