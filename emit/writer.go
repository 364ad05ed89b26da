package emit

import (
	"bytes"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/teranos/headsmith/am"
	"github.com/teranos/headsmith/errors"
	"github.com/teranos/headsmith/generate"
	"github.com/teranos/headsmith/logger"
)

// Layout names the files a run writes inside its output directory
type Layout struct {
	MaterialsFile string
	AlphabetDir   string
	ManifestFile  string
	// NameColor prefixes every display name, e.g. "&7"
	NameColor string
}

// LayoutFromConfig takes file names and the name colour from the generate config
func LayoutFromConfig(cfg am.GenerateConfig) Layout {
	return Layout{
		MaterialsFile: cfg.MaterialsFile,
		AlphabetDir:   cfg.AlphabetDir,
		ManifestFile:  cfg.ManifestFile,
		NameColor:     cfg.NameColor,
	}
}

// DefaultLayout matches the file names the plugin build expects
func DefaultLayout() Layout {
	return Layout{
		MaterialsFile: "mini_blocks_GENERATED.yml",
		AlphabetDir:   "alphabet_GENERATED",
		ManifestFile:  "missing_GENERATED.json",
		NameColor:     "&7",
	}
}

// WrittenFile records one file produced by a run
type WrittenFile struct {
	Path    string `json:"path"`
	Entries int    `json:"entries"`
}

// Report lists the files a run wrote, mini blocks first, then fonts in table order
type Report struct {
	Materials WrittenFile   `json:"materials"`
	Fonts     []WrittenFile `json:"fonts,omitempty"`
	Manifest  string        `json:"manifest,omitempty"`
}

// Writer writes results under one output directory
type Writer struct {
	dir    string
	layout Layout
	log    *zap.SugaredLogger
}

// NewWriter creates a Writer rooted at dir
func NewWriter(dir string, layout Layout, log *zap.SugaredLogger) *Writer {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Writer{dir: dir, layout: layout, log: log}
}

// WriteAll writes the mini block file, one file per non-empty font, and the
// manifest when a file name is configured for it.
func (w *Writer) WriteAll(result *generate.Result) (*Report, error) {
	if err := os.MkdirAll(w.dir, am.DefaultDirPermissions); err != nil {
		return nil, errors.Wrapf(err, "failed to create output directory %s", w.dir)
	}

	report := &Report{}

	var buf bytes.Buffer
	if err := EncodeMaterials(&buf, result.Materials, result.MissingMaterials, w.layout.NameColor); err != nil {
		return nil, err
	}
	path := filepath.Join(w.dir, w.layout.MaterialsFile)
	if err := w.write(path, buf.Bytes(), len(result.Materials)); err != nil {
		return nil, err
	}
	report.Materials = WrittenFile{Path: path, Entries: len(result.Materials)}

	if len(result.Fonts) > 0 {
		alphabetDir := filepath.Join(w.dir, w.layout.AlphabetDir)
		if err := os.MkdirAll(alphabetDir, am.DefaultDirPermissions); err != nil {
			return nil, errors.Wrapf(err, "failed to create alphabet directory %s", alphabetDir)
		}

		for _, font := range result.Fonts {
			buf.Reset()
			if err := EncodeFont(&buf, font, w.layout.NameColor); err != nil {
				return nil, err
			}
			path := filepath.Join(alphabetDir, font.Font.ID()+".yml")
			if err := w.write(path, buf.Bytes(), len(font.Entries)); err != nil {
				return nil, err
			}
			report.Fonts = append(report.Fonts, WrittenFile{Path: path, Entries: len(font.Entries)})
		}
	}

	if w.layout.ManifestFile != "" {
		buf.Reset()
		if err := EncodeManifest(&buf, NewManifest(result)); err != nil {
			return nil, err
		}
		path := filepath.Join(w.dir, w.layout.ManifestFile)
		if err := w.write(path, buf.Bytes(), len(result.MissingMaterials)+result.MissingGlyphCount()); err != nil {
			return nil, err
		}
		report.Manifest = path
	}

	return report, nil
}

func (w *Writer) write(path string, data []byte, entries int) error {
	if err := WriteFileAtomic(path, data); err != nil {
		return err
	}
	w.log.Debugw("Wrote file", logger.FieldPath, path, logger.FieldCount, entries)
	return nil
}

// WriteFileAtomic replaces path with data via a temporary file in the same directory
func WriteFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return errors.Wrapf(err, "failed to create temporary file for %s", path)
	}
	tmpPath := tmp.Name()

	fail := func(err error, msg string) error {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return errors.Wrapf(err, "%s %s", msg, path)
	}

	if _, err := tmp.Write(data); err != nil {
		return fail(err, "failed to write")
	}
	if err := tmp.Chmod(am.DefaultFilePermissions); err != nil {
		return fail(err, "failed to set permissions on")
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return errors.Wrapf(err, "failed to close %s", path)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return errors.Wrapf(err, "failed to replace %s", path)
	}
	return nil
}
