package content

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// ErrFatalConfig marks conditions that abort a run before any stage starts:
// the content root or the localization source is missing entirely.
var ErrFatalConfig = errors.New("fatal configuration error")

// Tree provides access to the files of one content root.
type Tree struct {
	cfg Config

	once  sync.Once
	lower map[string]string
	err   error
}

// NewTree creates a Tree for the given layout.
func NewTree(cfg Config) *Tree {
	return &Tree{cfg: cfg}
}

// Config returns the layout of this tree.
func (t *Tree) Config() Config {
	return t.cfg
}

// Path joins a layout-relative folder to the content root.
func (t *Tree) Path(rel string) string {
	return filepath.Join(t.cfg.Root, filepath.FromSlash(rel))
}

// Rel returns path relative to the content root using forward slashes.
// It is used as the stable source reference recorded in the catalog.
func (t *Tree) Rel(path string) string {
	rel, err := filepath.Rel(t.cfg.Root, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}

// Files returns every file with the given extension below the layout folder
// rel, in lexical order. A missing folder yields no files and no error.
func (t *Tree) Files(rel, ext string) ([]string, error) {
	dir := t.Path(rel)
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == dir && errors.Is(err, fs.ErrNotExist) {
				return filepath.SkipDir
			}
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.EqualFold(filepath.Ext(path), ext) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate %s: %w", dir, err)
	}

	return files, nil
}

// Resolve maps a data-relative reference (e.g. "Scripts/Loadouts/x.xml")
// to a file on disk. The second result is false when no file matches.
func (t *Tree) Resolve(ref string) (string, bool) {
	rel := strings.TrimPrefix(strings.ReplaceAll(ref, `\`, "/"), "/")
	if rel == "" {
		return "", false
	}

	dataDir := t.Path(t.cfg.DataDir)
	direct := filepath.Join(dataDir, filepath.FromSlash(trimDataPrefix(rel, t.cfg.DataDir)))
	if info, err := os.Stat(direct); err == nil && !info.IsDir() {
		return direct, true
	}

	t.once.Do(t.buildIndex)
	if t.err != nil {
		return "", false
	}

	path, ok := t.lower[NormalizeRef(rel, t.cfg.DataDir)]
	return path, ok
}

func (t *Tree) buildIndex() {
	dataDir := t.Path(t.cfg.DataDir)
	t.lower = make(map[string]string)

	t.err = filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dataDir, path)
		if err != nil {
			return err
		}
		t.lower[strings.ToLower(filepath.ToSlash(rel))] = path
		return nil
	})
}

// NormalizeRef returns the canonical form of a data-relative reference:
// forward slashes, lower case, no leading slash and no data folder prefix.
// Two references naming the same file normalize to the same string.
func NormalizeRef(ref, dataDir string) string {
	rel := strings.TrimPrefix(strings.ReplaceAll(ref, `\`, "/"), "/")
	rel = trimDataPrefix(rel, dataDir)
	return strings.ToLower(filepath.ToSlash(filepath.Clean(rel)))
}

func trimDataPrefix(rel, dataDir string) string {
	prefix := strings.Trim(filepath.ToSlash(dataDir), "/") + "/"
	if prefix != "/" && len(rel) >= len(prefix) && strings.EqualFold(rel[:len(prefix)], prefix) {
		return rel[len(prefix):]
	}
	return rel
}
