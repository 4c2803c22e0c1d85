package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// Artifact names, one per index.
const (
	Manufacturers = "manufacturers"
	Ammo          = "ammo"
	Items         = "items"
	Ships         = "ships"
	Shops         = "shops"
	Starmap       = "starmap"
)

// Artifacts lists every artifact name in pipeline order.
var Artifacts = []string{Manufacturers, Ammo, Items, Ships, Shops, Starmap}

// FileName returns the file an artifact is written to.
func FileName(name string) string {
	return name + ".json"
}

// ArtifactFiles returns the file names of all artifacts.
func ArtifactFiles() []string {
	files := make([]string, len(Artifacts))
	for i, name := range Artifacts {
		files[i] = FileName(name)
	}
	return files
}

// IsArtifactFile reports whether file is the file name of a known artifact.
func IsArtifactFile(file string) bool {
	for _, name := range Artifacts {
		if file == FileName(name) {
			return true
		}
	}
	return false
}

// Emitter writes JSON documents into one output folder.
type Emitter struct {
	dir    string
	logger *zap.Logger

	mu      sync.Mutex
	written []string
}

// NewEmitter creates an Emitter writing into dir.
func NewEmitter(dir string, logger *zap.Logger) *Emitter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Emitter{dir: dir, logger: logger}
}

// Dir returns the output folder.
func (e *Emitter) Dir() string {
	return e.dir
}

// Emit writes records to <dir>/<name>.json as an indented JSON array and
// returns the path written.
func (e *Emitter) Emit(name string, records any) (string, error) {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal %s: %w", name, err)
	}
	data = append(data, '\n')

	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output folder: %w", err)
	}

	path := filepath.Join(e.dir, FileName(name))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}

	e.mu.Lock()
	e.written = append(e.written, path)
	e.mu.Unlock()

	e.logger.Info("Catalog written", zap.String("artifact", name), zap.String("path", path), zap.Int("bytes", len(data)))
	return path, nil
}

// Written returns the paths emitted so far, in write order.
func (e *Emitter) Written() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]string(nil), e.written...)
}

// PrepareDir makes sure dir exists. When clean is set every file and folder
// inside it is removed first.
func PrepareDir(dir string, clean bool) error {
	if clean {
		entries, err := os.ReadDir(dir)
		if err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to read output folder: %w", err)
		}
		for _, entry := range entries {
			if err := os.RemoveAll(filepath.Join(dir, entry.Name())); err != nil {
				return fmt.Errorf("failed to clean output folder: %w", err)
			}
		}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output folder: %w", err)
	}
	return nil
}
