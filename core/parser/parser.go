package parser

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Parse decodes the definition file at path into a new T.
func Parse[T any](path string) (*T, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissingAsset, path)
		}
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	return Decode[T](f, path)
}

// Decode decodes a definition document from r. The path is only used for
// error reporting.
func Decode[T any](r io.Reader, path string) (*T, error) {
	var rec T
	dec := xml.NewDecoder(r)
	// Extracted game data is UTF-8 but occasionally declares other charsets.
	dec.CharsetReader = func(_ string, input io.Reader) (io.Reader, error) {
		return input, nil
	}
	if err := dec.Decode(&rec); err != nil {
		if errors.Is(err, io.EOF) {
			err = errors.New("empty document")
		}
		return nil, &ParseError{Path: path, Err: err}
	}
	return &rec, nil
}

// RecordName returns the record name encoded in a root element such as
// "EntityClassDefinition.AEGS_Avenger_Titan". When the element carries no
// suffix the file's base name (without extension) is used instead.
func RecordName(name xml.Name, path string) string {
	if i := strings.LastIndex(name.Local, "."); i >= 0 && i < len(name.Local)-1 {
		return name.Local[i+1:]
	}
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
