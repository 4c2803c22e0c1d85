package localisation

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"scdb-loader/core/content"

	"github.com/go-ini/ini"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// FileName is the label file inside each language folder.
const FileName = "global.ini"

// LoadError reports a language whose label file is absent or malformed.
type LoadError struct {
	Language string
	Path     string
	Err      error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load %s localization from %s: %v", e.Language, e.Path, e.Err)
}

// Unwrap exposes both the cause and content.ErrFatalConfig.
func (e *LoadError) Unwrap() []error {
	return []error{content.ErrFatalConfig, e.Err}
}

// Load reads the label file of language from the content tree.
func Load(tree *content.Tree, language string) (*Service, error) {
	path := filepath.Join(tree.Path(tree.Config().Localization), language, FileName)

	texts, err := readLabels(path)
	if err != nil {
		return nil, &LoadError{Language: language, Path: path, Err: err}
	}
	return New(texts), nil
}

func readLabels(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("label file not found")
		}
		return nil, err
	}
	defer f.Close()

	// Label files ship as UTF-8 with a BOM or as UTF-16; normalize to UTF-8.
	data, err := io.ReadAll(transform.NewReader(f, unicode.BOMOverride(unicode.UTF8.NewDecoder())))
	if err != nil {
		return nil, fmt.Errorf("failed to decode label file: %w", err)
	}

	file, err := ini.LoadSources(ini.LoadOptions{
		KeyValueDelimiters:      "=",
		IgnoreInlineComment:     true,
		IgnoreContinuation:      true,
		PreserveSurroundedQuote: true,
	}, quoteRawValues(data))
	if err != nil {
		return nil, fmt.Errorf("malformed label file: %w", err)
	}

	texts := make(map[string]string)
	for _, section := range file.Sections() {
		for _, key := range section.Keys() {
			texts[key.Name()] = key.Value()
		}
	}
	return texts, nil
}

// quoteRawValues wraps values starting with a backtick or a triple quote in
// triple quotes. ini reads such values as raw or multi-line strings; wrapped,
// everything up to the last triple quote on the line is kept verbatim.
func quoteRawValues(data []byte) []byte {
	var buf bytes.Buffer
	buf.Grow(len(data))

	for _, line := range bytes.SplitAfter(data, []byte("\n")) {
		trimmed := bytes.TrimLeft(line, " \t")
		if len(trimmed) == 0 || trimmed[0] == ';' || trimmed[0] == '#' || trimmed[0] == '[' {
			buf.Write(line)
			continue
		}

		key, value, ok := bytes.Cut(line, []byte("="))
		body := bytes.TrimSpace(value)
		if !ok || !(bytes.HasPrefix(body, []byte("`")) || bytes.HasPrefix(body, []byte(`"""`))) {
			buf.Write(line)
			continue
		}

		buf.Write(key)
		buf.WriteString(`="""`)
		buf.Write(body)
		buf.WriteString(`"""`)
		buf.Write(value[len(bytes.TrimRight(value, "\r\n")):])
	}
	return buf.Bytes()
}
