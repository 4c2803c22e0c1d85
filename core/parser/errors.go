package parser

import (
	"errors"
	"fmt"
)

// ErrMissingAsset is returned when a referenced definition file is absent.
var ErrMissingAsset = errors.New("missing asset")

// ParseError reports a definition file that could not be decoded.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// IsParseError reports whether err is, or wraps, a *ParseError.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}
