// Package parser decodes a single definition file into a typed record.
//
// Definition files are XML documents whose root element name carries the
// record's class, e.g. <EntityClassDefinition.AEGS_Avenger_Titan>. The
// package is intentionally narrow: it knows nothing about references between
// files. Loaders call Parse for every file they enumerate and decide what to
// do with failures.
//
// # Errors
//
//   - ErrMissingAsset: the file does not exist.
//   - *ParseError: the file exists but is not a valid definition.
//
// # Usage
//
//	rec, err := parser.Parse[models.Manufacturer](path)
//	if errors.Is(err, parser.ErrMissingAsset) {
//	    // skip
//	}
package parser
