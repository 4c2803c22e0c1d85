package entity

import (
	"context"
	"errors"
	"sort"

	"scdb-loader/core/content"
	"scdb-loader/core/index"
	"scdb-loader/core/parser"
	"scdb-loader/feature/entity/models"
	"scdb-loader/feature/loadout"
	"scdb-loader/feature/reference"

	"go.uber.org/zap"
)

// Localizer resolves "@key" display text.
type Localizer interface {
	Text(value string) string
}

// Dependencies are the upstream indices and services an entity loader reads.
type Dependencies struct {
	Tree          *content.Tree
	Localizer     Localizer
	Manufacturers index.Reader[*reference.Record]
	Ammo          index.Reader[*reference.Record]
	Loadouts      *loadout.Resolver
	Logger        *zap.Logger
}

// base carries the resolution steps shared by items and ships.
type base struct {
	Dependencies
	kind string
}

func newBase(deps Dependencies, kind string) base {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Loadouts == nil {
		deps.Loadouts = loadout.NewResolver(deps.Tree)
	}
	return base{Dependencies: deps, kind: kind}
}

type definitionFile struct {
	path   string
	source string
	folder string
}

// each parses every definition below folders and hands it to fn together
// with the folder it was found in. Files of all folders are visited in one
// lexical order by source path, so the later path wins on duplicates no
// matter which folder it lives in. Files that cannot be parsed are logged
// and skipped.
func (b *base) each(ctx context.Context, folders []string, fn func(def *models.Definition, source, folder string)) error {
	var files []definitionFile
	for _, folder := range folders {
		paths, err := b.Tree.Files(folder, ".xml")
		if err != nil {
			return err
		}
		for _, path := range paths {
			files = append(files, definitionFile{path: path, source: b.Tree.Rel(path), folder: folder})
		}
	}
	sort.SliceStable(files, func(i, j int) bool { return files[i].source < files[j].source })

	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return err
		}

		def, err := ParseItemFile(f.path)
		if err != nil {
			b.Logger.Warn("Skipping unreadable definition",
				zap.String("kind", b.kind),
				zap.String("file", f.source),
				zap.Bool("malformed", parser.IsParseError(err)),
				zap.Error(err))
			continue
		}
		fn(def, f.source, f.folder)
	}
	return nil
}

func insert[T any](b *base, ix *index.Index[T], className, source string, v T) {
	if prev, replaced := ix.Insert(className, source, v); replaced {
		b.Logger.Warn("Duplicate class name, keeping the later file",
			zap.String("kind", b.kind),
			zap.String("class", className),
			zap.String("previous", prev.Source),
			zap.String("current", source))
	}
}

// resolve looks code up in ix and logs one warning when a non-empty code
// has no record.
func (b *base) resolve(ix index.Reader[*reference.Record], what, code, className, source string) *reference.Record {
	if code == "" {
		return nil
	}
	var rec *reference.Record
	if ix != nil {
		rec, _ = ix.Get(code)
	}
	if rec == nil {
		b.Logger.Warn("Unresolved reference",
			zap.String("kind", b.kind),
			zap.String("reference", what),
			zap.String("code", code),
			zap.String("class", className),
			zap.String("file", source))
	}
	return rec
}

// expand builds the loadout tree of def. A root loadout file that cannot be
// read yields an empty slot flagged missing.
func (b *base) expand(def *models.Definition, source string) *loadout.Slot {
	params := def.Loadout()
	slot, err := b.Loadouts.ExpandParams(params, nil)
	if err != nil {
		b.Logger.Warn("Loadout unavailable",
			zap.String("kind", b.kind),
			zap.String("class", def.ClassName),
			zap.String("file", source),
			zap.Bool("missing", errors.Is(err, parser.ErrMissingAsset)),
			zap.Error(err))
		return &loadout.Slot{LoadoutPath: params.File.Path, Missing: true}
	}

	slot.Walk(func(s *loadout.Slot) {
		switch {
		case s.Truncated:
			b.Logger.Warn("Loadout cycle truncated",
				zap.String("class", def.ClassName),
				zap.String("port", s.PortName),
				zap.String("loadout", s.LoadoutPath))
		case s.Missing:
			b.Logger.Warn("Loadout branch missing",
				zap.String("class", def.ClassName),
				zap.String("port", s.PortName),
				zap.String("loadout", s.LoadoutPath))
		}
	})
	return slot
}
