package starmap

import (
	"context"
	"errors"
	"slices"

	"scdb-loader/core/content"
	"scdb-loader/core/index"
	"scdb-loader/core/parser"
	"scdb-loader/core/utils"

	"github.com/dominikbraun/graph"
	"go.uber.org/zap"
)

// Localizer resolves "@key" display text.
type Localizer interface {
	Text(value string) string
}

// Loader builds the star map index.
type Loader struct {
	tree   *content.Tree
	loc    Localizer
	logger *zap.Logger
}

// NewLoader creates a star map Loader.
func NewLoader(tree *content.Tree, loc Localizer, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{tree: tree, loc: loc, logger: logger}
}

// Load parses every star map object and resolves parent, child and jump
// links. Objects are keyed by their record reference.
func (l *Loader) Load(ctx context.Context) (*index.Index[*Object], error) {
	objects, err := l.parse(ctx)
	if err != nil {
		return nil, err
	}
	if err := l.link(objects); err != nil {
		return nil, err
	}

	l.logger.Info("Starmap loaded", zap.Int("count", objects.Len()))
	return objects, nil
}

func (l *Loader) parse(ctx context.Context) (*index.Index[*Object], error) {
	files, err := l.tree.Files(l.tree.Config().Starmap, ".xml")
	if err != nil {
		return nil, err
	}

	objects := index.New[*Object]()
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		source := l.tree.Rel(path)
		doc, err := parser.Parse[objectFile](path)
		if err != nil {
			l.logger.Warn("Skipping unreadable starmap object", zap.String("file", source), zap.Error(err))
			continue
		}

		obj := &Object{
			ID:              doc.Ref,
			Name:            l.loc.Text(doc.Name),
			Description:     l.loc.Text(doc.Description),
			Type:            doc.Type,
			Size:            utils.ToFloat(doc.Size),
			Parent:          doc.Parent,
			JumpDestination: doc.JumpDestination,
			SourceFile:      source,
		}
		if obj.ID == "" {
			obj.ID = parser.RecordName(doc.XMLName, path)
		}

		if prev, replaced := objects.Insert(obj.ID, source, obj); replaced {
			l.logger.Warn("Duplicate starmap id, keeping the later file",
				zap.String("id", obj.ID),
				zap.String("previous", prev.Source),
				zap.String("current", source))
		}
	}
	return objects, nil
}

// link builds the parent hierarchy. Objects are visited in key order so the
// link dropped from a cycle is the same on every run.
func (l *Loader) link(objects *index.Index[*Object]) error {
	g := graph.New(graph.StringHash, graph.Directed(), graph.PreventCycles())
	for _, id := range objects.Keys() {
		if err := g.AddVertex(id); err != nil {
			return err
		}
	}

	for _, obj := range objects.Values() {
		if obj.JumpDestination != "" {
			if _, ok := objects.Get(obj.JumpDestination); !ok {
				l.unresolved(obj, "jumpDestination", obj.JumpDestination)
				obj.JumpDestination = ""
			}
		}

		if obj.Parent == "" {
			continue
		}
		if _, ok := objects.Get(obj.Parent); !ok {
			l.unresolved(obj, "parent", obj.Parent)
			obj.Parent = ""
			continue
		}

		var err error
		if obj.Parent == obj.ID {
			err = graph.ErrEdgeCreatesCycle
		} else {
			err = g.AddEdge(obj.Parent, obj.ID)
		}
		if errors.Is(err, graph.ErrEdgeCreatesCycle) {
			l.logger.Warn("Dropping parent link that creates a cycle",
				zap.String("id", obj.ID),
				zap.String("parent", obj.Parent),
				zap.String("file", obj.SourceFile))
			obj.Parent = ""
			continue
		}
		if err != nil && !errors.Is(err, graph.ErrEdgeAlreadyExists) {
			return err
		}
	}

	adjacency, err := g.AdjacencyMap()
	if err != nil {
		return err
	}
	for id, edges := range adjacency {
		if len(edges) == 0 {
			continue
		}
		obj, _ := objects.Get(id)
		obj.Children = make([]string, 0, len(edges))
		for child := range edges {
			obj.Children = append(obj.Children, child)
		}
		slices.Sort(obj.Children)
	}
	return nil
}

func (l *Loader) unresolved(obj *Object, field, ref string) {
	l.logger.Warn("Unresolved starmap reference",
		zap.String("id", obj.ID),
		zap.String("reference", field),
		zap.String("target", ref),
		zap.String("file", obj.SourceFile))
}
