package shop

import (
	"context"

	"scdb-loader/core/content"
	"scdb-loader/core/index"
	"scdb-loader/core/parser"
	"scdb-loader/core/utils"
	"scdb-loader/feature/entity/models"

	"go.uber.org/zap"
)

// Localizer resolves "@key" display text.
type Localizer interface {
	Text(value string) string
}

// Loader builds the shop index.
type Loader struct {
	tree    *content.Tree
	loc     Localizer
	items   index.Reader[*models.Item]
	ships   index.Reader[*models.Ship]
	logger  *zap.Logger
	missing *zap.Logger
}

// NewLoader creates a shop Loader. items and ships are read only. Each
// unresolved listing is written to missing; nil discards them.
func NewLoader(tree *content.Tree, loc Localizer, items index.Reader[*models.Item], ships index.Reader[*models.Ship], logger, missing *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	if missing == nil {
		missing = zap.NewNop()
	}
	return &Loader{tree: tree, loc: loc, items: items, ships: ships, logger: logger, missing: missing}
}

// Load parses every shop file and returns the shop index keyed by shop id.
func (l *Loader) Load(ctx context.Context) (*index.Index[*Shop], error) {
	files, err := l.tree.Files(l.tree.Config().Shops, ".xml")
	if err != nil {
		return nil, err
	}

	shops := index.New[*Shop]()
	dropped := 0
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		source := l.tree.Rel(path)
		doc, err := parser.Parse[shopFile](path)
		if err != nil {
			l.logger.Warn("Skipping unreadable shop", zap.String("file", source), zap.Error(err))
			continue
		}

		shop := &Shop{
			ID:         doc.ID,
			Name:       l.loc.Text(doc.Name),
			Location:   l.loc.Text(doc.Location),
			SourceFile: source,
		}
		if shop.ID == "" {
			shop.ID = parser.RecordName(doc.XMLName, path)
		}

		for _, p := range doc.Inventory {
			listing, ok := l.resolve(p)
			if !ok {
				dropped++
				l.missing.Info("missing shop reference",
					zap.String("shop", shop.ID),
					zap.String("item", p.ItemRef),
					zap.String("file", source))
				continue
			}
			shop.Inventory = append(shop.Inventory, listing)
		}

		if prev, replaced := shops.Insert(shop.ID, source, shop); replaced {
			l.logger.Warn("Duplicate shop id, keeping the later file",
				zap.String("shop", shop.ID),
				zap.String("previous", prev.Source),
				zap.String("current", source))
		}
	}

	l.logger.Info("Shops loaded", zap.Int("count", shops.Len()), zap.Int("dropped_listings", dropped))
	return shops, nil
}

// resolve matches a product against items first, then ships.
func (l *Loader) resolve(p productFile) (*Listing, bool) {
	listing := &Listing{
		ItemRef:   p.ItemRef,
		BasePrice: utils.ToFloat(p.BasePrice),
		Buyable:   utils.ToBool(p.Buyable),
		Sellable:  utils.ToBool(p.Sellable),
	}

	if item, ok := l.items.Get(p.ItemRef); ok {
		listing.Kind = KindItem
		listing.Name = item.Name
		return listing, true
	}
	if ship, ok := l.ships.Get(p.ItemRef); ok {
		listing.Kind = KindShip
		listing.Name = ship.Name
		return listing, true
	}
	return nil, false
}
