package entity

import (
	"context"

	"scdb-loader/core/index"
	"scdb-loader/core/utils"
	"scdb-loader/feature/entity/models"

	"go.uber.org/zap"
)

// ItemLoader builds the item index.
type ItemLoader struct {
	base
}

// NewItemLoader creates an ItemLoader.
func NewItemLoader(deps Dependencies) *ItemLoader {
	return &ItemLoader{base: newBase(deps, "item")}
}

// Load parses every item definition and returns the item index.
func (l *ItemLoader) Load(ctx context.Context) (*index.Index[*models.Item], error) {
	items := index.New[*models.Item]()

	err := l.each(ctx, []string{l.Tree.Config().Items}, func(def *models.Definition, source, _ string) {
		item := l.build(def, source)
		insert(&l.base, items, item.ClassName, source, item)
	})
	if err != nil {
		return nil, err
	}

	l.Logger.Info("Items loaded", zap.Int("count", items.Len()))
	return items, nil
}

func (l *ItemLoader) build(def *models.Definition, source string) *models.Item {
	item := &models.Item{ClassName: def.ClassName, SourceFile: source}

	if a := def.Components.Attachable; a != nil {
		attach := a.AttachDef
		item.Name = l.Localizer.Text(attach.Localization.Name)
		item.Description = l.Localizer.Text(attach.Localization.Description)
		item.Type = attach.Type
		item.SubType = attach.SubType
		item.Size = utils.ToInt(attach.Size)
		item.Grade = utils.ToInt(attach.Grade)
		item.Manufacturer = l.resolve(l.Manufacturers, "manufacturer", attach.Manufacturer, def.ClassName, source)
	}
	if c := def.Components.AmmoContainer; c != nil {
		item.Ammo = l.resolve(l.Ammo, "ammo", c.AmmoParamsRecord, def.ClassName, source)
	}
	item.Loadout = l.expand(def, source)

	return item
}
