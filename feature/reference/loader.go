package reference

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"

	"scdb-loader/core/content"
	"scdb-loader/core/parser"
	"scdb-loader/core/utils"

	"go.uber.org/zap"
)

type manufacturerFile struct {
	XMLName      xml.Name
	Code         string `xml:"Code,attr"`
	Localization struct {
		Name        string `xml:"Name,attr"`
		Description string `xml:"Description,attr"`
	} `xml:"Localization"`
}

type ammoFile struct {
	XMLName xml.Name
	Attrs   []xml.Attr `xml:",any,attr"`
	Damage  *struct {
		Attrs []xml.Attr `xml:",any,attr"`
	} `xml:"damage"`
}

// LoadManufacturers builds the manufacturer index from the configured folder.
func LoadManufacturers(ctx context.Context, tree *content.Tree, loc Localizer, logger *zap.Logger) (*Index, error) {
	return load(ctx, tree, tree.Config().Manufacturers, "manufacturer", logger, func(path string) (*Record, error) {
		doc, err := parser.Parse[manufacturerFile](path)
		if err != nil {
			return nil, err
		}

		code := doc.Code
		if code == "" {
			code = parser.RecordName(doc.XMLName, path)
		}
		return &Record{
			Code:        code,
			Name:        loc.Text(doc.Localization.Name),
			Description: loc.Text(doc.Localization.Description),
		}, nil
	})
}

// LoadAmmo builds the ammunition index from the configured folder. Numeric
// attributes are kept as numbers; the damage element becomes a nested
// "damage" attribute.
func LoadAmmo(ctx context.Context, tree *content.Tree, loc Localizer, logger *zap.Logger) (*Index, error) {
	return load(ctx, tree, tree.Config().Ammo, "ammo", logger, func(path string) (*Record, error) {
		doc, err := parser.Parse[ammoFile](path)
		if err != nil {
			return nil, err
		}

		rec := &Record{
			Code:       parser.RecordName(doc.XMLName, path),
			Attributes: make(map[string]any),
		}
		for _, a := range doc.Attrs {
			switch a.Name.Local {
			case "name":
				rec.Name = loc.Text(a.Value)
			case "description":
				rec.Description = loc.Text(a.Value)
			case "__type", "__ref", "__path":
			default:
				rec.Attributes[a.Name.Local] = utils.ToNumber(a.Value)
			}
		}
		if doc.Damage != nil && len(doc.Damage.Attrs) > 0 {
			damage := make(map[string]any, len(doc.Damage.Attrs))
			for _, a := range doc.Damage.Attrs {
				damage[a.Name.Local] = utils.ToNumber(a.Value)
			}
			rec.Attributes["damage"] = damage
		}
		if len(rec.Attributes) == 0 {
			rec.Attributes = nil
		}
		return rec, nil
	})
}

func load(ctx context.Context, tree *content.Tree, folder, kind string, logger *zap.Logger, parse func(path string) (*Record, error)) (*Index, error) {
	files, err := tree.Files(folder, ".xml")
	if err != nil {
		return nil, err
	}

	ix := NewIndex()
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		source := tree.Rel(path)
		rec, err := parse(path)
		if err != nil {
			logSkip(logger, kind, source, err)
			continue
		}
		if rec.Code == "" {
			logger.Warn("Skipping record without code", zap.String("kind", kind), zap.String("file", source))
			continue
		}

		rec.Source = source
		if prev, replaced := ix.Insert(rec.Code, source, rec); replaced {
			logger.Warn("Duplicate record code, keeping the later file",
				zap.String("kind", kind),
				zap.String("code", rec.Code),
				zap.String("previous", prev.Source),
				zap.String("current", source))
		}
	}

	logger.Info("Reference records loaded", zap.String("kind", kind), zap.Int("count", ix.Len()))
	return ix, nil
}

func logSkip(logger *zap.Logger, kind, source string, err error) {
	reason := "unreadable"
	if parser.IsParseError(err) {
		reason = "malformed"
	} else if errors.Is(err, parser.ErrMissingAsset) {
		reason = "missing"
	}
	logger.Warn(fmt.Sprintf("Skipping %s %s file", reason, kind), zap.String("file", source), zap.Error(err))
}
