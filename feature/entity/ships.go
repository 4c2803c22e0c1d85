package entity

import (
	"context"

	"scdb-loader/core/index"
	"scdb-loader/core/utils"
	"scdb-loader/feature/entity/models"

	"go.uber.org/zap"
)

// ShipLoader builds the ship index from the spaceship and ground vehicle
// folders. The folder decides IsSpaceship versus IsGroundVehicle.
type ShipLoader struct {
	base
}

// NewShipLoader creates a ShipLoader.
func NewShipLoader(deps Dependencies) *ShipLoader {
	return &ShipLoader{base: newBase(deps, "ship")}
}

// Load parses every vehicle definition and returns the ship index.
func (l *ShipLoader) Load(ctx context.Context) (*index.Index[*models.Ship], error) {
	ships := index.New[*models.Ship]()

	spaceships := l.Tree.Config().Spaceships
	folders := []string{spaceships, l.Tree.Config().GroundVehicles}

	err := l.each(ctx, folders, func(def *models.Definition, source, folder string) {
		if def.Components.Vehicle == nil {
			l.Logger.Warn("Skipping definition without vehicle component",
				zap.String("class", def.ClassName), zap.String("file", source))
			return
		}
		ship := l.build(def, source, folder == spaceships)
		insert(&l.base, ships, ship.ClassName, source, ship)
	})
	if err != nil {
		return nil, err
	}

	l.Logger.Info("Ships loaded", zap.Int("count", ships.Len()))
	return ships, nil
}

func (l *ShipLoader) build(def *models.Definition, source string, spaceship bool) *models.Ship {
	v := def.Components.Vehicle
	gravlev := utils.ToBool(v.IsGravlevVehicle)

	return &models.Ship{
		ClassName:        def.ClassName,
		SourceFile:       source,
		Name:             l.Localizer.Text(v.Name),
		Description:      l.Localizer.Text(v.Description),
		Career:           l.Localizer.Text(v.Career),
		Role:             l.Localizer.Text(v.Role),
		Size:             utils.ToInt(v.Size),
		Crew:             utils.ToInt(v.CrewSize),
		IsSpaceship:      spaceship,
		IsGroundVehicle:  !spaceship && !gravlev,
		IsGravlevVehicle: gravlev,
		DogFightEnabled:  utils.ToBool(v.DogfightEnabled),
		Manufacturer:     l.resolve(l.Manufacturers, "manufacturer", v.Manufacturer, def.ClassName, source),
		Loadout:          l.expand(def, source),
	}
}
