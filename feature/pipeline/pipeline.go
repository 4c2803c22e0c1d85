package pipeline

import (
	"context"
	"sync"

	"scdb-loader/core/content"
	"scdb-loader/core/index"
	"scdb-loader/core/loader"
	"scdb-loader/core/reconcile"
	"scdb-loader/feature/catalog"
	"scdb-loader/feature/entity"
	"scdb-loader/feature/entity/models"
	"scdb-loader/feature/loadout"
	"scdb-loader/feature/localisation"
	"scdb-loader/feature/reference"
	"scdb-loader/feature/shop"
	"scdb-loader/feature/starmap"

	"go.uber.org/zap"
)

// Stage names as printed in the run summary.
const (
	StageLocalisation = "Load Labels"
	StageReferences   = "Load References"
	StageItems        = "Load Items"
	StageShips        = "Load Ships"
	StageShops        = "Load Shops"
	StageStarmap      = "Load Starmap"
)

// Options configure one run.
type Options struct {
	Content   content.Config
	ShipsOnly bool

	// Emitter receives every index. Required.
	Emitter *catalog.Emitter
	// Store, when set, receives a relational snapshot of every index.
	Store *catalog.Store

	// Logger is the run log.
	Logger *zap.Logger
	// Missing receives one line per unresolved shop listing.
	Missing *zap.Logger
}

// Result holds everything a run built.
type Result struct {
	Localisation  *localisation.Service
	Manufacturers *reference.Index
	Ammo          *reference.Index
	Items         *index.Index[*models.Item]
	Ships         *index.Index[*models.Ship]
	Shops         *index.Index[*shop.Shop]
	Starmap       *index.Index[*starmap.Object]

	// MissingFolders lists layout folders absent from the content root.
	MissingFolders []string
	// Changes summarizes each kind against the previous stored snapshot.
	// Only populated when a store is configured.
	Changes map[string]reconcile.Summary
	Timings        []loader.Timing
	Summary        string
}

// Run executes the pipeline.
func Run(ctx context.Context, opts Options) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	missing, err := content.CheckStructure(opts.Content)
	if err != nil {
		return nil, err
	}
	for _, folder := range missing {
		logger.Warn("Content folder missing, its index will be empty", zap.String("folder", folder))
	}

	p := &run{
		opts:   opts,
		logger: logger,
		tree:   content.NewTree(opts.Content),
		runner: loader.NewRunner(logger),
		res:    &Result{MissingFolders: missing},
	}
	if err := p.execute(ctx); err != nil {
		return nil, err
	}

	p.res.Timings = p.runner.Timings()
	p.res.Summary = p.runner.Summary()
	logger.Info("Run finished", zap.Int64("localisation_misses", p.res.Localisation.Misses()))
	return p.res, nil
}

type run struct {
	opts   Options
	logger *zap.Logger
	tree   *content.Tree
	runner *loader.Runner
	res    *Result

	mu sync.Mutex // guards res.Changes across parallel steps
}

func (p *run) execute(ctx context.Context) error {
	res := p.res

	err := p.runner.Stage(ctx, StageLocalisation, func(ctx context.Context) error {
		svc, err := localisation.Load(p.tree, p.opts.Content.Language)
		if err != nil {
			return err
		}
		res.Localisation = svc
		p.logger.Info("Labels loaded", zap.String("language", p.opts.Content.Language), zap.Int("count", svc.Len()))
		return nil
	})
	if err != nil {
		return err
	}

	err = p.runner.Parallel(ctx, StageReferences,
		loader.Step{Name: "Manufacturers", Run: func(ctx context.Context) error {
			ix, err := reference.LoadManufacturers(ctx, p.tree, res.Localisation, p.logger)
			if err != nil {
				return err
			}
			res.Manufacturers = ix
			return emit(ctx, p, catalog.Manufacturers, ix.Index, referenceName)
		}},
		loader.Step{Name: "Ammo", Run: func(ctx context.Context) error {
			ix, err := reference.LoadAmmo(ctx, p.tree, res.Localisation, p.logger)
			if err != nil {
				return err
			}
			res.Ammo = ix
			return emit(ctx, p, catalog.Ammo, ix.Index, referenceName)
		}},
	)
	if err != nil {
		return err
	}

	deps := entity.Dependencies{
		Tree:          p.tree,
		Localizer:     res.Localisation,
		Manufacturers: res.Manufacturers,
		Ammo:          res.Ammo,
		Loadouts:      loadout.NewResolver(p.tree),
		Logger:        p.logger,
	}

	if p.opts.ShipsOnly {
		p.runner.Skip(StageItems)
	} else if err := p.runner.Stage(ctx, StageItems, func(ctx context.Context) error {
		ix, err := entity.NewItemLoader(deps).Load(ctx)
		if err != nil {
			return err
		}
		res.Items = ix
		return emit(ctx, p, catalog.Items, ix, func(i *models.Item) string { return i.Name })
	}); err != nil {
		return err
	}

	err = p.runner.Stage(ctx, StageShips, func(ctx context.Context) error {
		ix, err := entity.NewShipLoader(deps).Load(ctx)
		if err != nil {
			return err
		}
		res.Ships = ix
		return emit(ctx, p, catalog.Ships, ix, func(s *models.Ship) string { return s.Name })
	})
	if err != nil {
		return err
	}

	if p.opts.ShipsOnly {
		p.runner.Skip(StageShops)
		p.runner.Skip(StageStarmap)
		return nil
	}

	err = p.runner.Stage(ctx, StageShops, func(ctx context.Context) error {
		ix, err := shop.NewLoader(p.tree, res.Localisation, res.Items, res.Ships, p.logger, p.opts.Missing).Load(ctx)
		if err != nil {
			return err
		}
		res.Shops = ix
		return emit(ctx, p, catalog.Shops, ix, func(s *shop.Shop) string { return s.Name })
	})
	if err != nil {
		return err
	}

	return p.runner.Stage(ctx, StageStarmap, func(ctx context.Context) error {
		ix, err := starmap.NewLoader(p.tree, res.Localisation, p.logger).Load(ctx)
		if err != nil {
			return err
		}
		res.Starmap = ix
		return emit(ctx, p, catalog.Starmap, ix, func(o *starmap.Object) string { return o.Name })
	})
}

// emit is the terminal action of a stage: write the artifact and, when a
// store is configured, replace the snapshot rows of that kind.
func emit[T any](ctx context.Context, p *run, name string, ix *index.Index[T], label func(T) string) error {
	if _, err := p.opts.Emitter.Emit(name, ix.Values()); err != nil {
		return err
	}
	if p.opts.Store == nil {
		return nil
	}

	rows, err := catalog.Rows(name, ix, label)
	if err != nil {
		return err
	}
	report, err := p.opts.Store.Diff(ctx, name, rows)
	if err != nil {
		return err
	}
	p.record(name, report.Summary)
	return p.opts.Store.Replace(ctx, name, rows)
}

func (p *run) record(kind string, summary reconcile.Summary) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.res.Changes == nil {
		p.res.Changes = make(map[string]reconcile.Summary)
	}
	p.res.Changes[kind] = summary
}

func referenceName(r *reference.Record) string {
	return r.Name
}
