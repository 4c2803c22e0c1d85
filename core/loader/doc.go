// Package loader runs the load pipeline's stages in order and times them.
//
// A stage is a named function. Runner.Stage runs one stage; Runner.Parallel
// runs independent sibling stages concurrently and returns only once every
// sibling has finished, so a later stage never observes a half-built index.
// Skipped stages are recorded with zero duration, matching the summary table
// the loader prints at the end of a run.
//
// # Usage
//
//	r := loader.NewRunner(logger)
//	err := r.Stage(ctx, "labels", func(ctx context.Context) error { ... })
//	err = r.Parallel(ctx, "references",
//	    loader.Step{Name: "manufacturers", Run: loadManufacturers},
//	    loader.Step{Name: "ammo", Run: loadAmmo},
//	)
//	fmt.Print(r.Summary())
package loader
