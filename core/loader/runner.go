package loader

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Step is one named unit of work.
type Step struct {
	Name string
	Run  func(ctx context.Context) error
}

// Timing records how long a stage took.
type Timing struct {
	Name     string
	Duration time.Duration
	Skipped  bool
}

// Runner executes stages and collects their timings.
type Runner struct {
	logger *zap.Logger

	mu      sync.Mutex
	timings []Timing
	started time.Time
}

// NewRunner creates a Runner logging stage boundaries to logger.
func NewRunner(logger *zap.Logger) *Runner {
	return &Runner{logger: logger, started: time.Now()}
}

// Stage runs fn as the stage name. An error aborts the pipeline; stages are
// expected to absorb per-record problems themselves.
func (r *Runner) Stage(ctx context.Context, name string, fn func(ctx context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.logger.Info("Stage started", zap.String("stage", name))
	start := time.Now()
	err := fn(ctx)
	elapsed := time.Since(start)
	r.record(Timing{Name: name, Duration: elapsed})

	if err != nil {
		r.logger.Error("Stage failed", zap.String("stage", name), zap.Error(err))
		return fmt.Errorf("stage %s: %w", name, err)
	}
	r.logger.Info("Stage finished", zap.String("stage", name), zap.Duration("elapsed", elapsed))
	return nil
}

// Skip records a stage that was not run.
func (r *Runner) Skip(name string) {
	r.logger.Info("Stage skipped", zap.String("stage", name))
	r.record(Timing{Name: name, Skipped: true})
}

// Parallel runs independent steps concurrently as one stage. It returns
// after all steps have completed; the first error is returned.
func (r *Runner) Parallel(ctx context.Context, name string, steps ...Step) error {
	return r.Stage(ctx, name, func(ctx context.Context) error {
		g, gctx := errgroup.WithContext(ctx)
		for _, s := range steps {
			g.Go(func() error {
				start := time.Now()
				err := s.Run(gctx)
				r.record(Timing{Name: name + "/" + s.Name, Duration: time.Since(start)})
				if err != nil {
					return fmt.Errorf("%s: %w", s.Name, err)
				}
				return nil
			})
		}
		return g.Wait()
	})
}

// Timings returns the recorded stage timings in completion order.
func (r *Runner) Timings() []Timing {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Timing, len(r.timings))
	copy(out, r.timings)
	return out
}

// Summary renders the timing table printed at the end of a run.
func (r *Runner) Summary() string {
	var b strings.Builder
	for _, t := range r.Timings() {
		if t.Skipped {
			fmt.Fprintf(&b, "  %-28s: skipped\n", t.Name)
			continue
		}
		fmt.Fprintf(&b, "  %-28s: %s\n", t.Name, t.Duration.Round(time.Millisecond))
	}
	fmt.Fprintf(&b, "  %-28s: %s\n", "Total Elapsed", time.Since(r.started).Round(time.Millisecond))
	return b.String()
}

func (r *Runner) record(t Timing) {
	r.mu.Lock()
	r.timings = append(r.timings, t)
	r.mu.Unlock()
}
