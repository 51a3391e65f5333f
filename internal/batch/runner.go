package batch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/oklog/ulid/v2"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvtext/internal/logger"
)

// Result is the outcome of one job. Exactly one of Output and Error is
// meaningful; Invalid marks caller-input errors.
type Result struct {
	Index   int    `json:"index" yaml:"index"`
	ID      string `json:"id,omitempty" yaml:"id,omitempty"`
	Op      Op     `json:"op" yaml:"op"`
	Output  string `json:"output" yaml:"output"`
	Error   string `json:"error,omitempty" yaml:"error,omitempty"`
	Invalid bool   `json:"invalid,omitempty" yaml:"invalid,omitempty"`
}

// Report aggregates a run.
type Report struct {
	RunID   string   `json:"run_id" yaml:"run_id"`
	Failed  int      `json:"failed" yaml:"failed"`
	Results []Result `json:"results" yaml:"results"`
}

// Option customizes a Runner.
type Option func(*Runner)

// WithWorkers bounds concurrent job evaluation. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("batch: WithWorkers(n<1)")
	}
	return func(r *Runner) { r.workers = n }
}

// WithLogger sets the run logger.
func WithLogger(l logger.Logger) Option {
	return func(r *Runner) { r.log = logger.Named(l, "batch") }
}

// WithSettings sets the per-operation knobs.
func WithSettings(s Settings) Option {
	return func(r *Runner) { r.settings = s }
}

// Runner evaluates jobs concurrently. The transformations are pure, so
// jobs share nothing and results are written to distinct slots.
type Runner struct {
	workers  int
	log      logger.Logger
	settings Settings
}

// NewRunner returns a Runner with one worker and a no-op logger unless
// overridden.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{workers: 1, log: logger.Nop()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run validates jobs, then evaluates them with at most the configured
// number in flight. Per-job failures are recorded in the Report. Run only
// returns an error for invalid jobs or when ctx is cancelled, in which case
// the partial Report covers the jobs that were scheduled.
func (r *Runner) Run(ctx context.Context, jobs []Job) (Report, error) {
	if err := ValidateJobs(jobs); err != nil {
		return Report{}, err
	}

	rep := Report{RunID: ulid.Make().String(), Results: make([]Result, len(jobs))}
	log := r.log.With().Str("run_id", rep.RunID).Logger()
	log.Info().Int("jobs", len(jobs)).Int("workers", r.workers).Msg("batch started")
	start := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	scheduled := 0
	for i, j := range jobs {
		if gctx.Err() != nil {
			break
		}
		scheduled++
		g.Go(func() error {
			rep.Results[i] = r.exec(log, i, j)
			return nil
		})
	}
	_ = g.Wait()

	rep.Results = rep.Results[:scheduled]
	for _, res := range rep.Results {
		if res.Error != "" {
			rep.Failed++
		}
	}
	log.Info().
		Int("failed", rep.Failed).
		Int("completed", scheduled).
		Dur("elapsed", time.Since(start)).
		Msg("batch finished")

	if err := ctx.Err(); err != nil {
		return rep, fmt.Errorf("batch: run %s: %w", rep.RunID, err)
	}
	return rep, nil
}

func (r *Runner) exec(log logger.Logger, i int, j Job) Result {
	res := Result{Index: i, ID: j.ID, Op: j.Op}
	out, err := Eval(j, r.settings)
	if err != nil {
		res.Error = err.Error()
		res.Invalid = IsInvalidInput(err)
		log.Debug().Int("index", i).Str("op", string(j.Op)).Err(err).Msg("job failed")
		return res
	}
	res.Output = out
	log.Debug().Int("index", i).Str("op", string(j.Op)).Msg("job done")
	return res
}

// WriteReport renders rep as indented JSON or YAML.
func WriteReport(w io.Writer, rep Report, format string) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rep); err != nil {
			return fmt.Errorf("batch: encode yaml: %w", err)
		}
		return enc.Close()
	case "json", "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rep); err != nil {
			return fmt.Errorf("batch: encode json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("batch: unknown output format %q", format)
	}
}
