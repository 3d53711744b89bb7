package batch

import (
	"context"
	"fmt"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/guiguan/caster"
	"github.com/npillmayer/fuzzy"
	"golang.org/x/sync/errgroup"
)

// Job is a single binary operation on two fuzzy sets.
type Job struct {
	ID string
	Op fuzzy.Operator
	A  fuzzy.Set
	B  fuzzy.Set
}

// Result is the outcome of a Job. Err is set if the operation failed or the
// job has been cancelled before it started.
type Result struct {
	ID      string
	Op      fuzzy.Operator
	Set     fuzzy.Set
	Err     error
	Elapsed time.Duration
}

// Runner runs batches of jobs on a bounded pool of workers.
//
// A Runner is safe for concurrent use. Multiple batches may run at the same time.
type Runner struct {
	cfg     fuzzy.Config
	workers int
	metrics *Metrics
	cast    *caster.Caster // broadcasts finished results
	closed  atomic.Bool
}

// Option configures a Runner.
type Option func(*Runner)

// WithWorkers sets the size of the worker pool. n <= 0 selects the number of
// CPUs.
func WithWorkers(n int) Option {
	return func(r *Runner) {
		r.workers = n
	}
}

// WithMetrics lets a runner record its operations.
func WithMetrics(m *Metrics) Option {
	return func(r *Runner) {
		r.metrics = m
	}
}

// NewRunner creates a runner computing jobs with configuration cfg.
func NewRunner(cfg fuzzy.Config, opts ...Option) *Runner {
	r := &Runner{cfg: cfg}
	for _, opt := range opts {
		opt(r)
	}
	if r.workers <= 0 {
		r.workers = runtime.NumCPU()
	}
	r.cast = caster.New(context.Background())
	return r
}

// Subscribe returns a channel receiving every Result the runner produces from
// now on, as a value of type Result. The subscription ends when ctx is done or
// the runner is closed. Subscribers have to drain their channel, as
// publishing a result blocks while a subscriber's channel is full.
func (r *Runner) Subscribe(ctx context.Context, capacity uint) (<-chan interface{}, error) {
	if r.closed.Load() {
		return nil, ErrRunnerClosed
	}
	ch, ok := r.cast.Sub(ctx, capacity)
	if !ok {
		return nil, ErrRunnerClosed
	}
	return ch, nil
}

// Run computes all jobs and returns their results in job order.
//
// Cancellation of ctx stops workers from starting new jobs; results of jobs
// not started carry the context's error, which is returned as well. Errors
// of single operations do not stop the batch but are reported in the result.
//
// If the runner's configuration does not carry a grid cache, a cache is
// created for the duration of the batch and shared by all of its jobs.
func (r *Runner) Run(ctx context.Context, jobs []Job) ([]Result, error) {
	if r.closed.Load() {
		return nil, ErrRunnerClosed
	}
	if err := r.cfg.Validate(); err != nil {
		return nil, err
	}
	ids := make(map[string]struct{}, len(jobs))
	for _, job := range jobs {
		if job.ID == "" {
			continue
		}
		if _, dup := ids[job.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateJob, job.ID)
		}
		ids[job.ID] = struct{}{}
	}
	cfg := r.cfg
	if cfg.Grids == nil {
		cfg.Grids = fuzzy.NewGridCache(0)
	}
	tracer().Infof("batch: running %d jobs on %d workers", len(jobs), r.workers)
	results := make([]Result, len(jobs))
	g := new(errgroup.Group)
	g.SetLimit(r.workers)
	for i, job := range jobs {
		if ctx.Err() != nil {
			results[i] = Result{ID: job.ID, Op: job.Op, Err: ctx.Err()}
			continue
		}
		g.Go(func() error {
			results[i] = r.run(ctx, job, cfg)
			return nil
		})
	}
	_ = g.Wait()
	if err := ctx.Err(); err != nil {
		tracer().Infof("batch: cancelled: %v", err)
		return results, err
	}
	tracer().Infof("batch: %d jobs done", len(jobs))
	return results, nil
}

func (r *Runner) run(ctx context.Context, job Job, cfg fuzzy.Config) Result {
	res := Result{ID: job.ID, Op: job.Op}
	if err := ctx.Err(); err != nil {
		res.Err = err
		return res
	}
	start := time.Now()
	res.Set, res.Err = fuzzy.Apply(job.Op, job.A, job.B, cfg)
	res.Elapsed = time.Since(start)
	if res.Err != nil {
		tracer().Errorf("batch: job %q: %v", job.ID, res.Err)
	}
	r.metrics.observe(res)
	r.cast.Pub(res)
	return res
}

// Close ends all subscriptions. A closed runner cannot run batches.
func (r *Runner) Close() {
	if r.closed.Swap(true) {
		return
	}
	r.cast.Close()
}
