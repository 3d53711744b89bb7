package batch

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/npillmayer/fuzzy"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func triangle(t *testing.T) fuzzy.Set {
	t.Helper()
	s, err := fuzzy.Triangular(0, 2, 4, fuzzy.DefaultConfig())
	require.NoError(t, err)
	return s
}

func translations(t *testing.T, n int) []Job {
	a := triangle(t)
	jobs := make([]Job, n)
	for i := range jobs {
		op := fuzzy.OpAdd
		if i%2 == 1 {
			op = fuzzy.OpSubtract
		}
		jobs[i] = Job{ID: fmt.Sprintf("job-%d", i), Op: op, A: a, B: fuzzy.Crisp(float64(i))}
	}
	return jobs
}

func TestRunKeepsJobOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fuzzy")
	defer teardown()

	runner := NewRunner(fuzzy.DefaultConfig(), WithWorkers(4))
	defer runner.Close()
	jobs := translations(t, 20)
	results, err := runner.Run(context.Background(), jobs)
	require.NoError(t, err)
	require.Len(t, results, len(jobs))
	for i, res := range results {
		require.NoError(t, res.Err)
		assert.Equal(t, jobs[i].ID, res.ID)
		ext, ok := res.Set.Support().Extent()
		require.True(t, ok)
		shift := float64(i)
		if i%2 == 1 {
			shift = -shift
		}
		assert.InDelta(t, shift, ext.Lo, 1e-12, res.ID)
		assert.InDelta(t, 4+shift, ext.Hi, 1e-12, res.ID)
	}
}

func TestRunReportsJobErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fuzzy")
	defer teardown()

	runner := NewRunner(fuzzy.DefaultConfig(), WithWorkers(2))
	defer runner.Close()
	jobs := translations(t, 3)
	jobs[1].B = fuzzy.Set{}
	results, err := runner.Run(context.Background(), jobs)
	require.NoError(t, err)
	assert.NoError(t, results[0].Err)
	assert.True(t, errors.Is(results[1].Err, fuzzy.ErrEmptySet))
	assert.NoError(t, results[2].Err)
}

func TestRunCancelled(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fuzzy")
	defer teardown()

	runner := NewRunner(fuzzy.DefaultConfig())
	defer runner.Close()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	results, err := runner.Run(ctx, translations(t, 5))
	assert.True(t, errors.Is(err, context.Canceled))
	require.Len(t, results, 5)
	for _, res := range results {
		assert.True(t, errors.Is(res.Err, context.Canceled), res.ID)
	}
}

func TestRunRejects(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fuzzy")
	defer teardown()

	runner := NewRunner(fuzzy.DefaultConfig())
	jobs := translations(t, 2)
	jobs[1].ID = jobs[0].ID
	_, err := runner.Run(context.Background(), jobs)
	assert.True(t, errors.Is(err, ErrDuplicateJob))

	cfg := fuzzy.DefaultConfig()
	cfg.Resolution = -3
	_, err = NewRunner(cfg).Run(context.Background(), nil)
	assert.True(t, errors.Is(err, fuzzy.ErrIllegalArguments))

	runner.Close()
	runner.Close()
	_, err = runner.Run(context.Background(), translations(t, 1))
	assert.True(t, errors.Is(err, ErrRunnerClosed))
	_, err = runner.Subscribe(context.Background(), 1)
	assert.True(t, errors.Is(err, ErrRunnerClosed))
}

func TestSubscribe(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fuzzy")
	defer teardown()

	runner := NewRunner(fuzzy.DefaultConfig(), WithWorkers(3))
	defer runner.Close()
	jobs := translations(t, 6)
	ch, err := runner.Subscribe(context.Background(), uint(len(jobs)))
	require.NoError(t, err)
	_, err = runner.Run(context.Background(), jobs)
	require.NoError(t, err)
	seen := make(map[string]bool)
	timeout := time.After(5 * time.Second)
	for len(seen) < len(jobs) {
		select {
		case msg := <-ch:
			res, ok := msg.(Result)
			require.True(t, ok, "unexpected message %v", msg)
			seen[res.ID] = true
		case <-timeout:
			t.Fatalf("received %d of %d results", len(seen), len(jobs))
		}
	}
	for _, job := range jobs {
		assert.True(t, seen[job.ID], job.ID)
	}
}

func TestMetrics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fuzzy")
	defer teardown()

	reg := prometheus.NewRegistry()
	m, err := NewMetrics(reg)
	require.NoError(t, err)
	runner := NewRunner(fuzzy.DefaultConfig(), WithMetrics(m))
	defer runner.Close()
	jobs := translations(t, 4)
	jobs[3].A = fuzzy.Set{}
	_, err = runner.Run(context.Background(), jobs)
	require.NoError(t, err)
	assert.Equal(t, 2.0, testutil.ToFloat64(m.operations.WithLabelValues("add", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.operations.WithLabelValues("subtract", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.operations.WithLabelValues("subtract", "error")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.levels))

	_, err = NewMetrics(reg)
	assert.Error(t, err, "metrics may not be registered twice")
	var none *Metrics
	none.observe(Result{})
}
