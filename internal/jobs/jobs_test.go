package jobs

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/zap"

	"github.com/Spok95/online-catalogue/internal/metrics"
	"github.com/Spok95/online-catalogue/internal/models"
)

type statsFunc func(ctx context.Context) (models.Stats, error)

func (f statsFunc) Stats(ctx context.Context) (models.Stats, error) { return f(ctx) }

func TestPublishStats(t *testing.T) {
	before := float64(time.Now().Unix())
	job := PublishStats(statsFunc(func(context.Context) (models.Stats, error) {
		return models.Stats{Students: 3, Teachers: 2, Subjects: 4, Marks: 11}, nil
	}))
	if err := job(context.Background()); err != nil {
		t.Fatal(err)
	}
	want := map[string]float64{"students": 3, "teachers": 2, "subjects": 4, "marks": 11}
	for table, v := range want {
		if got := testutil.ToFloat64(metrics.Entities.WithLabelValues(table)); got != v {
			t.Fatalf("%s = %v, want %v", table, got, v)
		}
	}
	if got := testutil.ToFloat64(statsLastSuccess); got < before {
		t.Fatalf("last success %v not stamped (before %v)", got, before)
	}
}

func TestPublishStats_Error(t *testing.T) {
	statsLastSuccess.Set(42)
	boom := errors.New("boom")
	job := PublishStats(statsFunc(func(context.Context) (models.Stats, error) { return models.Stats{}, boom }))
	if err := job(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("got %v", err)
	}
	if got := testutil.ToFloat64(statsLastSuccess); got != 42 {
		t.Fatalf("failed run moved last success to %v", got)
	}
}

func TestRunnerCountsRunsAndErrors(t *testing.T) {
	r := New(context.Background(), zap.NewNop())

	r.run("ok_job", func(context.Context) error { return nil })
	r.run("bad_job", func(context.Context) error { return errors.New("x") })
	r.run("panic_job", func(context.Context) error { panic("kaboom") })

	if got := testutil.ToFloat64(jobRuns.WithLabelValues("ok_job")); got != 1 {
		t.Fatalf("ok_job runs = %v", got)
	}
	if got := testutil.ToFloat64(jobErrors.WithLabelValues("ok_job")); got != 0 {
		t.Fatalf("ok_job errors = %v", got)
	}
	for _, name := range []string{"bad_job", "panic_job"} {
		if got := testutil.ToFloat64(jobErrors.WithLabelValues(name)); got != 1 {
			t.Fatalf("%s errors = %v", name, got)
		}
	}
}

func TestEveryStopsWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	ticks := make(chan struct{}, 16)
	New(ctx, zap.NewNop()).Every(5*time.Millisecond, "tick_job", func(context.Context) error {
		select {
		case ticks <- struct{}{}:
		default:
		}
		return nil
	})

	select {
	case <-ticks:
	case <-time.After(2 * time.Second):
		t.Fatal("job never ran")
	}
	cancel()
}

func TestWaitLetsRunningJobFinish(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	r := New(ctx, zap.NewNop())

	started := make(chan struct{}, 1)
	var finished atomic.Bool
	r.Every(5*time.Millisecond, "slow_job", func(context.Context) error {
		select {
		case started <- struct{}{}:
		default:
		}
		time.Sleep(200 * time.Millisecond)
		finished.Store(true)
		return nil
	})

	select {
	case <-started:
	case <-time.After(2 * time.Second):
		t.Fatal("job never ran")
	}
	cancel()
	r.Wait()
	if !finished.Load() {
		t.Fatal("Wait returned while the job was still running")
	}
}
