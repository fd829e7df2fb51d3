package main

import (
	"context"
	"math/rand"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/ar90n/prioritree"
	"github.com/ar90n/prioritree/pipeline"
	"github.com/cockroachdb/errors"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/sourcegraph/conc/pool"
	"golang.org/x/exp/slices"
)

type benchConfig struct {
	Queues        uint
	Entries       uint
	MaxPriority   uint
	Seed          int64
	MaxGoroutines uint
}

func getProcNum(maxGoroutines uint) int {
	if maxGoroutines == 0 {
		return runtime.NumCPU()
	}

	return int(maxGoroutines)
}

// runBench replays the same random workloads on every backend and fails if
// any backend dequeues them in a different order. Workloads run
// concurrently, one queue per goroutine.
func runBench(ctx context.Context, logger log.Logger, cfg benchConfig) (map[string]time.Duration, error) {
	if cfg.MaxPriority == 0 {
		return nil, errors.New("max priority must be positive")
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	workloads := make([][]prioritree.Entry[int], cfg.Queues)
	for i := range workloads {
		workloads[i] = make([]prioritree.Entry[int], cfg.Entries)
		for j := range workloads[i] {
			workloads[i][j] = prioritree.Entry[int]{
				Value:    j,
				Priority: rng.Intn(int(cfg.MaxPriority)),
			}
		}
	}
	level.Debug(logger).Log("msg", "generated workloads", "queues", cfg.Queues, "entries", cfg.Entries)

	elapsed := make([]atomic.Int64, len(backendNames))
	p := pool.New().WithMaxGoroutines(getProcNum(cfg.MaxGoroutines)).WithErrors()
	for i := range pipeline.Seq(ctx, cfg.Queues) {
		i := i
		p.Go(func() error {
			return runWorkload(i, workloads[i], elapsed)
		})
	}
	if err := p.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ops := float64(2 * cfg.Queues * cfg.Entries)
	totals := make(map[string]time.Duration, len(backendNames))
	for i, name := range backendNames {
		d := time.Duration(elapsed[i].Load())
		totals[name] = d

		opsPerSec := 0.0
		if 0 < d {
			opsPerSec = ops / d.Seconds()
		}
		level.Info(logger).Log("msg", "backend finished", "backend", name, "elapsed", d, "ops_per_sec", int64(opsPerSec))
	}

	return totals, nil
}

func runWorkload(id int, workload []prioritree.Entry[int], elapsed []atomic.Int64) error {
	var want []prioritree.Entry[int]
	for i, name := range backendNames {
		q, err := newQueue[int](name)
		if err != nil {
			return err
		}

		start := time.Now()
		for _, e := range workload {
			q.Enqueue(e.Value, e.Priority)
		}
		got := make([]prioritree.Entry[int], 0, len(workload))
		for 0 < q.Len() {
			entry, err := q.DequeueWithPriority()
			if err != nil {
				return errors.Wrapf(err, "workload %d: backend %s", id, name)
			}
			got = append(got, entry)
		}
		elapsed[i].Add(int64(time.Since(start)))

		if i == 0 {
			want = got
			continue
		}
		if !slices.Equal(want, got) {
			return errors.Newf("workload %d: backend %s disagrees with %s", id, name, backendNames[0])
		}
	}

	return nil
}
