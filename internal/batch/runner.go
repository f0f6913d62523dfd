package batch

import (
	"context"
	"io"
	"runtime"
	"sync"

	"tangled.org/ashwam.app/langid/detect"
	"tangled.org/ashwam.app/langid/internal/jsonl"
	"tangled.org/ashwam.app/langid/internal/types"
)

// Runner executes the detector across a stream of records.
// Detection is pure and per-record independent, so the parallel path
// needs no coordination beyond restoring output order by record index.
type Runner struct {
	detector *detect.Detector
	workers  int
	logger   types.Logger
}

// NewRunner creates a runner. workers <= 0 selects the CPU count.
func NewRunner(workers int, logger types.Logger) *Runner {
	if workers <= 0 {
		workers = runtime.NumCPU()
		if workers < 1 {
			workers = 1
		}
	}
	return &Runner{
		detector: detect.NewDetector(),
		workers:  workers,
		logger:   logger,
	}
}

// Workers returns the configured worker count.
func (r *Runner) Workers() int {
	return r.workers
}

// Run detects every record from in and writes one result per record to
// out, preserving input order. progress (optional) is called with the
// running count of completed records.
func (r *Runner) Run(ctx context.Context, in *jsonl.Reader, out *jsonl.Writer, progress func(done int)) (*Stats, error) {
	stats := NewStats()

	var err error
	if r.workers == 1 {
		err = r.runSequential(ctx, in, out, stats, progress)
	} else {
		err = r.runParallel(ctx, in, out, stats, progress)
	}
	if err != nil {
		return stats, err
	}

	stats.SetSkips(in.Skips())

	return stats, out.Flush()
}

func (r *Runner) runSequential(ctx context.Context, in *jsonl.Reader, out *jsonl.Writer, stats *Stats, progress func(int)) error {
	done := 0
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		rec, err := in.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		res := r.detector.Detect(rec.ID, rec.Text)
		if err := out.Write(res); err != nil {
			return err
		}

		stats.Add(res)
		done++
		if progress != nil {
			progress(done)
		}
	}
}

type job struct {
	index int
	rec   jsonl.Record
}

type indexedResult struct {
	index int
	res   detect.Result
}

func (r *Runner) runParallel(ctx context.Context, in *jsonl.Reader, out *jsonl.Writer, stats *Stats, progress func(int)) error {
	jobs := make(chan job, r.workers*2)
	results := make(chan indexedResult, r.workers*2)
	readErr := make(chan error, 1)

	// Producer
	go func() {
		defer close(jobs)
		index := 0
		for {
			rec, err := in.Next()
			if err == io.EOF {
				readErr <- nil
				return
			}
			if err != nil {
				readErr <- err
				return
			}

			select {
			case jobs <- job{index: index, rec: rec}:
				index++
			case <-ctx.Done():
				readErr <- ctx.Err()
				return
			}
		}
	}()

	// Workers
	var wg sync.WaitGroup
	for w := 0; w < r.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				res := r.detector.Detect(j.rec.ID, j.rec.Text)

				select {
				case results <- indexedResult{index: j.index, res: res}:
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	// Collect in input order: results may arrive out of order, so hold
	// early arrivals until their predecessors are written.
	pending := make(map[int]detect.Result)
	next := 0

	for ir := range results {
		pending[ir.index] = ir.res

		for {
			res, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)

			if err := out.Write(res); err != nil {
				return err
			}
			stats.Add(res)
			next++
			if progress != nil {
				progress(next)
			}
		}
	}

	if err := <-readErr; err != nil {
		return err
	}

	return ctx.Err()
}
