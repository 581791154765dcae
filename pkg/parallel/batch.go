package parallel

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dd0wney/actorgraph/pkg/algorithms"
	"github.com/dd0wney/actorgraph/pkg/logging"
	"github.com/dd0wney/actorgraph/pkg/validation"
)

// Query is one path request in a batch. An empty ID is replaced with a
// generated one; an empty Algorithm means breadth-first search.
type Query struct {
	ID        string `json:"id" yaml:"id"`
	From      int    `json:"from" yaml:"from"`
	To        int    `json:"to" yaml:"to"`
	Algorithm string `json:"algorithm" yaml:"algorithm"`
}

// Result pairs a query with its outcome. Err is set only when the query
// could not be dispatched, e.g. for an unknown algorithm.
type Result struct {
	Query Query                 `json:"query"`
	Path  algorithms.PathResult `json:"path"`
	Err   error                 `json:"-"`
}

// BatchRecorder receives batch metrics. *metrics.Registry satisfies it.
type BatchRecorder interface {
	RecordBatch(n int, duration time.Duration)
}

// BatchOptions configures RunBatch. Zero values pick defaults: one worker
// per query up to 4, a quiet default Finder and no per-query timeout.
type BatchOptions struct {
	Workers   int
	QueueSize int
	Timeout   time.Duration
	Finder    *algorithms.Finder
	Recorder  BatchRecorder
	Logger    logging.Logger
}

// RunBatch runs every query against the same read-only network on a worker
// pool and returns results in input order. Cancelling ctx makes queries
// that have not finished report algorithms.OutcomeCancelled.
func RunBatch(ctx context.Context, g algorithms.Network, queries []Query, opts BatchOptions) ([]Result, error) {
	if err := validation.ValidateBatchSize(len(queries)); err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.DefaultLogger()
	}
	batchID := uuid.NewString()
	logger = logger.With(logging.Component("batch"), logging.String("batch_id", batchID))

	finder := opts.Finder
	if finder == nil {
		finder = algorithms.NewFinder(algorithms.WithLogger(logger))
	}

	workers := validation.DefaultOrInt(opts.Workers, min(len(queries), 4))
	poolOpts := []PoolOption{WithPoolLogger(logger)}
	if opts.QueueSize > 0 {
		poolOpts = append(poolOpts, WithQueueSize(opts.QueueSize))
	}
	pool, err := NewWorkerPool(workers, poolOpts...)
	if err != nil {
		return nil, fmt.Errorf("batch %s: %w", batchID, err)
	}

	timer := logging.StartTimer(logger, "running query batch",
		logging.Count(len(queries)),
		logging.Int("workers", pool.Workers()),
	)

	results := make([]Result, len(queries))
	var wg sync.WaitGroup
	for i, q := range queries {
		i, q := i, q
		if q.ID == "" {
			q.ID = uuid.NewString()
		}
		results[i].Query = q

		wg.Add(1)
		submitted := pool.Submit(func() {
			defer wg.Done()
			qctx := ctx
			if opts.Timeout > 0 {
				var cancel context.CancelFunc
				qctx, cancel = context.WithTimeout(ctx, opts.Timeout)
				defer cancel()
			}
			results[i].Path, results[i].Err = finder.Find(qctx, q.Algorithm, g, q.From, q.To)
		})
		if !submitted {
			wg.Done()
			results[i].Err = fmt.Errorf("batch %s: worker pool closed", batchID)
		}
	}
	wg.Wait()
	pool.Close()

	elapsed := timer.End()
	if opts.Recorder != nil {
		opts.Recorder.RecordBatch(len(queries), elapsed)
	}
	return results, nil
}
