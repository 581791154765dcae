// Package loader streams actors and collaboration edges from external
// stores into a graph.Builder.
package loader

import (
	"context"
	"fmt"
	"time"

	"github.com/dd0wney/actorgraph/pkg/graph"
	"github.com/dd0wney/actorgraph/pkg/logging"
)

const (
	actorProgressEvery = 10000
	edgeProgressEvery  = 50000
)

// Source yields every actor and then every edge. Returning an error from fn
// stops iteration and the error is returned unchanged.
type Source interface {
	Actors(ctx context.Context, fn func(ActorRecord) error) error
	Edges(ctx context.Context, fn func(EdgeRecord) error) error
}

// Snapshotter is implemented by sources that can pin one consistent view
// of their data. Load reads actors and edges from a single snapshot so a
// concurrent edit cannot mix two versions.
type Snapshotter interface {
	Snapshot(ctx context.Context) (Source, error)
}

// Recorder receives load metrics. *metrics.Registry satisfies it.
type Recorder interface {
	RecordLoadRecords(kind, status string, n int)
	RecordLoad(duration time.Duration)
}

// Report summarizes one Load call.
type Report struct {
	ActorsLoaded    int
	ActorsDuplicate int
	ActorsInvalid   int
	EdgesLoaded     int
	EdgesInvalid    int
	EdgesRejected   int
	Duration        time.Duration
}

type options struct {
	logger   logging.Logger
	recorder Recorder
	strict   bool
}

// Option configures Load
type Option func(*options)

// WithLogger sets the logger used for progress and record diagnostics
func WithLogger(l logging.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithRecorder attaches a metrics recorder
func WithRecorder(r Recorder) Option {
	return func(o *options) { o.recorder = r }
}

// WithStrict makes the first invalid or rejected record abort the load.
func WithStrict() Option {
	return func(o *options) { o.strict = true }
}

// Load reads all actors from src into b, then all edges. Invalid records
// are skipped and counted unless WithStrict is set. Edges whose endpoints
// are unknown are rejected by the builder and counted.
func Load(ctx context.Context, src Source, b *graph.Builder, opts ...Option) (Report, error) {
	o := options{logger: logging.DefaultLogger()}
	for _, opt := range opts {
		opt(&o)
	}
	logger := o.logger.With(logging.Component("loader"))

	var rep Report
	start := time.Now()
	logger.Info("loading graph")

	if sn, ok := src.(Snapshotter); ok {
		pinned, err := sn.Snapshot(ctx)
		if err != nil {
			return o.finish(logger, rep, start, fmt.Errorf("snapshot source: %w", err))
		}
		src = pinned
	}

	err := src.Actors(ctx, func(rec ActorRecord) error {
		if err := rec.Validate(); err != nil {
			rep.ActorsInvalid++
			logger.Warn("skipping actor", logging.Error(err))
			if o.strict {
				return err
			}
			return nil
		}
		if !b.AddActor(rec.ID, rec.Name) {
			rep.ActorsDuplicate++
			return nil
		}
		rep.ActorsLoaded++
		if rep.ActorsLoaded%actorProgressEvery == 0 {
			logger.Info("loaded actors", logging.Count(rep.ActorsLoaded))
		}
		return nil
	})
	if err != nil {
		return o.finish(logger, rep, start, fmt.Errorf("load actors: %w", err))
	}
	logger.Info("actors loaded", logging.Count(rep.ActorsLoaded))

	if err := ctx.Err(); err != nil {
		return o.finish(logger, rep, start, err)
	}

	err = src.Edges(ctx, func(rec EdgeRecord) error {
		if err := rec.Validate(); err != nil {
			rep.EdgesInvalid++
			logger.Warn("skipping edge", logging.Error(err))
			if o.strict {
				return err
			}
			return nil
		}
		if err := b.AddEdge(rec.Actor1ID, rec.Actor2ID, rec.Weight); err != nil {
			rep.EdgesRejected++
			if o.strict {
				return err
			}
			return nil
		}
		rep.EdgesLoaded++
		if rep.EdgesLoaded%edgeProgressEvery == 0 {
			logger.Info("loaded edges", logging.Count(rep.EdgesLoaded))
		}
		return nil
	})
	if err != nil {
		return o.finish(logger, rep, start, fmt.Errorf("load edges: %w", err))
	}

	return o.finish(logger, rep, start, nil)
}

func (o *options) finish(logger logging.Logger, rep Report, start time.Time, err error) (Report, error) {
	rep.Duration = time.Since(start)

	if o.recorder != nil {
		o.recorder.RecordLoadRecords("actor", "loaded", rep.ActorsLoaded)
		o.recorder.RecordLoadRecords("actor", "duplicate", rep.ActorsDuplicate)
		o.recorder.RecordLoadRecords("actor", "invalid", rep.ActorsInvalid)
		o.recorder.RecordLoadRecords("edge", "loaded", rep.EdgesLoaded)
		o.recorder.RecordLoadRecords("edge", "invalid", rep.EdgesInvalid)
		o.recorder.RecordLoadRecords("edge", "rejected", rep.EdgesRejected)
		if err == nil {
			o.recorder.RecordLoad(rep.Duration)
		}
	}

	if err != nil {
		logger.Error("graph load failed", logging.Error(err), logging.Latency(rep.Duration))
		return rep, err
	}

	logger.Info("graph loaded",
		logging.Int("actors", rep.ActorsLoaded),
		logging.Int("edges", rep.EdgesLoaded),
		logging.Int("invalid", rep.ActorsInvalid+rep.EdgesInvalid),
		logging.Int("rejected", rep.EdgesRejected),
		logging.Latency(rep.Duration),
	)
	return rep, nil
}
