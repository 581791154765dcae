// Package catalog holds the current graph snapshot and rebuilds it from a
// loader.Source on demand or when source files change.
package catalog

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dd0wney/actorgraph/pkg/graph"
	"github.com/dd0wney/actorgraph/pkg/loader"
	"github.com/dd0wney/actorgraph/pkg/logging"
)

// Recorder receives snapshot metrics. *metrics.Registry satisfies it.
type Recorder interface {
	UpdateGraphMetrics(actors, edges, maxWeight int)
	RecordReload(err error)
}

// Store publishes immutable graph snapshots. Readers call Graph and keep
// the returned snapshot for as long as they need it; a concurrent Reload
// never mutates a published snapshot.
type Store struct {
	current atomic.Pointer[graph.Graph]
	source  loader.Source

	logger      logging.Logger
	recorder    Recorder
	loadOpts    []loader.Option
	debounce    time.Duration
	onReload    func(*graph.Graph, loader.Report)
	reloadMu    sync.Mutex
	generations atomic.Uint64
}

// Option configures a Store
type Option func(*Store)

// WithLogger sets the store's logger
func WithLogger(l logging.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithRecorder attaches a metrics recorder
func WithRecorder(r Recorder) Option {
	return func(s *Store) { s.recorder = r }
}

// WithLoadOptions passes options through to loader.Load on every reload
func WithLoadOptions(opts ...loader.Option) Option {
	return func(s *Store) { s.loadOpts = append(s.loadOpts, opts...) }
}

// WithDebounce sets how long Watch waits for file events to settle
func WithDebounce(d time.Duration) Option {
	return func(s *Store) {
		if d > 0 {
			s.debounce = d
		}
	}
}

// WithOnReload registers a callback run after each successful reload
func WithOnReload(fn func(*graph.Graph, loader.Report)) Option {
	return func(s *Store) { s.onReload = fn }
}

// New returns a store serving an empty graph until the first Reload.
func New(src loader.Source, opts ...Option) *Store {
	s := &Store{
		source:   src,
		logger:   logging.DefaultLogger(),
		debounce: 500 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(logging.Component("catalog"))
	s.current.Store(graph.Empty())
	return s
}

// Graph returns the current snapshot. It never returns nil.
func (s *Store) Graph() *graph.Graph {
	return s.current.Load()
}

// Generation counts successful reloads.
func (s *Store) Generation() uint64 {
	return s.generations.Load()
}

// Reload builds a fresh graph from the source and publishes it. On error
// the previous snapshot stays current.
func (s *Store) Reload(ctx context.Context) (loader.Report, error) {
	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()

	b := graph.NewBuilder(graph.WithLogger(s.logger))
	opts := append([]loader.Option{loader.WithLogger(s.logger)}, s.loadOpts...)

	rep, err := loader.Load(ctx, s.source, b, opts...)
	if s.recorder != nil {
		s.recorder.RecordReload(err)
	}
	if err != nil {
		s.logger.Error("reload failed, keeping previous snapshot", logging.Error(err))
		return rep, err
	}

	g := b.Build()
	s.current.Store(g)
	gen := s.generations.Add(1)

	if s.recorder != nil {
		s.recorder.UpdateGraphMetrics(g.ActorCount(), g.EdgeCount(), g.MaxWeight())
	}
	s.logger.Info("snapshot published",
		logging.Int64("generation", int64(gen)),
		logging.Int("actors", g.ActorCount()),
		logging.Int("edges", g.EdgeCount()),
	)
	if s.onReload != nil {
		s.onReload(g, rep)
	}
	return rep, nil
}
