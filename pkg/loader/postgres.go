package loader

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Querier is the subset of *pgxpool.Pool used by PostgresSource.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// PostgresSource reads actors and edges from two tables.
type PostgresSource struct {
	db          Querier
	pool        *pgxpool.Pool
	actorsTable string
	edgesTable  string
}

// PostgresOption configures a PostgresSource
type PostgresOption func(*PostgresSource)

// WithTables overrides the default "actors" and "actor_edges" table names.
// Names may be schema qualified.
func WithTables(actors, edges string) PostgresOption {
	return func(s *PostgresSource) {
		if actors != "" {
			s.actorsTable = actors
		}
		if edges != "" {
			s.edgesTable = edges
		}
	}
}

// NewPostgresSource connects to databaseURL and verifies the connection
func NewPostgresSource(ctx context.Context, databaseURL string, opts ...PostgresOption) (*PostgresSource, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	config.MaxConns = 4
	config.MaxConnLifetime = 5 * time.Minute
	config.MaxConnIdleTime = 1 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("database unreachable: %w", err)
	}

	s := NewPostgresSourceFromQuerier(pool, opts...)
	s.pool = pool
	return s, nil
}

// NewPostgresSourceFromQuerier wraps an existing pool or connection
func NewPostgresSourceFromQuerier(db Querier, opts ...PostgresOption) *PostgresSource {
	s := &PostgresSource{db: db, actorsTable: "actors", edgesTable: "actor_edges"}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Close releases the pool opened by NewPostgresSource
func (s *PostgresSource) Close() error {
	if s.pool != nil {
		s.pool.Close()
	}
	return nil
}

func quoteTable(name string) string {
	return pgx.Identifier(strings.Split(name, ".")).Sanitize()
}

func (s *PostgresSource) actorsQuery() string {
	return fmt.Sprintf("SELECT actor_id, actor_name FROM %s ORDER BY actor_id", quoteTable(s.actorsTable))
}

func (s *PostgresSource) edgesQuery() string {
	return fmt.Sprintf("SELECT actor1_id, actor2_id, weight FROM %s", quoteTable(s.edgesTable))
}

// Actors implements Source
func (s *PostgresSource) Actors(ctx context.Context, fn func(ActorRecord) error) error {
	rows, err := s.db.Query(ctx, s.actorsQuery())
	if err != nil {
		return fmt.Errorf("failed to query actors: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var rec ActorRecord
		if err := rows.Scan(&rec.ID, &rec.Name); err != nil {
			return fmt.Errorf("failed to scan actor: %w", err)
		}
		if err := fn(rec); err != nil {
			return err
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating actors: %w", err)
	}
	return nil
}

// Edges implements Source
func (s *PostgresSource) Edges(ctx context.Context, fn func(EdgeRecord) error) error {
	rows, err := s.db.Query(ctx, s.edgesQuery())
	if err != nil {
		return fmt.Errorf("failed to query edges: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var rec EdgeRecord
		if err := rows.Scan(&rec.Actor1ID, &rec.Actor2ID, &rec.Weight); err != nil {
			return fmt.Errorf("failed to scan edge: %w", err)
		}
		if err := fn(rec); err != nil {
			return err
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating edges: %w", err)
	}
	return nil
}
