// Package config loads actorgraph settings from defaults, an optional YAML
// file and ACTORGRAPH_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dd0wney/actorgraph/pkg/algorithms"
	"github.com/dd0wney/actorgraph/pkg/logging"
	"github.com/dd0wney/actorgraph/pkg/validation"
)

// ErrInvalidConfig is wrapped by every error returned from Validate and
// from environment parsing.
var ErrInvalidConfig = errors.New("invalid config")

// Source kinds
const (
	SourceCSV      = "csv"
	SourcePostgres = "postgres"
	SourceYAML     = "yaml"
)

// Config is the top-level application configuration
type Config struct {
	Log    LogConfig    `yaml:"log"`
	Source SourceConfig `yaml:"source"`
	Search SearchConfig `yaml:"search"`
	Batch  BatchConfig  `yaml:"batch"`
}

// LogConfig selects the log level and encoder ("json" or "console")
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// SourceConfig describes where the graph is loaded from
type SourceConfig struct {
	Kind       string `yaml:"kind"`
	Dir        string `yaml:"dir"`
	ActorsFile string `yaml:"actors_file"`
	EdgesFile  string `yaml:"edges_file"`
	YAMLFile   string `yaml:"yaml_file"`

	S3       S3Config       `yaml:"s3"`
	Postgres PostgresConfig `yaml:"postgres"`

	// Watch reloads the snapshot when local source files change
	Watch    bool          `yaml:"watch"`
	Debounce time.Duration `yaml:"debounce"`
}

// S3Config points the CSV source at a bucket instead of a local directory.
// Empty credentials fall back to the default AWS credential chain.
type S3Config struct {
	Bucket          string `yaml:"bucket"`
	Prefix          string `yaml:"prefix"`
	Region          string `yaml:"region"`
	Endpoint        string `yaml:"endpoint"`
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
}

// PostgresConfig holds the connection string and table names
type PostgresConfig struct {
	DSN         string `yaml:"dsn"`
	ActorsTable string `yaml:"actors_table"`
	EdgesTable  string `yaml:"edges_table"`
}

// SearchConfig tunes path queries. A zero Timeout disables cancellation.
type SearchConfig struct {
	Cost    string        `yaml:"cost"`
	Timeout time.Duration `yaml:"timeout"`
}

// BatchConfig sizes the worker pool used for batch queries
type BatchConfig struct {
	Workers   int `yaml:"workers"`
	QueueSize int `yaml:"queue_size"`
}

// Default returns the configuration used when nothing is overridden
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		Source: SourceConfig{
			Kind:       SourceCSV,
			Dir:        "data",
			ActorsFile: "actors.csv",
			EdgesFile:  "edges.csv",
			Postgres: PostgresConfig{
				ActorsTable: "actors",
				EdgesTable:  "actor_edges",
			},
			Debounce: 500 * time.Millisecond,
		},
		Search: SearchConfig{
			Cost: algorithms.CostInverse,
		},
		Batch: BatchConfig{
			Workers:   4,
			QueueSize: 64,
		},
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty) and the environment, then validates it.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}

	str("ACTORGRAPH_LOG_LEVEL", &c.Log.Level)
	str("ACTORGRAPH_LOG_FORMAT", &c.Log.Format)
	str("ACTORGRAPH_SOURCE_KIND", &c.Source.Kind)
	str("ACTORGRAPH_SOURCE_DIR", &c.Source.Dir)
	str("ACTORGRAPH_YAML_FILE", &c.Source.YAMLFile)
	str("ACTORGRAPH_S3_BUCKET", &c.Source.S3.Bucket)
	str("ACTORGRAPH_S3_PREFIX", &c.Source.S3.Prefix)
	str("ACTORGRAPH_S3_REGION", &c.Source.S3.Region)
	str("ACTORGRAPH_S3_ENDPOINT", &c.Source.S3.Endpoint)
	str("ACTORGRAPH_POSTGRES_DSN", &c.Source.Postgres.DSN)
	str("ACTORGRAPH_SEARCH_COST", &c.Search.Cost)

	if v, ok := lookup("ACTORGRAPH_SOURCE_WATCH"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: ACTORGRAPH_SOURCE_WATCH: %w", ErrInvalidConfig, err)
		}
		c.Source.Watch = b
	}
	if v, ok := lookup("ACTORGRAPH_SEARCH_TIMEOUT"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%w: ACTORGRAPH_SEARCH_TIMEOUT: %w", ErrInvalidConfig, err)
		}
		c.Search.Timeout = d
	}
	if v, ok := lookup("ACTORGRAPH_BATCH_WORKERS"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: ACTORGRAPH_BATCH_WORKERS: %w", ErrInvalidConfig, err)
		}
		c.Batch.Workers = n
	}
	return nil
}

// Validate checks the configuration and reports every problem found
func (c *Config) Validate() error {
	cv := validation.NewConfigValidator("Config")

	cv.OneOf("Log.Level", strings.ToLower(c.Log.Level), []string{"debug", "info", "warn", "error"}).
		OneOf("Log.Format", c.Log.Format, []string{"json", "console"}).
		OneOf("Source.Kind", c.Source.Kind, []string{SourceCSV, SourcePostgres, SourceYAML}).
		OneOf("Search.Cost", c.Search.Cost, []string{algorithms.CostInverse, algorithms.CostLinear}).
		Custom("Search.Timeout", func() error {
			if c.Search.Timeout < 0 {
				return errors.New("must not be negative")
			}
			return nil
		}).
		RangeInt("Batch.Workers", c.Batch.Workers, 1, 1024).
		NonNegative("Batch.QueueSize", c.Batch.QueueSize)

	cv.When(c.Source.Kind == SourceCSV, func(v *validation.ConfigValidator) {
		v.Required("Source.ActorsFile", c.Source.ActorsFile).
			Required("Source.EdgesFile", c.Source.EdgesFile).
			Custom("Source.Dir", func() error {
				if c.Source.Dir == "" && c.Source.S3.Bucket == "" {
					return errors.New("either dir or s3.bucket is required")
				}
				return nil
			})
	})
	cv.When(c.Source.Kind == SourcePostgres, func(v *validation.ConfigValidator) {
		v.Required("Source.Postgres.DSN", c.Source.Postgres.DSN).
			Required("Source.Postgres.ActorsTable", c.Source.Postgres.ActorsTable).
			Required("Source.Postgres.EdgesTable", c.Source.Postgres.EdgesTable)
	})
	cv.When(c.Source.Kind == SourceYAML, func(v *validation.ConfigValidator) {
		v.Required("Source.YAMLFile", c.Source.YAMLFile)
	})
	cv.When(c.Source.Watch, func(v *validation.ConfigValidator) {
		v.MinDuration("Source.Debounce", c.Source.Debounce, 10*time.Millisecond)
	})

	if err := cv.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// NewLogger builds the logger described by the Log section
func (c LogConfig) NewLogger(w io.Writer) *logging.ZapLogger {
	level := logging.ParseLevel(c.Level)
	if c.Format == "console" {
		return logging.NewConsoleLogger(w, level)
	}
	return logging.NewJSONLogger(w, level)
}
