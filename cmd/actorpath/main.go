package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"gopkg.in/yaml.v3"

	"github.com/dd0wney/actorgraph/pkg/algorithms"
	"github.com/dd0wney/actorgraph/pkg/catalog"
	"github.com/dd0wney/actorgraph/pkg/config"
	"github.com/dd0wney/actorgraph/pkg/graph"
	"github.com/dd0wney/actorgraph/pkg/graphql"
	"github.com/dd0wney/actorgraph/pkg/loader"
	"github.com/dd0wney/actorgraph/pkg/logging"
	"github.com/dd0wney/actorgraph/pkg/metrics"
	"github.com/dd0wney/actorgraph/pkg/parallel"
	"github.com/dd0wney/actorgraph/pkg/render"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "actorpath:", err)
		os.Exit(1)
	}
}

type options struct {
	configPath string
	from, to   string
	algo       string
	stats      bool
	query      string
	batchFile  string
	watch      bool
	metrics    string
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("actorpath", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.configPath, "config", "", "YAML config file (optional)")
	fs.StringVar(&o.from, "from", "", "Start actor id or name")
	fs.StringVar(&o.to, "to", "", "End actor id or name")
	fs.StringVar(&o.algo, "algo", "both", "Algorithm: bfs, dijkstra or both")
	fs.BoolVar(&o.stats, "stats", false, "Print graph statistics")
	fs.StringVar(&o.query, "graphql", "", "Run a GraphQL query and print the JSON result")
	fs.StringVar(&o.batchFile, "batch", "", "YAML file with a list of {id, from, to, algorithm} queries")
	fs.BoolVar(&o.watch, "watch", false, "Keep running and reload when source files change")
	fs.StringVar(&o.metrics, "metrics", "", "Write Prometheus metrics to this file on exit and after each reload")
	if err := fs.Parse(args); err != nil {
		return o, err
	}

	o.algo = strings.ToLower(o.algo)
	switch o.algo {
	case "bfs", "dijkstra", "both":
	default:
		return o, fmt.Errorf("invalid -algo %q: must be bfs, dijkstra or both", o.algo)
	}
	if (o.from == "") != (o.to == "") {
		return o, errors.New("-from and -to must be given together")
	}
	return o, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) (err error) {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	logger := cfg.Log.NewLogger(stderr)
	defer logger.Sync()
	logging.SetDefaultLogger(logger)

	reg := metrics.NewRegistry()
	writeMetrics := func() error {
		if opts.metrics == "" {
			return nil
		}
		return reg.WriteTextfile(opts.metrics)
	}
	defer func() {
		if werr := writeMetrics(); werr != nil && err == nil {
			err = werr
		}
	}()

	src, err := openSource(ctx, cfg)
	if err != nil {
		return err
	}
	defer src.Close()

	store := catalog.New(src.Source,
		catalog.WithLogger(logger),
		catalog.WithRecorder(reg),
		catalog.WithDebounce(cfg.Source.Debounce),
		catalog.WithLoadOptions(loader.WithRecorder(reg)),
		catalog.WithOnReload(func(*graph.Graph, loader.Report) {
			if err := writeMetrics(); err != nil {
				logger.Warn("failed to write metrics", logging.Error(err))
			}
		}),
	)
	if _, err := store.Reload(ctx); err != nil {
		return err
	}

	cost, err := algorithms.CostFuncByName(cfg.Search.Cost)
	if err != nil {
		return err
	}
	finder := algorithms.NewFinder(
		algorithms.WithLogger(logger),
		algorithms.WithRecorder(reg),
		algorithms.WithCostFunc(cost),
	)
	out := render.New(stdout)

	if opts.stats {
		if err := out.Stats(store.Graph().Stats()); err != nil {
			return err
		}
	}

	if opts.query != "" {
		if err := runGraphQL(ctx, stdout, store, finder, opts.query); err != nil {
			return err
		}
	}

	if opts.batchFile != "" {
		if err := runBatch(ctx, stdout, cfg, store.Graph(), finder, reg, logger, opts.batchFile); err != nil {
			return err
		}
	}

	if opts.from != "" {
		if err := runPath(ctx, out, cfg, store.Graph(), finder, opts); err != nil {
			return err
		}
	}

	if opts.watch || cfg.Source.Watch {
		if len(src.WatchPaths) == 0 {
			return errors.New("watching needs a local csv or yaml source")
		}
		logger.Info("watching source files", logging.Count(len(src.WatchPaths)))
		return store.Watch(ctx, src.WatchPaths...)
	}
	return nil
}

// resolveActor accepts a numeric id or an actor name.
func resolveActor(g *graph.Graph, ref string) (int, error) {
	if id, err := strconv.Atoi(ref); err == nil {
		return id, nil
	}
	a, ok := g.ActorByName(ref)
	if !ok {
		return 0, fmt.Errorf("no actor named %q", ref)
	}
	return a.ID, nil
}

func runPath(ctx context.Context, out *render.Renderer, cfg *config.Config, g *graph.Graph, finder *algorithms.Finder, opts options) error {
	from, err := resolveActor(g, opts.from)
	if err != nil {
		return err
	}
	to, err := resolveActor(g, opts.to)
	if err != nil {
		return err
	}

	if cfg.Search.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Search.Timeout)
		defer cancel()
	}

	switch opts.algo {
	case "both":
		return out.Comparison(
			finder.ShortestPathContext(ctx, g, from, to),
			finder.StrongestPathContext(ctx, g, from, to),
		)
	default:
		res, err := finder.Find(ctx, opts.algo, g, from, to)
		if err != nil {
			return err
		}
		return out.Path(res)
	}
}

func runGraphQL(ctx context.Context, stdout io.Writer, store *catalog.Store, finder *algorithms.Finder, query string) error {
	schema, err := graphql.NewSchema(store, graphql.WithFinder(finder))
	if err != nil {
		return err
	}
	res := graphql.Execute(ctx, schema, query, nil)

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		return err
	}
	if res.HasErrors() {
		return fmt.Errorf("graphql query failed: %s", res.Errors[0].Message)
	}
	return nil
}

func runBatch(ctx context.Context, stdout io.Writer, cfg *config.Config, g *graph.Graph, finder *algorithms.Finder, reg *metrics.Registry, logger logging.Logger, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read batch file: %w", err)
	}
	var queries []parallel.Query
	if err := yaml.Unmarshal(data, &queries); err != nil {
		return fmt.Errorf("parse batch file %s: %w", path, err)
	}

	results, err := parallel.RunBatch(ctx, g, queries, parallel.BatchOptions{
		Workers:   cfg.Batch.Workers,
		QueueSize: cfg.Batch.QueueSize,
		Timeout:   cfg.Search.Timeout,
		Finder:    finder,
		Recorder:  reg,
		Logger:    logger,
	})
	if err != nil {
		return err
	}

	enc := json.NewEncoder(stdout)
	for _, r := range results {
		line := struct {
			parallel.Result
			Error string `json:"error,omitempty"`
		}{Result: r}
		if r.Err != nil {
			line.Error = r.Err.Error()
		}
		if err := enc.Encode(line); err != nil {
			return err
		}
	}
	return nil
}
