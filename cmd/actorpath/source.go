package main

import (
	"context"
	"fmt"

	"github.com/dd0wney/actorgraph/pkg/config"
	"github.com/dd0wney/actorgraph/pkg/loader"
)

// openedSource is the configured loader.Source plus the local files worth
// watching and a cleanup hook.
type openedSource struct {
	Source     loader.Source
	WatchPaths []string
	close      func() error
}

func (s openedSource) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

func openSource(ctx context.Context, cfg *config.Config) (openedSource, error) {
	sc := cfg.Source
	switch sc.Kind {
	case config.SourceCSV:
		if sc.S3.Bucket != "" {
			opener, err := loader.NewS3Opener(ctx, loader.S3Options{
				Bucket:          sc.S3.Bucket,
				Prefix:          sc.S3.Prefix,
				Region:          sc.S3.Region,
				Endpoint:        sc.S3.Endpoint,
				AccessKeyID:     sc.S3.AccessKeyID,
				SecretAccessKey: sc.S3.SecretAccessKey,
			})
			if err != nil {
				return openedSource{}, err
			}
			return openedSource{Source: loader.NewCSVSource(opener, sc.ActorsFile, sc.EdgesFile)}, nil
		}
		opener := loader.FileOpener{Dir: sc.Dir}
		return openedSource{
			Source:     loader.NewCSVSource(opener, sc.ActorsFile, sc.EdgesFile),
			WatchPaths: []string{opener.Path(sc.ActorsFile), opener.Path(sc.EdgesFile)},
		}, nil

	case config.SourcePostgres:
		pg, err := loader.NewPostgresSource(ctx, sc.Postgres.DSN,
			loader.WithTables(sc.Postgres.ActorsTable, sc.Postgres.EdgesTable))
		if err != nil {
			return openedSource{}, err
		}
		return openedSource{Source: pg, close: pg.Close}, nil

	case config.SourceYAML:
		return openedSource{
			Source:     loader.YAMLSource{Path: sc.YAMLFile},
			WatchPaths: []string{sc.YAMLFile},
		}, nil
	}
	return openedSource{}, fmt.Errorf("unsupported source kind %q", sc.Kind)
}
