package loader

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/golang/snappy"
)

// Opener resolves a file name to a readable stream.
type Opener interface {
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}

// FileOpener opens files relative to Dir on the local filesystem.
type FileOpener struct {
	Dir string
}

// Open implements Opener
func (f FileOpener) Open(_ context.Context, name string) (io.ReadCloser, error) {
	return os.Open(filepath.Join(f.Dir, name))
}

// Path returns the local path of name, for file watching.
func (f FileOpener) Path(name string) string {
	return filepath.Join(f.Dir, name)
}

// CSVSource reads actors.csv (actor_id,actor_name) and edges.csv
// (actor1_id,actor2_id,weight). Both files start with a header row and
// columns are matched by name. Names ending in .sz are snappy framed.
type CSVSource struct {
	Opener     Opener
	ActorsFile string
	EdgesFile  string
}

// NewCSVSource returns a CSV source reading through opener
func NewCSVSource(opener Opener, actorsFile, edgesFile string) *CSVSource {
	return &CSVSource{Opener: opener, ActorsFile: actorsFile, EdgesFile: edgesFile}
}

// Actors implements Source
func (s *CSVSource) Actors(ctx context.Context, fn func(ActorRecord) error) error {
	return s.each(ctx, s.ActorsFile, []string{"actor_id", "actor_name"}, func(row csvRow) error {
		id, err := row.int("actor_id")
		if err != nil {
			return err
		}
		return fn(ActorRecord{ID: id, Name: row.str("actor_name")})
	})
}

// Edges implements Source
func (s *CSVSource) Edges(ctx context.Context, fn func(EdgeRecord) error) error {
	return s.each(ctx, s.EdgesFile, []string{"actor1_id", "actor2_id", "weight"}, func(row csvRow) error {
		a, err := row.int("actor1_id")
		if err != nil {
			return err
		}
		b, err := row.int("actor2_id")
		if err != nil {
			return err
		}
		w, err := row.int("weight")
		if err != nil {
			return err
		}
		return fn(EdgeRecord{Actor1ID: a, Actor2ID: b, Weight: w})
	})
}

type csvRow struct {
	file   string
	line   int
	record []string
	cols   map[string]int
}

func (r csvRow) str(col string) string {
	return strings.TrimSpace(r.record[r.cols[col]])
}

func (r csvRow) int(col string) (int, error) {
	v, err := strconv.Atoi(r.str(col))
	if err != nil {
		return 0, fmt.Errorf("%w: %s line %d: %s: %v", ErrInvalidRecord, r.file, r.line, col, err)
	}
	return v, nil
}

func (s *CSVSource) each(ctx context.Context, name string, required []string, fn func(csvRow) error) error {
	rc, err := s.Opener.Open(ctx, name)
	if err != nil {
		return fmt.Errorf("open %s: %w", name, err)
	}
	defer rc.Close()

	var r io.Reader = rc
	if strings.HasSuffix(name, ".sz") {
		r = snappy.NewReader(rc)
	}

	reader := csv.NewReader(r)
	reader.ReuseRecord = true
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return fmt.Errorf("read %s header: %w", name, err)
	}

	row := csvRow{file: name, cols: make(map[string]int, len(header))}
	for i, col := range header {
		row.cols[strings.ToLower(strings.TrimSpace(col))] = i
	}
	width := 0
	for _, col := range required {
		i, ok := row.cols[col]
		if !ok {
			return fmt.Errorf("%s: missing column %q", name, col)
		}
		width = max(width, i+1)
	}

	for line := 2; ; line++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read %s: %w", name, err)
		}
		if len(record) < width {
			return fmt.Errorf("%w: %s line %d: expected %d fields, got %d", ErrInvalidRecord, name, line, width, len(record))
		}
		row.line = line
		row.record = record
		if err := fn(row); err != nil {
			return err
		}
	}
}
