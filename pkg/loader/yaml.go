package loader

import (
	"context"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Document is an in-memory graph description.
//
//	actors:
//	  - {actor_id: 1, actor_name: Kevin Bacon}
//	edges:
//	  - {actor1_id: 1, actor2_id: 2, weight: 3}
type Document struct {
	Actors []ActorRecord `yaml:"actors"`
	Edges  []EdgeRecord  `yaml:"edges"`
}

// DecodeYAML reads a Document from r
func DecodeYAML(r io.Reader) (*Document, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode graph document: %w", err)
	}
	return &doc, nil
}

func (d *Document) actors(ctx context.Context, fn func(ActorRecord) error) error {
	for _, rec := range d.Actors {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := fn(rec); err != nil {
			return err
		}
	}
	return nil
}

func (d *Document) edges(ctx context.Context, fn func(EdgeRecord) error) error {
	for _, rec := range d.Edges {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := fn(rec); err != nil {
			return err
		}
	}
	return nil
}

// Source exposes d as a Source.
func (d *Document) Source() Source {
	return documentSource{d}
}

type documentSource struct {
	doc *Document
}

func (s documentSource) Actors(ctx context.Context, fn func(ActorRecord) error) error {
	return s.doc.actors(ctx, fn)
}

func (s documentSource) Edges(ctx context.Context, fn func(EdgeRecord) error) error {
	return s.doc.edges(ctx, fn)
}

// YAMLSource reads a Document from Path. Actors and Edges re-read the file
// on each call so reloads observe edits; Load pins one decoded copy via
// Snapshot.
type YAMLSource struct {
	Path string
}

func (s YAMLSource) document() (*Document, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodeYAML(f)
}

// Actors implements Source
func (s YAMLSource) Actors(ctx context.Context, fn func(ActorRecord) error) error {
	doc, err := s.document()
	if err != nil {
		return err
	}
	return doc.actors(ctx, fn)
}

// Edges implements Source
func (s YAMLSource) Edges(ctx context.Context, fn func(EdgeRecord) error) error {
	doc, err := s.document()
	if err != nil {
		return err
	}
	return doc.edges(ctx, fn)
}

// Snapshot decodes the file once and returns the in-memory document.
func (s YAMLSource) Snapshot(context.Context) (Source, error) {
	doc, err := s.document()
	if err != nil {
		return nil, err
	}
	return doc.Source(), nil
}
