package loader

import (
	"errors"
	"fmt"

	"github.com/dd0wney/actorgraph/pkg/validation"
)

// ErrInvalidRecord marks records that fail validation or cannot be parsed.
var ErrInvalidRecord = errors.New("invalid record")

// ActorRecord is one row of the actors relation.
type ActorRecord struct {
	ID   int    `json:"actor_id" yaml:"actor_id" validate:"min=1"`
	Name string `json:"actor_name" yaml:"actor_name" validate:"required"`
}

// EdgeRecord is one row of the collaboration relation. Each unordered pair
// is expected once; the graph stores both directions.
type EdgeRecord struct {
	Actor1ID int `json:"actor1_id" yaml:"actor1_id" validate:"min=1"`
	Actor2ID int `json:"actor2_id" yaml:"actor2_id" validate:"min=1,nefield=Actor1ID"`
	Weight   int `json:"weight" yaml:"weight" validate:"min=1"`
}

// Validate checks the record's field constraints
func (r ActorRecord) Validate() error {
	if err := validation.Struct(&r); err != nil {
		return fmt.Errorf("%w: actor %d: %w", ErrInvalidRecord, r.ID, err)
	}
	return nil
}

// Validate checks the record's field constraints
func (r EdgeRecord) Validate() error {
	if err := validation.Struct(&r); err != nil {
		return fmt.Errorf("%w: edge %d-%d: %w", ErrInvalidRecord, r.Actor1ID, r.Actor2ID, err)
	}
	return nil
}
