package loader

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dd0wney/actorgraph/pkg/logging"
)

const fixture = `
actors:
  - {actor_id: 1, actor_name: Kevin Bacon}
  - {actor_id: 2, actor_name: Tom Hanks}
edges:
  - {actor1_id: 1, actor2_id: 2, weight: 3}
`

func TestDecodeYAML(t *testing.T) {
	doc, err := DecodeYAML(strings.NewReader(fixture))
	require.NoError(t, err)

	assert.Equal(t, []ActorRecord{{ID: 1, Name: "Kevin Bacon"}, {ID: 2, Name: "Tom Hanks"}}, doc.Actors)
	assert.Equal(t, []EdgeRecord{{Actor1ID: 1, Actor2ID: 2, Weight: 3}}, doc.Edges)
}

func TestDecodeYAMLEmpty(t *testing.T) {
	doc, err := DecodeYAML(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, doc.Actors)
}

func TestDecodeYAMLUnknownField(t *testing.T) {
	_, err := DecodeYAML(strings.NewReader("actors:\n  - {id: 1, actor_name: X}\n"))
	assert.Error(t, err)
}

func TestYAMLSourceRereadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.yaml")
	require.NoError(t, os.WriteFile(path, []byte(fixture), 0o600))
	src := YAMLSource{Path: path}

	assert.Len(t, collectActors(t, src), 2)

	require.NoError(t, os.WriteFile(path, []byte("actors:\n  - {actor_id: 5, actor_name: Solo}\n"), 0o600))
	assert.Equal(t, []ActorRecord{{ID: 5, Name: "Solo"}}, collectActors(t, src))
	assert.Empty(t, collectEdges(t, src))
}

// editOnLog rewrites a file when a given message is logged, landing an
// edit between the actor and edge passes of Load.
type editOnLog struct {
	logging.Logger
	msg  string
	edit func()
}

func (l editOnLog) Info(msg string, fields ...logging.Field) {
	if msg == l.msg {
		l.edit()
	}
}

func (l editOnLog) With(...logging.Field) logging.Logger { return l }

func TestLoadYAMLSourceReadsOneVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.yaml")
	require.NoError(t, os.WriteFile(path, []byte(fixture), 0o600))

	edited := "actors:\n  - {actor_id: 1, actor_name: Kevin Bacon}\n  - {actor_id: 2, actor_name: Tom Hanks}\n" +
		"edges:\n  - {actor1_id: 2, actor2_id: 3, weight: 9}\n"
	logger := editOnLog{
		Logger: logging.NewNopLogger(),
		msg:    "actors loaded",
		edit:   func() { require.NoError(t, os.WriteFile(path, []byte(edited), 0o600)) },
	}

	b := quietBuilder()
	rep, err := Load(context.Background(), YAMLSource{Path: path}, b, WithLogger(logger))
	require.NoError(t, err)

	assert.Equal(t, 1, rep.EdgesLoaded)
	assert.Zero(t, rep.EdgesRejected)
	assert.Equal(t, 3, b.EdgeWeight(1, 2))
}

func TestYAMLSourceSnapshotMissingFile(t *testing.T) {
	_, err := Load(context.Background(), YAMLSource{Path: filepath.Join(t.TempDir(), "nope.yaml")}, quietBuilder(),
		WithLogger(logging.NewNopLogger()))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "snapshot source")
}
