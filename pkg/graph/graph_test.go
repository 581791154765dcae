package graph

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dd0wney/actorgraph/pkg/logging"
)

func newTestBuilder() *Builder {
	return NewBuilder(WithLogger(logging.NewNopLogger()))
}

func TestAddActor_Idempotent(t *testing.T) {
	b := newTestBuilder()

	assert.True(t, b.AddActor(1, "A"))
	assert.False(t, b.AddActor(1, "Someone Else"))

	assert.Equal(t, 1, b.ActorCount())
	a, ok := b.Actor(1)
	require.True(t, ok)
	assert.Equal(t, "A", a.Name)
}

func TestAddEdge_Symmetric(t *testing.T) {
	b := newTestBuilder()
	b.AddActor(1, "A")
	b.AddActor(2, "B")

	require.NoError(t, b.AddEdge(1, 2, 5))

	assert.Equal(t, 5, b.EdgeWeight(1, 2))
	assert.Equal(t, 5, b.EdgeWeight(2, 1))
	assert.Equal(t, 1, b.EdgeCount())
	assert.Equal(t, 5, b.MaxWeight())
}

func TestAddEdge_UnknownActorRejected(t *testing.T) {
	b := newTestBuilder()
	b.AddActor(1, "A")

	err := b.AddEdge(1, 99, 3)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrActorNotFound))

	var gerr *Error
	require.True(t, errors.As(err, &gerr))
	assert.Equal(t, 99, gerr.ActorID)
	assert.Equal(t, "AddEdge", gerr.Op)

	n, ok := b.Neighbors(1)
	require.True(t, ok)
	assert.Empty(t, n)
	assert.Equal(t, 0, b.EdgeCount())
	assert.Equal(t, 0, b.MaxWeight())
}

func TestAddEdge_NonPositiveWeightRejected(t *testing.T) {
	b := newTestBuilder()
	b.AddActor(1, "A")
	b.AddActor(2, "B")

	for _, w := range []int{0, -4} {
		err := b.AddEdge(1, 2, w)
		assert.ErrorIs(t, err, ErrInvalidWeight)
	}
	assert.Equal(t, 0, b.EdgeCount())
	assert.Equal(t, 0, b.EdgeWeight(1, 2))
}

func TestAddEdge_RejectionIsLogged(t *testing.T) {
	var logged []string
	b := NewBuilder(WithLogger(recordingLogger{msgs: &logged}))
	b.AddActor(1, "A")

	_ = b.AddEdge(1, 2, 1)
	require.Len(t, logged, 1)
	assert.Contains(t, logged[0], "unknown actors")
}

func TestNeighbors_UnknownVersusIsolated(t *testing.T) {
	b := newTestBuilder()
	b.AddActor(5, "Loner")

	n, ok := b.Neighbors(5)
	assert.True(t, ok)
	assert.NotNil(t, n)
	assert.Empty(t, n)

	n, ok = b.Neighbors(6)
	assert.False(t, ok)
	assert.Nil(t, n)
}

func TestNeighbors_InsertionOrderAndCopy(t *testing.T) {
	b := newTestBuilder()
	for id, name := range map[int]string{1: "A", 2: "B", 3: "C", 4: "D"} {
		b.AddActor(id, name)
	}
	require.NoError(t, b.AddEdge(1, 3, 2))
	require.NoError(t, b.AddEdge(1, 2, 5))
	require.NoError(t, b.AddEdge(4, 1, 1))

	n, _ := b.Neighbors(1)
	assert.Equal(t, []Edge{{3, 2}, {2, 5}, {4, 1}}, n)

	n[0].Weight = 1000
	again, _ := b.Neighbors(1)
	assert.Equal(t, 2, again[0].Weight, "Neighbors must return a copy")

	var seen []int
	assert.True(t, b.EachNeighbor(1, func(e Edge) bool {
		seen = append(seen, e.Target)
		return len(seen) < 2
	}))
	assert.Equal(t, []int{3, 2}, seen)
	assert.False(t, b.EachNeighbor(42, func(Edge) bool { return true }))
}

func TestEdgeWeight_NoEdge(t *testing.T) {
	b := newTestBuilder()
	b.AddActor(1, "A")
	b.AddActor(2, "B")
	assert.Equal(t, 0, b.EdgeWeight(1, 2))
	assert.Equal(t, 0, b.EdgeWeight(7, 8))
}

func TestActorByName(t *testing.T) {
	b := newTestBuilder()
	b.AddActor(10, "Tom Hanks")
	b.AddActor(11, "Meg Ryan")
	b.AddActor(12, "tom hanks")

	a, ok := b.ActorByName("TOM HANKS")
	require.True(t, ok)
	assert.Equal(t, 10, a.ID, "earliest inserted match wins")

	_, ok = b.ActorByName("Tom")
	assert.False(t, ok, "match must be exact")
}

func TestSearchActorsByName(t *testing.T) {
	b := newTestBuilder()
	b.AddActor(1, "Kevin Bacon")
	b.AddActor(2, "Kevin Costner")
	b.AddActor(3, "Meryl Streep")

	got := b.SearchActorsByName("kEvIn")
	assert.Equal(t, []Actor{{1, "Kevin Bacon"}, {2, "Kevin Costner"}}, got)
	assert.Empty(t, b.SearchActorsByName("zzz"))
	assert.Len(t, b.SearchActorsByName(""), 3)
}

func TestEdgeCountAndStats(t *testing.T) {
	b := newTestBuilder()
	for i := 1; i <= 4; i++ {
		b.AddActor(i, "")
	}
	require.NoError(t, b.AddEdge(1, 2, 5))
	require.NoError(t, b.AddEdge(2, 3, 1))
	require.NoError(t, b.AddEdge(1, 3, 2))
	require.NoError(t, b.AddEdge(3, 4, 10))

	st := b.Stats()
	assert.Equal(t, Stats{Actors: 4, Edges: 4, MaxWeight: 10, AverageDegree: 2}, st)
	assert.Equal(t, 3, b.Degree(3))
	assert.Equal(t, Stats{}, Empty().Stats())
}

func TestClear(t *testing.T) {
	b := newTestBuilder()
	b.AddActor(1, "A")
	b.AddActor(2, "B")
	require.NoError(t, b.AddEdge(1, 2, 3))

	b.Clear()

	assert.Equal(t, 0, b.ActorCount())
	assert.Equal(t, 0, b.EdgeCount())
	assert.Equal(t, 0, b.MaxWeight())
	assert.False(t, b.HasActor(1))
	assert.True(t, b.AddActor(1, "A2"))
}

func TestBuild_SnapshotIsIndependent(t *testing.T) {
	b := newTestBuilder()
	b.AddActor(1, "A")
	b.AddActor(2, "B")
	require.NoError(t, b.AddEdge(1, 2, 3))

	g := b.Build()

	b.AddActor(3, "C")
	require.NoError(t, b.AddEdge(1, 3, 9))
	b.Clear()

	assert.Equal(t, 2, g.ActorCount())
	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, 3, g.MaxWeight())
	assert.Equal(t, []Actor{{1, "A"}, {2, "B"}}, g.Actors())
	n, _ := g.Neighbors(1)
	assert.Equal(t, []Edge{{2, 3}}, n)
}

func TestGraph_ConcurrentReads(t *testing.T) {
	b := newTestBuilder()
	for i := 0; i < 100; i++ {
		b.AddActor(i, "actor")
	}
	for i := 1; i < 100; i++ {
		require.NoError(t, b.AddEdge(i-1, i, i))
	}
	g := b.Build()

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 1; i < 100; i++ {
				if g.EdgeWeight(i, i-1) != i {
					t.Errorf("EdgeWeight(%d,%d) mismatch", i, i-1)
				}
				g.SearchActorsByName("act")
			}
		}()
	}
	wg.Wait()
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "AddEdge actor 4: actor not found",
		(&Error{Op: "AddEdge", ActorID: 4, Cause: ErrActorNotFound}).Error())
	assert.Equal(t, "AddEdge weight -1: edge weight must be positive",
		(&Error{Op: "AddEdge", Weight: -1, Cause: ErrInvalidWeight}).Error())
	assert.Equal(t, "Load: boom",
		(&Error{Op: "Load", Cause: errors.New("boom")}).Error())
}

// recordingLogger captures Warn messages.
type recordingLogger struct {
	logging.NopLogger
	msgs *[]string
}

func (r recordingLogger) Warn(msg string, _ ...logging.Field) {
	*r.msgs = append(*r.msgs, msg)
}

func (r recordingLogger) With(...logging.Field) logging.Logger { return r }
