package graph

import (
	"errors"
	"fmt"
	"iter"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ibukun5588/problem-set-1/internal/apperr"
	"github.com/ibukun5588/problem-set-1/internal/dataset"
	"github.com/ibukun5588/problem-set-1/internal/models"
)

func movie(genres []string, ids ...string) models.MovieRecord {
	rec := models.MovieRecord{Genres: genres}
	for _, id := range ids {
		rec.Actors = append(rec.Actors, models.Actor{ID: id, Name: "Actor " + id})
	}
	return rec
}

func fixture() []models.MovieRecord {
	return []models.MovieRecord{
		movie([]string{"Action"}, "A", "B", "C"),
		movie([]string{"Action", "Comedy"}, "B", "C"),
		movie([]string{"Drama"}, "A", "C"),
	}
}

func seq(recs []models.MovieRecord) iter.Seq2[models.MovieRecord, error] {
	return func(yield func(models.MovieRecord, error) bool) {
		for _, r := range recs {
			if !yield(r, nil) {
				return
			}
		}
	}
}

func TestFixtureEdgeWeights(t *testing.T) {
	g, err := Build(seq(fixture()))
	require.NoError(t, err)

	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 3, g.EdgeCount())
	assert.Equal(t, 1, g.Weight("A", "B"))
	assert.Equal(t, 2, g.Weight("A", "C"))
	assert.Equal(t, 2, g.Weight("B", "C"))
	assert.Equal(t, 2, g.Weight("C", "B"), "undirected")
	assert.Equal(t, 0, g.Weight("A", "A"), "no self pairs")
}

func TestFixtureFromFile(t *testing.T) {
	f, err := os.Open("../dataset/testdata/three_movies.ndjson")
	require.NoError(t, err)
	defer f.Close()

	g, err := Build(dataset.Records(f))
	require.NoError(t, err)
	assert.Equal(t, 2, g.Weight("A", "C"))
	name, ok := g.Name("B")
	assert.True(t, ok)
	assert.Equal(t, "Actor B", name)
}

func TestAddMovieNewPairs(t *testing.T) {
	g := New()
	for k := 0; k <= 6; k++ {
		ids := make([]string, k)
		for i := range ids {
			ids[i] = fmt.Sprintf("k%d-%d", k, i)
		}
		created := g.AddMovie(movie(nil, ids...))
		assert.Equal(t, k*(k-1)/2, created, "k=%d", k)
	}

	g2 := New()
	assert.Equal(t, 3, g2.AddMovie(movie(nil, "A", "B", "C")))
	// A-B y B-C ya existen, solo A-D, B-D, C-D son nuevas
	assert.Equal(t, 3, g2.AddMovie(movie(nil, "C", "B", "A", "D")))
	assert.Equal(t, 2, g2.Weight("A", "B"))
	assert.Equal(t, 1, g2.Weight("A", "D"))
}

func TestAddMovieOrderIndependentAndNoDoubleCount(t *testing.T) {
	g := New()
	g.AddMovie(movie(nil, "A", "B"))
	g.AddMovie(movie(nil, "B", "A"))
	g.AddMovie(movie(nil, "A", "B", "A"))
	assert.Equal(t, 3, g.Weight("A", "B"))
	assert.Equal(t, 1, g.EdgeCount())
}

func TestAddNodeIdempotent(t *testing.T) {
	g := New()
	g.AddMovie(models.MovieRecord{Actors: []models.Actor{{ID: "A", Name: "First"}, {ID: "B", Name: "Bee"}}})
	g.AddMovie(models.MovieRecord{Actors: []models.Actor{{ID: "A", Name: "Renamed"}}})

	name, _ := g.Name("A")
	assert.Equal(t, "First", name)
	assert.Equal(t, 1, g.Weight("A", "B"))
	assert.Equal(t, []string{"A", "B"}, g.Nodes())
}

func TestDegreeCentralitySingleNode(t *testing.T) {
	g := New()
	g.AddMovie(movie(nil, "solo"))

	rows := g.DegreeCentrality()
	require.Len(t, rows, 1)
	assert.Equal(t, 0.0, rows[0].DegreeCentrality)

	assert.Empty(t, New().DegreeCentrality())
}

func TestDegreeCentralityComplete(t *testing.T) {
	g := New()
	g.AddMovie(movie(nil, "A", "B", "C", "D", "E"))
	for _, row := range g.DegreeCentrality() {
		assert.Equal(t, 1.0, row.DegreeCentrality, row.ActorID)
	}
}

func TestDegreeCentralityRangeAndOrder(t *testing.T) {
	g := New()
	g.AddMovie(movie(nil, "hub", "x1"))
	g.AddMovie(movie(nil, "hub", "x2"))
	g.AddMovie(movie(nil, "hub", "x3"))
	g.AddMovie(movie(nil, "z", "y"))

	rows := g.DegreeCentrality()
	require.Len(t, rows, 6)
	assert.Equal(t, "hub", rows[0].ActorID)
	assert.InDelta(t, 3.0/5.0, rows[0].DegreeCentrality, 1e-12)

	// empate a 1/5: desempata por actor_id ascendente
	var tail []string
	for _, r := range rows[1:] {
		assert.GreaterOrEqual(t, r.DegreeCentrality, 0.0)
		assert.LessOrEqual(t, r.DegreeCentrality, 1.0)
		tail = append(tail, r.ActorID)
	}
	assert.Equal(t, []string{"x1", "x2", "x3", "y", "z"}, tail)
}

func TestEdges(t *testing.T) {
	g, err := Build(seq(fixture()))
	require.NoError(t, err)

	edges := g.Edges()
	require.Len(t, edges, 3)
	assert.Equal(t, models.EdgeRow{LeftID: "A", LeftName: "Actor A", RightID: "C", RightName: "Actor C", Weight: 2}, edges[0])
	assert.Equal(t, "B", edges[1].LeftID)
	assert.Equal(t, "C", edges[1].RightID)
	assert.Equal(t, 1, edges[2].Weight)
}

func TestBuildStopsOnError(t *testing.T) {
	bad := func(yield func(models.MovieRecord, error) bool) {
		if !yield(movie(nil, "A", "B"), nil) {
			return
		}
		yield(models.MovieRecord{}, &apperr.ParseError{Line: 2, Err: errors.New("boom")})
	}
	g, err := Build(bad)
	assert.Nil(t, g)
	assert.True(t, errors.Is(err, apperr.ErrParse))
}
