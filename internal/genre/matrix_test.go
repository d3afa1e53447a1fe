package genre

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ibukun5588/problem-set-1/internal/dataset"
	"github.com/ibukun5588/problem-set-1/internal/models"
)

func loadFixture(t *testing.T) *Matrix {
	t.Helper()
	f, err := os.Open("../dataset/testdata/three_movies.ndjson")
	require.NoError(t, err)
	defer f.Close()

	m, err := Build(dataset.Records(f))
	require.NoError(t, err)
	return m
}

func TestFixtureRow(t *testing.T) {
	m := loadFixture(t)

	assert.Equal(t, map[string]int{"Action": 2, "Comedy": 1, "Drama": 1}, m.Row("C"))
	assert.Equal(t, map[string]int{"Action": 1, "Drama": 1}, m.Row("A"))
	assert.Equal(t, []string{"Action", "Comedy", "Drama"}, m.Genres())
	assert.Equal(t, []string{"A", "B", "C"}, m.Actors())
	assert.Equal(t, 0, m.Count("A", "Comedy"), "dense: unseen cell is zero")
	assert.Equal(t, []float64{2, 1, 1}, m.Vector("C", m.Genres()))
	assert.Equal(t, []float64{1, 0, 1}, m.Vector("A", m.Genres()))
}

func TestRowSumEqualsMovieGenrePairs(t *testing.T) {
	m := loadFixture(t)

	// A: M1(1 género) + M3(1) ; B: M1(1) + M2(2) ; C: 1 + 2 + 1
	assert.Equal(t, 2, m.RowSum("A"))
	assert.Equal(t, 3, m.RowSum("B"))
	assert.Equal(t, 4, m.RowSum("C"))
	assert.Equal(t, 0, m.RowSum("missing"))
}

func TestFirstSeenNameWins(t *testing.T) {
	m := NewMatrix()
	m.AddMovie(models.MovieRecord{Actors: []models.Actor{{ID: "nm1", Name: "Chris"}}, Genres: []string{"Action"}})
	m.AddMovie(models.MovieRecord{Actors: []models.Actor{{ID: "nm1", Name: "Christopher"}}, Genres: []string{"Drama"}})

	name, ok := m.Name("nm1")
	assert.True(t, ok)
	assert.Equal(t, "Chris", name)
	assert.Equal(t, 2, m.RowSum("nm1"))
}

func TestActorWithoutGenresHasZeroRow(t *testing.T) {
	m := NewMatrix()
	m.AddMovie(models.MovieRecord{Actors: []models.Actor{{ID: "nm1", Name: "One"}}, Genres: []string{}})
	m.AddMovie(models.MovieRecord{Actors: []models.Actor{{ID: "nm2", Name: "Two"}}, Genres: []string{"Drama"}})

	assert.True(t, m.Has("nm1"))
	assert.Equal(t, 2, m.Len())
	assert.Equal(t, []float64{0}, m.Vector("nm1", m.Genres()))
}

func TestDuplicateEntriesCountOncePerMovie(t *testing.T) {
	m := NewMatrix()
	m.AddMovie(models.MovieRecord{
		Actors: []models.Actor{{ID: "nm1", Name: "One"}, {ID: "nm1", Name: "One"}},
		Genres: []string{"Drama", "Drama"},
	})
	assert.Equal(t, 1, m.Count("nm1", "Drama"))
}
