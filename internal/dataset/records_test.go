package dataset

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ibukun5588/problem-set-1/internal/apperr"
	"github.com/ibukun5588/problem-set-1/internal/models"
)

func collect(t *testing.T, input string) ([]models.MovieRecord, error) {
	t.Helper()
	var out []models.MovieRecord
	for rec, err := range Records(strings.NewReader(input)) {
		if err != nil {
			return out, err
		}
		out = append(out, rec)
	}
	return out, nil
}

func TestRecordsFixture(t *testing.T) {
	f, err := Open("testdata/three_movies.ndjson")
	require.NoError(t, err)
	defer f.Close()

	var recs []models.MovieRecord
	for rec, err := range Records(f) {
		require.NoError(t, err)
		recs = append(recs, rec)
	}

	require.Len(t, recs, 3)
	assert.Equal(t, []models.Actor{{ID: "A", Name: "Actor A"}, {ID: "B", Name: "Actor B"}, {ID: "C", Name: "Actor C"}}, recs[0].Actors)
	assert.Equal(t, []string{"Action", "Comedy"}, recs[1].Genres)
	assert.Equal(t, "M3", recs[2].Title)
	require.NotNil(t, recs[2].Year)
	assert.Equal(t, 2003, *recs[2].Year)
}

func TestRecordsSkipsBlankLinesAndIgnoresExtraFields(t *testing.T) {
	input := "\n" +
		`{"actors": [["nm1", "One"]], "genres": ["Drama"], "rating": {"avg": 7.1}}` + "\n" +
		"   \n"
	recs, err := collect(t, input)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Nil(t, recs[0].Year)
}

func TestRecordsMalformedLine(t *testing.T) {
	input := `{"actors": [["nm1", "One"]], "genres": ["Drama"]}` + "\n" +
		`{"actors": [["nm2", "Two"]], "genres": [` + "\n" +
		`{"actors": [["nm3", "Three"]], "genres": ["Drama"]}` + "\n"

	recs, err := collect(t, input)
	require.Error(t, err)
	assert.Len(t, recs, 1, "fail-fast: nothing after the bad line")

	var pe *apperr.ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 2, pe.Line)
	assert.True(t, errors.Is(err, apperr.ErrParse))
}

func TestRecordsMissingFields(t *testing.T) {
	cases := map[string]string{
		"no actors":   `{"genres": ["Drama"]}`,
		"no genres":   `{"actors": [["nm1", "One"]]}`,
		"null genres": `{"actors": [["nm1", "One"]], "genres": null}`,
		"bad pair":    `{"actors": [["nm1"]], "genres": ["Drama"]}`,
		"empty id":    `{"actors": [["", "Nobody"]], "genres": ["Drama"]}`,
		"not object":  `[1, 2, 3]`,
	}
	for name, line := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := collect(t, line+"\n")
			require.Error(t, err)
			assert.True(t, errors.Is(err, apperr.ErrParse))
		})
	}
}

func TestParseLineDeduplicates(t *testing.T) {
	rec, err := ParseLine([]byte(`{"actors": [["nm1", "First"], ["nm2", "Two"], ["nm1", "Second"]], "genres": ["Drama", "Drama", "Crime"]}`))
	require.NoError(t, err)
	assert.Equal(t, []models.Actor{{ID: "nm1", Name: "First"}, {ID: "nm2", Name: "Two"}}, rec.Actors)
	assert.Equal(t, []string{"Drama", "Crime"}, rec.Genres)
}

func TestParseLineEmptyListsAreValid(t *testing.T) {
	rec, err := ParseLine([]byte(`{"actors": [], "genres": []}`))
	require.NoError(t, err)
	assert.Empty(t, rec.Actors)
	assert.Empty(t, rec.Genres)
}

func TestRecordsStopsWhenConsumerBreaks(t *testing.T) {
	input := strings.Repeat(`{"actors": [["nm1", "One"]], "genres": ["Drama"]}`+"\n", 5)
	n := 0
	for _, err := range Records(strings.NewReader(input)) {
		require.NoError(t, err)
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open("testdata/does-not-exist.ndjson")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrIO))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
