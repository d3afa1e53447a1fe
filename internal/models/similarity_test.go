package models

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimilarityRowNaNAsNull(t *testing.T) {
	rows := []SimilarityRow{
		{ActorID: "nm1", ActorName: "A", Distance: 0.25},
		{ActorID: "nm2", ActorName: "B", Distance: math.NaN()},
	}

	b, err := json.Marshal(rows)
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"actorId":"nm1","actorName":"A","distance":0.25},
		{"actorId":"nm2","actorName":"B","distance":null}
	]`, string(b))

	var back []SimilarityRow
	require.NoError(t, json.Unmarshal(b, &back))
	require.Len(t, back, 2)
	assert.Equal(t, 0.25, back[0].Distance)
	assert.True(t, math.IsNaN(back[1].Distance))
}

func TestMetricComparisonOverlap(t *testing.T) {
	c := MetricComparison{
		Shared:        []string{"a", "b", "c"},
		OnlyCosine:    []string{"d"},
		OnlyEuclidean: []string{"e"},
	}
	assert.InDelta(t, 0.75, c.Overlap(), 1e-12)
	assert.Equal(t, 0.0, MetricComparison{}.Overlap())
}

func TestSimilarityResultIDs(t *testing.T) {
	r := SimilarityResult{Rows: []SimilarityRow{{ActorID: "x"}, {ActorID: "y"}}}
	assert.Equal(t, []string{"x", "y"}, r.IDs())
}
