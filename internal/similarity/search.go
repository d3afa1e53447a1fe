package similarity

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/ibukun5588/problem-set-1/internal/apperr"
	"github.com/ibukun5588/problem-set-1/internal/genre"
	"github.com/ibukun5588/problem-set-1/internal/models"
)

const DefaultK = 10

// MostSimilar devuelve los k actores más cercanos a actorID (excluyéndolo),
// distancia ascendente. Empates: orden de filas de la matriz. Las distancias
// NaN (filas en cero con coseno) van al final.
func MostSimilar(m *genre.Matrix, actorID string, metric Metric, k int) (models.SimilarityResult, error) {
	if metric != Cosine && metric != Euclidean {
		return models.SimilarityResult{}, apperr.InvalidArgument("unrecognized metric %q", string(metric))
	}
	if !m.Has(actorID) {
		return models.SimilarityResult{}, apperr.NotFound("actor ID %s not found in the genre matrix", actorID)
	}
	if k <= 0 {
		k = DefaultK
	}

	columns := m.Genres()
	query := m.Vector(actorID, columns)

	rows := make([]models.SimilarityRow, 0, m.Len())
	for _, id := range m.Actors() {
		if id == actorID {
			continue
		}
		name, _ := m.Name(id)
		rows = append(rows, models.SimilarityRow{
			ActorID:   id,
			ActorName: name,
			Distance:  metric.Distance(query, m.Vector(id, columns)),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		di, dj := rows[i].Distance, rows[j].Distance
		if math.IsNaN(di) || math.IsNaN(dj) {
			return !math.IsNaN(di) && math.IsNaN(dj)
		}
		return di < dj
	})
	if len(rows) > k {
		rows = rows[:k]
	}

	queryName, _ := m.Name(actorID)
	return models.SimilarityResult{
		QueryID:   actorID,
		QueryName: queryName,
		Metric:    string(metric),
		K:         k,
		Rows:      rows,
	}, nil
}

// Compare arma el resumen de cómo cambia la lista entre coseno y euclidiana.
func Compare(cosine, euclidean models.SimilarityResult) models.MetricComparison {
	inEuc := make(map[string]struct{}, len(euclidean.Rows))
	for _, id := range euclidean.IDs() {
		inEuc[id] = struct{}{}
	}
	inCos := make(map[string]struct{}, len(cosine.Rows))

	c := models.MetricComparison{
		QueryID:       cosine.QueryID,
		Shared:        []string{},
		OnlyCosine:    []string{},
		OnlyEuclidean: []string{},
	}
	for _, id := range cosine.IDs() {
		inCos[id] = struct{}{}
		if _, ok := inEuc[id]; ok {
			c.Shared = append(c.Shared, id)
		} else {
			c.OnlyCosine = append(c.OnlyCosine, id)
		}
	}
	for _, id := range euclidean.IDs() {
		if _, ok := inCos[id]; !ok {
			c.OnlyEuclidean = append(c.OnlyEuclidean, id)
		}
	}
	return c
}

// Narrative describe en texto la divergencia entre las dos métricas.
func Narrative(c models.MetricComparison) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d of %d cosine neighbours also appear under euclidean distance (%.0f%% overlap).\n",
		len(c.Shared), len(c.Shared)+len(c.OnlyCosine), c.Overlap()*100)
	if len(c.OnlyCosine) > 0 {
		fmt.Fprintf(&b, "Only under cosine: %s.\n", strings.Join(c.OnlyCosine, ", "))
	}
	if len(c.OnlyEuclidean) > 0 {
		fmt.Fprintf(&b, "Only under euclidean: %s.\n", strings.Join(c.OnlyEuclidean, ", "))
	}
	b.WriteString("Cosine distance compares the proportion of each genre in an actor's filmography, " +
		"so prolific and occasional actors with the same genre mix end up close. " +
		"Euclidean distance compares raw appearance counts, so it favours actors with a similar " +
		"number of films as well as a similar mix.")
	return b.String()
}
