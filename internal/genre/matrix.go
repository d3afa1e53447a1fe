// Package genre arma la matriz actor x género con la cantidad de apariciones.
package genre

import (
	"iter"
	"sort"

	"github.com/ibukun5588/problem-set-1/internal/models"
)

// Matrix es lógicamente densa: una celda que nunca se tocó vale 0.
// Internamente solo guarda las celdas con conteo > 0.
type Matrix struct {
	names  map[string]string
	order  []string
	counts map[string]map[string]int
	genres map[string]struct{}
}

func NewMatrix() *Matrix {
	return &Matrix{
		names:  make(map[string]string),
		counts: make(map[string]map[string]int),
		genres: make(map[string]struct{}),
	}
}

// Build consume la secuencia completa; aborta en el primer error.
func Build(records iter.Seq2[models.MovieRecord, error]) (*Matrix, error) {
	m := NewMatrix()
	for rec, err := range records {
		if err != nil {
			return nil, err
		}
		m.AddMovie(rec)
	}
	return m, nil
}

// AddMovie suma 1 a (actor, género) por cada género de la película y cada
// actor del elenco. Un actor sin géneros igual queda registrado (fila en cero).
// El nombre que vale es el primero que se vio para ese id.
func (m *Matrix) AddMovie(rec models.MovieRecord) {
	genres := make([]string, 0, len(rec.Genres))
	seenGenre := make(map[string]struct{}, len(rec.Genres))
	for _, g := range rec.Genres {
		if _, dup := seenGenre[g]; dup {
			continue
		}
		seenGenre[g] = struct{}{}
		genres = append(genres, g)
		m.genres[g] = struct{}{}
	}

	seenActor := make(map[string]struct{}, len(rec.Actors))
	for _, a := range rec.Actors {
		if _, dup := seenActor[a.ID]; dup {
			continue
		}
		seenActor[a.ID] = struct{}{}

		row, ok := m.counts[a.ID]
		if !ok {
			row = make(map[string]int)
			m.counts[a.ID] = row
			m.names[a.ID] = a.Name
			m.order = append(m.order, a.ID)
		}
		for _, g := range genres {
			row[g]++
		}
	}
}

// Genres devuelve el vocabulario completo, ordenado.
func (m *Matrix) Genres() []string {
	out := make([]string, 0, len(m.genres))
	for g := range m.genres {
		out = append(out, g)
	}
	sort.Strings(out)
	return out
}

// Actors devuelve los ids en orden de primera aparición (orden de filas).
func (m *Matrix) Actors() []string {
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

func (m *Matrix) Len() int { return len(m.order) }

func (m *Matrix) Has(actorID string) bool {
	_, ok := m.counts[actorID]
	return ok
}

func (m *Matrix) Name(actorID string) (string, bool) {
	n, ok := m.names[actorID]
	return n, ok
}

func (m *Matrix) Count(actorID, genre string) int {
	return m.counts[actorID][genre]
}

// Row devuelve una copia de los conteos no nulos del actor.
func (m *Matrix) Row(actorID string) map[string]int {
	row := m.counts[actorID]
	out := make(map[string]int, len(row))
	for g, c := range row {
		out[g] = c
	}
	return out
}

// RowSum = cantidad de pares (película, género) en los que participó el actor.
func (m *Matrix) RowSum(actorID string) int {
	total := 0
	for _, c := range m.counts[actorID] {
		total += c
	}
	return total
}

// Vector devuelve la fila densa en el orden de columns.
func (m *Matrix) Vector(actorID string, columns []string) []float64 {
	row := m.counts[actorID]
	v := make([]float64, len(columns))
	for i, g := range columns {
		v[i] = float64(row[g])
	}
	return v
}
