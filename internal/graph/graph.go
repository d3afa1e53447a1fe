// Package graph construye el grafo no dirigido de co-apariciones entre actores.
// El peso de una arista es la cantidad de películas que comparten.
package graph

import (
	"iter"
	"sort"

	"github.com/ibukun5588/problem-set-1/internal/models"
)

// ActorGraph guarda nodos en orden de inserción y una lista de adyacencia
// con pesos. Cada arista está guardada en los dos sentidos.
type ActorGraph struct {
	names map[string]string
	order []string
	adj   map[string]map[string]int
	edges int
}

func New() *ActorGraph {
	return &ActorGraph{
		names: make(map[string]string),
		adj:   make(map[string]map[string]int),
	}
}

// Build consume la secuencia completa; aborta en el primer error.
func Build(records iter.Seq2[models.MovieRecord, error]) (*ActorGraph, error) {
	g := New()
	for rec, err := range records {
		if err != nil {
			return nil, err
		}
		g.AddMovie(rec)
	}
	return g, nil
}

// AddNode registra un actor. Es idempotente: si ya existe no toca ni su
// nombre ni sus aristas.
func (g *ActorGraph) AddNode(id, name string) {
	if _, ok := g.names[id]; ok {
		return
	}
	g.names[id] = name
	g.order = append(g.order, id)
	g.adj[id] = make(map[string]int)
}

// AddMovie registra el elenco y suma 1 a cada par distinto de actores.
// Devuelve cuántas aristas nuevas aparecieron (los pares ya existentes
// solo suben de peso).
func (g *ActorGraph) AddMovie(rec models.MovieRecord) int {
	cast := make([]string, 0, len(rec.Actors))
	seen := make(map[string]struct{}, len(rec.Actors))
	for _, a := range rec.Actors {
		g.AddNode(a.ID, a.Name)
		if _, dup := seen[a.ID]; dup {
			continue
		}
		seen[a.ID] = struct{}{}
		cast = append(cast, a.ID)
	}

	created := 0
	for i, left := range cast {
		for _, right := range cast[i+1:] {
			if g.adj[left][right] == 0 {
				created++
				g.edges++
			}
			g.adj[left][right]++
			g.adj[right][left]++
		}
	}
	return created
}

func (g *ActorGraph) NodeCount() int { return len(g.order) }

func (g *ActorGraph) EdgeCount() int { return g.edges }

// Weight devuelve 0 si no hay arista (o si a == b).
func (g *ActorGraph) Weight(a, b string) int {
	return g.adj[a][b]
}

// Degree es la cantidad de vecinos distintos.
func (g *ActorGraph) Degree(id string) int {
	return len(g.adj[id])
}

func (g *ActorGraph) Name(id string) (string, bool) {
	n, ok := g.names[id]
	return n, ok
}

// Nodes devuelve los ids en orden de inserción.
func (g *ActorGraph) Nodes() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

// DegreeCentrality = vecinos / (n - 1). Con un solo nodo (o ninguno) vale 0.
// Orden: centralidad descendente, empates por actor_id ascendente.
func (g *ActorGraph) DegreeCentrality() []models.CentralityRow {
	n := len(g.order)
	rows := make([]models.CentralityRow, 0, n)
	for _, id := range g.order {
		score := 0.0
		if n > 1 {
			score = float64(len(g.adj[id])) / float64(n-1)
		}
		rows = append(rows, models.CentralityRow{
			ActorID:          id,
			ActorName:        g.names[id],
			DegreeCentrality: score,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].DegreeCentrality != rows[j].DegreeCentrality {
			return rows[i].DegreeCentrality > rows[j].DegreeCentrality
		}
		return rows[i].ActorID < rows[j].ActorID
	})
	return rows
}

// Edges lista cada arista una sola vez (LeftID < RightID), peso descendente
// y luego por ids.
func (g *ActorGraph) Edges() []models.EdgeRow {
	out := make([]models.EdgeRow, 0, g.edges)
	for left, neigh := range g.adj {
		for right, w := range neigh {
			if left >= right {
				continue
			}
			out = append(out, models.EdgeRow{
				LeftID:    left,
				LeftName:  g.names[left],
				RightID:   right,
				RightName: g.names[right],
				Weight:    w,
			})
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Weight != out[j].Weight {
			return out[i].Weight > out[j].Weight
		}
		if out[i].LeftID != out[j].LeftID {
			return out[i].LeftID < out[j].LeftID
		}
		return out[i].RightID < out[j].RightID
	})
	return out
}
