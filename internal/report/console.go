package report

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/ibukun5588/problem-set-1/internal/models"
)

// PrintGraphSummary imprime totales del grafo y el top-n por centralidad.
func PrintGraphSummary(w io.Writer, nodes, edges int, rows []models.CentralityRow, n int) {
	fmt.Fprintf(w, "Total Nodes: %d\n", nodes)
	fmt.Fprintf(w, "Total Edges: %d\n", edges)
	n = clampN(n, len(rows))
	fmt.Fprintf(w, "The Top %d Most Central Nodes:\n", n)
	fmt.Fprintln(w, strings.Repeat("-", 72))
	fmt.Fprintf(w, "%3s  %-12s %-36s %s\n", "#", "actor_id", "actor_name", "degree")
	fmt.Fprintln(w, strings.Repeat("-", 72))
	for i, r := range rows[:n] {
		fmt.Fprintf(w, "%3d  %-12s %-36s %.6f\n", i+1, r.ActorID, truncate(r.ActorName, 36), r.DegreeCentrality)
	}
}

// PrintEdges imprime las n aristas de mayor peso.
func PrintEdges(w io.Writer, edges []models.EdgeRow, n int) {
	n = clampN(n, len(edges))
	fmt.Fprintf(w, "The Top %d Strongest Co-appearances:\n", n)
	for i, e := range edges[:n] {
		fmt.Fprintf(w, "%3d  %s <-> %s  (%d movies)\n", i+1, safeName(e.LeftName, e.LeftID), safeName(e.RightName, e.RightID), e.Weight)
	}
}

// PrintSimilarity imprime la tabla de vecinos de una métrica.
func PrintSimilarity(w io.Writer, res models.SimilarityResult) {
	fmt.Fprintf(w, "Top %d actors most similar to %s (%s distance):\n",
		len(res.Rows), safeName(res.QueryName, res.QueryID), metricLabel(res.Metric))
	for i, r := range res.Rows {
		d := "undefined"
		if !math.IsNaN(r.Distance) {
			d = fmt.Sprintf("%.6f", r.Distance)
		}
		fmt.Fprintf(w, "%3d  %-12s %-36s %s\n", i+1, r.ActorID, truncate(r.ActorName, 36), d)
	}
}

// clampN deja n dentro de [0, size].
func clampN(n, size int) int {
	if n < 0 {
		return 0
	}
	if n > size {
		return size
	}
	return n
}

func metricLabel(m string) string {
	if m == "" {
		return m
	}
	return strings.ToUpper(m[:1]) + m[1:]
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func safeName(name, id string) string {
	if name == "" {
		return "<sin nombre> [" + id + "]"
	}
	return name
}
