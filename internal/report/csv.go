// Package report escribe los CSV de salida y los resúmenes por consola.
package report

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/ibukun5588/problem-set-1/internal/apperr"
	"github.com/ibukun5588/problem-set-1/internal/models"
)

// TimestampLayout es el sufijo de los archivos de salida (YYYYMMDD_HHMMSS).
const TimestampLayout = "20060102_150405"

// Nombres de archivo por tipo de salida.
func CentralityFile(dir string, ts time.Time) string {
	return filepath.Join(dir, "network_centrality_"+ts.Format(TimestampLayout)+".csv")
}

func SimilarityFile(dir string, ts time.Time) string {
	return filepath.Join(dir, "similar_actors_genre_"+ts.Format(TimestampLayout)+".csv")
}

func EdgesFile(dir string, ts time.Time) string {
	return filepath.Join(dir, "network_edges_"+ts.Format(TimestampLayout)+".csv")
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// WriteCentrality: actor_id,actor_name,degree_centrality
func WriteCentrality(w io.Writer, rows []models.CentralityRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"actor_id", "actor_name", "degree_centrality"}); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write([]string{r.ActorID, r.ActorName, formatFloat(r.DegreeCentrality)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteSimilarity: actor_id,actor_name,distance. NaN se escribe vacío.
func WriteSimilarity(w io.Writer, res models.SimilarityResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"actor_id", "actor_name", "distance"}); err != nil {
		return err
	}
	for _, r := range res.Rows {
		d := formatFloat(r.Distance)
		if math.IsNaN(r.Distance) {
			d = ""
		}
		if err := cw.Write([]string{r.ActorID, r.ActorName, d}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteEdges: left_actor_id,left_actor_name,<->,right_actor_id,right_actor_name,weight
func WriteEdges(w io.Writer, edges []models.EdgeRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"left_actor_id", "left_actor_name", "<->", "right_actor_id", "right_actor_name", "weight"}); err != nil {
		return err
	}
	for _, e := range edges {
		if err := cw.Write([]string{e.LeftID, e.LeftName, "<->", e.RightID, e.RightName, strconv.Itoa(e.Weight)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// SaveFile crea path (y su directorio) y escribe con fn.
func SaveFile(path string, fn func(io.Writer) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return apperr.IO("create output dir", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return apperr.IO("create output file", err)
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	if err := fn(bw); err != nil {
		return apperr.IO(fmt.Sprintf("write %s", filepath.Base(path)), err)
	}
	if err := bw.Flush(); err != nil {
		return apperr.IO(fmt.Sprintf("write %s", filepath.Base(path)), err)
	}
	return f.Close()
}
