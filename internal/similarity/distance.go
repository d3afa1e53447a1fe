// Package similarity calcula distancias entre filas de la matriz de géneros
// y busca los actores más cercanos a un actor dado.
package similarity

import (
	"math"
	"strings"

	"github.com/ibukun5588/problem-set-1/internal/apperr"
)

type Metric string

const (
	Cosine    Metric = "cosine"
	Euclidean Metric = "euclidean"
)

// Metrics en el orden en que se reportan.
var Metrics = []Metric{Cosine, Euclidean}

// ParseMetric acepta mayúsculas/espacios; cualquier otra cosa es InvalidArgument.
func ParseMetric(s string) (Metric, error) {
	switch Metric(strings.ToLower(strings.TrimSpace(s))) {
	case Cosine:
		return Cosine, nil
	case Euclidean:
		return Euclidean, nil
	default:
		return "", apperr.InvalidArgument("unrecognized metric %q (use cosine or euclidean)", s)
	}
}

// Distance aplica la métrica. Los vectores deben tener el mismo largo.
func (m Metric) Distance(u, v []float64) float64 {
	if m == Euclidean {
		return EuclideanDistance(u, v)
	}
	return CosineDistance(u, v)
}

// CosineDistance = 1 - u·v / (|u||v|). Si alguno tiene magnitud cero el
// resultado no está definido y se devuelve NaN.
func CosineDistance(u, v []float64) float64 {
	var dot, nu, nv float64
	for i := range u {
		dot += u[i] * v[i]
		nu += u[i] * u[i]
		nv += v[i] * v[i]
	}
	if nu == 0 || nv == 0 {
		return math.NaN()
	}
	d := 1 - dot/(math.Sqrt(nu)*math.Sqrt(nv))
	// redondeo: vectores paralelos pueden dar -1e-16
	if d < 0 {
		return 0
	}
	return d
}

// EuclideanDistance es la norma L2 de u - v.
func EuclideanDistance(u, v []float64) float64 {
	var sum float64
	for i := range u {
		d := u[i] - v[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}
