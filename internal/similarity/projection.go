package similarity

import (
	"fmt"
	"math"
	"math/rand"
)

// Power-iteration parameters for the principal-component solver.
const (
	powerIterations = 200
	powerTolerance  = 1e-10
	projectionSeed  = 42
)

// Projection is a 2D embedding of a feature matrix for visualization.
// It is an auxiliary output only; nothing in scoring depends on it.
type Projection struct {
	Coordinates       [][2]float64 `json:"coordinates"`
	ExplainedVariance float64      `json:"explained_variance"` // fraction captured by the two components
}

// ProjectPCA projects standardized feature vectors onto their two principal
// components. Rows must share a width; at least two rows are required.
func ProjectPCA(features [][]float64) (*Projection, error) {
	n := len(features)
	if n < 2 {
		return nil, fmt.Errorf("need at least 2 rows to project, got %d", n)
	}
	width := len(features[0])
	for i, row := range features {
		if len(row) != width {
			return nil, fmt.Errorf("row %d has width %d, want %d", i, len(row), width)
		}
	}

	x := standardize(features)

	cov := covariance(x)
	totalVar := 0.0
	for i := 0; i < width; i++ {
		totalVar += cov[i][i]
	}

	rng := rand.New(rand.NewSource(projectionSeed))
	first, firstVar := principalComponent(cov, rng)
	deflate(cov, first, firstVar)
	second, secondVar := principalComponent(cov, rng)

	coords := make([][2]float64, n)
	for i, row := range x {
		coords[i] = [2]float64{dot(row, first), dot(row, second)}
	}

	explained := 0.0
	if totalVar > 0 {
		explained = (firstVar + secondVar) / totalVar
	}
	return &Projection{Coordinates: coords, ExplainedVariance: explained}, nil
}

// standardize centers each column and scales it to unit variance. Constant
// columns are left at zero.
func standardize(features [][]float64) [][]float64 {
	n := len(features)
	width := len(features[0])

	means := make([]float64, width)
	for _, row := range features {
		for j, v := range row {
			means[j] += v
		}
	}
	for j := range means {
		means[j] /= float64(n)
	}

	stds := make([]float64, width)
	for _, row := range features {
		for j, v := range row {
			d := v - means[j]
			stds[j] += d * d
		}
	}
	for j := range stds {
		stds[j] = math.Sqrt(stds[j] / float64(n))
	}

	x := make([][]float64, n)
	for i, row := range features {
		x[i] = make([]float64, width)
		for j, v := range row {
			if stds[j] > 0 {
				x[i][j] = (v - means[j]) / stds[j]
			}
		}
	}
	return x
}

func covariance(x [][]float64) [][]float64 {
	n := len(x)
	width := len(x[0])
	cov := make([][]float64, width)
	for i := range cov {
		cov[i] = make([]float64, width)
	}
	for _, row := range x {
		for i := 0; i < width; i++ {
			for j := i; j < width; j++ {
				cov[i][j] += row[i] * row[j]
			}
		}
	}
	for i := 0; i < width; i++ {
		for j := i; j < width; j++ {
			cov[i][j] /= float64(n - 1)
			cov[j][i] = cov[i][j]
		}
	}
	return cov
}

// principalComponent finds the dominant eigenvector and eigenvalue of a
// symmetric matrix by power iteration.
func principalComponent(m [][]float64, rng *rand.Rand) ([]float64, float64) {
	width := len(m)
	v := make([]float64, width)
	for i := range v {
		v[i] = rng.Float64() - 0.5
	}
	normalizeVec(v)

	eigenvalue := 0.0
	for iter := 0; iter < powerIterations; iter++ {
		next := matVec(m, v)
		lambda := norm(next)
		if lambda < powerTolerance {
			break
		}
		for i := range next {
			next[i] /= lambda
		}
		if math.Abs(lambda-eigenvalue) < powerTolerance {
			v = next
			eigenvalue = lambda
			break
		}
		v = next
		eigenvalue = lambda
	}
	return v, eigenvalue
}

// deflate removes a found component so the next power iteration converges to
// the second eigenvector.
func deflate(m [][]float64, v []float64, eigenvalue float64) {
	for i := range m {
		for j := range m[i] {
			m[i][j] -= eigenvalue * v[i] * v[j]
		}
	}
}

func matVec(m [][]float64, v []float64) []float64 {
	out := make([]float64, len(m))
	for i, row := range m {
		out[i] = dot(row, v)
	}
	return out
}

func dot(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

func norm(v []float64) float64 {
	return math.Sqrt(dot(v, v))
}

func normalizeVec(v []float64) {
	if n := norm(v); n > 0 {
		for i := range v {
			v[i] /= n
		}
	}
}
