package cluster

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/jonathan/talent-match/internal/types"
)

// Training defaults, matching the offline training script.
const (
	DefaultClusters  = 8
	defaultMaxIter   = 300
	defaultSeed      = 42
	defaultRestarts  = 10
	convergenceDelta = 1e-9
)

// Train fits a k-means centroid model over candidate profiles. This is an
// offline operation: it never runs on the scoring request path, and the
// resulting model is handed to an Assigner via SetModel or NewAssigner.
func Train(profiles []*types.CandidateProfile, k int) (*CentroidModel, error) {
	if k <= 0 {
		k = DefaultClusters
	}
	if len(profiles) < k {
		return nil, fmt.Errorf("need at least %d profiles to train %d clusters, got %d", k, k, len(profiles))
	}

	data := make([][]float64, len(profiles))
	for i, p := range profiles {
		data[i] = sanitize(Features(p))
	}

	rng := rand.New(rand.NewSource(defaultSeed))

	var bestCentroids [][]float64
	bestInertia := math.Inf(1)
	for restart := 0; restart < defaultRestarts; restart++ {
		centroids, inertia := lloyd(data, k, rng)
		if inertia < bestInertia {
			bestInertia = inertia
			bestCentroids = centroids
		}
	}

	return &CentroidModel{
		Centroids:    bestCentroids,
		FeatureNames: FeatureNames(),
		ClusterNames: DefaultClusterNames(),
	}, nil
}

// lloyd runs one k-means pass from a random initialization and returns the
// centroids with the total within-cluster inertia.
func lloyd(data [][]float64, k int, rng *rand.Rand) ([][]float64, float64) {
	width := len(data[0])

	// Initialize centroids from distinct random points.
	perm := rng.Perm(len(data))
	centroids := make([][]float64, k)
	for i := 0; i < k; i++ {
		centroids[i] = append([]float64(nil), data[perm[i]]...)
	}

	assignments := make([]int, len(data))
	prevInertia := math.Inf(1)

	for iter := 0; iter < defaultMaxIter; iter++ {
		// Assignment step.
		inertia := 0.0
		for i, x := range data {
			best := 0
			bestDist := math.Inf(1)
			for c, centroid := range centroids {
				if d := squaredDistance(x, centroid); d < bestDist {
					bestDist = d
					best = c
				}
			}
			assignments[i] = best
			inertia += bestDist
		}

		// Update step.
		sums := make([][]float64, k)
		counts := make([]int, k)
		for i := range sums {
			sums[i] = make([]float64, width)
		}
		for i, x := range data {
			c := assignments[i]
			counts[c]++
			for j, v := range x {
				sums[c][j] += v
			}
		}
		for c := range centroids {
			if counts[c] == 0 {
				// Re-seed an empty cluster from a random point.
				centroids[c] = append([]float64(nil), data[rng.Intn(len(data))]...)
				continue
			}
			for j := range centroids[c] {
				centroids[c][j] = sums[c][j] / float64(counts[c])
			}
		}

		if math.Abs(prevInertia-inertia) < convergenceDelta {
			return centroids, inertia
		}
		prevInertia = inertia
	}
	return centroids, prevInertia
}

func sanitize(v []float64) []float64 {
	for i, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			v[i] = 0
		}
	}
	return v
}
