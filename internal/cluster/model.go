package cluster

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/jonathan/talent-match/internal/types"
)

// CentroidModel is a trained partitioning model: one centroid per cluster in
// feature space. Models are trained offline and injected; the engine only
// reads them.
type CentroidModel struct {
	Centroids    [][]float64    `json:"centroids"`
	FeatureNames []string       `json:"feature_names,omitempty"`
	ClusterNames map[string]string `json:"cluster_names,omitempty"` // cluster id (as string) -> display name
}

// Width returns the feature-vector width the model expects.
func (m *CentroidModel) Width() int {
	if len(m.Centroids) == 0 {
		return 0
	}
	return len(m.Centroids[0])
}

// Predict returns the nearest-centroid cluster id for a feature vector.
// The vector is padded or truncated to the model width and non-finite values
// are zeroed before the distance computation. An untrained model is a normal,
// fallback-triggering outcome, reported as an error rather than a panic.
func (m *CentroidModel) Predict(features []float64) (int, error) {
	width := m.Width()
	if width == 0 {
		return 0, fmt.Errorf("model has no centroids")
	}

	x := make([]float64, width)
	for i := 0; i < width && i < len(features); i++ {
		if v := features[i]; !math.IsNaN(v) && !math.IsInf(v, 0) {
			x[i] = v
		}
	}

	best := 0
	bestDist := math.Inf(1)
	for i, centroid := range m.Centroids {
		if d := squaredDistance(x, centroid); d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best, nil
}

// Name returns the display name for a cluster id, defaulting to "Cluster N".
func (m *CentroidModel) Name(clusterID int) string {
	if name, ok := m.ClusterNames[strconv.Itoa(clusterID)]; ok {
		return name
	}
	return fmt.Sprintf("Cluster %d", clusterID)
}

// DefaultClusterNames returns the display names used when a trained model
// carries none of its own, keyed by cluster id.
func DefaultClusterNames() map[string]string {
	names := make(map[string]string, len(Archetypes()))
	for _, a := range Archetypes() {
		names[strconv.Itoa(a.ID)] = a.Name
	}
	return names
}

// DecodeModel reads a JSON-encoded centroid model. The model store itself is
// an external collaborator; the engine only decodes what it is handed.
func DecodeModel(r io.Reader) (*CentroidModel, error) {
	var m CentroidModel
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return nil, fmt.Errorf("failed to decode cluster model: %w", err)
	}
	for i, c := range m.Centroids {
		if len(c) != len(m.Centroids[0]) {
			return nil, fmt.Errorf("centroid %d has width %d, want %d", i, len(c), len(m.Centroids[0]))
		}
	}
	return &m, nil
}

// Encode writes the model as JSON.
func (m *CentroidModel) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("failed to encode cluster model: %w", err)
	}
	return nil
}

// Assigner assigns candidates to clusters. The trained model is held behind
// an atomic pointer so a retrain can swap it without disturbing in-flight
// assignments; with no model (or a failing one) the deterministic rule-based
// path is used.
type Assigner struct {
	model atomic.Pointer[CentroidModel]
	log   *zap.Logger
}

// NewAssigner builds an Assigner. Both arguments may be nil: a nil model
// selects the rule-based path, a nil logger discards fallback logs.
func NewAssigner(model *CentroidModel, log *zap.Logger) *Assigner {
	if log == nil {
		log = zap.NewNop()
	}
	a := &Assigner{log: log}
	if model != nil {
		a.model.Store(model)
	}
	return a
}

// SetModel atomically replaces the trained model. In-flight assignments
// finish against the model they loaded; later calls see the new one.
func (a *Assigner) SetModel(model *CentroidModel) {
	a.model.Store(model)
}

// Assign places a candidate into a cluster. Model unavailability or a
// prediction failure falls back to the rule-based path; it is never surfaced
// to the caller.
func (a *Assigner) Assign(p *types.CandidateProfile) types.ClusterAssignment {
	model := a.model.Load()
	if model == nil {
		return AssignRuleBased(p.ExperienceYears, p.NumSkills, p.SkillDiversity)
	}

	clusterID, err := model.Predict(Features(p))
	if err != nil {
		a.log.Warn("cluster model prediction failed, using rule-based fallback", zap.Error(err))
		return AssignRuleBased(p.ExperienceYears, p.NumSkills, p.SkillDiversity)
	}

	return types.ClusterAssignment{
		ClusterID:   clusterID,
		ClusterName: model.Name(clusterID),
		Description: fmt.Sprintf("Model-identified cluster based on %d features", model.Width()),
	}
}

func squaredDistance(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}
