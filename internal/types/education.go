package types

import (
	"encoding/json"
	"fmt"
	"strings"
)

// EducationLevel represents a candidate's highest attained education level.
// The zero value is EducationNone ("Not Specified").
type EducationLevel int

const (
	EducationNone EducationLevel = iota
	EducationDiploma
	EducationBachelors
	EducationMasters
	EducationPhD
)

// educationNames maps levels to their display names.
var educationNames = map[EducationLevel]string{
	EducationNone:      "Not Specified",
	EducationDiploma:   "Diploma",
	EducationBachelors: "Bachelor's",
	EducationMasters:   "Master's",
	EducationPhD:       "PhD",
}

// String returns the human-readable name for the education level.
func (l EducationLevel) String() string {
	if name, ok := educationNames[l]; ok {
		return name
	}
	return "Not Specified"
}

// Ordinal returns the numeric rank used for minimum-requirement comparisons
// (none=0, diploma=1, bachelor's=2, master's=3, phd=4).
func (l EducationLevel) Ordinal() int {
	return int(l)
}

// ParseEducationLevel parses an education level from its configuration key or
// display name. Unknown and empty values map to EducationNone.
func ParseEducationLevel(s string) EducationLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "phd", "doctorate":
		return EducationPhD
	case "masters", "master's", "master":
		return EducationMasters
	case "bachelors", "bachelor's", "bachelor":
		return EducationBachelors
	case "diploma", "associate":
		return EducationDiploma
	default:
		return EducationNone
	}
}

// MarshalJSON encodes the level as its configuration key.
func (l EducationLevel) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.Key())
}

// UnmarshalJSON decodes a level from a configuration key or display name.
func (l *EducationLevel) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("education level must be a string: %w", err)
	}
	*l = ParseEducationLevel(s)
	return nil
}

// Key returns the lowercase configuration key for the level
// (none, diploma, bachelors, masters, phd).
func (l EducationLevel) Key() string {
	switch l {
	case EducationPhD:
		return "phd"
	case EducationMasters:
		return "masters"
	case EducationBachelors:
		return "bachelors"
	case EducationDiploma:
		return "diploma"
	default:
		return "none"
	}
}
