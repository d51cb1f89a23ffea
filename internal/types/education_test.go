package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEducationLevel_Ordinals(t *testing.T) {
	assert.Equal(t, 0, EducationNone.Ordinal())
	assert.Equal(t, 1, EducationDiploma.Ordinal())
	assert.Equal(t, 2, EducationBachelors.Ordinal())
	assert.Equal(t, 3, EducationMasters.Ordinal())
	assert.Equal(t, 4, EducationPhD.Ordinal())
}

func TestEducationLevel_String(t *testing.T) {
	assert.Equal(t, "Not Specified", EducationNone.String())
	assert.Equal(t, "Bachelor's", EducationBachelors.String())
	assert.Equal(t, "PhD", EducationPhD.String())
}

func TestParseEducationLevel_Keys(t *testing.T) {
	assert.Equal(t, EducationPhD, ParseEducationLevel("phd"))
	assert.Equal(t, EducationPhD, ParseEducationLevel("Doctorate"))
	assert.Equal(t, EducationMasters, ParseEducationLevel("Master's"))
	assert.Equal(t, EducationBachelors, ParseEducationLevel("bachelors"))
	assert.Equal(t, EducationDiploma, ParseEducationLevel("associate"))
}

func TestParseEducationLevel_UnknownMapsToNone(t *testing.T) {
	assert.Equal(t, EducationNone, ParseEducationLevel("kindergarten"))
	assert.Equal(t, EducationNone, ParseEducationLevel(""))
}

func TestEducationLevel_JSONRoundTrip(t *testing.T) {
	data, err := json.Marshal(EducationMasters)
	require.NoError(t, err)
	assert.Equal(t, `"masters"`, string(data))

	var level EducationLevel
	require.NoError(t, json.Unmarshal(data, &level))
	assert.Equal(t, EducationMasters, level)
}

func TestEducationLevel_UnmarshalDisplayName(t *testing.T) {
	var level EducationLevel
	require.NoError(t, json.Unmarshal([]byte(`"Bachelor's"`), &level))
	assert.Equal(t, EducationBachelors, level)
}

func TestEducationLevel_UnmarshalRejectsNonString(t *testing.T) {
	var level EducationLevel
	err := json.Unmarshal([]byte(`3`), &level)
	assert.Error(t, err, "Numeric education levels are not part of the wire format")
}
