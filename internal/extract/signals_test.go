package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/talent-match/internal/types"
)

func TestEducationLevel_PhDWins(t *testing.T) {
	text := "PhD in Computer Science, MSc in Mathematics, B.Tech in Engineering"
	assert.Equal(t, types.EducationPhD, EducationLevel(text))
}

func TestEducationLevel_MastersIncludesMBA(t *testing.T) {
	assert.Equal(t, types.EducationMasters, EducationLevel("MBA from a state university"))
	assert.Equal(t, types.EducationMasters, EducationLevel("M.Tech in Electronics"))
}

func TestEducationLevel_BachelorsVariants(t *testing.T) {
	assert.Equal(t, types.EducationBachelors, EducationLevel("B.Tech in Computer Science"))
	assert.Equal(t, types.EducationBachelors, EducationLevel("completed undergraduate studies"))
	assert.Equal(t, types.EducationBachelors, EducationLevel("Bachelor of Science in Physics"))
}

func TestEducationLevel_Diploma(t *testing.T) {
	assert.Equal(t, types.EducationDiploma, EducationLevel("Diploma in Web Development"))
	assert.Equal(t, types.EducationDiploma, EducationLevel("Associate degree holder"))
}

func TestEducationLevel_NotSpecified(t *testing.T) {
	assert.Equal(t, types.EducationNone, EducationLevel("Self-taught programmer"))
}

func TestHasCertifications_Keywords(t *testing.T) {
	assert.True(t, HasCertifications("AWS Certified Solutions Architect"))
	assert.True(t, HasCertifications("Completed a certificate program"))
	assert.False(t, HasCertifications("Worked on cloud infrastructure"))
}

func TestHasCertifications_NoNegationHandling(t *testing.T) {
	// Keyword-OR semantics: a negated mention still flags true. The scoring
	// constants were tuned against this behavior.
	assert.True(t, HasCertifications("I hold no certifications"))
}

func TestHasLeadership_Keywords(t *testing.T) {
	assert.True(t, HasLeadership("Led a team of five engineers"))
	assert.True(t, HasLeadership("Senior engineer and mentor"))
	assert.False(t, HasLeadership("Wrote backend code"))
}
