package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_HasNineCategories(t *testing.T) {
	cat := Default()
	assert.Equal(t, 9, cat.NumCategories())
	assert.Equal(t, []string{
		ProgrammingLanguages, WebTechnologies, Databases, DataScience,
		CloudDevOps, Mobile, Design, SoftSkills, OtherTechnical,
	}, cat.Categories())
}

func TestCanonical_CaseInsensitive(t *testing.T) {
	cat := Default()

	skill, category, ok := cat.Canonical("python")
	require.True(t, ok)
	assert.Equal(t, "Python", skill)
	assert.Equal(t, ProgrammingLanguages, category)

	skill, _, ok = cat.Canonical("PYTHON")
	require.True(t, ok)
	assert.Equal(t, "Python", skill)
}

func TestCanonical_AliasSpellings(t *testing.T) {
	cat := Default()

	for _, variant := range []string{"Next.js", "NextJS", "nextjs"} {
		skill, category, ok := cat.Canonical(variant)
		require.True(t, ok, "variant %q should resolve", variant)
		assert.Equal(t, "Next.js", skill)
		assert.Equal(t, WebTechnologies, category)
	}
}

func TestCanonical_UnknownSkill(t *testing.T) {
	_, _, ok := Default().Canonical("underwater basket weaving")
	assert.False(t, ok)
}

func TestCategoryOf_UnknownDefaultsToOtherTechnical(t *testing.T) {
	assert.Equal(t, OtherTechnical, Default().CategoryOf("COBOL"))
}

func TestCategoryOf_DuplicateSkillKeepsFirstCategory(t *testing.T) {
	// Swift appears in both programming_languages and mobile; lookup keeps
	// the first-registered category.
	assert.Equal(t, ProgrammingLanguages, Default().CategoryOf("Swift"))
}

func TestTechnicalCategories_ExcludeDesignAndSoftSkills(t *testing.T) {
	technical := TechnicalCategories()
	assert.Len(t, technical, 7)
	assert.NotContains(t, technical, Design)
	assert.NotContains(t, technical, SoftSkills)
}

func TestSkills_UnknownCategoryReturnsNil(t *testing.T) {
	assert.Nil(t, Default().Skills("nonexistent"))
}
