package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResponse = `COMPATIBILITY_SCORE: 7.5

MATCHED_SKILLS:
- python
- sql

MISSING_SKILLS:
- docker

STRENGTHS:
• Strong data engineering background
1. Solid SQL modelling experience

GAPS:
- No container experience

RECOMMENDATIONS:
- Ship a small containerized service

OVERALL_ASSESSMENT:
A good fit for the data side of the role.
Container skills need work.`

func TestParseResponse(t *testing.T) {
	result := parseResponse(sampleResponse)

	assert.Equal(t, 7.5, result.CompatibilityScore)
	assert.Equal(t, []string{"python", "sql"}, result.MatchedSkills)
	assert.Equal(t, []string{"docker"}, result.MissingSkills)
	assert.Equal(t, []string{"Strong data engineering background", "Solid SQL modelling experience"}, result.Strengths)
	assert.Equal(t, []string{"No container experience"}, result.Gaps)
	assert.Equal(t, []string{"Ship a small containerized service"}, result.Recommendations)
	assert.Equal(t, "A good fit for the data side of the role. Container skills need work.", result.OverallAssessment)
	assert.Equal(t, sampleResponse, result.RawResponse)
}

func TestParseResponseDefaults(t *testing.T) {
	result := parseResponse("free-form text the model produced instead")

	assert.Equal(t, 5.0, result.CompatibilityScore)
	assert.Empty(t, result.MatchedSkills)
	assert.Empty(t, result.MissingSkills)
	assert.Equal(t, "Analysis complete.", result.OverallAssessment)
}

func TestParseResponseScoreOutOfRange(t *testing.T) {
	// 42 is rejected, the following in-range number wins.
	result := parseResponse("COMPATIBILITY_SCORE: 42 then again 8")
	assert.Equal(t, 8.0, result.CompatibilityScore)
}

func TestListItems(t *testing.T) {
	items := listItems("HEADER:\n- first\n• second\n3. third\nplain fourth\nskip: me\n")
	assert.Equal(t, []string{"first", "second", "third", "plain fourth"}, items)
}

func TestListItemsNumberedMarker(t *testing.T) {
	items := listItems("10. double digit item\n")
	require.Len(t, items, 1)
	assert.Equal(t, "double digit item", items[0])
}

func TestTextAfterHeader(t *testing.T) {
	assert.Equal(t, "one two", textAfterHeader("HEADER:\none\ntwo\n"))
	assert.Equal(t, "", textAfterHeader("no header marker\nat all"))
}
