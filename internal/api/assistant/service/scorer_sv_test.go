package service

import (
	"testing"

	"ProjectRoameo/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreEntriesQuestionSubstringOutranksAnswerSubstring(t *testing.T) {
	corpus := []entity.FAQEntry{
		{ID: "a", Question: "Totally unrelated", Answer: "The refund window is thirty days."},
		{ID: "b", Question: "What is the refund window?", Answer: "Totally unrelated."},
	}

	results := scoreEntries("refund window", "/nowhere", corpus)

	require.Len(t, results, 2)
	assert.Equal(t, "b", results[0].ID, "question match scores above answer match")
	assert.Equal(t, "a", results[1].ID)
}

func TestScoreEntriesDropsZeroScores(t *testing.T) {
	corpus := []entity.FAQEntry{
		{ID: "a", Question: "How do I reset my password?", Answer: "Use the profile page."},
		{ID: "b", Question: "Unrelated question", Answer: "Unrelated answer"},
	}

	results := scoreEntries("how do i reset my password?", "/nowhere", corpus)

	require.Len(t, results, 1)
	assert.Equal(t, "a", results[0].ID)
}

func TestScoreEntriesCapsAtThreeAndKeepsStableOrder(t *testing.T) {
	// All four entries tie on a single tag hit; corpus order must survive
	// and the fourth must be cut.
	corpus := []entity.FAQEntry{
		{ID: "a", Question: "q1", Answer: "a1", Tags: []string{"wifi"}},
		{ID: "b", Question: "q2", Answer: "a2", Tags: []string{"wifi"}},
		{ID: "c", Question: "q3", Answer: "a3", Tags: []string{"wifi"}},
		{ID: "d", Question: "q4", Answer: "a4", Tags: []string{"wifi"}},
	}

	results := scoreEntries("is there wifi on the bus", "/nowhere", corpus)

	require.Len(t, results, 3)
	assert.Equal(t, "a", results[0].ID)
	assert.Equal(t, "b", results[1].ID)
	assert.Equal(t, "c", results[2].ID)
}

func TestScoreEntriesEmptyQueryAndEmptyCorpus(t *testing.T) {
	corpus := []entity.FAQEntry{
		{ID: "a", Question: "q", Answer: "a"},
	}

	assert.Nil(t, scoreEntries("", "/user/travels", corpus))
	assert.Nil(t, scoreEntries("   ", "/user/travels", corpus))
	assert.Nil(t, scoreEntries("anything", "/user/travels", nil))
}

func TestScoreEntriesPageTargetBonus(t *testing.T) {
	corpus := []entity.FAQEntry{
		{ID: "general", Question: "How do refunds work?", Answer: "x", Tags: []string{"refund"}},
		{ID: "targeted", Question: "How do refunds work here?", Answer: "y", Tags: []string{"refund"}, TargetPages: []string{"/user/bookings"}},
	}

	results := scoreEntries("refund", "/user/bookings", corpus)

	require.Len(t, results, 2)
	assert.Equal(t, "targeted", results[0].ID, "entry targeting the current page ranks first")
}

func TestScoreEntriesNormalizesCaseAndDiacritics(t *testing.T) {
	corpus := []entity.FAQEntry{
		{ID: "a", Question: "Visiting Médan", Answer: "Guide for the city."},
	}

	results := scoreEntries("MEDAN", "/nowhere", corpus)

	require.Len(t, results, 1)
	assert.Equal(t, "a", results[0].ID)
}

func TestPageNameFallsBackToDashboard(t *testing.T) {
	assert.Equal(t, "Dashboard", PageName("/does/not/exist"))
	assert.Nil(t, PageKeywords("/does/not/exist"))

	assert.Equal(t, "Travels", PageName("/user/travels"))
	assert.NotEmpty(t, PageKeywords("/user/travels"))
}
