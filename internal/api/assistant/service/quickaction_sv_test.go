package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuickActionsForFeedbackWinsOverBookingAndTravel(t *testing.T) {
	actions := QuickActionsFor("I want to leave feedback about my travel booking")

	require.NotEmpty(t, actions)
	assert.Equal(t, "Go to Feedback", actions[0].Label)
}

func TestQuickActionsForNoMatch(t *testing.T) {
	assert.Nil(t, QuickActionsFor("completely unrelated gibberish"))
}

func TestQuickActionsForMatchesCaseInsensitively(t *testing.T) {
	actions := QuickActionsFor("What's the WEATHER like?")

	require.NotEmpty(t, actions)
	assert.Equal(t, "Check Weather", actions[0].Label)
}

func TestQuickActionTargetsResolveOrDispatch(t *testing.T) {
	// Every action emitted by the table must either navigate directly or be
	// a literal the session dispatch table knows, so no shortcut dead-ends.
	known := make(map[string]struct{}, len(quickDispatchTable))
	for _, d := range quickDispatchTable {
		known[d.Action] = struct{}{}
	}

	for _, rule := range quickActionTable {
		for _, action := range rule.Actions {
			if strings.HasPrefix(action.Action, "/") {
				continue
			}
			_, ok := known[action.Action]
			assert.True(t, ok, "action %q from keyword %q has no dispatch entry", action.Action, rule.Keyword)
		}
	}
}

func TestSuggestionsForCuratedPages(t *testing.T) {
	assert.NotEmpty(t, SuggestionsFor("/user/travels"))
	assert.NotEmpty(t, SuggestionsFor("/user/bookings"))
	assert.NotEmpty(t, SuggestionsFor("/user/feedback"))
	assert.NotEmpty(t, SuggestionsFor("/user/profile/edit"))

	assert.Nil(t, SuggestionsFor("/user/weather"))
	assert.Nil(t, SuggestionsFor("/unknown"))
}
