package service

import (
	"context"
	"testing"

	"ProjectRoameo/internal/entity"
	"ProjectRoameo/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestComposer(t *testing.T, corpus []entity.FAQEntry) ComposerDomain {
	t.Helper()
	kv := newFakeKV()
	faq := newFAQDomain(kv, testLogger())
	if corpus != nil {
		require.NoError(t, faq.Save(context.Background(), corpus))
	}
	return newComposerDomain(faq, utils.New(), testLogger())
}

func TestComposeNavigationIntent(t *testing.T) {
	c := newTestComposer(t, nil)

	result := c.Compose(context.Background(), "go to my bookings", "/user/dashboard")

	assert.Equal(t, "/user/bookings", result.Navigation)
	assert.Contains(t, result.Message.Content, "Bookings")
	assert.Equal(t, entity.RoleAssistant, result.Message.Role)
}

func TestComposeFeedbackIntentShadowsFAQMatch(t *testing.T) {
	// A corpus entry answers the exact question, but the feedback intent is
	// checked first, so the canned feedback reply wins.
	corpus := []entity.FAQEntry{
		{
			ID:       "FB-1",
			Question: "How do I submit feedback?",
			Answer:   "Use the feedback form.",
			Tags:     []string{"feedback"},
		},
	}
	c := newTestComposer(t, corpus)

	result := c.Compose(context.Background(), "How do I submit feedback?", "/user/feedback")

	assert.Empty(t, result.Navigation)
	assert.Empty(t, result.Message.RelatedFAQs)
	assert.Contains(t, result.Message.Content, "experience")
	require.NotEmpty(t, result.Message.QuickActions)
	assert.Equal(t, "Go to Feedback", result.Message.QuickActions[0].Label)
	assert.Equal(t, SuggestionsFor("/user/feedback"), result.Message.Suggestions)
}

func TestComposeBookingIntent(t *testing.T) {
	c := newTestComposer(t, nil)

	result := c.Compose(context.Background(), "I have a question about my reservation", "/user/dashboard")

	assert.Contains(t, result.Message.Content, "Bookings page")
	require.NotEmpty(t, result.Message.QuickActions)
	assert.Equal(t, "Go to Bookings", result.Message.QuickActions[0].Label)
}

func TestComposeFAQMatchGenericFormat(t *testing.T) {
	corpus := []entity.FAQEntry{
		{
			ID:       "W-1",
			Question: "Where can I see the forecast?",
			Answer:   "The forecast is on the weather page.",
			Tags:     []string{"weather", "forecast"},
		},
	}
	c := newTestComposer(t, corpus)

	result := c.Compose(context.Background(), "weather forecast", "/unknown")

	require.Len(t, result.Message.RelatedFAQs, 1)
	assert.Equal(t, "W-1", result.Message.RelatedFAQs[0].ID)
	assert.Contains(t, result.Message.Content, "Here are some answers")
	assert.Contains(t, result.Message.Content, "Where can I see the forecast?")
}

func TestComposeFAQMatchPageSpecificFormat(t *testing.T) {
	corpus := []entity.FAQEntry{
		{
			ID:          "W-2",
			Question:    "Where can I see the forecast?",
			Answer:      "The forecast is right here.",
			Tags:        []string{"weather", "forecast"},
			TargetPages: []string{"/user/weather"},
		},
	}
	c := newTestComposer(t, corpus)

	result := c.Compose(context.Background(), "weather forecast", "/user/weather")

	require.Len(t, result.Message.RelatedFAQs, 1)
	assert.Contains(t, result.Message.Content, "Here's what I found about Weather")
	assert.Contains(t, result.Message.Content, "1. Where can I see the forecast?")
}

func TestComposePageHelpFallback(t *testing.T) {
	c := newTestComposer(t, nil)

	result := c.Compose(context.Background(), "xyzzy qwerty", "/user/weather")

	assert.Contains(t, result.Message.Content, "Weather page")
	assert.Empty(t, result.Message.RelatedFAQs)
}

func TestComposeGeneralHelp(t *testing.T) {
	c := newTestComposer(t, nil)

	result := c.Compose(context.Background(), "help", "/unknown")

	assert.Contains(t, result.Message.Content, "Here's what I can do")
	assert.Equal(t, genericSuggestions, result.Message.Suggestions)
}

func TestComposeDefaultReplyEchoesQuestionAndPage(t *testing.T) {
	c := newTestComposer(t, nil)

	result := c.Compose(context.Background(), "xyzzy qwerty", "/unknown")

	assert.Contains(t, result.Message.Content, "xyzzy qwerty")
	assert.Contains(t, result.Message.Content, "Dashboard")
	assert.Empty(t, result.Navigation)
}

func TestWelcomeMessage(t *testing.T) {
	c := newTestComposer(t, nil)

	msg := c.WelcomeMessage()

	assert.Equal(t, entity.WelcomeMessageID, msg.ID)
	assert.Equal(t, entity.RoleAssistant, msg.Role)
	assert.Len(t, msg.Suggestions, 5)
}
