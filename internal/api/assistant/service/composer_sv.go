package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ProjectRoameo/internal/entity"
	"ProjectRoameo/pkg/utils"

	"github.com/sirupsen/logrus"
)

// ComposeResult pairs a reply with the navigation it may trigger after the
// client has shown it.
type ComposeResult struct {
	Message    entity.Message
	Navigation string
}

type ComposerDomain interface {
	Compose(ctx context.Context, message, currentPath string) ComposeResult
	WelcomeMessage() entity.Message
}

type composerDomain struct {
	log   *logrus.Logger
	faq   FAQDomain
	utils utils.IUtils
	rules []composeRule
}

// composeRule returns nil when it doesn't apply; the chain takes the first
// non-nil result. Order is load-bearing: topical intents sit above the FAQ
// rule, so "how do I submit feedback" gets the feedback reply even when the
// corpus has a matching entry.
type composeRule func(ctx context.Context, normalized, raw, currentPath string) *ComposeResult

func newComposerDomain(faq FAQDomain, u utils.IUtils, log *logrus.Logger) ComposerDomain {
	c := &composerDomain{
		log:   log,
		faq:   faq,
		utils: u,
	}
	c.rules = []composeRule{
		c.navigationRule,
		c.feedbackRule,
		c.bookingRule,
		c.travelRule,
		c.profileRule,
		c.faqRule,
		c.pageHelpRule,
		c.generalHelpRule,
	}
	return c
}

var navigationTriggers = []string{"go to", "navigate", "open", "show me"}

type navigationTarget struct {
	Keyword string
	Path    string
}

// navigationTable is ordered; the first keyword found wins, so "show me my
// travel history" resolves to travels rather than history by design of the
// keyword order below ("history" is matched only when "travel" is absent).
var navigationTable = []navigationTarget{
	{Keyword: "travel", Path: "/user/travels"},
	{Keyword: "booking", Path: "/user/bookings"},
	{Keyword: "profile", Path: "/user/profile/edit"},
	{Keyword: "history", Path: "/user/history"},
	{Keyword: "feedback", Path: "/user/feedback"},
	{Keyword: "notification", Path: "/user/notifications"},
	{Keyword: "weather", Path: "/user/weather"},
	{Keyword: "standard", Path: "/user/travels/standard"},
	{Keyword: "smart", Path: "/user/travels/smart"},
	{Keyword: "dashboard", Path: "/user/dashboard"},
	{Keyword: "home", Path: "/user/dashboard"},
	{Keyword: "create", Path: "/user/travels/create"},
}

func (c *composerDomain) Compose(ctx context.Context, message, currentPath string) ComposeResult {
	normalized := normalizeText(message)

	for _, rule := range c.rules {
		if result := rule(ctx, normalized, message, currentPath); result != nil {
			return *result
		}
	}
	return c.defaultReply(message, currentPath)
}

// WelcomeMessage is the greeting appended when a session starts. Its fixed ID
// keeps it out of the unread count.
func (c *composerDomain) WelcomeMessage() entity.Message {
	return entity.Message{
		ID:          entity.WelcomeMessageID,
		Role:        entity.RoleAssistant,
		Content:     "Hi! I'm Roameo, your travel assistant. Ask me anything about your trips, bookings or account, or pick a question below to get started.",
		Timestamp:   time.Now(),
		Suggestions: genericSuggestions,
	}
}

func (c *composerDomain) navigationRule(_ context.Context, normalized, _, _ string) *ComposeResult {
	triggered := false
	for _, trigger := range navigationTriggers {
		if strings.Contains(normalized, trigger) {
			triggered = true
			break
		}
	}
	if !triggered {
		return nil
	}

	for _, target := range navigationTable {
		if strings.Contains(normalized, target.Keyword) {
			return &ComposeResult{
				Message:    c.newReply(fmt.Sprintf("Taking you to the %s page now!", PageName(target.Path)), nil, nil, nil),
				Navigation: target.Path,
			}
		}
	}
	return nil
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

func (c *composerDomain) feedbackRule(_ context.Context, normalized, _, currentPath string) *ComposeResult {
	if !containsAny(normalized, []string{"feedback", "review", "rate", "comment", "suggestion"}) {
		return nil
	}
	content := "I'd love to hear about your experience!\n\nOn the Feedback page you can rate your trips, leave comments, and review everything you've already submitted. Your feedback helps us plan better trips for you."
	return &ComposeResult{
		Message: c.newReply(content, SuggestionsFor(currentPath), feedbackActions, nil),
	}
}

func (c *composerDomain) bookingRule(_ context.Context, normalized, _, _ string) *ComposeResult {
	if !containsAny(normalized, []string{"booking", "book", "reservation"}) {
		return nil
	}
	content := "I can help you with your bookings!\n\nThe Bookings page lists every reservation with its current status. From there you can confirm or cancel pending ones and download confirmation documents."
	return &ComposeResult{
		Message: c.newReply(content, nil, bookingActions, nil),
	}
}

func (c *composerDomain) travelRule(_ context.Context, normalized, _, _ string) *ComposeResult {
	if !containsAny(normalized, []string{"travel", "trip", "itinerary", "plan", "destination"}) {
		return nil
	}
	content := "Let's plan something!\n\nOn the Travels page you can create a new trip with either a standard itinerary you build by hand or a smart one generated from your destination and preferences."
	return &ComposeResult{
		Message: c.newReply(content, nil, travelActions, nil),
	}
}

func (c *composerDomain) profileRule(_ context.Context, normalized, _, _ string) *ComposeResult {
	if !containsAny(normalized, []string{"profile", "account", "settings", "password", "personal"}) {
		return nil
	}
	content := "Your account is managed from the Edit Profile page.\n\nThere you can update your name and contact details, change your password, upload a new avatar, and manage payment settings."
	return &ComposeResult{
		Message: c.newReply(content, nil, profileActions, nil),
	}
}

func (c *composerDomain) faqRule(ctx context.Context, _, raw, currentPath string) *ComposeResult {
	matches := c.faq.Search(ctx, raw, currentPath)
	if len(matches) == 0 {
		return nil
	}

	pageSpecific := make([]entity.FAQEntry, 0, len(matches))
	for _, m := range matches {
		if m.TargetsPage(currentPath) {
			pageSpecific = append(pageSpecific, m)
		}
	}

	var b strings.Builder
	shown := matches
	if len(pageSpecific) > 0 {
		shown = pageSpecific
		fmt.Fprintf(&b, "Here's what I found about %s:\n\n", PageName(currentPath))
		for i, m := range shown {
			fmt.Fprintf(&b, "%d. %s", i+1, m.Question)
			if len(m.Tags) > 0 {
				tags := m.Tags
				if len(tags) > 3 {
					tags = tags[:3]
				}
				fmt.Fprintf(&b, " (%s)", strings.Join(tags, ", "))
			}
			fmt.Fprintf(&b, "\n%s\n\n", m.Answer)
		}
	} else {
		b.WriteString("Here are some answers that might help:\n\n")
		for _, m := range shown {
			fmt.Fprintf(&b, "• %s\n%s\n\n", m.Question, m.Answer)
		}
	}

	return &ComposeResult{
		Message: c.newReply(strings.TrimRight(b.String(), "\n"), SuggestionsFor(currentPath), QuickActionsFor(raw), shown),
	}
}

func (c *composerDomain) pageHelpRule(_ context.Context, _, raw, currentPath string) *ComposeResult {
	blurb, ok := pageHelp(currentPath)
	if !ok {
		return nil
	}
	return &ComposeResult{
		Message: c.newReply(blurb, SuggestionsFor(currentPath), QuickActionsFor(raw), nil),
	}
}

func (c *composerDomain) generalHelpRule(_ context.Context, normalized, raw, _ string) *ComposeResult {
	if !containsAny(normalized, []string{"help", "support", "assistance"}) {
		return nil
	}
	content := "Here's what I can do:\n\n• Plan trips with standard or smart itineraries\n• Track your bookings and their status\n• Collect your feedback about past trips\n• Manage your profile, password and payment settings\n• Show the weather for your destinations\n\nJust ask, or pick one of the questions below."
	return &ComposeResult{
		Message: c.newReply(content, genericSuggestions, QuickActionsFor(raw), nil),
	}
}

func (c *composerDomain) defaultReply(raw, currentPath string) ComposeResult {
	content := fmt.Sprintf("I'm Roameo, your travel assistant! You asked: %q\n\nYou're currently on the %s page. I can help with travel plans, bookings, feedback and your profile; try one of the suggestions below.", raw, PageName(currentPath))
	return ComposeResult{
		Message: c.newReply(content, SuggestionsFor(currentPath), QuickActionsFor(raw), nil),
	}
}

func (c *composerDomain) newReply(content string, suggestions []string, actions []entity.QuickAction, related []entity.FAQEntry) entity.Message {
	id, err := c.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		c.log.WithFields(logrus.Fields{
			"error": err,
		}).Error("[ComposerDomain.newReply] failed to generate message id")
		id = fmt.Sprintf("msg-%d", time.Now().UnixNano())
	}

	return entity.Message{
		ID:           id,
		Role:         entity.RoleAssistant,
		Content:      content,
		Timestamp:    time.Now(),
		Suggestions:  suggestions,
		QuickActions: actions,
		RelatedFAQs:  related,
	}
}
