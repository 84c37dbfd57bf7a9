package service

import (
	"context"
	"errors"
	"sync"

	"ProjectRoameo/internal/entity"
	"ProjectRoameo/pkg/redis"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	faqStorageKey = "roameo:assistant:faqs"
	faqChannel    = "roameo:assistant:faqs:changed"
)

// defaultFAQEntries is the built-in corpus used whenever the persisted one is
// absent or unreadable. The store writes it back so later edits start from a
// populated set.
func defaultFAQEntries() []entity.FAQEntry {
	return []entity.FAQEntry{
		{
			ID:             "FAQ-USR-001",
			Question:       "How do I create a new travel plan?",
			Answer:         "Open the Travels page and click the New Travel button, then choose a standard or smart itinerary, pick your destination and travel dates, and save the trip.",
			LastUpdated:    "2025-06-01",
			Tags:           []string{"travel", "create", "plan", "new"},
			TargetPages:    []string{"/user/travels", "/user/travels/create"},
			SystemCategory: "travel",
		},
		{
			ID:             "FAQ-USR-002",
			Question:       "What is the difference between standard and smart itineraries?",
			Answer:         "A standard itinerary lets you schedule every activity by hand, while a smart itinerary builds a day-by-day schedule automatically from your destination and preferences. You can switch types while the trip is still a draft.",
			LastUpdated:    "2025-06-01",
			Tags:           []string{"itinerary", "standard", "smart", "difference"},
			TargetPages:    []string{"/user/travels/standard", "/user/travels/smart"},
			SystemCategory: "travel",
		},
		{
			ID:             "FAQ-USR-003",
			Question:       "How do I edit an existing travel plan?",
			Answer:         "Open the trip card on the Travels page and use the edit action. Dates, destinations and activities can be changed until the trip is completed.",
			LastUpdated:    "2025-06-01",
			Tags:           []string{"edit", "change", "update", "travel"},
			TargetPages:    []string{"/user/travels"},
			SystemCategory: "travel",
		},
		{
			ID:             "FAQ-USR-004",
			Question:       "Where can I check my booking status?",
			Answer:         "The Bookings page lists every reservation with its current status. Pending bookings update automatically once the provider confirms.",
			LastUpdated:    "2025-06-01",
			Tags:           []string{"booking", "status", "reservation", "confirm"},
			TargetPages:    []string{"/user/bookings"},
			SystemCategory: "booking",
		},
		{
			ID:             "FAQ-USR-005",
			Question:       "How do I update my profile information?",
			Answer:         "Go to Edit Profile to change your name, contact details, password or avatar. Payment settings are on the same page.",
			LastUpdated:    "2025-06-01",
			Tags:           []string{"profile", "update", "account", "password"},
			TargetPages:    []string{"/user/profile/edit"},
			SystemCategory: "profile",
		},
	}
}

type FAQDomain interface {
	Load(ctx context.Context) []entity.FAQEntry
	Corpus(ctx context.Context) []entity.FAQEntry
	Save(ctx context.Context, entries []entity.FAQEntry) error
	Search(ctx context.Context, query, currentPath string) []entity.FAQEntry
	Watch(ctx context.Context, onChange func([]entity.FAQEntry))
}

type faqDomain struct {
	log *logrus.Logger
	kv  redis.IRedis

	mu     sync.RWMutex
	corpus []entity.FAQEntry
	loaded bool
}

func newFAQDomain(kv redis.IRedis, log *logrus.Logger) FAQDomain {
	return &faqDomain{
		log: log,
		kv:  kv,
	}
}

// Load reads the persisted corpus, falling back to the defaults when the key
// is missing or the payload doesn't parse. Load never fails; the assistant
// must answer even when the store is down.
func (f *faqDomain) Load(ctx context.Context) []entity.FAQEntry {
	entries := f.loadFromStore(ctx)

	f.mu.Lock()
	f.corpus = entries
	f.loaded = true
	f.mu.Unlock()

	return entries
}

func (f *faqDomain) loadFromStore(ctx context.Context) []entity.FAQEntry {
	raw, err := f.kv.Get(ctx, faqStorageKey)
	if err != nil {
		if errors.Is(err, redis.ErrKeyNotFound) {
			f.log.WithFields(logrus.Fields{
				"key": faqStorageKey,
			}).Info("[FAQDomain.Load] no persisted faq corpus, seeding defaults")
		} else {
			f.log.WithFields(logrus.Fields{
				"key":   faqStorageKey,
				"error": err,
			}).Error("[FAQDomain.Load] failed to read faq corpus, using defaults")
			return defaultFAQEntries()
		}
		return f.seedDefaults(ctx)
	}

	var entries []entity.FAQEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil || len(entries) == 0 {
		f.log.WithFields(logrus.Fields{
			"key":   faqStorageKey,
			"error": err,
		}).Error("[FAQDomain.Load] persisted faq corpus is unreadable, reseeding defaults")
		return f.seedDefaults(ctx)
	}

	return entries
}

func (f *faqDomain) seedDefaults(ctx context.Context) []entity.FAQEntry {
	entries := defaultFAQEntries()
	if err := f.persist(ctx, entries); err != nil {
		f.log.WithFields(logrus.Fields{
			"error": err,
		}).Warn("[FAQDomain.Load] failed to write default faq corpus back")
	}
	return entries
}

// Corpus returns the cached corpus, loading it on first use.
func (f *faqDomain) Corpus(ctx context.Context) []entity.FAQEntry {
	f.mu.RLock()
	if f.loaded {
		corpus := f.corpus
		f.mu.RUnlock()
		return corpus
	}
	f.mu.RUnlock()

	return f.Load(ctx)
}

// Save persists a new corpus and notifies every instance watching the
// channel so open assistants reload.
func (f *faqDomain) Save(ctx context.Context, entries []entity.FAQEntry) error {
	if err := f.persist(ctx, entries); err != nil {
		return err
	}

	f.mu.Lock()
	f.corpus = entries
	f.loaded = true
	f.mu.Unlock()

	if err := f.kv.Publish(ctx, faqChannel, "updated"); err != nil {
		f.log.WithFields(logrus.Fields{
			"channel": faqChannel,
			"error":   err,
		}).Warn("[FAQDomain.Save] failed to publish faq change notification")
	}

	return nil
}

func (f *faqDomain) persist(ctx context.Context, entries []entity.FAQEntry) error {
	payload, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return f.kv.Set(ctx, faqStorageKey, string(payload))
}

// Search ranks the cached corpus against the query and current page.
func (f *faqDomain) Search(ctx context.Context, query, currentPath string) []entity.FAQEntry {
	return scoreEntries(query, currentPath, f.Corpus(ctx))
}

// Watch reloads the corpus whenever a change notification arrives. Bursts of
// notifications are drained so only the newest state is loaded; a reload that
// was superseded while pending never overwrites the fresher one.
func (f *faqDomain) Watch(ctx context.Context, onChange func([]entity.FAQEntry)) {
	notifications := f.kv.Subscribe(ctx, faqChannel)

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-notifications:
				if !ok {
					return
				}
				f.drainPending(notifications)

				entries := f.Load(ctx)
				f.log.WithFields(logrus.Fields{
					"entries": len(entries),
				}).Info("[FAQDomain.Watch] faq corpus reloaded")

				if onChange != nil {
					onChange(entries)
				}
			}
		}
	}()
}

func (f *faqDomain) drainPending(notifications <-chan string) {
	for {
		select {
		case _, ok := <-notifications:
			if !ok {
				return
			}
		default:
			return
		}
	}
}
