package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"ProjectRoameo/internal/entity"
	"ProjectRoameo/pkg/redis"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeKV struct {
	mu        sync.Mutex
	data      map[string]string
	published []string
	subs      []chan string
}

func newFakeKV() *fakeKV {
	return &fakeKV{data: make(map[string]string)}
}

func (f *fakeKV) Get(_ context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.data[key]
	if !ok {
		return "", redis.ErrKeyNotFound
	}
	return v, nil
}

func (f *fakeKV) Set(_ context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[key] = value
	return nil
}

func (f *fakeKV) Publish(_ context.Context, channel, payload string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.published = append(f.published, channel+":"+payload)
	for _, ch := range f.subs {
		select {
		case ch <- payload:
		default:
		}
	}
	return nil
}

func (f *fakeKV) Subscribe(_ context.Context, _ string) <-chan string {
	f.mu.Lock()
	defer f.mu.Unlock()
	ch := make(chan string, 8)
	f.subs = append(f.subs, ch)
	return ch
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func TestFAQLoadSeedsDefaultsWhenAbsent(t *testing.T) {
	kv := newFakeKV()
	faq := newFAQDomain(kv, testLogger())

	entries := faq.Load(context.Background())

	require.Len(t, entries, 5)
	assert.Equal(t, "FAQ-USR-001", entries[0].ID)

	// Defaults are written back so the admin editor starts populated.
	raw, err := kv.Get(context.Background(), faqStorageKey)
	require.NoError(t, err)
	assert.Contains(t, raw, "FAQ-USR-001")
}

func TestFAQLoadReseedsDefaultsOnMalformedPayload(t *testing.T) {
	kv := newFakeKV()
	kv.data[faqStorageKey] = "{not json"
	faq := newFAQDomain(kv, testLogger())

	entries := faq.Load(context.Background())

	require.Len(t, entries, 5)
	assert.Contains(t, kv.data[faqStorageKey], "FAQ-USR-001")
}

func TestFAQSavePersistsAndNotifies(t *testing.T) {
	kv := newFakeKV()
	faq := newFAQDomain(kv, testLogger())

	custom := []entity.FAQEntry{
		{ID: "X-1", Question: "Custom question", Answer: "Custom answer"},
	}
	require.NoError(t, faq.Save(context.Background(), custom))

	assert.Contains(t, kv.data[faqStorageKey], "X-1")
	require.Len(t, kv.published, 1)
	assert.Contains(t, kv.published[0], faqChannel)

	reloaded := faq.Load(context.Background())
	require.Len(t, reloaded, 1)
	assert.Equal(t, "X-1", reloaded[0].ID)
}

func TestFAQWatchReloadsOnNotification(t *testing.T) {
	kv := newFakeKV()
	writer := newFAQDomain(kv, testLogger())
	watcher := newFAQDomain(kv, testLogger())
	watcher.Load(context.Background())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloads := make(chan []entity.FAQEntry, 8)
	watcher.Watch(ctx, func(entries []entity.FAQEntry) {
		reloads <- entries
	})

	custom := []entity.FAQEntry{
		{ID: "X-2", Question: "Replaced", Answer: "Replaced"},
	}
	require.NoError(t, writer.Save(context.Background(), custom))

	select {
	case entries := <-reloads:
		require.Len(t, entries, 1)
		assert.Equal(t, "X-2", entries[0].ID)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not reload after notification")
	}

	corpus := watcher.Corpus(context.Background())
	require.Len(t, corpus, 1)
	assert.Equal(t, "X-2", corpus[0].ID)
}

func TestFAQWatchDrainsBurstsToNewestState(t *testing.T) {
	kv := newFakeKV()
	faq := newFAQDomain(kv, testLogger()).(*faqDomain)

	ch := make(chan string, 8)
	ch <- "updated"
	ch <- "updated"
	ch <- "updated"

	faq.drainPending(ch)

	assert.Empty(t, ch, "stale notifications are superseded by the newest one")
}

func TestFAQSearchDefaultCorpusRanksCreateTravelFirst(t *testing.T) {
	kv := newFakeKV()
	faq := newFAQDomain(kv, testLogger())

	results := faq.Search(context.Background(), "create new travel plan", "/user/travels")

	require.NotEmpty(t, results)
	assert.Equal(t, "FAQ-USR-001", results[0].ID)
	assert.LessOrEqual(t, len(results), 3)
}
