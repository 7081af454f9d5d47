package scheduler

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/tazhate/familyhub/config"
	"github.com/tazhate/familyhub/internal/domain"
	"github.com/tazhate/familyhub/internal/service"
	"github.com/tazhate/familyhub/internal/storage"
)

func newSchedulerFixture(t *testing.T, feedPath string) (*storage.Storage, *Scheduler) {
	t.Helper()

	store := storage.New()
	cfg := &config.Config{
		Timezone:    time.UTC,
		FeedPath:    feedPath,
		FeedRefresh: "*/5 * * * *",
	}
	return store, New(cfg, store, service.NewPollService(store))
}

func TestSweepPolls(t *testing.T) {
	store, sched := newSchedulerFixture(t, "")

	past := time.Now().Add(-time.Hour)
	expired := store.AddPoll(domain.Poll{Question: "Done yet?", ExpiresAt: &past})
	open := store.AddPoll(domain.Poll{Question: "Open-ended?"})

	sched.sweepPolls()

	got, _ := store.PollByID(expired.ID)
	if got.IsActive {
		t.Error("expired poll should be closed by the sweep")
	}
	got, _ = store.PollByID(open.ID)
	if !got.IsActive {
		t.Error("open-ended poll must stay active")
	}
}

func TestWriteFeed(t *testing.T) {
	feedPath := filepath.Join(t.TempDir(), "family.ics")
	store, sched := newSchedulerFixture(t, feedPath)

	store.AddEvent(domain.Event{
		Title: "Soccer Practice",
		Start: time.Date(2024, 3, 5, 15, 0, 0, 0, time.UTC),
	})

	sched.writeFeed()

	data, err := os.ReadFile(feedPath)
	if err != nil {
		t.Fatalf("read feed: %v", err)
	}
	if !strings.Contains(string(data), "SUMMARY:Soccer Practice") {
		t.Errorf("feed missing event:\n%s", data)
	}
}
