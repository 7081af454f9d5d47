package scheduler

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/tazhate/familyhub/config"
	"github.com/tazhate/familyhub/internal/ics"
	"github.com/tazhate/familyhub/internal/service"
	"github.com/tazhate/familyhub/internal/storage"
)

// Scheduler runs the periodic housekeeping jobs: closing polls that have
// passed their expiry, and regenerating the ICS calendar feed file.
type Scheduler struct {
	cron        *cron.Cron
	cfg         *config.Config
	storage     *storage.Storage
	pollService *service.PollService
}

func New(cfg *config.Config, storage *storage.Storage, pollSvc *service.PollService) *Scheduler {
	c := cron.New(cron.WithLocation(cfg.Timezone))

	return &Scheduler{
		cron:        c,
		cfg:         cfg,
		storage:     storage,
		pollService: pollSvc,
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	// Expired-poll sweep every minute
	if _, err := s.cron.AddFunc("* * * * *", s.sweepPolls); err != nil {
		return fmt.Errorf("add poll sweep: %w", err)
	}

	if s.cfg.FeedPath != "" {
		if _, err := s.cron.AddFunc(s.cfg.FeedRefresh, s.writeFeed); err != nil {
			return fmt.Errorf("add feed refresh: %w", err)
		}
		// Write once at startup so the feed exists immediately
		s.writeFeed()
	}

	s.cron.Start()
	log.Printf("Scheduler started (TZ: %s, feed: %q)", s.cfg.Timezone, s.cfg.FeedPath)

	<-ctx.Done()
	return nil
}

func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("Scheduler stopped")
}

func (s *Scheduler) sweepPolls() {
	s.pollService.CloseExpired(time.Now().In(s.cfg.Timezone))
}

func (s *Scheduler) writeFeed() {
	f, err := os.Create(s.cfg.FeedPath)
	if err != nil {
		log.Printf("Error creating feed file: %v", err)
		return
	}
	defer f.Close()

	if err := ics.Encode(f, s.storage.Events()); err != nil {
		log.Printf("Error writing feed: %v", err)
	}
}
