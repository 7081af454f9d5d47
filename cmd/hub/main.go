package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tazhate/familyhub/config"
	"github.com/tazhate/familyhub/internal/scheduler"
	"github.com/tazhate/familyhub/internal/service"
	"github.com/tazhate/familyhub/internal/storage"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	store := storage.New()
	if cfg.SeedDemo {
		storage.SeedDemo(store)
		log.Printf("Seeded demo family (%d profiles)", len(store.Profiles()))
	}

	calOpts := []service.CalendarOption{
		service.WithWeekStart(cfg.WeekStart),
		service.WithHourRange(cfg.DayStartHour, cfg.DayEndHour),
		service.WithTimezone(cfg.Timezone),
	}
	if cfg.ExpandRecurring {
		calOpts = append(calOpts, service.WithRecurrence())
	}
	calSvc := service.NewCalendarService(store, calOpts...)
	pollSvc := service.NewPollService(store)
	taskSvc := service.NewTaskService(store)

	sched := scheduler.New(cfg, store, pollSvc)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		if err := sched.Start(ctx); err != nil {
			log.Printf("Scheduler error: %v", err)
		}
	}()

	logOverview(store, calSvc, taskSvc)

	log.Println("FamilyHub started")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("Shutting down...")
	cancel()
	sched.Stop()
}

// logOverview prints a snapshot of today's state on startup
func logOverview(store *storage.Storage, calSvc *service.CalendarService, taskSvc *service.TaskService) {
	today := time.Now()
	slots := calSvc.DayGrid(today)
	events := 0
	for _, slot := range slots {
		events += len(slot.Events)
	}
	log.Printf("Today: %d scheduled event(s)", events)

	for _, sum := range taskSvc.Summaries() {
		log.Printf("%s %s: %d done / %d pending, %d pts",
			sum.Profile.Avatar, sum.Profile.Name, sum.Completed, sum.Pending, sum.Points)
	}
}
