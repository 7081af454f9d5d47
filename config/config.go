package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Timezone        *time.Location
	WeekStart       time.Weekday
	DayStartHour    int
	DayEndHour      int
	ExpandRecurring bool
	FeedPath        string // ICS feed file; empty disables the feed job
	FeedRefresh     string // cron spec for feed regeneration
	SeedDemo        bool
}

func Load() (*Config, error) {
	tzName := os.Getenv("TIMEZONE")
	if tzName == "" {
		tzName = "UTC"
	}
	tz, err := time.LoadLocation(tzName)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE: %w", err)
	}

	weekStart := time.Sunday
	switch strings.ToLower(os.Getenv("WEEK_START")) {
	case "", "sunday":
	case "monday":
		weekStart = time.Monday
	default:
		return nil, fmt.Errorf("invalid WEEK_START: %q (want sunday or monday)", os.Getenv("WEEK_START"))
	}

	startHour, err := hourEnv("DAY_START_HOUR", 7)
	if err != nil {
		return nil, err
	}
	endHour, err := hourEnv("DAY_END_HOUR", 21)
	if err != nil {
		return nil, err
	}
	if endHour < startHour {
		return nil, fmt.Errorf("DAY_END_HOUR must not be before DAY_START_HOUR")
	}

	feedRefresh := os.Getenv("FEED_REFRESH")
	if feedRefresh == "" {
		feedRefresh = "*/5 * * * *"
	}

	return &Config{
		Timezone:        tz,
		WeekStart:       weekStart,
		DayStartHour:    startHour,
		DayEndHour:      endHour,
		ExpandRecurring: os.Getenv("EXPAND_RECURRING") == "1",
		FeedPath:        os.Getenv("FEED_PATH"),
		FeedRefresh:     feedRefresh,
		SeedDemo:        os.Getenv("SEED_DEMO") != "0",
	}, nil
}

func hourEnv(name string, def int) (int, error) {
	v := os.Getenv(name)
	if v == "" {
		return def, nil
	}
	h, err := strconv.Atoi(v)
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("%s must be an hour between 0 and 23", name)
	}
	return h, nil
}
