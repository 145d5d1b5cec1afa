package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultOpenTime      = "09:00"
	defaultCloseTime     = "21:00"
	defaultBufferMinutes = "15"
	defaultTaxRate       = "0.11"
	defaultDepositPct    = "30"
)

// Config carries the studio operating policy: working hours, the turnover
// buffer applied after every session, the tax rate snapshotted onto new
// bookings, the required deposit percentage, and the workflow automation
// mapping (booking status -> task titles to append).
type Config struct {
	OpenTime           string
	CloseTime          string
	BufferMinutes      int
	TaxRate            float64
	RequiredDepositPct float64
	Workflow           map[string][]string
}

func Load() (*Config, error) {
	cfg := &Config{
		OpenTime:  strings.TrimSpace(getEnv("STUDIO_OPEN_TIME", defaultOpenTime)),
		CloseTime: strings.TrimSpace(getEnv("STUDIO_CLOSE_TIME", defaultCloseTime)),
		Workflow:  map[string][]string{},
	}

	if _, err := parseClock(cfg.OpenTime); err != nil {
		return nil, fmt.Errorf("STUDIO_OPEN_TIME: %w", err)
	}
	if _, err := parseClock(cfg.CloseTime); err != nil {
		return nil, fmt.Errorf("STUDIO_CLOSE_TIME: %w", err)
	}

	var err error
	cfg.BufferMinutes, err = parseIntEnv("BUFFER_MINUTES", defaultBufferMinutes)
	if err != nil {
		return nil, err
	}
	cfg.TaxRate, err = parseFloatEnv("TAX_RATE", defaultTaxRate)
	if err != nil {
		return nil, err
	}
	cfg.RequiredDepositPct, err = parseFloatEnv("REQUIRED_DEPOSIT_PCT", defaultDepositPct)
	if err != nil {
		return nil, err
	}

	if raw := os.Getenv("WORKFLOW_AUTOMATION"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &cfg.Workflow); err != nil {
			return nil, fmt.Errorf("WORKFLOW_AUTOMATION is not valid JSON: %w", err)
		}
	}

	return cfg, nil
}

// OpenMinute returns the opening time as minutes since midnight.
func (c *Config) OpenMinute() int {
	m, _ := parseClock(c.OpenTime)
	return m
}

func (c *Config) CloseMinute() int {
	m, _ := parseClock(c.CloseTime)
	return m
}

// TasksFor returns the workflow-automation task titles for a status, or nil.
func (c *Config) TasksFor(status string) []string {
	if c.Workflow == nil {
		return nil
	}
	return c.Workflow[status]
}

func parseClock(v string) (int, error) {
	t, err := time.Parse("15:04", v)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

func getEnv(name, def string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return def
}

func parseIntEnv(name, def string) (int, error) {
	v, err := strconv.Atoi(getEnv(name, def))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	return v, nil
}

func parseFloatEnv(name, def string) (float64, error) {
	v, err := strconv.ParseFloat(getEnv(name, def), 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	return v, nil
}
