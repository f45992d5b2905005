package config

import (
	"fmt"
	"time"

	// Embedded zone database so REPORT_TIMEZONE resolves on hosts without tzdata.
	_ "time/tzdata"
)

// ReportingConfig holds configuration for sales reports.
type ReportingConfig struct {
	// Timezone is the IANA zone whose calendar decides day, week and month boundaries.
	// "Local" selects the server's local zone.
	Timezone string
}

// LoadReportingConfigFromEnv loads reporting configuration from environment variables.
func LoadReportingConfigFromEnv() ReportingConfig {
	return ReportingConfig{
		Timezone: GetEnv("REPORT_TIMEZONE", "Local"),
	}
}

// Location resolves the configured timezone.
func (c ReportingConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid REPORT_TIMEZONE: %s: %w", c.Timezone, err)
	}
	return loc, nil
}

// Validate validates reporting configuration.
func (c ReportingConfig) Validate() error {
	if c.Timezone == "" {
		return fmt.Errorf("REPORT_TIMEZONE must not be empty")
	}
	_, err := c.Location()
	return err
}
