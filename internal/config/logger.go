package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Log outputs that are not file paths.
const (
	LogOutputStdout = "stdout"
	LogOutputStderr = "stderr"
)

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"json", "console"}
)

// LoggerConfig holds logger configuration.
type LoggerConfig struct {
	Level  string
	Format string
	// Output is stdout, stderr or a file path whose directory must exist.
	Output string
}

// LoadLoggerConfigFromEnv loads logger configuration from environment variables.
// Level and format are case-insensitive.
func LoadLoggerConfigFromEnv() LoggerConfig {
	return LoggerConfig{
		Level:  strings.ToLower(GetEnv("LOG_LEVEL", "info")),
		Format: strings.ToLower(GetEnv("LOG_FORMAT", "json")),
		Output: GetEnv("LOG_OUTPUT", LogOutputStdout),
	}
}

// Validate validates logger configuration.
func (c LoggerConfig) Validate() error {
	if !slices.Contains(logLevels, c.Level) {
		return fmt.Errorf("invalid LOG_LEVEL: %s (must be: %s)", c.Level, strings.Join(logLevels, ", "))
	}
	if !slices.Contains(logFormats, c.Format) {
		return fmt.Errorf("invalid LOG_FORMAT: %s (must be: %s)", c.Format, strings.Join(logFormats, ", "))
	}
	return c.validateOutput()
}

func (c LoggerConfig) validateOutput() error {
	if !c.IsFileOutput() {
		return nil
	}
	dir := filepath.Dir(c.Output)
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("invalid LOG_OUTPUT: %s: %w", c.Output, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("invalid LOG_OUTPUT: %s: %s is not a directory", c.Output, dir)
	}
	return nil
}

// IsFileOutput reports whether logs go to a file rather than a standard stream.
func (c LoggerConfig) IsFileOutput() bool {
	return c.Output != "" && c.Output != LogOutputStdout && c.Output != LogOutputStderr
}

// IsProduction returns true if logger is configured for production.
func (c LoggerConfig) IsProduction() bool {
	return c.Format == "json" && c.Level != "debug"
}
