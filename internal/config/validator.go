package config

import (
	"fmt"
	"slices"
	"strings"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "notifications.channel")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateNotifications()...)
	errors = append(errors, c.validateLogging()...)
	errors = append(errors, c.validateReport()...)
	errors = append(errors, c.validateTUI()...)

	return errors
}

// validateNotifications validates the NotificationConfig
func (c *Config) validateNotifications() []ValidationError {
	var errors []ValidationError

	if c.Notifications.Channel != "" && !IsValidChannel(c.Notifications.Channel) {
		errors = append(errors, ValidationError{
			Field:   "notifications.channel",
			Value:   c.Notifications.Channel,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidChannels(), ", ")),
		})
	}

	// Poll interval validation
	const minWatchPoll = 10    // 10ms minimum
	const maxWatchPoll = 60000 // 1 minute maximum

	if c.Notifications.WatchPollMs < minWatchPoll {
		errors = append(errors, ValidationError{
			Field:   "notifications.watch_poll_ms",
			Value:   c.Notifications.WatchPollMs,
			Message: fmt.Sprintf("must be at least %dms", minWatchPoll),
		})
	}
	if c.Notifications.WatchPollMs > maxWatchPoll {
		errors = append(errors, ValidationError{
			Field:   "notifications.watch_poll_ms",
			Value:   c.Notifications.WatchPollMs,
			Message: fmt.Sprintf("exceeds maximum of %dms", maxWatchPoll),
		})
	}

	if strings.ContainsRune(c.Notifications.JournalDir, '\x00') {
		errors = append(errors, ValidationError{
			Field:   "notifications.journal_dir",
			Value:   c.Notifications.JournalDir,
			Message: "path contains invalid null character",
		})
	}

	return errors
}

// validateLogging validates the LoggingConfig
func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	// Validate log level
	if c.Logging.Level != "" && !slices.Contains(ValidLogLevels(), c.Logging.Level) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	// Max size must be positive
	if c.Logging.MaxSizeMB <= 0 {
		errors = append(errors, ValidationError{
			Field:   "logging.max_size_mb",
			Value:   c.Logging.MaxSizeMB,
			Message: "must be positive",
		})
	}

	// Reasonable upper bound for log file size
	const maxLogSizeMB = 1000 // 1GB
	if c.Logging.MaxSizeMB > maxLogSizeMB {
		errors = append(errors, ValidationError{
			Field:   "logging.max_size_mb",
			Value:   c.Logging.MaxSizeMB,
			Message: fmt.Sprintf("exceeds maximum of %dMB", maxLogSizeMB),
		})
	}

	// Max backups must be non-negative
	if c.Logging.MaxBackups < 0 {
		errors = append(errors, ValidationError{
			Field:   "logging.max_backups",
			Value:   c.Logging.MaxBackups,
			Message: "must be non-negative",
		})
	}

	return errors
}

// validateReport validates the ReportConfig
func (c *Config) validateReport() []ValidationError {
	var errors []ValidationError

	if c.Report.DateFormat == "" {
		errors = append(errors, ValidationError{
			Field:   "report.date_format",
			Value:   c.Report.DateFormat,
			Message: "cannot be empty",
		})
	}

	return errors
}

// validateTUI validates the TUIConfig
func (c *Config) validateTUI() []ValidationError {
	var errors []ValidationError

	const minTableHeight = 3
	const maxTableHeight = 100

	if c.TUI.TableHeight < minTableHeight {
		errors = append(errors, ValidationError{
			Field:   "tui.table_height",
			Value:   c.TUI.TableHeight,
			Message: fmt.Sprintf("must be at least %d rows", minTableHeight),
		})
	}
	if c.TUI.TableHeight > maxTableHeight {
		errors = append(errors, ValidationError{
			Field:   "tui.table_height",
			Value:   c.TUI.TableHeight,
			Message: fmt.Sprintf("exceeds maximum of %d rows", maxTableHeight),
		})
	}

	return errors
}
