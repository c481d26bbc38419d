package config

import (
	"strings"
	"testing"
)

func TestValidationError_Error(t *testing.T) {
	err := ValidationError{
		Field:   "test.field",
		Value:   123,
		Message: "must be greater than zero",
	}

	expected := "test.field: must be greater than zero (got: 123)"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
}

func TestValidationErrors_Error(t *testing.T) {
	t.Run("empty errors", func(t *testing.T) {
		var errs ValidationErrors
		if errs.Error() != "" {
			t.Errorf("Error() for empty = %q, want empty string", errs.Error())
		}
	})

	t.Run("single error", func(t *testing.T) {
		errs := ValidationErrors{
			{Field: "test.field", Value: 123, Message: "is invalid"},
		}
		expected := "test.field: is invalid (got: 123)"
		if errs.Error() != expected {
			t.Errorf("Error() = %q, want %q", errs.Error(), expected)
		}
	})

	t.Run("multiple errors", func(t *testing.T) {
		errs := ValidationErrors{
			{Field: "field1", Value: "bad", Message: "is invalid"},
			{Field: "field2", Value: -1, Message: "must be positive"},
		}
		result := errs.Error()
		if !strings.Contains(result, "2 validation errors") {
			t.Errorf("Error() should mention 2 errors: %s", result)
		}
		if !strings.Contains(result, "field1") || !strings.Contains(result, "field2") {
			t.Errorf("Error() should mention both fields: %s", result)
		}
	})
}

func TestConfig_Validate_DefaultConfig(t *testing.T) {
	cfg := Default()
	errs := cfg.Validate()
	if len(errs) != 0 {
		t.Errorf("Default config should validate cleanly, got: %v", ValidationErrors(errs))
	}
}

func TestConfig_Validate_Notifications(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantField string
	}{
		{
			name:      "unknown channel",
			mutate:    func(c *Config) { c.Notifications.Channel = "pigeon" },
			wantField: "notifications.channel",
		},
		{
			name:      "poll too small",
			mutate:    func(c *Config) { c.Notifications.WatchPollMs = 1 },
			wantField: "notifications.watch_poll_ms",
		},
		{
			name:      "poll too large",
			mutate:    func(c *Config) { c.Notifications.WatchPollMs = 120000 },
			wantField: "notifications.watch_poll_ms",
		},
		{
			name:      "null byte in journal dir",
			mutate:    func(c *Config) { c.Notifications.JournalDir = "bad\x00dir" },
			wantField: "notifications.journal_dir",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			errs := cfg.Validate()
			if !hasFieldError(errs, tt.wantField) {
				t.Errorf("Validate() = %v, want error on %s", errs, tt.wantField)
			}
		})
	}
}

func TestConfig_Validate_Logging(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantField string
	}{
		{
			name:      "unknown level",
			mutate:    func(c *Config) { c.Logging.Level = "verbose" },
			wantField: "logging.level",
		},
		{
			name:      "zero max size",
			mutate:    func(c *Config) { c.Logging.MaxSizeMB = 0 },
			wantField: "logging.max_size_mb",
		},
		{
			name:      "max size too large",
			mutate:    func(c *Config) { c.Logging.MaxSizeMB = 5000 },
			wantField: "logging.max_size_mb",
		},
		{
			name:      "negative backups",
			mutate:    func(c *Config) { c.Logging.MaxBackups = -1 },
			wantField: "logging.max_backups",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			errs := cfg.Validate()
			if !hasFieldError(errs, tt.wantField) {
				t.Errorf("Validate() = %v, want error on %s", errs, tt.wantField)
			}
		})
	}
}

func TestConfig_Validate_ReportAndTUI(t *testing.T) {
	t.Run("empty date format", func(t *testing.T) {
		cfg := Default()
		cfg.Report.DateFormat = ""
		if !hasFieldError(cfg.Validate(), "report.date_format") {
			t.Error("Validate() should flag an empty date format")
		}
	})

	t.Run("table height too small", func(t *testing.T) {
		cfg := Default()
		cfg.TUI.TableHeight = 1
		if !hasFieldError(cfg.Validate(), "tui.table_height") {
			t.Error("Validate() should flag a table height below the minimum")
		}
	})

	t.Run("table height too large", func(t *testing.T) {
		cfg := Default()
		cfg.TUI.TableHeight = 500
		if !hasFieldError(cfg.Validate(), "tui.table_height") {
			t.Error("Validate() should flag a table height above the maximum")
		}
	})
}

func TestConfig_Validate_CollectsAllErrors(t *testing.T) {
	cfg := Default()
	cfg.Notifications.Channel = "pigeon"
	cfg.Logging.Level = "verbose"
	cfg.TUI.TableHeight = 0

	errs := cfg.Validate()
	if len(errs) < 3 {
		t.Errorf("Validate() returned %d errors, want at least 3: %v", len(errs), errs)
	}
}

func hasFieldError(errs []ValidationError, field string) bool {
	for _, e := range errs {
		if e.Field == field {
			return true
		}
	}
	return false
}
