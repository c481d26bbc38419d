package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete jalon configuration
type Config struct {
	Notifications NotificationConfig `mapstructure:"notifications"`
	Logging       LoggingConfig      `mapstructure:"logging"`
	Report        ReportConfig       `mapstructure:"report"`
	TUI           TUIConfig          `mapstructure:"tui"`
}

// NotificationConfig controls how team broadcasts are delivered
type NotificationConfig struct {
	// Channel is the delivery method used for broadcasts
	// Options: "email", "sms", "push"
	Channel string `mapstructure:"channel"`
	// JournalDir is the directory where the delivery journal is written.
	// If empty, defaults to the user's config directory.
	// Supports ~ for home directory expansion.
	JournalDir string `mapstructure:"journal_dir"`
	// WatchPollMs is how often journal watchers poll for new records (in milliseconds)
	WatchPollMs int `mapstructure:"watch_poll_ms"`
}

// LoggingConfig controls debug logging behavior
type LoggingConfig struct {
	// Enabled controls whether logging is enabled (default: true)
	Enabled bool `mapstructure:"enabled"`
	// Level is the log level: "debug", "info", "warn", "error" (default: "info")
	Level string `mapstructure:"level"`
	// Dir is the directory log files are written to. Empty means stderr.
	Dir string `mapstructure:"dir"`
	// MaxSizeMB is the maximum log file size in megabytes before rotation (default: 10)
	MaxSizeMB int `mapstructure:"max_size_mb"`
	// MaxBackups is the number of backup log files to keep (default: 3)
	MaxBackups int `mapstructure:"max_backups"`
	// Compress gzips rotated backups (default: false)
	Compress bool `mapstructure:"compress"`
}

// ReportConfig controls activity report rendering
type ReportConfig struct {
	// Color enables styled terminal output for reports (default: true)
	Color bool `mapstructure:"color"`
	// DateFormat is the Go reference layout used for dates in reports
	DateFormat string `mapstructure:"date_format"`
}

// TUIConfig controls the terminal UI behavior
type TUIConfig struct {
	// TableHeight is the number of task rows shown at once (default: 12)
	TableHeight int `mapstructure:"table_height"`
	// Theme is the color theme for the TUI (default: "default")
	Theme string `mapstructure:"theme"`
}

// WatchPoll returns the journal watch poll interval as a time.Duration
func (n *NotificationConfig) WatchPoll() time.Duration {
	return time.Duration(n.WatchPollMs) * time.Millisecond
}

// ResolveJournalDir returns the resolved journal directory path.
// If JournalDir is empty, it returns the user's config directory.
// If JournalDir starts with ~, it expands to the user's home directory.
func (n *NotificationConfig) ResolveJournalDir() string {
	if n.JournalDir == "" {
		return ConfigDir()
	}

	path := n.JournalDir
	if path == "~" {
		if home, err := os.UserHomeDir(); err == nil {
			return home
		}
	}
	if len(path) > 1 && path[:2] == "~/" {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	}
	return path
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		Notifications: NotificationConfig{
			Channel:     "email",
			JournalDir:  "", // Empty means use the config directory
			WatchPollMs: 500,
		},
		Logging: LoggingConfig{
			Enabled:    true,
			Level:      "info",
			Dir:        "", // Empty means stderr
			MaxSizeMB:  10,
			MaxBackups: 3,
			Compress:   false,
		},
		Report: ReportConfig{
			Color:      true,
			DateFormat: "2006-01-02",
		},
		TUI: TUIConfig{
			TableHeight: 12,
			Theme:       "default",
		},
	}
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	// Notification defaults
	viper.SetDefault("notifications.channel", defaults.Notifications.Channel)
	viper.SetDefault("notifications.journal_dir", defaults.Notifications.JournalDir)
	viper.SetDefault("notifications.watch_poll_ms", defaults.Notifications.WatchPollMs)

	// Logging defaults
	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.dir", defaults.Logging.Dir)
	viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	viper.SetDefault("logging.compress", defaults.Logging.Compress)

	// Report defaults
	viper.SetDefault("report.color", defaults.Report.Color)
	viper.SetDefault("report.date_format", defaults.Report.DateFormat)

	// TUI defaults
	viper.SetDefault("tui.table_height", defaults.TUI.TableHeight)
	viper.SetDefault("tui.theme", defaults.TUI.Theme)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Get returns the current configuration (convenience function)
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		// Fall back to defaults if unmarshaling fails
		return Default()
	}
	return cfg
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	// Check XDG_CONFIG_HOME first
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "jalon")
	}
	// Fall back to ~/.config/jalon
	home, err := os.UserHomeDir()
	if err != nil {
		return ".jalon"
	}
	return filepath.Join(home, ".config", "jalon")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// ValidChannels returns the list of valid notification channel values
func ValidChannels() []string {
	return []string{"email", "sms", "push"}
}

// IsValidChannel checks if the given channel is valid
func IsValidChannel(channel string) bool {
	for _, valid := range ValidChannels() {
		if channel == valid {
			return true
		}
	}
	return false
}
