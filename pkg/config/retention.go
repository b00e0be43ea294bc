package config

import "time"

// RetentionConfig controls the background retention loop: expired token
// registry rows are swept and old terminal runs are pruned.
type RetentionConfig struct {
	// CleanupInterval is how often the retention loop runs.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`

	// RunRetentionDays is how long terminal runs are kept before pruning.
	// Zero disables run pruning.
	RunRetentionDays int `yaml:"run_retention_days"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		CleanupInterval:  1 * time.Hour,
		RunRetentionDays: 90,
	}
}
