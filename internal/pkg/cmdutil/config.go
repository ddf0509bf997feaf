// Package cmdutil provides shared utilities for CLI command implementations.
package cmdutil

import (
	"time"

	"github.com/spf13/viper"
)

// GetStringConfig returns the config value for key, or fallback if the key
// is not set.
func GetStringConfig(key, fallback string) string {
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	return fallback
}

// GetDurationConfig returns the config value for key, or fallback if the
// key is not set or not a positive duration.
func GetDurationConfig(key string, fallback time.Duration) time.Duration {
	if viper.IsSet(key) {
		if d := viper.GetDuration(key); d > 0 {
			return d
		}
	}
	return fallback
}
