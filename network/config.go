package network

import "time"

// Config holds online-status probe configuration
type Config struct {
	// Address is the TCP endpoint dialed to decide online/offline
	Address string

	// Interval between probes
	Interval time.Duration

	// Timeout for a single probe; a slow dial counts as offline
	Timeout time.Duration
}

// DefaultConfig returns conservative probe defaults
func DefaultConfig() *Config {
	return &Config{
		Address:  "1.1.1.1:443",
		Interval: 30 * time.Second,
		Timeout:  3 * time.Second,
	}
}
