package ratelimit

import (
	"strings"
	"time"
)

// EndpointConfig represents rate limiting configuration for a specific endpoint.
type EndpointConfig struct {
	Path   string        // Endpoint path pattern (supports prefix matching)
	Method string        // HTTP method (GET, POST, etc.)
	Limit  int           // Maximum requests per window
	Window time.Duration // Time window
	Burst  int           // Burst capacity (defaults to Limit if 0)
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	IdleTimeout     time.Duration
	Whitelist       map[string]bool
	Blacklist       map[string]bool
	EndpointConfigs []EndpointConfig
}

// DefaultConfig returns an enabled configuration with the default endpoint tiers
func DefaultConfig() *Config {
	return &Config{
		Enabled:         true,
		DefaultLimit:    120,
		DefaultWindow:   time.Minute,
		CleanupInterval: 5 * time.Minute,
		IdleTimeout:     time.Hour,
		Whitelist:       make(map[string]bool),
		Blacklist:       make(map[string]bool),
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

// DefaultEndpointConfigs returns the default endpoint-specific configurations.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		// Completion-backed operations
		{Path: "/insights/", Method: "GET", Limit: 30, Window: time.Minute, Burst: 5},
		{Path: "/insights/", Method: "POST", Limit: 30, Window: time.Minute, Burst: 5},
		{Path: "/dashboard/industry-pulse", Method: "GET", Limit: 10, Window: time.Minute, Burst: 2},
		{Path: "/resume/improve", Method: "POST", Limit: 20, Window: time.Minute, Burst: 5},

		// Catalog reads and scrapes fall through to the default limit; /health is unlimited
	}
}

// ParseIPList converts a list of addresses into a lookup set, ignoring blanks.
func ParseIPList(list []string) map[string]bool {
	result := make(map[string]bool, len(list))
	for _, ip := range list {
		for _, part := range strings.Split(ip, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				result[part] = true
			}
		}
	}
	return result
}
