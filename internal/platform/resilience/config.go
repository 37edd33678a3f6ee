package resilience

import "time"

type CircuitBreakerConfig struct {
	Enabled          bool
	FailureThreshold int
	OpenTimeout      time.Duration
	HalfOpenMaxReq   int
}

func DefaultCircuitBreakerConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: 5,
		OpenTimeout:      15 * time.Second,
		HalfOpenMaxReq:   2,
	}
}

func NormalizeCircuitBreakerConfig(cfg CircuitBreakerConfig) CircuitBreakerConfig {
	defaults := DefaultCircuitBreakerConfig()
	if cfg.FailureThreshold < 1 {
		cfg.FailureThreshold = defaults.FailureThreshold
	}
	if cfg.OpenTimeout <= 0 {
		cfg.OpenTimeout = defaults.OpenTimeout
	}
	if cfg.HalfOpenMaxReq < 1 {
		cfg.HalfOpenMaxReq = defaults.HalfOpenMaxReq
	}
	return cfg
}

// RateLimitConfig bounds how hard the upstream API is hit.
type RateLimitConfig struct {
	MinInterval   time.Duration
	DailyLimit    int
	Backoff       time.Duration
	DegradedAfter int
}

func DefaultRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		MinInterval:   2 * time.Second,
		DailyLimit:    100,
		Backoff:       5 * time.Second,
		DegradedAfter: 3,
	}
}

func NormalizeRateLimitConfig(cfg RateLimitConfig) RateLimitConfig {
	defaults := DefaultRateLimitConfig()
	if cfg.MinInterval < 0 {
		cfg.MinInterval = defaults.MinInterval
	}
	if cfg.DailyLimit < 1 {
		cfg.DailyLimit = defaults.DailyLimit
	}
	if cfg.Backoff <= 0 {
		cfg.Backoff = defaults.Backoff
	}
	if cfg.DegradedAfter < 1 {
		cfg.DegradedAfter = defaults.DegradedAfter
	}
	return cfg
}
