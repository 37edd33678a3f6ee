package config

import (
	"testing"
	"time"

	"github.com/riskibarqy/football-chatbot/internal/platform/logging"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.RateLimit.MinInterval != 2*time.Second || cfg.RateLimit.DailyLimit != 100 {
		t.Fatalf("unexpected rate limit defaults: %+v", cfg.RateLimit)
	}
	if cfg.RateLimit.Backoff != 5*time.Second || cfg.RateLimit.DegradedAfter != 3 {
		t.Fatalf("unexpected backoff defaults: %+v", cfg.RateLimit)
	}
	if !cfg.CircuitBreaker.Enabled || cfg.CircuitBreaker.FailureThreshold != 5 {
		t.Fatalf("unexpected circuit breaker defaults: %+v", cfg.CircuitBreaker)
	}
	if cfg.Season != 2024 || cfg.DefaultLeagueID != 94 {
		t.Fatalf("unexpected football defaults: season=%d league=%d", cfg.Season, cfg.DefaultLeagueID)
	}
	if cfg.Location == nil || cfg.Location.String() != "Europe/Lisbon" {
		t.Fatalf("unexpected location: %v", cfg.Location)
	}
	if cfg.CacheBackend != CacheBackendMemory || cfg.CacheTTL != 6*time.Hour || cfg.CacheLiveTTL != time.Minute {
		t.Fatalf("unexpected cache defaults: backend=%s ttl=%s live=%s", cfg.CacheBackend, cfg.CacheTTL, cfg.CacheLiveTTL)
	}
	if cfg.WriteTimeout != time.Minute {
		t.Fatalf("unexpected write timeout: %s", cfg.WriteTimeout)
	}
	if cfg.Chat.StandingsLimit != 10 || cfg.Chat.ZoneContinentalA != 4 || cfg.Chat.ZoneRelegation != 2 {
		t.Fatalf("unexpected chat defaults: %+v", cfg.Chat)
	}
	if cfg.LogLevel != logging.LevelInfo {
		t.Fatalf("unexpected log level: %v", cfg.LogLevel)
	}
	if !cfg.MetricsEnabled {
		t.Fatalf("expected metrics enabled by default")
	}
}

func TestLoad_ProdRequiresAPIKey(t *testing.T) {
	t.Setenv("APP_ENV", EnvProd)
	t.Setenv("FOOTBALL_API_KEY", "")
	t.Setenv("RAPIDAPI_KEY", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when FOOTBALL_API_KEY is missing in prod")
	}
}

func TestLoad_APIKeyFallsBackToRapidAPIKey(t *testing.T) {
	t.Setenv("APP_ENV", EnvProd)
	t.Setenv("FOOTBALL_API_KEY", "")
	t.Setenv("RAPIDAPI_KEY", " legacy-key ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.FootballAPIKey != "legacy-key" {
		t.Fatalf("unexpected api key: %q", cfg.FootballAPIKey)
	}
}

func TestLoad_UpstreamParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("FOOTBALL_API_MIN_INTERVAL", "0s")
	t.Setenv("FOOTBALL_API_DAILY_LIMIT", "7500")
	t.Setenv("FOOTBALL_API_RATE_LIMIT_BACKOFF", "30s")
	t.Setenv("FOOTBALL_API_DEGRADED_AFTER", "5")
	t.Setenv("FOOTBALL_API_CIRCUIT_ENABLED", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.RateLimit.MinInterval != 0 || cfg.RateLimit.DailyLimit != 7500 {
		t.Fatalf("unexpected rate limit: %+v", cfg.RateLimit)
	}
	if cfg.RateLimit.Backoff != 30*time.Second || cfg.RateLimit.DegradedAfter != 5 {
		t.Fatalf("unexpected backoff: %+v", cfg.RateLimit)
	}
	if cfg.CircuitBreaker.Enabled {
		t.Fatalf("expected circuit breaker disabled")
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	cases := map[string]string{
		"FOOTBALL_API_DAILY_LIMIT":        "0",
		"FOOTBALL_API_MIN_INTERVAL":       "-1s",
		"FOOTBALL_API_RATE_LIMIT_BACKOFF": "soon",
		"FOOTBALL_SEASON":                 "1999",
		"FOOTBALL_TIMEZONE":               "Mars/Olympus",
		"CACHE_TTL":                       "0s",
		"CACHE_LIVE_TTL":                  "48h",
		"CACHE_BACKEND":                   "memcached",
		"CHAT_DECIMAL_PLACES":             "3",
		"CHAT_ZONE_CONTINENTAL_B":         "2",
		"METRICS_ENABLED":                 "maybe",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv("APP_ENV", EnvDev)
			t.Setenv(key, value)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%s", key, value)
			}
		})
	}
}

func TestLoad_CacheBackends(t *testing.T) {
	t.Run("postgres requires url", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvDev)
		t.Setenv("CACHE_BACKEND", CacheBackendPostgres)
		t.Setenv("CACHE_DB_URL", "")
		t.Setenv("DB_URL", "")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error without CACHE_DB_URL")
		}
	})

	t.Run("postgres falls back to DB_URL", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvDev)
		t.Setenv("CACHE_BACKEND", "Postgres")
		t.Setenv("CACHE_DB_URL", "")
		t.Setenv("DB_URL", "postgres://localhost:5432/football_chatbot")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.CacheBackend != CacheBackendPostgres || cfg.CacheDBURL != "postgres://localhost:5432/football_chatbot" {
			t.Fatalf("unexpected cache config: backend=%s url=%s", cfg.CacheBackend, cfg.CacheDBURL)
		}
	})

	t.Run("sqlite default path", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvDev)
		t.Setenv("CACHE_BACKEND", CacheBackendSQLite)
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.CacheSQLitePath != "football-chatbot-cache.db" {
			t.Fatalf("unexpected sqlite path: %q", cfg.CacheSQLitePath)
		}
	})

	t.Run("redis requires url", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvDev)
		t.Setenv("CACHE_BACKEND", CacheBackendRedis)
		t.Setenv("CACHE_REDIS_URL", "")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error without CACHE_REDIS_URL")
		}
	})
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_UptraceDSNFromOTLPHeaders(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", `foo=bar, uptrace-dsn="https://token@api.uptrace.dev?grpc=4317"`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev?grpc=4317" {
		t.Fatalf("unexpected uptrace dsn: %q", cfg.UptraceDSN)
	}
}

func TestLoad_PprofDefaultsAddrWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("PPROF_ENABLED", "true")
	t.Setenv("PPROF_ADDR", "  ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PprofAddr != ":6060" {
		t.Fatalf("expected default pprof addr :6060, got %q", cfg.PprofAddr)
	}
}

func TestLoad_PyroscopeRequiresServerAddressWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when PYROSCOPE_ENABLED=true without PYROSCOPE_SERVER_ADDRESS")
	}
}

func TestLoad_PyroscopeAppNameDefaultsToServiceName(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("APP_SERVICE_NAME", "football-chatbot-api-test")
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "http://localhost:4040")
	t.Setenv("PYROSCOPE_APP_NAME", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PyroscopeAppName != "football-chatbot-api-test" {
		t.Fatalf("unexpected pyroscope app name: %q", cfg.PyroscopeAppName)
	}
}

func TestLoad_CORSOriginsDefaultAndParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	t.Run("default wildcard", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", "")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
			t.Fatalf("unexpected default CORS origins: %+v", cfg.CORSAllowedOrigins)
		}
	})

	t.Run("comma separated parsing", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example.com, http://localhost:5173 ")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.CORSAllowedOrigins) != 2 {
			t.Fatalf("unexpected CORS origins length: %d", len(cfg.CORSAllowedOrigins))
		}
		if cfg.CORSAllowedOrigins[0] != "https://a.example.com" {
			t.Fatalf("unexpected first CORS origin: %s", cfg.CORSAllowedOrigins[0])
		}
		if cfg.CORSAllowedOrigins[1] != "http://localhost:5173" {
			t.Fatalf("unexpected second CORS origin: %s", cfg.CORSAllowedOrigins[1])
		}
	})
}
