package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/riskibarqy/football-chatbot/internal/platform/logging"
	"github.com/riskibarqy/football-chatbot/internal/platform/resilience"
)

const (
	CacheBackendMemory   = "memory"
	CacheBackendPostgres = "postgres"
	CacheBackendSQLite   = "sqlite"
	CacheBackendRedis    = "redis"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv             string
	ServiceName        string
	ServiceVersion     string
	HTTPAddr           string
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	ShutdownTimeout    time.Duration
	CORSAllowedOrigins []string
	LogLevel           logging.Level

	FootballAPIBaseURL string
	FootballAPIKey     string
	FootballAPIHost    string
	FootballAPITimeout time.Duration
	RateLimit          resilience.RateLimitConfig
	CircuitBreaker     resilience.CircuitBreakerConfig

	Season          int
	DefaultLeagueID int
	Timezone        string
	Location        *time.Location

	CacheTTL         time.Duration
	CacheLiveTTL     time.Duration
	CacheBackend     string
	CacheDBURL       string
	CacheSQLitePath  string
	CacheRedisURL    string
	CacheRedisPrefix string
	CacheAdminToken  string
	CacheWarmOnStart bool

	Chat ChatConfig

	MetricsEnabled             bool
	UptraceEnabled             bool
	UptraceDSN                 string
	PyroscopeEnabled           bool
	PyroscopeServerAddress     string
	PyroscopeAppName           string
	PyroscopeAuthToken         string
	PyroscopeBasicAuthUser     string
	PyroscopeBasicAuthPassword string
	PyroscopeUploadRate        time.Duration
	PprofEnabled               bool
	PprofAddr                  string
}

// ChatConfig holds the reply limits and standings zones used by the composer.
type ChatConfig struct {
	StandingsLimit    int
	ScorersLimit      int
	LiveLimit         int
	RecentMatches     int
	NextMatches       int
	HeadToHeadMatches int
	DecimalPlaces     int
	ZoneContinentalA  int
	ZoneContinentalB  int
	ZoneRelegation    int
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		AppEnv:             appEnv,
		ServiceName:        getEnv("APP_SERVICE_NAME", "football-chatbot-api"),
		ServiceVersion:     getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:           getEnv("APP_HTTP_ADDR", ":8080"),
		CORSAllowedOrigins: splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		LogLevel:           logging.ParseLevel(getEnv("APP_LOG_LEVEL", "info")),
		FootballAPIBaseURL: strings.TrimSpace(getEnv("FOOTBALL_API_BASE_URL", "https://v3.football.api-sports.io")),
		FootballAPIKey:     strings.TrimSpace(getEnv("FOOTBALL_API_KEY", getEnv("RAPIDAPI_KEY", ""))),
		FootballAPIHost:    strings.TrimSpace(getEnv("FOOTBALL_API_HOST", "v3.football.api-sports.io")),
		Timezone:           strings.TrimSpace(getEnv("FOOTBALL_TIMEZONE", "Europe/Lisbon")),
		CacheRedisURL:      strings.TrimSpace(getEnv("CACHE_REDIS_URL", "")),
		CacheRedisPrefix:   strings.TrimSpace(getEnv("CACHE_REDIS_PREFIX", "")),
		CacheAdminToken:    strings.TrimSpace(getEnv("CACHE_ADMIN_TOKEN", "")),
		PprofAddr:          strings.TrimSpace(getEnv("PPROF_ADDR", ":6060")),
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}
	if appEnv == EnvProd && cfg.FootballAPIKey == "" {
		return Config{}, fmt.Errorf("FOOTBALL_API_KEY is required when APP_ENV=%s", EnvProd)
	}

	if cfg.ReadTimeout, err = getEnvAsPositiveDuration("APP_READ_TIMEOUT", 10*time.Second); err != nil {
		return Config{}, err
	}
	// Writes must outlast the throttle spacing plus one rate-limit backoff.
	if cfg.WriteTimeout, err = getEnvAsPositiveDuration("APP_WRITE_TIMEOUT", 60*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.ShutdownTimeout, err = getEnvAsPositiveDuration("APP_SHUTDOWN_TIMEOUT", 10*time.Second); err != nil {
		return Config{}, err
	}

	if err := loadUpstream(&cfg); err != nil {
		return Config{}, err
	}
	if err := loadFootball(&cfg); err != nil {
		return Config{}, err
	}
	if err := loadCache(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.Chat, err = loadChat(); err != nil {
		return Config{}, err
	}
	if err := loadObservability(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func loadUpstream(cfg *Config) error {
	var err error
	if cfg.FootballAPITimeout, err = getEnvAsPositiveDuration("FOOTBALL_API_TIMEOUT", 10*time.Second); err != nil {
		return err
	}

	rate := resilience.DefaultRateLimitConfig()
	minInterval, err := getEnvAsDuration("FOOTBALL_API_MIN_INTERVAL", rate.MinInterval)
	if err != nil {
		return err
	}
	if minInterval < 0 {
		return fmt.Errorf("FOOTBALL_API_MIN_INTERVAL must be >= 0")
	}
	rate.MinInterval = minInterval
	if rate.DailyLimit, err = getEnvAsMinInt("FOOTBALL_API_DAILY_LIMIT", rate.DailyLimit, 1); err != nil {
		return err
	}
	if rate.Backoff, err = getEnvAsPositiveDuration("FOOTBALL_API_RATE_LIMIT_BACKOFF", rate.Backoff); err != nil {
		return err
	}
	if rate.DegradedAfter, err = getEnvAsMinInt("FOOTBALL_API_DEGRADED_AFTER", rate.DegradedAfter, 1); err != nil {
		return err
	}
	cfg.RateLimit = rate

	breaker := resilience.DefaultCircuitBreakerConfig()
	if breaker.Enabled, err = getEnvAsBool("FOOTBALL_API_CIRCUIT_ENABLED", breaker.Enabled); err != nil {
		return err
	}
	if breaker.FailureThreshold, err = getEnvAsMinInt("FOOTBALL_API_CIRCUIT_FAILURE_THRESHOLD", breaker.FailureThreshold, 1); err != nil {
		return err
	}
	if breaker.OpenTimeout, err = getEnvAsPositiveDuration("FOOTBALL_API_CIRCUIT_OPEN_TIMEOUT", breaker.OpenTimeout); err != nil {
		return err
	}
	if breaker.HalfOpenMaxReq, err = getEnvAsMinInt("FOOTBALL_API_CIRCUIT_HALF_OPEN_MAX_REQ", breaker.HalfOpenMaxReq, 1); err != nil {
		return err
	}
	cfg.CircuitBreaker = breaker
	return nil
}

func loadFootball(cfg *Config) error {
	var err error
	if cfg.Season, err = getEnvAsMinInt("FOOTBALL_SEASON", 2024, 2010); err != nil {
		return err
	}
	if cfg.DefaultLeagueID, err = getEnvAsMinInt("FOOTBALL_DEFAULT_LEAGUE_ID", 94, 1); err != nil {
		return err
	}
	if cfg.Location, err = time.LoadLocation(cfg.Timezone); err != nil {
		return fmt.Errorf("parse FOOTBALL_TIMEZONE: %w", err)
	}
	return nil
}

func loadCache(cfg *Config) error {
	var err error
	if cfg.CacheTTL, err = getEnvAsPositiveDuration("CACHE_TTL", 6*time.Hour); err != nil {
		return err
	}
	if cfg.CacheLiveTTL, err = getEnvAsPositiveDuration("CACHE_LIVE_TTL", 60*time.Second); err != nil {
		return err
	}
	if cfg.CacheLiveTTL > cfg.CacheTTL {
		return fmt.Errorf("CACHE_LIVE_TTL must be <= CACHE_TTL")
	}
	if cfg.CacheWarmOnStart, err = getEnvAsBool("CACHE_WARM_ON_START", false); err != nil {
		return err
	}

	cfg.CacheBackend = strings.ToLower(strings.TrimSpace(getEnv("CACHE_BACKEND", CacheBackendMemory)))
	switch cfg.CacheBackend {
	case CacheBackendMemory:
	case CacheBackendPostgres:
		cfg.CacheDBURL = strings.TrimSpace(getEnv("CACHE_DB_URL", getEnv("DB_URL", "")))
		if cfg.CacheDBURL == "" {
			return fmt.Errorf("CACHE_DB_URL is required when CACHE_BACKEND=%s", CacheBackendPostgres)
		}
	case CacheBackendSQLite:
		cfg.CacheSQLitePath = strings.TrimSpace(getEnv("CACHE_SQLITE_PATH", "football-chatbot-cache.db"))
	case CacheBackendRedis:
		if cfg.CacheRedisURL == "" {
			return fmt.Errorf("CACHE_REDIS_URL is required when CACHE_BACKEND=%s", CacheBackendRedis)
		}
	default:
		return fmt.Errorf(
			"invalid CACHE_BACKEND %q: valid values are %s, %s, %s, %s",
			cfg.CacheBackend, CacheBackendMemory, CacheBackendPostgres, CacheBackendSQLite, CacheBackendRedis,
		)
	}
	return nil
}

func loadChat() (ChatConfig, error) {
	var out ChatConfig
	var err error
	if out.StandingsLimit, err = getEnvAsMinInt("CHAT_STANDINGS_LIMIT", 10, 1); err != nil {
		return ChatConfig{}, err
	}
	if out.ScorersLimit, err = getEnvAsMinInt("CHAT_SCORERS_LIMIT", 10, 1); err != nil {
		return ChatConfig{}, err
	}
	if out.LiveLimit, err = getEnvAsMinInt("CHAT_LIVE_LIMIT", 15, 1); err != nil {
		return ChatConfig{}, err
	}
	if out.RecentMatches, err = getEnvAsMinInt("CHAT_RECENT_MATCHES", 5, 1); err != nil {
		return ChatConfig{}, err
	}
	if out.NextMatches, err = getEnvAsMinInt("CHAT_NEXT_MATCHES", 5, 1); err != nil {
		return ChatConfig{}, err
	}
	if out.HeadToHeadMatches, err = getEnvAsMinInt("CHAT_H2H_MATCHES", 5, 1); err != nil {
		return ChatConfig{}, err
	}
	if out.DecimalPlaces, err = getEnvAsMinInt("CHAT_DECIMAL_PLACES", 1, 0); err != nil {
		return ChatConfig{}, err
	}
	if out.DecimalPlaces > 2 {
		return ChatConfig{}, fmt.Errorf("CHAT_DECIMAL_PLACES must be <= 2")
	}
	if out.ZoneContinentalA, err = getEnvAsMinInt("CHAT_ZONE_CONTINENTAL_A", 4, 0); err != nil {
		return ChatConfig{}, err
	}
	if out.ZoneContinentalB, err = getEnvAsMinInt("CHAT_ZONE_CONTINENTAL_B", 6, 0); err != nil {
		return ChatConfig{}, err
	}
	if out.ZoneContinentalB < out.ZoneContinentalA {
		return ChatConfig{}, fmt.Errorf("CHAT_ZONE_CONTINENTAL_B must be >= CHAT_ZONE_CONTINENTAL_A")
	}
	if out.ZoneRelegation, err = getEnvAsMinInt("CHAT_ZONE_RELEGATION", 2, 0); err != nil {
		return ChatConfig{}, err
	}
	return out, nil
}

func loadObservability(cfg *Config) error {
	var err error
	if cfg.MetricsEnabled, err = getEnvAsBool("METRICS_ENABLED", true); err != nil {
		return err
	}

	if cfg.UptraceEnabled, err = getEnvAsBool("UPTRACE_ENABLED", false); err != nil {
		return err
	}
	cfg.UptraceDSN = strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if cfg.UptraceDSN == "" {
		cfg.UptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if cfg.UptraceEnabled && cfg.UptraceDSN == "" {
		return fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	if cfg.PprofEnabled, err = getEnvAsBool("PPROF_ENABLED", false); err != nil {
		return err
	}
	if cfg.PprofEnabled && cfg.PprofAddr == "" {
		return fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	if cfg.PyroscopeEnabled, err = getEnvAsBool("PYROSCOPE_ENABLED", false); err != nil {
		return err
	}
	cfg.PyroscopeServerAddress = strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if cfg.PyroscopeEnabled && cfg.PyroscopeServerAddress == "" {
		return fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	if cfg.PyroscopeUploadRate, err = getEnvAsPositiveDuration("PYROSCOPE_UPLOAD_RATE", 15*time.Second); err != nil {
		return err
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	cfg.PyroscopeAuthToken = strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", ""))
	cfg.PyroscopeBasicAuthUser = strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", ""))
	cfg.PyroscopeBasicAuthPassword = strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", ""))
	return nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}

	return out, nil
}

func getEnvAsMinInt(key string, fallback, minValue int) (int, error) {
	out, err := getEnvAsInt(key, fallback)
	if err != nil {
		return 0, err
	}
	if out < minValue {
		return 0, fmt.Errorf("%s must be >= %d", key, minValue)
	}
	return out, nil
}

func getEnvAsBool(key string, fallback bool) (bool, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("parse %s: %w", key, err)
	}
	return out, nil
}

func getEnvAsDuration(key string, fallback time.Duration) (time.Duration, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return out, nil
}

func getEnvAsPositiveDuration(key string, fallback time.Duration) (time.Duration, error) {
	out, err := getEnvAsDuration(key, fallback)
	if err != nil {
		return 0, err
	}
	if out <= 0 {
		return 0, fmt.Errorf("%s must be > 0", key)
	}
	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	items := strings.Split(raw, ",")
	for _, item := range items {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			value := strings.TrimSpace(parts[1])
			return strings.Trim(value, "\"'")
		}
	}

	return ""
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
