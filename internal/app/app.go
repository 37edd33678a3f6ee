package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	_ "modernc.org/sqlite"

	"github.com/riskibarqy/football-chatbot/external/apifootball"
	"github.com/riskibarqy/football-chatbot/internal/config"
	"github.com/riskibarqy/football-chatbot/internal/domain/league"
	"github.com/riskibarqy/football-chatbot/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/football-chatbot/internal/infrastructure/repository/rediskv"
	"github.com/riskibarqy/football-chatbot/internal/infrastructure/repository/sqldb"
	"github.com/riskibarqy/football-chatbot/internal/interfaces/httpapi"
	"github.com/riskibarqy/football-chatbot/internal/metrics"
	"github.com/riskibarqy/football-chatbot/internal/platform/cache"
	"github.com/riskibarqy/football-chatbot/internal/platform/logging"
	"github.com/riskibarqy/football-chatbot/internal/usecase"
)

const startupTimeout = 30 * time.Second

// NewHTTPServer wires the chatbot and returns the server together with a cleanup
// that releases the cache backend. Cleanup is safe to call once the server stopped.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func(), error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	var recorder *metrics.Recorder
	if cfg.MetricsEnabled {
		recorder = metrics.NewRecorder()
	}

	startCtx, cancel := context.WithTimeout(ctx, startupTimeout)
	defer cancel()

	persister, closePersister, err := openCachePersister(startCtx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	storeOpts := []cache.Option{cache.WithLogger(logger.Named("cache"))}
	if persister != nil {
		storeOpts = append(storeOpts, cache.WithPersister(persister))
	}
	store := cache.NewStore(cfg.CacheTTL, storeOpts...)
	if loaded, err := store.Warm(startCtx); err != nil {
		logger.Warn("load persisted cache failed", "backend", cfg.CacheBackend, "error", err)
	} else {
		logger.Info("response cache ready", "backend", cfg.CacheBackend, "entries", loaded)
	}

	client := apifootball.NewClient(apifootball.ClientConfig{
		BaseURL:        cfg.FootballAPIBaseURL,
		APIKey:         cfg.FootballAPIKey,
		APIHost:        cfg.FootballAPIHost,
		Timeout:        cfg.FootballAPITimeout,
		LiveTTL:        cfg.CacheLiveTTL,
		RateLimit:      cfg.RateLimit,
		CircuitBreaker: cfg.CircuitBreaker,
		Logger:         logger,
		Recorder:       recorder,
	}, store)

	leagues := memory.SeedLeagues(cfg.Season)
	teams := memory.SeedTeams()
	leagueRepo := memory.NewLeagueRepository(leagues)
	teamRepo := memory.NewTeamRepository(teams)

	resolver := usecase.NewEntityResolver(leagues, memory.SeedLeagueAliases(), teams, client, logger.Named("resolver"))
	composer := usecase.NewResponseComposer(client, resolver, usecase.ComposerConfig{
		Season:            cfg.Season,
		DefaultLeagueID:   cfg.DefaultLeagueID,
		StandingsLimit:    cfg.Chat.StandingsLimit,
		ScorersLimit:      cfg.Chat.ScorersLimit,
		LiveLimit:         cfg.Chat.LiveLimit,
		RecentMatches:     cfg.Chat.RecentMatches,
		NextMatches:       cfg.Chat.NextMatches,
		HeadToHeadMatches: cfg.Chat.HeadToHeadMatches,
		DecimalPlaces:     cfg.Chat.DecimalPlaces,
		Zones: league.StandingZones{
			ContinentalA: cfg.Chat.ZoneContinentalA,
			ContinentalB: cfg.Chat.ZoneContinentalB,
			Relegation:   cfg.Chat.ZoneRelegation,
		},
		Location: cfg.Location,
	}, logger.Named("composer"))

	chatSvc := usecase.NewChatService(
		usecase.NewIntentClassifier(),
		resolver,
		composer,
		leagueRepo,
		store,
		client,
		recorder,
		logger.Named("chat"),
	)
	footballSvc := usecase.NewFootballService(client, leagueRepo, teamRepo, store, client, cfg.Season, cfg.DefaultLeagueID)
	warmSvc := usecase.NewCacheWarmService(client, leagueRepo, cfg.Season, logger.Named("cache_warm"))

	handler := httpapi.NewHandler(chatSvc, footballSvc, warmSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, cfg.CacheAdminToken, recorder)

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
	}

	if cfg.CacheWarmOnStart {
		go warmOnStart(context.WithoutCancel(ctx), warmSvc, logger)
	}

	cleanup := func() {
		if err := closePersister(); err != nil {
			logger.Warn("close cache backend failed", "backend", cfg.CacheBackend, "error", err)
		}
	}
	return server, cleanup, nil
}

func warmOnStart(ctx context.Context, warmer *usecase.CacheWarmService, logger *logging.Logger) {
	result, err := warmer.Warm(ctx, usecase.CacheWarmInput{})
	if err != nil {
		logger.Warn("startup cache warm failed", "error", err)
		return
	}
	logger.Info("startup cache warm finished",
		"tasks", result.TaskCount,
		"success", result.SuccessCount,
		"failed", result.FailedCount,
		"skipped", result.SkippedCount,
	)
}

// openCachePersister returns nil for the memory backend. The close func is never nil.
func openCachePersister(ctx context.Context, cfg config.Config, logger *logging.Logger) (cache.Persister, func() error, error) {
	noop := func() error { return nil }

	switch cfg.CacheBackend {
	case config.CacheBackendPostgres:
		dsn := normalizeDBURL(cfg.CacheDBURL, cfg.ServiceName)
		db, err := otelsqlx.Open("postgres", dsn,
			otelsql.WithDBSystem("postgresql"),
			otelsql.WithDBName(dbNameFromURL(dsn)),
			otelsql.WithQueryFormatter(formatDBQueryForTrace),
		)
		if err != nil {
			return nil, noop, fmt.Errorf("open cache db: %w", err)
		}
		if err := db.PingContext(ctx); err != nil {
			_ = db.Close()
			return nil, noop, fmt.Errorf("ping cache db: %w", err)
		}
		return sqlPersister(ctx, db, cfg, logger, false)

	case config.CacheBackendSQLite:
		db, err := otelsqlx.Open("sqlite", cfg.CacheSQLitePath,
			otelsql.WithDBSystem("sqlite"),
			otelsql.WithQueryFormatter(formatDBQueryForTrace),
		)
		if err != nil {
			return nil, noop, fmt.Errorf("open cache sqlite %s: %w", cfg.CacheSQLitePath, err)
		}
		// modernc sqlite serialises writers; one connection avoids SQLITE_BUSY.
		db.SetMaxOpenConns(1)
		return sqlPersister(ctx, db, cfg, logger, true)

	case config.CacheBackendRedis:
		client, err := rediskv.NewClient(ctx, cfg.CacheRedisURL, cfg.FootballAPITimeout)
		if err != nil {
			return nil, noop, err
		}
		logger.Info("cache backend redis connected")
		return rediskv.NewCacheEntryRepository(client, cfg.CacheRedisPrefix, cfg.CacheTTL), client.Close, nil

	default:
		return nil, noop, nil
	}
}

func sqlPersister(ctx context.Context, db *sqlx.DB, cfg config.Config, logger *logging.Logger, ensureSchema bool) (cache.Persister, func() error, error) {
	repo := sqldb.NewCacheEntryRepository(db)
	if ensureSchema {
		if err := repo.EnsureSchema(ctx); err != nil {
			_ = db.Close()
			return nil, func() error { return nil }, err
		}
	}

	removed, err := repo.DeleteExpired(ctx, cfg.CacheTTL, time.Now())
	if err != nil {
		logger.Warn("purge expired cache rows failed", "backend", cfg.CacheBackend, "error", err)
	} else {
		logger.Info("cache backend connected", "backend", cfg.CacheBackend, "expired_removed", removed)
	}
	return repo, db.Close, nil
}
