package usecase

import (
	"context"
	"time"

	"github.com/riskibarqy/football-chatbot/internal/domain/fixture"
	"github.com/riskibarqy/football-chatbot/internal/domain/league"
	"github.com/riskibarqy/football-chatbot/internal/domain/leaguestanding"
	"github.com/riskibarqy/football-chatbot/internal/domain/team"
	"github.com/riskibarqy/football-chatbot/internal/domain/teamstats"
	"github.com/riskibarqy/football-chatbot/internal/domain/topscorers"
	"github.com/riskibarqy/football-chatbot/internal/platform/cache"
)

// FootballDataSource is the cached, budgeted view of the upstream football API.
// Methods return ErrNoData, ErrBudgetExceeded, ErrMalformedPayload or
// ErrDependencyUnavailable instead of a payload.
type FootballDataSource interface {
	Standings(ctx context.Context, leagueID, season int) (leaguestanding.Table, error)
	TeamStatistics(ctx context.Context, teamID, leagueID, season int) (teamstats.Statistics, error)
	RecentFixtures(ctx context.Context, teamID, last int) ([]fixture.Fixture, error)
	LeagueRecentFixtures(ctx context.Context, leagueID, season, last int) ([]fixture.Fixture, error)
	NextFixtures(ctx context.Context, teamID, next int) ([]fixture.Fixture, error)
	LeagueNextFixtures(ctx context.Context, leagueID, season, next int) ([]fixture.Fixture, error)
	HeadToHead(ctx context.Context, team1ID, team2ID, last int) ([]fixture.Fixture, error)
	Leagues(ctx context.Context, country string) ([]league.Info, error)
	SearchTeams(ctx context.Context, name string) ([]team.Team, error)
	TeamsByLeague(ctx context.Context, leagueID, season int) ([]team.Team, error)
	LiveFixtures(ctx context.Context, leagueID int) ([]fixture.Fixture, error)
	FixturesByDate(ctx context.Context, date string, leagueID, season int) ([]fixture.Fixture, error)
	TopScorers(ctx context.Context, leagueID, season int) ([]topscorers.Scorer, error)
}

// DataSourceStatus is the read-only metering view of the upstream client.
type DataSourceStatus struct {
	RequestsMade   int
	RequestLimit   int
	Remaining      int
	State          string
	CircuitState   string
	Backoffs       int
	WindowResetsAt time.Time
}

type DataSourceMonitor interface {
	Status() DataSourceStatus
}

// CacheManager is what the chat and HTTP layers may do with the response cache.
type CacheManager interface {
	Clear(ctx context.Context) (int, error)
	Stats() cache.Stats
}
