package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sahilm/fuzzy"

	"github.com/riskibarqy/football-chatbot/internal/domain/fixture"
	"github.com/riskibarqy/football-chatbot/internal/domain/league"
	"github.com/riskibarqy/football-chatbot/internal/domain/leaguestanding"
	"github.com/riskibarqy/football-chatbot/internal/domain/team"
	"github.com/riskibarqy/football-chatbot/internal/domain/teamstats"
	"github.com/riskibarqy/football-chatbot/internal/domain/topscorers"
	"github.com/riskibarqy/football-chatbot/internal/platform/cache"
)

const (
	minSeason         = 2010
	maxTopScorers     = 20
	maxSearchResults  = 10
	maxFixtureLookups = 20
)

// FootballService backs the data proxy endpoints.
type FootballService struct {
	data          FootballDataSource
	leagueRepo    league.Repository
	teamRepo      team.Repository
	cache         CacheManager
	monitor       DataSourceMonitor
	season        int
	defaultLeague int
}

func NewFootballService(
	data FootballDataSource,
	leagueRepo league.Repository,
	teamRepo team.Repository,
	cacheManager CacheManager,
	monitor DataSourceMonitor,
	season int,
	defaultLeague int,
) *FootballService {
	return &FootballService{
		data:          data,
		leagueRepo:    leagueRepo,
		teamRepo:      teamRepo,
		cache:         cacheManager,
		monitor:       monitor,
		season:        season,
		defaultLeague: defaultLeague,
	}
}

type ServiceStatus struct {
	DataSource       DataSourceStatus
	Cache            cache.Stats
	AvailableLeagues int
}

// Season keeps a requested season when it is plausible, otherwise the configured one.
func (s *FootballService) Season(requested int) int {
	if requested < minSeason || requested > s.season {
		return s.season
	}
	return requested
}

func (s *FootballService) Leagues(ctx context.Context) ([]league.League, error) {
	leagues, err := s.leagueRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list leagues: %w", err)
	}
	return leagues, nil
}

func (s *FootballService) LeaguesByCountry(ctx context.Context, country string) ([]league.Info, error) {
	country = strings.TrimSpace(country)
	if country == "" {
		return nil, fmt.Errorf("%w: country is required", ErrInvalidInput)
	}
	return s.data.Leagues(ctx, country)
}

func (s *FootballService) Standings(ctx context.Context, leagueID, season int) (leaguestanding.Table, error) {
	if leagueID <= 0 {
		return leaguestanding.Table{}, fmt.Errorf("%w: league id must be > 0", ErrInvalidInput)
	}
	return s.data.Standings(ctx, leagueID, s.Season(season))
}

func (s *FootballService) TeamStatistics(ctx context.Context, teamID, leagueID, season int) (teamstats.Statistics, error) {
	if teamID <= 0 {
		return teamstats.Statistics{}, fmt.Errorf("%w: team id must be > 0", ErrInvalidInput)
	}
	if leagueID <= 0 {
		leagueID = s.leagueOfTeam(ctx, teamID)
	}
	return s.data.TeamStatistics(ctx, teamID, leagueID, s.Season(season))
}

func (s *FootballService) RecentMatches(ctx context.Context, teamID, last int) ([]fixture.Fixture, error) {
	if teamID <= 0 {
		return nil, fmt.Errorf("%w: team id must be > 0", ErrInvalidInput)
	}
	return s.data.RecentFixtures(ctx, teamID, clampCount(last, 5))
}

func (s *FootballService) NextMatches(ctx context.Context, teamID, next int) ([]fixture.Fixture, error) {
	if teamID <= 0 {
		return nil, fmt.Errorf("%w: team id must be > 0", ErrInvalidInput)
	}
	return s.data.NextFixtures(ctx, teamID, clampCount(next, 5))
}

func (s *FootballService) HeadToHead(ctx context.Context, team1ID, team2ID, last int) ([]fixture.Fixture, error) {
	if team1ID <= 0 || team2ID <= 0 {
		return nil, fmt.Errorf("%w: both team ids must be > 0", ErrInvalidInput)
	}
	if team1ID == team2ID {
		return nil, fmt.Errorf("%w: head to head needs two different teams", ErrInvalidInput)
	}
	return s.data.HeadToHead(ctx, team1ID, team2ID, clampCount(last, 10))
}

func (s *FootballService) LeagueTeams(ctx context.Context, leagueID, season int) ([]team.Team, error) {
	if leagueID <= 0 {
		return nil, fmt.Errorf("%w: league id must be > 0", ErrInvalidInput)
	}
	return s.data.TeamsByLeague(ctx, leagueID, s.Season(season))
}

func (s *FootballService) TopScorers(ctx context.Context, leagueID, season int) ([]topscorers.Scorer, error) {
	if leagueID <= 0 {
		return nil, fmt.Errorf("%w: league id must be > 0", ErrInvalidInput)
	}
	scorers, err := s.data.TopScorers(ctx, leagueID, s.Season(season))
	if err != nil {
		return nil, err
	}
	if len(scorers) > maxTopScorers {
		scorers = scorers[:maxTopScorers]
	}
	return scorers, nil
}

func (s *FootballService) LiveFixtures(ctx context.Context, leagueID int) ([]fixture.Fixture, error) {
	if leagueID < 0 {
		return nil, fmt.Errorf("%w: league id must be >= 0", ErrInvalidInput)
	}
	fixtures, err := s.data.LiveFixtures(ctx, leagueID)
	if errors.Is(err, ErrNoData) {
		return []fixture.Fixture{}, nil
	}
	return fixtures, err
}

func (s *FootballService) FixturesByDate(ctx context.Context, date string, leagueID, season int) ([]fixture.Fixture, error) {
	date = strings.TrimSpace(date)
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
	}
	if leagueID < 0 {
		return nil, fmt.Errorf("%w: league id must be >= 0", ErrInvalidInput)
	}
	if leagueID == 0 {
		season = 0
	} else {
		season = s.Season(season)
	}
	return s.data.FixturesByDate(ctx, date, leagueID, season)
}

func (s *FootballService) SearchTeams(ctx context.Context, name string) ([]team.Team, error) {
	name = strings.TrimSpace(name)
	if len([]rune(name)) < 3 {
		return nil, fmt.Errorf("%w: search needs at least 3 characters", ErrInvalidInput)
	}
	teams, err := s.data.SearchTeams(ctx, name)
	if err != nil {
		return nil, err
	}
	if len(teams) > maxSearchResults {
		teams = teams[:maxSearchResults]
	}
	return teams, nil
}

type teamNames []team.Team

func (t teamNames) String(i int) string { return t[i].Name + " " + strings.Join(t[i].Aliases, " ") }
func (t teamNames) Len() int            { return len(t) }

// PopularTeams lists registry teams; a non-empty query ranks them by fuzzy match.
func (s *FootballService) PopularTeams(ctx context.Context, leagueID int, query string) ([]team.Team, error) {
	if leagueID <= 0 {
		leagueID = s.defaultLeague
	}
	teams, err := s.teamRepo.ListByLeague(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("list popular teams: %w", err)
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return teams, nil
	}
	if len(teams) == 0 {
		if teams, err = s.teamRepo.List(ctx); err != nil {
			return nil, fmt.Errorf("list popular teams: %w", err)
		}
	}

	matches := fuzzy.FindFrom(query, teamNames(teams))
	out := make([]team.Team, 0, len(matches))
	for _, m := range matches {
		out = append(out, teams[m.Index])
	}
	return out, nil
}

func (s *FootballService) Status(ctx context.Context) (ServiceStatus, error) {
	var out ServiceStatus
	if s.monitor != nil {
		out.DataSource = s.monitor.Status()
	}
	if s.cache != nil {
		out.Cache = s.cache.Stats()
	}
	leagues, err := s.leagueRepo.List(ctx)
	if err != nil {
		return ServiceStatus{}, fmt.Errorf("list leagues: %w", err)
	}
	out.AvailableLeagues = len(leagues)
	return out, nil
}

func (s *FootballService) CacheStats() cache.Stats {
	if s.cache == nil {
		return cache.Stats{}
	}
	return s.cache.Stats()
}

func (s *FootballService) ClearCache(ctx context.Context) (int, error) {
	if s.cache == nil {
		return 0, nil
	}
	removed, err := s.cache.Clear(ctx)
	if err != nil {
		return removed, fmt.Errorf("clear cache: %w", err)
	}
	return removed, nil
}

func (s *FootballService) leagueOfTeam(ctx context.Context, teamID int) int {
	if t, ok, err := s.teamRepo.GetByID(ctx, teamID); err == nil && ok && t.LeagueID > 0 {
		return t.LeagueID
	}
	return s.defaultLeague
}

func clampCount(v, fallback int) int {
	if v <= 0 {
		return fallback
	}
	if v > maxFixtureLookups {
		return maxFixtureLookups
	}
	return v
}
