package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/riskibarqy/football-chatbot/internal/domain/leaguestanding"
	"github.com/riskibarqy/football-chatbot/internal/domain/team"
	"github.com/riskibarqy/football-chatbot/internal/domain/teamstats"
	"github.com/riskibarqy/football-chatbot/internal/domain/topscorers"
	"github.com/riskibarqy/football-chatbot/internal/infrastructure/repository/memory"
	teammock "github.com/riskibarqy/football-chatbot/internal/mocks/domain/team"
	usecasemock "github.com/riskibarqy/football-chatbot/internal/mocks/usecase"
)

func newSeedFootballService(data FootballDataSource) *FootballService {
	return NewFootballService(
		data,
		memory.NewLeagueRepository(memory.SeedLeagues(2024)),
		memory.NewTeamRepository(memory.SeedTeams()),
		&fakeCacheManager{removed: 4},
		fakeMonitor{status: DataSourceStatus{RequestsMade: 3, RequestLimit: 100, Remaining: 97}},
		2024,
		memory.LeagueIDPrimeiraLiga,
	)
}

func TestFootballService_Season(t *testing.T) {
	t.Parallel()

	service := newSeedFootballService(nil)
	cases := []struct {
		requested int
		want      int
	}{
		{requested: 0, want: 2024},
		{requested: 2023, want: 2023},
		{requested: 2009, want: 2024},
		{requested: 2031, want: 2024},
	}
	for _, tc := range cases {
		if got := service.Season(tc.requested); got != tc.want {
			t.Fatalf("unexpected season for %d: got=%d want=%d", tc.requested, got, tc.want)
		}
	}
}

func TestFootballService_StandingsUsesFallbackSeason(t *testing.T) {
	t.Parallel()

	data := usecasemock.NewFootballDataSource(t)
	data.
		On("Standings", mock.Anything, memory.LeagueIDLaLiga, 2024).
		Return(leaguestanding.Table{Rows: []leaguestanding.Row{{Rank: 1}}}, nil).
		Once()

	got, err := newSeedFootballService(data).Standings(context.Background(), memory.LeagueIDLaLiga, 1999)
	if err != nil {
		t.Fatalf("standings: %v", err)
	}
	if len(got.Rows) != 1 {
		t.Fatalf("unexpected row count: got=%d want=1", len(got.Rows))
	}
}

func TestFootballService_TeamStatisticsDefaultsToTeamLeague(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	data := usecasemock.NewFootballDataSource(t)
	teamRepo := teammock.NewRepository(t)
	teamRepo.
		On("GetByID", mock.Anything, 541).
		Return(team.Team{ID: 541, Name: "Real Madrid", LeagueID: memory.LeagueIDLaLiga}, true, nil).
		Once()
	data.
		On("TeamStatistics", mock.Anything, 541, memory.LeagueIDLaLiga, 2024).
		Return(teamstats.Statistics{Team: team.Ref{ID: 541}}, nil).
		Once()

	service := NewFootballService(data, memory.NewLeagueRepository(memory.SeedLeagues(2024)), teamRepo, nil, nil, 2024, memory.LeagueIDPrimeiraLiga)
	if _, err := service.TeamStatistics(ctx, 541, 0, 0); err != nil {
		t.Fatalf("team statistics: %v", err)
	}
}

func TestFootballService_TeamStatisticsUnknownTeamUsesDefaultLeague(t *testing.T) {
	t.Parallel()

	data := usecasemock.NewFootballDataSource(t)
	teamRepo := teammock.NewRepository(t)
	teamRepo.
		On("GetByID", mock.Anything, 9999).
		Return(team.Team{}, false, nil).
		Once()
	data.
		On("TeamStatistics", mock.Anything, 9999, memory.LeagueIDPrimeiraLiga, 2024).
		Return(teamstats.Statistics{}, ErrNoData).
		Once()

	service := NewFootballService(data, memory.NewLeagueRepository(nil), teamRepo, nil, nil, 2024, memory.LeagueIDPrimeiraLiga)
	_, err := service.TeamStatistics(context.Background(), 9999, 0, 0)
	if !errors.Is(err, ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
}

func TestFootballService_InputValidation(t *testing.T) {
	t.Parallel()

	// No expectations: validation must fail before the data source is touched.
	data := usecasemock.NewFootballDataSource(t)
	service := newSeedFootballService(data)
	ctx := context.Background()

	checks := map[string]error{}
	_, checks["standings"] = service.Standings(ctx, 0, 0)
	_, checks["team stats"] = service.TeamStatistics(ctx, -1, 0, 0)
	_, checks["recent"] = service.RecentMatches(ctx, 0, 5)
	_, checks["next"] = service.NextMatches(ctx, 0, 5)
	_, checks["h2h same team"] = service.HeadToHead(ctx, 211, 211, 5)
	_, checks["h2h missing"] = service.HeadToHead(ctx, 211, 0, 5)
	_, checks["league teams"] = service.LeagueTeams(ctx, 0, 0)
	_, checks["top scorers"] = service.TopScorers(ctx, 0, 0)
	_, checks["live"] = service.LiveFixtures(ctx, -1)
	_, checks["bad date"] = service.FixturesByDate(ctx, "2024/05/01", 0, 0)
	_, checks["short search"] = service.SearchTeams(ctx, "be")
	_, checks["country"] = service.LeaguesByCountry(ctx, "  ")

	for name, err := range checks {
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("%s: expected ErrInvalidInput, got %v", name, err)
		}
	}
}

func TestFootballService_TopScorersCapped(t *testing.T) {
	t.Parallel()

	scorers := make([]topscorers.Scorer, 0, 25)
	for i := 1; i <= 25; i++ {
		scorers = append(scorers, topscorers.Scorer{Rank: i, PlayerName: fmt.Sprintf("Player %d", i)})
	}
	data := usecasemock.NewFootballDataSource(t)
	data.
		On("TopScorers", mock.Anything, memory.LeagueIDSerieA, 2024).
		Return(scorers, nil).
		Once()

	got, err := newSeedFootballService(data).TopScorers(context.Background(), memory.LeagueIDSerieA, 0)
	if err != nil {
		t.Fatalf("top scorers: %v", err)
	}
	if len(got) != maxTopScorers {
		t.Fatalf("unexpected scorer count: got=%d want=%d", len(got), maxTopScorers)
	}
}

func TestFootballService_FixturesByDateDropsSeasonWithoutLeague(t *testing.T) {
	t.Parallel()

	data := usecasemock.NewFootballDataSource(t)
	data.
		On("FixturesByDate", mock.Anything, "2024-05-01", 0, 0).
		Return(nil, nil).
		Once()
	data.
		On("FixturesByDate", mock.Anything, "2024-05-01", memory.LeagueIDLigue1, 2024).
		Return(nil, nil).
		Once()

	service := newSeedFootballService(data)
	if _, err := service.FixturesByDate(context.Background(), "2024-05-01", 0, 2023); err != nil {
		t.Fatalf("fixtures by date: %v", err)
	}
	if _, err := service.FixturesByDate(context.Background(), "2024-05-01", memory.LeagueIDLigue1, 0); err != nil {
		t.Fatalf("fixtures by date with league: %v", err)
	}
}

func TestFootballService_PopularTeams(t *testing.T) {
	t.Parallel()

	service := newSeedFootballService(nil)
	ctx := context.Background()

	all, err := service.PopularTeams(ctx, 0, "")
	if err != nil {
		t.Fatalf("popular teams: %v", err)
	}
	if len(all) != 10 || all[0].ID != 211 {
		t.Fatalf("unexpected default league teams: count=%d first=%d", len(all), all[0].ID)
	}

	ranked, err := service.PopularTeams(ctx, memory.LeagueIDPrimeiraLiga, "benf")
	if err != nil {
		t.Fatalf("popular teams with query: %v", err)
	}
	if len(ranked) != 1 || ranked[0].ID != 211 {
		t.Fatalf("unexpected fuzzy result: %+v", ranked)
	}
}

func TestFootballService_StatusAndCache(t *testing.T) {
	t.Parallel()

	service := newSeedFootballService(nil)
	ctx := context.Background()

	status, err := service.Status(ctx)
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if status.AvailableLeagues != 12 {
		t.Fatalf("unexpected league count: got=%d want=12", status.AvailableLeagues)
	}
	if status.DataSource.RequestsMade != 3 {
		t.Fatalf("unexpected requests made: got=%d want=3", status.DataSource.RequestsMade)
	}

	removed, err := service.ClearCache(ctx)
	if err != nil {
		t.Fatalf("clear cache: %v", err)
	}
	if removed != 4 {
		t.Fatalf("unexpected removed count: got=%d want=4", removed)
	}
}

func TestFootballService_LiveFixturesEmptyUpstream(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	data := usecasemock.NewFootballDataSource(t)
	data.
		On("LiveFixtures", mock.Anything, 0).
		Return(nil, fmt.Errorf("fetch live fixtures: %w", ErrNoData)).
		Once()
	data.
		On("LiveFixtures", mock.Anything, memory.LeagueIDLaLiga).
		Return(nil, fmt.Errorf("fetch live fixtures: %w", ErrDependencyUnavailable)).
		Once()

	service := newSeedFootballService(data)
	fixtures, err := service.LiveFixtures(ctx, 0)
	if err != nil {
		t.Fatalf("expected no error for an empty live feed, got=%v", err)
	}
	if fixtures == nil || len(fixtures) != 0 {
		t.Fatalf("expected an empty non-nil list, got=%v", fixtures)
	}

	if _, err := service.LiveFixtures(ctx, memory.LeagueIDLaLiga); !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected transient error to pass through, got=%v", err)
	}
}
