package apifootball

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/riskibarqy/football-chatbot/internal/domain/fixture"
	"github.com/riskibarqy/football-chatbot/internal/domain/league"
	"github.com/riskibarqy/football-chatbot/internal/domain/leaguestanding"
	"github.com/riskibarqy/football-chatbot/internal/domain/team"
	"github.com/riskibarqy/football-chatbot/internal/domain/teamstats"
	"github.com/riskibarqy/football-chatbot/internal/domain/topscorers"
	"github.com/riskibarqy/football-chatbot/internal/usecase"
)

const (
	endpointStandings  = "standings"
	endpointTeamStats  = "teams/statistics"
	endpointFixtures   = "fixtures"
	endpointHeadToHead = "fixtures/headtohead"
	endpointLeagues    = "leagues"
	endpointTeams      = "teams"
	endpointTopScorers = "players/topscorers"
)

var _ usecase.FootballDataSource = (*Client)(nil)
var _ usecase.DataSourceMonitor = (*Client)(nil)

func params(kv ...string) url.Values {
	values := url.Values{}
	for i := 0; i+1 < len(kv); i += 2 {
		values.Set(kv[i], kv[i+1])
	}
	return values
}

func itoa(v int) string {
	return strconv.Itoa(v)
}

func (c *Client) Standings(ctx context.Context, leagueID, season int) (leaguestanding.Table, error) {
	items, err := fetch[[]wireStandingsItem](ctx, c, apiCall{
		endpoint: endpointStandings,
		params:   params("league", itoa(leagueID), "season", itoa(season)),
	})
	if err != nil {
		return leaguestanding.Table{}, fmt.Errorf("fetch standings league=%d season=%d: %w", leagueID, season, err)
	}
	return mapStandings(items), nil
}

func (c *Client) TeamStatistics(ctx context.Context, teamID, leagueID, season int) (teamstats.Statistics, error) {
	stats, err := fetch[wireTeamStatistics](ctx, c, apiCall{
		endpoint: endpointTeamStats,
		params:   params("team", itoa(teamID), "league", itoa(leagueID), "season", itoa(season)),
	})
	if err != nil {
		return teamstats.Statistics{}, fmt.Errorf("fetch team statistics team=%d league=%d: %w", teamID, leagueID, err)
	}
	return mapTeamStatistics(stats), nil
}

func (c *Client) RecentFixtures(ctx context.Context, teamID, last int) ([]fixture.Fixture, error) {
	return c.fixtures(ctx, params("team", itoa(teamID), "last", itoa(last)))
}

func (c *Client) LeagueRecentFixtures(ctx context.Context, leagueID, season, last int) ([]fixture.Fixture, error) {
	return c.fixtures(ctx, params("league", itoa(leagueID), "season", itoa(season), "last", itoa(last)))
}

func (c *Client) NextFixtures(ctx context.Context, teamID, next int) ([]fixture.Fixture, error) {
	return c.fixtures(ctx, params("team", itoa(teamID), "next", itoa(next)))
}

func (c *Client) LeagueNextFixtures(ctx context.Context, leagueID, season, next int) ([]fixture.Fixture, error) {
	return c.fixtures(ctx, params("league", itoa(leagueID), "season", itoa(season), "next", itoa(next)))
}

func (c *Client) HeadToHead(ctx context.Context, team1ID, team2ID, last int) ([]fixture.Fixture, error) {
	items, err := fetch[[]wireFixtureItem](ctx, c, apiCall{
		endpoint: endpointHeadToHead,
		params:   params("h2h", itoa(team1ID)+"-"+itoa(team2ID), "last", itoa(last)),
	})
	if err != nil {
		return nil, fmt.Errorf("fetch head to head %d-%d: %w", team1ID, team2ID, err)
	}
	return mapFixtures(items), nil
}

func (c *Client) Leagues(ctx context.Context, country string) ([]league.Info, error) {
	values := url.Values{}
	if country = strings.TrimSpace(country); country != "" {
		values.Set("country", country)
	}
	items, err := fetch[[]wireLeagueItem](ctx, c, apiCall{endpoint: endpointLeagues, params: values})
	if err != nil {
		return nil, fmt.Errorf("fetch leagues country=%q: %w", country, err)
	}
	return mapLeagueInfos(items), nil
}

func (c *Client) SearchTeams(ctx context.Context, name string) ([]team.Team, error) {
	items, err := fetch[[]wireTeamItem](ctx, c, apiCall{
		endpoint: endpointTeams,
		params:   params("search", strings.TrimSpace(name)),
	})
	if err != nil {
		return nil, fmt.Errorf("search teams %q: %w", name, err)
	}
	return mapTeams(items, 0), nil
}

func (c *Client) TeamsByLeague(ctx context.Context, leagueID, season int) ([]team.Team, error) {
	items, err := fetch[[]wireTeamItem](ctx, c, apiCall{
		endpoint: endpointTeams,
		params:   params("league", itoa(leagueID), "season", itoa(season)),
	})
	if err != nil {
		return nil, fmt.Errorf("fetch teams league=%d season=%d: %w", leagueID, season, err)
	}
	return mapTeams(items, leagueID), nil
}

// LiveFixtures uses the short live TTL; leagueID 0 means every league.
func (c *Client) LiveFixtures(ctx context.Context, leagueID int) ([]fixture.Fixture, error) {
	live := "all"
	if leagueID > 0 {
		live = itoa(leagueID)
	}
	items, err := fetch[[]wireFixtureItem](ctx, c, apiCall{
		endpoint: endpointFixtures,
		params:   params("live", live),
		ttl:      c.liveTTL,
	})
	if err != nil {
		return nil, fmt.Errorf("fetch live fixtures league=%d: %w", leagueID, err)
	}
	return mapFixtures(items), nil
}

func (c *Client) FixturesByDate(ctx context.Context, date string, leagueID, season int) ([]fixture.Fixture, error) {
	values := params("date", date)
	if leagueID > 0 {
		values.Set("league", itoa(leagueID))
	}
	if season > 0 {
		values.Set("season", itoa(season))
	}
	return c.fixtures(ctx, values)
}

func (c *Client) TopScorers(ctx context.Context, leagueID, season int) ([]topscorers.Scorer, error) {
	items, err := fetch[[]wireScorerItem](ctx, c, apiCall{
		endpoint: endpointTopScorers,
		params:   params("league", itoa(leagueID), "season", itoa(season)),
	})
	if err != nil {
		return nil, fmt.Errorf("fetch top scorers league=%d season=%d: %w", leagueID, season, err)
	}
	return mapScorers(items), nil
}

func (c *Client) fixtures(ctx context.Context, values url.Values) ([]fixture.Fixture, error) {
	items, err := fetch[[]wireFixtureItem](ctx, c, apiCall{endpoint: endpointFixtures, params: values})
	if err != nil {
		return nil, fmt.Errorf("fetch fixtures %s: %w", values.Encode(), err)
	}
	return mapFixtures(items), nil
}
