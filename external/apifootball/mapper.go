package apifootball

import (
	"sort"
	"time"

	"github.com/riskibarqy/football-chatbot/internal/domain/fixture"
	"github.com/riskibarqy/football-chatbot/internal/domain/league"
	"github.com/riskibarqy/football-chatbot/internal/domain/leaguestanding"
	"github.com/riskibarqy/football-chatbot/internal/domain/team"
	"github.com/riskibarqy/football-chatbot/internal/domain/teamstats"
	"github.com/riskibarqy/football-chatbot/internal/domain/topscorers"
)

func mapTeamRef(t wireTeam) team.Ref {
	return team.Ref{ID: t.ID, Name: t.Name, Logo: t.Logo}
}

func mapLeagueRef(l wireLeague) league.Ref {
	return league.Ref{
		ID:      l.ID,
		Name:    l.Name,
		Country: l.Country,
		Logo:    l.Logo,
		Flag:    l.Flag,
		Season:  l.Season,
		Round:   l.Round,
	}
}

// mapStandings keeps the first group only. Multi-group competitions would
// otherwise repeat ranks within one table.
func mapStandings(items []wireStandingsItem) leaguestanding.Table {
	if len(items) == 0 {
		return leaguestanding.Table{}
	}
	item := items[0]
	table := leaguestanding.Table{League: mapLeagueRef(item.League.wireLeague)}
	if len(item.League.Standings) == 0 {
		return table
	}

	group := item.League.Standings[0]
	table.Rows = make([]leaguestanding.Row, 0, len(group))
	seen := make(map[int]bool, len(group))
	for _, r := range group {
		if r.Team.ID <= 0 || seen[r.Team.ID] {
			continue
		}
		seen[r.Team.ID] = true
		table.Rows = append(table.Rows, leaguestanding.Row{
			Rank:         r.Rank,
			Team:         mapTeamRef(r.Team),
			Points:       r.Points,
			Played:       r.All.Played,
			Won:          r.All.Win,
			Drawn:        r.All.Draw,
			Lost:         r.All.Lose,
			GoalsFor:     r.All.Goals.For,
			GoalsAgainst: r.All.Goals.Against,
			GoalDiff:     r.GoalsDiff,
			Form:         r.Form,
			Description:  r.Description,
		})
	}
	sort.SliceStable(table.Rows, func(i, j int) bool { return table.Rows[i].Rank < table.Rows[j].Rank })
	return table
}

func mapTeamStatistics(s wireTeamStatistics) teamstats.Statistics {
	return teamstats.Statistics{
		Team:          mapTeamRef(s.Team),
		League:        mapLeagueRef(s.League),
		Form:          s.Form,
		Played:        s.Fixtures.Played.Total,
		Wins:          s.Fixtures.Wins.Total,
		Draws:         s.Fixtures.Draws.Total,
		Losses:        s.Fixtures.Loses.Total,
		GoalsFor:      s.Goals.For.Total.Total,
		GoalsAgainst:  s.Goals.Against.Total.Total,
		CleanSheets:   s.CleanSheet.Total,
		FailedToScore: s.FailedToScore.Total,
		YellowCards:   sumCards(s.Cards.Yellow),
		RedCards:      sumCards(s.Cards.Red),
	}
}

// sumCards adds the per-minute buckets; nil when upstream reported none.
func sumCards(buckets map[string]wireCardBucket) *int {
	total := 0
	found := false
	for _, b := range buckets {
		if b.Total == nil {
			continue
		}
		found = true
		total += *b.Total
	}
	if !found {
		return nil
	}
	return &total
}

func mapFixtures(items []wireFixtureItem) []fixture.Fixture {
	out := make([]fixture.Fixture, 0, len(items))
	for _, item := range items {
		f := fixture.Fixture{
			ID: item.Fixture.ID,
			Status: fixture.Status{
				Short:   fixture.NormalizeStatus(item.Fixture.Status.Short),
				Long:    item.Fixture.Status.Long,
				Elapsed: item.Fixture.Status.Elapsed,
			},
			Home:      mapTeamRef(item.Teams.Home),
			Away:      mapTeamRef(item.Teams.Away),
			HomeGoals: item.Goals.Home,
			AwayGoals: item.Goals.Away,
			League:    mapLeagueRef(item.League),
			Venue:     item.Fixture.Venue.Name,
		}
		if kickoff, err := time.Parse(time.RFC3339, item.Fixture.Date); err == nil {
			f.KickoffAt = kickoff.UTC()
		}
		out = append(out, f)
	}
	return out
}

func mapLeagueInfos(items []wireLeagueItem) []league.Info {
	out := make([]league.Info, 0, len(items))
	for _, item := range items {
		info := league.Info{
			ID:          item.League.ID,
			Name:        item.League.Name,
			Type:        item.League.Type,
			Logo:        item.League.Logo,
			Country:     item.Country.Name,
			CountryCode: item.Country.Code,
			Flag:        item.Country.Flag,
		}
		for _, s := range item.Seasons {
			info.Seasons = append(info.Seasons, s.Year)
			if s.Current {
				info.CurrentSeason = s.Year
			}
		}
		out = append(out, info)
	}
	return out
}

// mapTeams marks every team as dynamic: these come from upstream, not the registry.
func mapTeams(items []wireTeamItem, leagueID int) []team.Team {
	out := make([]team.Team, 0, len(items))
	for _, item := range items {
		if item.Team.ID <= 0 {
			continue
		}
		t := team.Team{
			ID:       item.Team.ID,
			Name:     item.Team.Name,
			LeagueID: leagueID,
			Country:  item.Team.Country,
			Venue:    item.Venue.Name,
			Logo:     item.Team.Logo,
			Dynamic:  true,
		}
		if item.Team.Founded != nil {
			t.Founded = *item.Team.Founded
		}
		out = append(out, t)
	}
	return out
}

func mapScorers(items []wireScorerItem) []topscorers.Scorer {
	out := make([]topscorers.Scorer, 0, len(items))
	for i, item := range items {
		s := topscorers.Scorer{
			Rank:        i + 1,
			PlayerID:    item.Player.ID,
			PlayerName:  item.Player.Name,
			Nationality: item.Player.Nationality,
			Photo:       item.Player.Photo,
		}
		if len(item.Statistics) > 0 {
			stat := item.Statistics[0]
			s.TeamID = stat.Team.ID
			s.TeamName = stat.Team.Name
			if stat.Goals.Total != nil {
				s.Goals = *stat.Goals.Total
			}
			s.Assists = stat.Goals.Assists
			s.Appearances = stat.Games.Appearances
		}
		out = append(out, s)
	}
	return out
}
