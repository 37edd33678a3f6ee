package leaguestanding

import (
	"github.com/riskibarqy/football-chatbot/internal/domain/league"
	"github.com/riskibarqy/football-chatbot/internal/domain/team"
)

// Row is one team's line in a league table.
type Row struct {
	Rank         int
	Team         team.Ref
	Points       int
	Played       int
	Won          int
	Drawn        int
	Lost         int
	GoalsFor     int
	GoalsAgainst int
	GoalDiff     int
	Form         string
	Description  string
}

// Table is ordered by rank ascending with one row per team.
type Table struct {
	League league.Ref
	Rows   []Row
}

// FindTeam returns the team's row and its index in Rows.
func (t Table) FindTeam(teamID int) (Row, int, bool) {
	for i, row := range t.Rows {
		if row.Team.ID == teamID {
			return row, i, true
		}
	}
	return Row{}, -1, false
}

// Totals sums goals and matches. Each match is counted once, from played/2.
func (t Table) Totals() (goals int, matches int) {
	played := 0
	for _, row := range t.Rows {
		goals += row.GoalsFor
		played += row.Played
	}
	return goals, played / 2
}
