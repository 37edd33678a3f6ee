package teamstats

import (
	"github.com/riskibarqy/football-chatbot/internal/domain/league"
	"github.com/riskibarqy/football-chatbot/internal/domain/team"
)

// Statistics is a team's season summary. Counters are nil when upstream omits them.
type Statistics struct {
	Team          team.Ref
	League        league.Ref
	Form          string
	Played        *int
	Wins          *int
	Draws         *int
	Losses        *int
	GoalsFor      *int
	GoalsAgainst  *int
	CleanSheets   *int
	FailedToScore *int
	YellowCards   *int
	RedCards      *int
}

// Complete reports whether the fields needed for a summary are all present.
func (s Statistics) Complete() bool {
	return s.Played != nil && s.Wins != nil && s.Draws != nil && s.Losses != nil &&
		s.GoalsFor != nil && s.GoalsAgainst != nil
}

func (s Statistics) HasCards() bool {
	return s.YellowCards != nil || s.RedCards != nil
}
