package fixture

import (
	"strings"
	"time"

	"github.com/riskibarqy/football-chatbot/internal/domain/league"
	"github.com/riskibarqy/football-chatbot/internal/domain/team"
)

// Short status codes used by the upstream API.
const (
	StatusNotStarted = "NS"
	StatusFirstHalf  = "1H"
	StatusHalfTime   = "HT"
	StatusSecondHalf = "2H"
	StatusExtraTime  = "ET"
	StatusBreak      = "BT"
	StatusPenalties  = "P"
	StatusLive       = "LIVE"
	StatusFullTime   = "FT"
	StatusAfterExtra = "AET"
	StatusAfterPens  = "PEN"
	StatusPostponed  = "PST"
	StatusCancelled  = "CANC"
	StatusAbandoned  = "ABD"
)

type Status struct {
	Short   string
	Long    string
	Elapsed *int
}

// Fixture is a point-in-time snapshot of one match.
type Fixture struct {
	ID        int
	KickoffAt time.Time
	Status    Status
	Home      team.Ref
	Away      team.Ref
	HomeGoals *int
	AwayGoals *int
	League    league.Ref
	Venue     string
}

type Outcome int

const (
	OutcomeUnknown Outcome = iota
	OutcomeWin
	OutcomeDraw
	OutcomeLoss
)

func NormalizeStatus(value string) string {
	status := strings.ToUpper(strings.TrimSpace(value))
	if status == "" {
		return StatusNotStarted
	}
	return status
}

func IsLiveStatus(status string) bool {
	switch NormalizeStatus(status) {
	case StatusLive, StatusFirstHalf, StatusHalfTime, StatusSecondHalf, StatusExtraTime, StatusBreak, StatusPenalties:
		return true
	default:
		return false
	}
}

func IsFinishedStatus(status string) bool {
	switch NormalizeStatus(status) {
	case StatusFullTime, StatusAfterExtra, StatusAfterPens:
		return true
	default:
		return false
	}
}

func (f Fixture) IsFinished() bool {
	return IsFinishedStatus(f.Status.Short) && f.HomeGoals != nil && f.AwayGoals != nil
}

func (f Fixture) IsLive() bool {
	return IsLiveStatus(f.Status.Short)
}

func (f Fixture) IsHome(teamID int) bool {
	return f.Home.ID == teamID
}

// Opponent returns the other side for teamID and whether teamID played at home.
func (f Fixture) Opponent(teamID int) (team.Ref, bool) {
	if f.Home.ID == teamID {
		return f.Away, true
	}
	return f.Home, false
}

// OutcomeFor compares goals from teamID's side. Unfinished fixtures and teams that
// did not play give OutcomeUnknown.
func (f Fixture) OutcomeFor(teamID int) Outcome {
	if !f.IsFinished() {
		return OutcomeUnknown
	}

	var own, other int
	switch teamID {
	case f.Home.ID:
		own, other = *f.HomeGoals, *f.AwayGoals
	case f.Away.ID:
		own, other = *f.AwayGoals, *f.HomeGoals
	default:
		return OutcomeUnknown
	}

	switch {
	case own > other:
		return OutcomeWin
	case own < other:
		return OutcomeLoss
	default:
		return OutcomeDraw
	}
}
