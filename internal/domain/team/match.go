package team

type MatchKind int

const (
	MatchNotFound MatchKind = iota
	MatchSingle
	MatchCandidates
)

func (k MatchKind) String() string {
	switch k {
	case MatchSingle:
		return "single"
	case MatchCandidates:
		return "candidates"
	default:
		return "not_found"
	}
}

// Match is the outcome of a team lookup: nothing, one team, or a ranked list.
type Match struct {
	Kind  MatchKind
	Teams []Team
}

func NotFound() Match {
	return Match{Kind: MatchNotFound}
}

func Single(t Team) Match {
	return Match{Kind: MatchSingle, Teams: []Team{t}}
}

// Candidates collapses to Single or NotFound when the list has one or zero teams.
func Candidates(teams []Team) Match {
	switch len(teams) {
	case 0:
		return NotFound()
	case 1:
		return Single(teams[0])
	default:
		return Match{Kind: MatchCandidates, Teams: append([]Team(nil), teams...)}
	}
}

// Resolve normalizes the match to one team: Candidates yield the first entry.
func (m Match) Resolve() (Team, bool) {
	if m.Kind == MatchNotFound || len(m.Teams) == 0 {
		return Team{}, false
	}
	return m.Teams[0], true
}
