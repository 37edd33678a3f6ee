package topscorers

// Scorer is one row of a league's scorer ranking.
type Scorer struct {
	Rank        int
	PlayerID    int
	PlayerName  string
	Nationality string
	Photo       string
	TeamID      int
	TeamName    string
	Goals       int
	Assists     *int
	Appearances *int
}
