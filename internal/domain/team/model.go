package team

import "fmt"

// Team is a club the chat can talk about. Static registry teams always carry the
// owning LeagueID; teams found through upstream search are Dynamic and have none.
type Team struct {
	ID       int
	Name     string
	Aliases  []string
	LeagueID int
	Country  string
	Venue    string
	Logo     string
	Founded  int
	Dynamic  bool
}

func (t Team) Validate() error {
	if t.ID <= 0 {
		return fmt.Errorf("team id must be > 0")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}
	if !t.Dynamic && t.LeagueID <= 0 {
		return fmt.Errorf("team %d: league id is required", t.ID)
	}
	return nil
}

func (t Team) Ref() Ref {
	return Ref{ID: t.ID, Name: t.Name, Logo: t.Logo}
}

// Ref is a team as it appears on one side of a fixture or a table row.
type Ref struct {
	ID   int
	Name string
	Logo string
}
