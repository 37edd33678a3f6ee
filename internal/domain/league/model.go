package league

import "fmt"

// StandingZones holds the position thresholds used to tag table rows.
// ContinentalA/B are inclusive top positions, Relegation counts from the bottom.
type StandingZones struct {
	ContinentalA int
	ContinentalB int
	Relegation   int
}

func DefaultStandingZones() StandingZones {
	return StandingZones{ContinentalA: 4, ContinentalB: 6, Relegation: 2}
}

// League is one entry of the static registry the chat knows by name.
type League struct {
	ID      int
	Key     string
	Name    string
	Country string
	Emblem  string
	Flag    string
	Season  int
	Major   bool
	// Zones overrides the configured thresholds when set.
	Zones *StandingZones
}

func (l League) Validate() error {
	if l.ID <= 0 {
		return fmt.Errorf("league id must be > 0")
	}
	if l.Key == "" {
		return fmt.Errorf("league key is required")
	}
	if l.Name == "" {
		return fmt.Errorf("league name is required")
	}
	if l.Country == "" {
		return fmt.Errorf("league country is required")
	}
	return nil
}

func (l League) Ref() Ref {
	return Ref{ID: l.ID, Name: l.Name, Country: l.Country, Logo: l.Emblem, Flag: l.Flag, Season: l.Season}
}

// Ref points at a league from fixtures and tables.
type Ref struct {
	ID      int
	Name    string
	Country string
	Logo    string
	Flag    string
	Season  int
	Round   string
}

// Info is the looser league record returned by the upstream league listing.
type Info struct {
	ID            int
	Name          string
	Type          string
	Logo          string
	Country       string
	CountryCode   string
	Flag          string
	Seasons       []int
	CurrentSeason int
}

// Alias maps one spelling onto a league. Alias tables are ordered: the first
// alias found in the text wins, so specific spellings go before their substrings.
type Alias struct {
	Alias    string
	LeagueID int
}
