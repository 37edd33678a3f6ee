package apifootball

type wireTeam struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Code    string `json:"code"`
	Country string `json:"country"`
	Founded *int   `json:"founded"`
	Logo    string `json:"logo"`
}

type wireVenue struct {
	ID   *int   `json:"id"`
	Name string `json:"name"`
	City string `json:"city"`
}

type wireLeague struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Type    string `json:"type"`
	Country string `json:"country"`
	Logo    string `json:"logo"`
	Flag    string `json:"flag"`
	Season  int    `json:"season"`
	Round   string `json:"round"`
}

type wireStandingsItem struct {
	League struct {
		wireLeague
		Standings [][]wireStandingRow `json:"standings"`
	} `json:"league"`
}

type wireStandingRow struct {
	Rank        int      `json:"rank"`
	Team        wireTeam `json:"team"`
	Points      int      `json:"points"`
	GoalsDiff   int      `json:"goalsDiff"`
	Group       string   `json:"group"`
	Form        string   `json:"form"`
	Status      string   `json:"status"`
	Description string   `json:"description"`
	All         struct {
		Played int `json:"played"`
		Win    int `json:"win"`
		Draw   int `json:"draw"`
		Lose   int `json:"lose"`
		Goals  struct {
			For     int `json:"for"`
			Against int `json:"against"`
		} `json:"goals"`
	} `json:"all"`
}

type wireSplit struct {
	Home  *int `json:"home"`
	Away  *int `json:"away"`
	Total *int `json:"total"`
}

type wireCardBucket struct {
	Total *int `json:"total"`
}

type wireTeamStatistics struct {
	League   wireLeague `json:"league"`
	Team     wireTeam   `json:"team"`
	Form     string     `json:"form"`
	Fixtures struct {
		Played wireSplit `json:"played"`
		Wins   wireSplit `json:"wins"`
		Draws  wireSplit `json:"draws"`
		Loses  wireSplit `json:"loses"`
	} `json:"fixtures"`
	Goals struct {
		For struct {
			Total wireSplit `json:"total"`
		} `json:"for"`
		Against struct {
			Total wireSplit `json:"total"`
		} `json:"against"`
	} `json:"goals"`
	CleanSheet    wireSplit `json:"clean_sheet"`
	FailedToScore wireSplit `json:"failed_to_score"`
	Cards         struct {
		Yellow map[string]wireCardBucket `json:"yellow"`
		Red    map[string]wireCardBucket `json:"red"`
	} `json:"cards"`
}

type wireFixtureItem struct {
	Fixture struct {
		ID     int       `json:"id"`
		Date   string    `json:"date"`
		Venue  wireVenue `json:"venue"`
		Status struct {
			Long    string `json:"long"`
			Short   string `json:"short"`
			Elapsed *int   `json:"elapsed"`
		} `json:"status"`
	} `json:"fixture"`
	League wireLeague `json:"league"`
	Teams  struct {
		Home wireTeam `json:"home"`
		Away wireTeam `json:"away"`
	} `json:"teams"`
	Goals struct {
		Home *int `json:"home"`
		Away *int `json:"away"`
	} `json:"goals"`
}

type wireLeagueItem struct {
	League  wireLeague `json:"league"`
	Country struct {
		Name string `json:"name"`
		Code string `json:"code"`
		Flag string `json:"flag"`
	} `json:"country"`
	Seasons []struct {
		Year    int  `json:"year"`
		Current bool `json:"current"`
	} `json:"seasons"`
}

type wireTeamItem struct {
	Team  wireTeam  `json:"team"`
	Venue wireVenue `json:"venue"`
}

type wireScorerItem struct {
	Player struct {
		ID          int    `json:"id"`
		Name        string `json:"name"`
		Nationality string `json:"nationality"`
		Photo       string `json:"photo"`
	} `json:"player"`
	Statistics []struct {
		Team  wireTeam `json:"team"`
		Games struct {
			// Upstream spells it this way.
			Appearances *int `json:"appearences"`
		} `json:"games"`
		Goals struct {
			Total   *int `json:"total"`
			Assists *int `json:"assists"`
		} `json:"goals"`
	} `json:"statistics"`
}
