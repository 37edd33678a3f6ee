package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/riskibarqy/football-chatbot/internal/platform/resilience"
)

func (h *Handler) ListLeagues(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeagues")
	defer span.End()

	leagues, err := h.footballService.Leagues(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list leagues failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]leagueDTO, 0, len(leagues))
	for _, l := range leagues {
		items = append(items, leagueToDTO(l))
	}
	writeSuccess(ctx, w, http.StatusOK, map[string]any{
		"leagues":       items,
		"requests_used": h.requestsUsed(),
	})
}

func (h *Handler) ListLeaguesByCountry(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeaguesByCountry")
	defer span.End()

	country := strings.TrimSpace(r.PathValue("country"))
	leagues, err := h.footballService.LeaguesByCountry(ctx, country)
	if err != nil {
		h.logger.WarnContext(ctx, "list leagues by country failed", "country", country, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]leagueInfoDTO, 0, len(leagues))
	for _, l := range leagues {
		items = append(items, leagueInfoToDTO(l))
	}
	writeSuccess(ctx, w, http.StatusOK, map[string]any{
		"country":       country,
		"leagues":       items,
		"requests_used": h.requestsUsed(),
	})
}

func (h *Handler) GetStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStandings")
	defer span.End()

	leagueID, err := pathPositiveInt(r, "leagueID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	season, err := queryInt(r, "season", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	table, err := h.footballService.Standings(ctx, leagueID, season)
	if err != nil {
		h.logger.WarnContext(ctx, "get standings failed", "league_id", leagueID, "season", season, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]any{
		"league":        leagueRefToDTO(table.League),
		"standings":     standingRowsToDTO(table.Rows),
		"requests_used": h.requestsUsed(),
	})
}

func (h *Handler) GetTeamStatistics(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamStatistics")
	defer span.End()

	teamID, err := pathPositiveInt(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	leagueID, err := queryInt(r, "league", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	season, err := queryInt(r, "season", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	stats, err := h.footballService.TeamStatistics(ctx, teamID, leagueID, season)
	if err != nil {
		h.logger.WarnContext(ctx, "get team statistics failed", "team_id", teamID, "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]any{
		"statistics":    teamStatisticsToDTO(stats),
		"requests_used": h.requestsUsed(),
	})
}

func (h *Handler) ListTeamRecentMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamRecentMatches")
	defer span.End()

	teamID, err := pathPositiveInt(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	last, err := queryInt(r, "last", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	matches, err := h.footballService.RecentMatches(ctx, teamID, last)
	if err != nil {
		h.logger.WarnContext(ctx, "list recent matches failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]any{
		"matches":       fixturesToDTO(matches),
		"requests_used": h.requestsUsed(),
	})
}

func (h *Handler) ListTeamNextMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamNextMatches")
	defer span.End()

	teamID, err := pathPositiveInt(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	next, err := queryInt(r, "next", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	matches, err := h.footballService.NextMatches(ctx, teamID, next)
	if err != nil {
		h.logger.WarnContext(ctx, "list next matches failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]any{
		"matches":       fixturesToDTO(matches),
		"requests_used": h.requestsUsed(),
	})
}

func (h *Handler) ListHeadToHead(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListHeadToHead")
	defer span.End()

	team1ID, err := pathPositiveInt(r, "team1ID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	team2ID, err := pathPositiveInt(r, "team2ID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	last, err := queryInt(r, "last", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	matches, err := h.footballService.HeadToHead(ctx, team1ID, team2ID, last)
	if err != nil {
		h.logger.WarnContext(ctx, "list head to head failed", "team1_id", team1ID, "team2_id", team2ID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]any{
		"head_to_head":  fixturesToDTO(matches),
		"requests_used": h.requestsUsed(),
	})
}

func (h *Handler) ListLeagueTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeagueTeams")
	defer span.End()

	leagueID, err := pathPositiveInt(r, "leagueID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	season, err := queryInt(r, "season", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	teams, err := h.footballService.LeagueTeams(ctx, leagueID, season)
	if err != nil {
		h.logger.WarnContext(ctx, "list league teams failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]any{
		"teams":         teamsToDTO(teams),
		"requests_used": h.requestsUsed(),
	})
}

func (h *Handler) ListTopScorers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTopScorers")
	defer span.End()

	leagueID, err := pathPositiveInt(r, "leagueID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	season, err := queryInt(r, "season", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	scorers, err := h.footballService.TopScorers(ctx, leagueID, season)
	if err != nil {
		h.logger.WarnContext(ctx, "list top scorers failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]any{
		"top_scorers":   scorersToDTO(scorers),
		"requests_used": h.requestsUsed(),
	})
}

func (h *Handler) ListLiveFixtures(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLiveFixtures")
	defer span.End()

	leagueID, err := queryInt(r, "league", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	fixtures, err := h.footballService.LiveFixtures(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "list live fixtures failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]any{
		"live_fixtures": fixturesToDTO(fixtures),
		"requests_used": h.requestsUsed(),
	})
}

func (h *Handler) ListFixturesByDate(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFixturesByDate")
	defer span.End()

	date := strings.TrimSpace(r.PathValue("date"))
	leagueID, err := queryInt(r, "league", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	season, err := queryInt(r, "season", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	fixtures, err := h.footballService.FixturesByDate(ctx, date, leagueID, season)
	if err != nil {
		h.logger.WarnContext(ctx, "list fixtures by date failed", "date", date, "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]any{
		"date":          date,
		"fixtures":      fixturesToDTO(fixtures),
		"requests_used": h.requestsUsed(),
	})
}

func (h *Handler) SearchTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SearchTeams")
	defer span.End()

	name := strings.TrimSpace(r.PathValue("name"))
	teams, err := h.footballService.SearchTeams(ctx, name)
	if err != nil {
		h.logger.WarnContext(ctx, "search teams failed", "name", name, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]any{
		"search_term":   name,
		"results":       teamsToDTO(teams),
		"requests_used": h.requestsUsed(),
	})
}

type popularLeagueDTO struct {
	LeagueID int       `json:"league_id"`
	League   leagueDTO `json:"league_info"`
	Teams    []teamDTO `json:"teams"`
}

// ListPopularTeams serves one league when league or q is given, otherwise every
// registry league grouped by name. It never calls upstream.
func (h *Handler) ListPopularTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPopularTeams")
	defer span.End()

	leagueID, err := queryInt(r, "league", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	query := strings.TrimSpace(r.URL.Query().Get("q"))

	if leagueID > 0 || query != "" {
		teams, err := h.footballService.PopularTeams(ctx, leagueID, query)
		if err != nil {
			h.logger.WarnContext(ctx, "list popular teams failed", "league_id", leagueID, "error", err)
			writeError(ctx, w, err)
			return
		}
		writeSuccess(ctx, w, http.StatusOK, map[string]any{
			"league_id": leagueID,
			"query":     query,
			"teams":     teamsToDTO(teams),
		})
		return
	}

	leagues, err := h.footballService.Leagues(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list leagues failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	grouped := make(map[string]popularLeagueDTO, len(leagues))
	for _, l := range leagues {
		teams, err := h.footballService.PopularTeams(ctx, l.ID, "")
		if err != nil {
			h.logger.WarnContext(ctx, "list popular teams failed", "league_id", l.ID, "error", err)
			writeError(ctx, w, err)
			return
		}
		if len(teams) == 0 {
			continue
		}
		grouped[l.Name] = popularLeagueDTO{LeagueID: l.ID, League: leagueToDTO(l), Teams: teamsToDTO(teams)}
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]any{"popular_teams": grouped})
}

type statusDTO struct {
	Status           string `json:"status"`
	RequestsUsed     int    `json:"requests_used"`
	RequestsLimit    int    `json:"requests_limit"`
	RequestsLeft     int    `json:"requests_remaining"`
	DataSourceState  string `json:"data_source_state"`
	CircuitState     string `json:"circuit_state,omitempty"`
	Backoffs         int    `json:"consecutive_backoffs"`
	WindowResetsAt   string `json:"window_resets_at,omitempty"`
	CacheEntries     int    `json:"cache_entries"`
	CacheActive      int    `json:"cache_active"`
	AvailableLeagues int    `json:"available_leagues"`
	Timestamp        string `json:"timestamp"`
}

func (h *Handler) GetStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStatus")
	defer span.End()

	status, err := h.footballService.Status(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "get status failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := statusDTO{
		Status:           "online",
		RequestsUsed:     status.DataSource.RequestsMade,
		RequestsLimit:    status.DataSource.RequestLimit,
		RequestsLeft:     status.DataSource.Remaining,
		DataSourceState:  status.DataSource.State,
		CircuitState:     status.DataSource.CircuitState,
		Backoffs:         status.DataSource.Backoffs,
		CacheEntries:     status.Cache.Total,
		CacheActive:      status.Cache.Active,
		AvailableLeagues: status.AvailableLeagues,
		Timestamp:        time.Now().UTC().Format(time.RFC3339),
	}
	if status.DataSource.State != "" && status.DataSource.State != string(resilience.HealthStateHealthy) {
		out.Status = status.DataSource.State
	}
	if !status.DataSource.WindowResetsAt.IsZero() {
		out.WindowResetsAt = status.DataSource.WindowResetsAt.UTC().Format(time.RFC3339)
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}
