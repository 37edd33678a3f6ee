package httpapi

import (
	"net/http"

	"github.com/riskibarqy/football-chatbot/internal/metrics"
)

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, recorder *metrics.Recorder) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	mux.HandleFunc("GET /api/status", handler.GetStatus)
	if recorder != nil {
		mux.Handle("GET /metrics", recorder.Handler())
	}
}

func registerChatRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /api/chat", handler.Chat)
}

func registerFootballRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /api/leagues", handler.ListLeagues)
	mux.HandleFunc("GET /api/leagues/{country}", handler.ListLeaguesByCountry)
	mux.HandleFunc("GET /api/standings/{leagueID}", handler.GetStandings)
	mux.HandleFunc("GET /api/team/{teamID}/stats", handler.GetTeamStatistics)
	mux.HandleFunc("GET /api/team/{teamID}/matches", handler.ListTeamRecentMatches)
	mux.HandleFunc("GET /api/team/{teamID}/next", handler.ListTeamNextMatches)
	mux.HandleFunc("GET /api/h2h/{team1ID}/{team2ID}", handler.ListHeadToHead)
	mux.HandleFunc("GET /api/league/{leagueID}/teams", handler.ListLeagueTeams)
	mux.HandleFunc("GET /api/league/{leagueID}/topscorers", handler.ListTopScorers)
	mux.HandleFunc("GET /api/fixtures/live", handler.ListLiveFixtures)
	mux.HandleFunc("GET /api/fixtures/{date}", handler.ListFixturesByDate)
	mux.HandleFunc("GET /api/search/team/{name}", handler.SearchTeams)
	mux.HandleFunc("GET /api/popular-teams", handler.ListPopularTeams)
}

func registerCacheRoutes(mux *http.ServeMux, handler *Handler, adminToken string) {
	mux.HandleFunc("GET /api/cache/stats", handler.GetCacheStats)
	mux.Handle("POST /api/cache/clear", RequireAdminToken(adminToken, http.HandlerFunc(handler.ClearCache)))
	mux.Handle("POST /api/cache/warm", RequireAdminToken(adminToken, http.HandlerFunc(handler.WarmCache)))
}
