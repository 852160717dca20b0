package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, metricsHandler http.Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if metricsHandler != nil {
		mux.Handle("GET /metrics", metricsHandler)
	}
}

func registerStandingRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/standings/teams", handler.ListTeamStandings)
	mux.HandleFunc("GET /v1/standings/players", handler.ListPlayerStandings)
	mux.HandleFunc("GET /v1/standings/data-quality", handler.GetDataQualityReport)
}

func registerLeagueRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/teams", handler.ListTeams)
	mux.HandleFunc("GET /v1/players", handler.ListPlayers)
	mux.HandleFunc("GET /v1/matches", handler.ListMatches)
	mux.HandleFunc("GET /v1/matches/{matchID}/points", handler.GetMatchPoints)
	mux.HandleFunc("GET /v1/schedule/round-robin", handler.PreviewRoundRobin)
}
