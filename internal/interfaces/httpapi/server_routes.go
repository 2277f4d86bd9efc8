package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerFPLRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /team", handler.GetTeamSummary)
	mux.HandleFunc("POST /league", handler.GetLeagueStandings)
}

func registerDraftRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /draft/squad", handler.GetDraftSquad)
	mux.HandleFunc("POST /draft/squad/pitch", handler.GetDraftPitch)
	mux.HandleFunc("POST /draft/test", handler.ProbeDraftEndpoints)
}
