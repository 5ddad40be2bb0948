package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/championships", handler.ListChampionships)
	mux.HandleFunc("GET /v1/championships/{championshipID}", handler.GetChampionship)
	mux.HandleFunc("GET /v1/championships/{championshipID}/matches", handler.ListChampionshipMatches)
	mux.HandleFunc("GET /v1/championships/{championshipID}/standings", handler.ListChampionshipStandings)
	mux.HandleFunc("GET /v1/matches/{matchID}", handler.GetMatch)
	mux.HandleFunc("PUT /v1/matches/{matchID}/result", handler.UpdateMatchResult)
}

func registerInternalRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/progression/matches/{matchID}", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunMatchProgression)))
	mux.Handle("POST /v1/internal/progression/reconcile", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunReconcile)))
}
