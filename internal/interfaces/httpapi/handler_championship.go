package httpapi

import (
	"net/http"
)

func (h *Handler) ListChampionships(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListChampionships")
	defer span.End()

	items, err := h.championshipService.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list championships failed", "error", err)
		writeError(w, err)
		return
	}

	out := make([]championshipDTO, 0, len(items))
	for _, item := range items {
		out = append(out, toChampionshipDTO(item))
	}
	writeSuccess(w, http.StatusOK, out)
}

func (h *Handler) GetChampionship(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetChampionship")
	defer span.End()

	item, err := h.championshipService.GetByID(ctx, pathValue(r, "championshipID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, toChampionshipDTO(item))
}

func (h *Handler) ListChampionshipMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListChampionshipMatches")
	defer span.End()

	items, err := h.championshipService.ListMatches(ctx, pathValue(r, "championshipID"))
	if err != nil {
		h.logger.WarnContext(ctx, "list championship matches failed", "error", err)
		writeError(w, err)
		return
	}

	out := make([]matchDTO, 0, len(items))
	for _, item := range items {
		out = append(out, toMatchDTO(item))
	}
	writeSuccess(w, http.StatusOK, out)
}

func (h *Handler) ListChampionshipStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListChampionshipStandings")
	defer span.End()

	items, err := h.standingService.ListByChampionship(ctx, pathValue(r, "championshipID"))
	if err != nil {
		h.logger.WarnContext(ctx, "list standings failed", "error", err)
		writeError(w, err)
		return
	}

	out := make([]standingDTO, 0, len(items))
	for _, item := range items {
		out = append(out, toStandingDTO(item))
	}
	writeSuccess(w, http.StatusOK, out)
}
