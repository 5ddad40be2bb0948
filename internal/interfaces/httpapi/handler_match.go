package httpapi

import (
	"net/http"

	"github.com/riskibarqy/championship-progression/internal/usecase"
)

func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatch")
	defer span.End()

	item, err := h.matchService.GetByID(ctx, pathValue(r, "matchID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, toMatchDTO(item))
}

// UpdateMatchResult stores a score report. Progression runs before the
// response is written but its failures never change the response.
func (h *Handler) UpdateMatchResult(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateMatchResult")
	defer span.End()

	var req updateMatchResultRequest
	if err := h.decodeJSON(r, &req, false); err != nil {
		writeError(w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(w, err)
		return
	}

	input := usecase.UpdateMatchResultInput{
		MatchID:           pathValue(r, "matchID"),
		HomeScore:         req.HomeScore,
		AwayScore:         req.AwayScore,
		HomeShootoutScore: req.HomeShootoutScore,
		AwayShootoutScore: req.AwayShootoutScore,
		Status:            req.Status,
	}
	if req.Stats != nil {
		input.Stats = make([]usecase.PlayerStatInput, 0, len(req.Stats))
		for _, stat := range req.Stats {
			input.Stats = append(input.Stats, usecase.PlayerStatInput{
				PlayerID:    stat.PlayerID,
				Goals:       stat.Goals,
				Assists:     stat.Assists,
				YellowCards: stat.YellowCards,
				RedCards:    stat.RedCards,
			})
		}
	}

	updated, err := h.matchService.UpdateResult(ctx, input)
	if err != nil {
		h.logger.WarnContext(ctx, "update match result failed", "match_id", input.MatchID, "error", err)
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, toMatchDTO(updated))
}
