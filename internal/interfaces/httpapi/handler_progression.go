package httpapi

import (
	"net/http"

	"github.com/riskibarqy/championship-progression/internal/usecase"
)

// RunMatchProgression re-runs progression for one match and reports the
// outcome. A failed run is still a 200: the outcome carries the failure.
func (h *Handler) RunMatchProgression(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunMatchProgression")
	defer span.End()

	item, err := h.matchService.GetByID(ctx, pathValue(r, "matchID"))
	if err != nil {
		writeError(w, err)
		return
	}

	result := h.progressionService.Run(ctx, item.ID)
	h.logger.InfoContext(ctx, "manual progression finished",
		"match_id", result.MatchID,
		"championship_id", result.ChampionshipID,
		"outcome", result.Outcome,
	)
	writeSuccess(w, http.StatusOK, result)
}

func (h *Handler) RunReconcile(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunReconcile")
	defer span.End()

	var req reconcileRequest
	if err := h.decodeJSON(r, &req, true); err != nil {
		writeError(w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(w, err)
		return
	}

	result, err := h.reconcileService.Reconcile(ctx, usecase.ReconcileInput{
		ChampionshipIDs: req.ChampionshipIDs,
		MaxWorkers:      req.MaxWorkers,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "reconcile failed", "error", err)
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, result)
}
