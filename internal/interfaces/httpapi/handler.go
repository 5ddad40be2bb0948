package httpapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"github.com/riskibarqy/championship-progression/internal/platform/logging"
	"github.com/riskibarqy/championship-progression/internal/usecase"
)

const maxRequestBodyBytes = 1 << 20

type Handler struct {
	championshipService *usecase.ChampionshipService
	standingService     *usecase.StandingService
	matchService        *usecase.MatchService
	progressionService  *usecase.ProgressionService
	reconcileService    *usecase.ReconcileService
	logger              *logging.Logger
	validator           *validator.Validate
}

func NewHandler(
	championshipService *usecase.ChampionshipService,
	standingService *usecase.StandingService,
	matchService *usecase.MatchService,
	progressionService *usecase.ProgressionService,
	reconcileService *usecase.ReconcileService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		championshipService: championshipService,
		standingService:     standingService,
		matchService:        matchService,
		progressionService:  progressionService,
		reconcileService:    reconcileService,
		logger:              logger,
		validator:           validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, _ *http.Request) {
	writeSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
}

// decodeJSON reads one JSON document and rejects unknown fields. An empty
// body leaves dst untouched when allowEmpty is set.
func (h *Handler) decodeJSON(r *http.Request, dst any, allowEmpty bool) error {
	decoder := jsoniter.NewDecoder(io.LimitReader(r.Body, maxRequestBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		if allowEmpty && err == io.EOF {
			return nil
		}
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

func pathValue(r *http.Request, name string) string {
	return strings.TrimSpace(r.PathValue(name))
}
