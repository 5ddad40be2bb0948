package httpapi

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/championship-progression/internal/infrastructure/repository/memory"
	idgen "github.com/riskibarqy/championship-progression/internal/platform/id"
	"github.com/riskibarqy/championship-progression/internal/platform/logging"
	"github.com/riskibarqy/championship-progression/internal/usecase"
	"github.com/stretchr/testify/require"
)

const testJobToken = "job-secret"

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	seed := memory.DemoSeed()
	championshipRepo := memory.NewChampionshipRepository(seed.Championships)
	teamRepo := memory.NewTeamRepository(seed.Teams)
	matchRepo := memory.NewMatchRepository(seed.Matches, seed.PlayerTeams)
	store := memory.NewProgressionStore(championshipRepo, matchRepo)
	logger := logging.NewNop()

	progressionSvc := usecase.NewProgressionService(matchRepo, store, idgen.NewSequenceGenerator("m"), logger)
	handler := NewHandler(
		usecase.NewChampionshipService(championshipRepo, matchRepo),
		usecase.NewStandingService(championshipRepo, matchRepo, teamRepo),
		usecase.NewMatchService(championshipRepo, matchRepo, progressionSvc, logger),
		progressionSvc,
		usecase.NewReconcileService(championshipRepo, matchRepo, progressionSvc, 2, logger),
		logger,
	)
	return NewRouter(handler, logger, nil, testJobToken)
}

func doRequest(t *testing.T, router http.Handler, method, path, body string, headers map[string]string) (*httptest.ResponseRecorder, googleResponseEnvelope) {
	t.Helper()

	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var envelope googleResponseEnvelope
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &envelope), "body=%s", rec.Body.String())
	return rec, envelope
}

func decodeData(t *testing.T, envelope googleResponseEnvelope, dst any) {
	t.Helper()

	raw, err := sonic.Marshal(envelope.Data)
	require.NoError(t, err)
	require.NoError(t, sonic.Unmarshal(raw, dst))
}

func TestRouter_Healthz(t *testing.T) {
	t.Parallel()

	rec, _ := doRequest(t, newTestRouter(t), http.MethodGet, "/healthz", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_GetChampionshipNotFound(t *testing.T) {
	t.Parallel()

	rec, envelope := doRequest(t, newTestRouter(t), http.MethodGet, "/v1/championships/unknown", "", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, envelope.Error)
	require.Equal(t, "NOT_FOUND", envelope.Error.Status)
}

func TestRouter_StandingsFromSeed(t *testing.T) {
	t.Parallel()

	rec, envelope := doRequest(t, newTestRouter(t), http.MethodGet, "/v1/championships/"+memory.ChampionshipIDCopaRoundRobin+"/standings", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var rows []standingDTO
	decodeData(t, envelope, &rows)
	require.Len(t, rows, 4)
	require.Equal(t, "liga-aguias", rows[0].TeamID)
	require.Equal(t, 3, rows[0].Points)
	require.Equal(t, "Aguias FC", rows[0].TeamName)
}

func TestRouter_UpdateResultValidation(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	tests := []struct {
		name string
		body string
		want int
	}{
		{name: "malformed json", body: `{"status":`, want: http.StatusBadRequest},
		{name: "unknown field", body: `{"status":"LIVE","minute":12}`, want: http.StatusBadRequest},
		{name: "unknown status", body: `{"status":"PAUSED"}`, want: http.StatusBadRequest},
		{name: "negative score", body: `{"status":"LIVE","home_score":-1,"away_score":0}`, want: http.StatusBadRequest},
		{name: "completed without score", body: `{"status":"COMPLETED"}`, want: http.StatusBadRequest},
		{name: "unknown player", body: `{"status":"LIVE","home_score":0,"away_score":0,"stats":[{"player_id":"ghost"}]}`, want: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, _ := doRequest(t, router, http.MethodPut, "/v1/matches/liga-r2-m1/result", tt.body, nil)
			require.Equal(t, tt.want, rec.Code, "body=%s", rec.Body.String())
		})
	}
}

func TestRouter_KnockoutResultsSeedFinal(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	rec, _ := doRequest(t, router, http.MethodPut, "/v1/matches/mata-semi-1/result",
		`{"status":"COMPLETED","home_score":3,"away_score":1,"stats":[{"player_id":"mata-raposas-9","goals":2,"yellow_cards":1}]}`, nil)
	require.Equal(t, http.StatusOK, rec.Code, "body=%s", rec.Body.String())

	rec, _ = doRequest(t, router, http.MethodPut, "/v1/matches/mata-semi-2/result",
		`{"status":"COMPLETED","home_score":1,"away_score":1,"home_shootout_score":4,"away_shootout_score":5}`, nil)
	require.Equal(t, http.StatusOK, rec.Code, "body=%s", rec.Body.String())

	rec, envelope := doRequest(t, router, http.MethodGet, "/v1/championships/"+memory.ChampionshipIDCopaKnockout+"/matches", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var matches []matchDTO
	decodeData(t, envelope, &matches)

	var finals []matchDTO
	for _, item := range matches {
		if item.Round == "Final" {
			finals = append(finals, item)
		}
	}
	require.Len(t, finals, 1)
	require.NotNil(t, finals[0].HomeTeamID)
	require.NotNil(t, finals[0].AwayTeamID)
	require.Equal(t, "mata-raposas", *finals[0].HomeTeamID)
	require.Equal(t, "mata-touros", *finals[0].AwayTeamID)
}

func TestRouter_InternalProgressionRequiresToken(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	rec, _ := doRequest(t, router, http.MethodPost, "/v1/internal/progression/matches/liga-r1-m1", "", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, envelope := doRequest(t, router, http.MethodPost, "/v1/internal/progression/matches/liga-r1-m1", "",
		map[string]string{internalJobTokenHeader: testJobToken})
	require.Equal(t, http.StatusOK, rec.Code, "body=%s", rec.Body.String())

	var result usecase.ProgressionResult
	decodeData(t, envelope, &result)
	require.Equal(t, usecase.ProgressionPending, result.Outcome)

	rec, _ = doRequest(t, router, http.MethodPost, "/v1/internal/progression/matches/missing", "",
		map[string]string{internalJobTokenHeader: testJobToken})
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_Reconcile(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	rec, envelope := doRequest(t, router, http.MethodPost, "/v1/internal/progression/reconcile", "",
		map[string]string{internalJobTokenHeader: testJobToken})
	require.Equal(t, http.StatusOK, rec.Code, "body=%s", rec.Body.String())

	var result usecase.ReconcileResult
	decodeData(t, envelope, &result)
	require.Equal(t, 2, result.ChampionshipCount)
	require.Zero(t, result.FailedCount)

	rec, _ = doRequest(t, router, http.MethodPost, "/v1/internal/progression/reconcile", `{"max_workers":0,"championship_ids":[""]}`,
		map[string]string{internalJobTokenHeader: testJobToken})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
