package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/championship-progression/internal/domain/championship"
	"github.com/riskibarqy/championship-progression/internal/domain/match"
	"github.com/riskibarqy/championship-progression/internal/platform/logging"
)

type progressionRunner interface {
	Run(ctx context.Context, matchID string) ProgressionResult
}

type ReconcileInput struct {
	// ChampionshipIDs defaults to every championship that is not completed.
	ChampionshipIDs []string
	MaxWorkers      int
}

type ReconcileResult struct {
	ChampionshipCount int                           `json:"championship_count"`
	SuccessCount      int                           `json:"success_count"`
	FailedCount       int                           `json:"failed_count"`
	SkippedCount      int                           `json:"skipped_count"`
	WorkerCount       int                           `json:"worker_count"`
	Championships     []ReconcileChampionshipResult `json:"championships"`
}

type ReconcileChampionshipResult struct {
	ChampionshipID string `json:"championship_id"`
	Status         string `json:"status"`
	Matches        int    `json:"matches"`
	Advanced       int    `json:"advanced"`
	Failed         int    `json:"failed"`
	Completed      bool   `json:"completed"`
	DurationMs     int64  `json:"duration_ms"`
	Message        string `json:"message,omitempty"`
}

const (
	reconcileStatusSuccess = "success"
	reconcileStatusFailed  = "failed"
	reconcileStatusSkipped = "skipped"
)

// ReconcileService replays progression over the completed matches of many
// championships. Championships run in parallel, matches of one championship
// run in creation order.
type ReconcileService struct {
	championshipRepo championship.Repository
	matchRepo        match.Repository
	progression      progressionRunner
	defaultWorkers   int
	logger           *logging.Logger
}

func NewReconcileService(
	championshipRepo championship.Repository,
	matchRepo match.Repository,
	progression progressionRunner,
	defaultWorkers int,
	logger *logging.Logger,
) *ReconcileService {
	if defaultWorkers < 1 {
		defaultWorkers = 1
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &ReconcileService{
		championshipRepo: championshipRepo,
		matchRepo:        matchRepo,
		progression:      progression,
		defaultWorkers:   defaultWorkers,
		logger:           logger,
	}
}

func (s *ReconcileService) Reconcile(ctx context.Context, input ReconcileInput) (ReconcileResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReconcileService.Reconcile")
	defer span.End()

	targets, err := s.resolveTargets(ctx, input.ChampionshipIDs)
	if err != nil {
		return ReconcileResult{}, err
	}

	workerCount := input.MaxWorkers
	if workerCount <= 0 {
		workerCount = s.defaultWorkers
	}
	if workerCount > len(targets) && len(targets) > 0 {
		workerCount = len(targets)
	}

	result := ReconcileResult{
		ChampionshipCount: len(targets),
		WorkerCount:       workerCount,
		Championships:     make([]ReconcileChampionshipResult, 0, len(targets)),
	}
	if len(targets) == 0 {
		return result, nil
	}

	rows := make(chan ReconcileChampionshipResult, len(targets))
	var successCount atomic.Int32
	var failedCount atomic.Int32
	var skippedCount atomic.Int32

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return ReconcileResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for _, championshipID := range targets {
		championshipID := championshipID
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			row := s.reconcileChampionship(ctx, championshipID)
			switch row.Status {
			case reconcileStatusSuccess:
				successCount.Add(1)
			case reconcileStatusSkipped:
				skippedCount.Add(1)
			default:
				failedCount.Add(1)
			}
			rows <- row
		}); err != nil {
			workers.Done()
			return ReconcileResult{}, fmt.Errorf("submit reconcile task to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(rows)

	for row := range rows {
		result.Championships = append(result.Championships, row)
	}
	sort.SliceStable(result.Championships, func(i, j int) bool {
		return result.Championships[i].ChampionshipID < result.Championships[j].ChampionshipID
	})

	result.SuccessCount = int(successCount.Load())
	result.FailedCount = int(failedCount.Load())
	result.SkippedCount = int(skippedCount.Load())

	s.logger.InfoContext(ctx, "progression reconcile finished",
		"championships", result.ChampionshipCount,
		"success", result.SuccessCount,
		"failed", result.FailedCount,
		"skipped", result.SkippedCount,
		"workers", result.WorkerCount,
	)
	return result, nil
}

// reconcileChampionship returns a named row; the deferred func stamps its
// duration on every path.
func (s *ReconcileService) reconcileChampionship(ctx context.Context, championshipID string) (row ReconcileChampionshipResult) {
	start := time.Now()
	row = ReconcileChampionshipResult{ChampionshipID: championshipID, Status: reconcileStatusSuccess}
	defer func() {
		row.DurationMs = time.Since(start).Milliseconds()
	}()

	item, exists, err := s.championshipRepo.GetByID(ctx, championshipID)
	if err != nil {
		row.Status = reconcileStatusFailed
		row.Message = fmt.Sprintf("get championship: %v", err)
		return row
	}
	if !exists {
		row.Status = reconcileStatusSkipped
		row.Message = "championship not found"
		return row
	}
	if item.IsCompleted() {
		row.Status = reconcileStatusSkipped
		row.Completed = true
		row.Message = "championship already completed"
		return row
	}

	matches, err := s.matchRepo.ListByChampionship(ctx, championshipID)
	if err != nil {
		row.Status = reconcileStatusFailed
		row.Message = fmt.Sprintf("list matches: %v", err)
		return row
	}

	for _, m := range matches {
		if !m.IsCompleted() {
			continue
		}
		if err := ctx.Err(); err != nil {
			row.Status = reconcileStatusFailed
			row.Message = err.Error()
			return row
		}

		row.Matches++
		out := s.progression.Run(ctx, m.ID)
		switch out.Outcome {
		case ProgressionAdvanced:
			row.Advanced++
		case ProgressionFailed:
			row.Failed++
			row.Message = out.Message
		}
		if out.ChampionshipCompleted {
			row.Completed = true
		}
	}

	if row.Failed > 0 {
		row.Status = reconcileStatusFailed
	}
	return row
}

func (s *ReconcileService) resolveTargets(ctx context.Context, raw []string) ([]string, error) {
	if len(raw) > 0 {
		seen := make(map[string]struct{}, len(raw))
		out := make([]string, 0, len(raw))
		for _, value := range raw {
			id := strings.TrimSpace(value)
			if id == "" {
				continue
			}
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, id)
		}
		if len(out) == 0 {
			return nil, fmt.Errorf("%w: championship ids are empty", ErrInvalidInput)
		}
		return out, nil
	}

	items, err := s.championshipRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list championships: %w", err)
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item.IsCompleted() {
			continue
		}
		out = append(out, item.ID)
	}
	return out, nil
}
