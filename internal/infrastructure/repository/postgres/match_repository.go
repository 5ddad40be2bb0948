package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/riskibarqy/championship-progression/internal/domain/match"
	qb "github.com/riskibarqy/championship-progression/internal/platform/querybuilder"
)

const finalConflictTarget = "(championship_id, round) WHERE round = " + "'" + match.RoundFinal + "'"

type MatchRepository struct {
	db sqlx.ExtContext
}

// NewMatchRepository accepts a *sqlx.DB or a *sqlx.Tx.
func NewMatchRepository(db sqlx.ExtContext) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID string) (match.Match, bool, error) {
	query, args, err := qb.Select(matchColumns...).From("matches").
		Where(qb.Eq("id", matchID)).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build select match query: %w", err)
	}

	var row matchTableModel
	if err := sqlx.GetContext(ctx, r.db, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("get match by id: %w", err)
	}
	return matchFromRow(row), true, nil
}

func (r *MatchRepository) ListByChampionship(ctx context.Context, championshipID string) ([]match.Match, error) {
	return r.list(ctx, "select matches by championship", qb.Eq("championship_id", championshipID))
}

func (r *MatchRepository) ListByRound(ctx context.Context, championshipID, round string) ([]match.Match, error) {
	return r.list(ctx, "select matches by round",
		qb.Eq("championship_id", championshipID),
		qb.Eq("round", round),
	)
}

func (r *MatchRepository) Count(ctx context.Context, championshipID string, filter match.Filter) (int, error) {
	conditions := []qb.Condition{qb.Eq("championship_id", championshipID)}
	if filter.RoundPrefix != "" {
		conditions = append(conditions, qb.HasPrefix("round", filter.RoundPrefix))
	}
	if filter.ExcludeStatus != "" {
		conditions = append(conditions, qb.Ne("status", match.NormalizeStatus(filter.ExcludeStatus)))
	}

	query, args, err := qb.Select("COUNT(*)").From("matches").
		Where(conditions...).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count matches query: %w", err)
	}

	var total int
	if err := sqlx.GetContext(ctx, r.db, &total, query, args...); err != nil {
		return 0, fmt.Errorf("count matches: %w", err)
	}
	return total, nil
}

func (r *MatchRepository) ListResults(ctx context.Context, championshipID, roundPrefix string) ([]match.Result, error) {
	conditions := []qb.Condition{
		qb.Eq("championship_id", championshipID),
		qb.Eq("status", match.StatusCompleted),
	}
	if roundPrefix != "" {
		conditions = append(conditions, qb.HasPrefix("round", roundPrefix))
	}
	items, err := r.list(ctx, "select completed matches", conditions...)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return []match.Result{}, nil
	}

	matchIDs := make([]string, 0, len(items))
	for _, item := range items {
		matchIDs = append(matchIDs, item.ID)
	}

	query, args, err := qb.Select(
		"s.match_id",
		"s.player_id",
		"s.goals",
		"s.assists",
		"s.yellow_cards",
		"s.red_cards",
		"p.team_id",
	).
		From("player_match_stats s LEFT JOIN players p ON p.id = s.player_id").
		Where(qb.Expr("s.match_id = ANY(?)", pq.Array(matchIDs))).
		OrderBy("s.match_id", "s.player_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select match stats query: %w", err)
	}

	var rows []playerMatchStatRow
	if err := sqlx.SelectContext(ctx, r.db, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select match stats: %w", err)
	}

	statsByMatch := make(map[string][]match.PlayerStat, len(items))
	for _, row := range rows {
		statsByMatch[row.MatchID] = append(statsByMatch[row.MatchID], match.PlayerStat{
			MatchID:     row.MatchID,
			PlayerID:    row.PlayerID,
			TeamID:      nullStringToString(row.TeamID),
			Goals:       row.Goals,
			Assists:     row.Assists,
			YellowCards: row.YellowCards,
			RedCards:    row.RedCards,
		})
	}

	out := make([]match.Result, 0, len(items))
	for _, item := range items {
		out = append(out, match.Result{Match: item, Stats: statsByMatch[item.ID]})
	}
	return out, nil
}

func (r *MatchRepository) FindByRound(ctx context.Context, championshipID, round string, openSlotOnly bool) (match.Match, bool, error) {
	query, args, err := buildFindByRoundQuery(championshipID, round, openSlotOnly)
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build find match by round query: %w", err)
	}

	var row matchTableModel
	if err := sqlx.GetContext(ctx, r.db, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("find match by round: %w", err)
	}
	return matchFromRow(row), true, nil
}

// Create inserts a fixture. A second Final for the same championship is
// rejected by the partial unique index and reported as
// match.ErrRoundAlreadyExists.
func (r *MatchRepository) Create(ctx context.Context, item match.Match) (match.Match, error) {
	if strings.TrimSpace(item.ID) == "" {
		return match.Match{}, fmt.Errorf("match id is required")
	}

	query, args, err := buildCreateMatchQuery(item, time.Now().UTC())
	if err != nil {
		return match.Match{}, fmt.Errorf("build insert match query: %w", err)
	}

	var row matchTableModel
	if err := sqlx.GetContext(ctx, r.db, &row, query, args...); err != nil {
		return match.Match{}, createMatchError(item, err)
	}
	return matchFromRow(row), nil
}

func buildFindByRoundQuery(championshipID, round string, openSlotOnly bool) (string, []any, error) {
	conditions := []qb.Condition{
		qb.Eq("championship_id", championshipID),
		qb.Eq("round", round),
	}
	if openSlotOnly {
		conditions = append(conditions, qb.Or(qb.IsNull("home_team_id"), qb.IsNull("away_team_id")))
	}

	return qb.Select(matchColumns...).From("matches").
		Where(conditions...).
		OrderBy("created_at", "id").
		Limit(1).
		ToSQL()
}

// buildCreateMatchQuery inserts with DO NOTHING on the one-Final index, so a
// lost race returns no row instead of a second Final.
func buildCreateMatchQuery(item match.Match, now time.Time) (string, []any, error) {
	model := matchTableModel{
		ID:                item.ID,
		ChampionshipID:    item.ChampionshipID,
		Round:             item.Round,
		HomeTeamID:        stringToNullString(item.HomeTeamID),
		AwayTeamID:        stringToNullString(item.AwayTeamID),
		HomeScore:         intPtrToNullInt64(item.HomeScore),
		AwayScore:         intPtrToNullInt64(item.AwayScore),
		HomeShootoutScore: intPtrToNullInt64(item.HomeShootoutScore),
		AwayShootoutScore: intPtrToNullInt64(item.AwayShootoutScore),
		Status:            match.NormalizeStatus(item.Status),
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	builder, err := qb.InsertModel("matches", model)
	if err != nil {
		return "", nil, err
	}
	return builder.
		OnConflict(finalConflictTarget + " DO NOTHING").
		Returning(matchColumns...).
		ToSQL()
}

// createMatchError maps the empty RETURNING of a skipped insert, and a unique
// violation, to match.ErrRoundAlreadyExists.
func createMatchError(item match.Match, err error) error {
	if isNotFound(err) || isUniqueViolation(err) {
		return crerr.Wrapf(match.ErrRoundAlreadyExists, "create %s for championship %s", item.Round, item.ChampionshipID)
	}
	return fmt.Errorf("insert match: %w", err)
}

func (r *MatchRepository) UpdateSlots(ctx context.Context, matchID string, update match.SlotUpdate) error {
	if update.IsEmpty() {
		return nil
	}

	builder := qb.Update("matches")
	if update.HomeTeamID != nil {
		builder.Set("home_team_id", stringToNullString(*update.HomeTeamID))
	}
	if update.AwayTeamID != nil {
		builder.Set("away_team_id", stringToNullString(*update.AwayTeamID))
	}
	if update.Status != nil {
		builder.Set("status", match.NormalizeStatus(*update.Status))
	}
	query, args, err := builder.
		Set("updated_at", time.Now().UTC()).
		Where(qb.Eq("id", matchID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update match slots query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update match slots: %w", err)
	}
	return requireAffected(res, "match", matchID)
}

// UpdateResult writes scores and status, and replaces the match's player
// stats when update.Stats is non-nil, all in one transaction.
func (r *MatchRepository) UpdateResult(ctx context.Context, matchID string, update match.ResultUpdate) error {
	return withTx(ctx, r.db, func(tx sqlx.ExtContext) error {
		query, args, err := qb.Update("matches").
			Set("home_score", intPtrToNullInt64(update.HomeScore)).
			Set("away_score", intPtrToNullInt64(update.AwayScore)).
			Set("home_shootout_score", intPtrToNullInt64(update.HomeShootoutScore)).
			Set("away_shootout_score", intPtrToNullInt64(update.AwayShootoutScore)).
			Set("status", match.NormalizeStatus(update.Status)).
			Set("updated_at", time.Now().UTC()).
			Where(qb.Eq("id", matchID)).
			ToSQL()
		if err != nil {
			return fmt.Errorf("build update match result query: %w", err)
		}

		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("update match result: %w", err)
		}
		if err := requireAffected(res, "match", matchID); err != nil {
			return err
		}

		if update.Stats == nil {
			return nil
		}
		return replaceStats(ctx, tx, matchID, update.Stats)
	})
}

func replaceStats(ctx context.Context, tx sqlx.ExtContext, matchID string, stats []match.PlayerStat) error {
	query, args, err := qb.DeleteFrom("player_match_stats").
		Where(qb.Eq("match_id", matchID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete match stats query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete match stats: %w", err)
	}
	if len(stats) == 0 {
		return nil
	}

	insert := qb.InsertInto("player_match_stats").Columns(qb.Columns(playerMatchStatTableModel{})...)
	for _, stat := range stats {
		insert.Values(matchID, stat.PlayerID, stat.Goals, stat.Assists, stat.YellowCards, stat.RedCards)
	}
	query, args, err = insert.ToSQL()
	if err != nil {
		return fmt.Errorf("build insert match stats query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		if isForeignKeyViolation(err) {
			return crerr.Wrapf(match.ErrUnknownPlayer, "insert stats for match %s", matchID)
		}
		return fmt.Errorf("insert match stats: %w", err)
	}
	return nil
}

func (r *MatchRepository) list(ctx context.Context, op string, conditions ...qb.Condition) ([]match.Match, error) {
	query, args, err := qb.Select(matchColumns...).From("matches").
		Where(conditions...).
		OrderBy("created_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build %s query: %w", op, err)
	}

	var rows []matchTableModel
	if err := sqlx.SelectContext(ctx, r.db, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, matchFromRow(row))
	}
	return out, nil
}

func matchFromRow(row matchTableModel) match.Match {
	return match.Match{
		ID:                row.ID,
		ChampionshipID:    row.ChampionshipID,
		Round:             row.Round,
		HomeTeamID:        nullStringToString(row.HomeTeamID),
		AwayTeamID:        nullStringToString(row.AwayTeamID),
		HomeScore:         nullInt64ToIntPtr(row.HomeScore),
		AwayScore:         nullInt64ToIntPtr(row.AwayScore),
		HomeShootoutScore: nullInt64ToIntPtr(row.HomeShootoutScore),
		AwayShootoutScore: nullInt64ToIntPtr(row.AwayShootoutScore),
		Status:            match.NormalizeStatus(row.Status),
		CreatedAt:         row.CreatedAt,
		UpdatedAt:         row.UpdatedAt,
	}
}
