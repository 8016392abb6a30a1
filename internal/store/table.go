package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	model "github.com/rayaadinda/bot-discord/internal/models"
)

// categoryColumns maps a point category to its user_points column. Fixed
// whitelist; queries interpolate only values from this map.
var categoryColumns = map[model.PointCategory]string{
	model.CategorySubmission: "submission_points",
	model.CategoryApproval:   "approval_points",
	model.CategoryEngagement: "engagement_points",
	model.CategoryWeeklyWin:  "weekly_win_points",
}

// TableStore is the manual fallback path: the same operations as the backend
// procedures, rebuilt from raw table reads and writes with the scoped
// credential. Used when a procedure is missing or errors.
type TableStore struct {
	db DBTX
}

func NewTableStore(db DBTX) *TableStore {
	return &TableStore{db: db}
}

func (s *TableStore) IsLinked(ctx context.Context, discordID string) (bool, error) {
	var id string
	err := s.db.QueryRow(ctx,
		`SELECT id FROM user_accounts WHERE discord_id = $1 AND is_active`,
		discordID,
	).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("query user_accounts: %w", err)
	}
	return true, nil
}

func (s *TableStore) ProfileByDiscordID(ctx context.Context, discordID string) (*model.Profile, error) {
	// Unjoined account read plus a secondary totals read, assembled into
	// the exact shape the aggregated procedure returns.
	row := s.db.QueryRow(ctx,
		`SELECT id, discord_id, discord_username, discord_linked_at,
		        email, full_name, instagram_handle, content_focus,
		        0, 0, 0, 0, 0
		 FROM user_accounts
		 WHERE discord_id = $1 AND is_active`,
		discordID,
	)

	profile, err := scanProfile(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query user_accounts: %w", err)
	}

	err = s.db.QueryRow(ctx,
		`SELECT submission_points, approval_points, engagement_points,
		        weekly_win_points, total_points
		 FROM user_points
		 WHERE user_id = $1`,
		profile.AccountID,
	).Scan(
		&profile.Points.Submission, &profile.Points.Approval,
		&profile.Points.Engagement, &profile.Points.WeeklyWin,
		&profile.Points.Total,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		// Linked but never awarded: totals default to zero.
		return profile, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query user_points: %w", err)
	}
	return profile, nil
}

func (s *TableStore) LinkAccount(ctx context.Context, accountID, discordID, discordUsername string) error {
	tag, err := s.db.Exec(ctx,
		`UPDATE user_accounts
		 SET discord_id = $1, discord_username = $2,
		     discord_linked_at = now(), updated_at = now()
		 WHERE id = $3 AND is_active`,
		discordID, discordUsername, accountID,
	)
	if err != nil {
		return fmt.Errorf("update user_accounts: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return s.insertActivity(ctx, accountID, discordID, "account_linked",
		map[string]interface{}{"discord_username": discordUsername}, 0)
}

func (s *TableStore) UnlinkAccount(ctx context.Context, discordID string) error {
	var accountID string
	err := s.db.QueryRow(ctx,
		`UPDATE user_accounts
		 SET discord_id = NULL, discord_username = NULL,
		     discord_linked_at = NULL, updated_at = now()
		 WHERE discord_id = $1
		 RETURNING id`,
		discordID,
	).Scan(&accountID)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("update user_accounts: %w", err)
	}

	return s.insertActivity(ctx, accountID, discordID, "account_unlinked", nil, 0)
}

// AwardPoints is the documented non-transactional fallback: read the current
// totals, upsert-or-update the bumped category, then insert the activity
// entry. A crash after the totals write loses the audit row (accepted: the
// activity log is advisory); a crash before it leaves state untouched, so a
// retry cannot double-count. Concurrent writers can still race the
// read-then-write; only the procedure path closes that window.
func (s *TableStore) AwardPoints(ctx context.Context, req AwardRequest) error {
	column, ok := categoryColumns[req.Category]
	if !ok {
		return fmt.Errorf("unknown point category %q", req.Category)
	}

	var current model.PointsTotals
	exists := true
	err := s.db.QueryRow(ctx,
		`SELECT submission_points, approval_points, engagement_points,
		        weekly_win_points
		 FROM user_points
		 WHERE user_id = $1`,
		req.AccountID,
	).Scan(&current.Submission, &current.Approval, &current.Engagement, &current.WeeklyWin)
	if errors.Is(err, pgx.ErrNoRows) {
		exists = false
	} else if err != nil {
		return fmt.Errorf("read user_points: %w", err)
	}

	next := bump(current, req.Category, req.Amount)

	if !exists {
		tag, err := s.db.Exec(ctx,
			`INSERT INTO user_points
			   (user_id, submission_points, approval_points,
			    engagement_points, weekly_win_points, total_points, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6, now())
			 ON CONFLICT (user_id) DO NOTHING`,
			req.AccountID, next.Submission, next.Approval,
			next.Engagement, next.WeeklyWin, next.Total,
		)
		if err != nil {
			return fmt.Errorf("insert user_points: %w", err)
		}
		// Conflict means another writer created the row between our read
		// and the insert: re-read and retry as a plain update.
		if tag.RowsAffected() == 0 {
			err = s.db.QueryRow(ctx,
				`SELECT submission_points, approval_points, engagement_points,
				        weekly_win_points
				 FROM user_points
				 WHERE user_id = $1`,
				req.AccountID,
			).Scan(&current.Submission, &current.Approval, &current.Engagement, &current.WeeklyWin)
			if err != nil {
				return fmt.Errorf("re-read user_points: %w", err)
			}
			next = bump(current, req.Category, req.Amount)
			exists = true
		}
	}

	if exists {
		_, err := s.db.Exec(ctx,
			fmt.Sprintf(`UPDATE user_points
			 SET %s = $1, total_points = $2, updated_at = now()
			 WHERE user_id = $3`, column),
			categoryValue(next, req.Category), next.Total, req.AccountID,
		)
		if err != nil {
			return fmt.Errorf("update user_points: %w", err)
		}
	}

	return s.insertActivity(ctx, req.AccountID, req.DiscordID, req.ActivityType,
		map[string]interface{}{
			"source":      req.Source,
			"description": req.Description,
		}, req.Amount)
}

func (s *TableStore) Leaderboard(ctx context.Context, limit int) ([]model.LeaderboardRow, error) {
	// Ties break on account creation time so rank is stable across calls.
	rows, err := s.db.Query(ctx,
		`SELECT a.id, a.discord_id, a.discord_username, a.full_name,
		        p.total_points, a.created_at
		 FROM user_accounts a
		 INNER JOIN user_points p ON p.user_id = a.id
		 WHERE a.discord_id IS NOT NULL AND a.is_active
		 ORDER BY p.total_points DESC, a.created_at ASC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query leaderboard: %w", err)
	}
	defer rows.Close()

	var board []model.LeaderboardRow
	for rows.Next() {
		row, err := scanLeaderboardRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan leaderboard row: %w", err)
		}
		board = append(board, *row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query leaderboard: %w", err)
	}
	return board, nil
}

func (s *TableStore) FindAccountByEmail(ctx context.Context, email string) (*model.Account, error) {
	row := s.db.QueryRow(ctx,
		`SELECT id, email, full_name, instagram_handle, content_focus,
		        discord_id, discord_username, discord_linked_at,
		        is_active, created_at, updated_at
		 FROM user_accounts
		 WHERE lower(email) = lower($1) AND is_active`,
		email,
	)

	account, err := scanAccount(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query user_accounts: %w", err)
	}
	return account, nil
}

func (s *TableStore) RecentActivity(ctx context.Context, discordID string, limit int) ([]model.ActivityEntry, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, user_account_id, discord_id, activity_type,
		        activity_data, points_awarded, created_at
		 FROM discord_activities
		 WHERE discord_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2`,
		discordID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query discord_activities: %w", err)
	}
	defer rows.Close()

	var entries []model.ActivityEntry
	for rows.Next() {
		entry, err := scanActivity(rows)
		if err != nil {
			return nil, fmt.Errorf("scan activity row: %w", err)
		}
		entries = append(entries, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query discord_activities: %w", err)
	}
	return entries, nil
}

func (s *TableStore) insertActivity(ctx context.Context, accountID, discordID, activityType string, data map[string]interface{}, points int) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal activity data: %w", err)
	}

	_, err = s.db.Exec(ctx,
		`INSERT INTO discord_activities
		   (id, user_account_id, discord_id, activity_type, activity_data,
		    points_awarded, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, now())`,
		uuid.NewString(), accountID, discordID, activityType, payload, points,
	)
	if err != nil {
		return fmt.Errorf("insert discord_activities: %w", err)
	}
	return nil
}

// bump applies amount to one category and reconciles the total. Categories
// are clamped at zero so corrections can never drive the ledger negative.
func bump(current model.PointsTotals, category model.PointCategory, amount int) model.PointsTotals {
	next := current
	switch category {
	case model.CategorySubmission:
		next.Submission = clampZero(next.Submission + amount)
	case model.CategoryApproval:
		next.Approval = clampZero(next.Approval + amount)
	case model.CategoryWeeklyWin:
		next.WeeklyWin = clampZero(next.WeeklyWin + amount)
	default:
		next.Engagement = clampZero(next.Engagement + amount)
	}
	next.Total = next.Sum()
	return next
}

func categoryValue(totals model.PointsTotals, category model.PointCategory) int {
	switch category {
	case model.CategorySubmission:
		return totals.Submission
	case model.CategoryApproval:
		return totals.Approval
	case model.CategoryWeeklyWin:
		return totals.WeeklyWin
	default:
		return totals.Engagement
	}
}

func clampZero(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
