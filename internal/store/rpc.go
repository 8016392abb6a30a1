package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	model "github.com/rayaadinda/bot-discord/internal/models"
)

// RPCStore reaches the backend exclusively through its named procedures.
// Each procedure is atomic on the backend side, which is why this path is
// preferred: add_user_points updates the totals and writes the activity row
// in one transaction.
type RPCStore struct {
	db DBTX
}

func NewRPCStore(db DBTX) *RPCStore {
	return &RPCStore{db: db}
}

func (s *RPCStore) IsLinked(ctx context.Context, discordID string) (bool, error) {
	var linked sql.NullBool
	err := s.db.QueryRow(ctx,
		`SELECT is_discord_user_linked($1)`,
		discordID,
	).Scan(&linked)
	if err != nil {
		return false, fmt.Errorf("is_discord_user_linked: %w", err)
	}
	return linked.Valid && linked.Bool, nil
}

func (s *RPCStore) ProfileByDiscordID(ctx context.Context, discordID string) (*model.Profile, error) {
	row := s.db.QueryRow(ctx,
		`SELECT account_id, discord_id, discord_username, discord_linked_at,
		        email, full_name, instagram_handle, content_focus,
		        submission_points, approval_points, engagement_points,
		        weekly_win_points, total_points
		 FROM get_user_by_discord($1)`,
		discordID,
	)

	profile, err := scanProfile(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get_user_by_discord: %w", err)
	}
	return profile, nil
}

func (s *RPCStore) LinkAccount(ctx context.Context, accountID, discordID, discordUsername string) error {
	var ok sql.NullBool
	err := s.db.QueryRow(ctx,
		`SELECT link_discord_account($1, $2, $3)`,
		accountID, discordID, discordUsername,
	).Scan(&ok)
	if err != nil {
		return fmt.Errorf("link_discord_account: %w", err)
	}
	if !ok.Valid || !ok.Bool {
		return ErrNotFound
	}
	return nil
}

func (s *RPCStore) UnlinkAccount(ctx context.Context, discordID string) error {
	var ok sql.NullBool
	err := s.db.QueryRow(ctx,
		`SELECT unlink_discord_account($1)`,
		discordID,
	).Scan(&ok)
	if err != nil {
		return fmt.Errorf("unlink_discord_account: %w", err)
	}
	if !ok.Valid || !ok.Bool {
		return ErrNotFound
	}
	return nil
}

func (s *RPCStore) AwardPoints(ctx context.Context, req AwardRequest) error {
	// The procedure bumps the category, reconciles the total and inserts
	// the activity row in one transaction.
	_, err := s.db.Exec(ctx,
		`SELECT add_user_points($1, $2, $3, $4, $5)`,
		req.AccountID, req.Amount, string(req.Category), req.Source, req.Description,
	)
	if err != nil {
		return fmt.Errorf("add_user_points: %w", err)
	}
	return nil
}

func (s *RPCStore) Leaderboard(ctx context.Context, limit int) ([]model.LeaderboardRow, error) {
	rows, err := s.db.Query(ctx,
		`SELECT account_id, discord_id, discord_username, full_name,
		        total_points, created_at
		 FROM get_discord_leaderboard($1)`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("get_discord_leaderboard: %w", err)
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
		return nil, fmt.Errorf("get_discord_leaderboard: %w", err)
	}
	return board, nil
}
