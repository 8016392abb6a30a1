package store

import (
	"context"

	"github.com/rayaadinda/bot-discord/internal/logger"
	model "github.com/rayaadinda/bot-discord/internal/models"
)

// Fallback tries the atomic procedure path first and degrades to the manual
// table path when the procedure fails or is unavailable. A clean NotFound
// from the primary is authoritative and never triggers the fallback: the
// rows the fallback would read are the same rows the procedure just missed.
type Fallback struct {
	primary   Procedures
	secondary *TableStore
}

func NewFallback(primary Procedures, secondary *TableStore) *Fallback {
	return &Fallback{primary: primary, secondary: secondary}
}

// New wires the production composition over one connection pool.
func New(db DBTX) *Fallback {
	return NewFallback(NewRPCStore(db), NewTableStore(db))
}

func (f *Fallback) IsLinked(ctx context.Context, discordID string) (bool, error) {
	linked, err := f.primary.IsLinked(ctx, discordID)
	if err == nil {
		return linked, nil
	}
	logger.Warning("is-linked procedure failed, using table fallback: %v", err)
	return f.secondary.IsLinked(ctx, discordID)
}

func (f *Fallback) ProfileByDiscordID(ctx context.Context, discordID string) (*model.Profile, error) {
	profile, err := f.primary.ProfileByDiscordID(ctx, discordID)
	if err == nil || IsNotFound(err) {
		return profile, err
	}
	logger.Warning("profile procedure failed, using table fallback: %v", err)
	return f.secondary.ProfileByDiscordID(ctx, discordID)
}

func (f *Fallback) LinkAccount(ctx context.Context, accountID, discordID, discordUsername string) error {
	err := f.primary.LinkAccount(ctx, accountID, discordID, discordUsername)
	if err == nil || IsNotFound(err) {
		return err
	}
	logger.Warning("link procedure failed, using table fallback: %v", err)
	return f.secondary.LinkAccount(ctx, accountID, discordID, discordUsername)
}

func (f *Fallback) UnlinkAccount(ctx context.Context, discordID string) error {
	err := f.primary.UnlinkAccount(ctx, discordID)
	if err == nil || IsNotFound(err) {
		return err
	}
	logger.Warning("unlink procedure failed, using table fallback: %v", err)
	return f.secondary.UnlinkAccount(ctx, discordID)
}

func (f *Fallback) AwardPoints(ctx context.Context, req AwardRequest) error {
	err := f.primary.AwardPoints(ctx, req)
	if err == nil {
		return nil
	}
	logger.Warning("award procedure failed, using table fallback: %v", err)
	return f.secondary.AwardPoints(ctx, req)
}

func (f *Fallback) Leaderboard(ctx context.Context, limit int) ([]model.LeaderboardRow, error) {
	board, err := f.primary.Leaderboard(ctx, limit)
	if err == nil {
		return board, nil
	}
	logger.Warning("leaderboard procedure failed, using table fallback: %v", err)
	return f.secondary.Leaderboard(ctx, limit)
}

// FindAccountByEmail has no procedure counterpart; it is always a table read.
func (f *Fallback) FindAccountByEmail(ctx context.Context, email string) (*model.Account, error) {
	return f.secondary.FindAccountByEmail(ctx, email)
}

// RecentActivity has no procedure counterpart; it is always a table read.
func (f *Fallback) RecentActivity(ctx context.Context, discordID string, limit int) ([]model.ActivityEntry, error) {
	return f.secondary.RecentActivity(ctx, discordID, limit)
}
