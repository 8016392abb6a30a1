package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	model "github.com/rayaadinda/bot-discord/internal/models"
)

// ErrNotFound marks a valid negative result: the identity or profile simply
// does not exist. Callers must not treat it as a transport failure.
var ErrNotFound = errors.New("store: not found")

// DBTX is the subset of pgxpool.Pool the stores need. Tests substitute a
// fake; production passes the pool straight through.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// AwardRequest carries one points mutation. Amount may be zero or negative
// (corrections); Category is already resolved from the source tag.
type AwardRequest struct {
	AccountID    string
	DiscordID    string
	Amount       int
	Category     model.PointCategory
	ActivityType string
	Source       string
	Description  string
}

// Procedures is the operation surface that exists both as named atomic
// backend procedures and as manual table-level fallbacks. RPCStore and
// TableStore implement it against the same rows; Fallback composes them.
type Procedures interface {
	IsLinked(ctx context.Context, discordID string) (bool, error)
	ProfileByDiscordID(ctx context.Context, discordID string) (*model.Profile, error)
	LinkAccount(ctx context.Context, accountID, discordID, discordUsername string) error
	UnlinkAccount(ctx context.Context, discordID string) error
	AwardPoints(ctx context.Context, req AwardRequest) error
	Leaderboard(ctx context.Context, limit int) ([]model.LeaderboardRow, error)
}

// Store is the full backend boundary consumed by the services. It adds the
// operations that only exist as table reads (no procedure counterpart).
type Store interface {
	Procedures
	FindAccountByEmail(ctx context.Context, email string) (*model.Account, error)
	RecentActivity(ctx context.Context, discordID string, limit int) ([]model.ActivityEntry, error)
}

// IsNotFound reports whether err is the valid-negative sentinel, unwrapping
// pgx's own no-rows error for raw query paths.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, pgx.ErrNoRows)
}
