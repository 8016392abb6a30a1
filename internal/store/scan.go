package store

import (
	"database/sql"
	"time"

	"github.com/lib/pq"

	model "github.com/rayaadinda/bot-discord/internal/models"
)

// rowScanner is anything with a Scan method, so the same scanners serve
// pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// NullStringToString converts sql.NullString to string
func NullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

// NullStringToPointer converts sql.NullString to *string
func NullStringToPointer(ns sql.NullString) *string {
	if ns.Valid {
		return &ns.String
	}
	return nil
}

// NullTimeToPointer converts sql.NullTime to *time.Time
func NullTimeToPointer(nt sql.NullTime) *time.Time {
	if nt.Valid {
		return &nt.Time
	}
	return nil
}

// scanProfile scans the aggregated profile row shared by the procedure and
// the fallback join. Column order is part of the path-parity contract.
func scanProfile(s rowScanner) (*model.Profile, error) {
	var p model.Profile
	var username, fullName, instagram sql.NullString
	var linkedAt sql.NullTime
	var focus pq.StringArray

	err := s.Scan(
		&p.AccountID, &p.DiscordID, &username, &linkedAt,
		&p.Email, &fullName, &instagram, &focus,
		&p.Points.Submission, &p.Points.Approval,
		&p.Points.Engagement, &p.Points.WeeklyWin, &p.Points.Total,
	)
	if err != nil {
		return nil, err
	}

	p.DiscordUsername = NullStringToString(username)
	p.FullName = NullStringToString(fullName)
	p.InstagramHandle = NullStringToString(instagram)
	p.LinkedAt = NullTimeToPointer(linkedAt)
	p.ContentFocus = []string(focus)

	return &p, nil
}

// scanLeaderboardRow scans one ranked row.
func scanLeaderboardRow(s rowScanner) (*model.LeaderboardRow, error) {
	var row model.LeaderboardRow
	var username, fullName sql.NullString

	err := s.Scan(
		&row.AccountID, &row.DiscordID, &username, &fullName,
		&row.TotalPoints, &row.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	row.DiscordUsername = NullStringToString(username)
	row.FullName = NullStringToString(fullName)

	return &row, nil
}

// scanAccount scans a user_accounts row.
func scanAccount(s rowScanner) (*model.Account, error) {
	var a model.Account
	var fullName, instagram, discordID, username sql.NullString
	var linkedAt sql.NullTime
	var focus pq.StringArray

	err := s.Scan(
		&a.ID, &a.Email, &fullName, &instagram, &focus,
		&discordID, &username, &linkedAt,
		&a.IsActive, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	a.FullName = NullStringToString(fullName)
	a.InstagramHandle = NullStringToString(instagram)
	a.ContentFocus = []string(focus)
	a.DiscordID = NullStringToPointer(discordID)
	a.DiscordUsername = NullStringToString(username)
	a.DiscordLinkedAt = NullTimeToPointer(linkedAt)

	return &a, nil
}

// scanActivity scans a discord_activities row.
func scanActivity(s rowScanner) (*model.ActivityEntry, error) {
	var e model.ActivityEntry
	var accountID, discordID sql.NullString

	err := s.Scan(
		&e.ID, &accountID, &discordID, &e.ActivityType,
		&e.ActivityData, &e.PointsAwarded, &e.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	e.AccountID = NullStringToString(accountID)
	e.DiscordID = NullStringToString(discordID)

	return &e, nil
}
