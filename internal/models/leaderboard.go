package model

import (
	"time"
)

// LeaderboardRow is one ranked entry from the backend, ordered by total
// points descending with account creation time breaking ties.
type LeaderboardRow struct {
	AccountID       string    `json:"accountId"`
	DiscordID       string    `json:"discordId"`
	DiscordUsername string    `json:"discordUsername,omitempty"`
	FullName        string    `json:"fullName,omitempty"`
	TotalPoints     int       `json:"totalPoints"`
	CreatedAt       time.Time `json:"createdAt,omitempty"`
}

// DisplayName prefers the Discord handle over the dashboard name.
func (r LeaderboardRow) DisplayName() string {
	if r.DiscordUsername != "" {
		return "@" + r.DiscordUsername
	}
	if r.FullName != "" {
		return r.FullName
	}
	return "Unknown"
}
