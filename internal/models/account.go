package model

import (
	"time"
)

// Account is the dashboard-side identity record. DiscordID stays nil until
// the member links through the bot or the dashboard.
type Account struct {
	ID              string     `json:"id"`
	Email           string     `json:"email"`
	FullName        string     `json:"fullName,omitempty"`
	InstagramHandle string     `json:"instagramHandle,omitempty"`
	ContentFocus    []string   `json:"contentFocus,omitempty"`
	DiscordID       *string    `json:"discordId,omitempty"`
	DiscordUsername string     `json:"discordUsername,omitempty"`
	DiscordLinkedAt *time.Time `json:"discordLinkedAt,omitempty"`
	IsActive        bool       `json:"isActive"`
	CreatedAt       time.Time  `json:"createdAt,omitempty"`
	UpdatedAt       time.Time  `json:"updatedAt,omitempty"`
}

// Profile is an account joined with its point totals, the shape every
// command renders from. Both store paths must fill it identically.
type Profile struct {
	AccountID       string     `json:"accountId"`
	DiscordID       string     `json:"discordId"`
	DiscordUsername string     `json:"discordUsername,omitempty"`
	LinkedAt        *time.Time `json:"linkedAt,omitempty"`
	Email           string     `json:"email"`
	FullName        string     `json:"fullName,omitempty"`
	InstagramHandle string     `json:"instagramHandle,omitempty"`
	ContentFocus    []string   `json:"contentFocus,omitempty"`
	Points          PointsTotals
}
