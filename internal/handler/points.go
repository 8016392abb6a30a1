package handler

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/rayaadinda/bot-discord/internal/logger"
	"github.com/rayaadinda/bot-discord/internal/store"
)

func (h *Handler) handlePoint(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, discordID string) {
	profile, err := h.store.ProfileByDiscordID(ctx, discordID)
	if store.IsNotFound(err) {
		respond(s, i, "Profil tidak ditemukan. Gunakan /link untuk menghubungkan akunmu.", true)
		return
	}
	if err != nil {
		logger.Error("profile for %s: %v", discordID, err)
		respond(s, i, genericErrorReply, true)
		return
	}

	info := h.tiers.Classify(profile.Points.Total)

	var b strings.Builder
	fmt.Fprintf(&b, "💰 **Poin Kamu** %s\n", h.tiers.Emoji(profile.Points.Total))
	fmt.Fprintf(&b, "Total: **%d poin** (%s)\n\n", profile.Points.Total, info.Name)
	fmt.Fprintf(&b, "Submission: %d\n", profile.Points.Submission)
	fmt.Fprintf(&b, "Approval: %d\n", profile.Points.Approval)
	fmt.Fprintf(&b, "Engagement: %d\n", profile.Points.Engagement)
	fmt.Fprintf(&b, "Weekly Win: %d\n", profile.Points.WeeklyWin)

	if position, ok := h.ranks.RankOf(ctx, discordID); ok {
		fmt.Fprintf(&b, "\nPeringkat: **#%d**\n", position)
	} else {
		fmt.Fprintf(&b, "\nPeringkat: di luar top %d\n", h.cfg.RankWindow)
	}

	if entries := h.ledger.History(ctx, discordID, 3); len(entries) > 0 {
		b.WriteString("\n🕘 **Aktivitas terakhir**\n")
		for _, e := range entries {
			fmt.Fprintf(&b, "%+d poin — %s\n", e.PointsAwarded, e.ActivityType)
		}
	}

	respond(s, i, b.String(), true)
}

func (h *Handler) handleTierku(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, discordID string) {
	profile, err := h.store.ProfileByDiscordID(ctx, discordID)
	if store.IsNotFound(err) {
		respond(s, i, "Profil tidak ditemukan. Gunakan /link untuk menghubungkan akunmu.", true)
		return
	}
	if err != nil {
		logger.Error("profile for %s: %v", discordID, err)
		respond(s, i, genericErrorReply, true)
		return
	}

	info := h.tiers.Classify(profile.Points.Total)

	var b strings.Builder
	fmt.Fprintf(&b, "%s **Tier kamu: %s**\n", h.tiers.Emoji(profile.Points.Total), info.Name)
	fmt.Fprintf(&b, "Poin: %d • Progress: %.1f%%\n\n", info.CurrentPoints, info.Progress)
	b.WriteString("**Benefit:**\n")
	for _, benefit := range info.Benefits {
		fmt.Fprintf(&b, "• %s\n", benefit)
	}
	if info.Next != nil {
		fmt.Fprintf(&b, "\nButuh **%d poin** lagi untuk naik ke %s.", info.Next.PointsNeeded, info.Next.Name)
	}

	respond(s, i, b.String(), true)
}

func (h *Handler) handleUpgrade(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, discordID string) {
	profile, err := h.store.ProfileByDiscordID(ctx, discordID)
	if store.IsNotFound(err) {
		respond(s, i, "Profil tidak ditemukan. Gunakan /link untuk menghubungkan akunmu.", true)
		return
	}
	if err != nil {
		logger.Error("profile for %s: %v", discordID, err)
		respond(s, i, genericErrorReply, true)
		return
	}

	info := h.tiers.Classify(profile.Points.Total)
	if info.Next == nil {
		respond(s, i, fmt.Sprintf("🏆 Kamu sudah di tier tertinggi (%s). Pertahankan!", info.Name), true)
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🚀 **Menuju %s**\n", info.Next.Name)
	fmt.Fprintf(&b, "Kamu butuh **%d poin** lagi (sekarang %d).\n\n", info.Next.PointsNeeded, info.CurrentPoints)
	b.WriteString("**Yang kamu dapat:**\n")
	for _, benefit := range info.Next.Benefits {
		fmt.Fprintf(&b, "• %s\n", benefit)
	}
	b.WriteString("\nKumpulkan poin lewat submission konten, misi mingguan, dan aktivitas komunitas!")

	respond(s, i, b.String(), true)
}
