package handler

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/rayaadinda/bot-discord/internal/access"
	"github.com/rayaadinda/bot-discord/internal/logger"
)

func (h *Handler) handleLeaderboard(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	board, err := h.store.Leaderboard(ctx, h.cfg.LeaderboardTopN)
	if err != nil {
		logger.Error("leaderboard fetch: %v", err)
		respond(s, i, genericErrorReply, true)
		return
	}

	if len(board) == 0 {
		respond(s, i, "Belum ada anggota yang terhubung. Jadilah yang pertama dengan /link!", false)
		return
	}

	var b strings.Builder
	b.WriteString("🏆 **Top Anggota**\n")
	for idx, row := range board {
		marker := "🏅"
		switch idx {
		case 0:
			marker = "🥇"
		case 1:
			marker = "🥈"
		case 2:
			marker = "🥉"
		}
		fmt.Fprintf(&b, "%s %d. %s — %d poin %s\n",
			marker, idx+1, row.DisplayName(), row.TotalPoints, h.tiers.Emoji(row.TotalPoints))
	}

	respond(s, i, b.String(), false)
}

func (h *Handler) handleMisi(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	var b strings.Builder
	b.WriteString("📋 **Cara mendapatkan poin**\n")
	fmt.Fprintf(&b, "• Submission konten: %d poin\n", h.cfg.PointsContentSubmission)
	fmt.Fprintf(&b, "• Check-in harian: %d poin\n", h.cfg.PointsDailyCheckin)
	fmt.Fprintf(&b, "• Bantu komunitas: %d poin\n", h.cfg.PointsCommunityHelp)
	fmt.Fprintf(&b, "• Referral: %d poin\n", h.cfg.PointsReferral)
	b.WriteString("\nPoin disetujui lewat dashboard dan masuk otomatis ke totalmu.")

	respond(s, i, b.String(), true)
}

func (h *Handler) handleFaq(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	var b strings.Builder
	b.WriteString("❓ **FAQ**\n\n")
	b.WriteString("**Bagaimana cara menghubungkan akun?**\n")
	b.WriteString("Gunakan `/link email:<email>` dengan email yang terdaftar di dashboard.\n\n")
	b.WriteString("**Dari mana poin berasal?**\n")
	b.WriteString("Submission konten, check-in harian, bantu komunitas, dan referral. Lihat /misi untuk detailnya.\n\n")
	b.WriteString("**Apa itu tier?**\n")
	fmt.Fprintf(&b, "Level keanggotaan berdasarkan total poin: %s. Cek posisimu dengan /tierku.\n", tierNames(h))

	respond(s, i, b.String(), true)
}

func tierNames(h *Handler) string {
	names := make([]string, len(h.cfg.Tiers))
	for idx, band := range h.cfg.Tiers {
		names[idx] = band.Name
	}
	return strings.Join(names, " → ")
}

func (h *Handler) handleStatus(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, discordID string) {
	level := h.gate.UserLevel(ctx, discordID)

	if level >= access.LevelLinked {
		respond(s, i,
			"✅ Akun kamu terhubung. Perintah yang tersedia: /point, /tierku, /upgrade, /misi, /unlink.",
			true)
		return
	}

	respond(s, i,
		"⚠ Akun kamu belum terhubung. Gunakan `/link email:<email>` untuk membuka semua fitur.",
		true)
}
