package handler

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/rayaadinda/bot-discord/internal/logger"
	"github.com/rayaadinda/bot-discord/internal/points"
	"github.com/rayaadinda/bot-discord/internal/store"
)

func (h *Handler) handleLink(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, discordID string) {
	linked, err := h.store.IsLinked(ctx, discordID)
	if err != nil {
		logger.Error("link check for %s: %v", discordID, err)
	}
	if linked {
		respond(s, i, "Akun Discord kamu sudah terhubung. Gunakan /point untuk melihat poinmu.", true)
		return
	}

	email := stringOption(i, "email")
	if email == "" {
		respond(s, i, "Masukkan email akun dashboard kamu: `/link email:<email>`", true)
		return
	}

	account, err := h.store.FindAccountByEmail(ctx, email)
	if store.IsNotFound(err) {
		respond(s, i, "Email tidak ditemukan. Daftar dulu di dashboard, lalu coba lagi.", true)
		return
	}
	if err != nil {
		logger.Error("find account by email: %v", err)
		respond(s, i, genericErrorReply, true)
		return
	}
	if account.DiscordID != nil && *account.DiscordID != "" {
		respond(s, i, "Akun ini sudah terhubung dengan Discord lain. Hubungi admin jika ini keliru.", true)
		return
	}

	username := invokerName(i)
	if err := h.store.LinkAccount(ctx, account.ID, discordID, username); err != nil {
		logger.Error("link account %s to %s: %v", account.ID, discordID, err)
		respond(s, i, genericErrorReply, true)
		return
	}

	// Welcome bonus for linking. Award failure is not a link failure.
	bonus := h.cfg.PointsLinking
	if !h.ledger.Award(ctx, account.ID, discordID, bonus, points.SourceAccountLinking, "Discord account linked") {
		bonus = 0
	}

	reply := "✅ Akun berhasil terhubung!"
	if bonus > 0 {
		reply = fmt.Sprintf("✅ Akun berhasil terhubung! Kamu dapat bonus %d poin. 🎉", bonus)
	}
	respond(s, i, reply, true)
	logger.Success("Linked %s to account %s", discordID, account.ID)
}

func (h *Handler) handleUnlink(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, discordID string) {
	err := h.store.UnlinkAccount(ctx, discordID)
	if store.IsNotFound(err) {
		respond(s, i, "Tidak ada akun yang tertaut dengan Discord kamu.", true)
		return
	}
	if err != nil {
		logger.Error("unlink %s: %v", discordID, err)
		respond(s, i, genericErrorReply, true)
		return
	}

	respond(s, i, "Akun Discord kamu sudah diputuskan. Poinmu tetap tersimpan di dashboard.", true)
	logger.Info("Unlinked %s", discordID)
}
