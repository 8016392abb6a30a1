package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// commandDefinitions is the slash-command surface registered on startup.
var commandDefinitions = []*discordgo.ApplicationCommand{
	{
		Name:        "link",
		Description: "Hubungkan akun dashboard dengan Discord",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "email",
				Description: "Email akun dashboard kamu",
				Required:    true,
			},
		},
	},
	{
		Name:        "unlink",
		Description: "Putuskan tautan akun Discord",
	},
	{
		Name:        "point",
		Description: "Lihat poin dan peringkat kamu",
	},
	{
		Name:        "tierku",
		Description: "Lihat tier dan progress kamu",
	},
	{
		Name:        "upgrade",
		Description: "Panduan naik ke tier berikutnya",
	},
	{
		Name:        "misi",
		Description: "Lihat cara mendapatkan poin",
	},
	{
		Name:        "leaderboard",
		Description: "Lihat top anggota komunitas",
	},
	{
		Name:        "status",
		Description: "Cek status akun kamu",
	},
	{
		Name:        "faq",
		Description: "Pertanyaan yang sering diajukan",
	},
}

// RegisterCommands overwrites the application's command set.
func (s *Session) RegisterCommands(guildID string) error {
	appID := s.SelfID()
	if appID == "" {
		return fmt.Errorf("register commands: session not ready")
	}

	_, err := s.dg.ApplicationCommandBulkOverwrite(appID, guildID, commandDefinitions)
	if err != nil {
		return fmt.Errorf("register commands: %w", err)
	}
	return nil
}
