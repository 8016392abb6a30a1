package leaderboard

import (
	"fmt"
	"strconv"
	"strings"

	model "github.com/rayaadinda/bot-discord/internal/models"
)

// titleMarker identifies the canonical summary message during the
// find-or-edit scan. Changing it orphans the previous message.
const titleMarker = "🏆 Crew Leaderboard"

func medal(position int) string {
	switch position {
	case 1:
		return "🥇"
	case 2:
		return "🥈"
	case 3:
		return "🥉"
	default:
		return "🏅"
	}
}

// render builds the full summary: ranked entries, aggregate statistics and
// the tier distribution over the fetched set.
func (s *Service) render(board []model.LeaderboardRow) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", titleMarker)
	fmt.Fprintf(&b, "Top %d anggota dengan poin terbanyak\n\n", len(board))

	b.WriteString("📊 **Peringkat**\n")
	for i, row := range board {
		fmt.Fprintf(&b, "%s **%d.** %s - %s poin %s\n",
			medal(i+1), i+1, row.DisplayName(),
			groupDigits(row.TotalPoints), s.tiers.Emoji(row.TotalPoints))
	}

	total := 0
	for _, row := range board {
		total += row.TotalPoints
	}
	mean := total / len(board)

	b.WriteString("\n📈 **Statistik**\n")
	fmt.Fprintf(&b, "Anggota terhubung: %d\n", len(board))
	fmt.Fprintf(&b, "Total poin: %s\n", groupDigits(total))
	fmt.Fprintf(&b, "Rata-rata poin: %s\n", groupDigits(mean))

	b.WriteString("\n🏅 **Tier Distribution**\n")
	counts := map[string]int{}
	order := []string{}
	for _, row := range board {
		name := s.tiers.Name(row.TotalPoints)
		if _, seen := counts[name]; !seen {
			order = append(order, name)
		}
		counts[name]++
	}
	for _, name := range order {
		fmt.Fprintf(&b, "%s: %d\n", name, counts[name])
	}

	b.WriteString("\n_Diperbarui setiap jam • Gunakan /link untuk tampil di sini!_")
	return b.String()
}

// renderEmpty is the placeholder published when no linked member exists yet.
func renderEmpty() string {
	return titleMarker + "\n" +
		"Belum ada anggota yang terhubung. Gunakan `/link` untuk " +
		"menghubungkan akunmu dan tampil di leaderboard! 🚀"
}

// groupDigits formats n with thousands separators (1500 -> "1.500").
func groupDigits(n int) string {
	s := strconv.Itoa(n)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}

	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)

	out := strings.Join(parts, ".")
	if neg {
		out = "-" + out
	}
	return out
}
