package notify

import (
	"fmt"
	"strings"

	"CookieForge/internal/achievements"
	"CookieForge/internal/economy"
	"CookieForge/internal/format"
	"CookieForge/internal/model"
)

// FormatUnlock formats one achievement unlock announcement.
func FormatUnlock(a achievements.Achievement, durationSeconds int) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("🏆 %s %s — %s", a.Icon, a.Name, a.Description))
	if durationSeconds > 0 {
		b.WriteString(fmt.Sprintf(" (shown %ds)", durationSeconds))
	}
	return b.String()
}

// FormatStats formats the statistics screen.
func FormatStats(s economy.Stats) string {
	var b strings.Builder

	b.WriteString("📊 Statistics\n\n")
	b.WriteString(fmt.Sprintf("Cookies: %s (exactly %s)\n", format.FormatMagnitude(s.Balance), format.FormatExact(s.Balance)))
	b.WriteString(fmt.Sprintf("Lifetime total: %s\n", format.FormatMagnitude(s.LifetimeTotal)))
	b.WriteString(fmt.Sprintf("Peak held: %s\n", format.FormatMagnitude(s.PeakBalance)))
	b.WriteString(fmt.Sprintf("Production: %s/s\n", format.FormatMagnitude(s.ProductionRate)))
	b.WriteString(fmt.Sprintf("Per click: %s\n", format.FormatMagnitude(s.ClickPower)))
	b.WriteString(fmt.Sprintf("Clicks: %s\n", format.FormatExact(float64(s.ClickCount))))
	b.WriteString(fmt.Sprintf("Upgrades owned: %d\n", s.TotalUpgrades))
	b.WriteString(fmt.Sprintf("Playtime: %s\n", format.FormatDuration(s.Playtime)))
	b.WriteString(fmt.Sprintf("Prestige: level %d (x%.0f), next at %s\n",
		s.PrestigeLevel, s.PrestigeMultiplier, format.FormatMagnitude(s.NextPrestigeCost)))
	return b.String()
}

// FormatLeaderboard formats the rank-ordered leaderboard.
func FormatLeaderboard(entries []model.LeaderboardEntry) string {
	var b strings.Builder

	b.WriteString("🏅 Leaderboard\n\n")
	if len(entries) == 0 {
		b.WriteString("No players yet.\n")
		return b.String()
	}
	for _, e := range entries {
		marker := " "
		if e.IsCurrent {
			marker = "*"
		}
		b.WriteString(fmt.Sprintf("%s %d. %s — %s (%s/min)\n",
			marker, e.Position, e.Username,
			format.FormatMagnitude(e.LifetimeTotal), format.FormatMagnitude(e.PerMinute)))
	}
	return b.String()
}
