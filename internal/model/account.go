package model

import "time"

// Role controls which repository operations an account may perform.
type Role string

const (
	RolePlayer Role = "player"
	RoleAdmin  Role = "admin"
)

// AchievementData is the persisted achievement snapshot embedded in an account.
type AchievementData struct {
	Unlocked       []string `json:"unlocked"`
	FirstPurchases []string `json:"first_purchases"`
}

// Account is one known player, including the durable economic snapshot.
// The repository is the source of truth across sessions; the economy core
// loads from it at login and flushes back after every state-changing action.
type Account struct {
	ID                  string           `json:"id"`
	Username            string           `json:"username"`
	Role                Role             `json:"role"`
	Balance             float64          `json:"balance"`
	LifetimeTotal       float64          `json:"lifetime_total"`
	LifetimeForPrestige float64          `json:"lifetime_for_prestige"`
	PeakBalance         float64          `json:"peak_balance"`
	ClickCount          int64            `json:"click_count"`
	Playtime            float64          `json:"playtime_seconds"`
	PrestigeLevel       int              `json:"prestige_level"`
	Upgrades            map[string]int   `json:"upgrades"`
	Achievements        *AchievementData `json:"achievements,omitempty"`
	CreatedAt           time.Time        `json:"created_at"`
	LastLoginAt         time.Time        `json:"last_login_at"`
}

// LeaderboardEntry is one rank-ordered row of the derived leaderboard.
type LeaderboardEntry struct {
	Position      int
	Username      string
	LifetimeTotal float64
	PerMinute     float64
	IsCurrent     bool
}

// PlayerStats is the active player's own leaderboard standing.
type PlayerStats struct {
	Position  int
	PerMinute float64
}
