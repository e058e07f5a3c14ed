package recorder

import "CookieForge/internal/model"

// PurchaseEvent records one successful upgrade purchase.
type PurchaseEvent struct {
	UpgradeID    string
	CostPaid     float64
	OwnedAfter   int
	BalanceAfter float64
}

// PrestigeEvent records one completed prestige reset.
type PrestigeEvent struct {
	LevelAfter int
	CostPaid   float64
	Multiplier float64
}

// UnlockEvent records one achievement unlock.
type UnlockEvent struct {
	AchievementID string
	Category      string
}

// SessionEvent records a login or logout.
type SessionEvent struct {
	Username string
	Action   string // "LOGIN" or "LOGOUT"
}

// Recorder persists gameplay history for analysis. Callers treat every write
// as fire-and-forget: errors are logged at the call site, never propagated
// into the triggering game action.
type Recorder interface {
	RecordPurchase(evt *PurchaseEvent) error
	RecordPrestige(evt *PrestigeEvent) error
	RecordUnlock(evt *UnlockEvent) error
	RecordSession(evt *SessionEvent) error
	RecordLeaderboard(entries []model.LeaderboardEntry) error
	Close() error
}
