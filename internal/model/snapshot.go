package model

// Snapshot is a read-only copy of the economy core's live state, pushed to the
// achievement engine and account repository after mutations. Components never
// reach back into the core; they only see this value.
type Snapshot struct {
	Balance             float64
	LifetimeTotal       float64
	LifetimeForPrestige float64
	PeakBalance         float64
	ClickCount          int64
	Playtime            float64
	PrestigeLevel       int
	Upgrades            map[string]int

	// TopRanked is set by the orchestrator when the active player holds
	// leaderboard position 1. The repository never calls the engine itself.
	TopRanked bool
}
