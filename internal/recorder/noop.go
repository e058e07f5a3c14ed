package recorder

import "CookieForge/internal/model"

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordPurchase(_ *PurchaseEvent) error                  { return nil }
func (n *NoopRecorder) RecordPrestige(_ *PrestigeEvent) error                  { return nil }
func (n *NoopRecorder) RecordUnlock(_ *UnlockEvent) error                      { return nil }
func (n *NoopRecorder) RecordSession(_ *SessionEvent) error                    { return nil }
func (n *NoopRecorder) RecordLeaderboard(_ []model.LeaderboardEntry) error     { return nil }
func (n *NoopRecorder) Close() error                                           { return nil }
