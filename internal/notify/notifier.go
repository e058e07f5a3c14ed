// Package notify announces gameplay events on the console. It is the only
// consumer of the options notification gates; the economy core never reads
// them directly.
package notify

import (
	"log"

	"CookieForge/internal/achievements"
)

// Gate is the read-only preference surface the notifier checks.
type Gate interface {
	AchievementNotificationsEnabled() bool
	NotificationDurationSeconds() int
}

// ConsoleNotifier writes unlock announcements to the process log.
type ConsoleNotifier struct {
	gate Gate
}

func NewConsoleNotifier(gate Gate) *ConsoleNotifier {
	return &ConsoleNotifier{gate: gate}
}

// AnnounceUnlock prints one unlock, unless notifications are disabled.
func (n *ConsoleNotifier) AnnounceUnlock(a achievements.Achievement) {
	if n.gate != nil && !n.gate.AchievementNotificationsEnabled() {
		return
	}
	duration := 0
	if n.gate != nil {
		duration = n.gate.NotificationDurationSeconds()
	}
	log.Printf("[INFO] %s", FormatUnlock(a, duration))
}
