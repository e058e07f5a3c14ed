package options

import (
	"testing"

	"CookieForge/internal/storage"
)

func TestLoadWithoutSavedDataKeepsDefaults(t *testing.T) {
	s := NewStore(storage.NewMemoryStore())
	s.Load()
	if got := s.Current(); got != Defaults() {
		t.Errorf("expected defaults, got %+v", got)
	}
}

func TestUpdatePersistsAcrossLoad(t *testing.T) {
	st := storage.NewMemoryStore()
	s := NewStore(st)
	s.Update(func(o *Options) {
		o.AchievementNotifications = false
		o.NotificationDuration = 9
	})

	reopened := NewStore(st)
	reopened.Load()
	if reopened.AchievementNotificationsEnabled() {
		t.Error("expected notifications disabled after reload")
	}
	if got := reopened.NotificationDurationSeconds(); got != 9 {
		t.Errorf("notification duration = %d, want 9", got)
	}
}

func TestResetDefaults(t *testing.T) {
	s := NewStore(storage.NewMemoryStore())
	s.Update(func(o *Options) { o.SoundVolume = 0 })
	s.ResetDefaults()
	if got := s.Current().SoundVolume; got != 50 {
		t.Errorf("sound volume after reset = %d, want 50", got)
	}
}

func TestApplyHookRunsOnSave(t *testing.T) {
	s := NewStore(storage.NewMemoryStore())
	var seen []Options
	s.OnApply(func(o Options) { seen = append(seen, o) })

	s.Update(func(o *Options) { o.ReducedMotion = true })
	if len(seen) != 1 {
		t.Fatalf("expected 1 apply call, got %d", len(seen))
	}
	if !seen[0].ReducedMotion {
		t.Error("apply hook saw stale options")
	}
}
