// Package options holds the user-configurable game preferences. The economic
// core never mutates them; it only reads the notification gates.
package options

import (
	"encoding/json"
	"log"
	"sync"

	"CookieForge/internal/storage"
)

const storageKey = "options"

// Options is the full preference set.
type Options struct {
	SoundEnabled bool `json:"sound_enabled"`
	SoundVolume  int  `json:"sound_volume"` // 0-100

	AnimationsEnabled bool `json:"animations_enabled"`
	ParticlesEnabled  bool `json:"particles_enabled"`
	ReducedMotion     bool `json:"reduced_motion"`

	AchievementNotifications bool `json:"achievement_notifications"`
	NotificationDuration     int  `json:"notification_duration"` // seconds

	AutoSave          bool `json:"auto_save"`
	ShowDetailedStats bool `json:"show_detailed_stats"`
	ConfirmPrestige   bool `json:"confirm_prestige"`
}

// Defaults returns the out-of-the-box preference set.
func Defaults() Options {
	return Options{
		SoundEnabled:             true,
		SoundVolume:              50,
		AnimationsEnabled:        true,
		ParticlesEnabled:         true,
		ReducedMotion:            false,
		AchievementNotifications: true,
		NotificationDuration:     5,
		AutoSave:                 true,
		ShowDetailedStats:        false,
		ConfirmPrestige:          true,
	}
}

// Applier reacts to a saved preference change (renderer, sound layer, ...).
// Apply must not fail; side effects are the applier's own business.
type Applier func(Options)

// Store owns the live preference set and its persistence.
type Store struct {
	mu       sync.Mutex
	opts     Options
	store    storage.Store
	appliers []Applier
}

// NewStore creates a Store with defaults; call Load to pick up saved values.
func NewStore(st storage.Store) *Store {
	return &Store{opts: Defaults(), store: st}
}

// OnApply registers a hook invoked after every load and save.
func (s *Store) OnApply(fn Applier) {
	s.mu.Lock()
	s.appliers = append(s.appliers, fn)
	s.mu.Unlock()
}

// Load reads saved preferences, layering them over defaults. Missing or
// unreadable data leaves the defaults in place.
func (s *Store) Load() {
	s.mu.Lock()
	data, ok, err := s.store.Get(storageKey)
	if err != nil {
		log.Printf("[WARN] load options: %v", err)
	}
	if ok && err == nil {
		opts := Defaults()
		if err := json.Unmarshal(data, &opts); err != nil {
			log.Printf("[WARN] parse options: %v", err)
		} else {
			s.opts = opts
		}
	}
	opts := s.opts
	appliers := s.appliers
	s.mu.Unlock()

	for _, fn := range appliers {
		fn(opts)
	}
}

// Update applies a change to the preference set, persists it and runs the
// apply hooks.
func (s *Store) Update(change func(*Options)) {
	s.mu.Lock()
	change(&s.opts)
	s.mu.Unlock()
	s.Save()
}

// ResetDefaults restores the out-of-the-box preference set.
func (s *Store) ResetDefaults() {
	s.mu.Lock()
	s.opts = Defaults()
	s.mu.Unlock()
	s.Save()
}

// Save persists the current preference set and runs the apply hooks.
// Persistence failure is logged, never propagated.
func (s *Store) Save() {
	s.mu.Lock()
	data, err := json.Marshal(s.opts)
	if err == nil {
		err = s.store.Set(storageKey, data)
	}
	opts := s.opts
	appliers := s.appliers
	s.mu.Unlock()

	if err != nil {
		log.Printf("[WARN] save options: %v", err)
	}
	for _, fn := range appliers {
		fn(opts)
	}
}

// Current returns a copy of the live preference set.
func (s *Store) Current() Options {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.opts
}

// AchievementNotificationsEnabled is the gate the notifier checks before
// announcing unlocks.
func (s *Store) AchievementNotificationsEnabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.opts.AchievementNotifications
}

// NotificationDurationSeconds is how long an unlock announcement should stay up.
func (s *Store) NotificationDurationSeconds() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.opts.NotificationDuration
}
