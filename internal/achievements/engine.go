// Package achievements evaluates the static milestone catalog against economy
// snapshots and tracks the unlocked, new-notification and first-purchase sets.
package achievements

import (
	"log"
	"sort"
	"sync"

	"CookieForge/internal/model"
)

// Saver persists the unlock and first-purchase sets. The account repository
// implements it; persistence failures are the engine's to log, not to return.
type Saver interface {
	SaveAchievements(data model.AchievementData) error
}

// Engine evaluates the catalog and owns the unlock state.
type Engine struct {
	mu             sync.Mutex
	catalog        []Achievement
	unlocked       []string // append-only, insertion order
	unlockedSet    map[string]struct{}
	newQueue       []string
	firstPurchases map[string]struct{}
	saver          Saver
	onUnlock       func(Achievement)
}

// NewEngine creates an Engine over the full catalog. saver may be nil.
func NewEngine(saver Saver) *Engine {
	return &Engine{
		catalog:        Catalog,
		unlockedSet:    make(map[string]struct{}),
		firstPurchases: make(map[string]struct{}),
		saver:          saver,
	}
}

// OnUnlock registers a hook called once per new unlock (notifications,
// history recording). Must be set before the first Evaluate.
func (e *Engine) OnUnlock(fn func(Achievement)) {
	e.mu.Lock()
	e.onUnlock = fn
	e.mu.Unlock()
}

// Evaluate runs every still-locked predicate against the snapshot (augmented
// with the first-purchase set) and unlocks the ones that hold. Returns the
// number of new unlocks; if positive the updated sets are persisted.
func (e *Engine) Evaluate(snap model.Snapshot) int {
	e.mu.Lock()
	data := CheckData{Snapshot: snap, FirstPurchases: e.firstPurchases}

	var fresh []Achievement
	for _, a := range e.catalog {
		if _, done := e.unlockedSet[a.ID]; done {
			continue
		}
		if a.Condition(data) {
			e.unlockedSet[a.ID] = struct{}{}
			e.unlocked = append(e.unlocked, a.ID)
			e.newQueue = append(e.newQueue, a.ID)
			log.Printf("[INFO] achievement unlocked: %s", a.ID)
			fresh = append(fresh, a)
		}
	}
	hook := e.onUnlock
	e.mu.Unlock()

	if len(fresh) > 0 {
		e.persist()
		if hook != nil {
			for _, a := range fresh {
				hook(a)
			}
		}
	}
	return len(fresh)
}

// RecordFirstPurchase marks an upgrade as bought for the first time ever.
// No-op if already recorded; otherwise it re-evaluates and persists.
func (e *Engine) RecordFirstPurchase(upgradeID string, snap model.Snapshot) {
	e.mu.Lock()
	if _, ok := e.firstPurchases[upgradeID]; ok {
		e.mu.Unlock()
		return
	}
	e.firstPurchases[upgradeID] = struct{}{}
	e.mu.Unlock()

	e.Evaluate(snap)
	e.persist()
}

// AcknowledgeNew clears the transient notification queue. The unlocked set is
// untouched.
func (e *Engine) AcknowledgeNew() {
	e.mu.Lock()
	e.newQueue = nil
	e.mu.Unlock()
}

// LoadFromAccount replaces the unlock and first-purchase sets wholesale with
// the account's stored data, or resets both for a brand-new account.
func (e *Engine) LoadFromAccount(data *model.AchievementData) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.unlocked = nil
	e.unlockedSet = make(map[string]struct{})
	e.newQueue = nil
	e.firstPurchases = make(map[string]struct{})
	if data == nil {
		return
	}
	for _, id := range data.Unlocked {
		if _, ok := e.unlockedSet[id]; ok {
			continue
		}
		e.unlockedSet[id] = struct{}{}
		e.unlocked = append(e.unlocked, id)
	}
	for _, id := range data.FirstPurchases {
		e.firstPurchases[id] = struct{}{}
	}
}

// Export returns a persistable copy of the unlock and first-purchase sets.
func (e *Engine) Export() model.AchievementData {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.exportLocked()
}

func (e *Engine) exportLocked() model.AchievementData {
	data := model.AchievementData{
		Unlocked:       append([]string(nil), e.unlocked...),
		FirstPurchases: make([]string, 0, len(e.firstPurchases)),
	}
	for id := range e.firstPurchases {
		data.FirstPurchases = append(data.FirstPurchases, id)
	}
	sort.Strings(data.FirstPurchases)
	return data
}

func (e *Engine) persist() {
	if e.saver == nil {
		return
	}
	e.mu.Lock()
	data := e.exportLocked()
	e.mu.Unlock()

	if err := e.saver.SaveAchievements(data); err != nil {
		log.Printf("[WARN] persist achievements: %v", err)
	}
}

// Unlocked returns the unlocked ids in unlock order.
func (e *Engine) Unlocked() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]string(nil), e.unlocked...)
}

// IsUnlocked reports whether a single achievement is unlocked.
func (e *Engine) IsUnlocked(id string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	_, ok := e.unlockedSet[id]
	return ok
}

// NewUnlocks returns the catalog entries waiting in the notification queue.
func (e *Engine) NewUnlocks() []Achievement {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]Achievement, 0, len(e.newQueue))
	for _, id := range e.newQueue {
		if a, ok := e.byID(id); ok {
			out = append(out, a)
		}
	}
	return out
}

// Stats summarizes unlock progress.
type Stats struct {
	Total    int
	Unlocked int
	Progress int // percent, rounded
}

func (e *Engine) Progress() Stats {
	e.mu.Lock()
	defer e.mu.Unlock()

	total := len(e.catalog)
	n := len(e.unlocked)
	pct := 0
	if total > 0 {
		pct = int(float64(n)/float64(total)*100 + 0.5)
	}
	return Stats{Total: total, Unlocked: n, Progress: pct}
}

// Visible returns the catalog for display: secret entries are omitted until
// unlocked. They are always evaluated regardless.
func (e *Engine) Visible() []Achievement {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]Achievement, 0, len(e.catalog))
	for _, a := range e.catalog {
		if a.Secret {
			if _, ok := e.unlockedSet[a.ID]; !ok {
				continue
			}
		}
		out = append(out, a)
	}
	return out
}

// ByCategory groups the catalog for the achievements screen.
func (e *Engine) ByCategory() map[Category][]Achievement {
	out := make(map[Category][]Achievement)
	for _, a := range e.catalog {
		out[a.Category] = append(out[a.Category], a)
	}
	return out
}

func (e *Engine) byID(id string) (Achievement, bool) {
	for _, a := range e.catalog {
		if a.ID == id {
			return a, true
		}
	}
	return Achievement{}, false
}
