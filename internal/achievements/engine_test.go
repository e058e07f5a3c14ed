package achievements

import (
	"errors"
	"testing"

	"CookieForge/internal/model"
)

type captureSaver struct {
	calls int
	last  model.AchievementData
	err   error
}

func (c *captureSaver) SaveAchievements(data model.AchievementData) error {
	c.calls++
	c.last = data
	return c.err
}

func TestEvaluateUnlocksLifetimeMilestoneOnce(t *testing.T) {
	e := NewEngine(nil)
	snap := model.Snapshot{LifetimeTotal: 100_000}

	if n := e.Evaluate(snap); n != 1 {
		t.Fatalf("first evaluate unlocked %d, want 1", n)
	}
	if !e.IsUnlocked("lifetime-100k") {
		t.Fatal("lifetime-100k not unlocked")
	}
	if n := e.Evaluate(snap); n != 0 {
		t.Errorf("second evaluate unlocked %d, want 0", n)
	}

	queue := e.NewUnlocks()
	if len(queue) != 1 || queue[0].ID != "lifetime-100k" {
		t.Fatalf("new queue = %+v, want [lifetime-100k]", queue)
	}
	e.AcknowledgeNew()
	if len(e.NewUnlocks()) != 0 {
		t.Error("new queue not cleared by acknowledge")
	}
	if !e.IsUnlocked("lifetime-100k") {
		t.Error("acknowledge must not remove unlocks")
	}
}

func TestEvaluateNotifiesSaverOnUnlock(t *testing.T) {
	saver := &captureSaver{}
	e := NewEngine(saver)

	e.Evaluate(model.Snapshot{ClickCount: 150})
	if saver.calls != 1 {
		t.Fatalf("saver calls = %d, want 1", saver.calls)
	}
	if len(saver.last.Unlocked) != 1 || saver.last.Unlocked[0] != "clicks-100" {
		t.Errorf("persisted unlocks = %v", saver.last.Unlocked)
	}

	// No unlocks, no persistence.
	e.Evaluate(model.Snapshot{ClickCount: 150})
	if saver.calls != 1 {
		t.Errorf("saver calls after no-op evaluate = %d, want 1", saver.calls)
	}
}

func TestSaverFailureDoesNotBlockUnlocks(t *testing.T) {
	saver := &captureSaver{err: errors.New("disk full")}
	e := NewEngine(saver)

	if n := e.Evaluate(model.Snapshot{PrestigeLevel: 1}); n != 1 {
		t.Fatalf("unlocked %d, want 1", n)
	}
	if !e.IsUnlocked("first-prestige") {
		t.Error("unlock lost on saver failure")
	}
}

func TestRecordFirstPurchase(t *testing.T) {
	saver := &captureSaver{}
	e := NewEngine(saver)
	snap := model.Snapshot{}

	e.RecordFirstPurchase("pastry-robot", snap)
	if !e.IsUnlocked("first-pastry-robot") {
		t.Fatal("first-buy achievement not unlocked")
	}
	calls := saver.calls
	if calls == 0 {
		t.Fatal("expected persistence after first purchase")
	}

	// Already recorded: full no-op.
	e.RecordFirstPurchase("pastry-robot", snap)
	if saver.calls != calls {
		t.Errorf("saver calls = %d, want %d (no-op repeat)", saver.calls, calls)
	}
}

func TestLoadFromAccountReplacesState(t *testing.T) {
	e := NewEngine(nil)
	e.Evaluate(model.Snapshot{ClickCount: 200})

	e.LoadFromAccount(&model.AchievementData{
		Unlocked:       []string{"lifetime-1m"},
		FirstPurchases: []string{"sugar-lab"},
	})
	if e.IsUnlocked("clicks-100") {
		t.Error("previous session unlocks survived load")
	}
	if !e.IsUnlocked("lifetime-1m") {
		t.Error("stored unlock not loaded")
	}

	// First-purchase set drives predicates after load.
	if n := e.Evaluate(model.Snapshot{}); n != 1 {
		t.Fatalf("evaluate after load unlocked %d, want 1 (first-sugar-lab)", n)
	}

	// Brand-new account: both sets reset to empty.
	e.LoadFromAccount(nil)
	if len(e.Unlocked()) != 0 {
		t.Error("expected empty unlock set for new account")
	}
}

func TestTopRankedUnlock(t *testing.T) {
	e := NewEngine(nil)
	e.Evaluate(model.Snapshot{TopRanked: false})
	if e.IsUnlocked("leaderboard-top") {
		t.Fatal("unlocked without holding rank 1")
	}
	e.Evaluate(model.Snapshot{TopRanked: true})
	if !e.IsUnlocked("leaderboard-top") {
		t.Fatal("leaderboard-top not unlocked")
	}
}

func TestSecretHiddenUntilUnlocked(t *testing.T) {
	e := NewEngine(nil)
	for _, a := range e.Visible() {
		if a.ID == "leaderboard-top" {
			t.Fatal("secret achievement visible while locked")
		}
	}
	e.Evaluate(model.Snapshot{TopRanked: true})
	found := false
	for _, a := range e.Visible() {
		if a.ID == "leaderboard-top" {
			found = true
		}
	}
	if !found {
		t.Error("unlocked secret achievement should be visible")
	}
}
