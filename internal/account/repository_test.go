package account

import (
	"testing"

	"CookieForge/internal/model"
	"CookieForge/internal/storage"
)

func TestLoginCreatesThenReuses(t *testing.T) {
	r := NewRepository(storage.NewMemoryStore())

	first, isNew := r.Login("alice")
	if !isNew {
		t.Fatal("expected new account on first login")
	}
	if first.Role != model.RolePlayer {
		t.Errorf("role = %s, want player", first.Role)
	}

	r.Logout()
	if _, ok := r.Current(); ok {
		t.Fatal("session survived logout")
	}

	second, isNew := r.Login("alice")
	if isNew {
		t.Fatal("expected existing account on second login")
	}
	if second.ID != first.ID {
		t.Errorf("login returned a different account: %s vs %s", second.ID, first.ID)
	}
}

func TestSyncEconomyRequiresSession(t *testing.T) {
	r := NewRepository(storage.NewMemoryStore())
	r.SyncEconomy(model.Snapshot{Balance: 10}) // must not panic

	r.Login("bob")
	r.SyncEconomy(model.Snapshot{
		Balance:       42.9,
		LifetimeTotal: 99.7,
		ClickCount:    7,
		Upgrades:      map[string]int{"pastry-robot": 2},
	})
	acct, _ := r.Current()
	if acct.Balance != 42 || acct.LifetimeTotal != 99 {
		t.Errorf("whole-currency fields not floored: %v / %v", acct.Balance, acct.LifetimeTotal)
	}
	if acct.Upgrades["pastry-robot"] != 2 {
		t.Errorf("upgrades not synced: %v", acct.Upgrades)
	}
}

func TestPersistenceRoundTripRevalidatesSession(t *testing.T) {
	st := storage.NewMemoryStore()
	r := NewRepository(st)
	acct, _ := r.Login("carol")
	r.SyncEconomy(model.Snapshot{LifetimeTotal: 500})

	reopened := NewRepository(st)
	if err := reopened.Load(); err != nil {
		t.Fatalf("load: %v", err)
	}
	cur, ok := reopened.Current()
	if !ok || cur.ID != acct.ID {
		t.Fatal("session not restored")
	}

	// Dangling current_user record: no session restored.
	st2 := storage.NewMemoryStore()
	blob, _, _ := st.Get("current_user")
	if err := st2.Set("current_user", blob); err != nil {
		t.Fatal(err)
	}
	orphaned := NewRepository(st2)
	if err := orphaned.Load(); err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, ok := orphaned.Current(); ok {
		t.Error("session restored for an id absent from users record")
	}
}

func seedPlayers(r *Repository) {
	for _, p := range []struct {
		name     string
		lifetime float64
		playtime float64
	}{
		{"p300", 300, 120},
		{"p100", 100, 60},
		{"p200", 200, 0},
	} {
		r.Login(p.name)
		r.SyncEconomy(model.Snapshot{LifetimeTotal: p.lifetime, Playtime: p.playtime})
		r.Logout()
	}
}

func TestLeaderboardOrderingAndDerivedRate(t *testing.T) {
	r := NewRepository(storage.NewMemoryStore())
	seedPlayers(r)
	r.CreateAdmin("root")

	lb := r.Leaderboard()
	if len(lb) != 3 {
		t.Fatalf("leaderboard size = %d, want 3 (admin excluded)", len(lb))
	}
	wantTotals := []float64{300, 200, 100}
	for i, want := range wantTotals {
		if lb[i].LifetimeTotal != want {
			t.Errorf("position %d lifetime = %v, want %v", i+1, lb[i].LifetimeTotal, want)
		}
		if lb[i].Position != i+1 {
			t.Errorf("position field = %d, want %d", lb[i].Position, i+1)
		}
	}
	// 300 over 2 minutes -> 150/min; zero playtime -> 0.
	if lb[0].PerMinute != 150 {
		t.Errorf("per-minute = %v, want 150", lb[0].PerMinute)
	}
	if lb[1].PerMinute != 0 {
		t.Errorf("per-minute with zero playtime = %v, want 0", lb[1].PerMinute)
	}
}

func TestCurrentStatsAndTopFlag(t *testing.T) {
	r := NewRepository(storage.NewMemoryStore())
	seedPlayers(r)

	r.Login("p200")
	stats := r.CurrentStats()
	if stats == nil || stats.Position != 2 {
		t.Fatalf("stats = %+v, want position 2", stats)
	}
	if r.IsCurrentTop() {
		t.Error("p200 is not rank 1")
	}

	r.Login("p300")
	if !r.IsCurrentTop() {
		t.Error("p300 should hold rank 1")
	}

	r.CreateAdmin("root")
	if r.CurrentStats() != nil {
		t.Error("admins have no leaderboard stats")
	}
}

func TestAdminOperationsRequireAdminRole(t *testing.T) {
	r := NewRepository(storage.NewMemoryStore())
	target, _ := r.Login("victim")
	r.Logout()
	r.Login("player")

	if r.AdminReset(target.ID) || r.AdminDelete(target.ID) || r.AdminResetAll() {
		t.Fatal("player session performed admin operations")
	}

	r.CreateAdmin("root")
	if !r.AdminUpdate(target.ID, func(a *model.Account) { a.Balance = 5 }) {
		t.Fatal("admin update refused")
	}
	if !r.AdminReset(target.ID) {
		t.Fatal("admin reset refused")
	}
	for _, a := range r.Accounts() {
		if a.ID == target.ID && a.Balance != 0 {
			t.Errorf("reset left balance %v", a.Balance)
		}
	}
	if !r.AdminDelete(target.ID) {
		t.Fatal("admin delete refused")
	}
}

func TestAdminCannotDeleteSelf(t *testing.T) {
	r := NewRepository(storage.NewMemoryStore())
	admin := r.CreateAdmin("root")
	if r.AdminDelete(admin.ID) {
		t.Fatal("admin deleted its own active account")
	}
}

func TestAdminResetAllKeepsOnlyActiveAdmin(t *testing.T) {
	r := NewRepository(storage.NewMemoryStore())
	seedPlayers(r)
	r.CreateAdmin("root")

	if !r.AdminResetAll() {
		t.Fatal("reset-all refused for admin")
	}
	accounts := r.Accounts()
	if len(accounts) != 1 || accounts[0].Username != "root" {
		t.Fatalf("accounts after reset-all = %+v", accounts)
	}
}

func TestSaveAchievementsOnActiveAccount(t *testing.T) {
	st := storage.NewMemoryStore()
	r := NewRepository(st)
	r.Login("dave")

	data := model.AchievementData{Unlocked: []string{"clicks-100"}, FirstPurchases: []string{"pastry-robot"}}
	if err := r.SaveAchievements(data); err != nil {
		t.Fatalf("save achievements: %v", err)
	}

	reopened := NewRepository(st)
	if err := reopened.Load(); err != nil {
		t.Fatal(err)
	}
	cur, _ := reopened.Current()
	if cur.Achievements == nil || len(cur.Achievements.Unlocked) != 1 {
		t.Fatalf("achievement data not persisted: %+v", cur.Achievements)
	}
}
