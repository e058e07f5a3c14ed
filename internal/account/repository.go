// Package account owns the durable player accounts, the active session and
// the derived leaderboard. It is the source of truth across sessions; the
// economy core flushes its snapshot here after every state-changing action.
package account

import (
	"encoding/json"
	"fmt"
	"log"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"CookieForge/internal/model"
	"CookieForge/internal/storage"
)

const (
	usersKey   = "users"
	currentKey = "current_user"
)

// Repository holds the known accounts and the active session.
type Repository struct {
	mu      sync.Mutex
	store   storage.Store
	users   []*model.Account
	current *model.Account
}

// NewRepository creates an empty repository over the given blob store.
func NewRepository(st storage.Store) *Repository {
	return &Repository{store: st}
}

// Load restores accounts and the active session from the blob store. The
// stored session is re-validated against the account list; a dangling id
// restores no session.
func (r *Repository) Load() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, ok, err := r.store.Get(usersKey)
	if err != nil {
		return fmt.Errorf("load users: %w", err)
	}
	if ok {
		var users []*model.Account
		if err := json.Unmarshal(data, &users); err != nil {
			return fmt.Errorf("parse users: %w", err)
		}
		r.users = users
	}

	data, ok, err = r.store.Get(currentKey)
	if err != nil {
		return fmt.Errorf("load current user: %w", err)
	}
	if ok {
		var saved model.Account
		if err := json.Unmarshal(data, &saved); err != nil {
			return fmt.Errorf("parse current user: %w", err)
		}
		r.current = r.findByIDLocked(saved.ID)
	}
	log.Printf("[INFO] account repository loaded: %d accounts", len(r.users))
	return nil
}

// Login activates the account with the given username, creating it with a
// default snapshot and player role when unknown. Returns the account and
// whether it was just created.
func (r *Repository) Login(username string) (model.Account, bool) {
	return r.login(username, model.RolePlayer)
}

// CreateAdmin creates (or activates) an admin account.
func (r *Repository) CreateAdmin(username string) model.Account {
	acct, _ := r.login(username, model.RoleAdmin)
	return acct
}

func (r *Repository) login(username string, role model.Role) (model.Account, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Username == username {
			u.LastLoginAt = time.Now()
			r.current = u
			r.persistLocked()
			return *u, false
		}
	}

	now := time.Now()
	acct := &model.Account{
		ID:          uuid.NewString(),
		Username:    username,
		Role:        role,
		Upgrades:    make(map[string]int),
		CreatedAt:   now,
		LastLoginAt: now,
	}
	r.users = append(r.users, acct)
	r.current = acct
	r.persistLocked()
	log.Printf("[INFO] account created: %s (%s)", username, role)
	return *acct, true
}

// Logout clears the active session. The account itself is kept.
func (r *Repository) Logout() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.current = nil
	if err := r.store.Delete(currentKey); err != nil {
		log.Printf("[WARN] clear session record: %v", err)
	}
}

// Current returns a copy of the active account, if any.
func (r *Repository) Current() (model.Account, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.current == nil {
		return model.Account{}, false
	}
	return *r.current, true
}

// SyncEconomy merges the economy snapshot into the active account and
// persists. No-op without an active session. Whole-currency fields are stored
// floored, matching the display precision of the durable record.
func (r *Repository) SyncEconomy(snap model.Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.current == nil {
		return
	}
	r.current.Balance = math.Floor(snap.Balance)
	r.current.LifetimeTotal = math.Floor(snap.LifetimeTotal)
	r.current.LifetimeForPrestige = math.Floor(snap.LifetimeForPrestige)
	r.current.PeakBalance = snap.PeakBalance
	r.current.ClickCount = snap.ClickCount
	r.current.Playtime = snap.Playtime
	r.current.PrestigeLevel = snap.PrestigeLevel
	upgrades := make(map[string]int, len(snap.Upgrades))
	for id, n := range snap.Upgrades {
		upgrades[id] = n
	}
	r.current.Upgrades = upgrades
	r.persistLocked()
}

// SaveAchievements stores the achievement snapshot on the active account.
// Implements the achievement engine's persistence hook.
func (r *Repository) SaveAchievements(data model.AchievementData) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.current == nil {
		return nil
	}
	r.current.Achievements = &data
	return r.savePersistentLocked()
}

// AdminUpdate applies an arbitrary change to any account. Admin session only.
func (r *Repository) AdminUpdate(id string, apply func(*model.Account)) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.isAdminLocked() {
		return false
	}
	acct := r.findByIDLocked(id)
	if acct == nil {
		return false
	}
	apply(acct)
	r.persistLocked()
	return true
}

// AdminReset zeroes an account's economic snapshot. Achievement data is kept,
// as with a prestige reset. Admin session only.
func (r *Repository) AdminReset(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.isAdminLocked() {
		return false
	}
	acct := r.findByIDLocked(id)
	if acct == nil {
		return false
	}
	acct.Balance = 0
	acct.LifetimeTotal = 0
	acct.LifetimeForPrestige = 0
	acct.PeakBalance = 0
	acct.ClickCount = 0
	acct.Playtime = 0
	acct.PrestigeLevel = 0
	acct.Upgrades = make(map[string]int)
	r.persistLocked()
	return true
}

// AdminDelete removes an account. Admin session only; the active account can
// never delete itself.
func (r *Repository) AdminDelete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.isAdminLocked() || id == r.current.ID {
		return false
	}
	kept := r.users[:0]
	found := false
	for _, u := range r.users {
		if u.ID == id {
			found = true
			continue
		}
		kept = append(kept, u)
	}
	if !found {
		return false
	}
	r.users = kept
	r.persistLocked()
	return true
}

// AdminResetAll collapses the account set down to the active admin account.
func (r *Repository) AdminResetAll() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.isAdminLocked() {
		return false
	}
	r.users = []*model.Account{r.current}
	r.persistLocked()
	return true
}

// Leaderboard ranks non-admin accounts by lifetime total, derives a
// per-minute rate and flags the active session's own entry.
func (r *Repository) Leaderboard() []model.LeaderboardEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.leaderboardLocked()
}

func (r *Repository) leaderboardLocked() []model.LeaderboardEntry {
	players := make([]*model.Account, 0, len(r.users))
	for _, u := range r.users {
		if u.Role != model.RoleAdmin {
			players = append(players, u)
		}
	}
	sort.SliceStable(players, func(i, j int) bool {
		return players[i].LifetimeTotal > players[j].LifetimeTotal
	})

	out := make([]model.LeaderboardEntry, len(players))
	for i, u := range players {
		perMinute := 0.0
		if u.Playtime > 0 {
			perMinute = u.LifetimeTotal / (u.Playtime / 60)
		}
		out[i] = model.LeaderboardEntry{
			Position:      i + 1,
			Username:      u.Username,
			LifetimeTotal: u.LifetimeTotal,
			PerMinute:     perMinute,
			IsCurrent:     r.current != nil && u.ID == r.current.ID,
		}
	}
	return out
}

// CurrentStats returns the active player's rank and per-minute rate. Nil for
// admins and logged-out sessions.
func (r *Repository) CurrentStats() *model.PlayerStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.current == nil || r.current.Role == model.RoleAdmin {
		return nil
	}
	stats := &model.PlayerStats{}
	for _, e := range r.leaderboardLocked() {
		if e.IsCurrent {
			stats.Position = e.Position
			stats.PerMinute = e.PerMinute
			break
		}
	}
	return stats
}

// IsCurrentTop reports whether the active player holds leaderboard rank 1.
func (r *Repository) IsCurrentTop() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.current == nil || r.current.Role == model.RoleAdmin {
		return false
	}
	lb := r.leaderboardLocked()
	return len(lb) > 0 && lb[0].IsCurrent
}

// Accounts returns a copy of every known account (admin screens).
func (r *Repository) Accounts() []model.Account {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]model.Account, len(r.users))
	for i, u := range r.users {
		out[i] = *u
	}
	return out
}

// Flush persists the current account set (autosave hook).
func (r *Repository) Flush() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.persistLocked()
}

func (r *Repository) isAdminLocked() bool {
	return r.current != nil && r.current.Role == model.RoleAdmin
}

func (r *Repository) findByIDLocked(id string) *model.Account {
	for _, u := range r.users {
		if u.ID == id {
			return u
		}
	}
	return nil
}

// persistLocked writes both records, logging failures. Durability is
// best-effort: in-memory state always wins.
func (r *Repository) persistLocked() {
	if err := r.savePersistentLocked(); err != nil {
		log.Printf("[ERROR] persist accounts: %v", err)
	}
}

func (r *Repository) savePersistentLocked() error {
	data, err := json.Marshal(r.users)
	if err != nil {
		return fmt.Errorf("marshal users: %w", err)
	}
	if err := r.store.Set(usersKey, data); err != nil {
		return fmt.Errorf("store users: %w", err)
	}
	if r.current != nil {
		data, err := json.Marshal(r.current)
		if err != nil {
			return fmt.Errorf("marshal current user: %w", err)
		}
		if err := r.store.Set(currentKey, data); err != nil {
			return fmt.Errorf("store current user: %w", err)
		}
	}
	return nil
}
