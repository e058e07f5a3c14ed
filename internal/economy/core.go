// Package economy owns the live currency, upgrade, prestige and click state,
// and drives the periodic production tick. It is the orchestrator: after
// relevant mutations it pushes a snapshot to the achievement engine and the
// account repository; neither ever reaches back into the core's state.
package economy

import (
	"log"
	"math"
	"sync"
	"time"

	"CookieForge/internal/format"
	"CookieForge/internal/model"
	"CookieForge/internal/recorder"
)

// AchievementSink is the slice of the achievement engine the core drives.
type AchievementSink interface {
	Evaluate(snap model.Snapshot) int
	RecordFirstPurchase(upgradeID string, snap model.Snapshot)
	LoadFromAccount(data *model.AchievementData)
}

// AccountSync is the slice of the account repository the core drives.
type AccountSync interface {
	SyncEconomy(snap model.Snapshot)
	IsCurrentTop() bool
}

// Upgrade is the mutable ownership record over a static catalog entry.
type Upgrade struct {
	Spec  UpgradeSpec
	Owned int
	Cost  float64 // always ceil(BaseCost * Growth^Owned)
}

// Core is the game economy state machine.
type Core struct {
	mu sync.Mutex

	balance             float64
	lifetimeTotal       float64
	lifetimeForPrestige float64
	peakBalance         float64
	clickCount          int64
	playtime            float64
	prestigeLevel       int

	productionRate float64 // derived, currency/second incl. prestige multiplier
	clickPower     float64 // derived

	upgrades []*Upgrade
	byID     map[string]*Upgrade

	engine   AchievementSink
	accounts AccountSync
	rec      recorder.Recorder

	tickInterval time.Duration
	subTicks     int
	lastTimeSync time.Time
	stopCh       chan struct{}
	doneCh       chan struct{}
	running      bool
}

// NewCore builds a Core over the static catalog. engine, accounts and rec may
// be nil; every cross-component call is best-effort.
func NewCore(engine AchievementSink, accounts AccountSync, rec recorder.Recorder) *Core {
	c := &Core{
		engine:       engine,
		accounts:     accounts,
		rec:          rec,
		tickInterval: 100 * time.Millisecond,
		byID:         make(map[string]*Upgrade, len(Catalog)),
	}
	for _, spec := range Catalog {
		u := &Upgrade{Spec: spec, Cost: spec.BaseCost}
		c.upgrades = append(c.upgrades, u)
		c.byID[spec.ID] = u
	}
	c.recomputeLocked()
	return c
}

// SetTickInterval overrides the 100ms production cadence (tests, replays).
// Must be called before StartProduction.
func (c *Core) SetTickInterval(d time.Duration) {
	c.mu.Lock()
	c.tickInterval = d
	c.mu.Unlock()
}

// AddCurrency credits earned currency. amount < 0 is ignored. Always
// succeeds; achievement evaluation and account sync ride along best-effort.
func (c *Core) AddCurrency(amount float64) {
	if amount < 0 {
		return
	}
	c.mu.Lock()
	c.addCurrencyLocked(amount)
	c.mu.Unlock()

	c.checkAchievements()
	c.syncAccount()
}

// addCurrencyLocked credits earned currency and tracks the peak; callers hold
// the mutex.
func (c *Core) addCurrencyLocked(amount float64) {
	c.balance += amount
	c.lifetimeTotal += amount
	c.lifetimeForPrestige += amount
	if c.balance > c.peakBalance {
		c.peakBalance = math.Floor(c.balance)
	}
}

// Click earns the current click power and counts the click. Credit and
// counter move in one critical section, so a concurrent production tick can
// never observe the balance without the click behind it. The extra
// click-counter scan runs only every 10th click; an unlock latency of up to
// 9 clicks is accepted.
func (c *Core) Click() {
	c.mu.Lock()
	c.addCurrencyLocked(c.clickPower)
	c.clickCount++
	tenth := c.clickCount%10 == 0
	c.mu.Unlock()

	c.checkAchievements()
	c.syncAccount()
	if tenth {
		c.checkAchievements()
	}
}

// AdvanceTime accrues playtime. When the floored playtime lands on a whole
// minute the catalog is scanned — once per call, no matter how large elapsed is.
func (c *Core) AdvanceTime(elapsed float64) {
	if elapsed < 0 {
		return
	}
	c.mu.Lock()
	c.playtime += elapsed
	scan := int64(math.Floor(c.playtime))%60 == 0
	c.mu.Unlock()

	if scan {
		c.checkAchievements()
	}
}

// PurchaseUpgrade buys one unit of an upgrade. Returns false, changing
// nothing, for an unknown id or insufficient balance.
func (c *Core) PurchaseUpgrade(id string) bool {
	c.mu.Lock()
	u, ok := c.byID[id]
	if !ok || c.balance < u.Cost {
		c.mu.Unlock()
		return false
	}
	paid := u.Cost
	c.balance -= paid
	u.Owned++
	u.Cost = math.Ceil(u.Spec.BaseCost * math.Pow(u.Spec.Growth, float64(u.Owned)))
	c.recomputeLocked()
	owned := u.Owned
	balance := c.balance
	c.mu.Unlock()

	if c.rec != nil {
		if err := c.rec.RecordPurchase(&recorder.PurchaseEvent{
			UpgradeID: id, CostPaid: paid, OwnedAfter: owned, BalanceAfter: balance,
		}); err != nil {
			log.Printf("[ERROR] record purchase: %v", err)
		}
	}
	if c.engine != nil {
		c.engine.RecordFirstPurchase(id, c.snapshot())
	}
	c.checkAchievements()
	c.syncAccount()
	return true
}

// ProductionRate is the derived total currency/second, prestige included.
func (c *Core) ProductionRate() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.productionRate
}

// ClickPower is the derived currency earned per click.
func (c *Core) ClickPower() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.clickPower
}

// PrestigeMultiplier maps a prestige level to its permanent bonus:
// 0→1, 1→2, 2→4, then 2^(level+1).
func PrestigeMultiplier(level int) float64 {
	switch {
	case level <= 0:
		return 1
	case level == 1:
		return 2
	case level == 2:
		return 4
	}
	return math.Pow(2, float64(level+1))
}

// PrestigeCost is the balance required to reach the next prestige level.
func (c *Core) PrestigeCost() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return prestigeCost(c.prestigeLevel)
}

func prestigeCost(level int) float64 {
	next := level + 1
	switch next {
	case 1:
		return 1e6
	case 2:
		return 1e9
	}
	return math.Pow(1000, float64(next+1))
}

// AttemptPrestige performs the reset-for-multiplier cycle. Fails without any
// state change when the balance is below the prestige cost. On success
// everything resets to baseline except the prestige level itself — and,
// crucially, the achievement unlock and first-purchase records, which live in
// the engine and are left alone.
func (c *Core) AttemptPrestige() bool {
	c.mu.Lock()
	cost := prestigeCost(c.prestigeLevel)
	if c.balance < cost {
		c.mu.Unlock()
		return false
	}
	c.prestigeLevel++
	c.balance = 0
	c.lifetimeTotal = 0
	c.lifetimeForPrestige = 0
	c.peakBalance = 0
	c.clickCount = 0
	c.playtime = 0
	for _, u := range c.upgrades {
		u.Owned = 0
		u.Cost = u.Spec.BaseCost
	}
	c.recomputeLocked()
	level := c.prestigeLevel
	c.mu.Unlock()

	log.Printf("[INFO] prestige reached: level %d (x%.0f)", level, PrestigeMultiplier(level))
	if c.rec != nil {
		if err := c.rec.RecordPrestige(&recorder.PrestigeEvent{
			LevelAfter: level, CostPaid: cost, Multiplier: PrestigeMultiplier(level),
		}); err != nil {
			log.Printf("[ERROR] record prestige: %v", err)
		}
	}
	c.syncAccount()
	return true
}

// Upgrades returns a copy of the current ownership records, catalog order.
func (c *Core) Upgrades() []Upgrade {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Upgrade, len(c.upgrades))
	for i, u := range c.upgrades {
		out[i] = *u
	}
	return out
}

// CanAfford reports whether the named upgrade is currently purchasable.
func (c *Core) CanAfford(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	u, ok := c.byID[id]
	return ok && c.balance >= u.Cost
}

// LoadFromAccount replaces the live state with the account's durable
// snapshot: upgrades reset to baseline first, then stored counts applied with
// costs rederived. The engine's sets are replaced wholesale too.
func (c *Core) LoadFromAccount(acct model.Account) {
	c.mu.Lock()
	c.balance = acct.Balance
	c.lifetimeTotal = acct.LifetimeTotal
	c.lifetimeForPrestige = acct.LifetimeForPrestige
	c.peakBalance = acct.PeakBalance
	c.clickCount = acct.ClickCount
	c.playtime = acct.Playtime
	c.prestigeLevel = acct.PrestigeLevel
	for _, u := range c.upgrades {
		u.Owned = 0
		u.Cost = u.Spec.BaseCost
	}
	for id, n := range acct.Upgrades {
		if u, ok := c.byID[id]; ok && n > 0 {
			u.Owned = n
			u.Cost = math.Ceil(u.Spec.BaseCost * math.Pow(u.Spec.Growth, float64(n)))
		}
	}
	c.recomputeLocked()
	c.lastTimeSync = time.Now()
	c.mu.Unlock()

	if c.engine != nil {
		c.engine.LoadFromAccount(acct.Achievements)
	}
	log.Printf("[INFO] state loaded for %s", acct.Username)
}

// Snapshot returns a read-only copy of the live state.
func (c *Core) Snapshot() model.Snapshot {
	return c.snapshot()
}

func (c *Core) snapshot() model.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	upgrades := make(map[string]int, len(c.upgrades))
	for _, u := range c.upgrades {
		if u.Owned > 0 {
			upgrades[u.Spec.ID] = u.Owned
		}
	}
	return model.Snapshot{
		Balance:             c.balance,
		LifetimeTotal:       c.lifetimeTotal,
		LifetimeForPrestige: c.lifetimeForPrestige,
		PeakBalance:         c.peakBalance,
		ClickCount:          c.clickCount,
		Playtime:            c.playtime,
		PrestigeLevel:       c.prestigeLevel,
		Upgrades:            upgrades,
	}
}

// recomputeLocked rederives production rate and click power. Called after
// every ownership or prestige change; callers hold the mutex.
func (c *Core) recomputeLocked() {
	mult := PrestigeMultiplier(c.prestigeLevel)

	production := 0.0
	clickBonus := 0.0
	for _, u := range c.upgrades {
		if u.Owned == 0 {
			continue
		}
		switch u.Spec.Kind {
		case KindProduction:
			production += u.Spec.Production * float64(u.Owned)
		case KindClick:
			clickBonus += u.Spec.ClickBonus * float64(u.Owned)
		}
	}
	c.productionRate = production * mult
	c.clickPower = format.Round3((1 + clickBonus) * mult)
}

// checkAchievements pushes a snapshot (with leaderboard standing) into the
// engine. Best-effort side channel: it never fails the triggering action.
func (c *Core) checkAchievements() {
	if c.engine == nil {
		return
	}
	snap := c.snapshot()
	if c.accounts != nil {
		snap.TopRanked = c.accounts.IsCurrentTop()
	}
	c.engine.Evaluate(snap)
}

func (c *Core) syncAccount() {
	if c.accounts == nil {
		return
	}
	c.accounts.SyncEconomy(c.snapshot())
}
