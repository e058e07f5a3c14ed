package achievements

import "CookieForge/internal/model"

// Category groups achievements for display.
type Category string

const (
	CategoryFirstBuy Category = "upgrade-first-buy"
	CategoryLifetime Category = "lifetime-currency"
	CategoryClicks   Category = "click-count"
	CategoryRank     Category = "leaderboard-rank"
	CategoryPrestige Category = "prestige"
	CategoryPlaytime Category = "playtime"
)

// CheckData is what a predicate sees: the economy snapshot augmented with the
// engine's own first-purchase set. Callers never pass first-purchase data.
type CheckData struct {
	model.Snapshot
	FirstPurchases map[string]struct{}
}

// Bought reports whether an upgrade has ever been purchased, across prestiges.
func (d CheckData) Bought(upgradeID string) bool {
	_, ok := d.FirstPurchases[upgradeID]
	return ok
}

// Achievement is one static catalog entry.
type Achievement struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Category    Category
	Secret      bool
	Condition   func(CheckData) bool
}

func firstBuy(upgradeID string) func(CheckData) bool {
	return func(d CheckData) bool { return d.Bought(upgradeID) }
}

func lifetimeAtLeast(n float64) func(CheckData) bool {
	return func(d CheckData) bool { return d.LifetimeTotal >= n }
}

func clicksAtLeast(n int64) func(CheckData) bool {
	return func(d CheckData) bool { return d.ClickCount >= n }
}

func playtimeAtLeast(seconds float64) func(CheckData) bool {
	return func(d CheckData) bool { return d.Playtime >= seconds }
}

// Catalog is the full static milestone set.
var Catalog = []Achievement{
	// First purchases
	{ID: "first-pastry-robot", Name: "First Assistant", Description: "Buy your first Pastry Robot", Icon: "🤖", Category: CategoryFirstBuy, Condition: firstBuy("pastry-robot")},
	{ID: "first-reinforced-cursor", Name: "Enhanced Click", Description: "Buy your first Reinforced Cursor", Icon: "👆", Category: CategoryFirstBuy, Condition: firstBuy("reinforced-cursor")},
	{ID: "first-sugar-lab", Name: "Sugar Scientist", Description: "Buy your first Sugar Laboratory", Icon: "🔬", Category: CategoryFirstBuy, Condition: firstBuy("sugar-lab")},
	{ID: "first-magic-gloves", Name: "Click Magic", Description: "Buy your first Magic Gloves", Icon: "🧤", Category: CategoryFirstBuy, Condition: firstBuy("magic-gloves")},
	{ID: "first-nano-furnace", Name: "Quantum Technology", Description: "Buy your first Nano-Furnace", Icon: "⚛️", Category: CategoryFirstBuy, Condition: firstBuy("nano-furnace")},
	{ID: "first-creation-wand", Name: "Artifact Master", Description: "Buy your first Creation Wand", Icon: "🪄", Category: CategoryFirstBuy, Condition: firstBuy("creation-wand")},
	{ID: "first-dimensional-portal", Name: "Dimensional Traveler", Description: "Buy your first Dimensional Portal", Icon: "🌀", Category: CategoryFirstBuy, Condition: firstBuy("dimensional-portal")},

	// Lifetime currency
	{ID: "lifetime-100k", Name: "One Hundred Thousand!", Description: "Produce 100,000 cookies in total", Icon: "💯", Category: CategoryLifetime, Condition: lifetimeAtLeast(100_000)},
	{ID: "lifetime-1m", Name: "Millionaire", Description: "Produce 1 million cookies in total", Icon: "💰", Category: CategoryLifetime, Condition: lifetimeAtLeast(1_000_000)},
	{ID: "lifetime-100m", Name: "Cookie Tycoon", Description: "Produce 100 million cookies in total", Icon: "🏦", Category: CategoryLifetime, Condition: lifetimeAtLeast(100_000_000)},
	{ID: "lifetime-1b", Name: "Billionaire", Description: "Produce 1 billion cookies in total", Icon: "💎", Category: CategoryLifetime, Condition: lifetimeAtLeast(1_000_000_000)},
	{ID: "lifetime-1t", Name: "Cookie Emperor", Description: "Produce 1 trillion cookies in total", Icon: "👑", Category: CategoryLifetime, Condition: lifetimeAtLeast(1_000_000_000_000)},

	// Click count
	{ID: "clicks-100", Name: "Beginner Clicker", Description: "Perform 100 clicks", Icon: "👆", Category: CategoryClicks, Condition: clicksAtLeast(100)},
	{ID: "clicks-1k", Name: "Experienced Clicker", Description: "Perform 1,000 clicks", Icon: "⚡", Category: CategoryClicks, Condition: clicksAtLeast(1_000)},
	{ID: "clicks-10k", Name: "Expert Clicker", Description: "Perform 10,000 clicks", Icon: "💨", Category: CategoryClicks, Condition: clicksAtLeast(10_000)},
	{ID: "clicks-100k", Name: "Legendary Clicker", Description: "Perform 100,000 clicks", Icon: "🔥", Category: CategoryClicks, Condition: clicksAtLeast(100_000)},
	{ID: "clicks-1m", Name: "Click God", Description: "Perform 1 million clicks", Icon: "⭐", Category: CategoryClicks, Condition: clicksAtLeast(1_000_000)},

	// Leaderboard
	{ID: "leaderboard-top", Name: "King of the Board", Description: "Reach first place on the leaderboard", Icon: "🥇", Category: CategoryRank, Secret: true, Condition: func(d CheckData) bool { return d.TopRanked }},

	// Prestige
	{ID: "first-prestige", Name: "Renaissance", Description: "Perform your first prestige", Icon: "⭐", Category: CategoryPrestige, Condition: func(d CheckData) bool { return d.PrestigeLevel >= 1 }},

	// Playtime
	{ID: "playtime-5min", Name: "First Steps", Description: "Play for 5 minutes", Icon: "⏱️", Category: CategoryPlaytime, Condition: playtimeAtLeast(5 * 60)},
	{ID: "playtime-15min", Name: "Addicted", Description: "Play for 15 minutes", Icon: "⏰", Category: CategoryPlaytime, Condition: playtimeAtLeast(15 * 60)},
	{ID: "playtime-1h", Name: "Dedicated", Description: "Play for 1 hour", Icon: "🕐", Category: CategoryPlaytime, Condition: playtimeAtLeast(60 * 60)},
	{ID: "playtime-5h", Name: "Passionate", Description: "Play for 5 hours", Icon: "🕐", Category: CategoryPlaytime, Condition: playtimeAtLeast(5 * 60 * 60)},
	{ID: "playtime-10h", Name: "Veteran", Description: "Play for 10 hours", Icon: "⏳", Category: CategoryPlaytime, Condition: playtimeAtLeast(10 * 60 * 60)},
	{ID: "playtime-100h", Name: "Legend", Description: "Play for 100 hours", Icon: "👑", Category: CategoryPlaytime, Condition: playtimeAtLeast(100 * 60 * 60)},
}
