package economy

// Stats is the aggregate view backing the statistics screen.
type Stats struct {
	Balance             float64
	LifetimeTotal       float64
	LifetimeForPrestige float64
	PeakBalance         float64
	ClickCount          int64
	Playtime            float64
	ProductionRate      float64
	ClickPower          float64
	TotalUpgrades       int
	PrestigeLevel       int
	PrestigeMultiplier  float64
	NextPrestigeCost    float64
}

func (c *Core) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := 0
	for _, u := range c.upgrades {
		total += u.Owned
	}
	return Stats{
		Balance:             c.balance,
		LifetimeTotal:       c.lifetimeTotal,
		LifetimeForPrestige: c.lifetimeForPrestige,
		PeakBalance:         c.peakBalance,
		ClickCount:          c.clickCount,
		Playtime:            c.playtime,
		ProductionRate:      c.productionRate,
		ClickPower:          c.clickPower,
		TotalUpgrades:       total,
		PrestigeLevel:       c.prestigeLevel,
		PrestigeMultiplier:  PrestigeMultiplier(c.prestigeLevel),
		NextPrestigeCost:    prestigeCost(c.prestigeLevel),
	}
}
