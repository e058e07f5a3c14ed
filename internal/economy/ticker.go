package economy

import (
	"log"
	"math"
	"time"
)

// StartProduction starts the periodic production loop (10 ticks/second by
// default). Idempotent: a second call while running does nothing. All ticks
// run on one goroutine, so a slow tick can never overlap the next.
func (c *Core) StartProduction() {
	c.mu.Lock()
	if c.running {
		c.mu.Unlock()
		return
	}
	c.running = true
	c.subTicks = 0
	c.lastTimeSync = time.Now()
	c.stopCh = make(chan struct{})
	c.doneCh = make(chan struct{})
	interval := c.tickInterval
	stop, done := c.stopCh, c.doneCh
	c.mu.Unlock()

	go c.runLoop(interval, stop, done)
	log.Println("[INFO] production loop started")
}

// StopProduction stops the loop and waits for the in-flight tick. Idempotent.
func (c *Core) StopProduction() {
	c.mu.Lock()
	if !c.running {
		c.mu.Unlock()
		return
	}
	c.running = false
	stop, done := c.stopCh, c.doneCh
	c.mu.Unlock()

	close(stop)
	<-done
	log.Println("[INFO] production loop stopped")
}

func (c *Core) runLoop(interval time.Duration, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case now := <-ticker.C:
			c.tick(now)
		}
	}
}

// tick is one production step: one interval's worth of the per-second rate is
// credited through AddCurrency (no click throttling applies there), so a
// reconfigured cadence keeps the same currency/second. Every 10th tick the
// wall-clock delta since the last such tick, not a fixed step, feeds
// AdvanceTime to absorb scheduler jitter, and playtime landing on a 5-second
// boundary forces an account sync.
func (c *Core) tick(now time.Time) {
	c.mu.Lock()
	rate := c.productionRate
	step := c.tickInterval.Seconds()
	c.subTicks++
	secondBoundary := c.subTicks >= 10
	var delta float64
	if secondBoundary {
		c.subTicks = 0
		delta = now.Sub(c.lastTimeSync).Seconds()
		c.lastTimeSync = now
	}
	c.mu.Unlock()

	if rate > 0 {
		c.AddCurrency(rate * step)
	}
	if secondBoundary {
		c.AdvanceTime(delta)
		c.mu.Lock()
		force := int64(math.Floor(c.playtime))%5 == 0
		c.mu.Unlock()
		if force {
			c.syncAccount()
		}
	}
}
