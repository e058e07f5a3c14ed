package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"CookieForge/internal/model"
)

// SQLiteRecorder persists gameplay history to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so history reads don't block the game loop's writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS purchases (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp     INTEGER NOT NULL,
			upgrade_id    TEXT,
			cost_paid     REAL,
			owned_after   INTEGER,
			balance_after REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_purchases_ts ON purchases(timestamp)`,

		`CREATE TABLE IF NOT EXISTS prestiges (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp   INTEGER NOT NULL,
			level_after INTEGER,
			cost_paid   REAL,
			multiplier  REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_prestiges_ts ON prestiges(timestamp)`,

		`CREATE TABLE IF NOT EXISTS unlocks (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp      INTEGER NOT NULL,
			achievement_id TEXT,
			category       TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_unlocks_ts ON unlocks(timestamp)`,

		`CREATE TABLE IF NOT EXISTS sessions (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp INTEGER NOT NULL,
			username  TEXT,
			action    TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_ts ON sessions(timestamp)`,

		`CREATE TABLE IF NOT EXISTS leaderboard_snapshots (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp      INTEGER NOT NULL,
			position       INTEGER,
			username       TEXT,
			lifetime_total REAL,
			per_minute     REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_lb_ts ON leaderboard_snapshots(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordPurchase(evt *PurchaseEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO purchases
		(timestamp, upgrade_id, cost_paid, owned_after, balance_after)
		VALUES (?,?,?,?,?)`,
		time.Now().Unix(), evt.UpgradeID, evt.CostPaid, evt.OwnedAfter, evt.BalanceAfter,
	)
	return err
}

func (r *SQLiteRecorder) RecordPrestige(evt *PrestigeEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO prestiges
		(timestamp, level_after, cost_paid, multiplier)
		VALUES (?,?,?,?)`,
		time.Now().Unix(), evt.LevelAfter, evt.CostPaid, evt.Multiplier,
	)
	return err
}

func (r *SQLiteRecorder) RecordUnlock(evt *UnlockEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO unlocks
		(timestamp, achievement_id, category)
		VALUES (?,?,?)`,
		time.Now().Unix(), evt.AchievementID, evt.Category,
	)
	return err
}

func (r *SQLiteRecorder) RecordSession(evt *SessionEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO sessions
		(timestamp, username, action)
		VALUES (?,?,?)`,
		time.Now().Unix(), evt.Username, evt.Action,
	)
	return err
}

func (r *SQLiteRecorder) RecordLeaderboard(entries []model.LeaderboardEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().Unix()
	for _, e := range entries {
		_, err := r.db.Exec(`INSERT INTO leaderboard_snapshots
			(timestamp, position, username, lifetime_total, per_minute)
			VALUES (?,?,?,?,?)`,
			now, e.Position, e.Username, e.LifetimeTotal, e.PerMinute,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
