package wallet_repo

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"spinx_backend/internal/model"
	"spinx_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	_ "modernc.org/sqlite"
)

const (
	kvTable      = "wallet_state"
	historyTable = "wheel_history"

	// Ключи kv-хранилища
	keyBalance    = "balance"
	keyFreeSpins  = "free_spins"
	keyBadgeCount = "badge_count"
	keyAutoPlay   = "auto_play"
	keySound      = "sound"
)

// Repo - локальное хранилище кошелька и истории колеса поверх SQLite
type Repo struct {
	db *sql.DB
}

// NewWalletRepository открывает (или создает) файл хранилища.
// Путь ":memory:" дает чистую БД, удобен в тестах
func NewWalletRepository(path string) (*Repo, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open wallet store: %w", err)
	}

	// WAL ради конкурентных чтений истории из API
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	r := &Repo{db: db}
	if err := r.migrate(); err != nil {
		return nil, err
	}

	return r, nil
}

func (r *Repo) Close() error {
	return r.db.Close()
}

func (r *Repo) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS wallet_state (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS wheel_history (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			time          INTEGER NOT NULL,
			segment_label TEXT NOT NULL,
			stake         INTEGER NOT NULL,
			payout        INTEGER NOT NULL,
			gift          TEXT NOT NULL,
			is_win        INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_wheel_history_time ON wheel_history(time DESC)`,
	}

	for _, migration := range migrations {
		if _, err := r.db.Exec(migration); err != nil {
			return fmt.Errorf("wallet store migration failed: %w", err)
		}
	}

	return nil
}

var _ repository.WalletRepository = (*Repo)(nil)

// LoadWallet читает состояние кошелька.
// Отсутствующие ключи дают нулевые значения
func (r *Repo) LoadWallet(ctx context.Context) (*model.WalletState, error) {
	query := sq.Select("key", "value").From(kvTable)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	kv := make(map[string]string)
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, err
		}
		kv[k] = v
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	state := &model.WalletState{
		Balance:         atoi(kv[keyBalance]),
		FreeSpins:       atoi(kv[keyFreeSpins]),
		BonusBadgeCount: atoi(kv[keyBadgeCount]),
		AutoPlayEnabled: kv[keyAutoPlay] == "1",
		SoundEnabled:    kv[keySound] == "1",
	}

	return state, nil
}

// SaveWallet пишет все ключи кошелька (upsert)
func (r *Repo) SaveWallet(ctx context.Context, state *model.WalletState) error {
	pairs := map[string]string{
		keyBalance:    strconv.Itoa(state.Balance),
		keyFreeSpins:  strconv.Itoa(state.FreeSpins),
		keyBadgeCount: strconv.Itoa(state.BonusBadgeCount),
		keyAutoPlay:   boolFlag(state.AutoPlayEnabled),
		keySound:      boolFlag(state.SoundEnabled),
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for key, value := range pairs {
		query := sq.Insert(kvTable).
			Columns("key", "value").
			Values(key, value).
			Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value")

		sqlStr, args, err := query.ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, sqlStr, args...); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// AppendHistory добавляет запись и вытесняет старые сверх лимита
func (r *Repo) AppendHistory(ctx context.Context, entry model.HistoryEntry, maxHistory int) error {
	query := sq.Insert(historyTable).
		Columns("time", "segment_label", "stake", "payout", "gift", "is_win").
		Values(entry.Time.UnixMilli(), entry.SegmentLabel, entry.Stake, entry.Payout,
			string(entry.Gift), entry.IsWin)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, sqlStr, args...); err != nil {
		return err
	}

	trim := `DELETE FROM wheel_history WHERE id NOT IN (
		SELECT id FROM wheel_history ORDER BY id DESC LIMIT ?)`
	if _, err := r.db.ExecContext(ctx, trim, maxHistory); err != nil {
		return err
	}

	return nil
}

// LoadHistory возвращает записи, новые сверху
func (r *Repo) LoadHistory(ctx context.Context, limit int) ([]model.HistoryEntry, error) {
	query := sq.Select("time", "segment_label", "stake", "payout", "gift", "is_win").
		From(historyTable).
		OrderBy("id DESC").
		Limit(uint64(limit))

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.HistoryEntry
	for rows.Next() {
		var entry model.HistoryEntry
		var ms int64
		var gift string
		if err := rows.Scan(&ms, &entry.SegmentLabel, &entry.Stake, &entry.Payout, &gift, &entry.IsWin); err != nil {
			return nil, err
		}
		entry.Time = time.UnixMilli(ms)
		entry.Gift = model.Gift(gift)
		out = append(out, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func boolFlag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
