package app

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/fatihtuzcu28/chess/app/config"
	"github.com/fatihtuzcu28/chess/app/models"

	_ "github.com/lib/pq"
)

var db *sql.DB

// MustInitDB initializes the global db and logs fatally on error.
func MustInitDB() {
	if err := InitDB(); err != nil {
		log.Fatalf("failed to init db: %v", err)
	}
}

// InitDB connects the move log to Postgres. Leaving POSTGRES_URL unset
// disables persistence: db stays nil and every store helper becomes a
// no-op, so the engine runs fine without a database.
func InitDB() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	if cfg.DB.URL == "" {
		log.Println("POSTGRES_URL not set; move log disabled")
		return nil
	}

	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s",
		cfg.DB.Username,
		cfg.DB.Password,
		cfg.DB.URL,
		cfg.DB.Port,
	)

	d, err := sql.Open("postgres", dsn)
	if err != nil {
		return fmt.Errorf("sql.Open: %w", err)
	}
	if err := d.Ping(); err != nil {
		return fmt.Errorf("db.Ping: %w", err)
	}

	if _, err := d.Exec(`
		CREATE TABLE IF NOT EXISTS move_log (
			id         BIGSERIAL PRIMARY KEY,
			fen        TEXT NOT NULL,
			fen_key    TEXT NOT NULL,
			depth      INT NOT NULL,
			move       TEXT NOT NULL,
			score      INT NOT NULL,
			took_ms    BIGINT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
		CREATE INDEX IF NOT EXISTS move_log_fen_key_idx ON move_log (fen_key);
	`); err != nil {
		return fmt.Errorf("create move_log: %w", err)
	}

	log.Println("Connected to Postgres")
	db = d
	return nil
}

// SaveMoveRecord appends one computed move to the log.
func SaveMoveRecord(ctx context.Context, rec models.MoveRecord) error {
	if db == nil {
		// Allow runs without a backing DB.
		return nil
	}
	_, err := db.ExecContext(ctx, `
		INSERT INTO move_log (fen, fen_key, depth, move, score, took_ms)
		VALUES ($1, $2, $3, $4, $5, $6);
	`, rec.FEN, rec.FENKey, rec.Depth, rec.Move, rec.Score, rec.TookMS)
	return err
}

// RecentMoveRecords returns the newest rows of the move log.
func RecentMoveRecords(ctx context.Context, limit int) ([]models.MoveRecord, error) {
	if db == nil {
		return nil, nil
	}
	if limit <= 0 || limit > 500 {
		limit = 50
	}

	rows, err := db.QueryContext(ctx, `
		SELECT fen, fen_key, depth, move, score, took_ms, created_at
		FROM move_log
		ORDER BY created_at DESC
		LIMIT $1;
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.MoveRecord
	for rows.Next() {
		var rec models.MoveRecord
		if err := rows.Scan(&rec.FEN, &rec.FENKey, &rec.Depth, &rec.Move, &rec.Score, &rec.TookMS, &rec.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
