package models

import "time"

// MoveRecord is one row of the move log.
type MoveRecord struct {
	FEN       string    `json:"fen"`
	FENKey    string    `json:"fen_key"` // normalized FEN, counters stripped
	Depth     int       `json:"depth"`
	Move      string    `json:"move"` // UCI, empty when no legal move existed
	Score     int       `json:"score"`
	TookMS    int64     `json:"took_ms"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}
