package models

// MoveRequest asks the engine for the best move in a position.
type MoveRequest struct {
	Position string `json:"position"` // FEN
	Depth    int    `json:"depth,omitempty"`
}

// MoveReply describes a chosen move in coordinate form, e.g. {from:"g7", to:"g8", promotion:"q"}.
type MoveReply struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Promotion string `json:"promotion,omitempty"`
}

// MoveResponse is the /move payload. A nil Move means the side to move has
// no legal moves (checkmate or stalemate) -- that is a result, not an error.
type MoveResponse struct {
	Move   *MoveReply `json:"move"`
	Score  int        `json:"score"` // centipawns, positive favors White
	Depth  int        `json:"depth"`
	TookMS int64      `json:"took_ms"`
}
