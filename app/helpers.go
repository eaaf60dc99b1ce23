package app

import (
	"fmt"
	"strings"

	"github.com/fatihtuzcu28/chess/app/models"
)

// converts string to int safely
func parsePositiveInt(s string) (int, error) {
	var n int
	_, err := fmt.Sscanf(s, "%d", &n)
	if err != nil {
		return 0, err
	}
	return n, nil
}

// NormalizeFEN strips move counters and keeps only the structural position:
// <pieces> <side> <castling> <en-passant>
func NormalizeFEN(fen string) string {
	parts := strings.Split(strings.TrimSpace(fen), " ")
	if len(parts) < 4 {
		// malformed FEN, return original
		return fen
	}

	pieces := parts[0]
	side := parts[1]
	castling := parts[2]
	ep := parts[3]

	if castling == "" {
		castling = "-"
	}
	if ep == "" {
		ep = "-"
	}

	return pieces + " " + side + " " + castling + " " + ep
}

// moveString renders an outcome's move in UCI form for the move log.
func moveString(m *models.MoveReply) string {
	if m == nil {
		return ""
	}
	return m.From + m.To + m.Promotion
}
