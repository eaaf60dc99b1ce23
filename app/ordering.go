package app

import (
	"sort"

	"github.com/notnil/chess"
)

const (
	captureWeight = 10 // captured piece value is scaled by this
	checkBonus    = 50
)

// orderMoves returns the moves sorted most-promising-first so alpha-beta
// cuts off early. Captures score the captured piece's value times ten,
// promotions add the promoted piece's value, checking moves add a flat
// bonus. The sort is stable, so equal-priority moves keep the order the
// rules engine produced them in. The input slice is not modified.
func orderMoves(pos *Position, moves []*chess.Move) []*chess.Move {
	ordered := make([]*chess.Move, len(moves))
	copy(ordered, moves)
	priorities := make(map[*chess.Move]int, len(moves))
	for _, m := range ordered {
		priorities[m] = movePriority(pos, m)
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return priorities[ordered[i]] > priorities[ordered[j]]
	})
	return ordered
}

func movePriority(pos *Position, m *chess.Move) int {
	priority := 0
	if m.HasTag(chess.Capture) {
		priority += capturedValue(pos, m) * captureWeight
	}
	if promo := m.Promo(); promo != chess.NoPieceType {
		priority += pieceValues[promo]
	}
	if m.HasTag(chess.Check) {
		priority += checkBonus
	}
	return priority
}

func capturedValue(pos *Position, m *chess.Move) int {
	if m.HasTag(chess.EnPassant) {
		return pieceValues[chess.Pawn]
	}
	return pieceValues[pos.board().Piece(m.S2()).Type()]
}
