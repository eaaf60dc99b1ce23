package app

import (
	"errors"
	"testing"
)

const startFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func TestLoadPositionStart(t *testing.T) {
	pos, err := LoadPosition(startFEN)
	if err != nil {
		t.Fatalf("failed to load start position: %v", err)
	}
	if got := len(pos.LegalMoves()); got != 20 {
		t.Fatalf("expected 20 legal moves in the start position, got %d", got)
	}
	if pos.GameOver() {
		t.Fatalf("start position reported game over")
	}
}

func TestLoadPositionInvalid(t *testing.T) {
	for _, fen := range []string{"", "not a fen", "8/8/8/8/8/8/8 w - - 0 1"} {
		if _, err := LoadPosition(fen); !errors.Is(err, ErrInvalidPosition) {
			t.Fatalf("expected ErrInvalidPosition for %q, got %v", fen, err)
		}
	}
}

func TestApplyUndoRoundTrip(t *testing.T) {
	pos, err := LoadPosition(startFEN)
	if err != nil {
		t.Fatalf("failed to load start position: %v", err)
	}
	before := pos.FEN()

	moves := pos.LegalMoves()
	pos.ApplyMove(moves[0])
	if pos.FEN() == before {
		t.Fatalf("position unchanged after applying a move")
	}
	pos.UndoLastMove()
	if got := pos.FEN(); got != before {
		t.Fatalf("undo did not restore the position: got %q, want %q", got, before)
	}
}

func TestApplyUndoNested(t *testing.T) {
	pos, err := LoadPosition(startFEN)
	if err != nil {
		t.Fatalf("failed to load start position: %v", err)
	}
	before := pos.FEN()

	// Two plies deep and back, the way the search walks the tree.
	first := pos.LegalMoves()[0]
	pos.ApplyMove(first)
	mid := pos.FEN()
	second := pos.LegalMoves()[0]
	pos.ApplyMove(second)
	pos.UndoLastMove()
	if got := pos.FEN(); got != mid {
		t.Fatalf("inner undo restored %q, want %q", got, mid)
	}
	pos.UndoLastMove()
	if got := pos.FEN(); got != before {
		t.Fatalf("outer undo restored %q, want %q", got, before)
	}
}

func TestUndoWithoutApplyPanics(t *testing.T) {
	pos, err := LoadPosition(startFEN)
	if err != nil {
		t.Fatalf("failed to load start position: %v", err)
	}
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on undo without apply")
		}
	}()
	pos.UndoLastMove()
}

func TestGameOverPositions(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"back rank mate", "R5k1/5ppp/8/8/8/8/8/4K3 b - - 0 1"},
		{"stalemate", "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pos, err := LoadPosition(tc.fen)
			if err != nil {
				t.Fatalf("failed to load position: %v", err)
			}
			if !pos.GameOver() {
				t.Fatalf("expected game over for %q", tc.fen)
			}
			if got := len(pos.LegalMoves()); got != 0 {
				t.Fatalf("expected no legal moves, got %d", got)
			}
		})
	}
}
