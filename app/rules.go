package app

import (
	"errors"
	"fmt"

	"github.com/notnil/chess"
)

// ErrInvalidPosition marks a serialized position the rules engine could not parse.
var ErrInvalidPosition = errors.New("invalid position")

// Position wraps notnil/chess game state behind the small surface the search
// needs: legal moves, reversible apply/undo, game-over, FEN round-trip.
//
// notnil/chess positions are immutable (Update returns a fresh position), so
// ApplyMove pushes onto a stack and UndoLastMove pops. The search applies and
// undoes in strict LIFO order, which keeps the stack balanced across a call.
type Position struct {
	stack []*chess.Position
}

// LoadPosition parses a FEN string into a searchable position.
func LoadPosition(fen string) (*Position, error) {
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPosition, err)
	}
	game := chess.NewGame(opt)
	return &Position{stack: []*chess.Position{game.Position()}}, nil
}

func (p *Position) top() *chess.Position {
	return p.stack[len(p.stack)-1]
}

// LegalMoves returns every legal move for the side to move. An empty slice
// signals no legal continuation (checkmate or stalemate).
func (p *Position) LegalMoves() []*chess.Move {
	return p.top().ValidMoves()
}

// ApplyMove plays a move obtained from LegalMoves.
func (p *Position) ApplyMove(m *chess.Move) {
	p.stack = append(p.stack, p.top().Update(m))
}

// UndoLastMove reverses the most recent ApplyMove. Calling it without a
// matching apply is a programming error and panics.
func (p *Position) UndoLastMove() {
	if len(p.stack) < 2 {
		panic("undo without a matching apply")
	}
	p.stack = p.stack[:len(p.stack)-1]
}

// GameOver reports whether the side to move has no legal continuation.
func (p *Position) GameOver() bool {
	return p.top().Status() != chess.NoMethod
}

// Turn returns the color to move.
func (p *Position) Turn() chess.Color {
	return p.top().Turn()
}

// FEN serializes the current state; round-trips with LoadPosition.
func (p *Position) FEN() string {
	return p.top().String()
}

func (p *Position) board() *chess.Board {
	return p.top().Board()
}
