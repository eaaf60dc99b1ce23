package app

import "github.com/notnil/chess"

// scoreInfinity bounds every reachable evaluation; only the root call uses
// it as a truly unbounded alpha/beta sentinel.
const scoreInfinity = 1 << 30

// BestMove runs a fixed-depth alpha-beta search and returns the move the
// engine wants to play together with its minimax score, or (nil, 0) when
// the side to move has no legal moves. The engine never fabricates a move.
//
// Scores are White-positive centipawns and the root keeps the move with
// the strictly lowest score: the engine plays the color for which lower
// evaluations are favorable (the host gives the human White). Ties go to
// the earliest move in ordered sequence. Every call is a fresh traversal;
// nothing is cached between calls.
func BestMove(pos *Position, depth int) (*chess.Move, int) {
	moves := pos.LegalMoves()
	if len(moves) == 0 {
		return nil, 0
	}
	var best *chess.Move
	bestScore := 0
	for _, m := range orderMoves(pos, moves) {
		pos.ApplyMove(m)
		score := minimax(pos, depth-1, -scoreInfinity, scoreInfinity, true)
		pos.UndoLastMove()
		if best == nil || score < bestScore {
			best = m
			bestScore = score
		}
	}
	return best, bestScore
}

// minimax walks the game tree to the given depth with alpha-beta bounds.
// A node is a leaf when depth is exhausted or the rules engine reports no
// further play; leaves are scored statically, game over or not. Pruning
// skips remaining siblings once beta <= alpha; it changes which nodes are
// visited, never the returned score.
func minimax(pos *Position, depth int, alpha, beta int, maximizing bool) int {
	if depth == 0 || pos.GameOver() {
		return Evaluate(pos)
	}
	moves := orderMoves(pos, pos.LegalMoves())
	if maximizing {
		best := -scoreInfinity
		for _, m := range moves {
			pos.ApplyMove(m)
			score := minimax(pos, depth-1, alpha, beta, false)
			pos.UndoLastMove()
			if score > best {
				best = score
			}
			if score > alpha {
				alpha = score
			}
			if beta <= alpha {
				break
			}
		}
		return best
	}
	best := scoreInfinity
	for _, m := range moves {
		pos.ApplyMove(m)
		score := minimax(pos, depth-1, alpha, beta, true)
		pos.UndoLastMove()
		if score < best {
			best = score
		}
		if score < beta {
			beta = score
		}
		if beta <= alpha {
			break
		}
	}
	return best
}
