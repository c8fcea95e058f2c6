package search

import (
	"sort"

	"github.com/PhilipiGomes/ChessEngine/internal/board"
	"github.com/PhilipiGomes/ChessEngine/internal/eval"
)

// Priority represents a move's order priority: higher moves are explored
// first.
type Priority float64

// MoveOrderer assigns a heuristic priority to moves so the Searcher
// examines likely-best moves first, improving alpha-beta cutoffs.
type MoveOrderer struct {
	// Checks, if set, reports whether a move gives check; used for the
	// optional check bonus. Nil disables the check bonus.
	Checks func(board.Move) bool
}

type scoredMove struct {
	m        board.Move
	priority Priority
}

// Order returns moves sorted by descending priority. Ties keep the
// original (move generator) order, making the result a total, deterministic
// order for a given input -- sort.SliceStable rather than a heap, since a
// heap does not guarantee a stable tie-break.
func (o MoveOrderer) Order(pos *board.Position, moves []board.Move) []board.Move {
	scored := make([]scoredMove, len(moves))
	for i, m := range moves {
		scored[i] = scoredMove{m: m, priority: o.Priority(pos, m)}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].priority > scored[j].priority
	})

	ordered := make([]board.Move, len(scored))
	for i, s := range scored {
		ordered[i] = s.m
	}
	return ordered
}

// Priority computes a move's ordering score per spec: MVV-LVA for
// captures, promotion material, a penalty for moving into an attacked
// square, and an optional check bonus.
func (o MoveOrderer) Priority(pos *board.Position, m board.Move) Priority {
	turn := pos.Turn()
	sign := eval.Unit(turn)

	var score eval.Score
	if m.IsCapture() {
		score += 10 * (eval.NominalValue(m.Capture) - eval.NominalValue(m.Piece))
	}
	if m.IsPromotion() {
		score += sign * eval.NominalValue(m.Promotion)
	}
	if board.IsAttacked(pos, turn.Opponent(), m.To) {
		score -= sign * eval.NominalValue(m.Piece)
	}
	if o.Checks != nil && o.Checks(m) {
		score += 1
	}
	return Priority(score)
}
