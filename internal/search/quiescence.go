package search

import (
	"github.com/PhilipiGomes/ChessEngine/internal/board"
	"github.com/PhilipiGomes/ChessEngine/internal/eval"
)

// quiescenceCheckPly bounds how many plies past the horizon the quiescence
// search will extend through a non-capturing check, keeping termination
// guaranteed independent of the capture-chain material argument.
const quiescenceCheckPly = 2

// Quiescence extends search at the horizon through captures (and checks,
// for a bounded number of plies) until the position is quiet, to avoid the
// horizon effect.
type Quiescence struct {
	Eval  eval.Evaluator
	Order MoveOrderer
}

// Search returns the quiescence score from the side-to-move's perspective
// (negamax convention).
func (q Quiescence) Search(b *board.Board, alpha, beta eval.Score) eval.Score {
	return q.search(b, alpha, beta, 0)
}

func (q Quiescence) search(b *board.Board, alpha, beta eval.Score, checkPly int) eval.Score {
	standPat := eval.Unit(b.Turn()) * q.Eval.Evaluate(b)
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	pos := b.Position()
	candidates := forcingMoves(pos, pos.LegalMoves(), checkPly < quiescenceCheckPly)
	ordered := q.Order.Order(pos, candidates)

	for _, m := range ordered {
		if !b.PushMove(m) {
			continue
		}
		nextCheckPly := checkPly
		if !m.IsCapture() {
			nextCheckPly++
		}
		score := -q.search(b, -beta, -alpha, nextCheckPly)
		b.PopMove()

		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha
}

// forcingMoves filters to captures, and -- while allowChecks holds -- moves
// that give check.
func forcingMoves(pos *board.Position, moves []board.Move, allowChecks bool) []board.Move {
	ret := make([]board.Move, 0, len(moves))
	for _, m := range moves {
		if m.IsCapture() {
			ret = append(ret, m)
			continue
		}
		if allowChecks && GivesCheck(pos, m) {
			ret = append(ret, m)
		}
	}
	return ret
}

// GivesCheck reports whether applying m to pos leaves the opponent in
// check.
func GivesCheck(pos *board.Position, m board.Move) bool {
	np, ok := pos.Move(m)
	return ok && np.IsCheck()
}
