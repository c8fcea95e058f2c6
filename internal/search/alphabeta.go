package search

import (
	"context"
	"errors"

	"github.com/PhilipiGomes/ChessEngine/internal/board"
	"github.com/PhilipiGomes/ChessEngine/internal/eval"
	"github.com/seekerror/stdlib/pkg/util/contextx"
)

// ErrNoLegalMove is returned by BestMove when called on a terminal
// position: the caller decides how the game ends, the core never
// fabricates a move.
var ErrNoLegalMove = errors.New("search: no legal move")

// Searcher is the alpha-beta negamax driver: a transposition-table-backed
// recursive search plus a root move selector.
type Searcher struct {
	Eval       eval.Evaluator
	Order      MoveOrderer
	Quiescence Quiescence
	TT         TranspositionTable
}

// NewSearcher wires the default evaluator and move orderer around tt.
func NewSearcher(tt TranspositionTable) *Searcher {
	evaluator := eval.Standard{}
	order := MoveOrderer{}
	return &Searcher{
		Eval:       evaluator,
		Order:      order,
		Quiescence: Quiescence{Eval: evaluator, Order: order},
		TT:         tt,
	}
}

// BestMove enumerates legal moves from b's current position, orders them,
// and returns the one with the highest negamax score at the given nominal
// depth. Ties keep the first move in ordered enumeration. b is restored to
// its entry state on every return path.
func (s *Searcher) BestMove(ctx context.Context, b *board.Board, depth int) (board.Move, eval.Score, error) {
	moves := b.Position().LegalMoves()
	if len(moves) == 0 {
		return board.Move{}, 0, ErrNoLegalMove
	}

	ordered := s.Order.Order(b.Position(), moves)

	var best board.Move
	bestScore := eval.MinScore
	found := false
	for _, m := range ordered {
		if !b.PushMove(m) {
			continue
		}
		score := -s.searchScore(ctx, b, depth-1, -eval.MaxScore, eval.MaxScore, 1)
		b.PopMove()

		if !found || score > bestScore {
			bestScore = score
			best = m
			found = true
		}
	}
	return best, bestScore, nil
}

// SearchScore is the recursive search node, returning a score from the
// side-to-move's perspective at the root of this call.
func (s *Searcher) SearchScore(ctx context.Context, b *board.Board, depth int, alpha, beta eval.Score) eval.Score {
	return s.searchScore(ctx, b, depth, alpha, beta, 0)
}

func (s *Searcher) searchScore(ctx context.Context, b *board.Board, depth int, alpha, beta eval.Score, ply int) eval.Score {
	if contextx.IsCancelled(ctx) {
		return 0
	}

	hash := b.Hash()
	if bound, storedDepth, score, _, ok := s.TT.Probe(hash); ok {
		if usableScore, ok := usable(storedDepth, bound, score, alpha, beta, depth); ok {
			return usableScore
		}
	}

	moves := b.Position().LegalMoves()
	if len(moves) == 0 {
		result := b.AdjudicateNoLegalMoves()
		if result.Reason == board.Checkmate {
			return -eval.MateScore + eval.Score(ply)
		}
		return 0
	}

	if depth == 0 {
		score := s.Quiescence.Search(b, alpha, beta)
		bound := ExactBound
		switch {
		case score >= beta:
			bound = LowerBound
		case score <= alpha:
			bound = UpperBound
		}
		s.TT.Store(hash, bound, ply, 0, score, board.Move{})
		return score
	}

	ordered := s.Order.Order(b.Position(), moves)

	var best board.Move
	bound := UpperBound
	for _, m := range ordered {
		if !b.PushMove(m) {
			continue
		}
		score := -s.searchScore(ctx, b, depth-1, -beta, -alpha, ply+1)
		b.PopMove()

		if score >= beta {
			s.TT.Store(hash, LowerBound, ply, depth, score, m)
			return beta
		}
		if score > alpha {
			alpha = score
			best = m
			bound = ExactBound
		}
	}

	s.TT.Store(hash, bound, ply, depth, alpha, best)
	return alpha
}
