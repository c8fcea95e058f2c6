package search

import (
	"context"

	"github.com/PhilipiGomes/ChessEngine/internal/board"
	"github.com/PhilipiGomes/ChessEngine/internal/eval"
)

// Options holds the caller-supplied search configuration for one Launch.
// Depth is the only knob: there is no TimeControl, so no iterative
// deepening against a clock.
type Options struct {
	// Depth is the nominal search depth in plies. Must be positive.
	Depth int
}

// Launcher manages a single fixed-depth search call over an exclusively
// owned board. Launch runs synchronously to completion (or cancellation)
// and returns one result, not a channel of progressively deeper PVs.
type Launcher interface {
	Launch(ctx context.Context, b *board.Board, opt Options) (board.Move, eval.Score, error)
}

// FixedDepthLauncher runs a single alpha-beta search to a fixed depth. The
// caller halts an in-flight search by cancelling ctx; Launch observes the
// cancellation cooperatively at each recursive node (see Searcher.searchScore).
type FixedDepthLauncher struct {
	Searcher *Searcher
}

func (l FixedDepthLauncher) Launch(ctx context.Context, b *board.Board, opt Options) (board.Move, eval.Score, error) {
	return l.Searcher.BestMove(ctx, b, opt.Depth)
}
