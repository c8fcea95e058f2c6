package search_test

import (
	"testing"

	"github.com/PhilipiGomes/ChessEngine/internal/board"
	"github.com/PhilipiGomes/ChessEngine/internal/board/fen"
	"github.com/PhilipiGomes/ChessEngine/internal/eval"
	"github.com/PhilipiGomes/ChessEngine/internal/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQuiescence() search.Quiescence {
	evaluator := eval.Standard{}
	return search.Quiescence{Eval: evaluator, Order: search.MoveOrderer{}}
}

func TestQuiescenceRestoresBoard(t *testing.T) {
	pos, err := fen.Decode("4k3/8/8/3r4/4P3/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	b := board.NewBoard(pos)
	before := b.Hash()

	newQuiescence().Search(b, eval.MinScore, eval.MaxScore)
	assert.Equal(t, before, b.Hash())
}

func TestQuiescenceFindsWinningCapture(t *testing.T) {
	// White to move, a pawn can win a hanging rook: the quiescence score
	// must reflect at least the material gain.
	pos, err := fen.Decode("4k3/8/8/3r4/4P3/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	b := board.NewBoard(pos)

	score := newQuiescence().Search(b, eval.MinScore, eval.MaxScore)
	assert.Greater(t, score, eval.Score(0), "capturing the rook should leave White better off than the hanging-rook stand-pat")
}

func TestQuiescenceTerminatesOnQuietPosition(t *testing.T) {
	b := board.NewBoard(board.InitialPosition())
	score := newQuiescence().Search(b, eval.MinScore, eval.MaxScore)
	assert.Equal(t, eval.Score(0), score)
}
