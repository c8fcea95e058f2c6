package eval_test

import (
	"testing"

	"github.com/PhilipiGomes/ChessEngine/internal/board"
	"github.com/PhilipiGomes/ChessEngine/internal/board/fen"
	"github.com/PhilipiGomes/ChessEngine/internal/eval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateInitialPositionIsZero(t *testing.T) {
	b := board.NewBoard(board.InitialPosition())
	score := eval.Standard{}.Evaluate(b)
	assert.Equal(t, eval.Score(0), score)
}

func TestEvaluateMaterialAdvantage(t *testing.T) {
	pos, err := fen.Decode("4k3/8/8/8/8/8/8/4KQ2 w - - 0 1")
	require.NoError(t, err)
	b := board.NewBoard(pos)

	score := eval.Standard{}.Evaluate(b)
	assert.Greater(t, score, eval.Score(0), "White has an extra queen")
}

func TestEvaluateCheckmate(t *testing.T) {
	pos, err := fen.Decode("R5k1/5ppp/8/8/8/8/5PPP/6K1 b - - 0 1")
	require.NoError(t, err)
	b := board.NewBoard(pos)
	require.True(t, b.IsCheckmate())

	score := eval.Standard{}.Evaluate(b)
	assert.Equal(t, eval.MateScore, score, "black to move and mated: score favors White")
}

// mirror returns the position with colors swapped and ranks flipped: the
// classic evaluation-symmetry fixture.
func mirror(t *testing.T, pos *board.Position) *board.Position {
	t.Helper()

	var pieces []board.Placement
	for sq := board.ZeroSquare; sq < board.NumSquares; sq++ {
		c, p, ok := pos.PieceAt(sq)
		if !ok {
			continue
		}
		pieces = append(pieces, board.Placement{Square: sq.Mirror(), Color: c.Opponent(), Piece: p})
	}
	ep := board.NoSquare
	if sq, ok := pos.EnPassant(); ok {
		ep = sq.Mirror()
	}
	out, err := board.NewPosition(pieces, pos.Turn().Opponent(), mirrorCastling(pos.Castling()), ep, pos.HalfmoveClock(), pos.FullmoveNumber())
	require.NoError(t, err)
	return out
}

func mirrorCastling(c board.Castling) board.Castling {
	var out board.Castling
	if c.IsAllowed(board.WhiteKingSide) {
		out |= board.BlackKingSide
	}
	if c.IsAllowed(board.WhiteQueenSide) {
		out |= board.BlackQueenSide
	}
	if c.IsAllowed(board.BlackKingSide) {
		out |= board.WhiteKingSide
	}
	if c.IsAllowed(board.BlackQueenSide) {
		out |= board.WhiteQueenSide
	}
	return out
}

func TestEvaluateSymmetry(t *testing.T) {
	positions := []string{
		fen.Initial,
		"4k3/8/8/8/8/8/8/4KQ2 w - - 0 1",
		"8/8/8/4k3/8/8/8/R3K3 w Q - 0 1",
		"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
	}
	for _, in := range positions {
		pos, err := fen.Decode(in)
		require.NoError(t, err, in)

		b := board.NewBoard(pos)
		mb := board.NewBoard(mirror(t, pos))

		got := eval.Standard{}.Evaluate(b)
		want := -eval.Standard{}.Evaluate(mb)
		assert.Equal(t, want, got, in)
	}
}

func TestIsEndgame(t *testing.T) {
	pos, err := fen.Decode("8/8/8/4k3/8/8/8/R3K3 w Q - 0 1")
	require.NoError(t, err)
	assert.True(t, eval.IsEndgame(pos))

	assert.False(t, eval.IsEndgame(board.InitialPosition()))
}
