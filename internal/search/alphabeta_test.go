package search_test

import (
	"context"
	"testing"

	"github.com/PhilipiGomes/ChessEngine/internal/board"
	"github.com/PhilipiGomes/ChessEngine/internal/board/fen"
	"github.com/PhilipiGomes/ChessEngine/internal/eval"
	"github.com/PhilipiGomes/ChessEngine/internal/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSearcher() *search.Searcher {
	return search.NewSearcher(search.NewTranspositionTable(1 << 16))
}

func TestBestMoveStartingPositionDepth1(t *testing.T) {
	b := board.NewBoard(board.InitialPosition())
	before := b.Hash()

	m, score, err := newSearcher().BestMove(context.Background(), b, 1)
	require.NoError(t, err)
	assert.NotZero(t, m)
	assert.True(t, score > eval.MinScore && score < eval.MaxScore, "score must be finite, not a sentinel")
	assert.Equal(t, before, b.Hash(), "the board must be restored after BestMove returns")
}

func TestBestMoveMateInOne(t *testing.T) {
	pos, err := fen.Decode("6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1")
	require.NoError(t, err)
	b := board.NewBoard(pos)

	m, score, err := newSearcher().BestMove(context.Background(), b, 2)
	require.NoError(t, err)

	assert.Equal(t, board.A1, m.From)
	assert.Equal(t, board.A8, m.To)
	assert.GreaterOrEqual(t, score, eval.MateScore-1)
}

func TestBestMoveAvoidsStalemateTrap(t *testing.T) {
	pos, err := fen.Decode("7k/5Q2/6K1/8/8/8/8/8 w - - 0 1")
	require.NoError(t, err)
	b := board.NewBoard(pos)

	m, _, err := newSearcher().BestMove(context.Background(), b, 2)
	require.NoError(t, err)

	next, ok := pos.Move(m)
	require.True(t, ok)
	assert.False(t, board.NewBoard(next).IsStalemate(), "a stalemating move (e.g. Kh6 or Qe6) must never be chosen")
}

func TestBestMoveEndgameKingHerding(t *testing.T) {
	pos, err := fen.Decode("8/8/8/4k3/8/8/8/R3K3 w Q - 0 1")
	require.NoError(t, err)
	b := board.NewBoard(pos)

	blackKingBefore := pos.KingSquare(board.Black)
	whiteKingBefore := pos.KingSquare(board.White)
	distBefore := board.ManhattanDistance(blackKingBefore, whiteKingBefore)

	m, _, err := newSearcher().BestMove(context.Background(), b, 4)
	require.NoError(t, err)

	next, ok := pos.Move(m)
	require.True(t, ok)

	distAfter := board.ManhattanDistance(next.KingSquare(board.Black), next.KingSquare(board.White))
	towardEdge := edgeDistance(next.KingSquare(board.Black)) <= edgeDistance(blackKingBefore)
	assert.True(t, distAfter <= distBefore || towardEdge,
		"the chosen move must either close on the Black king or push it toward an edge")
}

func edgeDistance(sq board.Square) int {
	f, r := int(sq.File()), int(sq.Rank())
	edge := f
	if 7-f < edge {
		edge = 7 - f
	}
	if r < edge {
		edge = r
	}
	if 7-r < edge {
		edge = 7 - r
	}
	return edge
}

func TestSearchScoreInitialPositionIsEven(t *testing.T) {
	b := board.NewBoard(board.InitialPosition())
	searcher := newSearcher()

	score := searcher.SearchScore(context.Background(), b, 2, eval.MinScore, eval.MaxScore)
	assert.Equal(t, eval.Score(0), score, "a symmetric position at a shallow depth should score even")
}

func TestBestMoveNoLegalMoveOnTerminalPosition(t *testing.T) {
	pos, err := fen.Decode("R5k1/5ppp/8/8/8/8/5PPP/6K1 b - - 0 1")
	require.NoError(t, err)
	b := board.NewBoard(pos)
	require.True(t, b.IsCheckmate())

	_, _, err = newSearcher().BestMove(context.Background(), b, 2)
	assert.ErrorIs(t, err, search.ErrNoLegalMove)
}
