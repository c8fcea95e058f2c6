package board_test

import (
	"testing"

	"github.com/PhilipiGomes/ChessEngine/internal/board"
	"github.com/PhilipiGomes/ChessEngine/internal/board/fen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushPopRestoresPosition(t *testing.T) {
	b := board.NewBoard(board.InitialPosition())
	before := b.Hash()
	beforeFEN := fen.Encode(b.Position())

	m := board.Move{Type: board.Jump, Piece: board.Pawn, From: board.E2, To: board.E4}
	require.True(t, b.PushMove(m))
	assert.NotEqual(t, before, b.Hash())

	popped, ok := b.PopMove()
	require.True(t, ok)
	assert.Equal(t, m, popped)
	assert.Equal(t, before, b.Hash())
	assert.Equal(t, beforeFEN, fen.Encode(b.Position()))
}

func TestPopOnFreshBoardFails(t *testing.T) {
	b := board.NewBoard(board.InitialPosition())
	_, ok := b.PopMove()
	assert.False(t, ok)
}

func TestStalemateAdjudication(t *testing.T) {
	pos, err := fen.Decode("7k/5Q2/6K1/8/8/8/8/8 w - - 0 1")
	require.NoError(t, err)
	b := board.NewBoard(pos)

	m := board.Move{Type: board.Normal, Piece: board.King, From: board.G6, To: board.H6}
	require.True(t, b.PushMove(m))
	assert.True(t, b.IsStalemate())
}

func TestFork(t *testing.T) {
	b := board.NewBoard(board.InitialPosition())
	m := board.Move{Type: board.Jump, Piece: board.Pawn, From: board.E2, To: board.E4}
	require.True(t, b.PushMove(m))

	f := b.Fork()
	f2 := board.Move{Type: board.Jump, Piece: board.Pawn, From: board.E7, To: board.E5}
	require.True(t, f.PushMove(f2))

	assert.NotEqual(t, b.Hash(), f.Hash(), "fork must not mutate the original board")
}

func TestFivefoldRepetitionDraw(t *testing.T) {
	pos, err := fen.Decode("4k3/8/8/8/8/8/8/4K2R w - - 0 1")
	require.NoError(t, err)
	b := board.NewBoard(pos)

	shuttle := []board.Move{
		{Type: board.Normal, Piece: board.King, From: board.E1, To: board.D1},
		{Type: board.Normal, Piece: board.King, From: board.E8, To: board.D8},
		{Type: board.Normal, Piece: board.King, From: board.D1, To: board.E1},
		{Type: board.Normal, Piece: board.King, From: board.D8, To: board.E8},
	}
	for i := 0; i < 4 && !b.IsFivefoldRepetition(); i++ {
		for _, m := range shuttle {
			require.True(t, b.PushMove(m))
		}
	}
	assert.True(t, b.IsFivefoldRepetition())
	assert.True(t, b.IsGameOver())
}
