package fen_test

import (
	"testing"

	"github.com/PhilipiGomes/ChessEngine/internal/board/fen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeInitial(t *testing.T) {
	pos, err := fen.Decode(fen.Initial)
	require.NoError(t, err)
	assert.Equal(t, fen.Initial, fen.Encode(pos))
}

func TestRoundTrip(t *testing.T) {
	tests := []string{
		fen.Initial,
		"6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1",
		"7k/5Q2/6K1/8/8/8/8/8 w - - 0 1",
		"8/8/8/4k3/8/8/8/R3K3 w Q - 0 1",
		"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
		"4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1",
	}
	for _, in := range tests {
		pos, err := fen.Decode(in)
		require.NoError(t, err, in)
		assert.Equal(t, in, fen.Encode(pos), in)
	}
}

func TestDecodeInvalid(t *testing.T) {
	tests := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0", // missing field
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1",        // missing ranks
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",
		"8/8/8/8/8/8/8/8 w - - 0 1", // no kings
	}
	for _, in := range tests {
		_, err := fen.Decode(in)
		assert.Error(t, err, in)
	}
}
