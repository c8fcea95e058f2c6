// Package eval implements static position evaluation: material balance,
// piece-square positional bonuses and an endgame king-herding term.
package eval

import (
	"fmt"

	"github.com/PhilipiGomes/ChessEngine/internal/board"
	"github.com/seekerror/stdlib/pkg/util/mathx"
)

// Score is a signed position score in pawns, positive favoring White.
type Score float64

const (
	// MateScore denotes checkmate for the side to move in zero plies.
	// Mate in N is encoded as MateScore-N so shorter mates sort higher.
	MateScore Score = 100000

	MinScore Score = -MateScore - 1
	MaxScore Score = MateScore + 1
)

func (s Score) String() string {
	return fmt.Sprintf("%.2f", s)
}

// Unit returns the signed unit for the color: 1 for White, -1 for Black.
func Unit(c board.Color) Score {
	return Score(c.Unit())
}

// Max returns the largest of the given scores.
func Max(a, b Score) Score {
	return mathx.Max(a, b)
}

// Min returns the smallest of the given scores.
func Min(a, b Score) Score {
	return mathx.Min(a, b)
}

// IsMate returns true iff the score encodes a forced mate (for either side).
func IsMate(s Score) bool {
	return s >= MateScore-1000 || s <= -MateScore+1000
}

// MateIn returns the number of plies to mate encoded in s, and true iff s
// encodes a mate score. A positive N means the side whose perspective s is
// scored from delivers mate in N; negative means it gets mated in -N.
func MateIn(s Score) (int, bool) {
	switch {
	case s >= MateScore-1000:
		return int(MateScore - s), true
	case s <= -MateScore+1000:
		return -int(MateScore + s), true
	default:
		return 0, false
	}
}
