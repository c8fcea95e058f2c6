package eval

import (
	"github.com/PhilipiGomes/ChessEngine/internal/board"
	"github.com/seekerror/stdlib/pkg/util/mathx"
)

// pieceSquareTable holds positional bonuses for all 64 squares, authored
// from White's point of view: index 0 = a1 .. 63 = h8. A Black piece is
// scored by mirroring the square vertically (board.Square.Mirror).
type pieceSquareTable [64]Score

// fromTopDown builds a pieceSquareTable from a literal written the way
// these tables are conventionally printed in source: rank 8 first, file a
// to h, matching how the board looks on screen with White at the bottom.
func fromTopDown(rows [8][8]float64) pieceSquareTable {
	var t pieceSquareTable
	for i, row := range rows {
		rank := board.Rank(7 - i)
		for file, v := range row {
			t[board.NewSquare(board.File(file), rank)] = Score(v)
		}
	}
	return t
}

var pawnTable = fromTopDown([8][8]float64{
	{0, 0, 0, 0, 0, 0, 0, 0},
	{50, 50, 50, 50, 50, 50, 50, 50},
	{10, 10, 20, 30, 30, 20, 10, 10},
	{5, 5, 10, 25, 25, 10, 5, 5},
	{0, 0, 0, 20, 20, 0, 0, 0},
	{5, -5, -10, 0, 0, -10, -5, 5},
	{5, 10, 10, -20, -20, 10, 10, 5},
	{0, 0, 0, 0, 0, 0, 0, 0},
})

var pawnEndgameTable = fromTopDown([8][8]float64{
	{0, 0, 0, 0, 0, 0, 0, 0},
	{80, 80, 80, 80, 80, 80, 80, 80},
	{50, 50, 50, 50, 50, 50, 50, 50},
	{30, 30, 30, 30, 30, 30, 30, 30},
	{20, 20, 20, 20, 20, 20, 20, 20},
	{10, 10, 10, 10, 10, 10, 10, 10},
	{10, 10, 10, 10, 10, 10, 10, 10},
	{0, 0, 0, 0, 0, 0, 0, 0},
})

var knightTable = fromTopDown([8][8]float64{
	{-50, -40, -30, -30, -30, -30, -40, -50},
	{-40, -20, 0, 0, 0, 0, -20, -40},
	{-30, 0, 10, 15, 15, 10, 0, -30},
	{-30, 5, 15, 20, 20, 15, 5, -30},
	{-30, 0, 15, 20, 20, 15, 0, -30},
	{-30, 5, 10, 15, 15, 10, 5, -30},
	{-40, -20, 0, 5, 5, 0, -20, -40},
	{-50, -40, -30, -30, -30, -30, -40, -50},
})

var bishopTable = fromTopDown([8][8]float64{
	{-20, -10, -10, -10, -10, -10, -10, -20},
	{-10, 0, 0, 0, 0, 0, 0, -10},
	{-10, 0, 5, 10, 10, 5, 0, -10},
	{-10, 5, 5, 10, 10, 5, 5, -10},
	{-10, 0, 10, 10, 10, 10, 0, -10},
	{-10, 10, 10, 10, 10, 10, 10, -10},
	{-10, 5, 0, 0, 0, 0, 5, -10},
	{-20, -10, -10, -10, -10, -10, -10, -20},
})

var rookTable = fromTopDown([8][8]float64{
	{0, 0, 0, 0, 0, 0, 0, 0},
	{5, 10, 10, 10, 10, 10, 10, 5},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{0, 0, 0, 5, 5, 0, 0, 0},
})

var queenTable = fromTopDown([8][8]float64{
	{-20, -10, -10, -5, -5, -10, -10, -20},
	{-10, 0, 0, 0, 0, 0, 0, -10},
	{-10, 0, 5, 5, 5, 5, 0, -10},
	{-5, 0, 5, 5, 5, 5, 0, -5},
	{0, 0, 5, 5, 5, 5, 0, -5},
	{-10, 5, 5, 5, 5, 5, 0, -10},
	{-10, 0, 5, 0, 0, 0, 0, -10},
	{-20, -10, -10, -5, -5, -10, -10, -20},
})

var kingTable = fromTopDown([8][8]float64{
	{-30, -40, -40, -50, -50, -40, -40, -30},
	{-30, -40, -40, -50, -50, -40, -40, -30},
	{-30, -40, -40, -50, -50, -40, -40, -30},
	{-30, -40, -40, -50, -50, -40, -40, -30},
	{-20, -30, -30, -40, -40, -30, -30, -20},
	{-10, -20, -20, -20, -20, -20, -20, -10},
	{20, 20, 0, 0, 0, 0, 20, 20},
	{20, 30, 10, 0, 0, 10, 30, 20},
})

var kingEndgameTable = fromTopDown([8][8]float64{
	{-50, -40, -30, -20, -20, -30, -40, -50},
	{-30, -20, -10, 0, 0, -10, -20, -30},
	{-30, -10, 20, 30, 30, 20, -10, -30},
	{-30, -10, 30, 40, 40, 30, -10, -30},
	{-30, -10, 30, 40, 40, 30, -10, -30},
	{-30, -10, 20, 30, 30, 20, -10, -30},
	{-30, -30, 0, 0, 0, 0, -30, -30},
	{-50, -30, -30, -30, -30, -30, -30, -50},
})

func tableFor(p board.Piece, endgame bool) pieceSquareTable {
	switch {
	case endgame && p == board.King:
		return kingEndgameTable
	case endgame && p == board.Pawn:
		return pawnEndgameTable
	default:
		switch p {
		case board.Pawn:
			return pawnTable
		case board.Knight:
			return knightTable
		case board.Bishop:
			return bishopTable
		case board.Rook:
			return rookTable
		case board.Queen:
			return queenTable
		case board.King:
			return kingTable
		default:
			return pieceSquareTable{}
		}
	}
}

// at returns the table bonus for a piece of the given color standing on sq.
func (t pieceSquareTable) at(c board.Color, sq board.Square) Score {
	if c == board.Black {
		sq = sq.Mirror()
	}
	return t[sq]
}

// maxKingDistance is the largest possible Manhattan distance between two
// squares on an 8x8 board.
const maxKingDistance = 14

// maxCenterDistance is the largest possible Manhattan distance from a
// corner to its nearest central square.
const maxCenterDistance = 6

var centerSquares = [4]board.Square{board.D4, board.E4, board.D5, board.E5}

// centerDistance returns sq's Manhattan distance to the nearest of the
// four central squares (d4/d5/e4/e5).
func centerDistance(sq board.Square) int {
	best := maxCenterDistance
	for _, c := range centerSquares {
		if d := board.ManhattanDistance(sq, c); d < best {
			best = d
		}
	}
	return best
}

// IsEndgame reports whether a position should be scored with endgame
// piece-square tables and the king-herding term, per spec: no queens on the
// board, or at most one major (rook/queen) total, or exactly two majors
// with fewer than three minors.
func IsEndgame(pos *board.Position) bool {
	queens := pos.Piece(board.White, board.Queen).PopCount() + pos.Piece(board.Black, board.Queen).PopCount()
	if queens == 0 {
		return true
	}
	majors := queens + pos.Piece(board.White, board.Rook).PopCount() + pos.Piece(board.Black, board.Rook).PopCount()
	if majors <= 1 {
		return true
	}
	minors := pos.Piece(board.White, board.Knight).PopCount() + pos.Piece(board.Black, board.Knight).PopCount() +
		pos.Piece(board.White, board.Bishop).PopCount() + pos.Piece(board.Black, board.Bishop).PopCount()
	return majors == 2 && minors < 3
}

// nonPawnMaterial returns the color's non-pawn, non-king material, used to
// scale the endgame king-herding weight.
func nonPawnMaterial(pos *board.Position, c board.Color) Score {
	var score Score
	for _, p := range []board.Piece{board.Knight, board.Bishop, board.Rook, board.Queen} {
		score += Score(pos.Piece(c, p).PopCount()) * NominalValue(p)
	}
	return score
}

// kingHerding returns the endgame king-herding term, signed from White's
// perspective: positive rewards White for driving the Black king away from
// the center and toward White's king, scaled down as the losing side's
// remaining material grows. Two components, per the losing (defending)
// king: its distance from the center, and its Manhattan proximity to the
// attacking king.
func kingHerding(pos *board.Position) Score {
	wk := pos.KingSquare(board.White)
	bk := pos.KingSquare(board.Black)
	proximity := Score(maxKingDistance - board.ManhattanDistance(wk, bk))

	// the side with more material drives the opponent's king; herding
	// bonus is signed so that side benefits. Exactly balanced material
	// gives neither side an advantage to press.
	wMat := Material(pos)
	if wMat == 0 {
		return 0
	}
	var attacker board.Color
	if wMat > 0 {
		attacker = board.White
	} else {
		attacker = board.Black
	}
	defender := attacker.Opponent()

	defenderKing := wk
	if defender == board.Black {
		defenderKing = bk
	}
	fromCenter := Score(centerDistance(defenderKing))

	weight := 1 - nonPawnMaterial(pos, defender)/Score(NominalValue(board.Queen)*2+NominalValue(board.Rook)*2)
	weight = mathx.Max(weight, 0)

	herding := (proximity + fromCenter) * weight
	if attacker == board.Black {
		herding = -herding
	}
	return herding
}
