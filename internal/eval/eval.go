package eval

import "github.com/PhilipiGomes/ChessEngine/internal/board"

// Evaluator is a static position evaluator: a pure function of a Board's
// current position, scored from White's perspective.
type Evaluator interface {
	Evaluate(b *board.Board) Score
}

// Standard is an additive evaluator: terminal detection, material,
// piece-square positional bonuses and an endgame king-herding term.
type Standard struct{}

// Evaluate returns the position score in pawns, positive favoring White.
func (Standard) Evaluate(b *board.Board) Score {
	if b.IsCheckmate() {
		if b.Turn() == board.White {
			return -MateScore
		}
		return MateScore
	}
	if b.IsStalemate() || b.IsInsufficientMaterial() || b.IsSeventyFiveMoves() || b.IsFivefoldRepetition() {
		return 0
	}

	pos := b.Position()
	endgame := IsEndgame(pos)

	score := Material(pos)
	score += positional(pos, endgame)
	if endgame {
		score += kingHerding(pos)
	}
	return score
}

func positional(pos *board.Position, endgame bool) Score {
	var score Score
	for c := board.ZeroColor; c < board.NumColors; c++ {
		for p := board.ZeroPiece; p < board.NumPieces; p++ {
			table := tableFor(p, endgame)
			bb := pos.Piece(c, p)
			for _, sq := range bb.ToSquares() {
				if c == board.White {
					score += table.at(c, sq)
				} else {
					score -= table.at(c, sq)
				}
			}
		}
	}
	return score
}
