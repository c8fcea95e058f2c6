package eval

import "github.com/PhilipiGomes/ChessEngine/internal/board"

// NominalValue returns the absolute nominal value in pawns of a piece type.
// The King has no material value: its presence is not optional, so it never
// contributes to a material balance.
func NominalValue(p board.Piece) Score {
	switch p {
	case board.Pawn:
		return 1.0
	case board.Knight:
		return 3.0
	case board.Bishop:
		return 3.2
	case board.Rook:
		return 5.0
	case board.Queen:
		return 9.0
	default:
		return 0
	}
}

// NominalValueGain is the nominal material gain a move captures or promotes.
func NominalValueGain(m board.Move) Score {
	switch m.Type {
	case board.CapturePromotion:
		return NominalValue(m.Capture) + NominalValue(m.Promotion) - NominalValue(board.Pawn)
	case board.Promotion:
		return NominalValue(m.Promotion) - NominalValue(board.Pawn)
	case board.Capture:
		return NominalValue(m.Capture)
	case board.EnPassant:
		return NominalValue(board.Pawn)
	default:
		return 0
	}
}

// Material returns the material balance of a position from White's
// perspective: sum of White piece values minus Black piece values.
func Material(pos *board.Position) Score {
	var score Score
	for p := board.ZeroPiece; p < board.NumPieces; p++ {
		wn := pos.Piece(board.White, p).PopCount()
		bn := pos.Piece(board.Black, p).PopCount()
		score += Score(wn-bn) * NominalValue(p)
	}
	return score
}
