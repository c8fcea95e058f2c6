// Package fen reads and writes chess positions in Forsyth-Edwards Notation.
package fen

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/PhilipiGomes/ChessEngine/internal/board"
)

// Initial is the FEN of the standard starting position.
const Initial = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Decode parses a FEN record into a Position; the side to move, castling
// rights, en passant target and move counters are part of the Position.
//
// Example: "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
func Decode(record string) (*board.Position, error) {
	parts := strings.Fields(strings.TrimSpace(record))
	if len(parts) != 6 {
		return nil, fmt.Errorf("fen: expected 6 fields, got %v: %q", len(parts), record)
	}

	pieces, err := decodePlacement(parts[0])
	if err != nil {
		return nil, fmt.Errorf("fen: %w: %q", err, record)
	}

	turn, ok := parseColor(parts[1])
	if !ok {
		return nil, fmt.Errorf("fen: invalid active color %q: %q", parts[1], record)
	}

	castling, err := board.ParseCastling(parts[2])
	if err != nil {
		return nil, fmt.Errorf("fen: %w: %q", err, record)
	}

	ep := board.NoSquare
	if parts[3] != "-" {
		sq, err := board.ParseSquareStr(parts[3])
		if err != nil {
			return nil, fmt.Errorf("fen: invalid en passant square %q: %w", parts[3], err)
		}
		ep = sq
	}

	halfmove, err := strconv.Atoi(parts[4])
	if err != nil || halfmove < 0 {
		return nil, fmt.Errorf("fen: invalid halfmove clock %q: %q", parts[4], record)
	}
	fullmove, err := strconv.Atoi(parts[5])
	if err != nil || fullmove < 1 {
		return nil, fmt.Errorf("fen: invalid fullmove number %q: %q", parts[5], record)
	}

	return board.NewPosition(pieces, turn, castling, ep, halfmove, fullmove)
}

func decodePlacement(field string) ([]board.Placement, error) {
	ranks := strings.Split(field, "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("expected 8 ranks, got %v", len(ranks))
	}

	var pieces []board.Placement
	for i, rankStr := range ranks {
		rank := board.Rank(7 - i) // FEN lists rank 8 first
		file := board.FileA

		for _, r := range rankStr {
			switch {
			case unicode.IsDigit(r):
				file += board.File(r - '0')
			case unicode.IsLetter(r):
				if file > board.FileH {
					return nil, fmt.Errorf("rank %v overflows", rank)
				}
				color, piece, ok := parsePiece(r)
				if !ok {
					return nil, fmt.Errorf("invalid piece %q", r)
				}
				pieces = append(pieces, board.Placement{Square: board.NewSquare(file, rank), Color: color, Piece: piece})
				file++
			default:
				return nil, fmt.Errorf("invalid character %q", r)
			}
		}
		if file != board.FileH+1 {
			return nil, fmt.Errorf("rank %v has wrong length", rank)
		}
	}
	return pieces, nil
}

// Encode renders a position as a FEN record.
func Encode(pos *board.Position) string {
	var sb strings.Builder
	for r := int(board.Rank8); r >= 0; r-- {
		blanks := 0
		for f := board.FileA; f <= board.FileH; f++ {
			sq := board.NewSquare(f, board.Rank(r))
			c, piece, ok := pos.PieceAt(sq)
			if !ok {
				blanks++
				continue
			}
			if blanks > 0 {
				sb.WriteString(strconv.Itoa(blanks))
				blanks = 0
			}
			sb.WriteRune(printPiece(c, piece))
		}
		if blanks > 0 {
			sb.WriteString(strconv.Itoa(blanks))
		}
		if r != 0 {
			sb.WriteRune('/')
		}
	}

	ep := "-"
	if sq, ok := pos.EnPassant(); ok {
		ep = sq.String()
	}

	return fmt.Sprintf("%v %v %v %v %v %v", sb.String(), pos.Turn(), pos.Castling(), ep, pos.HalfmoveClock(), pos.FullmoveNumber())
}

func parseColor(s string) (board.Color, bool) {
	switch s {
	case "w":
		return board.White, true
	case "b":
		return board.Black, true
	default:
		return 0, false
	}
}

func parsePiece(r rune) (board.Color, board.Piece, bool) {
	piece, ok := board.ParsePiece(r)
	if !ok {
		return 0, 0, false
	}
	if unicode.IsUpper(r) {
		return board.White, piece, true
	}
	return board.Black, piece, true
}

func printPiece(c board.Color, p board.Piece) rune {
	s := p.String()
	if c == board.White {
		s = strings.ToUpper(s)
	}
	return []rune(s)[0]
}
