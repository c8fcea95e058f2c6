package board

import (
	"fmt"
	"strings"
)

// SAN renders a legal move m of position p in Standard Algebraic Notation,
// e.g. "Nf3", "exd5", "e8=Q+", "O-O".
func (p *Position) SAN(m Move) string {
	var s string
	switch {
	case m.Type == KingSideCastle:
		s = "O-O"
	case m.Type == QueenSideCastle:
		s = "O-O-O"
	case m.Piece == Pawn:
		s = p.pawnSAN(m)
	default:
		s = p.pieceSAN(m)
	}

	if next, ok := p.Move(m); ok {
		if next.IsCheck() {
			if len(next.LegalMoves()) == 0 {
				s += "#"
			} else {
				s += "+"
			}
		}
	}
	return s
}

func (p *Position) pawnSAN(m Move) string {
	var sb strings.Builder
	if m.IsCapture() {
		sb.WriteString(m.From.File().String())
		sb.WriteString("x")
	}
	sb.WriteString(m.To.String())
	if m.IsPromotion() {
		sb.WriteString("=")
		sb.WriteString(strings.ToUpper(m.Promotion.String()))
	}
	return sb.String()
}

func (p *Position) pieceSAN(m Move) string {
	var sb strings.Builder
	sb.WriteString(strings.ToUpper(m.Piece.String()))
	sb.WriteString(p.disambiguate(m))
	if m.IsCapture() {
		sb.WriteString("x")
	}
	sb.WriteString(m.To.String())
	return sb.String()
}

// disambiguate returns the minimal file/rank/square prefix needed to tell m
// apart from other legal moves of the same piece type to the same square.
func (p *Position) disambiguate(m Move) string {
	sameFile, sameRank := false, false
	ambiguous := false
	for _, other := range p.LegalMoves() {
		if other.Piece != m.Piece || other.To != m.To || other.From == m.From {
			continue
		}
		ambiguous = true
		if other.From.File() == m.From.File() {
			sameFile = true
		}
		if other.From.Rank() == m.From.Rank() {
			sameRank = true
		}
	}
	switch {
	case !ambiguous:
		return ""
	case !sameFile:
		return m.From.File().String()
	case !sameRank:
		return m.From.Rank().String()
	default:
		return m.From.String()
	}
}

// ParseSAN finds the legal move of p matching a SAN string, e.g. "Nf3" or
// "exd5". It works by generating SAN for every legal move and comparing,
// since the board package has no separate SAN grammar to parse against.
func (p *Position) ParseSAN(san string) (Move, error) {
	want := strings.TrimRight(san, "+#")
	for _, m := range p.LegalMoves() {
		if strings.TrimRight(p.SAN(m), "+#") == want {
			return m, nil
		}
	}
	return Move{}, fmt.Errorf("board: no legal move matches SAN %q", san)
}
