package board

import "fmt"

// Square represents a square on the board, ordered a1=0, b1=1, .. h8=63. File
// = sq%8 (a=0..h=7), Rank = sq/8 (1=0..8=7). 6 bits.
type Square uint8

const (
	ZeroSquare Square = 0
	NumSquares Square = 64
	NoSquare   Square = 64 // sentinel: no en passant target, etc.
)

// File represents a board file, a=0..h=7.
type File uint8

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

// Rank represents a board rank, 1=0..8=7.
type Rank uint8

const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

// Named squares, for readable tests and castling/en-passant bookkeeping.
const (
	A1, B1, C1, D1, E1, F1, G1, H1 Square = 0, 1, 2, 3, 4, 5, 6, 7
	A2, B2, C2, D2, E2, F2, G2, H2 Square = 8, 9, 10, 11, 12, 13, 14, 15
	A3, B3, C3, D3, E3, F3, G3, H3 Square = 16, 17, 18, 19, 20, 21, 22, 23
	A4, B4, C4, D4, E4, F4, G4, H4 Square = 24, 25, 26, 27, 28, 29, 30, 31
	A5, B5, C5, D5, E5, F5, G5, H5 Square = 32, 33, 34, 35, 36, 37, 38, 39
	A6, B6, C6, D6, E6, F6, G6, H6 Square = 40, 41, 42, 43, 44, 45, 46, 47
	A7, B7, C7, D7, E7, F7, G7, H7 Square = 48, 49, 50, 51, 52, 53, 54, 55
	A8, B8, C8, D8, E8, F8, G8, H8 Square = 56, 57, 58, 59, 60, 61, 62, 63
)

func NewSquare(f File, r Rank) Square {
	return Square(r)*8 + Square(f)
}

func (s Square) File() File {
	return File(s % 8)
}

func (s Square) Rank() Rank {
	return Rank(s / 8)
}

func (s Square) IsValid() bool {
	return s < NumSquares
}

// Mirror returns the vertically-flipped square (rank mirrored, file unchanged),
// i.e. the square a White piece-square-table index would use to score the
// equivalent Black piece.
func (s Square) Mirror() Square {
	return s ^ 56
}

func ParseFile(r rune) (File, bool) {
	if r < 'a' || r > 'h' {
		return 0, false
	}
	return File(r - 'a'), true
}

func ParseRank(r rune) (Rank, bool) {
	if r < '1' || r > '8' {
		return 0, false
	}
	return Rank(r - '1'), true
}

func ParseSquare(f, r rune) (Square, error) {
	file, ok := ParseFile(f)
	if !ok {
		return 0, fmt.Errorf("invalid file: %q", f)
	}
	rank, ok := ParseRank(r)
	if !ok {
		return 0, fmt.Errorf("invalid rank: %q", r)
	}
	return NewSquare(file, rank), nil
}

func ParseSquareStr(str string) (Square, error) {
	runes := []rune(str)
	if len(runes) != 2 {
		return 0, fmt.Errorf("invalid square: %q", str)
	}
	return ParseSquare(runes[0], runes[1])
}

func (f File) String() string {
	return string(rune('a' + f))
}

func (r Rank) String() string {
	return string(rune('1' + r))
}

func (s Square) String() string {
	return fmt.Sprintf("%v%v", s.File(), s.Rank())
}

// ManhattanDistance returns the Manhattan (taxicab) distance between two squares.
func ManhattanDistance(a, b Square) int {
	df := int(a.File()) - int(b.File())
	if df < 0 {
		df = -df
	}
	dr := int(a.Rank()) - int(b.Rank())
	if dr < 0 {
		dr = -dr
	}
	return df + dr
}
