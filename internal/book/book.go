// Package book implements a simple sequence-prefix opening book: a fixed
// dictionary of named SAN lines, filtered against the game's move history
// so far.
package book

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/PhilipiGomes/ChessEngine/internal/board"
	"github.com/PhilipiGomes/ChessEngine/internal/board/fen"
)

// Line is a named opening line: an ordered sequence of SAN moves from the
// standard starting position.
type Line struct {
	Name  string
	Moves []string
}

func (l Line) String() string {
	return fmt.Sprintf("%v: %v", l.Name, strings.Join(l.Moves, " "))
}

// Book is a read-only mapping from opening name to SAN sequence, queried by
// strict-prefix match against the game's move history so far.
type Book struct {
	lines []Line
	rand  *rand.Rand
}

// New validates lines against the starting position -- every line's moves
// must be playable in sequence -- and returns a Book. rnd is injected so
// random selection among matching lines can be seeded deterministically in
// tests.
func New(lines []Line, rnd *rand.Rand) (*Book, error) {
	for _, l := range lines {
		if err := validate(l); err != nil {
			return nil, fmt.Errorf("book: invalid line %q: %w", l.Name, err)
		}
	}
	return &Book{lines: lines, rand: rnd}, nil
}

func validate(l Line) error {
	pos, err := fen.Decode(fen.Initial)
	if err != nil {
		return err
	}
	for _, san := range l.Moves {
		m, err := pos.ParseSAN(san)
		if err != nil {
			return fmt.Errorf("move %q: %w", san, err)
		}
		next, ok := pos.Move(m)
		if !ok {
			return fmt.Errorf("move %q: not legal", san)
		}
		pos = next
	}
	return nil
}

// Next returns the next book move for a game whose SAN history so far is
// `history`, chosen uniformly at random among every line for which history
// is a strict prefix. Returns ok=false if no line matches (the caller
// should fall through to search, and need not consult the book again for
// this game).
func (b *Book) Next(history []string) (string, bool) {
	var matches []Line
	for _, l := range b.lines {
		if isPrefix(history, l.Moves) && len(l.Moves) > len(history) {
			matches = append(matches, l)
		}
	}
	if len(matches) == 0 {
		return "", false
	}
	chosen := matches[b.rand.Intn(len(matches))]
	return chosen.Moves[len(history)], true
}

func isPrefix(history, line []string) bool {
	if len(history) > len(line) {
		return false
	}
	for i, m := range history {
		if line[i] != m {
			return false
		}
	}
	return true
}
