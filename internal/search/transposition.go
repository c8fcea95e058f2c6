// Package search implements alpha-beta negamax search with a quiescence
// extension, move ordering and a transposition-table cache.
package search

import (
	"fmt"
	"math/bits"
	"sync/atomic"
	"unsafe"

	"github.com/PhilipiGomes/ChessEngine/internal/board"
	"github.com/PhilipiGomes/ChessEngine/internal/eval"
)

// Bound represents the bound of a -- possibly inexact -- search score,
// relative to the window it was computed in.
type Bound uint8

const (
	// ExactBound is a fully-searched score (no cutoff occurred).
	ExactBound Bound = iota
	// LowerBound is a fail-high score: the true score is at least this.
	LowerBound
	// UpperBound is a fail-low score: the true score is at most this.
	UpperBound
)

func (b Bound) String() string {
	switch b {
	case ExactBound:
		return "Exact"
	case LowerBound:
		return "Lower"
	case UpperBound:
		return "Upper"
	default:
		return "?"
	}
}

// TranspositionTable caches search results keyed by position hash. Probe
// reports what is stored; the searcher uses a stored score only when the
// stored depth is at least the depth requested and the stored bound is
// compatible with its window (see usable). Must be thread-safe.
type TranspositionTable interface {
	// Probe returns the bound, depth, score and best move (squares and
	// promotion only) recorded for hash, if present.
	Probe(hash board.ZobristHash) (Bound, int, eval.Score, board.Move, bool)
	// Store records an entry, subject to the table's replacement policy.
	Store(hash board.ZobristHash, bound Bound, ply, depth int, score eval.Score, move board.Move) bool

	// Size returns the size of the table in bytes.
	Size() uint64
	// Used returns the utilization as a fraction [0;1].
	Used() float64
}

// metadata captures node metadata: bound, best move and search depth.
type metadata struct {
	bound      Bound
	from, to   board.Square
	promotion  board.Piece
	ply, depth uint16
}

// node represents a single cached search result.
type node struct {
	hash  board.ZobristHash
	score eval.Score
	md    metadata
}

// table is a fixed-size, lock-free transposition table with single-slot
// replacement per hash bucket.
type table struct {
	table []*node
	mask  uint64
	used  uint64
}

// NewTranspositionTable allocates a table sized to roughly `size` bytes,
// rounded down to a power of two number of entries.
func NewTranspositionTable(size uint64) TranspositionTable {
	n := uint64(1 << (63 - 5 - bits.LeadingZeros64(size)))
	return &table{
		table: make([]*node, n),
		mask:  n - 1,
	}
}

func (t *table) Size() uint64 {
	return uint64(len(t.table)) << 5
}

func (t *table) Used() float64 {
	return float64(t.used) / float64(len(t.table))
}

// Probe returns the cached entry, if any. A caller must additionally check
// `depth <= stored.depth` and bound compatibility with its own
// [alpha, beta] window before using the score; Probe only reports what is
// stored, it does not interpret usability.
func (t *table) Probe(hash board.ZobristHash) (Bound, int, eval.Score, board.Move, bool) {
	key := uint64(hash) & t.mask
	addr := (*unsafe.Pointer)(unsafe.Pointer(&t.table[key]))

	ptr := (*node)(atomic.LoadPointer(addr))
	if ptr != nil && hash == ptr.hash {
		bestmove := board.Move{From: ptr.md.from, To: ptr.md.to, Promotion: ptr.md.promotion}
		return ptr.md.bound, int(ptr.md.depth), ptr.score, bestmove, true
	}
	return 0, 0, 0, board.Move{}, false
}

func (t *table) Store(hash board.ZobristHash, bound Bound, ply, depth int, score eval.Score, move board.Move) bool {
	key := uint64(hash) & t.mask
	addr := (*unsafe.Pointer)(unsafe.Pointer(&t.table[key]))

	fresh := &node{
		hash:  hash,
		score: score,
		md: metadata{
			bound:     bound,
			from:      move.From,
			to:        move.To,
			promotion: move.Promotion,
			ply:       uint16(ply),
			depth:     uint16(depth),
		},
	}

	ptr := (*node)(atomic.LoadPointer(addr))
	for {
		if val(ptr) > val(fresh) {
			return false // skip: higher value existing node
		}
		if atomic.CompareAndSwapPointer(addr, unsafe.Pointer(ptr), unsafe.Pointer(fresh)) {
			if ptr == nil {
				t.used++
			}
			return true
		}
		ptr = (*node)(atomic.LoadPointer(addr))
	}
}

func (t *table) String() string {
	return fmt.Sprintf("TT[%v @ %v%%]", t.Size(), int(100*t.Used()))
}

// val defines node value towards replacement logic: deeper, later searches
// win over shallower, earlier ones.
func val(n *node) uint16 {
	if n == nil {
		return 0
	}
	return n.md.ply + (n.md.depth << 1)
}

// NoTranspositionTable is a Nop implementation, useful for tests that want
// to exercise search without any caching.
type NoTranspositionTable struct{}

func (NoTranspositionTable) Probe(hash board.ZobristHash) (Bound, int, eval.Score, board.Move, bool) {
	return 0, 0, 0, board.Move{}, false
}

func (NoTranspositionTable) Store(hash board.ZobristHash, bound Bound, ply, depth int, score eval.Score, move board.Move) bool {
	return false
}

func (NoTranspositionTable) Size() uint64 { return 0 }
func (NoTranspositionTable) Used() float64 { return 0 }

// usable reports whether a TT entry found at `storedDepth`/`bound` can
// satisfy a probe at `depth` within window [alpha, beta].
func usable(storedDepth int, bound Bound, score, alpha, beta eval.Score, depth int) (eval.Score, bool) {
	if storedDepth < depth {
		return 0, false
	}
	switch bound {
	case ExactBound:
		return score, true
	case LowerBound:
		if score >= beta {
			return score, true
		}
	case UpperBound:
		if score <= alpha {
			return score, true
		}
	}
	return 0, false
}
