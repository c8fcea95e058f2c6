// Package engine wires the board, opening book, evaluator and searcher
// into a single move-selecting entry point.
package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/PhilipiGomes/ChessEngine/internal/board"
	"github.com/PhilipiGomes/ChessEngine/internal/board/fen"
	"github.com/PhilipiGomes/ChessEngine/internal/book"
	"github.com/PhilipiGomes/ChessEngine/internal/search"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
)

var version = build.NewVersion(0, 1, 0)

// Options are engine creation and runtime options.
type Options struct {
	// Depth is the nominal search depth in plies. Must be positive.
	Depth uint
	// Hash is the transposition table size in MB. If zero, the engine runs
	// without a transposition table.
	Hash uint
}

func (o Options) String() string {
	return fmt.Sprintf("{depth=%v, hash=%v}", o.Depth, o.Hash)
}

// TranspositionTableFactory allocates a transposition table of roughly the
// given size in bytes.
type TranspositionTableFactory func(size uint64) search.TranspositionTable

// Engine encapsulates opening-book lookup, move ordering, evaluation and
// alpha-beta search behind a single BestMove entry point.
type Engine struct {
	name, author string

	factory TranspositionTableFactory
	book    *book.Book
	opts    Options

	b        *board.Board
	tt       search.TranspositionTable
	launcher search.Launcher
	mu       sync.Mutex
}

// Option is an engine creation option.
type Option func(*Engine)

// WithTable configures the engine to use the given transposition table factory.
func WithTable(factory TranspositionTableFactory) Option {
	return func(e *Engine) { e.factory = factory }
}

// WithOptions sets the default runtime options.
func WithOptions(opts Options) Option {
	return func(e *Engine) { e.opts = opts }
}

// WithBook configures the engine's opening book. Without this option the
// engine never consults a book and always searches.
func WithBook(b *book.Book) Option {
	return func(e *Engine) { e.book = b }
}

// New creates an engine at the standard starting position.
func New(ctx context.Context, name, author string, opts ...Option) *Engine {
	e := &Engine{
		name:    name,
		author:  author,
		factory: search.NewTranspositionTable,
		opts:    Options{Depth: 4},
	}
	for _, fn := range opts {
		fn(e)
	}

	if err := e.Reset(ctx, fen.Initial); err != nil {
		logw.Exitf(ctx, "invalid initial position: %v", err)
	}

	logw.Infof(ctx, "Initialized engine: %v, options=%v", e.Name(), e.opts)
	return e
}

// Name returns the engine name and version.
func (e *Engine) Name() string {
	return fmt.Sprintf("%v %v", e.name, version)
}

// Author returns the author.
func (e *Engine) Author() string {
	return e.author
}

// Options returns the current runtime options.
func (e *Engine) Options() Options {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.opts
}

// Board returns a forked board reflecting the engine's current position;
// safe for the caller to mutate independently.
func (e *Engine) Board() *board.Board {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.b.Fork()
}

// Position returns the current position in FEN.
func (e *Engine) Position() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return fen.Encode(e.b.Position())
}

// Reset resets the engine to the position given in FEN, discarding any
// search state (transposition table included).
func (e *Engine) Reset(ctx context.Context, position string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	pos, err := fen.Decode(position)
	if err != nil {
		return err
	}
	e.b = board.NewBoard(pos)

	e.tt = search.TranspositionTable(search.NoTranspositionTable{})
	if e.opts.Hash > 0 {
		e.tt = e.factory(uint64(e.opts.Hash) << 20)
	}
	e.launcher = search.FixedDepthLauncher{Searcher: search.NewSearcher(e.tt)}

	logw.Infof(ctx, "Reset %v", position)
	return nil
}

// Move applies a move given in SAN, usually an opponent's move.
func (e *Engine) Move(ctx context.Context, san string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	m, err := e.b.Position().ParseSAN(san)
	if err != nil {
		return fmt.Errorf("invalid move %q: %w", san, err)
	}
	if !e.b.PushMove(m) {
		return fmt.Errorf("illegal move: %v", san)
	}
	logw.Infof(ctx, "Move %v: %v", san, e.b)
	return nil
}

// TakeBack undoes the latest move.
func (e *Engine) TakeBack(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	m, ok := e.b.PopMove()
	if !ok {
		return fmt.Errorf("no move to take back")
	}
	logw.Infof(ctx, "Takeback %v", m)
	return nil
}

// BestMove returns the engine's choice for the current position: a book
// move when history is a strict prefix of a known opening line, otherwise
// the result of an alpha-beta search to the configured depth. The book is
// consulted only when history is non-empty or the current position is the
// standard starting position. history is the game's move sequence so far
// in SAN, matching what the book was built from.
func (e *Engine) BestMove(ctx context.Context, history []string) (board.Move, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	bookEligible := len(history) > 0 || e.b.Position().Hash() == board.InitialPosition().Hash()
	if e.book != nil && bookEligible {
		if san, ok := e.book.Next(history); ok {
			if m, err := e.b.Position().ParseSAN(san); err == nil {
				logw.Infof(ctx, "Book move: %v", san)
				return m, nil
			}
			logw.Infof(ctx, "Book line referenced unplayable move %q, falling through to search", san)
		}
	}

	m, score, err := e.launcher.Launch(ctx, e.b, search.Options{Depth: int(e.opts.Depth)})
	if err != nil {
		return board.Move{}, err
	}
	logw.Infof(ctx, "Search: %v (score=%v, depth=%v)", m, score, e.opts.Depth)
	return m, nil
}
