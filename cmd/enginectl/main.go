// Command enginectl runs a single position-in, move-out search: it is not
// a UCI or console protocol front-end.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/PhilipiGomes/ChessEngine/internal/board/fen"
	"github.com/PhilipiGomes/ChessEngine/internal/engine"
	"github.com/seekerror/logw"
)

var (
	position = flag.String("fen", fen.Initial, "Position to search, in FEN")
	depth    = flag.Uint("depth", 4, "Nominal search depth in plies")
	hash     = flag.Uint("hash", 32, "Transposition table size in MB (zero disables it)")
	history  = flag.String("history", "", "Comma-separated SAN move history for opening-book lookup")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: enginectl [options]

enginectl searches one position and prints the chosen move.
Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	e := engine.New(ctx, "enginectl", "PhilipiGomes", engine.WithOptions(engine.Options{
		Depth: *depth,
		Hash:  *hash,
	}))

	if err := e.Reset(ctx, *position); err != nil {
		logw.Exitf(ctx, "invalid position: %v", err)
	}

	var moves []string
	if *history != "" {
		moves = strings.Split(*history, ",")
	}

	m, err := e.BestMove(ctx, moves)
	if err != nil {
		logw.Exitf(ctx, "search failed: %v", err)
	}

	fmt.Println(m.String())
}
