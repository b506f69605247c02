// flags.go - Command-line flag definitions
package main

import (
	"flag"
	"runtime"

	"github.com/lgbarn/movegen-go/internal/config"
	"github.com/lgbarn/movegen-go/internal/interop"
)

var (
	fenFlag     = flag.String("fen", interop.InitialFEN, "Position in FEN; only the piece placement field is used")
	squareFlag  = flag.String("square", "", "Square of the piece to query, e.g. g1")
	targetFlag  = flag.String("to", "", "Validate a single move to this square (requires -square)")
	colourFlag  = flag.String("color", "white", "Side reported by -all: white or black")
	allFlag     = flag.Bool("all", false, "List moves for every piece of -color")
	jsonFlag    = flag.Bool("json", false, "Output JSON instead of text")
	workersFlag = flag.Int("workers", runtime.NumCPU(), "Worker goroutines used by -all")
	versionFlag = flag.Bool("version", false, "Show version and exit")
)

// buildOptions collects the parsed flags into a config.Options.
func buildOptions() *config.Options {
	opts := config.NewOptions()
	opts.FEN = *fenFlag
	opts.Square = *squareFlag
	opts.Target = *targetFlag
	opts.Colour = *colourFlag
	opts.All = *allFlag
	opts.JSON = *jsonFlag
	opts.Workers = *workersFlag
	return opts
}
