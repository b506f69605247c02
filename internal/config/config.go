// Package config holds the run configuration for the movegen CLI.
package config

import (
	"github.com/lgbarn/movegen-go/internal/chess"
	"github.com/lgbarn/movegen-go/internal/errors"
)

// Options describes one CLI invocation after flag parsing.
type Options struct {
	// FEN is the position to load; only the piece placement field matters.
	FEN string

	// Square selects the piece to query, in algebraic notation.
	Square string

	// Target, when set, asks for a single-move verdict instead of full
	// generation. Requires Square.
	Target string

	// Colour is the side whose pieces are reported in All mode.
	Colour string

	// All reports moves for every piece of Colour.
	All bool

	// JSON selects JSON output instead of text.
	JSON bool

	// Workers is the number of goroutines used in All mode.
	Workers int
}

// NewOptions returns options with defaults applied.
func NewOptions() *Options {
	return &Options{
		Colour:  "white",
		Workers: 1,
	}
}

// Validate checks the options for consistency. All returned errors wrap
// ErrInvalidConfig.
func (o *Options) Validate() error {
	if o.FEN == "" {
		return errors.Wrap(errors.ErrInvalidConfig, "missing FEN")
	}
	if o.Workers < 1 {
		return errors.Wrapf(errors.ErrInvalidConfig, "workers must be >= 1, got %d", o.Workers)
	}

	if o.All {
		if o.Square != "" || o.Target != "" {
			return errors.Wrap(errors.ErrInvalidConfig, "-all cannot be combined with -square or -to")
		}
		if _, ok := chess.ParseColour(o.Colour); !ok {
			return errors.Wrapf(errors.ErrInvalidConfig, "unknown colour %q", o.Colour)
		}
		return nil
	}

	if o.Square == "" {
		return errors.Wrap(errors.ErrInvalidConfig, "one of -square or -all is required")
	}
	if _, ok := chess.ParseCoord(o.Square); !ok {
		return errors.Wrapf(errors.ErrInvalidConfig, "bad square %q", o.Square)
	}
	if o.Target != "" {
		if _, ok := chess.ParseCoord(o.Target); !ok {
			return errors.Wrapf(errors.ErrInvalidConfig, "bad target square %q", o.Target)
		}
	}
	return nil
}
