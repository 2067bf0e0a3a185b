package internal

import (
	"io"

	"github.com/charmbracelet/log"
)

const DefaultMaxDoublings = 256

// Options tunes a triangulation run. The zero value is ready to use.
type Options struct {
	// Logger receives debug tracing. Defaults to a logger that discards
	// everything.
	Logger *log.Logger

	// Workers is the number of goroutines used to scan for invalidated
	// triangles during each insertion. Values below 2 scan sequentially.
	Workers int

	// MaxDoublings caps how many times the super-triangle may grow while
	// trying to contain the input. The input is measured from the center of
	// its bounding box, so only its spread counts, not its distance from the
	// origin.
	MaxDoublings int
}

func (o Options) withDefaults() Options {
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if o.Workers < 1 {
		o.Workers = 1
	}
	if o.MaxDoublings == 0 {
		o.MaxDoublings = DefaultMaxDoublings
	}
	return o
}

func (o Options) debugEnabled() bool {
	return o.Logger.GetLevel() <= log.DebugLevel
}
