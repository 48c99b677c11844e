package tseb

import (
	"context"
	"fmt"

	"github.com/Mosheur-Rahman/gotseb/internal/params"
)

// Mode selects between the two run shapes a model exposes.
type Mode int

const (
	// ModeImage processes a gridded image; outputs are written as a side
	// effect of the run.
	ModeImage Mode = iota
	// ModePoint processes a point time series and yields the input and
	// output series.
	ModePoint
)

// String implements fmt.Stringer for Mode.
func (m Mode) String() string {
	switch m {
	case ModeImage:
		return "image"
	case ModePoint:
		return "point"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode converts a mode name from the CLI into a Mode.
func ParseMode(name string) (Mode, error) {
	switch name {
	case "image":
		return ModeImage, nil
	case "point":
		return ModePoint, nil
	default:
		return 0, fmt.Errorf("invalid mode %q: must be 'image' or 'point'", name)
	}
}

// Series is a column-oriented table of scalar observations, the shape both
// the input and output of a point run take.
type Series struct {
	Columns []string
	Rows    [][]float64
}

// Len returns the number of observations in the series.
func (s *Series) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Rows)
}

// Runner is the contract a model implementation fulfils. A Runner is
// constructed from a resolved parameter mapping and exposes one entry point
// per run mode. Both calls may be long-running; they block until the model
// finishes.
type Runner interface {
	// ProcessImage runs the model over a gridded image. Outputs are written
	// per the mapping's output_file and related parameters.
	ProcessImage(ctx context.Context) error

	// ProcessPointSeries runs the model over a point time series and
	// returns the assembled input series and the computed output series.
	ProcessPointSeries(ctx context.Context) (in, out *Series, err error)
}

// Factory constructs a model runner from a resolved parameter mapping.
type Factory func(p params.Map) (Runner, error)
