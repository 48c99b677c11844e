package tseb

import (
	"context"
	"errors"
	"log/slog"

	"github.com/Mosheur-Rahman/gotseb/internal/config"
	"github.com/Mosheur-Rahman/gotseb/internal/ctxlog"
	"github.com/Mosheur-Rahman/gotseb/internal/params"
)

// Interface holds the parameter mapping resolved from the last configuration
// load and dispatches runs against it. It is the boundary past which no
// extraction error escapes: a failed Load leaves the Interface not ready and
// the partial mapping discarded.
type Interface struct {
	registry *Registry
	params   params.Map
	ready    bool
}

// New creates an Interface dispatching against the given registry.
func New(registry *Registry) *Interface {
	return &Interface{registry: registry}
}

// Ready reports whether the last Load produced a complete parameter mapping.
func (i *Interface) Ready() bool {
	return i.ready
}

// Params returns the current parameter mapping, or nil when not ready.
func (i *Interface) Params() params.Map {
	if !i.ready {
		return nil
	}
	return i.params
}

// Load resolves the parameter mapping for the given run mode. Extraction
// errors are reported here, naming the offending field and expected type,
// and leave the Interface not ready.
func (i *Interface) Load(ctx context.Context, reader *config.Reader, mode Mode) {
	logger := ctxlog.FromContext(ctx)
	i.ready = false
	i.params = nil

	resolved, err := params.Common(reader)
	if err == nil {
		var modal params.Map
		switch mode {
		case ModePoint:
			modal, err = params.Point(reader)
		default:
			var model string
			model, err = resolved.ModelName()
			if err == nil {
				modal, err = params.Image(reader, model)
			}
		}
		if err == nil {
			resolved.Merge(modal)
		}
	}

	if err != nil {
		reportExtractionError(logger, err)
		return
	}

	logger.Debug("Parameter mapping resolved.", "mode", mode.String(), "parameters", len(resolved))
	i.params = resolved
	i.ready = true
}

// reportExtractionError turns the extraction error taxonomy into
// human-readable messages identifying the field and expected type.
func reportExtractionError(logger *slog.Logger, err error) {
	var missing *config.MissingParameterError
	var coercion *config.CoercionError
	switch {
	case errors.As(err, &missing):
		logger.Error("Missing parameter in configuration.", "parameter", missing.Name)
	case errors.As(err, &coercion):
		logger.Error("Could not parse parameter.", "parameter", coercion.Name, "expected_type", coercion.Type)
	default:
		logger.Error("Failed to resolve configuration.", "error", err)
	}
}

// Run dispatches the resolved parameter mapping to the model runner
// registered for the resolved variant name. In image mode the run's outputs
// are side effects of the model and both returned series are nil; in point
// mode the input and output series are returned.
func (i *Interface) Run(ctx context.Context, mode Mode) (in, out *Series, err error) {
	logger := ctxlog.FromContext(ctx)

	if !i.ready {
		logger.Error("Model will not be run due to errors in the input data.")
		return nil, nil, ErrNotReady
	}

	model, err := i.params.ModelName()
	if err != nil {
		return nil, nil, err
	}

	factory, ok := i.registry.Lookup(model)
	if !ok {
		err := &UnknownModelError{Name: model}
		logger.Error("Unknown model.", "model", model, "registered", i.registry.Names())
		return nil, nil, err
	}

	runner, err := factory(i.params)
	if err != nil {
		return nil, nil, err
	}

	switch mode {
	case ModePoint:
		logger.Debug("Dispatching point time-series run.", "model", model)
		return runner.ProcessPointSeries(ctx)
	default:
		logger.Debug("Dispatching image run.", "model", model)
		return nil, nil, runner.ProcessImage(ctx)
	}
}
