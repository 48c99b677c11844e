package testutil

import (
	"context"

	"github.com/Mosheur-Rahman/gotseb/internal/params"
	"github.com/Mosheur-Rahman/gotseb/internal/tseb"
)

// FakeRunner is a recording tseb.Runner for dispatch tests.
type FakeRunner struct {
	ImageCalls int
	PointCalls int

	ImageErr error
	PointErr error
	In       *tseb.Series
	Out      *tseb.Series
}

// ProcessImage implements tseb.Runner.
func (r *FakeRunner) ProcessImage(ctx context.Context) error {
	r.ImageCalls++
	return r.ImageErr
}

// ProcessPointSeries implements tseb.Runner.
func (r *FakeRunner) ProcessPointSeries(ctx context.Context) (*tseb.Series, *tseb.Series, error) {
	r.PointCalls++
	return r.In, r.Out, r.PointErr
}

// FakeModule registers a FakeRunner under a model variant name and records
// every factory invocation along with the parameter mapping it received.
type FakeModule struct {
	Name   string
	Runner *FakeRunner

	FactoryErr  error
	Constructed int
	LastParams  params.Map
}

// Register implements tseb.Module.
func (m *FakeModule) Register(r *tseb.Registry) {
	r.Register(m.Name, func(p params.Map) (tseb.Runner, error) {
		m.Constructed++
		m.LastParams = p
		if m.FactoryErr != nil {
			return nil, m.FactoryErr
		}
		return m.Runner, nil
	})
}
