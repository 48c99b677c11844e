// Package tseb owns the lifecycle of a TSEB run: it turns a parsed
// configuration into a resolved parameter mapping, tracks whether that
// mapping is complete, and dispatches a ready mapping to the model runner
// registered for the resolved variant name.
//
// The model implementations themselves (the surface-energy-balance physics)
// live outside this module. They plug in through the Runner interface and
// the Registry: an embedding application registers one Factory per variant
// name it can run.
package tseb
