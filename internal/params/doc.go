// Package params builds the resolved parameter mapping a model runner is
// constructed from. The mapping is flat: parameter name to a typed cty.Value
// (string, number, or a small tuple for the composite row-correction and
// soil-heat-flux encodings).
//
// Extraction is split three ways, mirroring the configuration schema: Common
// for the fields shared by both run modes, Image for a gridded run and Point
// for a point time-series run. Image values stay strings because a field may
// name a per-pixel raster file rather than a scalar; point values are always
// scalars and are coerced eagerly.
package params
