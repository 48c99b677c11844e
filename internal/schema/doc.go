// Package schema declares the fixed parameter field groups understood by the
// TSEB configuration format, and the rules deciding which per-pixel image
// variables are active for a given model variant.
//
// The image-variable rules are a declarative table: one entry per
// conditionally-included field with a predicate over the model name and the
// presence of the optional subset key. This keeps the field algebra
// auditable and testable field by field instead of burying it in set
// subtraction inside an extractor.
package schema
