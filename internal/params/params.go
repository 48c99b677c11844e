package params

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

// Map is a resolved parameter mapping: parameter name to typed value.
type Map map[string]cty.Value

// Merge copies every entry of other into m, overwriting on collision.
func (m Map) Merge(other Map) {
	for name, val := range other {
		m[name] = val
	}
}

// ModelName returns the resolved model variant name.
func (m Map) ModelName() (string, error) {
	val, ok := m["model"]
	if !ok || val.IsNull() || val.Type() != cty.String {
		return "", fmt.Errorf("parameter mapping has no resolved model name")
	}
	return val.AsString(), nil
}

// MarshalJSON renders the mapping as a JSON object with parameter names as
// keys, using cty's JSON encoding for the values.
func (m Map) MarshalJSON() ([]byte, error) {
	obj := cty.EmptyObjectVal
	if len(m) > 0 {
		obj = cty.ObjectVal(m)
	}
	return ctyjson.Marshal(obj, obj.Type())
}

// AsFloat reports a parameter value as a scalar float where possible. Image
// mode keeps values as strings, so a string holding a number converts while
// a string holding a file path does not.
func AsFloat(val cty.Value) (float64, bool) {
	converted, err := convert.Convert(val, cty.Number)
	if err != nil || converted.IsNull() {
		return 0, false
	}
	f, _ := converted.AsBigFloat().Float64()
	return f, true
}

// IsFileReference reports whether an image-mode parameter value denotes a
// per-pixel input file rather than a scalar constant.
func IsFileReference(val cty.Value) bool {
	if val.Type() != cty.String || val.IsNull() {
		return false
	}
	_, scalar := AsFloat(val)
	return !scalar
}
