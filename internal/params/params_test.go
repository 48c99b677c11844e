package params_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"

	"github.com/Mosheur-Rahman/gotseb/internal/params"
)

func TestMapMerge(t *testing.T) {
	m := params.Map{"model": cty.StringVal("DTD")}
	m.Merge(params.Map{
		"lat":   cty.NumberFloatVal(38.29),
		"model": cty.StringVal("TSEB_PT"),
	})

	assert.Len(t, m, 2)
	assert.Equal(t, cty.StringVal("TSEB_PT"), m["model"])
}

func TestMapModelName(t *testing.T) {
	t.Run("returns the resolved name", func(t *testing.T) {
		m := params.Map{"model": cty.StringVal("disTSEB")}
		name, err := m.ModelName()
		require.NoError(t, err)
		assert.Equal(t, "disTSEB", name)
	})

	t.Run("fails when unresolved", func(t *testing.T) {
		_, err := params.Map{}.ModelName()
		assert.Error(t, err)

		_, err = params.Map{"model": cty.NullVal(cty.String)}.ModelName()
		assert.Error(t, err)
	})
}

func TestMapMarshalJSON(t *testing.T) {
	m := params.Map{
		"model":           cty.StringVal("TSEB_PT"),
		"resistance_form": cty.NullVal(cty.Number),
		"calc_row":        cty.TupleVal([]cty.Value{cty.NumberIntVal(0), cty.NumberIntVal(0)}),
		"alpha_PT":        cty.NumberFloatVal(1.26),
	}

	data, err := json.Marshal(m)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "TSEB_PT", decoded["model"])
	assert.Nil(t, decoded["resistance_form"])
	assert.Equal(t, []any{float64(0), float64(0)}, decoded["calc_row"])
	assert.InDelta(t, 1.26, decoded["alpha_PT"], 1e-9)
}

func TestMapMarshalJSONEmpty(t *testing.T) {
	data, err := json.Marshal(params.Map{})
	require.NoError(t, err)
	assert.JSONEq(t, "{}", string(data))
}

func TestAsFloat(t *testing.T) {
	t.Run("numbers convert", func(t *testing.T) {
		val, ok := params.AsFloat(cty.NumberFloatVal(2.15))
		require.True(t, ok)
		assert.InDelta(t, 2.15, val, 1e-9)
	})

	t.Run("numeric strings convert", func(t *testing.T) {
		val, ok := params.AsFloat(cty.StringVal("861"))
		require.True(t, ok)
		assert.InDelta(t, 861, val, 1e-9)
	})

	t.Run("file paths do not convert", func(t *testing.T) {
		_, ok := params.AsFloat(cty.StringVal("input/lai.tif"))
		assert.False(t, ok)
	})
}

func TestIsFileReference(t *testing.T) {
	assert.True(t, params.IsFileReference(cty.StringVal("input/lai.tif")))
	assert.False(t, params.IsFileReference(cty.StringVal("1.26")))
	assert.False(t, params.IsFileReference(cty.NumberFloatVal(1.26)))
	assert.False(t, params.IsFileReference(cty.NullVal(cty.String)))
}
