package params

import (
	"github.com/zclconf/go-cty/cty"

	"github.com/Mosheur-Rahman/gotseb/internal/config"
	"github.com/Mosheur-Rahman/gotseb/internal/schema"
)

// gFormPeriod is the fixed period, in hours, of the harmonic soil-heat-flux
// formulation (Santanello & Friedl).
const gFormPeriod = 12.0

// noRowCorrection is the sentinel encoding of a run without row-crop
// correction.
func noRowCorrection() cty.Value {
	return cty.TupleVal([]cty.Value{cty.NumberIntVal(0), cty.NumberIntVal(0)})
}

// Common extracts the fields shared by the image and point run modes: the
// model name, output path, resistance formulation, row-crop correction and
// soil-heat-flux formulation, plus the disTSEB-only fields when that variant
// is selected.
func Common(r *config.Reader) (Map, error) {
	m := Map{}

	model, err := r.GetString("model")
	if err != nil {
		return nil, err
	}
	m["model"] = cty.StringVal(model)

	outputFile, err := r.GetString("output_file")
	if err != nil {
		return nil, err
	}
	m["output_file"] = cty.StringVal(outputFile)

	// No documented default exists for resistance_form, so absence is kept
	// as an explicit null instead of a guessed numeric value.
	if r.Has("resistance_form") {
		form, err := r.GetInt("resistance_form")
		if err != nil {
			return nil, err
		}
		m["resistance_form"] = cty.NumberIntVal(int64(form))
	} else {
		m["resistance_form"] = cty.NullVal(cty.Number)
	}

	calcRow, err := extractCalcRow(r)
	if err != nil {
		return nil, err
	}
	m["calc_row"] = calcRow

	gForm, err := extractGForm(r)
	if err != nil {
		return nil, err
	}
	m["G_form"] = gForm

	if model == schema.ModelDisTSEB {
		fluxMethod, err := r.GetString("flux_LR_method")
		if err != nil {
			return nil, err
		}
		m["flux_LR_method"] = cty.StringVal(fluxMethod)

		correctLST, err := r.GetInt("correct_LST")
		if err != nil {
			return nil, err
		}
		m["correct_LST"] = cty.NumberIntVal(int64(correctLST))
	}

	return m, nil
}

// extractCalcRow resolves the row-crop correction encoding. An absent
// calc_row key means no correction; a present one (whatever its value, which
// must still parse as an integer) switches the correction on and requires a
// row azimuth.
func extractCalcRow(r *config.Reader) (cty.Value, error) {
	if !r.Has("calc_row") {
		return noRowCorrection(), nil
	}
	if _, err := r.GetInt("calc_row"); err != nil {
		return cty.NilVal, err
	}
	rowAz, err := r.GetFloat("row_az")
	if err != nil {
		return cty.NilVal, err
	}
	return cty.TupleVal([]cty.Value{cty.NumberIntVal(1), cty.NumberFloatVal(rowAz)}), nil
}

// extractGForm resolves the soil-heat-flux formulation encoding:
//
//	0 -> [[0], G_constant]
//	2 -> [[2, G_amp, G_phase, G_shape], period]
//	otherwise (default 1) -> [[1], G_ratio]
func extractGForm(r *config.Reader) (cty.Value, error) {
	form := 1
	if r.Has("G_form") {
		var err error
		form, err = r.GetInt("G_form")
		if err != nil {
			return cty.NilVal, err
		}
	}

	switch form {
	case 0:
		constant, err := r.GetFloat("G_constant")
		if err != nil {
			return cty.NilVal, err
		}
		return cty.TupleVal([]cty.Value{
			cty.TupleVal([]cty.Value{cty.NumberIntVal(0)}),
			cty.NumberFloatVal(constant),
		}), nil
	case 2:
		harmonics := make([]cty.Value, 0, 4)
		harmonics = append(harmonics, cty.NumberIntVal(2))
		for _, name := range []string{"G_amp", "G_phase", "G_shape"} {
			val, err := r.GetFloat(name)
			if err != nil {
				return cty.NilVal, err
			}
			harmonics = append(harmonics, cty.NumberFloatVal(val))
		}
		return cty.TupleVal([]cty.Value{
			cty.TupleVal(harmonics),
			cty.NumberFloatVal(gFormPeriod),
		}), nil
	default:
		ratio, err := r.GetFloat("G_ratio")
		if err != nil {
			return cty.NilVal, err
		}
		return cty.TupleVal([]cty.Value{
			cty.TupleVal([]cty.Value{cty.NumberIntVal(1)}),
			cty.NumberFloatVal(ratio),
		}), nil
	}
}

// Image extracts the gridded-mode fields. Every value stays a string: site,
// vegetation and spectral properties as well as the per-pixel image
// variables may name raster files instead of scalars, and deciding which is
// the model runner's job.
func Image(r *config.Reader, model string) (Map, error) {
	m := Map{}

	groups := [][]string{
		{"KN_b", "KN_c", "KN_C_dash"},
		schema.SiteDescription,
		schema.VegetationProperties,
		schema.SpectralProperties,
	}
	for _, group := range groups {
		if err := readStrings(r, m, group); err != nil {
			return nil, err
		}
	}

	active := schema.ActiveImageVars(schema.ImageContext{
		Model:     model,
		HasSubset: r.Has("subset"),
	})
	if err := readStrings(r, m, active); err != nil {
		return nil, err
	}

	return m, nil
}

// Point extracts the time-series-mode fields. Site, vegetation, spectral and
// resistance coefficients are scalars here and are coerced to floats
// eagerly.
func Point(r *config.Reader) (Map, error) {
	m := Map{}

	groups := [][]string{
		{"KN_b", "KN_c", "KN_C_dash"},
		schema.SiteDescription,
		schema.VegetationProperties,
		schema.SpectralProperties,
	}
	for _, group := range groups {
		for _, name := range group {
			val, err := r.GetFloat(name)
			if err != nil {
				return nil, err
			}
			m[name] = cty.NumberFloatVal(val)
		}
	}

	inputFile, err := r.GetString("input_file")
	if err != nil {
		return nil, err
	}
	m["input_file"] = cty.StringVal(inputFile)

	if err := readStrings(r, m, schema.PointVars); err != nil {
		return nil, err
	}

	return m, nil
}

func readStrings(r *config.Reader, m Map, names []string) error {
	for _, name := range names {
		val, err := r.GetString(name)
		if err != nil {
			return err
		}
		m[name] = cty.StringVal(val)
	}
	return nil
}
