// Package testutil provides shared fixtures for tests: canned configuration
// key sets for each run mode, a helper that materialises them as a flat
// key = value file, and fake model runners for exercising dispatch.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// CommonConfig returns the minimal key set every run mode needs: the model
// name, output path and a ratio-based soil-heat-flux formulation.
func CommonConfig(model string) map[string]string {
	return map[string]string{
		"model":       model,
		"output_file": "output/run.tif",
		"G_ratio":     "0.35",
	}
}

// siteConfig covers the site description, vegetation and spectral groups
// plus the resistance coefficients, all as numeric scalars so the same set
// serves both modes.
func siteConfig() map[string]string {
	return map[string]string{
		"KN_b":       "0.012",
		"KN_c":       "0.0038",
		"KN_C_dash":  "90",
		"landcover":  "11",
		"lat":        "38.29",
		"lon":        "-121.12",
		"alt":        "69",
		"stdlon":     "-120.0",
		"z_T":        "5",
		"z_u":        "5",
		"z0_soil":    "0.01",
		"leaf_width": "0.1",
		"alpha_PT":   "1.26",
		"x_LAD":      "1",
		"emis_C":     "0.98",
		"emis_S":     "0.95",
		"rho_vis_C":  "0.07",
		"tau_vis_C":  "0.08",
		"rho_nir_C":  "0.32",
		"tau_nir_C":  "0.33",
		"rho_vis_S":  "0.15",
		"rho_nir_S":  "0.25",
	}
}

// ImageConfig returns a complete gridded-mode configuration for the given
// model variant, including the variant-specific image variables.
func ImageConfig(model string) map[string]string {
	cfg := Merge(CommonConfig(model), siteConfig(), map[string]string{
		"T_R1":       "input/radiometric_temperature.tif",
		"VZA":        "0",
		"LAI":        "input/lai.tif",
		"f_c":        "input/fc.tif",
		"f_g":        "1",
		"h_C":        "2.4",
		"w_C":        "1",
		"input_mask": "0",
		"time":       "10.99",
		"DOY":        "221",
		"T_A1":       "input/air_temperature.tif",
		"u":          "2.15",
		"ea":         "13.4",
		"S_dn":       "861",
		"L_dn":       "",
		"p":          "1011",
	})
	switch model {
	case "DTD":
		cfg["T_R0"] = "input/radiometric_temperature_time0.tif"
		cfg["T_A0"] = "input/air_temperature_time0.tif"
	case "disTSEB":
		cfg["flux_LR"] = "input/flux_lr.tif"
		cfg["flux_LR_ancillary"] = "input/flux_lr_ancillary.tif"
		cfg["flux_LR_method"] = "EF"
		cfg["correct_LST"] = "1"
	}
	return cfg
}

// PointConfig returns a complete point-series configuration for the given
// model variant.
func PointConfig(model string) map[string]string {
	cfg := Merge(CommonConfig(model), siteConfig(), map[string]string{
		"input_file": "input/meteo_series.txt",
		"f_c":        "0.7",
		"f_g":        "1",
		"w_C":        "1",
	})
	if model == "disTSEB" {
		cfg["flux_LR_method"] = "EF"
		cfg["correct_LST"] = "1"
	}
	return cfg
}

// Merge combines key sets left to right, later sets overwriting earlier ones.
func Merge(sets ...map[string]string) map[string]string {
	merged := map[string]string{}
	for _, set := range sets {
		for key, val := range set {
			merged[key] = val
		}
	}
	return merged
}

// WriteConfig materialises a key set as a flat key = value file under a
// test-scoped temporary directory and returns its path.
func WriteConfig(t *testing.T, cfg map[string]string) string {
	t.Helper()

	keys := make([]string, 0, len(cfg))
	for key := range cfg {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for _, key := range keys {
		fmt.Fprintf(&sb, "%s = %s\n", key, cfg[key])
	}

	path := filepath.Join(t.TempDir(), "config.txt")
	require.NoError(t, os.WriteFile(path, []byte(sb.String()), 0644))
	return path
}
