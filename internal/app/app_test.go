package app_test

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mosheur-Rahman/gotseb/internal/app"
	"github.com/Mosheur-Rahman/gotseb/internal/schema"
	"github.com/Mosheur-Rahman/gotseb/internal/testutil"
	"github.com/Mosheur-Rahman/gotseb/internal/tseb"
)

func newConfig(t *testing.T, cfg app.Config) *app.Config {
	t.Helper()
	validated, err := app.NewConfig(cfg)
	require.NoError(t, err)
	return validated
}

func TestNewConfig(t *testing.T) {
	_, err := app.NewConfig(app.Config{})
	assert.ErrorContains(t, err, "ConfigPath")
}

func TestAppRunCheck(t *testing.T) {
	path := testutil.WriteConfig(t, testutil.ImageConfig("TSEB_PT"))
	out := &bytes.Buffer{}
	logs := &bytes.Buffer{}

	a := app.NewApp(out, logs, newConfig(t, app.Config{
		ConfigPath: path,
		Mode:       tseb.ModeImage,
		CheckOnly:  true,
		LogFormat:  "text",
		LogLevel:   "debug",
	}))

	require.NoError(t, a.Run(context.Background()))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	assert.Equal(t, "TSEB_PT", decoded["model"])
	assert.Equal(t, "input/lai.tif", decoded["LAI"])
}

func TestAppRunIncompleteConfig(t *testing.T) {
	cfg := testutil.ImageConfig("disTSEB")
	delete(cfg, "flux_LR_method")
	path := testutil.WriteConfig(t, cfg)
	logs := &bytes.Buffer{}

	a := app.NewApp(&bytes.Buffer{}, logs, newConfig(t, app.Config{
		ConfigPath: path,
		Mode:       tseb.ModeImage,
		LogFormat:  "text",
		LogLevel:   "info",
	}))

	err := a.Run(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "incomplete")
	assert.Contains(t, logs.String(), "flux_LR_method")
}

func TestAppRunMissingFile(t *testing.T) {
	a := app.NewApp(&bytes.Buffer{}, &bytes.Buffer{}, newConfig(t, app.Config{
		ConfigPath: filepath.Join(t.TempDir(), "nope.cfg"),
		Mode:       tseb.ModeImage,
		LogFormat:  "text",
		LogLevel:   "info",
	}))

	assert.Error(t, a.Run(context.Background()))
}

func TestAppRunDispatchesPointSeries(t *testing.T) {
	runner := &testutil.FakeRunner{
		In:  &tseb.Series{Columns: []string{"T_R1"}, Rows: [][]float64{{295.4}, {301.2}}},
		Out: &tseb.Series{Columns: []string{"LE"}, Rows: [][]float64{{120.5}, {260.1}}},
	}
	module := &testutil.FakeModule{Name: schema.ModelTSEBPT, Runner: runner}
	path := testutil.WriteConfig(t, testutil.PointConfig("TSEB_PT"))
	out := &bytes.Buffer{}

	a := app.NewApp(out, &bytes.Buffer{}, newConfig(t, app.Config{
		ConfigPath: path,
		Mode:       tseb.ModePoint,
		LogFormat:  "text",
		LogLevel:   "info",
	}), module)

	require.NoError(t, a.Run(context.Background()))
	assert.Equal(t, 1, runner.PointCalls)
	assert.Contains(t, out.String(), "2 input records, 2 output records")
}

func TestAppRunUnknownModel(t *testing.T) {
	path := testutil.WriteConfig(t, testutil.ImageConfig("TSEB_2T"))

	a := app.NewApp(&bytes.Buffer{}, &bytes.Buffer{}, newConfig(t, app.Config{
		ConfigPath: path,
		Mode:       tseb.ModeImage,
		LogFormat:  "text",
		LogLevel:   "info",
	}))

	err := a.Run(context.Background())
	var unknown *tseb.UnknownModelError
	assert.ErrorAs(t, err, &unknown)
}
