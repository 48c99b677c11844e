package app

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Mosheur-Rahman/gotseb/internal/config"
	"github.com/Mosheur-Rahman/gotseb/internal/ctxlog"
	"github.com/Mosheur-Rahman/gotseb/internal/tseb"
)

// Run executes the main application logic: read the configuration file,
// resolve the parameter mapping for the selected mode, then either print the
// mapping (check mode) or dispatch the model run.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "config_path", a.config.ConfigPath, "mode", a.config.Mode.String())

	reader, err := config.Read(a.config.ConfigPath)
	if err != nil {
		return err
	}

	a.iface.Load(ctx, reader, a.config.Mode)
	if !a.iface.Ready() {
		return fmt.Errorf("configuration %q is incomplete; see the log for the offending parameter", a.config.ConfigPath)
	}

	if a.config.CheckOnly {
		return a.printParams()
	}

	in, out, err := a.iface.Run(ctx, a.config.Mode)
	if err != nil {
		return fmt.Errorf("model run failed: %w", err)
	}

	if a.config.Mode == tseb.ModePoint {
		fmt.Fprintf(a.outW, "Point series processed: %d input records, %d output records.\n", in.Len(), out.Len())
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// printParams renders the resolved parameter mapping as indented JSON.
func (a *App) printParams() error {
	data, err := json.MarshalIndent(a.iface.Params(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to render parameter mapping: %w", err)
	}
	fmt.Fprintln(a.outW, string(data))
	return nil
}
