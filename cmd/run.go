package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kupu-app/kupu/internal/app"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	e, err := openEnv(cmd, true)
	if err != nil {
		return err
	}
	defer e.Close()

	return app.Run(app.Options{
		Services: e.svc,
		Logger:   e.log,
		Splash:   e.cfg.Splash,
	})
}
