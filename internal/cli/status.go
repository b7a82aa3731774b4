package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check backend reachability and local configuration",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, a *AppContext) error {
		cfg := a.Config
		reachable := a.Catalog.IsAvailable(ctx)

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "Backend:\t%s\t%s\n", cfg.API.URL, onOff(reachable, "reachable", "unreachable"))
		fmt.Fprintf(w, "History:\t%s\t%s\n", cfg.History.DatabaseURL, onOff(cfg.History.Enabled, "enabled", "disabled"))
		fmt.Fprintf(w, "Telemetry:\t%s\t%s\n", cfg.Telemetry.Endpoint, onOff(cfg.Telemetry.Enabled, "enabled", "disabled"))
		fmt.Fprintf(w, "Stale responses:\t%s\n", onOff(cfg.API.DiscardStale, "discarded", "applied"))
		fmt.Fprintf(w, "Log file:\t%s\n", cfg.Logging.File)
		if err := w.Flush(); err != nil {
			return err
		}

		if !reachable {
			return fmt.Errorf("backend at %s is not reachable", cfg.API.URL)
		}
		return nil
	})
}

func onOff(b bool, on, off string) string {
	if b {
		return on
	}
	return off
}
