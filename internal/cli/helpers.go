package cli

import (
	"context"
	"encoding/json"
	"io"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/genex/internal/adapters/logger"
)

// withApp loads configuration, builds an AppContext for a non-interactive
// command and closes it afterwards. Errors are reported on stderr.
func withApp(cmd *cobra.Command, fn func(ctx context.Context, a *AppContext) error) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	a, err := NewAppContext(cmd.Context(), cfg, logger.StderrLogger{})
	if err != nil {
		return err
	}
	defer a.Close()

	return fn(cmd.Context(), a)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
