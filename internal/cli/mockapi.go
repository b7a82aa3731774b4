package cli

import (
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/genex/internal/mockapi"
)

var mockAPICmd = &cobra.Command{
	Use:   "mock-api",
	Short: "Serve a mock analysis backend for development",
	Long: `Serve the backend routes with fixture datasets and randomly generated
expression samples, so the explorer can be used without the real service.

Examples:
  genex mock-api                  # Listen on :8000
  genex mock-api --port 9000 --seed 42`,
	Args: cobra.NoArgs,
	RunE: runMockAPI,
}

// Flags
var (
	mockAPIPort int
	mockAPISeed uint64
)

func init() {
	mockAPICmd.Flags().IntVarP(&mockAPIPort, "port", "p", 8000, "Port to listen on")
	mockAPICmd.Flags().Uint64Var(&mockAPISeed, "seed", 0, "Random seed (default: current time)")
}

func runMockAPI(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	seed := mockAPISeed
	if !cmd.Flags().Changed("seed") {
		seed = uint64(time.Now().UnixNano())
	}

	return mockapi.NewServer(mockAPIPort, mockapi.NewGenerator(seed)).Start(ctx)
}
