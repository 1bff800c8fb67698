package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/msto63/wandler/internal/server"
)

var (
	serveHost string
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the websocket session host",
	Long: `Starts the HTTP and websocket session host.

Routes:
  GET  /health          health report
  GET  /api/transforms  list of transforms (?group=case)
  POST /api/transform   {"id", "input", "pattern", "replacement"} -> {"output"}
  GET  /ws              one editing session with undo per connection

Examples:
  wandler serve
  wandler serve --host 0.0.0.0 --port 9000`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveHost, "host", "", "listen address (default from config: 127.0.0.1)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "listen port (default from config: 8765)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := server.FromAppConfig(appConfig.Server)
	if serveHost != "" {
		cfg.Host = serveHost
	}
	if servePort != 0 {
		cfg.Port = servePort
	}

	srv := server.New(cfg, nil)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	fmt.Fprintf(cmd.OutOrStdout(), "wandler listening on http://%s (websocket: ws://%s/ws)\n", srv.Address(), srv.Address())

	// Setup signal handling
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case err := <-errCh:
		return err
	case <-sigCh:
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Stop(ctx)
}
