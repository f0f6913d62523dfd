package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"tangled.org/ashwam.app/langid/server"
)

// NewServeCommand builds the HTTP API subcommand.
func NewServeCommand() *cobra.Command {
	var (
		addr      string
		websocket bool
		quiet     bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the detection engine over HTTP",
		Long: `Serve the detection engine over HTTP

Endpoints:
  GET  /              Service info
  GET  /status        Uptime, version and lexicon sizes
  POST /detect        Detect one record: {"id": ..., "text": ...}
  POST /detect/batch  Detect a JSONL body, streams JSONL back
  GET  /ws            WebSocket detection (with --websocket)`,

		Example: `  # Start on the default port
  langid serve

  # Custom address with WebSocket support
  langid serve --addr :9000 --websocket

  # Detect over HTTP
  curl -X POST localhost:8080/detect -d '{"id":"t1","text":"kya haal hai"}'`,

		RunE: func(cmd *cobra.Command, args []string) error {
			logger := &commandLogger{quiet: quiet}

			srv := server.New(&server.Config{
				Addr:            addr,
				EnableWebSocket: websocket,
				Version:         GetVersion(),
			})

			logger.Printf("Serving detection API on %s (websocket: %v)", addr, websocket)

			errCh := make(chan error, 1)
			go func() {
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if err != nil && !errors.Is(err, http.ErrServerClosed) {
					return fmt.Errorf("server failed: %w", err)
				}
				return nil
			case <-cmd.Context().Done():
				logger.Println("Shutting down...")

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				return srv.Shutdown(shutdownCtx)
			}
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "Listen address")
	cmd.Flags().BoolVar(&websocket, "websocket", false, "Enable WebSocket endpoint")
	cmd.Flags().BoolVar(&quiet, "quiet", false, "Suppress progress messages")

	return cmd
}
