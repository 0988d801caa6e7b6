package cmd

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/seek-sim/internal/server"
)

const shutdownTimeout = 5 * time.Second

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the scheduling engine over HTTP",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		srv := &http.Server{
			Handler:           server.New(logrus.StandardLogger(), server.WithVersion(version)),
			ReadHeaderTimeout: 10 * time.Second,
		}
		ln, err := net.Listen("tcp", serveAddr)
		if err != nil {
			logrus.Fatalf("Listen on %s failed: %v", serveAddr, err)
		}

		logrus.Infof("Listening on %s", ln.Addr())
		if err := serveUntilDone(ctx, srv, ln); err != nil {
			logrus.Fatalf("Server failed: %v", err)
		}
		logrus.Info("Server stopped.")
	},
}

// serveUntilDone serves on ln until ctx is cancelled, then shuts srv down and
// returns only after in-flight requests have drained or shutdownTimeout elapsed.
func serveUntilDone(ctx context.Context, srv *http.Server, ln net.Listener) error {
	shutdownDone := make(chan error, 1)
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		shutdownDone <- srv.Shutdown(shutdownCtx)
	}()

	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	if err := <-shutdownDone; err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "Listen address")

	rootCmd.AddCommand(serveCmd)
}
