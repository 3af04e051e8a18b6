package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-lander/internal/platform/tui"
	"github.com/vovakirdan/tui-lander/internal/telemetry"
)

var (
	flagSSHAddr     string
	flagHostKeyPath string
	flagIdleTimeout time.Duration
	flagTelemetry   string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start SSH server for remote play",
	Long: `Start an SSH server that allows remote users to play the lander.

Users can connect with any SSH client:
  ssh -p 23234 localhost

Each connection gets its own game session with the interactive menu.
High scores and flights are shared across all sessions.

With --telemetry, every session's flight state is streamed as msgpack
frames over a websocket at /telemetry. Follow it with 'lander watch'.

Examples:
  lander serve
  lander serve --ssh :2222
  lander serve --host-key /etc/lander/host_key
  lander serve --telemetry :8080`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKeyPath, "host-key", "", "Path to SSH host key (auto-generated if not specified)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 30*time.Minute, "Idle connection timeout")
	serveCmd.Flags().StringVar(&flagTelemetry, "telemetry", "", "Telemetry websocket address (empty disables)")
}

func runServe(_ *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKeyPath
	cfg.DBPath = flagDBPath
	cfg.IdleTimeout = flagIdleTimeout
	cfg.TickRate = flagFPS
	cfg.Logger = logger.WithPrefix("lander-ssh")

	var telemetryErr <-chan error
	if flagTelemetry != "" {
		hub := telemetry.NewHub(logger.WithPrefix("telemetry"))
		go hub.Run(ctx)
		defer hub.Close()

		telemetryErr = serveTelemetry(ctx, flagTelemetry, hub)
		cfg.Publisher = hub
	}

	srv, err := tui.NewSSHServer(cfg)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Lunar Lander SSH Server\n")
	fmt.Printf("Listening on %s\n", srv.Addr())
	if flagTelemetry != "" {
		fmt.Printf("Telemetry on ws://%s/telemetry\n", flagTelemetry)
	}
	fmt.Printf("Connect with: ssh -p %s localhost\n", portOf(flagSSHAddr))
	fmt.Printf("Press Ctrl+C to stop\n\n")

	sshErr := make(chan error, 1)
	go func() { sshErr <- srv.ListenAndServe(ctx) }()

	select {
	case err := <-sshErr:
		return err
	case err := <-telemetryErr:
		stop()
		<-sshErr
		return err
	}
}

// serveTelemetry runs the websocket endpoint until ctx is cancelled.
// The returned channel only delivers listener failures.
func serveTelemetry(ctx context.Context, addr string, hub *telemetry.Hub) <-chan error {
	mux := http.NewServeMux()
	mux.Handle("/telemetry", hub)

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("telemetry server: %w", err)
		}
	}()
	go reportSpectators(ctx, hub, time.Minute)
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx) //nolint:errcheck
	}()
	return errCh
}

// reportSpectators logs the spectator count and dropped frames every period
// while anyone is watching, and once more on shutdown.
func reportSpectators(ctx context.Context, hub *telemetry.Hub, period time.Duration) {
	tlog := logger.WithPrefix("telemetry")
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			tlog.Info("telemetry stopped", "spectators", hub.Clients(), "dropped", hub.Dropped())
			return
		case <-ticker.C:
			if n := hub.Clients(); n > 0 {
				tlog.Info("spectators", "count", n, "dropped", hub.Dropped())
			}
		}
	}
}

// portOf extracts the port from a host:port address.
func portOf(addr string) string {
	for i := len(addr) - 1; i >= 0; i-- {
		if addr[i] == ':' {
			return addr[i+1:]
		}
	}
	return addr
}
