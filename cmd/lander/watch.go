package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorilla/websocket"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-lander/internal/telemetry"
)

var flagWatchGame string

var watchCmd = &cobra.Command{
	Use:   "watch <url>",
	Short: "Follow a live telemetry stream",
	Long: `Connect to a server started with 'lander serve --telemetry' and
print every flight frame as it arrives.

Examples:
  lander watch ws://localhost:8080/telemetry
  lander watch ws://localhost:8080/telemetry --game drift`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&flagWatchGame, "game", "", "Only show frames from this game")
}

func runWatch(_ *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, args[0], nil)
	if err != nil {
		return fmt.Errorf("connecting to %s: %w", args[0], err)
	}
	defer conn.Close()

	go func() {
		<-ctx.Done()
		conn.Close()
	}()

	logger.Info("watching telemetry", "url", args[0])
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil || websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}
			return fmt.Errorf("reading telemetry: %w", err)
		}

		frame, err := telemetry.Decode(data)
		if err != nil {
			logger.Warn("skipping frame", "error", err)
			continue
		}
		if flagWatchGame != "" && frame.Game != flagWatchGame {
			continue
		}
		printFrame(frame)
	}
}

// printFrame writes one frame as a single status line.
func printFrame(f telemetry.Frame) {
	fmt.Printf("#%-6d %-7s lvl %-2d %-8s x %6.1f y %6.1f vx %+5.2f vy %+5.2f fuel %5.0f alt %5.1f score %d\n",
		f.Seq, f.Game, f.Level, f.State,
		f.X, f.Y, f.VX, f.VY, f.Fuel, f.Altitude, f.Score)
}
