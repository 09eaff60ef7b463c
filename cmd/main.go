package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/berochitiri/procsnipe/alert"
	"github.com/berochitiri/procsnipe/config"
	"github.com/berochitiri/procsnipe/daemon"
	"github.com/berochitiri/procsnipe/proc"
	"github.com/berochitiri/procsnipe/ui"
)

// EnvDebugLog names a file that receives the interactive mode's log.
const EnvDebugLog = "PROCSNIPE_DEBUG_LOG"

const elevationPause = 2 * time.Second

func main() {
	os.Exit(execute())
}

func execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	var tray bool

	cmd := &cobra.Command{
		Use:   "procsnipe",
		Short: "procsnipe - TUI process manager",
		Long: `procsnipe lists running processes, lets you search, sort and filter
them, and kills the selected one.

With --tray it runs as a background monitor instead, reporting processes
with high CPU usage and games that start.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if tray {
				return runDaemon(cmd.Context())
			}
			return runTUI(cmd.Context())
		},
	}
	cmd.Flags().BoolVar(&tray, "tray", false, "run in background monitoring mode")
	return cmd
}

func runTUI(ctx context.Context) error {
	logger, closeLog, err := tuiLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := config.Load()
	if err != nil {
		logger.Printf("config: %v (using defaults)", err)
	}

	if !proc.IsElevated() {
		fmt.Fprintln(os.Stderr, "⚠️  Warning: not running with elevated privileges.")
		fmt.Fprintln(os.Stderr, "   Some processes might be protected and can't be killed.")
		fmt.Fprintln(os.Stderr, "   For full functionality, run as administrator/root.")
		fmt.Fprintln(os.Stderr)
		time.Sleep(elevationPause)
	}

	source, err := proc.NewSystem(ctx, logger)
	if err != nil {
		return fmt.Errorf("open process table: %w", err)
	}
	defer source.Close()

	return ui.NewEngine(source, cfg, logger).Run(ctx)
}

// tuiLogger keeps log output off the screen the TUI draws on: it goes to
// the file named by PROCSNIPE_DEBUG_LOG, or nowhere.
func tuiLogger() (*log.Logger, func(), error) {
	logger := log.New(io.Discard, "[procsnipe] ", log.LstdFlags)

	path := os.Getenv(EnvDebugLog)
	if path == "" {
		return logger, func() {}, nil
	}

	f, err := tea.LogToFileWith(path, "[procsnipe]", logger)
	if err != nil {
		return nil, nil, fmt.Errorf("open debug log: %w", err)
	}
	return logger, func() { f.Close() }, nil
}

func runDaemon(ctx context.Context) error {
	logger := log.New(os.Stderr, "[procsnipe-tray] ", log.LstdFlags)

	cfg, err := config.Load()
	if err != nil {
		logger.Printf("config: %v (using defaults)", err)
	}

	fmt.Println("🎯 procsnipe running in background monitor mode")
	fmt.Println("⚠️  DISCLAIMER: procsnipe monitors system processes in the background.")
	fmt.Println("   This is for performance monitoring only.")
	fmt.Println("   Killing critical processes can crash your system.")
	fmt.Println("   Use at your own risk.")
	fmt.Println()

	source, err := proc.NewSystem(ctx, logger)
	if err != nil {
		return fmt.Errorf("open process table: %w", err)
	}
	defer source.Close()

	notifier := alert.Multi{
		alert.Console{W: os.Stdout},
		alert.NewDiscord(cfg.Monitor.WebhookURL()),
	}

	return daemon.New(source, cfg, config.Path(), notifier, logger).Run(ctx)
}
