package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/internal/logging"
	"github.com/taskdeck/taskdeck/internal/server"
	"github.com/taskdeck/taskdeck/internal/tui"
)

func newTuiCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive task board",
		Long: `Open the interactive terminal interface: a task list with a detail
pane, a monthly calendar, and keyboard-driven editing.

When the metrics server is enabled in the config, Prometheus metrics
and health probes are served on a dedicated port while the interface
is open.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTui()
		},
	}
	return cmd
}

func runTui() error {
	// Setup graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer cancel()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close(context.Background())

	// Start the metrics server if enabled
	var metricsServer *server.MetricsServer
	if a.cfg.Metrics.Enabled && a.provider.Enabled() {
		metricsServer, err = server.NewMetricsServer(server.MetricsServerConfig{
			Addr:                    a.cfg.Metrics.Addr,
			Enabled:                 true,
			InstrumentationProvider: a.provider,
		})
		if err != nil {
			return fmt.Errorf("creating metrics server: %w", err)
		}

		go func() {
			if err := metricsServer.Start(); err != nil && err != http.ErrServerClosed {
				slog.Error("metrics server failed", logging.Err(err))
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := metricsServer.Shutdown(shutdownCtx); err != nil {
				slog.Warn("metrics server shutdown", logging.Err(err))
			}
		}()
	}

	var opts []tui.Option
	if metrics := a.provider.Metrics(); metrics != nil {
		opts = append(opts, tui.WithActionRecorder(metrics))
	}
	model := tui.New(a.controller(), opts...)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running interface: %w", err)
	}
	return nil
}
