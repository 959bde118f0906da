package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mj1618/selection-lens/internal/output"
	"github.com/mj1618/selection-lens/internal/overlay"
	"github.com/mj1618/selection-lens/internal/selection"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Poll the text selection and stream changes",
	Long: `Continuously poll the focused application's text selection and emit a change
event whenever it appears, changes, or disappears.

Each event is one JSON object per line by default, or one YAML document per
event with --format yaml. Nothing is emitted while the selection is stable
unless --all is set.

Use Ctrl+C or --duration to stop watching.`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().Int("interval", 0, "Polling interval in milliseconds (default SELECTION_LENS_INTERVAL_MS or 1500)")
	watchCmd.Flags().Int("duration", 0, "Max seconds to watch (0 = until Ctrl+C)")
	watchCmd.Flags().Bool("all", false, "Emit every poll, not only changes")
	watchCmd.Flags().Int("buffer", -1, "Snapshots buffered between poller and printer (default SELECTION_LENS_BUFFER or 8)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	intervalMs, _ := cmd.Flags().GetInt("interval")
	durationSec, _ := cmd.Flags().GetInt("duration")
	all, _ := cmd.Flags().GetBool("all")
	buffer, _ := cmd.Flags().GetInt("buffer")

	interval := cfg.Interval
	if intervalMs > 0 {
		interval = time.Duration(intervalMs) * time.Millisecond
	}
	if buffer < 0 {
		buffer = cfg.Buffer
	}
	format, err := resolveFormat(output.FormatJSON)
	if err != nil {
		return err
	}

	ctrl, err := newController()
	if err != nil {
		return err
	}
	defer ctrl.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if durationSec > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(durationSec)*time.Second)
		defer cancel()
	}

	printer := overlay.NewPrinter(os.Stdout, format)
	ov := overlay.New(printer, overlay.WithLogger(logger), overlay.WithAll(all))
	snaps := make(chan selection.Snapshot, buffer)
	start := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return ctrl.Run(gctx, interval, snaps)
	})
	g.Go(func() error {
		return ov.Run(gctx, snaps)
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("watch: %w", err)
	}

	logger.Info("watch finished",
		"elapsed", fmt.Sprintf("%.1fs", time.Since(start).Seconds()),
		"events", printer.Count())
	return nil
}
