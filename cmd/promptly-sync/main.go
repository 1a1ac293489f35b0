package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vanshaj8/Promptly/internal/instagram"
	"github.com/vanshaj8/Promptly/internal/wire"
)

func main() {
	brandID := flag.Uint("brand", 0, "sync only this brand (default: every connected brand)")
	replay := flag.String("replay", "", "re-run an archived webhook delivery by request id")
	timeout := flag.Duration("timeout", 10*time.Minute, "overall deadline")
	flag.Parse()

	app, cleanup, err := wire.InitializeApplication()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, *timeout)
	defer cancel()

	if err := run(ctx, app, *brandID, *replay, os.Stdout); err != nil {
		app.Logger.WithError(err).Error("sync failed")
		cleanup()
		os.Exit(1)
	}
}

func run(ctx context.Context, app *wire.Application, brandID uint, replay string, out io.Writer) error {
	if replay != "" {
		return replayDelivery(ctx, app, replay, out)
	}

	if brandID != 0 {
		result, err := app.Poller.SyncComments(ctx, brandID)
		if result != nil {
			printResult(out, result)
		}
		return err
	}

	results, err := app.Poller.SyncAll(ctx)
	if err != nil {
		return err
	}
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(out, "brand %d: error: %v\n", r.BrandID, r.Err)
		}
		if r.Result != nil {
			printResult(out, r.Result)
		}
	}
	fmt.Fprintf(out, "%d brands synced, %d failed\n", len(results)-failed, failed)
	if failed > 0 {
		return fmt.Errorf("%d of %d brands failed", failed, len(results))
	}
	return nil
}

func replayDelivery(ctx context.Context, app *wire.Application, requestID string, out io.Writer) error {
	if app.Archive == nil {
		return fmt.Errorf("delivery archive is disabled, set MONGO_ENABLED=true")
	}
	delivery, err := app.Archive.Find(ctx, requestID)
	if err != nil {
		return err
	}
	result, err := app.Webhooks.Replay(ctx, []byte(delivery.Payload))
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "delivery %s: entries=%d inserted=%d duplicates=%d skipped=%d failed=%d\n",
		requestID, result.Entries, result.Inserted, result.Duplicates, result.Skipped, result.Failed)
	return nil
}

func printResult(out io.Writer, r *instagram.SyncResult) {
	status := "complete"
	if !r.Complete() {
		status = "partial"
	}
	fmt.Fprintf(out, "brand %d account %d: added=%d duplicates=%d media=%d media_failures=%d comment_failures=%d (%s)\n",
		r.BrandID, r.AccountID, r.Added, r.Duplicates, r.MediaScanned, len(r.MediaFailures), r.CommentFailures, status)
	if r.ListError != nil {
		fmt.Fprintf(out, "  media listing failed: %v\n", r.ListError)
	}
	for _, f := range r.MediaFailures {
		fmt.Fprintf(out, "  media %s: %v\n", f.MediaID, f.Err)
	}
}
