package main

import (
	"context"
	"log"
	"time"

	"rentora/internal/repositories"
)

const viewFlushTimeout = 30 * time.Second

// startViewCountFlusher periodically drains the Redis view counters into the
// products table.
func startViewCountFlusher(ctx context.Context, counter *repositories.ViewCounter, repo *repositories.ProductRepository, infoLog, errorLog *log.Logger) {
	if counter == nil || repo == nil {
		return
	}

	go func() {
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		runOnce := func() {
			runCtx, cancel := context.WithTimeout(ctx, viewFlushTimeout)
			defer cancel()

			counts, err := counter.Drain(runCtx)
			if err != nil {
				if errorLog != nil {
					errorLog.Printf("view flusher: failed to drain counters: %v", err)
				}
				return
			}
			if len(counts) == 0 {
				return
			}
			if err := repo.AddViewCounts(runCtx, counts); err != nil {
				if errorLog != nil {
					errorLog.Printf("view flusher: failed to persist view counts: %v", err)
				}
				return
			}
			if infoLog != nil {
				infoLog.Printf("view flusher: persisted view counts for %d products", len(counts))
			}
		}

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				runOnce()
			}
		}
	}()
}
