package main

import (
	"context"
	"log"
	"time"

	"rentora/internal/repositories"
)

const subscriptionExpirerTimeout = 1 * time.Minute

// startSubscriptionExpirer moves active subscriptions whose end date has
// passed into the expired status once a day.
func startSubscriptionExpirer(ctx context.Context, repo *repositories.SubscriptionRepository, infoLog, errorLog *log.Logger) {
	if repo == nil {
		return
	}

	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()

		runOnce := func() {
			runCtx, cancel := context.WithTimeout(ctx, subscriptionExpirerTimeout)
			processed, err := repo.ExpireEndedSubscriptions(runCtx, time.Now().UTC())
			cancel()
			if err != nil {
				if errorLog != nil {
					errorLog.Printf("subscription expirer: failed to expire ended subscriptions: %v", err)
				}
			} else if processed > 0 && infoLog != nil {
				infoLog.Printf("subscription expirer: marked %d subscriptions expired", processed)
			}
		}

		runOnce()

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
