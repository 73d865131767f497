package services

import (
	"context"
	"strings"
	"sync"
	"testing"

	"golang.org/x/exp/rand"

	"rentora/internal/models"
)

func TestSimulatedGateway_AlwaysApproves(t *testing.T) {
	g := &SimulatedGateway{SuccessRate: 1.0, Rand: rand.New(rand.NewSource(1))}

	for i := 0; i < 100; i++ {
		txn, approved, err := g.Authorize(context.Background(), models.Payment{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !approved {
			t.Fatal("success rate 1.0 must always approve")
		}
		if !strings.HasPrefix(txn, "txn_") {
			t.Fatalf("transaction id %q should have txn_ prefix", txn)
		}
	}
}

func TestSimulatedGateway_AlwaysDeclines(t *testing.T) {
	g := &SimulatedGateway{SuccessRate: 0.0, Rand: rand.New(rand.NewSource(1))}

	for i := 0; i < 100; i++ {
		txn, approved, err := g.Authorize(context.Background(), models.Payment{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if approved {
			t.Fatal("success rate 0.0 must never approve")
		}
		if txn != "" {
			t.Fatalf("declined attempt should have no transaction id, got %q", txn)
		}
	}
}

func TestSimulatedGateway_ConcurrentAuthorize(t *testing.T) {
	g := NewSimulatedGateway(1)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				if _, _, err := g.Authorize(context.Background(), models.Payment{}); err != nil {
					t.Errorf("unexpected error: %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()
}
