package services

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"

	"rentora/internal/models"
)

// PaymentGateway decides the outcome of a payment attempt. The production
// implementation simulates a card processor; tests substitute deterministic
// outcomes.
type PaymentGateway interface {
	Authorize(ctx context.Context, payment models.Payment) (transactionID string, approved bool, err error)
}

// SimulatedGateway approves a fixed fraction of attempts. There is no real
// processor behind it. The mutex serializes draws: rand.Rand is not safe for
// concurrent use and one gateway serves every request goroutine.
type SimulatedGateway struct {
	SuccessRate float64
	Rand        *rand.Rand

	mu sync.Mutex
}

func NewSimulatedGateway(seed uint64) *SimulatedGateway {
	return &SimulatedGateway{
		SuccessRate: 0.8,
		Rand:        rand.New(rand.NewSource(seed)),
	}
}

func (g *SimulatedGateway) Authorize(ctx context.Context, payment models.Payment) (string, bool, error) {
	g.mu.Lock()
	draw := g.Rand.Float64()
	g.mu.Unlock()

	if draw >= g.SuccessRate {
		return "", false, nil
	}
	return "txn_" + uuid.NewString(), true, nil
}
