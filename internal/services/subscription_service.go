package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"rentora/internal/models"
	"rentora/internal/repositories"
)

type SubscriptionService struct {
	SubscriptionRepo *repositories.SubscriptionRepository
	ProductRepo      *repositories.ProductRepository
	CustomerRepo     *repositories.CustomerRepository
}

// CreateSubscription prices the rental from the product's rate card for the
// requested duration and creates the subscription in pending status. Payment
// happens later through the settlement workflow.
func (s *SubscriptionService) CreateSubscription(ctx context.Context, userID int, req models.CreateSubscriptionRequest) (models.Subscription, error) {
	customer, err := s.CustomerRepo.GetCustomerByUserID(ctx, userID)
	if err != nil {
		return models.Subscription{}, err
	}

	product, err := s.ProductRepo.GetProductByID(ctx, req.ProductID)
	if err != nil {
		return models.Subscription{}, err
	}
	if !product.IsActive || !product.IsAvailable {
		return models.Subscription{}, models.ErrProductUnavailable
	}

	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return models.Subscription{}, fmt.Errorf("invalid start_date: %w", err)
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return models.Subscription{}, fmt.Errorf("invalid end_date: %w", err)
	}
	if !end.After(start) {
		return models.Subscription{}, fmt.Errorf("end_date must be after start_date")
	}

	rental, err := rentalPrice(product, req.DurationType, start, end)
	if err != nil {
		return models.Subscription{}, err
	}
	deposit := decimal.NewFromFloat(product.SecurityDeposit)

	sub := models.Subscription{
		CustomerID:      customer.ID,
		ProductID:       product.ID,
		DurationType:    req.DurationType,
		StartDate:       start,
		EndDate:         end,
		TotalAmount:     rental.Add(deposit),
		SecurityDeposit: &deposit,
		Status:          models.SubscriptionStatusPending,
	}
	sub, err = s.SubscriptionRepo.CreateSubscription(ctx, sub)
	if err != nil {
		return models.Subscription{}, err
	}
	sub.ProductName = product.Name
	return sub, nil
}

func (s *SubscriptionService) GetSubscriptions(ctx context.Context, userID int) ([]models.Subscription, error) {
	customer, err := s.CustomerRepo.GetCustomerByUserID(ctx, userID)
	if err != nil {
		if err == models.ErrCustomerNotFound {
			return []models.Subscription{}, nil
		}
		return nil, err
	}
	subs, err := s.SubscriptionRepo.GetSubscriptionsByCustomerID(ctx, customer.ID)
	if err != nil {
		return nil, err
	}
	if subs == nil {
		subs = []models.Subscription{}
	}
	return subs, nil
}

func (s *SubscriptionService) GetSubscriptionByID(ctx context.Context, id int) (models.Subscription, error) {
	return s.SubscriptionRepo.GetSubscriptionByID(ctx, id)
}

func (s *SubscriptionService) CancelSubscription(ctx context.Context, id int) error {
	return s.SubscriptionRepo.UpdateSubscriptionStatus(ctx, id, models.SubscriptionStatusCancelled)
}

// rentalPrice charges whole billing units, rounding the rental period up.
func rentalPrice(product models.Product, durationType string, start, end time.Time) (decimal.Decimal, error) {
	days := end.Sub(start).Hours() / 24

	var units float64
	var rate float64
	switch durationType {
	case models.DurationDaily:
		units = math.Ceil(days)
		rate = product.DailyPrice
	case models.DurationWeekly:
		units = math.Ceil(days / 7)
		rate = product.WeeklyPrice
	case models.DurationMonthly:
		units = math.Ceil(days / 30)
		rate = product.MonthlyPrice
	default:
		return decimal.Zero, fmt.Errorf("unsupported duration_type: %s", durationType)
	}
	if rate <= 0 {
		return decimal.Zero, fmt.Errorf("product has no %s rate", durationType)
	}
	return decimal.NewFromFloat(rate).Mul(decimal.NewFromFloat(units)).Round(2), nil
}
