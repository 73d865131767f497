package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"rentora/internal/models"
)

func TestRentalPrice(t *testing.T) {
	product := models.Product{
		DailyPrice:   100,
		WeeklyPrice:  500,
		MonthlyPrice: 1500,
	}
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name         string
		durationType string
		end          time.Time
		want         string
	}{
		{"full days", models.DurationDaily, start.AddDate(0, 0, 3), "300"},
		{"partial day rounds up", models.DurationDaily, start.Add(36 * time.Hour), "200"},
		{"one week", models.DurationWeekly, start.AddDate(0, 0, 7), "500"},
		{"eight days charges two weeks", models.DurationWeekly, start.AddDate(0, 0, 8), "1000"},
		{"one month", models.DurationMonthly, start.AddDate(0, 0, 30), "1500"},
		{"forty days charges two months", models.DurationMonthly, start.AddDate(0, 0, 40), "3000"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := rentalPrice(product, c.durationType, start, c.end)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			want := decimal.RequireFromString(c.want)
			if !got.Equal(want) {
				t.Errorf("rentalPrice = %s, want %s", got, want)
			}
		})
	}
}

func TestRentalPrice_UnsupportedDuration(t *testing.T) {
	product := models.Product{DailyPrice: 100}
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	if _, err := rentalPrice(product, "hourly", start, start.AddDate(0, 0, 1)); err == nil {
		t.Fatal("expected error for unsupported duration type")
	}
}

func TestRentalPrice_MissingRate(t *testing.T) {
	product := models.Product{DailyPrice: 100}
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	if _, err := rentalPrice(product, models.DurationWeekly, start, start.AddDate(0, 0, 7)); err == nil {
		t.Fatal("expected error when product has no weekly rate")
	}
}
