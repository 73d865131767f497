package models

import "time"

type Product struct {
	ID                int        `json:"id"`
	Name              string     `json:"name"`
	Slug              string     `json:"slug"`
	Description       string     `json:"description,omitempty"`
	CategoryID        int        `json:"category_id"`
	CategoryName      string     `json:"category_name,omitempty"`
	VendorID          int        `json:"vendor_id"`
	VendorName        string     `json:"vendor_name,omitempty"`
	DailyPrice        float64    `json:"daily_price"`
	WeeklyPrice       float64    `json:"weekly_price"`
	MonthlyPrice      float64    `json:"monthly_price"`
	SecurityDeposit   float64    `json:"security_deposit"`
	Quantity          int        `json:"quantity"`
	AvailableQuantity int        `json:"available_quantity"`
	MainImage         string     `json:"main_image,omitempty"`
	City              string     `json:"city,omitempty"`
	State             string     `json:"state,omitempty"`
	IsActive          bool       `json:"is_active"`
	IsFeatured        bool       `json:"is_featured"`
	IsAvailable       bool       `json:"is_available"`
	ViewCount         int        `json:"view_count"`
	RentalCount       int        `json:"rental_count"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         *time.Time `json:"updated_at,omitempty"`
}

// ProductFilter narrows the product listing. Zero values mean "no filter".
type ProductFilter struct {
	CategoryID int
	City       string
	Featured   *bool
	Search     string
	OrderBy    string
}
