package models

import "time"

type Category struct {
	ID            int        `json:"id"`
	Name          string     `json:"name"`
	Slug          string     `json:"slug"`
	Description   string     `json:"description,omitempty"`
	ImagePath     string     `json:"image_path,omitempty"`
	ParentID      *int       `json:"parent_id,omitempty"`
	IsActive      bool       `json:"is_active"`
	DisplayOrder  int        `json:"display_order"`
	ProductCount  int        `json:"product_count"`
	Subcategories []Category `json:"subcategories,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
}
