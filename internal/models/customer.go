package models

import "time"

type Customer struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	CreatedAt time.Time `json:"created_at"`
	User      *User     `json:"user_details,omitempty"`
}

// UpdateProfileRequest carries the editable fields of a customer profile.
// Name and phone live on the user row, address and city on the customer row.
type UpdateProfileRequest struct {
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address,omitempty"`
	City      string `json:"city,omitempty"`
}
