package models

import (
	"errors"
)

var (
	ErrNoRecord             = errors.New("models: no matching record found")
	ErrInvalidCredentials   = errors.New("models: invalid credentials")
	ErrDuplicateEmail       = errors.New("models: duplicate email")
	ErrUserNotFound         = errors.New("models: user not found")
	ErrCustomerNotFound     = errors.New("models: customer profile not found")
	ErrCategoryNotFound     = errors.New("models: category not found")
	ErrProductNotFound      = errors.New("models: product not found")
	ErrSubscriptionNotFound = errors.New("models: subscription not found")
	ErrPaymentNotFound      = errors.New("models: payment not found")
	ErrInvoiceNotFound      = errors.New("models: invoice not found")
	ErrDuplicateSlug        = errors.New("models: slug already in use")
	ErrProductUnavailable   = errors.New("models: product is not available for rent")
)
