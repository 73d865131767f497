package models

import (
	"strings"
	"testing"
)

func TestSentinelErrorsSharePrefix(t *testing.T) {
	sentinels := []error{
		ErrNoRecord,
		ErrInvalidCredentials,
		ErrDuplicateEmail,
		ErrUserNotFound,
		ErrCustomerNotFound,
		ErrCategoryNotFound,
		ErrProductNotFound,
		ErrSubscriptionNotFound,
		ErrPaymentNotFound,
		ErrInvoiceNotFound,
		ErrDuplicateSlug,
		ErrProductUnavailable,
	}

	for _, err := range sentinels {
		if !strings.HasPrefix(err.Error(), "models: ") {
			t.Errorf("sentinel %q is missing the models: prefix", err)
		}
	}
}
