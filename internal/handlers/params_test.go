package handlers

import (
	"context"
	"net/http/httptest"
	"testing"
)

func TestUserIDFromContext(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r = r.WithContext(context.WithValue(r.Context(), UserIDContextKey, 42))

	userID, ok := userIDFromContext(r)
	if !ok {
		t.Fatal("expected user id in context")
	}
	if userID != 42 {
		t.Errorf("user id = %d, want 42", userID)
	}
}

func TestUserIDFromContext_Missing(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)

	if _, ok := userIDFromContext(r); ok {
		t.Fatal("expected no user id in empty context")
	}
}
