package handlers

import (
	"encoding/json"
	"net/http"

	"rentora/internal/services"
)

type FCMHandler struct {
	Service *services.NotificationService
}

type registerTokenRequest struct {
	Token string `json:"token"`
}

// RegisterToken stores an FCM device token for the authenticated user so
// settlement notifications can reach their devices.
func (h *FCMHandler) RegisterToken(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r)
	if !ok {
		http.Error(w, "user not authorized", http.StatusUnauthorized)
		return
	}

	var req registerTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Token == "" {
		http.Error(w, "token is required", http.StatusBadRequest)
		return
	}

	if err := h.Service.RegisterToken(r.Context(), userID, req.Token); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
