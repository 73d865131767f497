package services

import (
	"context"
	"fmt"
	"log"

	"firebase.google.com/go/messaging"

	"rentora/internal/models"
	"rentora/internal/repositories"
)

// NotificationService pushes FCM messages to a user's registered devices.
// All sends are best effort.
type NotificationService struct {
	Client    *messaging.Client
	TokenRepo *repositories.DeviceTokenRepository
	ErrorLog  *log.Logger
}

func (s *NotificationService) RegisterToken(ctx context.Context, userID int, token string) error {
	return s.TokenRepo.SaveToken(ctx, userID, token)
}

func (s *NotificationService) NotifyPaymentSuccess(ctx context.Context, userID int, invoice models.Invoice) {
	if s.Client == nil {
		return
	}
	title := "Payment successful"
	body := fmt.Sprintf("Invoice %s for %s has been paid.", invoice.InvoiceNumber, FormatCurrency(invoice.TotalAmount))
	s.send(ctx, userID, title, body, map[string]string{
		"invoice_id":     fmt.Sprintf("%d", invoice.ID),
		"invoice_number": invoice.InvoiceNumber,
	})
}

func (s *NotificationService) send(ctx context.Context, userID int, title, body string, data map[string]string) {
	tokens, err := s.TokenRepo.GetTokensByUserID(ctx, userID)
	if err != nil {
		s.logError("fcm: failed to load tokens for user %d: %v", userID, err)
		return
	}

	for _, token := range tokens {
		message := &messaging.Message{
			Token: token,
			Notification: &messaging.Notification{
				Title: title,
				Body:  body,
			},
			Data: data,
		}
		if _, err := s.Client.Send(ctx, message); err != nil {
			s.logError("fcm: send to user %d failed: %v", userID, err)
			if messaging.IsRegistrationTokenNotRegistered(err) {
				_ = s.TokenRepo.DeleteToken(ctx, token)
			}
		}
	}
}

func (s *NotificationService) logError(format string, args ...any) {
	if s.ErrorLog != nil {
		s.ErrorLog.Printf(format, args...)
		return
	}
	log.Printf(format, args...)
}
