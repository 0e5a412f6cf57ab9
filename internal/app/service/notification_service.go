package service

import (
	"context"
	"fmt"
	"time"

	"github.com/navjivan/navjivan-backend/internal/app/model"
	"github.com/navjivan/navjivan-backend/pkg/logger"
	"github.com/navjivan/navjivan-backend/pkg/mail"
)

// NotificationService mails the restaurant inbox about new reservations and
// contact messages. Notices are fire and forget: a mail failure never fails
// the request that triggered it.
type NotificationService interface {
	NotifyReservation(reservation *model.ReservationItem)
	NotifyContactMessage(message *model.ContactMessageItem)
}

type notificationService struct {
	client  *mail.Client
	toEmail string
}

// NewNotificationService returns nil when mail is not configured; callers
// treat a nil service as notifications disabled.
func NewNotificationService(cfg mail.Config) NotificationService {
	client, err := mail.NewClient(cfg)
	if err != nil {
		logger.Warn("Mail not configured, notifications disabled", map[string]interface{}{
			"error": err.Error(),
		})
		return nil
	}
	return &notificationService{client: client, toEmail: cfg.ToEmail}
}

func (s *notificationService) NotifyReservation(reservation *model.ReservationItem) {
	go s.send(
		fmt.Sprintf("New reservation: %s, %s at %s", reservation.Name, reservation.Date, reservation.Time),
		fmt.Sprintf(
			"Name: %s\nPhone: %s\nDate: %s\nTime: %s\nGuests: %d\nStatus: %s\n",
			reservation.Name, reservation.Phone, reservation.Date,
			reservation.Time, reservation.Guests, reservation.Status,
		),
		"",
	)
}

func (s *notificationService) NotifyContactMessage(message *model.ContactMessageItem) {
	go s.send(
		fmt.Sprintf("New contact message from %s", message.Name),
		fmt.Sprintf("Name: %s\nEmail: %s\n\n%s\n", message.Name, message.Email, message.Message),
		message.Email,
	)
}

func (s *notificationService) send(subject, text, replyTo string) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	_, err := s.client.Send(ctx, mail.SendRequest{
		To:      []string{s.toEmail},
		Subject: subject,
		Text:    text,
		ReplyTo: replyTo,
	})
	if err != nil {
		logger.Error("Failed to send notification mail", err, map[string]interface{}{
			"subject": subject,
		})
		return
	}

	logger.Debug("Notification mail sent", map[string]interface{}{
		"subject": subject,
	})
}
