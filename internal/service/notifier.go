package service

import (
	"github.com/meetapp/meetapp-backend/internal/models"
)

// Notifier delivers best-effort email side effects. Workflows call it from
// goroutines and ignore failures beyond logging, so delivery never blocks or
// fails a request.
type Notifier interface {
	SendWelcomeEmail(email, name string) error
	NotifyNewAttendee(owner models.User, attendee models.User, meetup models.Meetup) error
}

// NoopNotifier is the default when no email provider is configured.
type NoopNotifier struct{}

func (NoopNotifier) SendWelcomeEmail(email, name string) error {
	return nil
}

func (NoopNotifier) NotifyNewAttendee(owner models.User, attendee models.User, meetup models.Meetup) error {
	return nil
}
