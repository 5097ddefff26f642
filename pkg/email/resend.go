package email

import (
	"bytes"
	"html/template"
	"path/filepath"
	"time"

	"github.com/meetapp/meetapp-backend/internal/config"
	"github.com/meetapp/meetapp-backend/internal/models"
	"github.com/resendlabs/resend-go"
	"go.uber.org/zap"
)

type EmailService struct {
	client       *resend.Client
	from         string
	fromName     string
	templatesDir string
	logger       *zap.Logger
}

func NewEmailService(cfg config.EmailConfig, logger *zap.Logger) *EmailService {
	return &EmailService{
		client:       resend.NewClient(cfg.APIKey),
		from:         cfg.FromAddress,
		fromName:     cfg.FromName,
		templatesDir: "pkg/email/templates",
		logger:       logger,
	}
}

func (s *EmailService) SendWelcomeEmail(email, name string) error {
	templateData := map[string]interface{}{
		"Name":  name,
		"Email": email,
		"Year":  time.Now().Year(),
	}

	html, err := s.parseTemplate("welcome.html", templateData)
	if err != nil {
		s.logger.Error("failed to parse welcome template",
			zap.String("email", email), zap.Error(err))
		return err
	}

	params := &resend.SendEmailRequest{
		From:    s.fromName + " <" + s.from + ">",
		To:      []string{email},
		Subject: "Welcome to Meetapp!",
		Html:    html,
	}

	resp, err := s.client.Emails.Send(params)
	if err != nil {
		s.logger.Error("failed to send welcome email",
			zap.String("email", email), zap.Error(err))
		return err
	}

	s.logger.Info("welcome email sent",
		zap.String("email", email), zap.String("id", resp.Id))
	return nil
}

// NotifyNewAttendee tells a meetup owner someone registered. Callers invoke
// it from a goroutine; registration never waits on delivery.
func (s *EmailService) NotifyNewAttendee(owner models.User, attendee models.User, meetup models.Meetup) error {
	templateData := map[string]interface{}{
		"Owner":    owner.Name,
		"Attendee": attendee.Name,
		"Meetup":   meetup.Title,
		"Date":     meetup.Date.Format("Monday, January 2 at 15:04"),
		"Year":     time.Now().Year(),
	}

	html, err := s.parseTemplate("new-attendee.html", templateData)
	if err != nil {
		s.logger.Error("failed to parse new-attendee template",
			zap.String("email", owner.Email), zap.Error(err))
		return err
	}

	params := &resend.SendEmailRequest{
		From:    s.fromName + " <" + s.from + ">",
		To:      []string{owner.Email},
		Subject: "Someone is attending your meetup",
		Html:    html,
	}

	resp, err := s.client.Emails.Send(params)
	if err != nil {
		s.logger.Error("failed to send new-attendee email",
			zap.String("email", owner.Email), zap.Error(err))
		return err
	}

	s.logger.Info("new-attendee email sent",
		zap.String("email", owner.Email), zap.String("id", resp.Id))
	return nil
}

func (s *EmailService) parseTemplate(templateName string, data interface{}) (string, error) {
	templatePath := filepath.Join(s.templatesDir, templateName)

	tmpl, err := template.ParseFiles(templatePath)
	if err != nil {
		return "", err
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return "", err
	}

	return body.String(), nil
}
