// internal/pkg/email/service.go
package email

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"net/smtp"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	"github.com/your-org/farm-storefront/internal/config"
)

// ErrDisabled is returned when notifications are switched off
var ErrDisabled = errors.New("email notifications disabled")

// Service sends enquiry notifications through the configured provider
type Service struct {
	config    *config.Config
	log       logrus.FieldLogger
	templates map[EmailType]*template.Template
	cb        *gobreaker.CircuitBreaker
	sendMail  func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewService creates a new email service
func NewService(cfg *config.Config, log logrus.FieldLogger) *Service {
	st := gobreaker.Settings{
		Name:        "SMTPCircuitBreaker",
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     2 * time.Minute,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			log.Warnf("%s state changed from %s to %s", name, from, to)
		},
	}

	return &Service{
		config: cfg,
		log:    log,
		templates: map[EmailType]*template.Template{
			EmailTypeEnquiryReceived: enquiryTemplate,
		},
		cb:       gobreaker.NewCircuitBreaker(st),
		sendMail: smtp.SendMail,
	}
}

// SendEmail sends an email using the configured provider
func (s *Service) SendEmail(ctx context.Context, email *Email) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	switch s.config.Email.Provider {
	case "none":
		return ErrDisabled
	case "log":
		s.log.WithFields(logrus.Fields{
			"to":      email.To,
			"subject": email.Subject,
			"type":    email.Type,
		}).Info("email notification")
		return nil
	case "smtp":
		_, err := s.cb.Execute(func() (interface{}, error) {
			return nil, s.sendSMTPEmail(email)
		})
		return err
	default:
		return fmt.Errorf("unsupported email provider: %s", s.config.Email.Provider)
	}
}

// SendEnquiryNotification tells the shop about a new enquiry
func (s *Service) SendEnquiryNotification(ctx context.Context, data EnquiryNotificationData) error {
	data.SiteName = s.config.Email.FromName
	data.Year = data.ReceivedAt.Year()

	htmlContent, err := s.renderTemplate(EmailTypeEnquiryReceived, data)
	if err != nil {
		return fmt.Errorf("failed to render enquiry template: %w", err)
	}

	return s.SendEmail(ctx, &Email{
		To:          s.config.Email.NotifyTo,
		ReplyTo:     data.Email,
		Subject:     fmt.Sprintf("New enquiry from %s", data.Name),
		HTMLContent: htmlContent,
		Type:        EmailTypeEnquiryReceived,
		Data: map[string]interface{}{
			"enquiry_id": data.EnquiryID,
			"source":     data.Source,
		},
	})
}

// renderTemplate renders an email template with data
func (s *Service) renderTemplate(emailType EmailType, data interface{}) (string, error) {
	tmpl, exists := s.templates[emailType]
	if !exists {
		return "", fmt.Errorf("template %s not found", emailType)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template %s: %w", emailType, err)
	}

	return buf.String(), nil
}

var enquiryTemplate = template.Must(template.New(string(EmailTypeEnquiryReceived)).Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>{{.SiteName}}</title>
</head>
<body style="font-family: Arial, sans-serif; margin: 0; padding: 20px; background-color: #f4f4f4;">
    <div style="max-width: 600px; margin: 0 auto; background-color: white; padding: 20px; border-radius: 8px;">
        <h1 style="color: #333;">New enquiry</h1>
        <p><strong>Name:</strong> {{.Name}}</p>
        {{if .Phone}}<p><strong>Phone:</strong> {{.Phone}}</p>{{end}}
        {{if .Email}}<p><strong>Email:</strong> {{.Email}}</p>{{end}}
        {{if .Address}}<p><strong>Address:</strong> {{.Address}}</p>{{end}}
        {{if .Pincode}}<p><strong>Pin Code:</strong> {{.Pincode}}</p>{{end}}
        {{if .Product}}<p><strong>Product:</strong> {{.Product}}</p>{{end}}
        <p><strong>Message:</strong><br>{{.Message}}</p>
        <hr>
        <p style="font-size: 12px; color: #666;">
            {{.Source}} &middot; {{.EnquiryID}} &middot; &copy; {{.Year}} {{.SiteName}}
        </p>
    </div>
</body>
</html>`))
