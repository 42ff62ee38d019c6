// internal/pkg/email/smtp.go
package email

import (
	"bytes"
	"fmt"
	"mime"
	"net/mail"
	"net/smtp"
	"sort"
	"strings"
)

// sendSMTPEmail sends email using SMTP
func (s *Service) sendSMTPEmail(email *Email) error {
	cfg := s.config.Email
	if cfg.SMTPHost == "" {
		return fmt.Errorf("SMTP configuration incomplete: missing host")
	}
	if len(email.To) == 0 {
		return fmt.Errorf("email has no recipients")
	}

	var auth smtp.Auth
	if cfg.SMTPUser != "" {
		auth = smtp.PlainAuth("", cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPHost)
	}

	from := cfg.FromEmail
	if cfg.FromName != "" {
		from = fmt.Sprintf("%s <%s>", cfg.FromName, cfg.FromEmail)
	}

	headers := map[string]string{
		"From":         from,
		"To":           strings.Join(email.To, ", "),
		"Subject":      mime.QEncoding.Encode("utf-8", stripLineBreaks(email.Subject)),
		"MIME-Version": "1.0",
		"Content-Type": "text/html; charset=\"utf-8\"",
	}
	if email.ReplyTo != "" {
		// Reply-To comes from the contact form; drop it unless it is a single valid address.
		if addr, err := mail.ParseAddress(email.ReplyTo); err == nil {
			headers["Reply-To"] = addr.Address
		}
	}

	msg := buildMessage(headers, email.HTMLContent)
	serverAddr := fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort)

	if err := s.sendMail(serverAddr, auth, cfg.FromEmail, email.To, msg); err != nil {
		return fmt.Errorf("failed to send email via SMTP: %w", err)
	}
	return nil
}

// buildMessage writes headers in a stable order followed by the body
func buildMessage(headers map[string]string, body string) []byte {
	keys := make([]string, 0, len(headers))
	for k := range headers {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var msg bytes.Buffer
	for _, k := range keys {
		msg.WriteString(fmt.Sprintf("%s: %s\r\n", k, stripLineBreaks(headers[k])))
	}
	msg.WriteString("\r\n")
	msg.WriteString(body)
	return msg.Bytes()
}

var lineBreaks = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

// stripLineBreaks keeps a header value on a single line
func stripLineBreaks(v string) string {
	return lineBreaks.Replace(v)
}
