package email

import (
	"context"
	"errors"
	"io"
	"net/smtp"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/farm-storefront/internal/config"
)

type sentMail struct {
	addr string
	from string
	to   []string
	msg  string
}

func newTestService(provider string) (*Service, *[]sentMail) {
	cfg := &config.Config{Email: config.EmailConfig{
		Provider:  provider,
		FromEmail: "noreply@yourfarmeggs.in",
		FromName:  "Farm Storefront",
		NotifyTo:  []string{"info@yourfarmeggs.in"},
		SMTPHost:  "smtp.example.com",
		SMTPPort:  587,
	}}
	log := logrus.New()
	log.SetOutput(io.Discard)

	var sent []sentMail
	svc := NewService(cfg, log)
	svc.sendMail = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		sent = append(sent, sentMail{addr: addr, from: from, to: to, msg: string(msg)})
		return nil
	}
	return svc, &sent
}

func enquiryData() EnquiryNotificationData {
	return EnquiryNotificationData{
		EnquiryID:  "5f0c",
		Source:     "product_enquiry",
		Name:       "Ravi",
		Phone:      "9876543210",
		Email:      "ravi@example.com",
		Product:    "Country Chicken",
		Message:    "Need 10 birds <urgent>",
		ReceivedAt: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func TestSendEnquiryNotification_SMTP(t *testing.T) {
	svc, sent := newTestService("smtp")

	require.NoError(t, svc.SendEnquiryNotification(context.Background(), enquiryData()))
	require.Len(t, *sent, 1)

	mail := (*sent)[0]
	assert.Equal(t, "smtp.example.com:587", mail.addr)
	assert.Equal(t, "noreply@yourfarmeggs.in", mail.from)
	assert.Equal(t, []string{"info@yourfarmeggs.in"}, mail.to)
	assert.Contains(t, mail.msg, "Subject: New enquiry from Ravi\r\n")
	assert.Contains(t, mail.msg, "Reply-To: ravi@example.com\r\n")
	assert.Contains(t, mail.msg, "Country Chicken")
	assert.Contains(t, mail.msg, "Need 10 birds &lt;urgent&gt;")
	assert.Contains(t, mail.msg, "2026 Farm Storefront")
}

func TestSendEnquiryNotification_HeaderValuesStayOnOneLine(t *testing.T) {
	svc, sent := newTestService("smtp")

	data := enquiryData()
	data.Name = "Ravi\r\nX-Injected: yes"
	data.Email = "a@b.c\r\nBcc: victim@example.com"

	require.NoError(t, svc.SendEnquiryNotification(context.Background(), data))
	require.Len(t, *sent, 1)

	head, _, found := strings.Cut((*sent)[0].msg, "\r\n\r\n")
	require.True(t, found)

	names := make([]string, 0)
	for _, line := range strings.Split(head, "\r\n") {
		name, _, _ := strings.Cut(line, ":")
		names = append(names, name)
	}
	assert.ElementsMatch(t, []string{"Content-Type", "From", "MIME-Version", "Subject", "To"}, names)
	assert.Contains(t, head, "Subject: New enquiry from Ravi X-Injected: yes\r\n")
}

func TestSendEnquiryNotification_ReplyToUsesParsedAddress(t *testing.T) {
	svc, sent := newTestService("smtp")

	data := enquiryData()
	data.Email = "Ravi Kumar <ravi@example.com>"
	require.NoError(t, svc.SendEnquiryNotification(context.Background(), data))

	assert.Contains(t, (*sent)[0].msg, "Reply-To: ravi@example.com\r\n")
}

func TestSendEmail_LogAndNone(t *testing.T) {
	logSvc, sent := newTestService("log")
	require.NoError(t, logSvc.SendEnquiryNotification(context.Background(), enquiryData()))
	assert.Empty(t, *sent)

	noneSvc, _ := newTestService("none")
	assert.ErrorIs(t, noneSvc.SendEnquiryNotification(context.Background(), enquiryData()), ErrDisabled)
}

func TestSendEmail_CancelledContext(t *testing.T) {
	svc, sent := newTestService("smtp")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, svc.SendEmail(ctx, &Email{To: []string{"a@b.c"}}), context.Canceled)
	assert.Empty(t, *sent)
}

func TestSendEmail_BreakerOpensAfterFailures(t *testing.T) {
	svc, _ := newTestService("smtp")
	calls := 0
	svc.sendMail = func(string, smtp.Auth, string, []string, []byte) error {
		calls++
		return errors.New("connection refused")
	}

	for i := 0; i < 3; i++ {
		assert.Error(t, svc.SendEmail(context.Background(), &Email{To: []string{"a@b.c"}}))
	}

	err := svc.SendEmail(context.Background(), &Email{To: []string{"a@b.c"}})
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, 3, calls)
}

func TestSendSMTPEmail_RequiresHost(t *testing.T) {
	svc, _ := newTestService("smtp")
	svc.config.Email.SMTPHost = ""

	assert.ErrorContains(t, svc.sendSMTPEmail(&Email{To: []string{"a@b.c"}}), "missing host")
}

func TestBuildMessage_StableHeaderOrder(t *testing.T) {
	msg := buildMessage(map[string]string{"To": "a", "From": "b", "Subject": "c"}, "body")
	assert.Equal(t, "From: b\r\nSubject: c\r\nTo: a\r\n\r\nbody", string(msg))
}

func TestBuildMessage_StripsLineBreaks(t *testing.T) {
	msg := buildMessage(map[string]string{"Subject": "hi\nBcc: x@y.z\r"}, "body")
	assert.Equal(t, "Subject: hi Bcc: x@y.z \r\n\r\nbody", string(msg))
}
