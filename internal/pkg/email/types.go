// internal/pkg/email/types.go
package email

import (
	"time"
)

// EmailType represents the type of email being sent
type EmailType string

const (
	EmailTypeEnquiryReceived EmailType = "enquiry_received"
)

// Email represents an email message
type Email struct {
	To          []string               `json:"to"`
	ReplyTo     string                 `json:"reply_to,omitempty"`
	Subject     string                 `json:"subject"`
	HTMLContent string                 `json:"html_content"`
	Type        EmailType              `json:"type"`
	Data        map[string]interface{} `json:"data,omitempty"`
}

// EnquiryNotificationData is the content of the shop-owner notification
// sent for every captured enquiry
type EnquiryNotificationData struct {
	SiteName   string
	EnquiryID  string
	Source     string
	Name       string
	Phone      string
	Email      string
	Address    string
	Pincode    string
	Product    string
	Message    string
	ReceivedAt time.Time
	Year       int
}
