// internal/domain/enquiry/service.go
package enquiry

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/your-org/farm-storefront/internal/domain/catalog"
	"github.com/your-org/farm-storefront/internal/pkg/email"
	"gorm.io/gorm"
)

// SubmittedMessage is shown after a successful submission
const SubmittedMessage = "Your order/enquiry has been submitted! We will contact you shortly."

// MessageDismissAfter is how long the page shows SubmittedMessage before resetting the form
const MessageDismissAfter = 5 * time.Second

// Repository stores captured enquiries
type Repository interface {
	Create(ctx context.Context, e *Enquiry) error
}

type gormRepository struct {
	db *gorm.DB
}

// NewRepository creates an enquiry repository backed by gorm
func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Create(ctx context.Context, e *Enquiry) error {
	if err := r.db.WithContext(ctx).Create(e).Error; err != nil {
		return pkgerrors.Wrap(err, "enquiry: create")
	}
	return nil
}

// Notifier tells the shop about new enquiries
type Notifier interface {
	SendEnquiryNotification(ctx context.Context, data email.EnquiryNotificationData) error
}

// ProductFinder resolves a product card by its id
type ProductFinder interface {
	Get(ctx context.Context, slug string) (*catalog.Product, error)
}

// SubmitRequest carries the contact form fields as typed by the visitor
type SubmitRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Pincode string `json:"pincode"`
	Product string `json:"product"`
	Message string `json:"message"`
	Source  Source `json:"source"`
}

// SubmitResult is the page's response to a form submission
type SubmitResult struct {
	ID             string `json:"id"`
	Status         string `json:"status"`
	Message        string `json:"message"`
	DismissAfterMS int64  `json:"dismiss_after_ms"`
	ResetForm      bool   `json:"reset_form"`
}

// Service captures enquiries and builds contact-form prefills
type Service struct {
	repo     Repository
	products ProductFinder
	notifier Notifier
	log      logrus.FieldLogger
	now      func() time.Time
}

// NewService creates a new enquiry service. notifier may be nil.
func NewService(repo Repository, products ProductFinder, notifier Notifier, log logrus.FieldLogger) *Service {
	return &Service{
		repo:     repo,
		products: products,
		notifier: notifier,
		log:      log,
		now:      time.Now,
	}
}

// Submit captures the form values. Fields are stored as typed; the
// shop notification is best effort and never fails the submission.
func (s *Service) Submit(ctx context.Context, sessionID string, req *SubmitRequest) (*SubmitResult, error) {
	source := req.Source
	if !source.Valid() {
		source = SourceContactForm
	}

	e := &Enquiry{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(req.Name),
		Phone:       strings.TrimSpace(req.Phone),
		Email:       strings.TrimSpace(req.Email),
		Address:     strings.TrimSpace(req.Address),
		Pincode:     strings.TrimSpace(req.Pincode),
		ProductSlug: strings.TrimSpace(req.Product),
		Message:     req.Message,
		Source:      source,
		SessionID:   sessionID,
		CreatedAt:   s.now().UTC(),
	}

	if err := s.repo.Create(ctx, e); err != nil {
		return nil, fmt.Errorf("failed to capture enquiry: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"enquiry_id": e.ID.String(),
		"source":     e.Source,
		"product":    e.ProductSlug,
		"pincode":    e.Pincode,
	}).Info("enquiry submitted")

	s.notify(ctx, e)

	return &SubmitResult{
		ID:             e.ID.String(),
		Status:         "success",
		Message:        SubmittedMessage,
		DismissAfterMS: MessageDismissAfter.Milliseconds(),
		ResetForm:      true,
	}, nil
}

// ProductPrefill builds the contact-form prefill for a product card
func (s *Service) ProductPrefill(ctx context.Context, slug string) (*Prefill, error) {
	p, err := s.products.Get(ctx, slug)
	if err != nil {
		return nil, err
	}
	priceLabel := p.PriceLabel
	if priceLabel == "" {
		priceLabel = "₹ " + p.Price.StringFixed(2)
	}
	prefill := ProductPrefill(p.Name, priceLabel)
	return &prefill, nil
}

func (s *Service) notify(ctx context.Context, e *Enquiry) {
	if s.notifier == nil {
		return
	}
	err := s.notifier.SendEnquiryNotification(ctx, email.EnquiryNotificationData{
		EnquiryID:  e.ID.String(),
		Source:     string(e.Source),
		Name:       e.Name,
		Phone:      e.Phone,
		Email:      e.Email,
		Address:    e.Address,
		Pincode:    e.Pincode,
		Product:    e.ProductSlug,
		Message:    e.Message,
		ReceivedAt: e.CreatedAt,
	})
	if err != nil && !errors.Is(err, email.ErrDisabled) {
		s.log.WithError(err).WithField("enquiry_id", e.ID.String()).Warn("enquiry notification failed")
	}
}
