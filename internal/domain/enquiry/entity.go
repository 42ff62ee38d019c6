// internal/domain/enquiry/entity.go
package enquiry

import (
	"time"

	"github.com/google/uuid"
)

// Source tells where on the page an enquiry came from
type Source string

const (
	SourceContactForm    Source = "contact_form"
	SourceProductEnquiry Source = "product_enquiry"
	SourceBulkPoultry    Source = "bulk_poultry"
	SourceCartCheckout   Source = "cart_checkout"
)

// Valid reports whether s is a known source
func (s Source) Valid() bool {
	switch s {
	case SourceContactForm, SourceProductEnquiry, SourceBulkPoultry, SourceCartCheckout:
		return true
	}
	return false
}

// Enquiry is a captured contact-form submission (a lead, not a purchase)
type Enquiry struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"size:255" json:"name"`
	Phone       string    `gorm:"size:50" json:"phone"`
	Email       string    `gorm:"size:255" json:"email"`
	Address     string    `gorm:"size:500" json:"address"`
	Pincode     string    `gorm:"size:10" json:"pincode"`
	ProductSlug string    `gorm:"size:255;index" json:"product,omitempty"`
	Message     string    `gorm:"type:text" json:"message"`
	Source      Source    `gorm:"size:50;not null;index" json:"source"`
	SessionID   string    `gorm:"size:64" json:"-"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName overrides the table name
func (Enquiry) TableName() string {
	return "enquiries"
}
