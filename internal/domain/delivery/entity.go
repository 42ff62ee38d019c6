// internal/domain/delivery/entity.go
package delivery

import "time"

// Pincode is one serviceable delivery pincode
type Pincode struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	Code      string    `gorm:"uniqueIndex;not null;size:6" json:"code"`
	Area      string    `gorm:"size:255" json:"area"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName overrides the table name
func (Pincode) TableName() string {
	return "delivery_pincodes"
}

// DefaultPincodes covers Vijayawada and nearby towns
func DefaultPincodes() []Pincode {
	return []Pincode{
		{Code: "520001", Area: "Buckinghampet"},
		{Code: "520002", Area: "Gandhinagar"},
		{Code: "520003", Area: "Durga Agraharam"},
		{Code: "520004", Area: "Machavaram"},
		{Code: "520005", Area: "Bhavanipuram"},
		{Code: "520006", Area: "Satyanarayanapuram"},
		{Code: "520007", Area: "Autonagar"},
		{Code: "520008", Area: "Kothapeta"},
		{Code: "520010", Area: "Ajit Singh Nagar"},
		{Code: "520011", Area: "Payakapuram"},
		{Code: "521108", Area: "Gannavaram"},
		{Code: "522235", Area: "Guntur"},
	}
}
