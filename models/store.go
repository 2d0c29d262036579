package models

import "time"

// Store holds the single settings row printed on receipts.
type Store struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"size:180;not null" json:"name"`
	Address string `gorm:"size:255" json:"address,omitempty"`
	Phone   string `gorm:"size:60" json:"phone,omitempty"`
	TaxID   string `gorm:"size:60" json:"tax_id,omitempty"`
	LogoURL string `gorm:"size:255" json:"logo_url,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
