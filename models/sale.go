package models

import "time"

type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "CASH"
	PaymentCard     PaymentMethod = "CARD"
	PaymentTransfer PaymentMethod = "TRANSFER"
)

// Sale is immutable once created: a frozen copy of the tab at settlement
// time, decoupled from later product edits.
type Sale struct {
	ID             uint          `gorm:"primaryKey" json:"id"`
	ReceiptNo      string        `gorm:"uniqueIndex;size:60;not null" json:"receipt_no"`
	TableID        uint          `gorm:"index;not null" json:"table_id"`
	TableName      string        `gorm:"size:120;not null" json:"table_name"`
	Subtotal       float64       `gorm:"not null" json:"subtotal"`
	Total          float64       `gorm:"not null" json:"total"`
	PaymentMethod  PaymentMethod `gorm:"type:text;not null" json:"payment_method"`
	CashReceived   *float64      `json:"cash_received,omitempty"`
	Change         float64       `gorm:"not null;default:0" json:"change"`
	CashRegisterID uint          `gorm:"index;not null" json:"cash_register_id"`
	// IsPartial marks split-bill settlements that left the tab open.
	IsPartial bool `gorm:"not null;default:false" json:"is_partial"`

	Items []SaleItem `gorm:"foreignKey:SaleID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"items"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SaleItem struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	SaleID      uint    `gorm:"index;not null" json:"sale_id"`
	ProductID   uint    `gorm:"not null" json:"product_id"`
	ProductName string  `gorm:"size:180;not null" json:"product_name"`
	UnitPrice   float64 `gorm:"not null" json:"unit_price"`
	Quantity    int     `gorm:"not null" json:"quantity"`
	TotalPrice  float64 `gorm:"not null" json:"total_price"` // unit_price * quantity

	CreatedAt time.Time `json:"created_at"`
}
