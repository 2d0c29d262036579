package models

import "time"

type VoucherType string

const (
	VoucherIncome  VoucherType = "INCOME"
	VoucherExpense VoucherType = "EXPENSE"
)

// Voucher is an append-only income/expense record, independent of the
// cash register ledger.
type Voucher struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	Type        VoucherType `gorm:"type:text;not null" json:"type"`
	Amount      float64     `gorm:"not null" json:"amount"`
	Description string      `gorm:"size:255;not null" json:"description"`
	Category    string      `gorm:"size:120" json:"category,omitempty"`
	CreatedBy   string      `gorm:"size:120" json:"created_by,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
