package models

import "time"

type CashTxType string

const (
	CashTxOpening CashTxType = "OPENING"
	CashTxClosing CashTxType = "CLOSING"
	CashTxIncome  CashTxType = "INCOME"
	CashTxExpense CashTxType = "EXPENSE"
)

// CashRegister is one drawer session. At most one row has is_open=true at
// any time; a partial unique index backs up the in-transaction check.
type CashRegister struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	OpeningAmount float64 `gorm:"not null" json:"opening_amount"`
	TotalSales    float64 `gorm:"not null;default:0" json:"total_sales"`
	// TotalCash carries the running drawer balance: opening amount plus
	// cash sales plus income minus expense.
	TotalCash     float64  `gorm:"not null;default:0" json:"total_cash"`
	TotalCard     float64  `gorm:"not null;default:0" json:"total_card"`
	IsOpen        bool     `gorm:"not null;default:true" json:"is_open"`
	ClosingAmount *float64 `json:"closing_amount,omitempty"`
	OpenedBy      string   `gorm:"size:120" json:"opened_by,omitempty"`
	ClosedBy      string   `gorm:"size:120" json:"closed_by,omitempty"`
	Notes         string   `gorm:"size:255" json:"notes,omitempty"`

	Transactions []CashTransaction `gorm:"foreignKey:CashRegisterID" json:"transactions,omitempty"`

	OpenedAt time.Time  `gorm:"not null" json:"opened_at"`
	ClosedAt *time.Time `json:"closed_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CashTransaction is an append-only ledger entry tied to one register.
type CashTransaction struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	CashRegisterID uint       `gorm:"index;not null" json:"cash_register_id"`
	Type           CashTxType `gorm:"type:text;not null" json:"type"`
	Amount         float64    `gorm:"not null" json:"amount"`
	Description    string     `gorm:"size:255" json:"description"`

	CreatedAt time.Time `json:"created_at"`
}
