package models

import "time"

// Purchase is a supplier intake: creating one increases product stock in
// the same transaction.
type Purchase struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	SupplierName string  `gorm:"size:180;not null" json:"supplier_name"`
	InvoiceNo    string  `gorm:"size:60" json:"invoice_no,omitempty"`
	Total        float64 `gorm:"not null" json:"total"`
	CreatedBy    string  `gorm:"size:120" json:"created_by,omitempty"`

	Items []PurchaseItem `gorm:"foreignKey:PurchaseID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"items"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PurchaseItem struct {
	ID         uint     `gorm:"primaryKey" json:"id"`
	PurchaseID uint     `gorm:"index;not null" json:"purchase_id"`
	ProductID  uint     `gorm:"not null" json:"product_id"`
	Product    *Product `json:"product,omitempty"`
	Quantity   int      `gorm:"not null" json:"quantity"`
	UnitCost   float64  `gorm:"not null" json:"unit_cost"`
	LineTotal  float64  `gorm:"not null" json:"line_total"` // quantity * unit_cost

	CreatedAt time.Time `json:"created_at"`
}
