package models

import "time"

// TableGroup lets the floor plan cluster tables (barra, terraza, salón...).
type TableGroup struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:120;uniqueIndex;not null" json:"name"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Table is an open tab: one active order with its line items and derived
// totals. Deactivated exactly once, at settlement or explicit close.
type Table struct {
	ID      uint        `gorm:"primaryKey" json:"id"`
	Name    string      `gorm:"size:120;not null" json:"name"`
	GroupID *uint       `gorm:"index" json:"group_id,omitempty"`
	Group   *TableGroup `gorm:"foreignKey:GroupID" json:"group,omitempty"`

	// derived: recomputed after every item mutation
	Subtotal float64 `gorm:"not null;default:0" json:"subtotal"`
	Total    float64 `gorm:"not null;default:0" json:"total"`

	IsActive bool      `gorm:"not null;default:true" json:"is_active"`
	Items    []TabItem `gorm:"foreignKey:TableID;constraint:OnDelete:CASCADE" json:"items"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TabItem is one line of an open tab, unique per (table, product): adding
// the same product again merges into the existing row.
type TabItem struct {
	ID        uint     `gorm:"primaryKey" json:"id"`
	TableID   uint     `gorm:"uniqueIndex:idx_tab_items_table_product;not null" json:"table_id"`
	ProductID uint     `gorm:"uniqueIndex:idx_tab_items_table_product;not null" json:"product_id"`
	Product   *Product `json:"product,omitempty"`
	Quantity  int      `gorm:"not null" json:"quantity"`
	Price     float64  `gorm:"not null" json:"price"` // unit price captured at add time

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
