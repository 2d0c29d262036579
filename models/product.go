package models

import "time"

type ProductType string

const (
	ProductAlcoholic    ProductType = "ALCOHOLIC"
	ProductNonAlcoholic ProductType = "NON_ALCOHOLIC"
)

type Product struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	Name          string      `gorm:"size:180;not null" json:"name"`
	PurchasePrice float64     `gorm:"not null;default:0" json:"purchase_price"`
	SalePrice     float64     `gorm:"not null;default:0" json:"sale_price"`
	Stock         int         `gorm:"not null;default:0" json:"stock"` // never below zero
	MinStock      int         `gorm:"not null;default:0" json:"min_stock"`
	Type          ProductType `gorm:"type:text;not null;default:'NON_ALCOHOLIC'" json:"type"`
	ImageURL      string      `gorm:"size:255" json:"image_url,omitempty"`
	CategoryID    uint        `gorm:"index;not null" json:"category_id"`
	Category      *Category   `json:"category,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
