package models

import "time"

type Category struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:120;uniqueIndex;not null" json:"name"`
	Icon     string `gorm:"size:80" json:"icon,omitempty"`
	Shortcut string `gorm:"size:20" json:"shortcut,omitempty"`

	// delete is restricted while products reference the category
	Products []Product `gorm:"constraint:OnDelete:RESTRICT" json:"products,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
