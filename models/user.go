package models

import "time"

type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleCashier Role = "CASHIER"
)

type User struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Username     string     `gorm:"uniqueIndex;size:120;not null" json:"username"`
	FullName     string     `gorm:"size:180" json:"full_name"`
	PasswordHash string     `gorm:"size:255;not null" json:"-"` // never sent to clients
	Role         Role       `gorm:"type:text;not null;default:'CASHIER'" json:"role"`
	IsActive     bool       `gorm:"not null;default:true" json:"is_active"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
