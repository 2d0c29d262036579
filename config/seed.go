package config

import (
	"os"

	"github.com/DANIELXXOMG2/DinamicBarProyect-sub000/models"

	"golang.org/x/crypto/bcrypt"
)

// SeedDefaults creates the store settings row and a first admin account
// when the database is empty. The admin password comes from the
// environment; without it no account is created.
func SeedDefaults() {
	var cnt int64

	DB.Model(&models.Store{}).Count(&cnt)
	if cnt == 0 {
		DB.Create(&models.Store{Name: "DinamicBar"})
	}

	DB.Model(&models.User{}).Count(&cnt)
	if cnt > 0 {
		return
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		Log.Warn("no users exist and ADMIN_PASSWORD is unset; skipping admin seed")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		Log.Sugar().Errorf("failed to hash admin password: %v", err)
		return
	}

	DB.Create(&models.User{
		Username:     "admin",
		FullName:     "Administrator",
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
		IsActive:     true,
	})
}
