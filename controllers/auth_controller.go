package controllers

import (
	"net/http"
	"time"

	"github.com/DANIELXXOMG2/DinamicBarProyect-sub000/config"
	"github.com/DANIELXXOMG2/DinamicBarProyect-sub000/models"
	"github.com/DANIELXXOMG2/DinamicBarProyect-sub000/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func Login(c *gin.Context) {
	var in LoginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid payload", "error": err.Error()})
		return
	}

	var user models.User
	if err := config.DB.Where("username = ? AND is_active = true", in.Username).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid credentials"})
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid credentials"})
		return
	}

	now := time.Now()
	config.DB.Model(&user).Update("last_login_at", &now)

	token, err := utils.GenerateToken(user.ID, user.Username, string(user.Role), 24*time.Hour)
	if err != nil {
		config.Log.Sugar().Errorw("token generation failed", "op", "login", "user_id", user.ID, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "login failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "login ok",
		"token":   token,
		"user": gin.H{
			"id":        user.ID,
			"username":  user.Username,
			"full_name": user.FullName,
			"role":      user.Role,
		},
	})
}

func Profile(c *gin.Context) {
	uid, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
		return
	}

	var user models.User
	if err := config.DB.First(&user, uid).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "user not found"})
		return
	}
	utils.Success(c, "profile", user)
}

type ChangePasswordInput struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=6"`
}

func ChangePassword(c *gin.Context) {
	uid, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
		return
	}

	var in ChangePasswordInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid payload", "error": err.Error()})
		return
	}

	var user models.User
	if err := config.DB.First(&user, uid).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "user not found"})
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.CurrentPassword)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "current password is wrong"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to hash password"})
		return
	}

	if err := config.DB.Model(&user).Update("password_hash", string(hash)).Error; err != nil {
		config.Log.Sugar().Errorw("password update failed", "op", "change_password", "user_id", uid, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to update password"})
		return
	}
	utils.Success(c, "password updated", nil)
}
