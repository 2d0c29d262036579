package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/DANIELXXOMG2/DinamicBarProyect-sub000/config"
	"github.com/DANIELXXOMG2/DinamicBarProyect-sub000/models"
	"github.com/DANIELXXOMG2/DinamicBarProyect-sub000/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

func AdminListUsers(c *gin.Context) {
	var users []models.User
	if err := config.DB.Order("id ASC").Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to list users", "error": err.Error()})
		return
	}
	utils.Success(c, "users", users)
}

type AdminCreateUserInput struct {
	Username string `json:"username" binding:"required"`
	FullName string `json:"full_name"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required"`
}

func AdminCreateUser(c *gin.Context) {
	var in AdminCreateUserInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid payload", "error": err.Error()})
		return
	}

	role := models.Role(strings.ToUpper(in.Role))
	if role != models.RoleAdmin && role != models.RoleCashier {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid role"})
		return
	}

	var cnt int64
	config.DB.Model(&models.User{}).Where("username = ?", in.Username).Count(&cnt)
	if cnt > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "username already taken"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to hash password"})
		return
	}

	user := models.User{
		Username:     in.Username,
		FullName:     in.FullName,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		config.Log.Sugar().Errorw("user create failed", "op", "admin_create_user", "username", in.Username, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to create user", "error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "user created", "data": user})
}

type AdminUpdateUserInput struct {
	FullName *string `json:"full_name,omitempty"`
	Role     *string `json:"role,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
	Password *string `json:"password,omitempty"`
}

func AdminUpdateUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid id"})
		return
	}

	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "user not found"})
		return
	}

	var in AdminUpdateUserInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid payload", "error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if in.FullName != nil {
		updates["full_name"] = *in.FullName
	}
	if in.Role != nil {
		role := models.Role(strings.ToUpper(*in.Role))
		if role != models.RoleAdmin && role != models.RoleCashier {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid role"})
			return
		}
		updates["role"] = role
	}
	if in.IsActive != nil {
		updates["is_active"] = *in.IsActive
	}
	if in.Password != nil {
		if len(*in.Password) < 6 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "password too short"})
			return
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to hash password"})
			return
		}
		updates["password_hash"] = string(hash)
	}

	if len(updates) == 0 {
		utils.Success(c, "nothing to update", user)
		return
	}

	if err := config.DB.Model(&user).Updates(updates).Error; err != nil {
		config.Log.Sugar().Errorw("user update failed", "op", "admin_update_user", "user_id", id, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to update user", "error": err.Error()})
		return
	}
	utils.Success(c, "user updated", user)
}
