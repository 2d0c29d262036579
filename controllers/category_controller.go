package controllers

import (
	"net/http"
	"strconv"

	"github.com/DANIELXXOMG2/DinamicBarProyect-sub000/config"
	"github.com/DANIELXXOMG2/DinamicBarProyect-sub000/models"
	"github.com/DANIELXXOMG2/DinamicBarProyect-sub000/utils"

	"github.com/gin-gonic/gin"
)

type CategoryInput struct {
	Name     string `json:"name" binding:"required"`
	Icon     string `json:"icon"`
	Shortcut string `json:"shortcut"`
}

func CreateCategory(c *gin.Context) {
	var in CategoryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid payload", "error": err.Error()})
		return
	}

	var cnt int64
	config.DB.Model(&models.Category{}).Where("name = ?", in.Name).Count(&cnt)
	if cnt > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "category name already in use"})
		return
	}

	cat := models.Category{Name: in.Name, Icon: in.Icon, Shortcut: in.Shortcut}
	if err := config.DB.Create(&cat).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to create category", "error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "category created", "data": cat})
}

func GetAllCategories(c *gin.Context) {
	var cats []models.Category
	if err := config.DB.Order("name ASC").Find(&cats).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to list categories", "error": err.Error()})
		return
	}
	utils.Success(c, "categories", cats)
}

func GetCategoryByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid id"})
		return
	}

	var cat models.Category
	if err := config.DB.Preload("Products").First(&cat, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "category not found"})
		return
	}
	utils.Success(c, "category", cat)
}

func UpdateCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid id"})
		return
	}

	var cat models.Category
	if err := config.DB.First(&cat, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "category not found"})
		return
	}

	var in CategoryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid payload", "error": err.Error()})
		return
	}

	if in.Name != cat.Name {
		var cnt int64
		config.DB.Model(&models.Category{}).Where("name = ?", in.Name).Count(&cnt)
		if cnt > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "category name already in use"})
			return
		}
	}

	if err := config.DB.Model(&cat).Updates(map[string]interface{}{
		"name": in.Name, "icon": in.Icon, "shortcut": in.Shortcut,
	}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to update category", "error": err.Error()})
		return
	}
	utils.Success(c, "category updated", cat)
}

func DeleteCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid id"})
		return
	}

	var cat models.Category
	if err := config.DB.First(&cat, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "category not found"})
		return
	}

	// deletable only when no products reference it
	var cnt int64
	config.DB.Model(&models.Product{}).Where("category_id = ?", cat.ID).Count(&cnt)
	if cnt > 0 {
		c.JSON(http.StatusConflict, gin.H{"message": "category still has products"})
		return
	}

	if err := config.DB.Delete(&cat).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to delete category", "error": err.Error()})
		return
	}
	utils.Success(c, "category deleted", nil)
}
