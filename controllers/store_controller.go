package controllers

import (
	"net/http"

	"github.com/DANIELXXOMG2/DinamicBarProyect-sub000/config"
	"github.com/DANIELXXOMG2/DinamicBarProyect-sub000/models"
	"github.com/DANIELXXOMG2/DinamicBarProyect-sub000/utils"

	"github.com/gin-gonic/gin"
)

func GetStore(c *gin.Context) {
	var store models.Store
	if err := config.DB.First(&store).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "store settings not found"})
		return
	}
	utils.Success(c, "store", store)
}

type StoreInput struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	TaxID   string `json:"tax_id"`
	LogoURL string `json:"logo_url"`
}

func UpdateStore(c *gin.Context) {
	var store models.Store
	if err := config.DB.First(&store).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "store settings not found"})
		return
	}

	var in StoreInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid payload", "error": err.Error()})
		return
	}

	if err := config.DB.Model(&store).Updates(map[string]interface{}{
		"name": in.Name, "address": in.Address, "phone": in.Phone,
		"tax_id": in.TaxID, "logo_url": in.LogoURL,
	}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to update store", "error": err.Error()})
		return
	}
	utils.Success(c, "store updated", store)
}
