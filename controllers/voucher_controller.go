package controllers

import (
	"net/http"

	"github.com/DANIELXXOMG2/DinamicBarProyect-sub000/config"
	"github.com/DANIELXXOMG2/DinamicBarProyect-sub000/models"
	"github.com/DANIELXXOMG2/DinamicBarProyect-sub000/utils"

	"github.com/gin-gonic/gin"
)

type VoucherInput struct {
	Type        string  `json:"type" binding:"required"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Description string  `json:"description" binding:"required"`
	Category    string  `json:"category"`
}

func CreateVoucher(c *gin.Context) {
	var in VoucherInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid payload", "error": err.Error()})
		return
	}

	vtype := models.VoucherType(in.Type)
	if vtype != models.VoucherIncome && vtype != models.VoucherExpense {
		c.JSON(http.StatusBadRequest, gin.H{"message": "type must be INCOME or EXPENSE"})
		return
	}

	v := models.Voucher{
		Type:        vtype,
		Amount:      in.Amount,
		Description: in.Description,
		Category:    in.Category,
		CreatedBy:   currentUsername(c),
	}
	if err := config.DB.Create(&v).Error; err != nil {
		config.Log.Sugar().Errorw("voucher create failed", "op", "create_voucher", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to create voucher", "error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "voucher recorded", "data": v})
}

func ListVouchers(c *gin.Context) {
	q := config.DB.Order("id DESC")
	if t := c.Query("type"); t != "" {
		q = q.Where("type = ?", t)
	}

	var rows []models.Voucher
	if err := q.Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to list vouchers", "error": err.Error()})
		return
	}
	utils.Success(c, "vouchers", rows)
}
