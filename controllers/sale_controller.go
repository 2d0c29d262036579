package controllers

import (
	"net/http"
	"strconv"

	"github.com/DANIELXXOMG2/DinamicBarProyect-sub000/config"
	"github.com/DANIELXXOMG2/DinamicBarProyect-sub000/models"
	"github.com/DANIELXXOMG2/DinamicBarProyect-sub000/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func validPaymentMethod(s string) (models.PaymentMethod, bool) {
	pm := models.PaymentMethod(s)
	switch pm {
	case models.PaymentCash, models.PaymentCard, models.PaymentTransfer:
		return pm, true
	}
	return "", false
}

type CloseTabInput struct {
	PaymentMethod string   `json:"payment_method" binding:"required"`
	CashReceived  *float64 `json:"cash_received"`
}

// CloseTab settles the whole tab: sale created, stock decremented, tab
// deactivated, register totals updated, all in one transaction.
func CloseTab(c *gin.Context) {
	tableID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid table id"})
		return
	}

	var in CloseTabInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid payload", "error": err.Error()})
		return
	}
	pm, ok := validPaymentMethod(in.PaymentMethod)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid payment method"})
		return
	}

	var sale *models.Sale
	txErr := config.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		sale, err = settleTabCore(tx, uint(tableID), nil, pm, in.CashReceived)
		return err
	})
	if txErr != nil {
		if statusFor(txErr) == http.StatusInternalServerError {
			config.Log.Sugar().Errorw("settlement failed", "op", "close_tab", "table_id", tableID, "err", txErr)
		}
		utils.Error(c, statusFor(txErr), "failed to close tab", txErr)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "tab settled", "data": sale})
}

type SplitItemInput struct {
	ProductID     uint `json:"product_id" binding:"required"`
	SplitQuantity int  `json:"split_quantity" binding:"gte=0"`
}

type SplitTabInput struct {
	PaymentMethod string           `json:"payment_method" binding:"required"`
	CashReceived  *float64         `json:"cash_received"`
	Items         []SplitItemInput `json:"items" binding:"required,min=1"`
}

// SplitTab settles part of the tab through the same primitive as
// CloseTab: partial sale, stock decrement, register update, remaining
// quantities rewritten. Split quantities are validated server-side.
func SplitTab(c *gin.Context) {
	tableID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid table id"})
		return
	}

	var in SplitTabInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid payload", "error": err.Error()})
		return
	}
	pm, ok := validPaymentMethod(in.PaymentMethod)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid payment method"})
		return
	}

	paid := make([]paidLine, 0, len(in.Items))
	for _, it := range in.Items {
		paid = append(paid, paidLine{ProductID: it.ProductID, Quantity: it.SplitQuantity})
	}

	var sale *models.Sale
	txErr := config.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		sale, err = settleTabCore(tx, uint(tableID), paid, pm, in.CashReceived)
		return err
	})
	if txErr != nil {
		if statusFor(txErr) == http.StatusInternalServerError {
			config.Log.Sugar().Errorw("split settlement failed", "op", "split_tab", "table_id", tableID, "err", txErr)
		}
		utils.Error(c, statusFor(txErr), "failed to split tab", txErr)
		return
	}

	var table models.Table
	config.DB.Preload("Items.Product").First(&table, tableID)
	c.JSON(http.StatusCreated, gin.H{
		"message": "partial payment settled",
		"data":    gin.H{"sale": sale, "table": table},
	})
}

func ListSales(c *gin.Context) {
	from, to, err := parsePeriod(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid period", "error": err.Error()})
		return
	}

	q := config.DB.Preload("Items").Order("id DESC")
	if !from.IsZero() {
		q = q.Where("created_at >= ?", from)
	}
	if !to.IsZero() {
		q = q.Where("created_at < ?", to)
	}

	var sales []models.Sale
	if err := q.Find(&sales).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to list sales", "error": err.Error()})
		return
	}
	utils.Success(c, "sales", sales)
}

func SaleDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid id"})
		return
	}

	var sale models.Sale
	if err := config.DB.Preload("Items").First(&sale, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "sale not found"})
		return
	}
	utils.Success(c, "sale", sale)
}

// cancelSaleCore reverses a full settlement: stock restored, register
// totals rolled back, tab reactivated, sale removed. Only full sales
// against the still-open register can be cancelled.
func cancelSaleCore(tx *gorm.DB, saleID uint) error {
	var sale models.Sale
	if err := lockForUpdate(tx).Preload("Items").First(&sale, saleID).Error; err != nil {
		return err
	}
	if sale.IsPartial {
		return ErrPartialSale
	}

	reg, err := openRegisterForUpdate(tx)
	if err != nil {
		return err
	}
	if reg.ID != sale.CashRegisterID {
		return ErrNoOpenRegister
	}

	for _, it := range sale.Items {
		if err := tx.Model(&models.Product{}).Where("id = ?", it.ProductID).
			UpdateColumn("stock", gorm.Expr("stock + ?", it.Quantity)).Error; err != nil {
			return err
		}
	}

	if err := applyRegisterSale(tx, reg.ID, sale.PaymentMethod, -sale.Total); err != nil {
		return err
	}

	if err := tx.Model(&models.Table{}).Where("id = ?", sale.TableID).
		Update("is_active", true).Error; err != nil {
		return err
	}

	if err := tx.Where("sale_id = ?", sale.ID).Delete(&models.SaleItem{}).Error; err != nil {
		return err
	}
	return tx.Delete(&sale).Error
}

func CancelSale(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid id"})
		return
	}

	txErr := config.DB.Transaction(func(tx *gorm.DB) error {
		return cancelSaleCore(tx, uint(id))
	})
	if txErr != nil {
		if statusFor(txErr) == http.StatusInternalServerError {
			config.Log.Sugar().Errorw("cancel sale failed", "op", "cancel_sale", "sale_id", id, "err", txErr)
		}
		utils.Error(c, statusFor(txErr), "failed to cancel sale", txErr)
		return
	}
	utils.Success(c, "sale cancelled", nil)
}
