package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/DANIELXXOMG2/DinamicBarProyect-sub000/config"
	"github.com/DANIELXXOMG2/DinamicBarProyect-sub000/models"
	"github.com/DANIELXXOMG2/DinamicBarProyect-sub000/utils"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	// sqlite test driver
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

type OpenRegisterInput struct {
	OpeningAmount float64 `json:"opening_amount" binding:"gte=0"`
	Notes         string  `json:"notes"`
}

func openRegisterCore(tx *gorm.DB, openingAmount float64, openedBy, notes string) (*models.CashRegister, error) {
	var existing models.CashRegister
	err := lockForUpdate(tx).Where("is_open = ?", true).First(&existing).Error
	if err == nil {
		return nil, ErrRegisterAlreadyOpen
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	reg := models.CashRegister{
		OpeningAmount: openingAmount,
		TotalCash:     openingAmount, // drawer starts with the float
		IsOpen:        true,
		OpenedBy:      openedBy,
		Notes:         notes,
		OpenedAt:      time.Now(),
	}
	if err := tx.Create(&reg).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrRegisterAlreadyOpen
		}
		return nil, err
	}

	opening := models.CashTransaction{
		CashRegisterID: reg.ID,
		Type:           models.CashTxOpening,
		Amount:         openingAmount,
		Description:    "register opened",
	}
	if err := tx.Create(&opening).Error; err != nil {
		return nil, err
	}
	return &reg, nil
}

func OpenRegister(c *gin.Context) {
	var in OpenRegisterInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid payload", "error": err.Error()})
		return
	}

	var reg *models.CashRegister
	txErr := config.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		reg, err = openRegisterCore(tx, in.OpeningAmount, currentUsername(c), in.Notes)
		return err
	})
	if txErr != nil {
		if statusFor(txErr) == http.StatusInternalServerError {
			config.Log.Sugar().Errorw("register open failed", "op", "open_register", "err", txErr)
		}
		utils.Error(c, statusFor(txErr), "failed to open register", txErr)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "register opened", "data": reg})
}

type CloseRegisterInput struct {
	ClosingAmount float64 `json:"closing_amount" binding:"gte=0"`
	Notes         string  `json:"notes"`
}

type closeRegisterResult struct {
	Register     models.CashRegister `json:"register"`
	ExpectedCash float64             `json:"expected_cash"`
	Difference   float64             `json:"difference"` // counted minus expected; negative = short
}

func closeRegisterCore(tx *gorm.DB, closingAmount float64, closedBy, notes string) (*closeRegisterResult, error) {
	reg, err := openRegisterForUpdate(tx)
	if err != nil {
		return nil, err
	}

	// TotalCash already carries opening + cash sales + income - expense
	expected := reg.TotalCash
	diff := closingAmount - expected
	now := time.Now()

	updates := map[string]interface{}{
		"is_open":        false,
		"closing_amount": closingAmount,
		"closed_by":      closedBy,
		"closed_at":      &now,
	}
	if notes != "" {
		updates["notes"] = notes
	}
	if err := tx.Model(reg).Updates(updates).Error; err != nil {
		return nil, err
	}

	closing := models.CashTransaction{
		CashRegisterID: reg.ID,
		Type:           models.CashTxClosing,
		Amount:         closingAmount,
		Description:    "register closed",
	}
	if err := tx.Create(&closing).Error; err != nil {
		return nil, err
	}

	var out models.CashRegister
	if err := tx.First(&out, reg.ID).Error; err != nil {
		return nil, err
	}
	return &closeRegisterResult{Register: out, ExpectedCash: expected, Difference: diff}, nil
}

func CloseRegister(c *gin.Context) {
	var in CloseRegisterInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid payload", "error": err.Error()})
		return
	}

	var result *closeRegisterResult
	txErr := config.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		result, err = closeRegisterCore(tx, in.ClosingAmount, currentUsername(c), in.Notes)
		return err
	})
	if txErr != nil {
		if statusFor(txErr) == http.StatusInternalServerError {
			config.Log.Sugar().Errorw("register close failed", "op", "close_register", "err", txErr)
		}
		utils.Error(c, statusFor(txErr), "failed to close register", txErr)
		return
	}
	utils.Success(c, "register closed", result)
}

func CurrentRegister(c *gin.Context) {
	var reg models.CashRegister
	err := config.DB.Preload("Transactions").Where("is_open = ?", true).First(&reg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "no register open"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to fetch register", "error": err.Error()})
		return
	}
	utils.Success(c, "register", reg)
}

type RegisterTxInput struct {
	Type        string  `json:"type" binding:"required"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Description string  `json:"description" binding:"required"`
}

func addRegisterTransactionCore(tx *gorm.DB, txType models.CashTxType, amount float64, description string) (*models.CashTransaction, error) {
	reg, err := openRegisterForUpdate(tx)
	if err != nil {
		return nil, err
	}

	// only drawer movements touch total_cash
	delta := amount
	if txType == models.CashTxExpense {
		delta = -amount
	}
	if err := tx.Model(reg).
		UpdateColumn("total_cash", gorm.Expr("total_cash + ?", delta)).Error; err != nil {
		return nil, err
	}

	entry := models.CashTransaction{
		CashRegisterID: reg.ID,
		Type:           txType,
		Amount:         amount,
		Description:    description,
	}
	if err := tx.Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func AddRegisterTransaction(c *gin.Context) {
	var in RegisterTxInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid payload", "error": err.Error()})
		return
	}

	txType := models.CashTxType(in.Type)
	if txType != models.CashTxIncome && txType != models.CashTxExpense {
		c.JSON(http.StatusBadRequest, gin.H{"message": "type must be INCOME or EXPENSE"})
		return
	}

	var entry *models.CashTransaction
	txErr := config.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		entry, err = addRegisterTransactionCore(tx, txType, in.Amount, in.Description)
		return err
	})
	if txErr != nil {
		if statusFor(txErr) == http.StatusInternalServerError {
			config.Log.Sugar().Errorw("register transaction failed", "op", "add_register_tx", "err", txErr)
		}
		utils.Error(c, statusFor(txErr), "failed to add transaction", txErr)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "transaction recorded", "data": entry})
}

func ListRegisterTransactions(c *gin.Context) {
	reg, err := func() (*models.CashRegister, error) {
		var r models.CashRegister
		if id := c.Query("register_id"); id != "" {
			return &r, config.DB.First(&r, id).Error
		}
		return &r, config.DB.Where("is_open = ?", true).First(&r).Error
	}()
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "register not found"})
		return
	}

	var rows []models.CashTransaction
	if err := config.DB.Where("cash_register_id = ?", reg.ID).
		Order("id ASC").Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to list transactions", "error": err.Error()})
		return
	}
	utils.Success(c, "transactions", rows)
}
