package controllers

import (
	"errors"
	"testing"

	"github.com/DANIELXXOMG2/DinamicBarProyect-sub000/models"

	"gorm.io/gorm"
)

func TestSecondOpenConflicts(t *testing.T) {
	db := setupTestDB(t)
	first := openTestRegister(t, db, 100)

	err := db.Transaction(func(tx *gorm.DB) error {
		_, err := openRegisterCore(tx, 200, "tester", "")
		return err
	})
	if !errors.Is(err, ErrRegisterAlreadyOpen) {
		t.Fatalf("expected ErrRegisterAlreadyOpen, got %v", err)
	}

	// original untouched
	r := reloadRegister(t, db, first.ID)
	if r.OpeningAmount != 100 || !r.IsOpen {
		t.Fatalf("original register changed: %+v", r)
	}
	var cnt int64
	db.Model(&models.CashRegister{}).Where("is_open = ?", true).Count(&cnt)
	if cnt != 1 {
		t.Fatalf("expected exactly one open register, got %d", cnt)
	}
}

func TestOpenRecordsOpeningTransaction(t *testing.T) {
	db := setupTestDB(t)
	reg := openTestRegister(t, db, 75)

	var rows []models.CashTransaction
	db.Where("cash_register_id = ?", reg.ID).Find(&rows)
	if len(rows) != 1 || rows[0].Type != models.CashTxOpening || rows[0].Amount != 75 {
		t.Fatalf("unexpected opening ledger: %+v", rows)
	}
	if reg.TotalCash != 75 {
		t.Fatalf("expected drawer to start at 75, got %v", reg.TotalCash)
	}
}

func TestIncomeExpenseAdjustDrawer(t *testing.T) {
	db := setupTestDB(t)
	reg := openTestRegister(t, db, 100)

	if err := db.Transaction(func(tx *gorm.DB) error {
		_, err := addRegisterTransactionCore(tx, models.CashTxIncome, 50, "tip jar")
		return err
	}); err != nil {
		t.Fatalf("income: %v", err)
	}
	if err := db.Transaction(func(tx *gorm.DB) error {
		_, err := addRegisterTransactionCore(tx, models.CashTxExpense, 20, "ice delivery")
		return err
	}); err != nil {
		t.Fatalf("expense: %v", err)
	}

	r := reloadRegister(t, db, reg.ID)
	if r.TotalCash != 130 {
		t.Fatalf("expected drawer 130, got %v", r.TotalCash)
	}
	// income/expense never touch sales counters
	if r.TotalSales != 0 || r.TotalCard != 0 {
		t.Fatalf("expected sales counters untouched, got %+v", r)
	}
}

func TestTransactionWithoutRegister(t *testing.T) {
	db := setupTestDB(t)

	err := db.Transaction(func(tx *gorm.DB) error {
		_, err := addRegisterTransactionCore(tx, models.CashTxIncome, 10, "orphan")
		return err
	})
	if !errors.Is(err, ErrNoOpenRegister) {
		t.Fatalf("expected ErrNoOpenRegister, got %v", err)
	}
}

func TestCloseComputesDifference(t *testing.T) {
	db := setupTestDB(t)
	reg := openTestRegister(t, db, 100)
	if err := db.Transaction(func(tx *gorm.DB) error {
		_, err := addRegisterTransactionCore(tx, models.CashTxIncome, 50, "tip jar")
		return err
	}); err != nil {
		t.Fatalf("income: %v", err)
	}
	if err := db.Transaction(func(tx *gorm.DB) error {
		_, err := addRegisterTransactionCore(tx, models.CashTxExpense, 20, "ice")
		return err
	}); err != nil {
		t.Fatalf("expense: %v", err)
	}

	var result *closeRegisterResult
	if err := db.Transaction(func(tx *gorm.DB) error {
		var err error
		result, err = closeRegisterCore(tx, 125, "tester", "")
		return err
	}); err != nil {
		t.Fatalf("close: %v", err)
	}

	if result.ExpectedCash != 130 {
		t.Fatalf("expected expectedCash 130, got %v", result.ExpectedCash)
	}
	if result.Difference != -5 {
		t.Fatalf("expected shortage of 5, got %v", result.Difference)
	}

	r := reloadRegister(t, db, reg.ID)
	if r.IsOpen {
		t.Fatal("expected register closed")
	}
	if r.ClosingAmount == nil || *r.ClosingAmount != 125 {
		t.Fatalf("expected closing amount 125, got %v", r.ClosingAmount)
	}
	if r.ClosedAt == nil {
		t.Fatal("expected closedAt set")
	}

	var rows []models.CashTransaction
	db.Where("cash_register_id = ? AND type = ?", reg.ID, models.CashTxClosing).Find(&rows)
	if len(rows) != 1 || rows[0].Amount != 125 {
		t.Fatalf("unexpected closing ledger: %+v", rows)
	}
}

func TestCloseWithoutRegister(t *testing.T) {
	db := setupTestDB(t)

	err := db.Transaction(func(tx *gorm.DB) error {
		_, err := closeRegisterCore(tx, 0, "tester", "")
		return err
	})
	if !errors.Is(err, ErrNoOpenRegister) {
		t.Fatalf("expected ErrNoOpenRegister, got %v", err)
	}
}

func TestReopenAfterClose(t *testing.T) {
	db := setupTestDB(t)
	openTestRegister(t, db, 100)
	if err := db.Transaction(func(tx *gorm.DB) error {
		_, err := closeRegisterCore(tx, 100, "tester", "")
		return err
	}); err != nil {
		t.Fatalf("close: %v", err)
	}

	second := openTestRegister(t, db, 40)
	if second.OpeningAmount != 40 || !second.IsOpen {
		t.Fatalf("unexpected second session: %+v", second)
	}
}
