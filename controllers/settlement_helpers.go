package controllers

import (
	"errors"
	"time"

	"github.com/DANIELXXOMG2/DinamicBarProyect-sub000/models"
	"github.com/DANIELXXOMG2/DinamicBarProyect-sub000/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func lockForUpdate(tx *gorm.DB) *gorm.DB {
	// sqlite (test driver) has no FOR UPDATE; its single-writer model
	// serializes writers anyway
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

func openRegisterForUpdate(tx *gorm.DB) (*models.CashRegister, error) {
	var reg models.CashRegister
	err := lockForUpdate(tx).Where("is_open = ?", true).First(&reg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoOpenRegister
	}
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

// decrementStockClamped locks the product row and subtracts qty, never
// going below zero.
func decrementStockClamped(tx *gorm.DB, productID uint, qty int) error {
	var p models.Product
	if err := lockForUpdate(tx).First(&p, productID).Error; err != nil {
		return err
	}
	next := p.Stock - qty
	if next < 0 {
		next = 0
	}
	return tx.Model(&models.Product{}).Where("id = ?", p.ID).
		UpdateColumn("stock", next).Error
}

// recalcTableTotals rewrites subtotal/total from the live item rows.
// Every item mutation must end with this call, inside the same
// transaction as the mutation.
func recalcTableTotals(tx *gorm.DB, tableID uint) error {
	var subtotal float64
	if err := tx.Model(&models.TabItem{}).
		Where("table_id = ?", tableID).
		Select("COALESCE(SUM(price * quantity), 0)").
		Scan(&subtotal).Error; err != nil {
		return err
	}
	// no tax/discount layer: total mirrors subtotal
	return tx.Model(&models.Table{}).Where("id = ?", tableID).
		Updates(map[string]interface{}{"subtotal": subtotal, "total": subtotal}).Error
}

// paidLine selects how much of one tab item is being settled now.
type paidLine struct {
	ProductID uint
	Quantity  int
}

// settleTabCore is the single settlement primitive: full close when
// paid is nil, split payment otherwise. Runs entirely inside the
// caller's transaction; every write commits or none do.
//
// Register totals: totalSales always grows by the charged amount;
// totalCash or totalCard grows for CASH/CARD. TRANSFER updates neither
// counter, mirroring the drawer-only accounting of the register.
func settleTabCore(
	tx *gorm.DB,
	tableID uint,
	paid []paidLine,
	pm models.PaymentMethod,
	cashReceived *float64,
) (*models.Sale, error) {
	reg, err := openRegisterForUpdate(tx)
	if err != nil {
		return nil, err
	}

	var table models.Table
	if err := lockForUpdate(tx).Preload("Items").First(&table, tableID).Error; err != nil {
		return nil, err
	}
	if !table.IsActive {
		return nil, ErrTabClosed
	}
	if len(table.Items) == 0 {
		return nil, ErrEmptyTab
	}

	partial := paid != nil

	// resolve what is being charged now
	type chargedLine struct {
		item models.TabItem
		qty  int
	}
	var charged []chargedLine
	if !partial {
		for _, it := range table.Items {
			charged = append(charged, chargedLine{item: it, qty: it.Quantity})
		}
	} else {
		byProduct := make(map[uint]models.TabItem, len(table.Items))
		for _, it := range table.Items {
			byProduct[it.ProductID] = it
		}
		// aggregate per product first so repeated lines cannot settle
		// more units than the tab holds
		requested := make(map[uint]int, len(paid))
		var productOrder []uint
		for _, pl := range paid {
			if pl.Quantity <= 0 {
				continue
			}
			if _, seen := requested[pl.ProductID]; !seen {
				productOrder = append(productOrder, pl.ProductID)
			}
			requested[pl.ProductID] += pl.Quantity
		}
		for _, pid := range productOrder {
			it, ok := byProduct[pid]
			if !ok || requested[pid] > it.Quantity {
				return nil, ErrInvalidSplit
			}
			charged = append(charged, chargedLine{item: it, qty: requested[pid]})
		}
		if len(charged) == 0 {
			return nil, ErrNothingSelected
		}
	}

	var total float64
	for _, cl := range charged {
		total += cl.item.Price * float64(cl.qty)
	}
	if partial && total == 0 {
		return nil, ErrNothingSelected
	}

	change := 0.0
	if pm == models.PaymentCash {
		if cashReceived == nil || *cashReceived < total {
			return nil, ErrInsufficientCash
		}
		change = *cashReceived - total
	}

	now := time.Now()
	sale := models.Sale{
		ReceiptNo:      utils.GenReceiptNo(now),
		TableID:        table.ID,
		TableName:      table.Name,
		Subtotal:       total,
		Total:          total,
		PaymentMethod:  pm,
		CashReceived:   cashReceived,
		Change:         change,
		CashRegisterID: reg.ID,
		IsPartial:      partial,
	}
	for _, cl := range charged {
		name := ""
		var p models.Product
		if err := tx.First(&p, cl.item.ProductID).Error; err == nil {
			name = p.Name
		}
		sale.Items = append(sale.Items, models.SaleItem{
			ProductID:   cl.item.ProductID,
			ProductName: name,
			UnitPrice:   cl.item.Price,
			Quantity:    cl.qty,
			TotalPrice:  cl.item.Price * float64(cl.qty),
		})
	}
	if err := tx.Create(&sale).Error; err != nil {
		return nil, err
	}

	for _, cl := range charged {
		if err := decrementStockClamped(tx, cl.item.ProductID, cl.qty); err != nil {
			return nil, err
		}
	}

	if !partial {
		if err := tx.Model(&models.Table{}).Where("id = ?", table.ID).
			Update("is_active", false).Error; err != nil {
			return nil, err
		}
	} else {
		remaining := 0
		for _, cl := range charged {
			left := cl.item.Quantity - cl.qty
			if left == 0 {
				if err := tx.Delete(&models.TabItem{}, cl.item.ID).Error; err != nil {
					return nil, err
				}
			} else {
				if err := tx.Model(&models.TabItem{}).Where("id = ?", cl.item.ID).
					UpdateColumn("quantity", left).Error; err != nil {
					return nil, err
				}
			}
		}
		if err := recalcTableTotals(tx, table.ID); err != nil {
			return nil, err
		}
		if err := tx.Model(&models.TabItem{}).Where("table_id = ?", table.ID).
			Select("COALESCE(SUM(quantity), 0)").Scan(&remaining).Error; err != nil {
			return nil, err
		}
		if remaining == 0 {
			if err := tx.Model(&models.Table{}).Where("id = ?", table.ID).
				Update("is_active", false).Error; err != nil {
				return nil, err
			}
		}
	}

	if err := applyRegisterSale(tx, reg.ID, pm, total); err != nil {
		return nil, err
	}

	if err := tx.Preload("Items").First(&sale, sale.ID).Error; err != nil {
		return nil, err
	}
	return &sale, nil
}

// applyRegisterSale posts a settled amount onto the open register's
// running totals. delta may be negative (cancel-sale reversal).
func applyRegisterSale(tx *gorm.DB, registerID uint, pm models.PaymentMethod, delta float64) error {
	updates := map[string]interface{}{
		"total_sales": gorm.Expr("total_sales + ?", delta),
	}
	switch pm {
	case models.PaymentCash:
		updates["total_cash"] = gorm.Expr("total_cash + ?", delta)
	case models.PaymentCard:
		updates["total_card"] = gorm.Expr("total_card + ?", delta)
	case models.PaymentTransfer:
		// neither counter tracks transfers; flagged for product review
	}
	return tx.Model(&models.CashRegister{}).Where("id = ?", registerID).
		Updates(updates).Error
}
