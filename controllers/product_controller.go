package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/DANIELXXOMG2/DinamicBarProyect-sub000/config"
	"github.com/DANIELXXOMG2/DinamicBarProyect-sub000/models"
	"github.com/DANIELXXOMG2/DinamicBarProyect-sub000/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ProductInput struct {
	Name          string  `json:"name" binding:"required"`
	PurchasePrice float64 `json:"purchase_price"`
	SalePrice     float64 `json:"sale_price" binding:"required,gt=0"`
	Stock         int     `json:"stock" binding:"gte=0"`
	MinStock      int     `json:"min_stock" binding:"gte=0"`
	Type          string  `json:"type"`
	ImageURL      string  `json:"image_url"`
	CategoryID    uint    `json:"category_id" binding:"required"`
}

func CreateProduct(c *gin.Context) {
	var in ProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid payload", "error": err.Error()})
		return
	}

	ptype := models.ProductType(in.Type)
	if ptype == "" {
		ptype = models.ProductNonAlcoholic
	}
	if ptype != models.ProductAlcoholic && ptype != models.ProductNonAlcoholic {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid product type"})
		return
	}

	var cnt int64
	if err := config.DB.Model(&models.Category{}).Where("id = ?", in.CategoryID).Count(&cnt).Error; err != nil || cnt == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "category not found"})
		return
	}

	p := models.Product{
		Name:          in.Name,
		PurchasePrice: in.PurchasePrice,
		SalePrice:     in.SalePrice,
		Stock:         in.Stock,
		MinStock:      in.MinStock,
		Type:          ptype,
		ImageURL:      in.ImageURL,
		CategoryID:    in.CategoryID,
	}
	if err := config.DB.Create(&p).Error; err != nil {
		config.Log.Sugar().Errorw("product create failed", "op", "create_product", "name", in.Name, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to create product", "error": err.Error()})
		return
	}

	config.DB.Preload("Category").First(&p, p.ID)
	c.JSON(http.StatusCreated, gin.H{"message": "product created", "data": p})
}

func GetAllProducts(c *gin.Context) {
	q := config.DB.Preload("Category")
	if cid := c.Query("category_id"); cid != "" {
		q = q.Where("category_id = ?", cid)
	}
	if c.Query("low_stock") == "true" {
		q = q.Where("stock < min_stock")
	}

	var products []models.Product
	if err := q.Order("name ASC").Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to list products", "error": err.Error()})
		return
	}
	utils.Success(c, "products", products)
}

func GetProductByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid id"})
		return
	}

	var p models.Product
	if err := config.DB.Preload("Category").First(&p, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "product not found"})
		return
	}
	utils.Success(c, "product", p)
}

func DeleteProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid id"})
		return
	}

	var p models.Product
	if err := config.DB.First(&p, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "product not found"})
		return
	}

	if err := config.DB.Delete(&p).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to delete product", "error": err.Error()})
		return
	}
	utils.Success(c, "product deleted", nil)
}

// ---- PATCH /products/:id ----
//
// One command variant per action instead of a string-keyed switch spread
// through the handler; parse and apply are separate so the switch over
// variants stays exhaustive.

type productCommand interface{ isProductCommand() }

type setStockCmd struct{ Amount int }
type increaseStockCmd struct{ Amount int }
type decreaseStockCmd struct{ Amount int }
type updateImageCmd struct{ URL string }
type removeImageCmd struct{}
type updateFieldsCmd struct {
	Name          *string
	PurchasePrice *float64
	SalePrice     *float64
	MinStock      *int
	Type          *string
	CategoryID    *uint
}

func (setStockCmd) isProductCommand()      {}
func (increaseStockCmd) isProductCommand() {}
func (decreaseStockCmd) isProductCommand() {}
func (updateImageCmd) isProductCommand()   {}
func (removeImageCmd) isProductCommand()   {}
func (updateFieldsCmd) isProductCommand()  {}

type ProductPatchInput struct {
	Action   string  `json:"action" binding:"required"`
	Amount   *int    `json:"amount,omitempty"`
	ImageURL *string `json:"image_url,omitempty"`

	Name          *string  `json:"name,omitempty"`
	PurchasePrice *float64 `json:"purchase_price,omitempty"`
	SalePrice     *float64 `json:"sale_price,omitempty"`
	MinStock      *int     `json:"min_stock,omitempty"`
	Type          *string  `json:"type,omitempty"`
	CategoryID    *uint    `json:"category_id,omitempty"`
}

func parseProductCommand(in ProductPatchInput) (productCommand, error) {
	switch in.Action {
	case "set":
		if in.Amount == nil || *in.Amount < 0 {
			return nil, errors.New("set requires a non-negative amount")
		}
		return setStockCmd{Amount: *in.Amount}, nil
	case "increase":
		if in.Amount == nil || *in.Amount <= 0 {
			return nil, errors.New("increase requires a positive amount")
		}
		return increaseStockCmd{Amount: *in.Amount}, nil
	case "decrease":
		if in.Amount == nil || *in.Amount <= 0 {
			return nil, errors.New("decrease requires a positive amount")
		}
		return decreaseStockCmd{Amount: *in.Amount}, nil
	case "updateImage":
		if in.ImageURL == nil || *in.ImageURL == "" {
			return nil, errors.New("updateImage requires image_url")
		}
		return updateImageCmd{URL: *in.ImageURL}, nil
	case "removeImage":
		return removeImageCmd{}, nil
	case "update":
		return updateFieldsCmd{
			Name:          in.Name,
			PurchasePrice: in.PurchasePrice,
			SalePrice:     in.SalePrice,
			MinStock:      in.MinStock,
			Type:          in.Type,
			CategoryID:    in.CategoryID,
		}, nil
	default:
		return nil, fmt.Errorf("unknown action %q", in.Action)
	}
}

func applyProductCommand(tx *gorm.DB, productID uint, cmd productCommand) (*models.Product, error) {
	var p models.Product
	if err := lockForUpdate(tx).First(&p, productID).Error; err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	switch v := cmd.(type) {
	case setStockCmd:
		updates["stock"] = v.Amount
	case increaseStockCmd:
		updates["stock"] = p.Stock + v.Amount
	case decreaseStockCmd:
		next := p.Stock - v.Amount
		if next < 0 {
			next = 0
		}
		updates["stock"] = next
	case updateImageCmd:
		updates["image_url"] = v.URL
	case removeImageCmd:
		updates["image_url"] = ""
	case updateFieldsCmd:
		if v.Name != nil {
			updates["name"] = *v.Name
		}
		if v.PurchasePrice != nil {
			updates["purchase_price"] = *v.PurchasePrice
		}
		if v.SalePrice != nil {
			if *v.SalePrice <= 0 {
				return nil, errors.New("sale_price must be positive")
			}
			updates["sale_price"] = *v.SalePrice
		}
		if v.MinStock != nil {
			if *v.MinStock < 0 {
				return nil, errors.New("min_stock must be non-negative")
			}
			updates["min_stock"] = *v.MinStock
		}
		if v.Type != nil {
			t := models.ProductType(*v.Type)
			if t != models.ProductAlcoholic && t != models.ProductNonAlcoholic {
				return nil, errors.New("invalid product type")
			}
			updates["type"] = t
		}
		if v.CategoryID != nil {
			var cnt int64
			if err := tx.Model(&models.Category{}).Where("id = ?", *v.CategoryID).Count(&cnt).Error; err != nil || cnt == 0 {
				return nil, errors.New("category not found")
			}
			updates["category_id"] = *v.CategoryID
		}
	default:
		return nil, fmt.Errorf("unhandled command %T", cmd)
	}

	if len(updates) > 0 {
		if err := tx.Model(&p).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return &p, nil
}

func PatchProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid id"})
		return
	}

	var in ProductPatchInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid payload", "error": err.Error()})
		return
	}

	cmd, err := parseProductCommand(in)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid action", "error": err.Error()})
		return
	}

	var p *models.Product
	txErr := config.DB.Transaction(func(tx *gorm.DB) error {
		p, err = applyProductCommand(tx, uint(id), cmd)
		return err
	})
	if txErr != nil {
		if errors.Is(txErr, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "product not found"})
			return
		}
		config.Log.Sugar().Errorw("product patch failed", "op", "patch_product", "product_id", id, "err", txErr)
		c.JSON(http.StatusBadRequest, gin.H{"message": "failed to patch product", "error": txErr.Error()})
		return
	}

	config.DB.Preload("Category").First(p, p.ID)
	utils.Success(c, "product updated", p)
}
