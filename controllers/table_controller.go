package controllers

import (
	"net/http"
	"strconv"

	"github.com/DANIELXXOMG2/DinamicBarProyect-sub000/config"
	"github.com/DANIELXXOMG2/DinamicBarProyect-sub000/models"
	"github.com/DANIELXXOMG2/DinamicBarProyect-sub000/utils"

	"github.com/gin-gonic/gin"
)

type TableInput struct {
	Name    string `json:"name" binding:"required"`
	GroupID *uint  `json:"group_id"`
}

func CreateTable(c *gin.Context) {
	var in TableInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid payload", "error": err.Error()})
		return
	}

	if in.GroupID != nil {
		var cnt int64
		if err := config.DB.Model(&models.TableGroup{}).Where("id = ?", *in.GroupID).Count(&cnt).Error; err != nil || cnt == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "table group not found"})
			return
		}
	}

	// tabs start empty and active
	table := models.Table{Name: in.Name, GroupID: in.GroupID, IsActive: true}
	if err := config.DB.Create(&table).Error; err != nil {
		config.Log.Sugar().Errorw("table create failed", "op", "create_table", "name", in.Name, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to create table", "error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "table created", "data": table})
}

func GetAllTables(c *gin.Context) {
	q := config.DB.Preload("Items.Product").Preload("Group")
	if c.Query("active") == "true" {
		q = q.Where("is_active = ?", true)
	}

	var tables []models.Table
	if err := q.Order("id ASC").Find(&tables).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to list tables", "error": err.Error()})
		return
	}
	utils.Success(c, "tables", tables)
}

func GetTableByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid id"})
		return
	}

	var table models.Table
	if err := config.DB.Preload("Items.Product").Preload("Group").First(&table, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "table not found"})
		return
	}
	utils.Success(c, "table", table)
}

type TableUpdateInput struct {
	Name    *string `json:"name,omitempty"`
	GroupID *uint   `json:"group_id,omitempty"`
}

func UpdateTable(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid id"})
		return
	}

	var table models.Table
	if err := config.DB.First(&table, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "table not found"})
		return
	}

	var in TableUpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid payload", "error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if in.Name != nil {
		updates["name"] = *in.Name
	}
	if in.GroupID != nil {
		if *in.GroupID == 0 {
			updates["group_id"] = nil
		} else {
			var cnt int64
			if err := config.DB.Model(&models.TableGroup{}).Where("id = ?", *in.GroupID).Count(&cnt).Error; err != nil || cnt == 0 {
				c.JSON(http.StatusBadRequest, gin.H{"message": "table group not found"})
				return
			}
			updates["group_id"] = *in.GroupID
		}
	}

	if len(updates) > 0 {
		if err := config.DB.Model(&table).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to update table", "error": err.Error()})
			return
		}
	}
	utils.Success(c, "table updated", table)
}

// DeleteTable is the explicit close of an empty tab. Tabs with settled
// sales stay in history via the sale's denormalized copy.
func DeleteTable(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid id"})
		return
	}

	var table models.Table
	if err := config.DB.Preload("Items").First(&table, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "table not found"})
		return
	}

	if len(table.Items) > 0 {
		c.JSON(http.StatusConflict, gin.H{"message": "table still has items"})
		return
	}

	if err := config.DB.Model(&table).Update("is_active", false).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to close table", "error": err.Error()})
		return
	}
	utils.Success(c, "table closed", nil)
}

// ---- table groups ----

type TableGroupInput struct {
	Name string `json:"name" binding:"required"`
}

func CreateTableGroup(c *gin.Context) {
	var in TableGroupInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid payload", "error": err.Error()})
		return
	}

	group := models.TableGroup{Name: in.Name}
	if err := config.DB.Create(&group).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to create group", "error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "group created", "data": group})
}

func GetAllTableGroups(c *gin.Context) {
	var groups []models.TableGroup
	if err := config.DB.Order("name ASC").Find(&groups).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to list groups", "error": err.Error()})
		return
	}
	utils.Success(c, "groups", groups)
}
