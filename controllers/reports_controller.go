package controllers

import (
	"errors"
	"net/http"
	"sort"
	"time"

	"github.com/DANIELXXOMG2/DinamicBarProyect-sub000/config"
	"github.com/DANIELXXOMG2/DinamicBarProyect-sub000/models"
	"github.com/DANIELXXOMG2/DinamicBarProyect-sub000/utils"

	"github.com/gin-gonic/gin"
)

// parsePeriod resolves ?period=today or ?startDate=&endDate= (YYYY-MM-DD)
// into a half-open [from, to) range in local time. Zero times mean
// unbounded.
func parsePeriod(c *gin.Context) (time.Time, time.Time, error) {
	if c.Query("period") == "today" {
		now := time.Now()
		from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		return from, from.AddDate(0, 0, 1), nil
	}

	var from, to time.Time
	if s := c.Query("startDate"); s != "" {
		t, err := time.ParseInLocation("2006-01-02", s, time.Local)
		if err != nil {
			return from, to, errors.New("startDate must be YYYY-MM-DD")
		}
		from = t
	}
	if s := c.Query("endDate"); s != "" {
		t, err := time.ParseInLocation("2006-01-02", s, time.Local)
		if err != nil {
			return from, to, errors.New("endDate must be YYYY-MM-DD")
		}
		to = t.AddDate(0, 0, 1) // inclusive end date
	}
	if !from.IsZero() && !to.IsZero() && to.Before(from) {
		return from, to, errors.New("endDate is before startDate")
	}
	return from, to, nil
}

type PaymentMethodSummary struct {
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

type TopProductRow struct {
	ProductID   uint    `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Revenue     float64 `json:"revenue"`
}

type HourlyBucket struct {
	Hour    int     `json:"hour"`
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

type SalesReport struct {
	TotalCount      int                             `json:"total_count"`
	TotalRevenue    float64                         `json:"total_revenue"`
	ByPaymentMethod map[string]PaymentMethodSummary `json:"by_payment_method"`
	TopProducts     []TopProductRow                 `json:"top_products"`
	Hourly          [24]HourlyBucket                `json:"hourly"`
}

// buildSalesReport aggregates settled sales: overall totals, per-payment
// breakdown, top 10 products by quantity (ties keep first-seen order),
// and a 24-bucket histogram over the sale's local hour.
func buildSalesReport(sales []models.Sale) SalesReport {
	report := SalesReport{
		ByPaymentMethod: make(map[string]PaymentMethodSummary),
	}
	for h := range report.Hourly {
		report.Hourly[h].Hour = h
	}

	productIndex := make(map[uint]int)
	var products []TopProductRow

	for _, s := range sales {
		report.TotalCount++
		report.TotalRevenue += s.Total

		pm := report.ByPaymentMethod[string(s.PaymentMethod)]
		pm.Count++
		pm.Revenue += s.Total
		report.ByPaymentMethod[string(s.PaymentMethod)] = pm

		hour := s.CreatedAt.Local().Hour()
		report.Hourly[hour].Count++
		report.Hourly[hour].Revenue += s.Total

		for _, it := range s.Items {
			idx, ok := productIndex[it.ProductID]
			if !ok {
				idx = len(products)
				productIndex[it.ProductID] = idx
				products = append(products, TopProductRow{
					ProductID:   it.ProductID,
					ProductName: it.ProductName,
				})
			}
			products[idx].Quantity += it.Quantity
			products[idx].Revenue += it.TotalPrice
		}
	}

	sort.SliceStable(products, func(i, j int) bool {
		return products[i].Quantity > products[j].Quantity
	})
	if len(products) > 10 {
		products = products[:10]
	}
	report.TopProducts = products

	return report
}

func GetSalesReport(c *gin.Context) {
	from, to, err := parsePeriod(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid period", "error": err.Error()})
		return
	}

	q := config.DB.Preload("Items")
	if !from.IsZero() {
		q = q.Where("created_at >= ?", from)
	}
	if !to.IsZero() {
		q = q.Where("created_at < ?", to)
	}

	var sales []models.Sale
	if err := q.Find(&sales).Error; err != nil {
		config.Log.Sugar().Errorw("report query failed", "op", "sales_report", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to build report", "error": err.Error()})
		return
	}

	utils.Success(c, "sales report", buildSalesReport(sales))
}
