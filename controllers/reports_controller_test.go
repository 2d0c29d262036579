package controllers

import (
	"testing"
	"time"

	"github.com/DANIELXXOMG2/DinamicBarProyect-sub000/models"
)

func saleAt(hour int, total float64, pm models.PaymentMethod, items ...models.SaleItem) models.Sale {
	s := models.Sale{
		Total:         total,
		Subtotal:      total,
		PaymentMethod: pm,
		Items:         items,
	}
	s.CreatedAt = time.Date(2026, 8, 30, hour, 15, 0, 0, time.Local)
	return s
}

func TestReportTotalsAndPaymentBreakdown(t *testing.T) {
	sales := []models.Sale{
		saleAt(12, 30, models.PaymentCash),
		saleAt(12, 20, models.PaymentCard),
		saleAt(20, 50, models.PaymentCash),
	}

	r := buildSalesReport(sales)

	if r.TotalCount != 3 || r.TotalRevenue != 100 {
		t.Fatalf("expected 3 sales / 100 revenue, got %d / %v", r.TotalCount, r.TotalRevenue)
	}
	cash := r.ByPaymentMethod[string(models.PaymentCash)]
	if cash.Count != 2 || cash.Revenue != 80 {
		t.Fatalf("unexpected cash breakdown: %+v", cash)
	}
	card := r.ByPaymentMethod[string(models.PaymentCard)]
	if card.Count != 1 || card.Revenue != 20 {
		t.Fatalf("unexpected card breakdown: %+v", card)
	}
	if _, ok := r.ByPaymentMethod[string(models.PaymentTransfer)]; ok {
		t.Fatal("unused payment method must not appear")
	}
}

func TestReportHourlyBuckets(t *testing.T) {
	sales := []models.Sale{
		saleAt(12, 30, models.PaymentCash),
		saleAt(12, 20, models.PaymentCard),
		saleAt(20, 50, models.PaymentCash),
	}

	r := buildSalesReport(sales)

	for h, b := range r.Hourly {
		if b.Hour != h {
			t.Fatalf("bucket %d labeled %d", h, b.Hour)
		}
	}
	if r.Hourly[12].Count != 2 || r.Hourly[12].Revenue != 50 {
		t.Fatalf("unexpected 12h bucket: %+v", r.Hourly[12])
	}
	if r.Hourly[20].Count != 1 || r.Hourly[20].Revenue != 50 {
		t.Fatalf("unexpected 20h bucket: %+v", r.Hourly[20])
	}
	if r.Hourly[0].Count != 0 {
		t.Fatalf("expected empty midnight bucket, got %+v", r.Hourly[0])
	}
}

func TestReportTopProductsAggregatesAcrossSales(t *testing.T) {
	sales := []models.Sale{
		saleAt(10, 25, models.PaymentCash,
			models.SaleItem{ProductID: 1, ProductName: "Cerveza", Quantity: 3, TotalPrice: 15},
			models.SaleItem{ProductID: 2, ProductName: "Ron", Quantity: 1, TotalPrice: 10},
		),
		saleAt(11, 30, models.PaymentCard,
			models.SaleItem{ProductID: 1, ProductName: "Cerveza", Quantity: 2, TotalPrice: 10},
			models.SaleItem{ProductID: 3, ProductName: "Agua", Quantity: 10, TotalPrice: 20},
		),
	}

	r := buildSalesReport(sales)

	if len(r.TopProducts) != 3 {
		t.Fatalf("expected 3 products, got %d", len(r.TopProducts))
	}
	if r.TopProducts[0].ProductName != "Agua" || r.TopProducts[0].Quantity != 10 {
		t.Fatalf("unexpected leader: %+v", r.TopProducts[0])
	}
	if r.TopProducts[1].ProductName != "Cerveza" || r.TopProducts[1].Quantity != 5 || r.TopProducts[1].Revenue != 25 {
		t.Fatalf("expected merged Cerveza rows, got %+v", r.TopProducts[1])
	}
}

func TestReportTopProductsTieKeepsFirstSeen(t *testing.T) {
	sales := []models.Sale{
		saleAt(10, 10, models.PaymentCash,
			models.SaleItem{ProductID: 1, ProductName: "Cerveza", Quantity: 2, TotalPrice: 10},
		),
		saleAt(11, 24, models.PaymentCash,
			models.SaleItem{ProductID: 2, ProductName: "Ron", Quantity: 2, TotalPrice: 24},
		),
	}

	r := buildSalesReport(sales)

	if r.TopProducts[0].ProductName != "Cerveza" || r.TopProducts[1].ProductName != "Ron" {
		t.Fatalf("tie must keep first-seen order, got %+v", r.TopProducts)
	}
}

func TestReportTopProductsTruncatesAtTen(t *testing.T) {
	var sales []models.Sale
	for i := 1; i <= 12; i++ {
		sales = append(sales, saleAt(10, float64(i), models.PaymentCash,
			models.SaleItem{ProductID: uint(i), ProductName: "P", Quantity: i, TotalPrice: float64(i)},
		))
	}

	r := buildSalesReport(sales)

	if len(r.TopProducts) != 10 {
		t.Fatalf("expected top list capped at 10, got %d", len(r.TopProducts))
	}
	if r.TopProducts[0].Quantity != 12 || r.TopProducts[9].Quantity != 3 {
		t.Fatalf("unexpected cap boundaries: first=%+v last=%+v", r.TopProducts[0], r.TopProducts[9])
	}
}

func TestReportEmpty(t *testing.T) {
	r := buildSalesReport(nil)
	if r.TotalCount != 0 || r.TotalRevenue != 0 {
		t.Fatalf("expected empty report, got %+v", r)
	}
	if len(r.TopProducts) != 0 {
		t.Fatalf("expected no top products, got %d", len(r.TopProducts))
	}
	if len(r.ByPaymentMethod) != 0 {
		t.Fatalf("expected no payment rows, got %d", len(r.ByPaymentMethod))
	}
}
