package controllers

import (
	"testing"

	"gorm.io/gorm"
)

func intPtr(v int) *int         { return &v }
func strPtr(v string) *string   { return &v }
func f64Ptr(v float64) *float64 { return &v }

func TestParseProductCommand(t *testing.T) {
	cases := []struct {
		name    string
		in      ProductPatchInput
		want    productCommand
		wantErr bool
	}{
		{"set", ProductPatchInput{Action: "set", Amount: intPtr(5)}, setStockCmd{Amount: 5}, false},
		{"set zero", ProductPatchInput{Action: "set", Amount: intPtr(0)}, setStockCmd{Amount: 0}, false},
		{"set negative", ProductPatchInput{Action: "set", Amount: intPtr(-1)}, nil, true},
		{"set missing amount", ProductPatchInput{Action: "set"}, nil, true},
		{"increase", ProductPatchInput{Action: "increase", Amount: intPtr(3)}, increaseStockCmd{Amount: 3}, false},
		{"increase zero", ProductPatchInput{Action: "increase", Amount: intPtr(0)}, nil, true},
		{"decrease", ProductPatchInput{Action: "decrease", Amount: intPtr(2)}, decreaseStockCmd{Amount: 2}, false},
		{"decrease zero", ProductPatchInput{Action: "decrease", Amount: intPtr(0)}, nil, true},
		{"updateImage", ProductPatchInput{Action: "updateImage", ImageURL: strPtr("http://x/y.png")}, updateImageCmd{URL: "http://x/y.png"}, false},
		{"updateImage empty", ProductPatchInput{Action: "updateImage", ImageURL: strPtr("")}, nil, true},
		{"removeImage", ProductPatchInput{Action: "removeImage"}, removeImageCmd{}, false},
		{"unknown", ProductPatchInput{Action: "restock"}, nil, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseProductCommand(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %#v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %#v, got %#v", tc.want, got)
			}
		})
	}
}

func TestApplyStockCommands(t *testing.T) {
	db := setupTestDB(t)
	p := seedProduct(t, db, "Cerveza", 5, 10)

	apply := func(cmd productCommand) {
		t.Helper()
		if err := db.Transaction(func(tx *gorm.DB) error {
			_, err := applyProductCommand(tx, p.ID, cmd)
			return err
		}); err != nil {
			t.Fatalf("apply %#v: %v", cmd, err)
		}
	}

	apply(increaseStockCmd{Amount: 5})
	if got := reloadProduct(t, db, p.ID); got.Stock != 15 {
		t.Fatalf("expected stock 15, got %d", got.Stock)
	}

	apply(decreaseStockCmd{Amount: 20}) // clamps, never negative
	if got := reloadProduct(t, db, p.ID); got.Stock != 0 {
		t.Fatalf("expected stock clamped at 0, got %d", got.Stock)
	}

	apply(setStockCmd{Amount: 7})
	if got := reloadProduct(t, db, p.ID); got.Stock != 7 {
		t.Fatalf("expected stock 7, got %d", got.Stock)
	}
}

func TestApplyImageCommands(t *testing.T) {
	db := setupTestDB(t)
	p := seedProduct(t, db, "Ron", 12, 4)

	if err := db.Transaction(func(tx *gorm.DB) error {
		_, err := applyProductCommand(tx, p.ID, updateImageCmd{URL: "http://cdn/ron.png"})
		return err
	}); err != nil {
		t.Fatalf("update image: %v", err)
	}
	if got := reloadProduct(t, db, p.ID); got.ImageURL != "http://cdn/ron.png" {
		t.Fatalf("expected image set, got %q", got.ImageURL)
	}

	if err := db.Transaction(func(tx *gorm.DB) error {
		_, err := applyProductCommand(tx, p.ID, removeImageCmd{})
		return err
	}); err != nil {
		t.Fatalf("remove image: %v", err)
	}
	if got := reloadProduct(t, db, p.ID); got.ImageURL != "" {
		t.Fatalf("expected image cleared, got %q", got.ImageURL)
	}
}

func TestApplyUpdateFieldsValidates(t *testing.T) {
	db := setupTestDB(t)
	p := seedProduct(t, db, "Agua", 2, 4)

	err := db.Transaction(func(tx *gorm.DB) error {
		_, err := applyProductCommand(tx, p.ID, updateFieldsCmd{SalePrice: f64Ptr(0)})
		return err
	})
	if err == nil {
		t.Fatal("expected rejection of zero sale price")
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		_, err := applyProductCommand(tx, p.ID, updateFieldsCmd{Type: strPtr("SNACK")})
		return err
	})
	if err == nil {
		t.Fatal("expected rejection of unknown type")
	}

	if err := db.Transaction(func(tx *gorm.DB) error {
		_, err := applyProductCommand(tx, p.ID, updateFieldsCmd{
			Name:      strPtr("Agua Mineral"),
			SalePrice: f64Ptr(2.5),
			MinStock:  intPtr(2),
		})
		return err
	}); err != nil {
		t.Fatalf("update fields: %v", err)
	}
	got := reloadProduct(t, db, p.ID)
	if got.Name != "Agua Mineral" || got.SalePrice != 2.5 || got.MinStock != 2 {
		t.Fatalf("unexpected product after update: %+v", got)
	}
}

func TestApplyCommandMissingProduct(t *testing.T) {
	db := setupTestDB(t)

	err := db.Transaction(func(tx *gorm.DB) error {
		_, err := applyProductCommand(tx, 9999, setStockCmd{Amount: 1})
		return err
	})
	if err != gorm.ErrRecordNotFound {
		t.Fatalf("expected record not found, got %v", err)
	}
}
