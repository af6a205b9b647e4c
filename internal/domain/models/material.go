package models

import "github.com/shopspring/decimal"

const (
	StockLow = "Low Stock"
	StockOK  = "In Stock"
)

// Material is a stocked construction material.
type Material struct {
	ID      int             `json:"id"`
	Name    string          `json:"name"`
	Unit    string          `json:"unit"`
	Current float64         `json:"current"`
	Minimum float64         `json:"minimum"`
	Cost    decimal.Decimal `json:"cost"`
}

// LowStock reports whether the material has reached its reorder threshold.
func (m Material) LowStock() bool { return m.Current <= m.Minimum }

// StockStatus returns the derived stock label.
func (m Material) StockStatus() string {
	if m.LowStock() {
		return StockLow
	}
	return StockOK
}

// MaterialForm carries raw values from the add/edit material form.
type MaterialForm struct {
	Name    string     `json:"name"`
	Unit    string     `json:"unit"`
	Current FormNumber `json:"current"`
	Minimum FormNumber `json:"minimum"`
	Cost    FormNumber `json:"cost"`
}

// MaterialUsage is one entry of the append-only usage log. MaterialName is a
// snapshot taken when the usage was recorded.
type MaterialUsage struct {
	ID           int     `json:"id"`
	MaterialID   int     `json:"materialId"`
	MaterialName string  `json:"materialName"`
	Quantity     float64 `json:"quantity"`
	Date         string  `json:"date"`
	Notes        string  `json:"notes"`
}

// UsageForm carries raw values from the record-usage form.
type UsageForm struct {
	MaterialID FormNumber `json:"materialId"`
	Quantity   FormNumber `json:"quantity"`
	Notes      string     `json:"notes"`
}
