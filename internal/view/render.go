// Package view projects repository state into display-ready rows.
// Projections are stateless and re-run after every mutation, so the
// rendered state never diverges from the persisted state.
package view

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/kizzez/cafeadmin/internal/domain"
	"github.com/kizzez/cafeadmin/internal/repository"
)

const dateLayout = "02/01/2006 15:04"

var printer = message.NewPrinter(language.MustParse("es-PE"))

// Currency formats an amount the way the storefront shows prices
func Currency(v float64) string {
	return printer.Sprintf("S/ %.2f", v)
}

// ProductRow is one display-ready catalog row
type ProductRow struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Desc     string `json:"desc"`
	Category string `json:"category"`
	Price    string `json:"price"`
	Stock    int    `json:"stock"`
	LowStock bool   `json:"low_stock"`
	Status   string `json:"status"`
	Image    string `json:"image"`
}

// OrderRow is one display-ready order row
type OrderRow struct {
	ID        int64  `json:"id"`
	Customer  string `json:"customer"`
	ItemCount int    `json:"item_count"`
	Total     string `json:"total"`
	Status    string `json:"status"`
	Date      string `json:"date"`
}

type ActivityRow struct {
	Time string `json:"time"`
	Text string `json:"text"`
}

type CouponRow struct {
	Code     string `json:"code"`
	Discount string `json:"discount"`
	Expiry   string `json:"expiry"`
}

// ProductRows projects the filtered catalog. Unknown categories pass
// through as their raw code.
func ProductRows(products []domain.Product, filter repository.ProductFilter) []ProductRow {
	rows := []ProductRow{}
	for _, p := range repository.FilterProducts(products, filter) {
		category := p.Category
		if label, ok := domain.CategoryLabels[p.Category]; ok {
			category = label
		}
		status := "Inactivo"
		if p.Status == domain.ProductActive {
			status = "Activo"
		}
		rows = append(rows, ProductRow{
			ID:       p.ID,
			Name:     p.Name,
			Desc:     p.Desc,
			Category: category,
			Price:    Currency(p.Price),
			Stock:    p.Stock,
			LowStock: p.LowStock(),
			Status:   status,
			Image:    p.Image,
		})
	}
	return rows
}

// OrderRows projects orders with localized dates and status labels
func OrderRows(orders []domain.Order) []OrderRow {
	rows := []OrderRow{}
	for _, o := range orders {
		status := o.Status
		if label, ok := domain.OrderStatusLabels[o.Status]; ok {
			status = label
		}
		date := "-"
		if !o.Date.IsZero() {
			date = o.Date.Local().Format(dateLayout)
		}
		rows = append(rows, OrderRow{
			ID:        o.ID,
			Customer:  o.Customer,
			ItemCount: len(o.Items),
			Total:     Currency(o.Total),
			Status:    status,
			Date:      date,
		})
	}
	return rows
}

func ActivityRows(entries []domain.ActivityEntry) []ActivityRow {
	rows := []ActivityRow{}
	for _, e := range entries {
		rows = append(rows, ActivityRow{
			Time: e.Time.Local().Format(dateLayout),
			Text: e.Text,
		})
	}
	return rows
}

func CouponRows(coupons []domain.Coupon) []CouponRow {
	rows := []CouponRow{}
	for _, c := range coupons {
		rows = append(rows, CouponRow{
			Code:     c.Code,
			Discount: printer.Sprintf("%d%%", c.Discount),
			Expiry:   c.Expiry,
		})
	}
	return rows
}
