package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderItem struct {
	ID         uint       `json:"id" gorm:"primaryKey"`
	OrderID    uint       `json:"order_id" gorm:"not null;index"`
	MenuItemID uint       `json:"menu_item_id" gorm:"not null"`
	MenuItem   MenuItem   `json:"menu_item"`
	Quantity   int        `json:"quantity" gorm:"not null;default:1"`
	Status     ItemStatus `json:"status" gorm:"type:varchar(20);not null;default:'new';index"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// LineTotal is quantity × unit price; MenuItem must be loaded.
func (i OrderItem) LineTotal() decimal.Decimal {
	return i.MenuItem.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// ItemStatus represents the kitchen status of an order item
type ItemStatus string

const (
	ItemNew       ItemStatus = "new"
	ItemPreparing ItemStatus = "preparing"
	ItemReady     ItemStatus = "ready"
	ItemServed    ItemStatus = "served"
)
