package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	TableID   uint            `json:"table_id" gorm:"not null;index"`
	Table     Table           `json:"table" gorm:"constraint:OnDelete:CASCADE"`
	Status    OrderStatus     `json:"status" gorm:"type:varchar(20);not null;default:'pending_waiter';index"`
	IsPaid    bool            `json:"is_paid" gorm:"default:false"`
	Total     decimal.Decimal `json:"total" gorm:"type:decimal(8,2);not null;default:0"`
	Items     []OrderItem     `json:"items" gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt time.Time       `json:"created_at" gorm:"index"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type OrderStatus string

const (
	OrderPendingWaiter OrderStatus = "pending_waiter"
	OrderNew           OrderStatus = "new"
	OrderPreparing     OrderStatus = "preparing"
	OrderReady         OrderStatus = "ready"
	OrderServed        OrderStatus = "served"
	OrderCancelled     OrderStatus = "cancelled"
)

// Label is the human readable form shown to guests.
func (s OrderStatus) Label() string {
	switch s {
	case OrderPendingWaiter:
		return "Waiting for waiter"
	case OrderNew:
		return "New"
	case OrderPreparing:
		return "Preparing"
	case OrderReady:
		return "Ready"
	case OrderServed:
		return "Served"
	case OrderCancelled:
		return "Cancelled"
	}
	return "Unknown status"
}
