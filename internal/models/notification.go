package models

import "time"

// Notification is an append-only staff log entry. Only IsSeen changes after insert.
type Notification struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	OrderID   uint      `json:"order_id" gorm:"not null;index"`
	Order     *Order    `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Message   string    `json:"message" gorm:"size:255;not null"`
	IsPaid    bool      `json:"is_paid" gorm:"default:false;index"`
	IsSeen    bool      `json:"is_seen" gorm:"default:false;index"`
	CreatedAt time.Time `json:"created_at"`
}
