package models

import "time"

// Table is a physical restaurant table. Its guest mailbox lives in redis.
type Table struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Number    uint      `json:"number" gorm:"unique;not null"`
	QRCode    string    `json:"qr_code"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
