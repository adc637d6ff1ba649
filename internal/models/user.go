package models

import (
	"time"
)

type User struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	Username     string     `json:"username" gorm:"unique;not null"`
	PasswordHash string     `json:"-" gorm:"not null"`
	Role         UserRole   `json:"role" gorm:"type:varchar(20);not null"` // cook, waiter, admin
	Phone        string     `json:"phone"`
	HireDate     *time.Time `json:"hire_date"`
	IsActive     bool       `json:"is_active" gorm:"default:true"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type UserRole string

const (
	RoleCook   UserRole = "cook"
	RoleWaiter UserRole = "waiter"
	RoleAdmin  UserRole = "admin"
)

// SessionEvent records a staff login or logout.
type SessionEvent struct {
	ID         uint             `json:"id" gorm:"primaryKey"`
	UserID     uint             `json:"user_id" gorm:"not null;index"`
	Role       UserRole         `json:"role" gorm:"type:varchar(20);not null"`
	Kind       SessionEventKind `json:"kind" gorm:"type:varchar(10);not null"`
	RemoteAddr string           `json:"remote_addr"`
	CreatedAt  time.Time        `json:"created_at"`
}

type SessionEventKind string

const (
	SessionLogin  SessionEventKind = "login"
	SessionLogout SessionEventKind = "logout"
)
