package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type Category struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	Name      string     `json:"name" gorm:"not null"`
	MenuItems []MenuItem `json:"menu_items" gorm:"constraint:OnDelete:CASCADE"`
}

type MenuItem struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Name        string          `json:"name" gorm:"not null"`
	Description string          `json:"description" gorm:"type:text"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(6,2);not null"`
	Image       string          `json:"image"`
	CategoryID  uint            `json:"category_id" gorm:"not null;index"`
	// {"fr": {"name": "...", "description": "..."}}
	Translations datatypes.JSONMap `json:"translations"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// Localized returns name and description in lang, falling back to the
// default text for anything missing.
func (m MenuItem) Localized(lang string) (string, string) {
	name, description := m.Name, m.Description
	if lang == "" || m.Translations == nil {
		return name, description
	}
	entry, ok := m.Translations[lang].(map[string]interface{})
	if !ok {
		return name, description
	}
	if v, ok := entry["name"].(string); ok && v != "" {
		name = v
	}
	if v, ok := entry["description"].(string); ok && v != "" {
		description = v
	}
	return name, description
}
