package repository

import (
	"strings"
	"table_order/internal/models"

	"gorm.io/gorm"
)

type CatalogRepository interface {
	CreateCategory(category *models.Category) error
	GetCategory(id uint) (*models.Category, error)
	CreateMenuItem(item *models.MenuItem) error
	GetMenuItem(id uint) (*models.MenuItem, error)
	GetMenuItemsByIDs(ids []uint) ([]models.MenuItem, error)
	// GetMenu returns categories with their items. A non-empty search keeps
	// items whose name or description match, and categories whose name
	// matches or which contain a matching item.
	GetMenu(search string) ([]models.Category, error)
}

type catalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) CreateCategory(category *models.Category) error {
	return r.db.Create(category).Error
}

func (r *catalogRepository) GetCategory(id uint) (*models.Category, error) {
	var category models.Category
	err := r.db.First(&category, id).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *catalogRepository) CreateMenuItem(item *models.MenuItem) error {
	return r.db.Create(item).Error
}

func (r *catalogRepository) GetMenuItem(id uint) (*models.MenuItem, error) {
	var item models.MenuItem
	err := r.db.First(&item, id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *catalogRepository) GetMenuItemsByIDs(ids []uint) ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := r.db.Where("id IN ?", ids).Find(&items).Error
	return items, err
}

func (r *catalogRepository) GetMenu(search string) ([]models.Category, error) {
	var categories []models.Category
	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		err := r.db.Preload("MenuItems", func(db *gorm.DB) *gorm.DB {
			return db.Order("name")
		}).Order("name").Find(&categories).Error
		return categories, err
	}

	pattern := "%" + search + "%"
	itemMatch := "(LOWER(menu_items.name) LIKE ? OR LOWER(menu_items.description) LIKE ?)"
	err := r.db.
		Where("LOWER(categories.name) LIKE ?", pattern).
		Or("EXISTS (SELECT 1 FROM menu_items WHERE menu_items.category_id = categories.id AND "+itemMatch+")", pattern, pattern).
		Preload("MenuItems", func(db *gorm.DB) *gorm.DB {
			return db.Where(itemMatch, pattern, pattern).Order("name")
		}).
		Order("name").
		Find(&categories).Error
	return categories, err
}
