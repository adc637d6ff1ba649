package services

import (
	"fmt"
	"strings"
	"table_order/internal/models"
	"table_order/internal/repository"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// MenuEntry is a menu item as shown to a guest, already localized.
type MenuEntry struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image,omitempty"`
}

type MenuCategory struct {
	ID    uint        `json:"id"`
	Name  string      `json:"name"`
	Items []MenuEntry `json:"items"`
}

type CatalogService interface {
	GetMenu(search, lang string) ([]MenuCategory, error)
	CreateCategory(name string) (*models.Category, error)
	CreateMenuItem(item *models.MenuItem) error
	GetMenuItem(id uint) (*models.MenuItem, error)
}

type catalogService struct {
	catalogRepo repository.CatalogRepository
}

func NewCatalogService(catalogRepo repository.CatalogRepository) CatalogService {
	return &catalogService{catalogRepo: catalogRepo}
}

func (s *catalogService) GetMenu(search, lang string) ([]MenuCategory, error) {
	categories, err := s.catalogRepo.GetMenu(search)
	if err != nil {
		return nil, fmt.Errorf("failed to load menu: %w", err)
	}
	return lo.Map(categories, func(category models.Category, _ int) MenuCategory {
		return MenuCategory{
			ID:   category.ID,
			Name: category.Name,
			Items: lo.Map(category.MenuItems, func(item models.MenuItem, _ int) MenuEntry {
				name, description := item.Localized(lang)
				return MenuEntry{
					ID:          item.ID,
					Name:        name,
					Description: description,
					Price:       item.Price,
					Image:       item.Image,
				}
			}),
		}
	}), nil
}

func (s *catalogService) CreateCategory(name string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: category name is required", ErrInvalidInput)
	}
	category := &models.Category{Name: name}
	if err := s.catalogRepo.CreateCategory(category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return category, nil
}

func (s *catalogService) CreateMenuItem(item *models.MenuItem) error {
	item.Name = strings.TrimSpace(item.Name)
	if item.Name == "" {
		return fmt.Errorf("%w: menu item name is required", ErrInvalidInput)
	}
	if item.Price.IsNegative() {
		return fmt.Errorf("%w: price cannot be negative", ErrInvalidInput)
	}
	if _, err := s.catalogRepo.GetCategory(item.CategoryID); err != nil {
		return notFound(err, ErrCategoryNotFound, "failed to load category")
	}
	item.Price = item.Price.Round(2)
	if err := s.catalogRepo.CreateMenuItem(item); err != nil {
		return fmt.Errorf("failed to create menu item: %w", err)
	}
	return nil
}

func (s *catalogService) GetMenuItem(id uint) (*models.MenuItem, error) {
	item, err := s.catalogRepo.GetMenuItem(id)
	if err != nil {
		return nil, notFound(err, ErrMenuItemNotFound, "failed to load menu item")
	}
	return item, nil
}
