package repository

import (
	"table_order/internal/models"

	"gorm.io/gorm"
)

type TableRepository interface {
	Create(table *models.Table) error
	GetByID(id uint) (*models.Table, error)
	GetByNumber(number uint) (*models.Table, error)
	GetAll() ([]models.Table, error)
	UpdateQRCode(id uint, path string) error
}

type tableRepository struct {
	db *gorm.DB
}

func NewTableRepository(db *gorm.DB) TableRepository {
	return &tableRepository{db: db}
}

func (r *tableRepository) Create(table *models.Table) error {
	return r.db.Create(table).Error
}

func (r *tableRepository) GetByID(id uint) (*models.Table, error) {
	var table models.Table
	err := r.db.First(&table, id).Error
	if err != nil {
		return nil, err
	}
	return &table, nil
}

func (r *tableRepository) GetByNumber(number uint) (*models.Table, error) {
	var table models.Table
	err := r.db.Where("number = ?", number).First(&table).Error
	if err != nil {
		return nil, err
	}
	return &table, nil
}

func (r *tableRepository) GetAll() ([]models.Table, error) {
	var tables []models.Table
	err := r.db.Order("number").Find(&tables).Error
	return tables, err
}

func (r *tableRepository) UpdateQRCode(id uint, path string) error {
	return r.db.Model(&models.Table{ID: id}).Update("qr_code", path).Error
}
