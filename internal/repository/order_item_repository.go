package repository

import (
	"table_order/internal/models"

	"gorm.io/gorm"
)

type OrderItemRepository interface {
	GetByID(id uint) (*models.OrderItem, error)
	GetByOrderID(orderID uint) ([]models.OrderItem, error)
	GetByStatus(status models.ItemStatus) ([]models.OrderItem, error)
	UpdateStatus(id uint, status models.ItemStatus) error
	// UpdateStatusForOrder moves every item of the order currently in one of
	// from to the given status.
	UpdateStatusForOrder(orderID uint, from []models.ItemStatus, to models.ItemStatus) (int64, error)
	UpdateQuantity(id uint, quantity int) error
	Delete(id uint) error
}

type orderItemRepository struct {
	db *gorm.DB
}

func NewOrderItemRepository(db *gorm.DB) OrderItemRepository {
	return &orderItemRepository{db: db}
}

func (r *orderItemRepository) GetByID(id uint) (*models.OrderItem, error) {
	var orderItem models.OrderItem
	err := r.db.Preload("MenuItem").First(&orderItem, id).Error
	if err != nil {
		return nil, err
	}
	return &orderItem, nil
}

func (r *orderItemRepository) GetByOrderID(orderID uint) ([]models.OrderItem, error) {
	var orderItems []models.OrderItem
	err := r.db.Preload("MenuItem").Where("order_id = ?", orderID).Order("id").Find(&orderItems).Error
	return orderItems, err
}

func (r *orderItemRepository) GetByStatus(status models.ItemStatus) ([]models.OrderItem, error) {
	var orderItems []models.OrderItem
	err := r.db.Preload("MenuItem").Where("status = ?", status).Order("order_id, id").Find(&orderItems).Error
	return orderItems, err
}

func (r *orderItemRepository) UpdateStatus(id uint, status models.ItemStatus) error {
	return r.db.Model(&models.OrderItem{ID: id}).Update("status", status).Error
}

func (r *orderItemRepository) UpdateStatusForOrder(orderID uint, from []models.ItemStatus, to models.ItemStatus) (int64, error) {
	result := r.db.Model(&models.OrderItem{}).
		Where("order_id = ? AND status IN ?", orderID, from).
		Update("status", to)
	return result.RowsAffected, result.Error
}

func (r *orderItemRepository) UpdateQuantity(id uint, quantity int) error {
	return r.db.Model(&models.OrderItem{ID: id}).Update("quantity", quantity).Error
}

func (r *orderItemRepository) Delete(id uint) error {
	return r.db.Delete(&models.OrderItem{}, id).Error
}
