package repository

import (
	"table_order/internal/models"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OrderRepository interface {
	// CreateWithItems inserts the order and its items in one transaction.
	CreateWithItems(order *models.Order) error
	GetByID(id uint) (*models.Order, error)
	GetByIDs(ids []uint) ([]models.Order, error)
	GetByTableID(tableID uint) ([]models.Order, error)
	GetLatestForTable(tableID uint) (*models.Order, error)
	GetPendingForTable(tableID uint) (*models.Order, error)
	GetActiveForTable(tableID uint, servedBefore time.Time) ([]models.Order, error)
	GetByStatuses(statuses []models.OrderStatus) ([]models.Order, error)
	GetUnpaidByStatuses(statuses []models.OrderStatus) ([]models.Order, error)
	GetRecent(limit int) ([]models.Order, error)
	UpdateStatus(id uint, status models.OrderStatus) error
	UpdateTotal(id uint, total decimal.Decimal) error
	MarkPaid(id uint) error
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) withItems() *gorm.DB {
	return r.db.Preload("Table").Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("id")
	}).Preload("Items.MenuItem")
}

func (r *orderRepository) CreateWithItems(order *models.Order) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		items := order.Items
		if err := tx.Omit(clause.Associations).Create(order).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].OrderID = order.ID
		}
		if len(items) > 0 {
			if err := tx.Omit(clause.Associations).Create(&items).Error; err != nil {
				return err
			}
		}
		order.Items = items
		return nil
	})
}

func (r *orderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	err := r.withItems().First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetByIDs(ids []uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.withItems().Where("id IN ?", ids).Find(&orders).Error
	return orders, err
}

func (r *orderRepository) GetByTableID(tableID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.withItems().Where("table_id = ?", tableID).Order("created_at DESC, id DESC").Find(&orders).Error
	return orders, err
}

func (r *orderRepository) GetLatestForTable(tableID uint) (*models.Order, error) {
	var order models.Order
	err := r.withItems().
		Where("table_id = ? AND status <> ?", tableID, models.OrderCancelled).
		Order("created_at DESC, id DESC").
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetPendingForTable(tableID uint) (*models.Order, error) {
	var order models.Order
	err := r.db.Where("table_id = ? AND status = ?", tableID, models.OrderPendingWaiter).First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetActiveForTable(tableID uint, servedBefore time.Time) ([]models.Order, error) {
	var orders []models.Order
	err := r.withItems().
		Where("table_id = ? AND is_paid = ? AND status <> ?", tableID, false, models.OrderCancelled).
		Where("NOT (status = ? AND updated_at < ?)", models.OrderServed, servedBefore).
		Order("created_at DESC, id DESC").
		Find(&orders).Error
	return orders, err
}

func (r *orderRepository) GetByStatuses(statuses []models.OrderStatus) ([]models.Order, error) {
	var orders []models.Order
	err := r.withItems().Where("status IN ?", statuses).Order("created_at DESC, id DESC").Find(&orders).Error
	return orders, err
}

func (r *orderRepository) GetUnpaidByStatuses(statuses []models.OrderStatus) ([]models.Order, error) {
	var orders []models.Order
	err := r.withItems().
		Where("status IN ? AND is_paid = ?", statuses, false).
		Order("created_at DESC, id DESC").
		Find(&orders).Error
	return orders, err
}

func (r *orderRepository) GetRecent(limit int) ([]models.Order, error) {
	var orders []models.Order
	err := r.withItems().
		Where("status <> ?", models.OrderCancelled).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&orders).Error
	return orders, err
}

func (r *orderRepository) UpdateStatus(id uint, status models.OrderStatus) error {
	return r.db.Model(&models.Order{ID: id}).Update("status", status).Error
}

func (r *orderRepository) UpdateTotal(id uint, total decimal.Decimal) error {
	return r.db.Model(&models.Order{ID: id}).Update("total", total).Error
}

func (r *orderRepository) MarkPaid(id uint) error {
	return r.db.Model(&models.Order{ID: id}).Update("is_paid", true).Error
}
