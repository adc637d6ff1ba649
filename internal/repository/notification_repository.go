package repository

import (
	"table_order/internal/models"

	"gorm.io/gorm"
)

type NotificationRepository interface {
	Create(notification *models.Notification) error
	GetByOrderID(orderID uint) ([]models.Notification, error)
	GetUnpaid() ([]models.Notification, error)
	GetUnseen() ([]models.Notification, error)
	MarkSeen(id uint) error
	MarkAllSeen() error
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(notification *models.Notification) error {
	return r.db.Create(notification).Error
}

func (r *notificationRepository) GetByOrderID(orderID uint) ([]models.Notification, error) {
	var notifications []models.Notification
	err := r.db.Where("order_id = ?", orderID).Order("id").Find(&notifications).Error
	return notifications, err
}

func (r *notificationRepository) GetUnpaid() ([]models.Notification, error) {
	var notifications []models.Notification
	err := r.db.Where("is_paid = ?", false).Order("created_at DESC, id DESC").Find(&notifications).Error
	return notifications, err
}

func (r *notificationRepository) GetUnseen() ([]models.Notification, error) {
	var notifications []models.Notification
	err := r.db.Where("is_seen = ?", false).Order("created_at DESC, id DESC").Find(&notifications).Error
	return notifications, err
}

func (r *notificationRepository) MarkSeen(id uint) error {
	result := r.db.Model(&models.Notification{}).Where("id = ?", id).Update("is_seen", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *notificationRepository) MarkAllSeen() error {
	return r.db.Model(&models.Notification{}).Where("is_seen = ?", false).Update("is_seen", true).Error
}
