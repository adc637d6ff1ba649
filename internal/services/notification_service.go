package services

import (
	"fmt"
	"log"
	"table_order/internal/models"
	"table_order/internal/repository"
	"time"
)

// Mailbox is the per-table single message slot read by guests.
type Mailbox interface {
	PutTableMessage(tableID uint, message string, ttl time.Duration) error
	TakeTableMessage(tableID uint) (string, bool, error)
}

type NotificationService interface {
	// Record appends a staff notification for the order.
	Record(order *models.Order, message string) error
	// NotifyTable records the notification and leaves the message in the
	// table mailbox for the guest.
	NotifyTable(order *models.Order, logMessage, guestMessage string) error
	TakeTableMessage(tableID uint) (string, bool, error)
	GetByOrder(orderID uint) ([]models.Notification, error)
	GetUnpaid() ([]models.Notification, error)
	GetUnseen() ([]models.Notification, error)
	MarkSeen(id uint) error
	MarkAllSeen() error
}

type notificationService struct {
	notificationRepo repository.NotificationRepository
	mailbox          Mailbox
	mailboxTTL       time.Duration
}

func NewNotificationService(notificationRepo repository.NotificationRepository, mailbox Mailbox, mailboxTTL time.Duration) NotificationService {
	return &notificationService{
		notificationRepo: notificationRepo,
		mailbox:          mailbox,
		mailboxTTL:       mailboxTTL,
	}
}

func (s *notificationService) Record(order *models.Order, message string) error {
	notification := &models.Notification{
		OrderID: order.ID,
		Message: message,
		IsPaid:  order.IsPaid,
	}
	if err := s.notificationRepo.Create(notification); err != nil {
		return fmt.Errorf("failed to record notification: %w", err)
	}
	return nil
}

func (s *notificationService) NotifyTable(order *models.Order, logMessage, guestMessage string) error {
	if err := s.Record(order, logMessage); err != nil {
		return err
	}
	// The log row is the durable record; a lost guest message is only logged.
	if err := s.mailbox.PutTableMessage(order.TableID, guestMessage, s.mailboxTTL); err != nil {
		log.Printf("Warning: failed to write mailbox for table %d: %v", order.TableID, err)
	}
	return nil
}

func (s *notificationService) TakeTableMessage(tableID uint) (string, bool, error) {
	return s.mailbox.TakeTableMessage(tableID)
}

func (s *notificationService) GetByOrder(orderID uint) ([]models.Notification, error) {
	return s.notificationRepo.GetByOrderID(orderID)
}

func (s *notificationService) GetUnpaid() ([]models.Notification, error) {
	return s.notificationRepo.GetUnpaid()
}

func (s *notificationService) GetUnseen() ([]models.Notification, error) {
	return s.notificationRepo.GetUnseen()
}

func (s *notificationService) MarkSeen(id uint) error {
	if err := s.notificationRepo.MarkSeen(id); err != nil {
		return notFound(err, ErrNotificationNotFound, "failed to mark notification seen")
	}
	return nil
}

func (s *notificationService) MarkAllSeen() error {
	return s.notificationRepo.MarkAllSeen()
}
