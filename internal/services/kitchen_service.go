package services

import (
	"fmt"
	"table_order/internal/lifecycle"
	"table_order/internal/models"
	"table_order/internal/repository"

	"github.com/samber/lo"
)

// boardStatuses are the order statuses the kitchen works on.
var boardStatuses = []models.OrderStatus{models.OrderNew, models.OrderPreparing, models.OrderReady}

type KitchenService interface {
	// GetBoard lists accepted, unfinished orders, newest first, with items
	// sorted new, preparing, ready, served. It never writes.
	GetBoard() ([]models.Order, error)
	AdvanceItem(itemID uint, to models.ItemStatus) (bool, error)
	AdvanceOrder(orderID uint, to models.OrderStatus) (bool, error)
	// WithdrawOrder cancels an order the restaurant cannot serve and tells the table.
	WithdrawOrder(orderID uint) (bool, error)
}

type kitchenService struct {
	*engine
}

func NewKitchenService(
	orderRepo repository.OrderRepository,
	orderItemRepo repository.OrderItemRepository,
	notifier NotificationService,
) KitchenService {
	return &kitchenService{engine: newEngine(orderRepo, orderItemRepo, notifier)}
}

func (s *kitchenService) GetBoard() ([]models.Order, error) {
	orders, err := s.orderRepo.GetByStatuses(boardStatuses)
	if err != nil {
		return nil, fmt.Errorf("failed to load kitchen orders: %w", err)
	}
	for i := range orders {
		lifecycle.SortItems(orders[i].Items)
	}
	return orders, nil
}

func (s *kitchenService) AdvanceItem(itemID uint, to models.ItemStatus) (bool, error) {
	item, err := s.loadItem(itemID)
	if err != nil {
		return false, err
	}
	order, err := s.loadOrder(item.OrderID)
	if err != nil {
		return false, err
	}
	if !lifecycle.KitchenOwns(order.Status) || !lifecycle.CanKitchenMoveItem(item.Status, to) {
		return false, nil
	}

	if err := s.orderItemRepo.UpdateStatus(item.ID, to); err != nil {
		return false, fmt.Errorf("failed to update item status: %w", err)
	}
	if _, err := s.reconcile(order.ID); err != nil {
		return false, err
	}
	return true, nil
}

func (s *kitchenService) AdvanceOrder(orderID uint, to models.OrderStatus) (bool, error) {
	order, err := s.loadOrder(orderID)
	if err != nil {
		return false, err
	}
	if !lifecycle.CanKitchenMoveOrder(order.Status, to) || len(order.Items) == 0 {
		return false, nil
	}

	target := models.ItemStatus(to)
	from := lo.Filter([]models.ItemStatus{models.ItemNew, models.ItemPreparing}, func(status models.ItemStatus, _ int) bool {
		return lifecycle.CanKitchenMoveItem(status, target)
	})
	if _, err := s.orderItemRepo.UpdateStatusForOrder(order.ID, from, target); err != nil {
		return false, fmt.Errorf("failed to update order items: %w", err)
	}
	if err := s.setStatus(order, to); err != nil {
		return false, err
	}
	if _, err := s.reconcile(order.ID); err != nil {
		return false, err
	}
	return true, nil
}

func (s *kitchenService) WithdrawOrder(orderID uint) (bool, error) {
	order, err := s.loadOrder(orderID)
	if err != nil {
		return false, err
	}
	if !lifecycle.CanStaffCancel(order.Status) {
		return false, nil
	}
	if err := s.orderRepo.UpdateStatus(order.ID, models.OrderCancelled); err != nil {
		return false, fmt.Errorf("failed to cancel order: %w", err)
	}
	order.Status = models.OrderCancelled

	err = s.notifier.NotifyTable(order,
		fmt.Sprintf("Order #%d for table %d cancelled by the restaurant.", order.ID, order.Table.Number),
		fmt.Sprintf("Your order #%d was cancelled by the restaurant.", order.ID),
	)
	if err != nil {
		return false, err
	}
	return true, nil
}
