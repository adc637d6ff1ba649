package services

import (
	"fmt"
	"table_order/internal/lifecycle"
	"table_order/internal/models"
	"table_order/internal/repository"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// engine persists lifecycle decisions. Kitchen, waiter and guest services
// share it so that totals, reconciliation and notifications behave the same
// whichever role triggered the write.
type engine struct {
	orderRepo     repository.OrderRepository
	orderItemRepo repository.OrderItemRepository
	notifier      NotificationService
}

func newEngine(orderRepo repository.OrderRepository, orderItemRepo repository.OrderItemRepository, notifier NotificationService) *engine {
	return &engine{orderRepo: orderRepo, orderItemRepo: orderItemRepo, notifier: notifier}
}

func (e *engine) loadOrder(id uint) (*models.Order, error) {
	order, err := e.orderRepo.GetByID(id)
	if err != nil {
		return nil, notFound(err, ErrOrderNotFound, "failed to load order")
	}
	return order, nil
}

func (e *engine) loadItem(id uint) (*models.OrderItem, error) {
	item, err := e.orderItemRepo.GetByID(id)
	if err != nil {
		return nil, notFound(err, ErrItemNotFound, "failed to load order item")
	}
	return item, nil
}

// setStatus writes the order status and logs arrivals at ready or served.
func (e *engine) setStatus(order *models.Order, to models.OrderStatus) error {
	from := order.Status
	if from == to {
		return nil
	}
	if err := e.orderRepo.UpdateStatus(order.ID, to); err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	order.Status = to
	if lifecycle.Notifies(from, to) {
		return e.notifier.Record(order, progressMessage(order, to))
	}
	return nil
}

// reconcile aligns the order status with its items once every item agrees.
// It is idempotent and runs after each item status write.
func (e *engine) reconcile(orderID uint) (*models.Order, error) {
	order, err := e.loadOrder(orderID)
	if err != nil {
		return nil, err
	}
	next, changed := lifecycle.Reconcile(order.Status, lifecycle.Statuses(order.Items))
	if !changed {
		return order, nil
	}
	if err := e.setStatus(order, next); err != nil {
		return nil, err
	}
	return order, nil
}

// recomputeTotal stores Σ quantity × price over the order's current items.
func (e *engine) recomputeTotal(orderID uint) (decimal.Decimal, error) {
	items, err := e.orderItemRepo.GetByOrderID(orderID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to load order items: %w", err)
	}
	total := sumItems(items)
	if err := e.orderRepo.UpdateTotal(orderID, total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to update order total: %w", err)
	}
	return total, nil
}

func sumItems(items []models.OrderItem) decimal.Decimal {
	return lo.Reduce(items, func(acc decimal.Decimal, item models.OrderItem, _ int) decimal.Decimal {
		return acc.Add(item.LineTotal())
	}, decimal.Zero)
}

func progressMessage(order *models.Order, status models.OrderStatus) string {
	switch status {
	case models.OrderReady:
		return fmt.Sprintf("Order #%d for table %d is ready to be served.", order.ID, order.Table.Number)
	case models.OrderServed:
		return fmt.Sprintf("Order #%d for table %d has been fully served.", order.ID, order.Table.Number)
	}
	return fmt.Sprintf("Order #%d for table %d is now %s.", order.ID, order.Table.Number, status.Label())
}
