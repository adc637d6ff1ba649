package services

import (
	"fmt"
	"sort"
	"table_order/internal/lifecycle"
	"table_order/internal/models"
	"table_order/internal/repository"

	"github.com/samber/lo"
)

// ReadyGroup is an order with the dishes waiting to be carried to its table.
type ReadyGroup struct {
	OrderID     uint               `json:"order_id"`
	TableNumber uint               `json:"table_number"`
	Items       []models.OrderItem `json:"items"`
}

type WaiterBoard struct {
	PendingOrders []models.Order `json:"pending_orders"`
	ReadyOrders   []ReadyGroup   `json:"ready_orders"`
	OrdersToPay   []models.Order `json:"orders_to_pay"`
}

type WaiterService interface {
	GetBoard() (*WaiterBoard, error)
	Accept(orderID uint) (bool, error)
	ServeItem(itemID uint) (bool, error)
	ServeAllReady(orderID uint) (bool, error)
	MarkPaid(orderID uint) error
}

type waiterService struct {
	*engine
}

func NewWaiterService(
	orderRepo repository.OrderRepository,
	orderItemRepo repository.OrderItemRepository,
	notifier NotificationService,
) WaiterService {
	return &waiterService{engine: newEngine(orderRepo, orderItemRepo, notifier)}
}

func (s *waiterService) GetBoard() (*WaiterBoard, error) {
	pending, err := s.orderRepo.GetByStatuses([]models.OrderStatus{models.OrderPendingWaiter})
	if err != nil {
		return nil, fmt.Errorf("failed to load pending orders: %w", err)
	}

	readyItems, err := s.orderItemRepo.GetByStatus(models.ItemReady)
	if err != nil {
		return nil, fmt.Errorf("failed to load ready items: %w", err)
	}
	groups := []ReadyGroup{}
	if len(readyItems) > 0 {
		byOrder := lo.GroupBy(readyItems, func(item models.OrderItem) uint { return item.OrderID })
		orders, err := s.orderRepo.GetByIDs(lo.Keys(byOrder))
		if err != nil {
			return nil, fmt.Errorf("failed to load ready orders: %w", err)
		}
		for _, order := range orders {
			if order.Status == models.OrderCancelled {
				continue
			}
			groups = append(groups, ReadyGroup{
				OrderID:     order.ID,
				TableNumber: order.Table.Number,
				Items:       byOrder[order.ID],
			})
		}
		sort.Slice(groups, func(i, j int) bool {
			if groups[i].TableNumber != groups[j].TableNumber {
				return groups[i].TableNumber < groups[j].TableNumber
			}
			return groups[i].OrderID < groups[j].OrderID
		})
	}

	toPay, err := s.orderRepo.GetUnpaidByStatuses([]models.OrderStatus{models.OrderReady, models.OrderServed})
	if err != nil {
		return nil, fmt.Errorf("failed to load unpaid orders: %w", err)
	}

	return &WaiterBoard{
		PendingOrders: pending,
		ReadyOrders:   groups,
		OrdersToPay:   toPay,
	}, nil
}

func (s *waiterService) Accept(orderID uint) (bool, error) {
	order, err := s.loadOrder(orderID)
	if err != nil {
		return false, err
	}
	// an order emptied by the guest has nothing to cook or serve
	if !lifecycle.CanAccept(order.Status) || len(order.Items) == 0 {
		return false, nil
	}
	if err := s.setStatus(order, models.OrderNew); err != nil {
		return false, err
	}
	return true, nil
}

func (s *waiterService) ServeItem(itemID uint) (bool, error) {
	item, err := s.loadItem(itemID)
	if err != nil {
		return false, err
	}
	order, err := s.loadOrder(item.OrderID)
	if err != nil {
		return false, err
	}
	if order.Status == models.OrderCancelled || !lifecycle.CanServeItem(item.Status) {
		return false, nil
	}
	if err := s.orderItemRepo.UpdateStatus(item.ID, models.ItemServed); err != nil {
		return false, fmt.Errorf("failed to serve item: %w", err)
	}
	if _, err := s.reconcile(order.ID); err != nil {
		return false, err
	}
	return true, nil
}

func (s *waiterService) ServeAllReady(orderID uint) (bool, error) {
	order, err := s.loadOrder(orderID)
	if err != nil {
		return false, err
	}
	if order.Status == models.OrderCancelled {
		return false, nil
	}
	served, err := s.orderItemRepo.UpdateStatusForOrder(order.ID, []models.ItemStatus{models.ItemReady}, models.ItemServed)
	if err != nil {
		return false, fmt.Errorf("failed to serve items: %w", err)
	}
	if served == 0 {
		return false, nil
	}
	if _, err := s.reconcile(order.ID); err != nil {
		return false, err
	}
	return true, nil
}

func (s *waiterService) MarkPaid(orderID uint) error {
	order, err := s.loadOrder(orderID)
	if err != nil {
		return err
	}
	if order.IsPaid {
		return nil
	}
	if err := s.orderRepo.MarkPaid(order.ID); err != nil {
		return fmt.Errorf("failed to mark order paid: %w", err)
	}
	return nil
}
