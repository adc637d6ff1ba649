package services

import (
	"errors"
	"fmt"
	"table_order/internal/lifecycle"
	"table_order/internal/models"
	"table_order/internal/repository"
	"time"

	"github.com/samber/lo"
	"gorm.io/gorm"
)

// Quantity adjustment actions a guest may send.
const (
	ActionIncrease = "increase"
	ActionDecrease = "decrease"
	ActionRemove   = "remove"
)

// OrderLine is one requested menu item in a guest submission.
type OrderLine struct {
	MenuItemID uint
	Quantity   int
}

type OrderService interface {
	SubmitOrder(tableID uint, lines []OrderLine) (*models.Order, error)
	AdjustItem(orderID, itemID uint, action string) (*models.Order, error)
	// CancelByGuest cancels an order still waiting for the waiter. It reports
	// false, without error, when the order is past that point.
	CancelByGuest(orderID uint) (bool, error)
	GetOrder(id uint) (*models.Order, error)
	// GetCurrentOrder returns the table's latest non-cancelled order, or nil.
	GetCurrentOrder(tableID uint) (*models.Order, error)
	GetActiveOrders(tableID uint) ([]models.Order, error)
	GetHistory(tableID uint) ([]models.Order, error)
	GetRecentOrders(limit int) ([]models.Order, error)
}

type orderService struct {
	*engine
	tableRepo   repository.TableRepository
	catalogRepo repository.CatalogRepository
	servedGrace time.Duration
	now         func() time.Time
}

func NewOrderService(
	orderRepo repository.OrderRepository,
	orderItemRepo repository.OrderItemRepository,
	tableRepo repository.TableRepository,
	catalogRepo repository.CatalogRepository,
	notifier NotificationService,
	servedGrace time.Duration,
) OrderService {
	return &orderService{
		engine:      newEngine(orderRepo, orderItemRepo, notifier),
		tableRepo:   tableRepo,
		catalogRepo: catalogRepo,
		servedGrace: servedGrace,
		now:         time.Now,
	}
}

func (s *orderService) SubmitOrder(tableID uint, lines []OrderLine) (*models.Order, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyOrder
	}
	for _, line := range lines {
		if line.Quantity < 1 {
			return nil, ErrInvalidQuantity
		}
	}

	table, err := s.tableRepo.GetByID(tableID)
	if err != nil {
		return nil, notFound(err, ErrTableNotFound, "failed to load table")
	}

	// One order at a time may wait for the waiter.
	_, err = s.orderRepo.GetPendingForTable(tableID)
	if err == nil {
		return nil, ErrOrderPending
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check pending orders: %w", err)
	}

	ids := lo.Uniq(lo.Map(lines, func(line OrderLine, _ int) uint { return line.MenuItemID }))
	menuItems, err := s.catalogRepo.GetMenuItemsByIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load menu items: %w", err)
	}
	byID := lo.KeyBy(menuItems, func(item models.MenuItem) uint { return item.ID })

	items := make([]models.OrderItem, 0, len(lines))
	for _, line := range lines {
		menuItem, ok := byID[line.MenuItemID]
		if !ok {
			return nil, fmt.Errorf("%w: %d", ErrMenuItemNotFound, line.MenuItemID)
		}
		items = append(items, models.OrderItem{
			MenuItemID: menuItem.ID,
			MenuItem:   menuItem,
			Quantity:   line.Quantity,
			Status:     models.ItemNew,
		})
	}

	order := &models.Order{
		TableID: table.ID,
		Status:  models.OrderPendingWaiter,
		Total:   sumItems(items),
		Items:   items,
	}
	if err := s.orderRepo.CreateWithItems(order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	order.Table = *table

	message := fmt.Sprintf("Order #%d submitted for table %d, waiting for waiter validation.", order.ID, table.Number)
	if err := s.notifier.Record(order, message); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *orderService) AdjustItem(orderID, itemID uint, action string) (*models.Order, error) {
	order, err := s.loadOrder(orderID)
	if err != nil {
		return nil, err
	}
	if !lifecycle.CanAdjust(order.Status) {
		return nil, ErrOrderLocked
	}
	item, ok := lo.Find(order.Items, func(item models.OrderItem) bool { return item.ID == itemID })
	if !ok {
		return nil, ErrItemNotFound
	}

	switch action {
	case ActionIncrease:
		err = s.orderItemRepo.UpdateQuantity(item.ID, item.Quantity+1)
	case ActionDecrease:
		if item.Quantity > 1 {
			err = s.orderItemRepo.UpdateQuantity(item.ID, item.Quantity-1)
		} else {
			err = s.orderItemRepo.Delete(item.ID)
		}
	case ActionRemove:
		err = s.orderItemRepo.Delete(item.ID)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to adjust order item: %w", err)
	}

	if _, err := s.recomputeTotal(order.ID); err != nil {
		return nil, err
	}
	return s.loadOrder(order.ID)
}

func (s *orderService) CancelByGuest(orderID uint) (bool, error) {
	order, err := s.loadOrder(orderID)
	if err != nil {
		return false, err
	}
	if !lifecycle.CanGuestCancel(order.Status) {
		return false, nil
	}
	if err := s.orderRepo.UpdateStatus(order.ID, models.OrderCancelled); err != nil {
		return false, fmt.Errorf("failed to cancel order: %w", err)
	}
	order.Status = models.OrderCancelled

	err = s.notifier.NotifyTable(order,
		fmt.Sprintf("Order #%d cancelled by the guest at table %d.", order.ID, order.Table.Number),
		fmt.Sprintf("Your order #%d has been cancelled.", order.ID),
	)
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *orderService) GetOrder(id uint) (*models.Order, error) {
	return s.loadOrder(id)
}

func (s *orderService) GetCurrentOrder(tableID uint) (*models.Order, error) {
	order, err := s.orderRepo.GetLatestForTable(tableID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load current order: %w", err)
	}
	return order, nil
}

func (s *orderService) GetActiveOrders(tableID uint) ([]models.Order, error) {
	if _, err := s.tableRepo.GetByID(tableID); err != nil {
		return nil, notFound(err, ErrTableNotFound, "failed to load table")
	}
	return s.orderRepo.GetActiveForTable(tableID, s.now().Add(-s.servedGrace))
}

func (s *orderService) GetHistory(tableID uint) ([]models.Order, error) {
	if _, err := s.tableRepo.GetByID(tableID); err != nil {
		return nil, notFound(err, ErrTableNotFound, "failed to load table")
	}
	return s.orderRepo.GetByTableID(tableID)
}

func (s *orderService) GetRecentOrders(limit int) ([]models.Order, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.orderRepo.GetRecent(limit)
}
