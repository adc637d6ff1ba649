// Package lifecycle holds the order and order item transition rules.
//
// Nothing here touches storage: services load the aggregate, ask these
// functions what is allowed, and persist the outcome. A rejected transition
// is reported as false and never as an error.
package lifecycle

import (
	"sort"

	"table_order/internal/models"

	"github.com/samber/lo"
)

// kitchenSteps lists the forward moves the kitchen may make, for items and
// (by the same names) for whole orders.
var kitchenSteps = map[string][]string{
	"new":       {"preparing", "ready"},
	"preparing": {"ready"},
}

// CanKitchenMoveItem reports whether the kitchen may move an item from one status to another.
func CanKitchenMoveItem(from, to models.ItemStatus) bool {
	return lo.Contains(kitchenSteps[string(from)], string(to))
}

// CanKitchenMoveOrder reports whether the kitchen may move a whole order.
func CanKitchenMoveOrder(from, to models.OrderStatus) bool {
	return lo.Contains(kitchenSteps[string(from)], string(to))
}

// KitchenOwns reports whether an order is on the kitchen board, i.e. accepted
// by a waiter and not finished.
func KitchenOwns(status models.OrderStatus) bool {
	switch status {
	case models.OrderNew, models.OrderPreparing, models.OrderReady:
		return true
	}
	return false
}

func CanAccept(status models.OrderStatus) bool {
	return status == models.OrderPendingWaiter
}

// CanServeItem: only ready dishes can be brought to the table.
func CanServeItem(status models.ItemStatus) bool {
	return status == models.ItemReady
}

func CanGuestCancel(status models.OrderStatus) bool {
	return status == models.OrderPendingWaiter
}

// CanStaffCancel reports whether staff may withdraw an order. Dishes that are
// ready or served cannot be withdrawn.
func CanStaffCancel(status models.OrderStatus) bool {
	switch status {
	case models.OrderPendingWaiter, models.OrderNew, models.OrderPreparing:
		return true
	}
	return false
}

// CanAdjust reports whether the guest may still edit quantities.
func CanAdjust(status models.OrderStatus) bool {
	return status == models.OrderPendingWaiter
}

// Reconcile returns the status an order must take given its items. When every
// item shares one status the order takes it; otherwise, for empty orders, and
// for orders still waiting for the waiter or cancelled, the current status is
// kept. The second result reports whether the status changes.
func Reconcile(current models.OrderStatus, items []models.ItemStatus) (models.OrderStatus, bool) {
	if len(items) == 0 || current == models.OrderPendingWaiter || current == models.OrderCancelled {
		return current, false
	}
	if len(lo.Uniq(items)) != 1 {
		return current, false
	}
	next := models.OrderStatus(items[0])
	return next, next != current
}

// Notifies reports whether moving an order between the two statuses must be
// logged for staff.
func Notifies(from, to models.OrderStatus) bool {
	return from != to && (to == models.OrderReady || to == models.OrderServed)
}

// Priority orders items for the kitchen: new first, served last.
func Priority(status models.ItemStatus) int {
	switch status {
	case models.ItemNew:
		return 0
	case models.ItemPreparing:
		return 1
	case models.ItemReady:
		return 2
	}
	return 3
}

// SortItems sorts items in place by kitchen priority, keeping insertion order
// among equals.
func SortItems(items []models.OrderItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return Priority(items[i].Status) < Priority(items[j].Status)
	})
}

// Statuses extracts the item statuses of an order.
func Statuses(items []models.OrderItem) []models.ItemStatus {
	return lo.Map(items, func(item models.OrderItem, _ int) models.ItemStatus {
		return item.Status
	})
}
