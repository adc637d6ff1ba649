package lifecycle

import (
	"testing"

	"table_order/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestCanKitchenMoveItem(t *testing.T) {
	tests := []struct {
		from, to models.ItemStatus
		allowed  bool
	}{
		{models.ItemNew, models.ItemPreparing, true},
		{models.ItemNew, models.ItemReady, true},
		{models.ItemPreparing, models.ItemReady, true},
		{models.ItemPreparing, models.ItemNew, false},
		{models.ItemReady, models.ItemPreparing, false},
		{models.ItemReady, models.ItemServed, false},
		{models.ItemNew, models.ItemServed, false},
		{models.ItemNew, models.ItemNew, false},
		{models.ItemNew, "burnt", false},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.allowed, CanKitchenMoveItem(tt.from, tt.to))
		})
	}
}

func TestCanKitchenMoveOrder(t *testing.T) {
	assert.True(t, CanKitchenMoveOrder(models.OrderNew, models.OrderPreparing))
	assert.True(t, CanKitchenMoveOrder(models.OrderNew, models.OrderReady))
	assert.True(t, CanKitchenMoveOrder(models.OrderPreparing, models.OrderReady))
	assert.False(t, CanKitchenMoveOrder(models.OrderPendingWaiter, models.OrderPreparing))
	assert.False(t, CanKitchenMoveOrder(models.OrderReady, models.OrderServed))
	assert.False(t, CanKitchenMoveOrder(models.OrderCancelled, models.OrderReady))
}

func TestCancellationRules(t *testing.T) {
	all := []models.OrderStatus{
		models.OrderPendingWaiter, models.OrderNew, models.OrderPreparing,
		models.OrderReady, models.OrderServed, models.OrderCancelled,
	}
	for _, s := range all {
		assert.Equal(t, s == models.OrderPendingWaiter, CanGuestCancel(s), s)
		assert.Equal(t, s == models.OrderPendingWaiter, CanAdjust(s), s)
		assert.Equal(t, s == models.OrderPendingWaiter, CanAccept(s), s)
	}
	assert.True(t, CanStaffCancel(models.OrderNew))
	assert.True(t, CanStaffCancel(models.OrderPreparing))
	assert.False(t, CanStaffCancel(models.OrderReady))
	assert.False(t, CanStaffCancel(models.OrderServed))
	assert.False(t, CanStaffCancel(models.OrderCancelled))
}

func TestReconcile(t *testing.T) {
	tests := []struct {
		name    string
		current models.OrderStatus
		items   []models.ItemStatus
		want    models.OrderStatus
		changed bool
	}{
		{"unanimous ready", models.OrderNew, []models.ItemStatus{models.ItemReady, models.ItemReady}, models.OrderReady, true},
		{"unanimous served", models.OrderReady, []models.ItemStatus{models.ItemServed}, models.OrderServed, true},
		{"mixed keeps status", models.OrderNew, []models.ItemStatus{models.ItemReady, models.ItemNew}, models.OrderNew, false},
		{"already agrees", models.OrderPreparing, []models.ItemStatus{models.ItemPreparing}, models.OrderPreparing, false},
		{"empty order", models.OrderNew, nil, models.OrderNew, false},
		{"pending waiter untouched", models.OrderPendingWaiter, []models.ItemStatus{models.ItemNew}, models.OrderPendingWaiter, false},
		{"cancelled untouched", models.OrderCancelled, []models.ItemStatus{models.ItemReady}, models.OrderCancelled, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := Reconcile(tt.current, tt.items)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.changed, changed)
		})
	}
}

func TestReconcileIsIdempotent(t *testing.T) {
	items := []models.ItemStatus{models.ItemReady, models.ItemReady}
	first, _ := Reconcile(models.OrderPreparing, items)
	second, changed := Reconcile(first, items)
	assert.Equal(t, first, second)
	assert.False(t, changed)
}

func TestNotifies(t *testing.T) {
	assert.True(t, Notifies(models.OrderPreparing, models.OrderReady))
	assert.True(t, Notifies(models.OrderReady, models.OrderServed))
	assert.False(t, Notifies(models.OrderReady, models.OrderReady))
	assert.False(t, Notifies(models.OrderNew, models.OrderPreparing))
}

func TestSortItems(t *testing.T) {
	items := []models.OrderItem{
		{ID: 1, Status: models.ItemServed},
		{ID: 2, Status: models.ItemReady},
		{ID: 3, Status: models.ItemNew},
		{ID: 4, Status: models.ItemPreparing},
		{ID: 5, Status: models.ItemNew},
	}
	SortItems(items)

	ids := make([]uint, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}
	assert.Equal(t, []uint{3, 5, 4, 2, 1}, ids)
}
