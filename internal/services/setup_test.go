package services

import (
	"testing"
	"time"

	"table_order/internal/database"
	"table_order/internal/models"
	"table_order/internal/redis"
	"table_order/internal/repository"

	"github.com/alicebob/miniredis/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type fakeQR struct{}

func (fakeQR) PNG(tableID uint) ([]byte, error) { return []byte{0x89, 'P', 'N', 'G'}, nil }
func (fakeQR) WriteFile(tableID, number uint) (string, error) {
	return "qr_codes/qr-test.png", nil
}
func (fakeQR) MenuURL(tableID uint) string { return "http://test/menu/" }

type testEnv struct {
	db    *gorm.DB
	redis *redis.Client
	mr    *miniredis.Miniredis

	orderRepo        repository.OrderRepository
	orderItemRepo    repository.OrderItemRepository
	notificationRepo repository.NotificationRepository
	tableRepo        repository.TableRepository
	catalogRepo      repository.CatalogRepository

	notifications NotificationService
	orders        OrderService
	kitchen       KitchenService
	waiter        WaiterService
	catalog       CatalogService
	tables        TableService
	users         UserService
	reports       ReportService

	table    *models.Table
	couscous *models.MenuItem // 10.00
	tea      *models.MenuItem // 5.00
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, database.Migrate(db))
	return db
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := newTestDB(t)

	mr := miniredis.RunT(t)
	rc, err := redis.Initialize("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { _ = rc.Close() })

	env := &testEnv{
		db:               db,
		redis:            rc,
		mr:               mr,
		orderRepo:        repository.NewOrderRepository(db),
		orderItemRepo:    repository.NewOrderItemRepository(db),
		notificationRepo: repository.NewNotificationRepository(db),
		tableRepo:        repository.NewTableRepository(db),
		catalogRepo:      repository.NewCatalogRepository(db),
	}

	env.notifications = NewNotificationService(env.notificationRepo, rc, time.Hour)
	env.orders = NewOrderService(env.orderRepo, env.orderItemRepo, env.tableRepo, env.catalogRepo, env.notifications, 3*time.Minute)
	env.kitchen = NewKitchenService(env.orderRepo, env.orderItemRepo, env.notifications)
	env.waiter = NewWaiterService(env.orderRepo, env.orderItemRepo, env.notifications)
	env.catalog = NewCatalogService(env.catalogRepo)
	env.tables = NewTableService(env.tableRepo, fakeQR{})
	env.users = NewUserService(repository.NewUserRepository(db), rc, time.Hour)
	env.reports = NewReportService(repository.NewReportRepository(db))

	env.table, err = env.tables.CreateTable(5)
	require.NoError(t, err)

	mains, err := env.catalog.CreateCategory("Mains")
	require.NoError(t, err)
	drinks, err := env.catalog.CreateCategory("Drinks")
	require.NoError(t, err)

	env.couscous = &models.MenuItem{
		Name:        "Couscous",
		Description: "Seven vegetables",
		Price:       decimal.RequireFromString("10.00"),
		CategoryID:  mains.ID,
		Translations: map[string]interface{}{
			"fr": map[string]interface{}{"name": "Couscous royal", "description": "Sept légumes"},
		},
	}
	require.NoError(t, env.catalog.CreateMenuItem(env.couscous))
	env.tea = &models.MenuItem{
		Name:        "Mint tea",
		Description: "Fresh mint",
		Price:       decimal.RequireFromString("5.00"),
		CategoryID:  drinks.ID,
	}
	require.NoError(t, env.catalog.CreateMenuItem(env.tea))
	return env
}

// submitStandard places the reference order: 2 × 10.00 and 1 × 5.00.
func (e *testEnv) submitStandard(t *testing.T) *models.Order {
	t.Helper()
	order, err := e.orders.SubmitOrder(e.table.ID, []OrderLine{
		{MenuItemID: e.couscous.ID, Quantity: 2},
		{MenuItemID: e.tea.ID, Quantity: 1},
	})
	require.NoError(t, err)
	return order
}

func (e *testEnv) reload(t *testing.T, id uint) *models.Order {
	t.Helper()
	order, err := e.orders.GetOrder(id)
	require.NoError(t, err)
	return order
}

func (e *testEnv) notificationCount(t *testing.T, orderID uint) int {
	t.Helper()
	notifications, err := e.notifications.GetByOrder(orderID)
	require.NoError(t, err)
	return len(notifications)
}

func (e *testEnv) setUpdatedAt(t *testing.T, orderID uint, at time.Time) {
	t.Helper()
	require.NoError(t, e.db.Model(&models.Order{}).Where("id = ?", orderID).UpdateColumn("updated_at", at).Error)
}

func (e *testEnv) setCreatedAt(t *testing.T, orderID uint, at time.Time) {
	t.Helper()
	require.NoError(t, e.db.Model(&models.Order{}).Where("id = ?", orderID).UpdateColumn("created_at", at).Error)
}

func assertMoney(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(want).Equal(got), "want %s, got %s", want, got.String())
}

// assertTotalMatchesItems checks the cached total against the current items.
func assertTotalMatchesItems(t *testing.T, order *models.Order) {
	t.Helper()
	assert.True(t, sumItems(order.Items).Equal(order.Total), "cached total %s does not match items %s", order.Total, sumItems(order.Items))
}
