package handlers

import (
	"net/http"
	"table_order/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// Handlers groups every HTTP handler the server exposes.
type Handlers struct {
	Guest   *GuestHandler
	Kitchen *KitchenHandler
	Waiter  *WaiterHandler
	Staff   *StaffHandler
	Auth    *AuthHandler
	Admin   *AdminHandler
}

// SessionOptions configures the signed cookie holding staff logins.
type SessionOptions struct {
	Secret string
	MaxAge int
	Secure bool
}

// NewRouter builds the gin engine with middleware and all routes.
func NewRouter(h *Handlers, opts SessionOptions) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), RequestID())

	store := cookie.NewStore([]byte(opts.Secret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   opts.MaxAge,
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	router.Use(sessions.Sessions("table_order_session", store))

	RegisterRoutes(router, h)
	return router
}

func RegisterRoutes(router *gin.Engine, h *Handlers) {
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Guest endpoints, reached through the table QR code
	menu := router.Group("/menu/:table_id")
	{
		menu.GET("", h.Guest.GetMenu)
		menu.POST("/submit_order", h.Guest.SubmitOrder)
		menu.GET("/history", h.Guest.GetHistory)
		menu.GET("/qr.png", h.Guest.GetQRCode)
	}
	router.GET("/tables/:table_id/orders", h.Guest.GetActiveOrders)
	orders := router.Group("/orders/:order_id")
	{
		orders.GET("/status", h.Guest.GetOrderStatus)
		orders.POST("/items", h.Guest.AdjustItem)
		orders.POST("/cancel", h.Guest.CancelOrder)
	}

	for _, role := range []models.UserRole{models.RoleCook, models.RoleWaiter, models.RoleAdmin} {
		router.GET(loginPath(role), h.Auth.LoginPage(role))
		router.POST(loginPath(role), h.Auth.Login(role))
		router.GET(homePath(role)+"/logout", h.Auth.Logout(role))
	}

	kitchen := router.Group("/kitchen", RequireRole(models.RoleCook))
	{
		kitchen.GET("", h.Kitchen.GetBoard)
		kitchen.POST("/items/:item_id/status", h.Kitchen.UpdateItemStatus)
		kitchen.POST("/orders/:order_id/status", h.Kitchen.UpdateOrderStatus)
		kitchen.POST("/orders/:order_id/cancel", h.Kitchen.CancelOrder)
	}

	waiter := router.Group("/waiter", RequireRole(models.RoleWaiter))
	{
		waiter.GET("", h.Waiter.GetBoard)
		waiter.POST("/orders/:order_id/accept", h.Waiter.AcceptOrder)
		waiter.POST("/items/:item_id/served", h.Waiter.ServeItem)
		waiter.POST("/orders/:order_id/served", h.Waiter.ServeOrder)
		waiter.POST("/orders/:order_id/paid", h.Waiter.MarkPaid)
	}

	staff := router.Group("/staff", RequireRole(models.RoleWaiter, models.RoleCook))
	{
		staff.GET("/notifications", h.Staff.GetNotifications)
		staff.POST("/notifications/seen", h.Staff.MarkAllSeen)
		staff.POST("/notifications/:id/seen", h.Staff.MarkSeen)
	}

	admin := router.Group("/admin", RequireRole(models.RoleAdmin))
	{
		admin.GET("/revenue", h.Admin.GetRevenue)
		admin.GET("/staff", h.Admin.GetStaff)
		admin.GET("/staff/:id", h.Admin.GetStaffMember)
		admin.GET("/tables", h.Admin.GetTables)
		admin.GET("/orders", h.Admin.GetOrders)
		admin.POST("/tables", h.Admin.CreateTable)
		admin.POST("/categories", h.Admin.CreateCategory)
		admin.POST("/menu-items", h.Admin.CreateMenuItem)
	}
}
