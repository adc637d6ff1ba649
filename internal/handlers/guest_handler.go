package handlers

import (
	"errors"
	"net/http"
	"table_order/internal/models"
	"table_order/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
)

type GuestHandler struct {
	orderService        services.OrderService
	catalogService      services.CatalogService
	tableService        services.TableService
	notificationService services.NotificationService
}

func NewGuestHandler(
	orderService services.OrderService,
	catalogService services.CatalogService,
	tableService services.TableService,
	notificationService services.NotificationService,
) *GuestHandler {
	return &GuestHandler{
		orderService:        orderService,
		catalogService:      catalogService,
		tableService:        tableService,
		notificationService: notificationService,
	}
}

type SubmitOrderRequest struct {
	Items []SubmitOrderLine `json:"items" binding:"dive"`
}

type SubmitOrderLine struct {
	ItemID   uint `json:"item_id" binding:"required"`
	Quantity *int `json:"quantity"`
}

type AdjustItemRequest struct {
	ItemID uint   `json:"item_id" binding:"required"`
	Action string `json:"action" binding:"required"`
}

type activeOrderItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type activeOrder struct {
	ID         uint              `json:"id"`
	CreatedAt  string            `json:"created_at"`
	Status     string            `json:"status"`
	TotalPrice float64           `json:"total_price"`
	Items      []activeOrderItem `json:"items"`
}

func (h *GuestHandler) GetMenu(c *gin.Context) {
	table, ok := h.table(c)
	if !ok {
		return
	}

	categories, err := h.catalogService.GetMenu(c.Query("search"), c.Query("lang"))
	if err != nil {
		respondError(c, err)
		return
	}
	order, err := h.orderService.GetCurrentOrder(table.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	var message interface{}
	if text, found, err := h.notificationService.TakeTableMessage(table.ID); err != nil {
		logf(c, "Warning: failed to read mailbox for table %d: %v", table.ID, err)
	} else if found {
		message = text
	}

	c.JSON(http.StatusOK, gin.H{
		"table":                table,
		"categories":           categories,
		"order":                order,
		"notification_message": message,
		"search":               c.Query("search"),
	})
}

func (h *GuestHandler) SubmitOrder(c *gin.Context) {
	tableID, err := paramID(c, "table_id")
	if err != nil {
		respondError(c, err)
		return
	}

	var req SubmitOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	lines := lo.Map(req.Items, func(line SubmitOrderLine, _ int) services.OrderLine {
		quantity := 1
		if line.Quantity != nil {
			quantity = *line.Quantity
		}
		return services.OrderLine{MenuItemID: line.ItemID, Quantity: quantity}
	})

	order, err := h.orderService.SubmitOrder(tableID, lines)
	if err != nil {
		respondError(c, err)
		return
	}
	logf(c, "Order #%d submitted for table %d", order.ID, tableID)

	c.JSON(http.StatusOK, gin.H{
		"status":   "success",
		"order_id": order.ID,
	})
}

func (h *GuestHandler) GetHistory(c *gin.Context) {
	table, ok := h.table(c)
	if !ok {
		return
	}
	orders, err := h.orderService.GetHistory(table.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"table":  table,
		"orders": orders,
	})
}

func (h *GuestHandler) GetQRCode(c *gin.Context) {
	tableID, err := paramID(c, "table_id")
	if err != nil {
		respondError(c, err)
		return
	}
	png, err := h.tableService.QRCode(tableID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

func (h *GuestHandler) GetActiveOrders(c *gin.Context) {
	tableID, err := paramID(c, "table_id")
	if err != nil {
		respondError(c, err)
		return
	}
	orders, err := h.orderService.GetActiveOrders(tableID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"orders": lo.Map(orders, func(order models.Order, _ int) activeOrder {
			return activeOrder{
				ID:         order.ID,
				CreatedAt:  order.CreatedAt.Format("02/01/2006 15:04"),
				Status:     string(order.Status),
				TotalPrice: order.Total.InexactFloat64(),
				Items: lo.Map(order.Items, func(item models.OrderItem, _ int) activeOrderItem {
					return activeOrderItem{
						Name:     item.MenuItem.Name,
						Quantity: item.Quantity,
						Price:    item.MenuItem.Price.InexactFloat64(),
					}
				}),
			}
		}),
	})
}

func (h *GuestHandler) GetOrderStatus(c *gin.Context) {
	orderID, err := paramID(c, "order_id")
	if err != nil {
		respondError(c, err)
		return
	}
	order, err := h.orderService.GetOrder(orderID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": order.Status})
}

func (h *GuestHandler) AdjustItem(c *gin.Context) {
	orderID, err := paramID(c, "order_id")
	if err != nil {
		respondError(c, err)
		return
	}
	var req AdjustItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request format"})
		return
	}

	order, err := h.orderService.AdjustItem(orderID, req.ItemID, req.Action)
	if err != nil {
		if errors.Is(err, services.ErrOrderLocked) {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "Order can no longer be modified"})
			return
		}
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			respondError(c, err)
			return
		}
		c.JSON(status, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"total":   order.Total.StringFixed(2),
		"items":   order.Items,
	})
}

func (h *GuestHandler) CancelOrder(c *gin.Context) {
	orderID, err := paramID(c, "order_id")
	if err != nil {
		respondError(c, err)
		return
	}
	cancelled, err := h.orderService.CancelByGuest(orderID)
	if err != nil {
		respondError(c, err)
		return
	}
	if !cancelled {
		c.JSON(http.StatusOK, gin.H{
			"success": false,
			"message": "Order can no longer be cancelled",
		})
		return
	}
	logf(c, "Order #%d cancelled by guest", orderID)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// table resolves :table_id and writes the error response when it cannot.
func (h *GuestHandler) table(c *gin.Context) (*models.Table, bool) {
	tableID, err := paramID(c, "table_id")
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	table, err := h.tableService.GetTable(tableID)
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	return table, true
}
