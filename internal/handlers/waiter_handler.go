package handlers

import (
	"net/http"
	"table_order/internal/services"

	"github.com/gin-gonic/gin"
)

type WaiterHandler struct {
	waiterService services.WaiterService
}

func NewWaiterHandler(waiterService services.WaiterService) *WaiterHandler {
	return &WaiterHandler{waiterService: waiterService}
}

func (h *WaiterHandler) GetBoard(c *gin.Context) {
	board, err := h.waiterService.GetBoard()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"pending_orders": board.PendingOrders,
		"ready_orders":   board.ReadyOrders,
		"orders_to_pay":  board.OrdersToPay,
		"messages":       takeFlashes(c),
	})
}

func (h *WaiterHandler) AcceptOrder(c *gin.Context) {
	orderID, err := paramID(c, "order_id")
	if err == nil {
		_, err = h.waiterService.Accept(orderID)
	}
	redirectWithFlash(c, "/waiter", err)
}

func (h *WaiterHandler) ServeItem(c *gin.Context) {
	itemID, err := paramID(c, "item_id")
	if err == nil {
		_, err = h.waiterService.ServeItem(itemID)
	}
	redirectWithFlash(c, "/waiter", err)
}

func (h *WaiterHandler) ServeOrder(c *gin.Context) {
	orderID, err := paramID(c, "order_id")
	if err == nil {
		_, err = h.waiterService.ServeAllReady(orderID)
	}
	redirectWithFlash(c, "/waiter", err)
}

func (h *WaiterHandler) MarkPaid(c *gin.Context) {
	orderID, err := paramID(c, "order_id")
	if err == nil {
		err = h.waiterService.MarkPaid(orderID)
	}
	if err == nil {
		logf(c, "Order #%d marked paid by user %d", orderID, c.GetUint(contextUserID))
	}
	redirectWithFlash(c, "/waiter", err)
}
