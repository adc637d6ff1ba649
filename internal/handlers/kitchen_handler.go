package handlers

import (
	"net/http"
	"table_order/internal/models"
	"table_order/internal/services"

	"github.com/gin-gonic/gin"
)

type KitchenHandler struct {
	kitchenService services.KitchenService
}

func NewKitchenHandler(kitchenService services.KitchenService) *KitchenHandler {
	return &KitchenHandler{kitchenService: kitchenService}
}

func (h *KitchenHandler) GetBoard(c *gin.Context) {
	orders, err := h.kitchenService.GetBoard()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"orders":   orders,
		"messages": takeFlashes(c),
	})
}

// UpdateItemStatus moves one dish. Disallowed moves are ignored.
func (h *KitchenHandler) UpdateItemStatus(c *gin.Context) {
	itemID, err := paramID(c, "item_id")
	if err != nil {
		redirectWithFlash(c, "/kitchen", err)
		return
	}
	_, err = h.kitchenService.AdvanceItem(itemID, models.ItemStatus(c.PostForm("status")))
	redirectWithFlash(c, "/kitchen", err)
}

func (h *KitchenHandler) UpdateOrderStatus(c *gin.Context) {
	orderID, err := paramID(c, "order_id")
	if err != nil {
		redirectWithFlash(c, "/kitchen", err)
		return
	}
	_, err = h.kitchenService.AdvanceOrder(orderID, models.OrderStatus(c.PostForm("status")))
	redirectWithFlash(c, "/kitchen", err)
}

func (h *KitchenHandler) CancelOrder(c *gin.Context) {
	orderID, err := paramID(c, "order_id")
	if err != nil {
		redirectWithFlash(c, "/kitchen", err)
		return
	}
	withdrawn, err := h.kitchenService.WithdrawOrder(orderID)
	if withdrawn {
		logf(c, "Order #%d withdrawn by user %d", orderID, c.GetUint(contextUserID))
	}
	redirectWithFlash(c, "/kitchen", err)
}
