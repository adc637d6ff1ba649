package handlers

import (
	"fmt"
	"net/http"

	"table_order/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func (s *HandlerSuite) TestSubmitOrder() {
	orderID := s.submit(
		gin.H{"item_id": s.couscous.ID, "quantity": 2},
		gin.H{"item_id": s.tea.ID},
	)
	order := s.reload(orderID)
	s.Equal(models.OrderPendingWaiter, order.Status)
	s.True(decimal.NewFromInt(25).Equal(order.Total), order.Total.String())
	s.Len(order.Items, 2)
	s.Equal(1, order.Items[1].Quantity, "missing quantity defaults to 1")
}

func (s *HandlerSuite) TestSubmitOrderErrors() {
	path := fmt.Sprintf("/menu/%d/submit_order", s.table.ID)

	w := s.do(http.MethodPost, path, gin.H{"items": []gin.H{}}, nil)
	s.Equal(http.StatusBadRequest, w.Code)

	w = s.do(http.MethodPost, path, gin.H{"items": []gin.H{{"item_id": s.tea.ID, "quantity": 0}}}, nil)
	s.Equal(http.StatusBadRequest, w.Code)

	w = s.do(http.MethodPost, path, gin.H{"items": []gin.H{{"quantity": 1}}}, nil)
	s.Equal(http.StatusBadRequest, w.Code)

	w = s.do(http.MethodPost, "/menu/999/submit_order", gin.H{"items": []gin.H{{"item_id": s.tea.ID}}}, nil)
	s.Equal(http.StatusNotFound, w.Code)

	w = s.do(http.MethodPost, "/menu/abc/submit_order", gin.H{"items": []gin.H{{"item_id": s.tea.ID}}}, nil)
	s.Equal(http.StatusBadRequest, w.Code)

	s.submit(gin.H{"item_id": s.tea.ID})
	w = s.do(http.MethodPost, path, gin.H{"items": []gin.H{{"item_id": s.tea.ID}}}, nil)
	s.Equal(http.StatusConflict, w.Code)
}

func (s *HandlerSuite) TestMenuDeliversMailboxOnce() {
	orderID := s.submit(gin.H{"item_id": s.tea.ID})
	w := s.do(http.MethodPost, fmt.Sprintf("/orders/%d/cancel", orderID), nil, nil)
	s.Equal(http.StatusOK, w.Code)
	s.Equal(true, s.decode(w)["success"])

	path := fmt.Sprintf("/menu/%d", s.table.ID)
	body := s.decode(s.do(http.MethodGet, path, nil, nil))
	s.Contains(body["notification_message"], "cancelled")
	s.Nil(body["order"], "cancelled orders are not the current order")
	s.Len(body["categories"], 2)

	body = s.decode(s.do(http.MethodGet, path, nil, nil))
	s.Nil(body["notification_message"])
}

func (s *HandlerSuite) TestMenuSearch() {
	body := s.decode(s.do(http.MethodGet, fmt.Sprintf("/menu/%d?search=tea", s.table.ID), nil, nil))
	categories := body["categories"].([]interface{})
	s.Len(categories, 1)
	s.Equal("Drinks", categories[0].(map[string]interface{})["name"])

	w := s.do(http.MethodGet, "/menu/404", nil, nil)
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *HandlerSuite) TestCancelAfterAcceptIsRefused() {
	orderID := s.submit(gin.H{"item_id": s.tea.ID})
	_, err := s.waiter.Accept(orderID)
	s.Require().NoError(err)

	body := s.decode(s.do(http.MethodPost, fmt.Sprintf("/orders/%d/cancel", orderID), nil, nil))
	s.Equal(false, body["success"])
	s.Equal(models.OrderNew, s.reload(orderID).Status)

	w := s.do(http.MethodPost, "/orders/999/cancel", nil, nil)
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *HandlerSuite) TestAdjustItem() {
	orderID := s.submit(gin.H{"item_id": s.couscous.ID, "quantity": 2}, gin.H{"item_id": s.tea.ID, "quantity": 1})
	order := s.reload(orderID)
	path := fmt.Sprintf("/orders/%d/items", orderID)

	body := s.decode(s.do(http.MethodPost, path, gin.H{"item_id": order.Items[1].ID, "action": "decrease"}, nil))
	s.Equal(true, body["success"])
	s.Equal("20.00", body["total"])
	s.Len(s.reload(orderID).Items, 1)

	w := s.do(http.MethodPost, path, gin.H{"item_id": order.Items[0].ID, "action": "explode"}, nil)
	s.Equal(http.StatusBadRequest, w.Code)

	_, err := s.waiter.Accept(orderID)
	s.Require().NoError(err)
	body = s.decode(s.do(http.MethodPost, path, gin.H{"item_id": order.Items[0].ID, "action": "increase"}, nil))
	s.Equal(false, body["success"])
	s.Equal(2, s.reload(orderID).Items[0].Quantity)
}

func (s *HandlerSuite) TestOrderStatusAndActiveOrders() {
	orderID := s.submit(gin.H{"item_id": s.couscous.ID, "quantity": 2})

	body := s.decode(s.do(http.MethodGet, fmt.Sprintf("/orders/%d/status", orderID), nil, nil))
	s.Equal(string(models.OrderPendingWaiter), body["status"])

	w := s.do(http.MethodGet, "/orders/999/status", nil, nil)
	s.Equal(http.StatusNotFound, w.Code)

	body = s.decode(s.do(http.MethodGet, fmt.Sprintf("/tables/%d/orders", s.table.ID), nil, nil))
	orders := body["orders"].([]interface{})
	s.Require().Len(orders, 1)
	order := orders[0].(map[string]interface{})
	s.Equal(float64(20), order["total_price"])
	items := order["items"].([]interface{})
	s.Require().Len(items, 1)
	item := items[0].(map[string]interface{})
	s.Equal("Couscous", item["name"])
	s.Equal(float64(2), item["quantity"])
	s.Equal(float64(10), item["price"])

	w = s.do(http.MethodGet, "/tables/999/orders", nil, nil)
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *HandlerSuite) TestHistoryAndQRCode() {
	s.submit(gin.H{"item_id": s.tea.ID})
	body := s.decode(s.do(http.MethodGet, fmt.Sprintf("/menu/%d/history", s.table.ID), nil, nil))
	s.Len(body["orders"], 1)

	w := s.do(http.MethodGet, fmt.Sprintf("/menu/%d/qr.png", s.table.ID), nil, nil)
	s.Equal(http.StatusOK, w.Code)
	s.Equal("image/png", w.Header().Get("Content-Type"))
	s.Equal([]byte("\x89PNG"), w.Body.Bytes()[:4])
}
