package handlers

import (
	"fmt"
	"net/http"
	"net/url"

	"table_order/internal/models"

	"github.com/gin-gonic/gin"
)

func (s *HandlerSuite) TestStaffRoutesRequireLogin() {
	for _, tc := range []struct {
		method, path, login string
	}{
		{http.MethodGet, "/kitchen", "/kitchen/login"},
		{http.MethodPost, "/kitchen/orders/1/cancel", "/kitchen/login"},
		{http.MethodGet, "/waiter", "/waiter/login"},
		{http.MethodGet, "/staff/notifications", "/waiter/login"},
		{http.MethodGet, "/admin/revenue", "/admin/login"},
	} {
		w := s.do(tc.method, tc.path, nil, nil)
		s.Equal(http.StatusSeeOther, w.Code, tc.path)
		s.Equal(tc.login, w.Header().Get("Location"), tc.path)
	}
}

func (s *HandlerSuite) TestLoginChecksRole() {
	w := s.do(http.MethodPost, "/waiter/login", url.Values{"username": {"cook"}, "password": {"pw"}}, nil)
	s.Equal(http.StatusUnauthorized, w.Code)
	s.NotEmpty(s.decode(w)["error"])

	w = s.do(http.MethodPost, "/kitchen/login", url.Values{"username": {"cook"}, "password": {"nope"}}, nil)
	s.Equal(http.StatusUnauthorized, w.Code)

	cookies := s.login(models.RoleCook, "cook")
	// a cook session does not open the waiter board
	w = s.do(http.MethodGet, "/waiter", nil, cookies)
	s.Equal(http.StatusSeeOther, w.Code)
	w = s.do(http.MethodGet, "/kitchen", nil, cookies)
	s.Equal(http.StatusOK, w.Code)
}

func (s *HandlerSuite) TestLogoutRecordsEvents() {
	cookies := s.login(models.RoleWaiter, "waiter")
	w := s.do(http.MethodGet, "/waiter/logout", nil, cookies)
	s.Equal(http.StatusSeeOther, w.Code)
	s.Equal("/waiter/login", w.Header().Get("Location"))

	user, err := s.users.GetUserByUsername("waiter")
	s.Require().NoError(err)
	events, err := s.users.GetSessionEvents(user.ID)
	s.Require().NoError(err)
	s.Require().Len(events, 2)
	s.Equal(models.SessionLogin, events[0].Kind)
	s.Equal(models.SessionLogout, events[1].Kind)
}

func (s *HandlerSuite) TestKitchenAndWaiterFlow() {
	orderID := s.submit(gin.H{"item_id": s.couscous.ID, "quantity": 2}, gin.H{"item_id": s.tea.ID})
	waiter := s.login(models.RoleWaiter, "waiter")
	cook := s.login(models.RoleCook, "cook")

	board := s.decode(s.do(http.MethodGet, "/waiter", nil, waiter))
	s.Len(board["pending_orders"], 1)

	w := s.do(http.MethodPost, fmt.Sprintf("/waiter/orders/%d/accept", orderID), nil, waiter)
	s.Equal(http.StatusSeeOther, w.Code)
	s.Equal("/waiter", w.Header().Get("Location"))
	s.Equal(models.OrderNew, s.reload(orderID).Status)

	kitchen := s.decode(s.do(http.MethodGet, "/kitchen", nil, cook))
	s.Len(kitchen["orders"], 1)

	order := s.reload(orderID)
	w = s.do(http.MethodPost, fmt.Sprintf("/kitchen/items/%d/status", order.Items[0].ID), url.Values{"status": {"ready"}}, cook)
	s.Equal(http.StatusSeeOther, w.Code)
	s.Equal("/kitchen", w.Header().Get("Location"))
	s.Equal(models.OrderNew, s.reload(orderID).Status)

	w = s.do(http.MethodPost, fmt.Sprintf("/kitchen/orders/%d/status", orderID), url.Values{"status": {"ready"}}, cook)
	s.Equal(http.StatusSeeOther, w.Code)
	s.Equal(models.OrderReady, s.reload(orderID).Status)

	board = s.decode(s.do(http.MethodGet, "/waiter", nil, waiter))
	s.Len(board["ready_orders"], 1)
	s.Len(board["orders_to_pay"], 1)

	w = s.do(http.MethodPost, fmt.Sprintf("/waiter/orders/%d/served", orderID), nil, waiter)
	s.Equal(http.StatusSeeOther, w.Code)
	s.Equal(models.OrderServed, s.reload(orderID).Status)

	w = s.do(http.MethodPost, fmt.Sprintf("/waiter/orders/%d/paid", orderID), nil, waiter)
	s.Equal(http.StatusSeeOther, w.Code)
	s.True(s.reload(orderID).IsPaid)

	notifications := s.decode(s.do(http.MethodGet, "/staff/notifications", nil, cook))
	s.Len(notifications["notifications"], 3, "paid flag is a snapshot")
	s.Equal(float64(3), notifications["unseen_count"])
}

func (s *HandlerSuite) TestStaffErrorsBecomeFlashes() {
	cook := s.login(models.RoleCook, "cook")

	w := s.do(http.MethodPost, "/kitchen/orders/999/cancel", nil, cook)
	s.Equal(http.StatusSeeOther, w.Code)
	cookies := w.Result().Cookies()
	s.Require().NotEmpty(cookies)

	board := s.decode(s.do(http.MethodGet, "/kitchen", nil, cookies))
	messages := board["messages"].([]interface{})
	s.Require().Len(messages, 1)
	s.Contains(messages[0], "not found")
}

func (s *HandlerSuite) TestKitchenWithdraw() {
	orderID := s.submit(gin.H{"item_id": s.tea.ID})
	cook := s.login(models.RoleCook, "cook")

	w := s.do(http.MethodPost, fmt.Sprintf("/kitchen/orders/%d/cancel", orderID), nil, cook)
	s.Equal(http.StatusSeeOther, w.Code)
	s.Equal(models.OrderCancelled, s.reload(orderID).Status)

	body := s.decode(s.do(http.MethodGet, fmt.Sprintf("/menu/%d", s.table.ID), nil, nil))
	s.Contains(body["notification_message"], "cancelled by the restaurant")
}

func (s *HandlerSuite) TestMarkNotificationsSeen() {
	s.submit(gin.H{"item_id": s.tea.ID})
	waiter := s.login(models.RoleWaiter, "waiter")

	body := s.decode(s.do(http.MethodGet, "/staff/notifications", nil, waiter))
	list := body["notifications"].([]interface{})
	s.Require().Len(list, 1)
	id := uint(list[0].(map[string]interface{})["id"].(float64))

	w := s.do(http.MethodPost, fmt.Sprintf("/staff/notifications/%d/seen", id), nil, waiter)
	s.Equal(http.StatusOK, w.Code)
	body = s.decode(s.do(http.MethodGet, "/staff/notifications", nil, waiter))
	s.Equal(float64(0), body["unseen_count"])

	w = s.do(http.MethodPost, "/staff/notifications/999/seen", nil, waiter)
	s.Equal(http.StatusNotFound, w.Code)

	w = s.do(http.MethodPost, "/staff/notifications/seen", nil, waiter)
	s.Equal(http.StatusOK, w.Code)
}

func (s *HandlerSuite) TestAdminEndpoints() {
	admin := s.login(models.RoleAdmin, "admin")

	w := s.do(http.MethodPost, "/admin/tables", gin.H{"number": 9}, admin)
	s.Equal(http.StatusCreated, w.Code, w.Body.String())
	body := s.decode(w)
	s.Contains(body["menu_url"], "/menu/")

	w = s.do(http.MethodPost, "/admin/tables", gin.H{"number": 0}, admin)
	s.Equal(http.StatusBadRequest, w.Code)

	w = s.do(http.MethodPost, "/admin/tables", gin.H{"number": 9}, admin)
	s.Equal(http.StatusConflict, w.Code)

	tables := s.decode(s.do(http.MethodGet, "/admin/tables", nil, admin))
	s.Len(tables["tables"], 2)

	w = s.do(http.MethodPost, "/admin/categories", gin.H{"name": "Desserts"}, admin)
	s.Equal(http.StatusCreated, w.Code)
	categoryID := s.decode(w)["id"].(float64)

	w = s.do(http.MethodPost, "/admin/menu-items", gin.H{
		"name":         "Chebakia",
		"price":        "3.50",
		"category_id":  categoryID,
		"translations": gin.H{"fr": gin.H{"name": "Chebakia au miel"}},
	}, admin)
	s.Equal(http.StatusCreated, w.Code, w.Body.String())

	body = s.decode(s.do(http.MethodGet, fmt.Sprintf("/menu/%d?lang=fr&search=chebakia", s.table.ID), nil, nil))
	categories := body["categories"].([]interface{})
	s.Require().Len(categories, 1)
	items := categories[0].(map[string]interface{})["items"].([]interface{})
	s.Equal("Chebakia au miel", items[0].(map[string]interface{})["name"])

	w = s.do(http.MethodPost, "/admin/menu-items", gin.H{"name": "Ghost", "price": "1", "category_id": 999}, admin)
	s.Equal(http.StatusNotFound, w.Code)

	w = s.do(http.MethodGet, "/admin/revenue", nil, admin)
	s.Equal(http.StatusOK, w.Code)
	s.Contains(s.decode(w), "last_7_days")

	staff := s.decode(s.do(http.MethodGet, "/admin/staff", nil, admin))
	s.Len(staff["staff"], 3)

	user, err := s.users.GetUserByUsername("admin")
	s.Require().NoError(err)
	member := s.decode(s.do(http.MethodGet, fmt.Sprintf("/admin/staff/%d", user.ID), nil, admin))
	s.Equal("admin", member["user"].(map[string]interface{})["username"])
	s.Len(member["events"], 1)

	w = s.do(http.MethodGet, "/admin/staff/999", nil, admin)
	s.Equal(http.StatusNotFound, w.Code)

	w = s.do(http.MethodGet, "/admin/orders", nil, admin)
	s.Equal(http.StatusOK, w.Code)
}
