package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"table_order/internal/models"
	"table_order/internal/services"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type AdminHandler struct {
	reportService  services.ReportService
	userService    services.UserService
	tableService   services.TableService
	catalogService services.CatalogService
	orderService   services.OrderService
}

func NewAdminHandler(
	reportService services.ReportService,
	userService services.UserService,
	tableService services.TableService,
	catalogService services.CatalogService,
	orderService services.OrderService,
) *AdminHandler {
	return &AdminHandler{
		reportService:  reportService,
		userService:    userService,
		tableService:   tableService,
		catalogService: catalogService,
		orderService:   orderService,
	}
}

type CreateTableRequest struct {
	Number uint `json:"number" binding:"required,min=1"`
}

type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

type CreateMenuItemRequest struct {
	Name         string                 `json:"name" binding:"required"`
	Description  string                 `json:"description"`
	Price        decimal.Decimal        `json:"price"`
	Image        string                 `json:"image"`
	CategoryID   uint                   `json:"category_id" binding:"required"`
	Translations map[string]interface{} `json:"translations"`
}

func (h *AdminHandler) GetRevenue(c *gin.Context) {
	report, err := h.reportService.Revenue(time.Now())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *AdminHandler) GetStaff(c *gin.Context) {
	staff, err := h.userService.GetStaffPresence()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"staff": staff})
}

func (h *AdminHandler) GetStaffMember(c *gin.Context) {
	userID, err := paramID(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}
	user, err := h.userService.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		respondError(c, err)
		return
	}
	events, err := h.userService.GetSessionEvents(user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"user":   user,
		"events": events,
	})
}

func (h *AdminHandler) GetTables(c *gin.Context) {
	tables, err := h.tableService.GetTables()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"tables": lo.Map(tables, func(table models.Table, _ int) gin.H {
			return gin.H{
				"table":    table,
				"menu_url": h.tableService.MenuURL(table.ID),
			}
		}),
	})
}

func (h *AdminHandler) CreateTable(c *gin.Context) {
	var req CreateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	table, err := h.tableService.CreateTable(req.Number)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"table":    table,
		"menu_url": h.tableService.MenuURL(table.ID),
	})
}

func (h *AdminHandler) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	category, err := h.catalogService.CreateCategory(req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

func (h *AdminHandler) CreateMenuItem(c *gin.Context) {
	var req CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	item := &models.MenuItem{
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		Image:        req.Image,
		CategoryID:   req.CategoryID,
		Translations: req.Translations,
	}
	if err := h.catalogService.CreateMenuItem(item); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *AdminHandler) GetOrders(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	orders, err := h.orderService.GetRecentOrders(limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}
