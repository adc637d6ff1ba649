package handlers

import (
	"errors"
	"net/http"
	"table_order/internal/models"
	"table_order/internal/services"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// AuthHandler logs staff in and out of their role's interface.
type AuthHandler struct {
	userService services.UserService
}

func NewAuthHandler(userService services.UserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

func (h *AuthHandler) LoginPage(role models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"role":     role,
			"action":   loginPath(role),
			"messages": takeFlashes(c),
		})
	}
}

func (h *AuthHandler) Login(role models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := h.userService.Authenticate(c.PostForm("username"), c.PostForm("password"), role)
		if err != nil {
			if errors.Is(err, services.ErrInvalidCredentials) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials or access denied"})
				return
			}
			respondError(c, err)
			return
		}

		session := sessions.Default(c)
		session.Clear()
		session.Set(sessionUserID, user.ID)
		session.Set(sessionRole, string(user.Role))
		if err := session.Save(); err != nil {
			respondError(c, err)
			return
		}
		if err := h.userService.RecordLogin(user, c.ClientIP()); err != nil {
			logf(c, "Warning: failed to record login for %s: %v", user.Username, err)
		}
		logf(c, "User %s logged in as %s", user.Username, role)

		target := homePath(role)
		if role == models.RoleAdmin {
			target = "/admin/revenue"
		}
		c.Redirect(http.StatusSeeOther, target)
	}
}

func (h *AuthHandler) Logout(role models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		userID, _ := session.Get(sessionUserID).(uint)
		sessionRoleName, _ := session.Get(sessionRole).(string)
		if userID != 0 {
			if err := h.userService.RecordLogout(userID, models.UserRole(sessionRoleName), c.ClientIP()); err != nil {
				logf(c, "Warning: failed to record logout for user %d: %v", userID, err)
			}
		}
		session.Clear()
		if err := session.Save(); err != nil {
			logf(c, "Warning: failed to save session: %v", err)
		}
		c.Redirect(http.StatusSeeOther, loginPath(role))
	}
}
