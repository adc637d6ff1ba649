package handlers

import (
	"log"
	"net/http"
	"table_order/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"

	sessionUserID = "user_id"
	sessionRole   = "role"

	contextUserID = "user_id"
	contextRole   = "role"
)

// RequestID tags every request with an id, reusing the caller's if present.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// RequireRole lets the request through only for a logged-in staff member
// holding one of roles. Everyone else is sent to the login page of the first role.
func RequireRole(roles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		role, _ := session.Get(sessionRole).(string)
		userID, _ := session.Get(sessionUserID).(uint)
		if userID == 0 || !lo.Contains(roles, models.UserRole(role)) {
			c.Redirect(http.StatusSeeOther, loginPath(roles[0]))
			c.Abort()
			return
		}
		c.Set(contextUserID, userID)
		c.Set(contextRole, models.UserRole(role))
		c.Next()
	}
}

func loginPath(role models.UserRole) string {
	return homePath(role) + "/login"
}

func homePath(role models.UserRole) string {
	switch role {
	case models.RoleCook:
		return "/kitchen"
	case models.RoleAdmin:
		return "/admin"
	}
	return "/waiter"
}

func logf(c *gin.Context, format string, args ...interface{}) {
	log.Printf("[%s] "+format, append([]interface{}{c.GetString(requestIDKey)}, args...)...)
}
