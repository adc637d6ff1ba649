package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"table_order/internal/services"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

var errInvalidID = errors.New("invalid id")

func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrTableNotFound),
		errors.Is(err, services.ErrOrderNotFound),
		errors.Is(err, services.ErrItemNotFound),
		errors.Is(err, services.ErrCategoryNotFound),
		errors.Is(err, services.ErrNotificationNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrEmptyOrder),
		errors.Is(err, services.ErrInvalidQuantity),
		errors.Is(err, services.ErrMenuItemNotFound),
		errors.Is(err, services.ErrUnknownAction),
		errors.Is(err, services.ErrInvalidInput),
		errors.Is(err, errInvalidID):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrOrderPending),
		errors.Is(err, services.ErrTableExists):
		return http.StatusConflict
	case errors.Is(err, services.ErrInvalidCredentials):
		return http.StatusUnauthorized
	}
	return http.StatusInternalServerError
}

// respondError writes err as JSON. Internal failures are logged and hidden.
func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logf(c, "Error: %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(status, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// redirectWithFlash ends a staff form post. Errors become a flash message on
// the next board read.
func redirectWithFlash(c *gin.Context, target string, err error) {
	if err != nil {
		if statusFor(err) == http.StatusInternalServerError {
			logf(c, "Error: %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		}
		session := sessions.Default(c)
		session.AddFlash(err.Error())
		if saveErr := session.Save(); saveErr != nil {
			logf(c, "Warning: failed to save session: %v", saveErr)
		}
	}
	c.Redirect(http.StatusSeeOther, target)
}

// takeFlashes returns and clears pending flash messages.
func takeFlashes(c *gin.Context) []string {
	session := sessions.Default(c)
	flashes := session.Flashes()
	if len(flashes) == 0 {
		return []string{}
	}
	if err := session.Save(); err != nil {
		logf(c, "Warning: failed to save session: %v", err)
	}
	messages := make([]string, 0, len(flashes))
	for _, f := range flashes {
		if s, ok := f.(string); ok {
			messages = append(messages, s)
		}
	}
	return messages
}

func paramID(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		return 0, errInvalidID
	}
	return uint(id), nil
}
