// Package reply holds the response conventions shared by the server
// controllers: the acting-user header, the error-to-status mapping, and
// query parameter parsing.
package reply

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/JRaven13/shareit/util/apperr"
)

const (
	HeaderSharerID = "X-Sharer-User-Id"
	ContextUserID  = "user_id"
)

// UserID returns the acting user set by the sharer-id middleware.
func UserID(c echo.Context) int64 {
	id, _ := c.Get(ContextUserID).(int64)
	return id
}

// Error writes the flat error payload with the status the error kind maps
// to. Unclassified errors never leak their message.
func Error(c echo.Context, err error) error {
	switch apperr.KindOf(err) {
	case apperr.KindNotFound:
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	case apperr.KindValidation:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case apperr.KindConflict:
		return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}
}

// IntQuery parses an integer query parameter, falling back to def when the
// parameter is absent.
func IntQuery(c echo.Context, name string, def int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}

// PathID parses a positive int64 path parameter.
func PathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s", name)
	}
	return id, nil
}
