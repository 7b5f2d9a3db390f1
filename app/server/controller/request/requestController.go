package request

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/JRaven13/shareit/app/server/reply"
	rs "github.com/JRaven13/shareit/service/request"
)

type CreateReq struct {
	Description string `json:"description"`
}

type Controller struct {
	Svc rs.Service
	Log *slog.Logger
}

// POST /requests
func (h *Controller) Create(c echo.Context) error {
	var req CreateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid JSON"})
	}
	uid := reply.UserID(c)
	created, err := h.Svc.Create(c.Request().Context(), uid, req.Description)
	if err != nil {
		h.Log.Error("request create", "err", err, "user_id", uid)
		return reply.Error(c, err)
	}
	return c.JSON(http.StatusOK, created)
}

// GET /requests
func (h *Controller) AllByUser(c echo.Context) error {
	requests, err := h.Svc.AllByUser(c.Request().Context(), reply.UserID(c))
	if err != nil {
		h.Log.Error("request list", "err", err)
		return reply.Error(c, err)
	}
	return c.JSON(http.StatusOK, requests)
}

// GET /requests/all?from&size
func (h *Controller) All(c echo.Context) error {
	from, err := reply.IntQuery(c, "from", 0)
	if err != nil || from < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid pagination"})
	}
	size, err := reply.IntQuery(c, "size", 10)
	if err != nil || size <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid pagination"})
	}
	requests, err := h.Svc.All(c.Request().Context(), reply.UserID(c), from, size)
	if err != nil {
		h.Log.Error("request list all", "err", err)
		return reply.Error(c, err)
	}
	return c.JSON(http.StatusOK, requests)
}

// GET /requests/:id
func (h *Controller) ByID(c echo.Context) error {
	id, err := reply.PathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	req, err := h.Svc.ByID(c.Request().Context(), reply.UserID(c), id)
	if err != nil {
		return reply.Error(c, err)
	}
	return c.JSON(http.StatusOK, req)
}
