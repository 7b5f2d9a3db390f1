package user

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/JRaven13/shareit/app/server/reply"
	"github.com/JRaven13/shareit/model"
	us "github.com/JRaven13/shareit/service/user"
)

type Controller struct {
	Svc us.Service
	Log *slog.Logger
}

// POST /users
func (h *Controller) Create(c echo.Context) error {
	var req Req
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid JSON"})
	}
	var name, email string
	if req.Name != nil {
		name = *req.Name
	}
	if req.Email != nil {
		email = *req.Email
	}
	u, err := h.Svc.Create(c.Request().Context(), name, email)
	if err != nil {
		h.Log.Error("user create", "err", err)
		return reply.Error(c, err)
	}
	return c.JSON(http.StatusOK, u)
}

// PATCH /users/:id
func (h *Controller) Update(c echo.Context) error {
	id, err := reply.PathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	var req Req
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid JSON"})
	}
	u, err := h.Svc.Update(c.Request().Context(), id, req.Name, req.Email)
	if err != nil {
		h.Log.Error("user update", "err", err, "user_id", id)
		return reply.Error(c, err)
	}
	return c.JSON(http.StatusOK, u)
}

// GET /users/:id
func (h *Controller) ByID(c echo.Context) error {
	id, err := reply.PathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	u, err := h.Svc.ByID(c.Request().Context(), id)
	if err != nil {
		return reply.Error(c, err)
	}
	return c.JSON(http.StatusOK, u)
}

// GET /users
func (h *Controller) All(c echo.Context) error {
	users, err := h.Svc.All(c.Request().Context())
	if err != nil {
		h.Log.Error("user list", "err", err)
		return reply.Error(c, err)
	}
	if users == nil {
		users = []model.User{}
	}
	return c.JSON(http.StatusOK, users)
}

// DELETE /users/:id
func (h *Controller) Delete(c echo.Context) error {
	id, err := reply.PathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	if err := h.Svc.Delete(c.Request().Context(), id); err != nil {
		h.Log.Error("user delete", "err", err, "user_id", id)
		return reply.Error(c, err)
	}
	return c.NoContent(http.StatusOK)
}
