package item

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/JRaven13/shareit/app/server/reply"
	"github.com/JRaven13/shareit/model"
	is "github.com/JRaven13/shareit/service/item"
)

type Controller struct {
	Svc is.Service
	Log *slog.Logger
}

// POST /items
func (h *Controller) Create(c echo.Context) error {
	var req Req
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid JSON"})
	}
	uid := reply.UserID(c)
	in := is.CreateInput{RequestID: req.RequestID}
	if req.Name != nil {
		in.Name = *req.Name
	}
	if req.Description != nil {
		in.Description = *req.Description
	}
	if req.Available != nil {
		in.Available = *req.Available
	}
	it, err := h.Svc.Create(c.Request().Context(), uid, in)
	if err != nil {
		h.Log.Error("item create", "err", err, "user_id", uid)
		return reply.Error(c, err)
	}
	return c.JSON(http.StatusOK, it)
}

// PATCH /items/:id
func (h *Controller) Update(c echo.Context) error {
	id, err := reply.PathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	var req Req
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid JSON"})
	}
	uid := reply.UserID(c)
	it, err := h.Svc.Update(c.Request().Context(), uid, id, is.UpdateInput{
		Name:        req.Name,
		Description: req.Description,
		Available:   req.Available,
	})
	if err != nil {
		h.Log.Error("item update", "err", err, "user_id", uid, "item_id", id)
		return reply.Error(c, err)
	}
	return c.JSON(http.StatusOK, it)
}

// GET /items/:id
func (h *Controller) ByID(c echo.Context) error {
	id, err := reply.PathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	d, err := h.Svc.ByItemID(c.Request().Context(), reply.UserID(c), id)
	if err != nil {
		return reply.Error(c, err)
	}
	return c.JSON(http.StatusOK, d)
}

// GET /items?from&size
func (h *Controller) AllByUser(c echo.Context) error {
	from, size, ok := pageParams(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid pagination"})
	}
	items, err := h.Svc.AllByUser(c.Request().Context(), reply.UserID(c), from, size)
	if err != nil {
		h.Log.Error("item list", "err", err)
		return reply.Error(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

// GET /items/search?text&from&size
func (h *Controller) Search(c echo.Context) error {
	from, size, ok := pageParams(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid pagination"})
	}
	items, err := h.Svc.Search(c.Request().Context(), reply.UserID(c), c.QueryParam("text"), from, size)
	if err != nil {
		h.Log.Error("item search", "err", err)
		return reply.Error(c, err)
	}
	if items == nil {
		items = []model.Item{}
	}
	return c.JSON(http.StatusOK, items)
}

// POST /items/:id/comment
func (h *Controller) CreateComment(c echo.Context) error {
	id, err := reply.PathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	var req CommentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid JSON"})
	}
	uid := reply.UserID(c)
	comment, err := h.Svc.CreateComment(c.Request().Context(), uid, id, req.Text)
	if err != nil {
		h.Log.Error("comment create", "err", err, "user_id", uid, "item_id", id)
		return reply.Error(c, err)
	}
	return c.JSON(http.StatusOK, comment)
}

func pageParams(c echo.Context) (from, size int, ok bool) {
	from, err := reply.IntQuery(c, "from", 0)
	if err != nil {
		return 0, 0, false
	}
	size, err = reply.IntQuery(c, "size", 10)
	if err != nil || size <= 0 || from < 0 {
		return 0, 0, false
	}
	return from, size, true
}
