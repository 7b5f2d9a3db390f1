package booking

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/JRaven13/shareit/app/server/reply"
	bs "github.com/JRaven13/shareit/service/booking"
)

type Controller struct {
	Svc bs.Service
	Log *slog.Logger
}

// POST /bookings
func (h *Controller) Create(c echo.Context) error {
	var req CreateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid JSON"})
	}
	uid := reply.UserID(c)
	b, err := h.Svc.Create(c.Request().Context(), uid, bs.CreateInput{
		ItemID: req.ItemID,
		Start:  req.Start,
		End:    req.End,
	})
	if err != nil {
		h.Log.Error("booking create", "err", err, "user_id", uid)
		return reply.Error(c, err)
	}
	return c.JSON(http.StatusOK, b)
}

// PATCH /bookings/:id?approved=bool
func (h *Controller) Approve(c echo.Context) error {
	id, err := reply.PathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	approved, err := strconv.ParseBool(c.QueryParam("approved"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid approved parameter"})
	}
	uid := reply.UserID(c)
	b, err := h.Svc.Approve(c.Request().Context(), uid, id, approved)
	if err != nil {
		h.Log.Error("booking approve", "err", err, "user_id", uid, "booking_id", id)
		return reply.Error(c, err)
	}
	return c.JSON(http.StatusOK, b)
}

// GET /bookings/:id
func (h *Controller) ByID(c echo.Context) error {
	id, err := reply.PathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	b, err := h.Svc.ByID(c.Request().Context(), reply.UserID(c), id)
	if err != nil {
		return reply.Error(c, err)
	}
	return c.JSON(http.StatusOK, b)
}

// GET /bookings?state&from&size
func (h *Controller) AllByBooker(c echo.Context) error {
	state, from, size, ok := listParams(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid pagination"})
	}
	bookings, err := h.Svc.AllByBooker(c.Request().Context(), reply.UserID(c), state, from, size)
	if err != nil {
		h.Log.Error("booking list", "err", err)
		return reply.Error(c, err)
	}
	return c.JSON(http.StatusOK, bookings)
}

// GET /bookings/owner?state&from&size
func (h *Controller) AllForOwner(c echo.Context) error {
	state, from, size, ok := listParams(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid pagination"})
	}
	bookings, err := h.Svc.AllForOwner(c.Request().Context(), reply.UserID(c), state, from, size)
	if err != nil {
		h.Log.Error("booking owner list", "err", err)
		return reply.Error(c, err)
	}
	return c.JSON(http.StatusOK, bookings)
}

func listParams(c echo.Context) (state bs.State, from, size int, ok bool) {
	state = bs.StateAll
	if raw := c.QueryParam("state"); raw != "" {
		state = bs.State(raw)
	}
	from, err := reply.IntQuery(c, "from", 0)
	if err != nil {
		return state, 0, 0, false
	}
	size, err = reply.IntQuery(c, "size", 10)
	if err != nil || size <= 0 || from < 0 {
		return state, 0, 0, false
	}
	return state, from, size, true
}
