package gateway

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

const headerSharerID = "X-Sharer-User-Id"

type Gateway struct {
	Client *Client
	V      *validator.Validate
	Log    *slog.Logger
}

// readAndValidate consumes the request body, checks its shape, and returns
// the raw bytes for forwarding.
func (g *Gateway) readAndValidate(c echo.Context, dst any) ([]byte, bool) {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		_ = c.JSON(http.StatusBadRequest, echo.Map{"error": "unreadable body"})
		return nil, false
	}
	if err := json.Unmarshal(body, dst); err != nil {
		_ = c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid JSON"})
		return nil, false
	}
	if err := g.V.Struct(dst); err != nil {
		g.Log.Warn("payload rejected", "path", c.Path(), "err", err)
		_ = c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		return nil, false
	}
	return body, true
}

func (g *Gateway) pageParamsValid(c echo.Context) bool {
	if raw := c.QueryParam("from"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return false
		}
	}
	if raw := c.QueryParam("size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return false
		}
	}
	return true
}

func badPagination(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid pagination"})
}

// Users

func (g *Gateway) CreateUser(c echo.Context) error {
	var req userCreateReq
	body, ok := g.readAndValidate(c, &req)
	if !ok {
		return nil
	}
	return g.Client.Forward(c, body)
}

func (g *Gateway) UpdateUser(c echo.Context) error {
	var req userUpdateReq
	body, ok := g.readAndValidate(c, &req)
	if !ok {
		return nil
	}
	return g.Client.Forward(c, body)
}

func (g *Gateway) PassUser(c echo.Context) error { return g.Client.Forward(c, nil) }

// Items

func (g *Gateway) CreateItem(c echo.Context) error {
	var req itemCreateReq
	body, ok := g.readAndValidate(c, &req)
	if !ok {
		return nil
	}
	return g.Client.Forward(c, body)
}

func (g *Gateway) UpdateItem(c echo.Context) error {
	var req itemUpdateReq
	body, ok := g.readAndValidate(c, &req)
	if !ok {
		return nil
	}
	return g.Client.Forward(c, body)
}

func (g *Gateway) ListItems(c echo.Context) error {
	if !g.pageParamsValid(c) {
		return badPagination(c)
	}
	return g.Client.Forward(c, nil)
}

func (g *Gateway) GetItem(c echo.Context) error { return g.Client.Forward(c, nil) }

func (g *Gateway) CreateComment(c echo.Context) error {
	var req commentCreateReq
	body, ok := g.readAndValidate(c, &req)
	if !ok {
		return nil
	}
	return g.Client.Forward(c, body)
}

// Bookings

func (g *Gateway) CreateBooking(c echo.Context) error {
	var req bookingCreateReq
	body, ok := g.readAndValidate(c, &req)
	if !ok {
		return nil
	}
	if !req.windowValid(time.Now()) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking window"})
	}
	return g.Client.Forward(c, body)
}

func (g *Gateway) ApproveBooking(c echo.Context) error {
	if _, err := strconv.ParseBool(c.QueryParam("approved")); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid approved parameter"})
	}
	return g.Client.Forward(c, nil)
}

func (g *Gateway) ListBookings(c echo.Context) error {
	if !g.pageParamsValid(c) {
		return badPagination(c)
	}
	return g.Client.Forward(c, nil)
}

func (g *Gateway) GetBooking(c echo.Context) error { return g.Client.Forward(c, nil) }

// Requests

func (g *Gateway) CreateRequest(c echo.Context) error {
	var req requestCreateReq
	body, ok := g.readAndValidate(c, &req)
	if !ok {
		return nil
	}
	return g.Client.Forward(c, body)
}

func (g *Gateway) GetRequest(c echo.Context) error { return g.Client.Forward(c, nil) }

func (g *Gateway) ListRequests(c echo.Context) error {
	if !g.pageParamsValid(c) {
		return badPagination(c)
	}
	return g.Client.Forward(c, nil)
}

// requireSharerID rejects requests without a usable acting-user header
// before they reach the server.
func requireSharerID(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		raw := c.Request().Header.Get(headerSharerID)
		if raw == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "missing " + headerSharerID + " header"})
		}
		if id, err := strconv.ParseInt(raw, 10, 64); err != nil || id <= 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid " + headerSharerID + " header"})
		}
		return next(c)
	}
}
