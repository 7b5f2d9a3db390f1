package gateway

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func RegisterMiddlewares(e *echo.Echo) {
	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return uuid.NewString() },
	}))
	e.Use(accessLog())
}

func accessLog() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			slog.Info("gateway",
				"method", c.Request().Method,
				"path", c.Path(),
				"status", c.Response().Status,
				"latency_ms", time.Since(start).Milliseconds(),
				"req_id", c.Response().Header().Get(echo.HeaderXRequestID),
			)
			return err
		}
	}
}

func Register(e *echo.Echo, g *Gateway) {
	users := e.Group("/users")
	users.POST("", g.CreateUser)
	users.PATCH("/:id", g.UpdateUser)
	users.GET("/:id", g.PassUser)
	users.GET("", g.PassUser)
	users.DELETE("/:id", g.PassUser)

	items := e.Group("/items", requireSharerID)
	items.POST("", g.CreateItem)
	items.PATCH("/:id", g.UpdateItem)
	items.GET("/search", g.ListItems)
	items.GET("/:id", g.GetItem)
	items.GET("", g.ListItems)
	items.POST("/:id/comment", g.CreateComment)

	bookings := e.Group("/bookings", requireSharerID)
	bookings.POST("", g.CreateBooking)
	bookings.PATCH("/:id", g.ApproveBooking)
	bookings.GET("/owner", g.ListBookings)
	bookings.GET("/:id", g.GetBooking)
	bookings.GET("", g.ListBookings)

	requests := e.Group("/requests", requireSharerID)
	requests.POST("", g.CreateRequest)
	requests.GET("/all", g.ListRequests)
	requests.GET("/:id", g.GetRequest)
	requests.GET("", g.ListRequests)
}
