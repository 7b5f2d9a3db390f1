package server

import (
	"github.com/labstack/echo/v4"

	bookingctrl "github.com/JRaven13/shareit/app/server/controller/booking"
	itemctrl "github.com/JRaven13/shareit/app/server/controller/item"
	requestctrl "github.com/JRaven13/shareit/app/server/controller/request"
	userctrl "github.com/JRaven13/shareit/app/server/controller/user"
)

type C struct {
	User    *userctrl.Controller
	Item    *itemctrl.Controller
	Booking *bookingctrl.Controller
	Request *requestctrl.Controller
}

func Register(e *echo.Echo, c C) {
	// Users are managed without the sharer header.
	users := e.Group("/users")
	users.POST("", c.User.Create)
	users.PATCH("/:id", c.User.Update)
	users.GET("/:id", c.User.ByID)
	users.GET("", c.User.All)
	users.DELETE("/:id", c.User.Delete)

	items := e.Group("/items", RequireSharerID)
	items.POST("", c.Item.Create)
	items.PATCH("/:id", c.Item.Update)
	items.GET("/search", c.Item.Search)
	items.GET("/:id", c.Item.ByID)
	items.GET("", c.Item.AllByUser)
	items.POST("/:id/comment", c.Item.CreateComment)

	bookings := e.Group("/bookings", RequireSharerID)
	bookings.POST("", c.Booking.Create)
	bookings.PATCH("/:id", c.Booking.Approve)
	bookings.GET("/owner", c.Booking.AllForOwner)
	bookings.GET("/:id", c.Booking.ByID)
	bookings.GET("", c.Booking.AllByBooker)

	requests := e.Group("/requests", RequireSharerID)
	requests.POST("", c.Request.Create)
	requests.GET("/all", c.Request.All)
	requests.GET("/:id", c.Request.ByID)
	requests.GET("", c.Request.AllByUser)
}
