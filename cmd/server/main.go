// Package main ShareIt API.
//
// @title           ShareIt API
// @version         1.0
// @description     item sharing service (users, items, bookings, requests).
// @BasePath        /
// @schemes         http
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/JRaven13/shareit/app/server"
	bookingctrl "github.com/JRaven13/shareit/app/server/controller/booking"
	itemctrl "github.com/JRaven13/shareit/app/server/controller/item"
	requestctrl "github.com/JRaven13/shareit/app/server/controller/request"
	userctrl "github.com/JRaven13/shareit/app/server/controller/user"
	"github.com/JRaven13/shareit/config"
	bookingrepo "github.com/JRaven13/shareit/repository/booking"
	itemrepo "github.com/JRaven13/shareit/repository/item"
	"github.com/JRaven13/shareit/repository/memory"
	requestrepo "github.com/JRaven13/shareit/repository/request"
	userrepo "github.com/JRaven13/shareit/repository/user"
	bookingsvc "github.com/JRaven13/shareit/service/booking"
	itemsvc "github.com/JRaven13/shareit/service/item"
	requestsvc "github.com/JRaven13/shareit/service/request"
	usersvc "github.com/JRaven13/shareit/service/user"
	"github.com/JRaven13/shareit/util/database"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(log)

	var (
		ur usersvc.Repo
		ir itemsvc.Repo
		br bookingsvc.Repo
		rr requestsvc.Repo
	)
	if cfg.DatabaseURL != "" {
		db, err := database.New(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Error("db connect failed", "err", err)
			os.Exit(1)
		}
		defer db.Close()
		if err := db.Migrate(ctx); err != nil {
			log.Error("db migrate failed", "err", err)
			os.Exit(1)
		}
		ur = userrepo.New(db)
		ir = itemrepo.New(db)
		br = bookingrepo.New(db)
		rr = requestrepo.New(db)
	} else {
		log.Warn("DATABASE_URL not set, using the in-memory store")
		store := memory.NewStore()
		ur = store.Users()
		ir = store.Items()
		br = store.Bookings()
		rr = store.Requests()
	}

	// services
	us := usersvc.New(ur)
	is := itemsvc.New(ir)
	bs := bookingsvc.New(br)
	rs := requestsvc.New(rr)

	// controllers
	userC := &userctrl.Controller{Svc: us, Log: log}
	itemC := &itemctrl.Controller{Svc: is, Log: log}
	bookingC := &bookingctrl.Controller{Svc: bs, Log: log}
	requestC := &requestctrl.Controller{Svc: rs, Log: log}

	e := echo.New()
	e.HideBanner = true
	server.RegisterMiddlewares(e)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]any{"status": "ok"})
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	server.Register(e, server.C{
		User:    userC,
		Item:    itemC,
		Booking: bookingC,
		Request: requestC,
	})

	log.Info("starting server", "port", cfg.Port, "env", cfg.Env)
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
