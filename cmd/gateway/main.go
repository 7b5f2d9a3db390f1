package main

import (
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/JRaven13/shareit/app/gateway"
	"github.com/JRaven13/shareit/config"
)

func main() {
	cfg := config.LoadGateway()

	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(log)

	g := &gateway.Gateway{
		Client: gateway.NewClient(cfg.ServerURL),
		V:      validator.New(),
		Log:    log,
	}

	e := echo.New()
	e.HideBanner = true
	gateway.RegisterMiddlewares(e)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]any{"status": "ok"})
	})

	gateway.Register(e, g)

	log.Info("starting gateway", "port", cfg.Port, "server_url", cfg.ServerURL)
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
