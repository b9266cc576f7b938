package app

import (
	"fmt"
	"log"
	"strings"

	"job-khojo/internal/config"
	"job-khojo/internal/delivery/http/middleware"
	"job-khojo/internal/delivery/http/routes"
	"job-khojo/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{
		AppName:   c.Config.App.AppName,
		BodyLimit: c.Config.Upload.MaxBytes,
	})

	registerGlobalMiddleware(f, c.Logger)

	registry := routes.NewRegistry(routes.Deps{
		Config:   c.Config,
		DB:       c.DB,
		Cache:    c.Cache,
		Hub:      c.Hub,
		Uploader: c.Uploader,
		Notifier: c.Notifier,
		Embedder: c.Embedder,
		Logger:   c.Logger,
	})
	registry.Register(f)

	return &App{Fiber: f, Container: c}
}

func Bootstrap(cfg config.Config, logger *log.Logger) (*App, func() error, error) {
	container, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	app := New(container)

	go container.Hub.Run()
	ws.SetDefaultHub(container.Hub)

	cleanup := func() error {
		ws.SetDefaultHub(nil)
		return container.Close()
	}
	return app, cleanup, nil
}

func registerGlobalMiddleware(app *fiber.App, logger *log.Logger) {
	if app == nil {
		return
	}

	app.Use(middleware.NewErrorMiddleware(logger).Middleware())
	app.Use(middleware.NewAccessLogMiddleware(logger).Middleware())
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
