package app

import (
	"fmt"
	"log"
	"strings"

	"jobpath/internal/config"
	"jobpath/internal/delivery/http/middleware"
	"jobpath/internal/delivery/http/routes"
	"jobpath/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

// New wires the fiber application onto an already-built container. Split
// from Bootstrap so tests can inject an in-memory container.
func New(c *Container) *App {
	f := fiber.New(fiber.Config{AppName: c.Config.App.AppName})

	f.Use(middleware.NewErrorMiddleware().Middleware())
	f.Use(middleware.NewAccessLogMiddleware(c.Logger).Middleware())
	f.Use(cors.New(cors.Config{
		AllowOrigins: []string{c.Config.App.CORSAllowOrigin},
		AllowMethods: []string{fiber.MethodGet, fiber.MethodPost},
	}))

	recUC := usecase.NewRecommendationUsecase(c.Store, c.Cache, c.Config.Redis.TTL, c.Logger)
	routes.NewRegistry(recUC).Register(f)

	return &App{Fiber: f, Container: c}
}

func Bootstrap(cfg config.Config, logger *log.Logger) (*App, func() error, error) {
	c, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	app := New(c)
	return app, c.Close, nil
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
