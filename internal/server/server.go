package server

import (
	"github.com/graduation-team-project-4nd/KiMate-AI/internal/config"
	"github.com/graduation-team-project-4nd/KiMate-AI/internal/controller"
	"github.com/graduation-team-project-4nd/KiMate-AI/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type Server struct {
	app *fiber.App
	cfg *config.Config
	log logger.ILogger
}

func New(cfg *config.Config, kiosk controller.IKioskController, log logger.ILogger) *Server {
	app := fiber.New(fiber.Config{
		AppName: "KiMate-AI Server",
	})

	// The kiosk frontend ships on whatever origin the device uses.
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, OPTIONS",
	}))

	app.Get("/healthz", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")
	kiosk.RegisterRoutes(api)

	return &Server{
		app: app,
		cfg: cfg,
		log: log,
	}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	s.log.Info("server", "listening", map[string]interface{}{"port": s.cfg.App.Port})
	return s.app.Listen(":" + s.cfg.App.Port)
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}
