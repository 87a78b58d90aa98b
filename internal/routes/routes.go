package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/helpinghands/site-backend/internal/config"
	"github.com/helpinghands/site-backend/internal/handlers"
	"github.com/helpinghands/site-backend/internal/middleware"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	contentHandler *handlers.ContentHandler,
	settingsHandler *handlers.SettingsHandler,
	mediaHandler *handlers.MediaHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth — stricter rate limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/signin", authHandler.SignIn)
	auth.Get("/verify", authHandler.Verify)
	auth.Post("/forgot-password", authHandler.ForgotPassword)
	auth.Post("/reset-password", authHandler.ResetPassword)

	// Public reads — the site renders from these
	api.Get("/content", contentHandler.GetAll)
	api.Get("/content/:section", contentHandler.GetSection)
	api.Get("/settings", settingsHandler.Get)
	api.Get("/images", mediaHandler.ListImages)

	// Admin writes (JWT required) - apply middleware to individual routes
	// so public reads on the same paths stay open
	api.Post("/content", middleware.JWTProtected(cfg), contentHandler.PutAll)
	api.Post("/content/:section", middleware.JWTProtected(cfg), contentHandler.PutSection)
	api.Post("/settings", middleware.JWTProtected(cfg), settingsHandler.Put)
	api.Post("/image/upload", middleware.JWTProtected(cfg), mediaHandler.Upload)
}
