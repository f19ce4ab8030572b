package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/raghavenderreddy1707/Labour-Hub/internal/config"
	"github.com/raghavenderreddy1707/Labour-Hub/internal/handlers"
	"github.com/raghavenderreddy1707/Labour-Hub/internal/middleware"
)

// NewApp builds the fiber app every server and test runs on. Immutable
// makes params and body-derived strings safe to keep after the request.
func NewApp() *fiber.App {
	return fiber.New(fiber.Config{
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: handlers.ErrorHandler,
		Immutable:    true,
	})
}

type Handlers struct {
	Auth        *handlers.AuthHandler
	Jobs        *handlers.JobHandler
	Preferences *handlers.PreferenceHandler
	Health      *handlers.HealthHandler
}

func Setup(app *fiber.App, cfg *config.Config, h Handlers) {
	api := app.Group("/api")

	// General API rate limiter, per IP
	api.Use(limiter.New(limiter.Config{
		Max:               cfg.RateLimit,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", h.Health.Check)

	// Browsing works anonymously; a token adds the per-viewer card flags.
	optional := middleware.JWTOptional(cfg)
	protected := middleware.JWTProtected(cfg)

	// Auth has a stricter limit
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               cfg.AuthRateLimit,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", h.Auth.Register)
	auth.Post("/login", h.Auth.Login)
	auth.Post("/logout", protected, h.Auth.Logout)
	// Without a token, /me reports the session stored on the board.
	auth.Get("/me", optional, h.Auth.Me)

	jobs := api.Group("/jobs")
	jobs.Get("/", optional, h.Jobs.Browse)
	jobs.Get("/locations", h.Jobs.Locations)
	jobs.Get("/:id", optional, h.Jobs.Details)
	jobs.Post("/", protected, h.Jobs.Post)
	jobs.Delete("/:id", protected, h.Jobs.Delete)
	jobs.Post("/:id/apply", protected, h.Jobs.Apply)
	jobs.Post("/:id/bookmark", optional, h.Jobs.ToggleBookmark)

	me := api.Group("/me", protected)
	me.Get("/jobs", h.Jobs.Managed)
	me.Get("/bookmarks", h.Jobs.Bookmarked)

	prefs := api.Group("/preferences")
	prefs.Get("/theme", h.Preferences.Theme)
	prefs.Post("/theme/toggle", h.Preferences.ToggleTheme)
}
