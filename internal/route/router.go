package router

import (
	authHandler "storefront-service/internal/module/auth/handler"
	eventHandler "storefront-service/internal/module/event/handler"
	registrationHandler "storefront-service/internal/module/registration/handler"
	statsHandler "storefront-service/internal/module/stats/handler"
	"storefront-service/internal/pkg/middleware"
	"storefront-service/internal/pkg/session"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Auth         *authHandler.AuthHandler
	Event        *eventHandler.EventHandler
	Registration *registrationHandler.RegistrationHandler
	Stats        *statsHandler.StatsHandler
}

func Initialize(app *fiber.App, h Handlers, m *middleware.Middleware, limiter *middleware.RateLimiter) *fiber.App {

	// health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).SendString("OK")
	})

	Api := app.Group("/api")
	if limiter != nil {
		Api.Use(limiter.Handler(middleware.ByIP))
	}

	v1 := Api.Group("/v1")

	// auth
	auth := v1.Group("/auth")
	auth.Post("/register", h.Auth.Register)
	auth.Post("/login", h.Auth.Login)
	auth.Post("/logout", m.ValidateToken, h.Auth.Logout)
	auth.Get("/me", m.ValidateToken, h.Auth.Me)

	// public routes
	v1.Get("/events", h.Event.ListEvents)
	v1.Get("/events/search", m.OptionalSession, h.Event.SearchEvents)
	v1.Get("/events/:event_id", h.Event.GetEvent)

	// user routes
	registrations := v1.Group("/registrations", m.ValidateToken)
	registrations.Get("/", h.Registration.ListRegistrations)
	registrations.Post("/", h.Registration.Register)
	registrations.Post("/:registration_id/pay", h.Registration.Pay)
	registrations.Patch("/:registration_id/attend", h.Registration.Attend)
	registrations.Post("/:registration_id/review", h.Registration.Review)

	// admin routes
	admin := v1.Group("/admin", m.ValidateToken, m.RequireRole(session.RoleAdmin))
	admin.Get("/events", h.Event.AdminListEvents)
	admin.Post("/events", h.Event.CreateEvent)
	admin.Get("/events/:event_id", h.Event.AdminGetEvent)
	admin.Put("/events/:event_id", h.Event.UpdateEvent)
	admin.Delete("/events/:event_id", h.Event.DeleteEvent)
	admin.Post("/discounts", h.Event.CreateDiscount)
	admin.Get("/stats", h.Stats.Overview)
	admin.Get("/stats/users", h.Stats.Users)
	admin.Get("/stats/registrations", h.Stats.Registrations)
	admin.Get("/stats/payments", h.Stats.Payments)
	admin.Get("/stats/revenue", h.Stats.Revenue)

	return app

}
