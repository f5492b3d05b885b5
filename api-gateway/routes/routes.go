package routes

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/samuraistore/backend/api-gateway/config"
	"github.com/samuraistore/backend/api-gateway/health"
	"github.com/samuraistore/backend/api-gateway/middleware"
	"github.com/samuraistore/backend/api-gateway/proxy"
)

// RouteDefinition defines a route mapping
type RouteDefinition struct {
	Prefix       string
	Methods      []string // empty means all methods
	ServiceName  string
	Description  string
	RequireAuth  bool
	RequireAdmin bool
}

// Routes holds all route definitions. Auth is enforced again inside the
// storefront; the gateway check just fails fast.
var Routes = []RouteDefinition{
	// Public routes
	{
		Prefix:      "/auth",
		ServiceName: "storefront",
		Description: "Authentication endpoints (login, register)",
	},
	{
		Prefix:      "/health",
		ServiceName: "storefront",
		Description: "Storefront health check",
	},
	{
		Prefix:      "/api/products",
		ServiceName: "storefront",
		Description: "Catalog browsing (admin writes checked by the storefront)",
	},
	{
		Prefix:      "/api/home",
		ServiceName: "storefront",
		Description: "Home page sections",
	},
	{
		Prefix:      "/api/inquiries",
		Methods:     []string{fiber.MethodPost},
		ServiceName: "storefront",
		Description: "Contact form submission",
	},

	// Authenticated routes
	{
		Prefix:      "/users",
		ServiceName: "storefront",
		Description: "Account endpoints",
		RequireAuth: true,
	},
	{
		Prefix:      "/api/favorites",
		ServiceName: "storefront",
		Description: "Favorites (owner scoped)",
		RequireAuth: true,
	},
	{
		Prefix:      "/api/cart",
		ServiceName: "storefront",
		Description: "Cart and checkout (owner scoped)",
		RequireAuth: true,
	},

	// Admin routes
	{
		Prefix:       "/api/inquiries",
		Methods:      []string{fiber.MethodGet},
		ServiceName:  "storefront",
		Description:  "Inquiry inbox",
		RequireAuth:  true,
		RequireAdmin: true,
	},
	{
		Prefix:       "/admin",
		ServiceName:  "storefront",
		Description:  "Admin endpoints",
		RequireAuth:  true,
		RequireAdmin: true,
	},
}

// SetupRoutes configures all routes in the gateway
func SetupRoutes(app *fiber.App, cfg *config.GatewayConfig) {
	// Create reverse proxy
	reverseProxy := proxy.NewReverseProxy(cfg)

	// Create health checker
	healthChecker := health.NewHealthChecker(cfg)

	// Gateway quick health check (no downstream checks)
	app.Get("/gateway/health", func(c *fiber.Ctx) error {
		return c.JSON(healthChecker.QuickCheck())
	})

	// Liveness probe (for Kubernetes)
	app.Get("/gateway/health/live", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "alive",
		})
	})

	// Readiness probe (checks downstream instances)
	app.Get("/gateway/health/ready", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 3*time.Second)
		defer cancel()

		healthStatus := healthChecker.CheckAllServices(ctx)

		statusCode := fiber.StatusOK
		if healthStatus.Status == "unhealthy" {
			statusCode = fiber.StatusServiceUnavailable
		}

		return c.Status(statusCode).JSON(healthStatus)
	})

	// Detailed service health checks
	app.Get("/gateway/health/services", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
		defer cancel()

		healthStatus := healthChecker.CheckAllServices(ctx)
		return c.JSON(healthStatus)
	})

	// API routes overview
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Storefront API Gateway",
			"version": "1.0.0",
			"routes":  Routes,
		})
	})

	// Register all service routes
	for _, route := range Routes {
		registerServiceRoutes(app, route, reverseProxy)
	}
}

// registerServiceRoutes registers a route definition against the proxy
func registerServiceRoutes(app *fiber.App, route RouteDefinition, proxyHandler *proxy.ReverseProxy) {
	handler := func(c *fiber.Ctx) error {
		return proxyHandler.ProxyRequest(c, route.ServiceName)
	}

	var middlewares []fiber.Handler
	if route.RequireAdmin {
		middlewares = append(middlewares, middleware.AuthMiddleware(), middleware.AdminMiddleware())
	} else if route.RequireAuth {
		middlewares = append(middlewares, middleware.AuthMiddleware())
	}

	handlers := append(middlewares, handler)

	// Method-specific definitions only bind the exact prefix path
	if len(route.Methods) > 0 {
		for _, method := range route.Methods {
			app.Add(method, route.Prefix, handlers...)
		}
		return
	}

	group := app.Group(route.Prefix, middlewares...)
	group.All("/*", handler)
	app.All(route.Prefix, handlers...)
}
