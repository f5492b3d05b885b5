package main

// @title Samurai Store API
// @version 1.0
// @description Online storefront API: catalog, favorites, cart, contact form, with full observability stack (Prometheus, Jaeger)
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@example.com

// @license.name MIT

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @tag.name Auth
// @tag.description Authentication endpoints

// @tag.name Users
// @tag.description User account endpoints

// @tag.name Products
// @tag.description Catalog endpoints

// @tag.name Favorites
// @tag.description Favorites endpoints

// @tag.name Cart
// @tag.description Cart and checkout endpoints

// @tag.name Inquiries
// @tag.description Contact form endpoints

// @tag.name Admin
// @tag.description Admin-only endpoints

// @tag.name Health
// @tag.description Health check endpoints
