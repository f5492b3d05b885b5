package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterSwaggerDocs registers Swagger documentation routes
// @Summary Swagger documentation
// @Description Swagger API documentation
// @Tags Swagger
// @Success 200 {string} string "Swagger UI"
// @Router /swagger/ [get]
func RegisterSwaggerDocs(router *mux.Router, swaggerHandler http.Handler) {
	// Swagger UI
	router.PathPrefix("/swagger/").Handler(swaggerHandler)
}

// Register godoc
// @Summary Register a new account
// @Description Create a new storefront account
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body object{name=string,email=string,password=string} true "Registration data"
// @Success 201 {object} object{id=int,name=string,email=string,role=string,created_at=string,updated_at=string}
// @Failure 400 {object} object{error=string}
// @Failure 409 {object} object{error=string}
// @Router /auth/register [post]
func (h *UserHandler) RegisterDoc() {}

// Login godoc
// @Summary Login
// @Description Authenticate with email and password, returns a JWT token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body object{email=string,password=string} true "Login credentials"
// @Success 200 {object} object{token=string,user=object}
// @Failure 401 {object} object{error=string}
// @Router /auth/login [post]
func (h *UserHandler) LoginDoc() {}

// GetProfile godoc
// @Summary Get current account
// @Description Get the authenticated account's profile
// @Tags Users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} object{id=int,name=string,email=string,role=string}
// @Failure 401 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /users/me [get]
func (h *UserHandler) GetProfileDoc() {}

// UpdateProfile godoc
// @Summary Update current account
// @Description Update the authenticated account's profile
// @Tags Users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{name=string,email=string,password=string} true "Update data"
// @Success 200 {object} object{id=int,name=string,email=string}
// @Failure 400 {object} object{error=string}
// @Failure 401 {object} object{error=string}
// @Router /users/me [put]
func (h *UserHandler) UpdateProfileDoc() {}

// ListUsers godoc
// @Summary List accounts (admin)
// @Description Admin endpoint to list accounts with pagination
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Limit"
// @Param offset query int false "Offset"
// @Success 200 {array} object{id=int,name=string,email=string,role=string}
// @Failure 403 {object} object{error=string}
// @Failure 500 {object} object{error=string}
// @Router /admin/users [get]
func (h *UserHandler) ListUsersDoc() {}

// GetUser godoc
// @Summary Get account by ID (admin)
// @Description Admin endpoint to get a specific account
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} object{id=int,name=string,email=string,role=string}
// @Failure 400 {object} object{error=string}
// @Failure 403 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /admin/users/{id} [get]
func (h *UserHandler) GetUserDoc() {}

// DeleteUser godoc
// @Summary Delete account (admin)
// @Description Admin endpoint to delete an account (soft delete)
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} object{message=string}
// @Failure 403 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /admin/users/{id} [delete]
func (h *UserHandler) DeleteUserDoc() {}

// ChangeRole godoc
// @Summary Change account role (admin)
// @Description Admin endpoint to change an account's role
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body object{role=string} true "New role"
// @Success 200 {object} object{id=int,name=string,role=string}
// @Failure 400 {object} object{error=string}
// @Failure 403 {object} object{error=string}
// @Router /admin/users/{id}/role [put]
func (h *UserHandler) ChangeRoleDoc() {}

// GetStats godoc
// @Summary Get account statistics (admin)
// @Description Admin endpoint to get account statistics
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} object{total_users=int,admin_count=int,user_count=int}
// @Failure 403 {object} object{error=string}
// @Router /admin/stats [get]
func (h *UserHandler) GetStatsDoc() {}

// HealthCheck godoc
// @Summary Health check
// @Description Check service health and database connectivity
// @Tags Health
// @Produce json
// @Success 200 {object} object{status=string}
// @Failure 503 {object} object{status=string,error=string}
// @Router /health [get]
func (h *UserHandler) HealthCheckDoc() {}
