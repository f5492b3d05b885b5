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

// GetHomeSections godoc
// @Summary Home page sections
// @Description Get the pick up, new arrival and hot item product rails
// @Tags Products
// @Produce json
// @Success 200 {object} object{success=bool,data=object{pick_up=array,new_arrival=array,hot_items=array}}
// @Failure 500 {object} object{success=bool,error=string}
// @Router /api/home [get]
func (h *ProductHandler) GetHomeSectionsDoc() {}

// CreateProduct godoc
// @Summary Create a new product
// @Description Create a new product (Admin only)
// @Tags Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{name=string,description=string,price=number,stock=int,category=string,sku=string,image_url=string,is_featured=bool,is_active=bool} true "Product data"
// @Success 201 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 403 {object} object{success=bool,error=string}
// @Router /api/products [post]
func (h *ProductHandler) CreateProductDoc() {}

// ListProducts godoc
// @Summary List all products
// @Description Get a list of all products with pagination
// @Tags Products
// @Produce json
// @Param limit query int false "Limit"
// @Param offset query int false "Offset"
// @Param category query string false "Category filter"
// @Success 200 {object} object{success=bool,data=object{products=array,total=int,limit=int,offset=int}}
// @Failure 500 {object} object{success=bool,error=string}
// @Router /api/products [get]
func (h *ProductHandler) ListProductsDoc() {}

// GetProduct godoc
// @Summary Get product by ID
// @Description Get a specific product by its ID
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} object{success=bool,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/products/{id} [get]
func (h *ProductHandler) GetProductDoc() {}

// UpdateProduct godoc
// @Summary Update a product
// @Description Update a product (Admin only)
// @Tags Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param request body object{name=string,description=string,price=number,stock=int,category=string,sku=string,image_url=string,is_featured=bool,is_active=bool} true "Product data"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 403 {object} object{success=bool,error=string}
// @Router /api/products/{id} [put]
func (h *ProductHandler) UpdateProductDoc() {}

// DeleteProduct godoc
// @Summary Delete a product
// @Description Delete a product (Admin only)
// @Tags Products
// @Security BearerAuth
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} object{success=bool,message=string}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 403 {object} object{success=bool,error=string}
// @Router /api/products/{id} [delete]
func (h *ProductHandler) DeleteProductDoc() {}

// UpdateStock godoc
// @Summary Update product stock
// @Description Update the stock level of a product (Admin only)
// @Tags Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param request body object{stock=int} true "New stock level"
// @Success 200 {object} object{success=bool,message=string}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 403 {object} object{success=bool,error=string}
// @Router /api/products/{id}/stock [patch]
func (h *ProductHandler) UpdateStockDoc() {}

// GetStats godoc
// @Summary Get catalog statistics
// @Description Get aggregate statistics for the catalog
// @Tags Products
// @Produce json
// @Success 200 {object} object{success=bool,data=object{total_products=int,active_products=int,total_stock=int,total_sales=int,average_price=number,total_categories=int}}
// @Failure 500 {object} object{success=bool,error=string}
// @Router /api/products/stats [get]
func (h *ProductHandler) GetStatsDoc() {}
