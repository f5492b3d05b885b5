package http

// GetCart godoc
// @Summary Get my cart
// @Description Get the authenticated user's cart with its running total
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} object{success=bool,data=object{cart=object,total=number}}
// @Failure 401 {object} object{success=bool,error=string}
// @Failure 500 {object} object{success=bool,error=string}
// @Router /api/cart [get]
func (h *CartHandler) GetCartDoc() {}

// AddItem godoc
// @Summary Add a product to the cart
// @Description Add a product line to the authenticated user's cart. Adding a product already in the cart bumps its quantity.
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{product_id=int,quantity=int} true "Cart line (quantity defaults to 1)"
// @Success 201 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 401 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Failure 409 {object} object{success=bool,error=string}
// @Router /api/cart/items [post]
func (h *CartHandler) AddItemDoc() {}

// RemoveItem godoc
// @Summary Remove a product from the cart
// @Description Drop a product line from the authenticated user's cart. Removing an absent line succeeds.
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Param productId path int true "Product ID"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 401 {object} object{success=bool,error=string}
// @Router /api/cart/items/{productId} [delete]
func (h *CartHandler) RemoveItemDoc() {}

// Checkout godoc
// @Summary Check out the cart
// @Description Turn the authenticated user's cart into an order and clear it
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Success 201 {object} object{success=bool,message=string,data=object{order_id=string,total=number}}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 401 {object} object{success=bool,error=string}
// @Router /api/cart/checkout [post]
func (h *CartHandler) CheckoutDoc() {}
