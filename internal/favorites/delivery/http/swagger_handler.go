package http

// ListFavorites godoc
// @Summary List my favorites
// @Description Get the authenticated user's favorites newest first, joined with catalog name, price and image
// @Tags Favorites
// @Security BearerAuth
// @Produce json
// @Success 200 {object} object{success=bool,data=array}
// @Failure 401 {object} object{success=bool,error=string}
// @Router /api/favorites [get]
func (h *FavoriteHandler) ListFavoritesDoc() {}

// AddFavorite godoc
// @Summary Add a product to favorites
// @Description Add a product to the authenticated user's favorites. Adding an existing favorite succeeds without a duplicate.
// @Tags Favorites
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{product_id=int} true "Product to favorite"
// @Success 201 {object} object{success=bool,message=string}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 401 {object} object{success=bool,error=string}
// @Router /api/favorites [post]
func (h *FavoriteHandler) AddFavoriteDoc() {}

// CheckFavorite godoc
// @Summary Check a favorite
// @Description Report whether the given product is in the authenticated user's favorites
// @Tags Favorites
// @Security BearerAuth
// @Produce json
// @Param productId path int true "Product ID"
// @Success 200 {object} object{success=bool,data=bool}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 401 {object} object{success=bool,error=string}
// @Router /api/favorites/{productId} [get]
func (h *FavoriteHandler) CheckFavoriteDoc() {}

// RemoveFavorite godoc
// @Summary Remove a product from favorites
// @Description Remove a product from the authenticated user's favorites. Removing an absent favorite succeeds.
// @Tags Favorites
// @Security BearerAuth
// @Produce json
// @Param productId path int true "Product ID"
// @Success 200 {object} object{success=bool,message=string}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 401 {object} object{success=bool,error=string}
// @Router /api/favorites/{productId} [delete]
func (h *FavoriteHandler) RemoveFavoriteDoc() {}
