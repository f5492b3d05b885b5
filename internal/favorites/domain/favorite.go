package domain

import "time"

// Favorite is one user↔product relation instance. The composite unique
// index is what makes concurrent duplicate adds collapse to a single row.
type Favorite struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_fav_user_product"`
	ProductID uint      `json:"product_id" gorm:"not null;uniqueIndex:idx_fav_user_product"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name
func (Favorite) TableName() string {
	return "favorites"
}

// FavoriteProjection joins a favorite with the catalog fields the account
// pages display. It is derived at query time and never persisted; a stale
// name or price is acceptable.
type FavoriteProjection struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	ProductID uint      `json:"product_id"`
	CreatedAt time.Time `json:"created_at"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	ImageURL  string    `json:"image_url"`
}

// FavoriteRepository defines the contract for favorite data access.
// Absence of a row is a normal outcome for Exists and Delete, never an
// error; every method scopes its work to the given owner.
type FavoriteRepository interface {
	Exists(userID, productID uint) (bool, error)
	InsertIfAbsent(userID, productID uint) error
	Delete(userID, productID uint) error
	ListByUser(userID uint) ([]FavoriteProjection, error)
}
