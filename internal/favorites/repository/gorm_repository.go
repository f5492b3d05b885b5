package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/samuraistore/backend/internal/favorites/domain"
)

type GormFavoriteRepository struct {
	db *gorm.DB
}

func NewGormFavoriteRepository(db *gorm.DB) *GormFavoriteRepository {
	return &GormFavoriteRepository{db: db}
}

func (r *GormFavoriteRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Favorite{})
}

func (r *GormFavoriteRepository) Exists(userID, productID uint) (bool, error) {
	var count int64
	err := r.db.Model(&domain.Favorite{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// InsertIfAbsent relies on the composite unique index: a conflicting insert
// becomes a no-op instead of an error or a second row.
func (r *GormFavoriteRepository) InsertIfAbsent(userID, productID uint) error {
	favorite := domain.Favorite{
		UserID:    userID,
		ProductID: productID,
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
		DoNothing: true,
	}).Create(&favorite).Error
}

func (r *GormFavoriteRepository) Delete(userID, productID uint) error {
	return r.db.Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&domain.Favorite{}).Error
}

func (r *GormFavoriteRepository) ListByUser(userID uint) ([]domain.FavoriteProjection, error) {
	var projections []domain.FavoriteProjection
	err := r.db.Table("favorites").
		Select("favorites.id, favorites.user_id, favorites.product_id, favorites.created_at, products.name, products.price, products.image_url").
		Joins("JOIN products ON products.id = favorites.product_id AND products.deleted_at IS NULL").
		Where("favorites.user_id = ?", userID).
		Order("favorites.created_at DESC").
		Scan(&projections).Error
	return projections, err
}
