package repository

import (
	"gorm.io/gorm"

	"github.com/samuraistore/backend/internal/product/domain"
)

type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

func (r *GormProductRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Product{})
}

func (r *GormProductRepository) Create(product *domain.Product) error {
	return r.db.Create(product).Error
}

func (r *GormProductRepository) FindByID(id uint) (*domain.Product, error) {
	var product domain.Product
	err := r.db.First(&product, id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *GormProductRepository) FindBySKU(sku string) (*domain.Product, error) {
	var product domain.Product
	err := r.db.Where("sku = ?", sku).First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *GormProductRepository) FindAll(limit, offset int) ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.Limit(limit).Offset(offset).Find(&products).Error
	return products, err
}

func (r *GormProductRepository) FindByCategory(category string, limit, offset int) ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.Where("category = ?", category).Limit(limit).Offset(offset).Find(&products).Error
	return products, err
}

func (r *GormProductRepository) Update(product *domain.Product) error {
	return r.db.Save(product).Error
}

func (r *GormProductRepository) Delete(id uint) error {
	return r.db.Delete(&domain.Product{}, id).Error
}

func (r *GormProductRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&domain.Product{}).Count(&count).Error
	return count, err
}

func (r *GormProductRepository) UpdateStock(id uint, stock int) error {
	return r.db.Model(&domain.Product{}).Where("id = ?", id).Update("stock", stock).Error
}

func (r *GormProductRepository) FindTopSellers(limit int) ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.Where("is_active = ?", true).
		Order("sales_count DESC").
		Limit(limit).
		Find(&products).Error
	return products, err
}

func (r *GormProductRepository) FindNewest(limit int) ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.Where("is_active = ?", true).
		Order("created_at DESC").
		Limit(limit).
		Find(&products).Error
	return products, err
}

// FindRandomFeatured returns a random sample of featured products.
// RANDOM() is Postgres-specific.
func (r *GormProductRepository) FindRandomFeatured(limit int) ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.Where("is_featured = ? AND is_active = ?", true, true).
		Order("RANDOM()").
		Limit(limit).
		Find(&products).Error
	return products, err
}

// RecordSale applies both counters in one UPDATE so concurrent order events
// never lose increments.
func (r *GormProductRepository) RecordSale(id uint, quantity int) error {
	return r.db.Model(&domain.Product{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"sales_count": gorm.Expr("sales_count + ?", quantity),
			"stock":       gorm.Expr("GREATEST(stock - ?, 0)", quantity),
		}).Error
}
