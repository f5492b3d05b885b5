package domain

import (
	"time"

	"gorm.io/gorm"
)

// Product represents a catalog entry
type Product struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Name        string         `json:"name" gorm:"not null"`
	Description string         `json:"description"`
	Price       float64        `json:"price" gorm:"not null"`
	Stock       int            `json:"stock" gorm:"not null;default:0"`
	Category    string         `json:"category"`
	SKU         string         `json:"sku" gorm:"uniqueIndex"`
	ImageURL    string         `json:"image_url"`
	IsFeatured  bool           `json:"is_featured" gorm:"default:false"`
	IsActive    bool           `json:"is_active" gorm:"default:true"`
	SalesCount  int            `json:"sales_count" gorm:"not null;default:0"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

// IsAvailable checks if product is in stock
func (p *Product) IsAvailable() bool {
	return p.Stock > 0 && p.IsActive
}

// ProductRepository defines the contract for product data access
type ProductRepository interface {
	Create(product *Product) error
	FindByID(id uint) (*Product, error)
	FindBySKU(sku string) (*Product, error)
	FindAll(limit, offset int) ([]Product, error)
	FindByCategory(category string, limit, offset int) ([]Product, error)
	Update(product *Product) error
	Delete(id uint) error
	Count() (int64, error)
	UpdateStock(id uint, stock int) error

	// Home page sections
	FindTopSellers(limit int) ([]Product, error)
	FindNewest(limit int) ([]Product, error)
	FindRandomFeatured(limit int) ([]Product, error)

	// RecordSale bumps sales_count and decrements stock for a sold product
	RecordSale(id uint, quantity int) error
}
