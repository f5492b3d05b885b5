package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/samuraistore/backend/internal/favorites/domain"
)

var tracer = otel.Tracer("favorites-repository")

// GormFavoriteRepositoryWithTracing wraps GormFavoriteRepository with tracing
type GormFavoriteRepositoryWithTracing struct {
	*GormFavoriteRepository
}

// NewGormFavoriteRepositoryWithTracing creates a new repository with tracing
func NewGormFavoriteRepositoryWithTracing(db *gorm.DB) *GormFavoriteRepositoryWithTracing {
	return &GormFavoriteRepositoryWithTracing{
		GormFavoriteRepository: NewGormFavoriteRepository(db),
	}
}

// Exists with tracing
func (r *GormFavoriteRepositoryWithTracing) ExistsWithContext(ctx context.Context, userID, productID uint) (bool, error) {
	_, span := tracer.Start(ctx, "repository.Exists",
		trace.WithAttributes(
			attribute.Int("user.id", int(userID)),
			attribute.Int("product.id", int(productID)),
		),
	)
	defer span.End()

	found, err := r.GormFavoriteRepository.Exists(userID, productID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return false, err
	}

	span.SetAttributes(attribute.Bool("favorite.exists", found))
	return found, nil
}

// InsertIfAbsent with tracing
func (r *GormFavoriteRepositoryWithTracing) InsertIfAbsentWithContext(ctx context.Context, userID, productID uint) error {
	_, span := tracer.Start(ctx, "repository.InsertIfAbsent",
		trace.WithAttributes(
			attribute.Int("user.id", int(userID)),
			attribute.Int("product.id", int(productID)),
		),
	)
	defer span.End()

	err := r.GormFavoriteRepository.InsertIfAbsent(userID, productID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}

// Delete with tracing
func (r *GormFavoriteRepositoryWithTracing) DeleteWithContext(ctx context.Context, userID, productID uint) error {
	_, span := tracer.Start(ctx, "repository.Delete",
		trace.WithAttributes(
			attribute.Int("user.id", int(userID)),
			attribute.Int("product.id", int(productID)),
		),
	)
	defer span.End()

	err := r.GormFavoriteRepository.Delete(userID, productID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}

// ListByUser with tracing
func (r *GormFavoriteRepositoryWithTracing) ListByUserWithContext(ctx context.Context, userID uint) ([]domain.FavoriteProjection, error) {
	_, span := tracer.Start(ctx, "repository.ListByUser",
		trace.WithAttributes(
			attribute.Int("user.id", int(userID)),
		),
	)
	defer span.End()

	projections, err := r.GormFavoriteRepository.ListByUser(userID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("favorites.count", len(projections)))
	return projections, nil
}
