package repository

import (
	"context"

	"inmate-management-backend/internal/models"

	"gorm.io/gorm"
)

type VisitorRepository struct {
	db *gorm.DB
}

func NewVisitorRepo(db *gorm.DB) *VisitorRepository {
	return &VisitorRepository{db: db}
}

// GetAllVisitors retrieves every visit log entry with the visited inmate preloaded
func (r *VisitorRepository) GetAllVisitors(ctx context.Context) ([]models.Visitor, error) {
	var visitors []models.Visitor
	err := r.db.WithContext(ctx).
		Preload("Inmate", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "inmate_id", "first_name", "last_name")
		}).
		Find(&visitors).Error
	return visitors, err
}

// CreateVisitor inserts a visit log entry
func (r *VisitorRepository) CreateVisitor(ctx context.Context, visitor *models.Visitor) error {
	return translate(r.db.WithContext(ctx).Create(visitor).Error)
}

// CountVisitors returns the number of visit log entries
func (r *VisitorRepository) CountVisitors(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Visitor{}).Count(&count).Error
	return count, err
}
