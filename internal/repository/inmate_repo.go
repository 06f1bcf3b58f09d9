package repository

import (
	"context"
	"time"

	"inmate-management-backend/internal/models"

	"gorm.io/gorm"
)

type InmateRepository struct {
	db *gorm.DB
}

func NewInmateRepo(db *gorm.DB) *InmateRepository {
	return &InmateRepository{db: db}
}

func preloadCellNumber(db *gorm.DB) *gorm.DB {
	return db.Select("id", "cell_number")
}

// GetAllInmates retrieves every inmate with the assigned cell number preloaded
func (r *InmateRepository) GetAllInmates(ctx context.Context) ([]models.Inmate, error) {
	var inmates []models.Inmate
	err := r.db.WithContext(ctx).
		Preload("Cell", preloadCellNumber).
		Find(&inmates).Error
	return inmates, err
}

// GetInmateByInmateID retrieves an inmate by the natural key
func (r *InmateRepository) GetInmateByInmateID(ctx context.Context, inmateID string) (*models.Inmate, error) {
	var inmate models.Inmate
	if err := r.db.WithContext(ctx).Where("inmate_id = ?", inmateID).First(&inmate).Error; err != nil {
		return nil, translate(err)
	}
	return &inmate, nil
}

// InmateIDExists checks the natural key
func (r *InmateRepository) InmateIDExists(ctx context.Context, inmateID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Inmate{}).
		Where("inmate_id = ?", inmateID).
		Count(&count).Error
	return count > 0, err
}

// CreateInmate inserts a new inmate
func (r *InmateRepository) CreateInmate(ctx context.Context, inmate *models.Inmate) error {
	return translate(r.db.WithContext(ctx).Create(inmate).Error)
}

// AssignCell sets the cell reference of an unassigned inmate and marks it
// Active. It reports false when the inmate already had a cell.
func (r *InmateRepository) AssignCell(ctx context.Context, id, cellID string, at time.Time) (bool, error) {
	result := r.db.WithContext(ctx).Model(&models.Inmate{}).
		Where("id = ? AND cell_id IS NULL", id).
		UpdateColumns(map[string]interface{}{
			"cell_id":     cellID,
			"assigned_at": at,
			"status":      models.InmateStatusActive,
			"updated_at":  at,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

// CountInmates returns the total number of inmates
func (r *InmateRepository) CountInmates(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Inmate{}).Count(&count).Error
	return count, err
}

// CountAdmittedSince returns the number of inmates admitted at or after since
func (r *InmateRepository) CountAdmittedSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Inmate{}).
		Where("admission_date >= ?", since).
		Count(&count).Error
	return count, err
}

// GetSentenceLengths returns every non-null sentence length string
func (r *InmateRepository) GetSentenceLengths(ctx context.Context) ([]string, error) {
	var sentences []string
	err := r.db.WithContext(ctx).Model(&models.Inmate{}).
		Where("sentence_length IS NOT NULL").
		Pluck("sentence_length", &sentences).Error
	return sentences, err
}

// GetRecentAdmissions returns the most recently admitted inmates
func (r *InmateRepository) GetRecentAdmissions(ctx context.Context, limit int) ([]models.Inmate, error) {
	var inmates []models.Inmate
	err := r.db.WithContext(ctx).
		Select("id", "inmate_id", "first_name", "last_name", "admission_date").
		Order("admission_date DESC").
		Limit(limit).
		Find(&inmates).Error
	return inmates, err
}

// GetActiveWithSentence returns Active inmates that carry a sentence length,
// with the assigned cell number preloaded
func (r *InmateRepository) GetActiveWithSentence(ctx context.Context) ([]models.Inmate, error) {
	var inmates []models.Inmate
	err := r.db.WithContext(ctx).
		Where("status = ? AND sentence_length IS NOT NULL", models.InmateStatusActive).
		Preload("Cell", preloadCellNumber).
		Find(&inmates).Error
	return inmates, err
}
