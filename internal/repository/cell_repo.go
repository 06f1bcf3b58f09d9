package repository

import (
	"context"

	"inmate-management-backend/internal/models"

	"gorm.io/gorm"
)

type CellRepository struct {
	db *gorm.DB
}

func NewCellRepo(db *gorm.DB) *CellRepository {
	return &CellRepository{db: db}
}

// GetAllCells retrieves every cell with its occupants in assignment order
func (r *CellRepository) GetAllCells(ctx context.Context) ([]models.Cell, error) {
	var cells []models.Cell
	err := r.db.WithContext(ctx).
		Preload("Inmates", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "inmate_id", "first_name", "last_name", "cell_id", "assigned_at").
				Order("assigned_at ASC")
		}).
		Find(&cells).Error
	return cells, err
}

// GetCellByID retrieves a cell by primary key
func (r *CellRepository) GetCellByID(ctx context.Context, id string) (*models.Cell, error) {
	var cell models.Cell
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&cell).Error; err != nil {
		return nil, translate(err)
	}
	return &cell, nil
}

// CellNumberExists checks the natural key
func (r *CellRepository) CellNumberExists(ctx context.Context, cellNumber string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Cell{}).
		Where("cell_number = ?", cellNumber).
		Count(&count).Error
	return count > 0, err
}

// CreateCell inserts a new cell
func (r *CellRepository) CreateCell(ctx context.Context, cell *models.Cell) error {
	return translate(r.db.WithContext(ctx).Create(cell).Error)
}

// IncrementOccupancy adds one occupant only while the cell is below capacity.
// It reports false when the guard rejected the update.
func (r *CellRepository) IncrementOccupancy(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).Model(&models.Cell{}).
		Where("id = ? AND current_occupancy < capacity", id).
		UpdateColumn("current_occupancy", gorm.Expr("current_occupancy + ?", 1))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

// UpdateStatus stores a recomputed status without touching other columns
func (r *CellRepository) UpdateStatus(ctx context.Context, id string, status models.CellStatus) error {
	return r.db.WithContext(ctx).Model(&models.Cell{}).
		Where("id = ?", id).
		UpdateColumn("status", status).Error
}

// CountCells returns the total number of cells
func (r *CellRepository) CountCells(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Cell{}).Count(&count).Error
	return count, err
}

// CountOccupiedCells returns the number of cells with at least one occupant
func (r *CellRepository) CountOccupiedCells(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Cell{}).
		Where("current_occupancy > ?", 0).
		Count(&count).Error
	return count, err
}
