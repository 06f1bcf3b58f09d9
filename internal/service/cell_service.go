package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"inmate-management-backend/internal/events"
	"inmate-management-backend/internal/models"
	"inmate-management-backend/internal/repository"

	"go.uber.org/zap"
)

const (
	msgCellNotFound       = "Cell not found"
	msgInmateNotFound     = "Inmate not found"
	msgCellExists         = "Cell number already exists"
	msgAssignedElsewhere  = "Inmate already assigned to another cell"
	msgCellFull           = "Cell is full"
	msgAssignedHere       = "Inmate already assigned to this cell"
	msgInmateIDRequired   = `"inmateId" is required`
	msgAssignedSuccessful = "Inmate assigned successfully"
)

type CellService struct {
	store  *repository.Store
	events events.Publisher
	log    *zap.Logger
	now    func() time.Time
}

func NewCellService(store *repository.Store, publisher events.Publisher, log *zap.Logger) *CellService {
	return &CellService{
		store:  store,
		events: publisher,
		log:    log,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// CreateCellRequest is the inbound body for cell creation
type CreateCellRequest struct {
	CellNumber string `json:"cellNumber" validate:"required"`
	Block      string `json:"block" validate:"required,oneof=A B C"`
	Capacity   *int   `json:"capacity" validate:"required,min=1"`
	Type       string `json:"type" validate:"required,oneof=Standard Solitary"`
	Status     string `json:"status" validate:"omitempty,oneof=Available Full Empty Maintenance"`
}

// GetAllCells lists every cell with its occupants resolved
func (s *CellService) GetAllCells(ctx context.Context) ([]models.CellWithOccupants, error) {
	cells, err := s.store.Cells.GetAllCells(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch cells: %w", err)
	}

	result := make([]models.CellWithOccupants, 0, len(cells))
	for _, cell := range cells {
		occupants := make([]models.InmateSummary, 0, len(cell.Inmates))
		for i := range cell.Inmates {
			occupants = append(occupants, cell.Inmates[i].Summary())
		}
		cell.Inmates = nil
		result = append(result, models.CellWithOccupants{Cell: cell, Inmates: occupants})
	}
	return result, nil
}

// CreateCell validates and stores a new, empty cell. A requested
// "Maintenance" status sets the maintenance flag; any other status is
// derived from occupancy.
func (s *CellService) CreateCell(ctx context.Context, req CreateCellRequest) (*models.Cell, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	exists, err := s.store.Cells.CellNumberExists(ctx, req.CellNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to check cell number: %w", err)
	}
	if exists {
		return nil, newError(ErrDuplicate, msgCellExists)
	}

	cell := &models.Cell{
		CellNumber:       req.CellNumber,
		Block:            models.CellBlock(req.Block),
		Capacity:         *req.Capacity,
		Type:             models.CellType(req.Type),
		UnderMaintenance: models.CellStatus(req.Status) == models.CellStatusMaintenance,
	}
	if err := s.store.Cells.CreateCell(ctx, cell); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, newError(ErrDuplicate, msgCellExists)
		}
		return nil, fmt.Errorf("failed to create cell: %w", err)
	}

	s.log.Info("cell created", zap.String("cell_number", cell.CellNumber), zap.String("id", cell.ID))
	events.Emit(ctx, s.events, s.log, events.New(events.CellCreated, cell))

	return cell, nil
}

// AssignInmate places an inmate in a cell. Preconditions are checked in
// this order: cell exists, inmate exists, inmate not in another cell,
// cell below capacity, inmate not already in this cell.
//
// Both writes happen in one transaction and each is guarded, so a
// concurrent assignment that slipped past the checks above rolls the
// whole operation back instead of overfilling the cell.
func (s *CellService) AssignInmate(ctx context.Context, cellID, inmateID string) (string, error) {
	var assigned *events.AssignmentPayload

	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		cell, err := tx.Cells.GetCellByID(ctx, cellID)
		if errors.Is(err, repository.ErrNotFound) {
			return newError(ErrNotFound, msgCellNotFound)
		}
		if err != nil {
			return fmt.Errorf("failed to fetch cell: %w", err)
		}

		if inmateID == "" {
			return newError(ErrValidation, msgInmateIDRequired)
		}

		inmate, err := tx.Inmates.GetInmateByInmateID(ctx, inmateID)
		if errors.Is(err, repository.ErrNotFound) {
			return newError(ErrNotFound, msgInmateNotFound)
		}
		if err != nil {
			return fmt.Errorf("failed to fetch inmate: %w", err)
		}

		if inmate.CellID != nil && *inmate.CellID != cell.ID {
			return newError(ErrConflict, msgAssignedElsewhere)
		}
		if cell.IsFull() {
			return newError(ErrConflict, msgCellFull)
		}
		if inmate.CellID != nil {
			return newError(ErrConflict, msgAssignedHere)
		}

		ok, err := tx.Inmates.AssignCell(ctx, inmate.ID, cell.ID, s.now())
		if err != nil {
			return fmt.Errorf("failed to update inmate: %w", err)
		}
		if !ok {
			return newError(ErrConflict, msgAssignedElsewhere)
		}

		ok, err = tx.Cells.IncrementOccupancy(ctx, cell.ID)
		if err != nil {
			return fmt.Errorf("failed to update cell: %w", err)
		}
		if !ok {
			return newError(ErrConflict, msgCellFull)
		}

		// re-read: a concurrent assignment may have committed since the first read
		cell, err = tx.Cells.GetCellByID(ctx, cell.ID)
		if err != nil {
			return fmt.Errorf("failed to reload cell: %w", err)
		}
		occupancy := cell.CurrentOccupancy
		status := models.DeriveCellStatus(occupancy, cell.Capacity, cell.UnderMaintenance)
		if err := tx.Cells.UpdateStatus(ctx, cell.ID, status); err != nil {
			return fmt.Errorf("failed to update cell status: %w", err)
		}

		assigned = &events.AssignmentPayload{
			CellID:           cell.ID,
			CellNumber:       cell.CellNumber,
			InmateID:         inmate.InmateID,
			CurrentOccupancy: occupancy,
			Capacity:         cell.Capacity,
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	s.log.Info("inmate assigned",
		zap.String("cell_number", assigned.CellNumber),
		zap.String("inmate_id", assigned.InmateID),
		zap.Int("occupancy", assigned.CurrentOccupancy))
	events.Emit(ctx, s.events, s.log, events.New(events.InmateAssigned, assigned))

	return msgAssignedSuccessful, nil
}
