package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"inmate-management-backend/internal/events"
	"inmate-management-backend/internal/models"
	"inmate-management-backend/internal/repository"
	"inmate-management-backend/internal/validation"

	"go.uber.org/zap"
)

const msgInmateExists = "Inmate ID already exists"

type InmateService struct {
	store  *repository.Store
	events events.Publisher
	log    *zap.Logger
}

func NewInmateService(store *repository.Store, publisher events.Publisher, log *zap.Logger) *InmateService {
	return &InmateService{
		store:  store,
		events: publisher,
		log:    log,
	}
}

// CreateInmateRequest is the inbound body for inmate registration
type CreateInmateRequest struct {
	InmateID         string `json:"inmateId" validate:"required"`
	FirstName        string `json:"firstName" validate:"required"`
	LastName         string `json:"lastName" validate:"required"`
	DateOfBirth      string `json:"dateOfBirth" validate:"required,date"`
	Age              *int   `json:"age" validate:"required,min=0"`
	Gender           string `json:"gender" validate:"required,oneof=Male Female Other"`
	Offense          string `json:"offense" validate:"required"`
	AdmissionDate    string `json:"admissionDate" validate:"required,date"`
	SentenceLength   string `json:"sentenceLength"`
	EmergencyContact string `json:"emergencyContact"`
	EmergencyPhone   string `json:"emergencyPhone"`
	Notes            string `json:"notes"`
	Status           string `json:"status" validate:"required,oneof=Active Released Transferred"`
}

// GetAllInmates lists every inmate with the assigned cell number resolved
func (s *InmateService) GetAllInmates(ctx context.Context) ([]models.InmateWithCell, error) {
	inmates, err := s.store.Inmates.GetAllInmates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch inmates: %w", err)
	}

	result := make([]models.InmateWithCell, 0, len(inmates))
	for _, inmate := range inmates {
		view := models.InmateWithCell{Inmate: inmate}
		if inmate.Cell != nil {
			view.Cell = &models.CellRef{ID: inmate.Cell.ID, CellNumber: inmate.Cell.CellNumber}
		}
		view.Inmate.Cell = nil
		result = append(result, view)
	}
	return result, nil
}

// CreateInmate validates and registers a new inmate with no cell
func (s *InmateService) CreateInmate(ctx context.Context, req CreateInmateRequest) (*models.Inmate, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	exists, err := s.store.Inmates.InmateIDExists(ctx, req.InmateID)
	if err != nil {
		return nil, fmt.Errorf("failed to check inmate id: %w", err)
	}
	if exists {
		return nil, newError(ErrDuplicate, msgInmateExists)
	}

	// already validated by the date rule
	dob, _ := validation.ParseDate(req.DateOfBirth)
	admitted, _ := validation.ParseDate(req.AdmissionDate)

	inmate := &models.Inmate{
		InmateID:         req.InmateID,
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		DateOfBirth:      dob,
		Age:              *req.Age,
		Gender:           models.Gender(req.Gender),
		Offense:          req.Offense,
		AdmissionDate:    admitted,
		EmergencyContact: req.EmergencyContact,
		EmergencyPhone:   req.EmergencyPhone,
		Notes:            req.Notes,
		Status:           models.InmateStatus(req.Status),
	}
	if sentence := strings.TrimSpace(req.SentenceLength); sentence != "" {
		inmate.SentenceLength = &sentence
	}

	if err := s.store.Inmates.CreateInmate(ctx, inmate); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, newError(ErrDuplicate, msgInmateExists)
		}
		return nil, fmt.Errorf("failed to create inmate: %w", err)
	}

	s.log.Info("inmate registered", zap.String("inmate_id", inmate.InmateID), zap.String("id", inmate.ID))
	events.Emit(ctx, s.events, s.log, events.New(events.InmateRegistered, inmate.Summary()))

	return inmate, nil
}
