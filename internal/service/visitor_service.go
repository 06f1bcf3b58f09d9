package service

import (
	"context"
	"errors"
	"fmt"

	"inmate-management-backend/internal/events"
	"inmate-management-backend/internal/models"
	"inmate-management-backend/internal/repository"
	"inmate-management-backend/internal/validation"

	"go.uber.org/zap"
)

type VisitorService struct {
	store  *repository.Store
	events events.Publisher
	log    *zap.Logger
}

func NewVisitorService(store *repository.Store, publisher events.Publisher, log *zap.Logger) *VisitorService {
	return &VisitorService{
		store:  store,
		events: publisher,
		log:    log,
	}
}

// CreateVisitorRequest is the inbound body for a visit log entry
type CreateVisitorRequest struct {
	VisitorName  string `json:"visitorName" validate:"required"`
	VisitorID    string `json:"visitorId"`
	InmateID     string `json:"inmateId" validate:"required"`
	VisitDate    string `json:"visitDate" validate:"required,date"`
	VisitTime    string `json:"visitTime" validate:"required"`
	Duration     string `json:"duration"`
	Relationship string `json:"relationship" validate:"required"`
	Purpose      string `json:"purpose"`
	Notes        string `json:"notes"`
	Status       string `json:"status" validate:"omitempty,oneof=Completed In-progress Cancelled"`
}

// GetAllVisitors lists every visit log entry with the inmate resolved
func (s *VisitorService) GetAllVisitors(ctx context.Context) ([]models.VisitorWithInmate, error) {
	visitors, err := s.store.Visitors.GetAllVisitors(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch visitors: %w", err)
	}

	result := make([]models.VisitorWithInmate, 0, len(visitors))
	for _, visitor := range visitors {
		result = append(result, withInmate(visitor))
	}
	return result, nil
}

// CreateVisitor resolves the inmate by its natural key and stores the
// visit. Nothing is written when the inmate does not exist.
func (s *VisitorService) CreateVisitor(ctx context.Context, req CreateVisitorRequest) (*models.VisitorWithInmate, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	inmate, err := s.store.Inmates.GetInmateByInmateID(ctx, req.InmateID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, newError(ErrNotFound, msgInmateNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch inmate: %w", err)
	}

	visitDate, _ := validation.ParseDate(req.VisitDate)

	visitor := models.Visitor{
		VisitorName:  req.VisitorName,
		VisitorID:    req.VisitorID,
		InmateRef:    inmate.ID,
		VisitDate:    visitDate,
		VisitTime:    req.VisitTime,
		Duration:     req.Duration,
		Relationship: req.Relationship,
		Purpose:      req.Purpose,
		Notes:        req.Notes,
		Status:       models.VisitStatus(req.Status),
	}
	if err := s.store.Visitors.CreateVisitor(ctx, &visitor); err != nil {
		return nil, fmt.Errorf("failed to create visitor: %w", err)
	}

	visitor.Inmate = inmate
	view := withInmate(visitor)

	s.log.Info("visit logged", zap.String("inmate_id", inmate.InmateID), zap.String("visitor", visitor.VisitorName))
	events.Emit(ctx, s.events, s.log, events.New(events.VisitLogged, view))

	return &view, nil
}

func withInmate(visitor models.Visitor) models.VisitorWithInmate {
	view := models.VisitorWithInmate{Visitor: visitor}
	if visitor.Inmate != nil {
		summary := visitor.Inmate.Summary()
		view.Inmate = &summary
	}
	view.Visitor.Inmate = nil
	return view
}
