package service

import (
	"context"
	"sync"
	"testing"

	"inmate-management-backend/internal/events"
	"inmate-management-backend/internal/models"
	"inmate-management-backend/internal/repository"
	"inmate-management-backend/internal/testutil"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (p *recordingPublisher) Publish(_ context.Context, event events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

type fixture struct {
	db        *gorm.DB
	store     *repository.Store
	events    *recordingPublisher
	cells     *CellService
	inmates   *InmateService
	visitors  *VisitorService
	dashboard *DashboardService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.NewDB(t)
	store := repository.NewStore(db)
	pub := &recordingPublisher{}
	log := zap.NewNop()
	return &fixture{
		db:        db,
		store:     store,
		events:    pub,
		cells:     NewCellService(store, pub, log),
		inmates:   NewInmateService(store, pub, log),
		visitors:  NewVisitorService(store, pub, log),
		dashboard: NewDashboardService(store),
	}
}

func intPtr(n int) *int { return &n }

func inmateRequest(inmateID, admitted, sentence string) CreateInmateRequest {
	return CreateInmateRequest{
		InmateID:       inmateID,
		FirstName:      "Chinedu",
		LastName:       "Okafor",
		DateOfBirth:    "1988-02-14",
		Age:            intPtr(37),
		Gender:         "Male",
		Offense:        "Armed robbery",
		AdmissionDate:  admitted,
		SentenceLength: sentence,
		Status:         "Active",
	}
}

func (f *fixture) mustCreateCell(t *testing.T, number string, capacity int) *models.Cell {
	t.Helper()
	cell, err := f.cells.CreateCell(context.Background(), CreateCellRequest{
		CellNumber: number,
		Block:      "A",
		Capacity:   intPtr(capacity),
		Type:       "Standard",
	})
	require.NoError(t, err)
	return cell
}

func (f *fixture) mustCreateInmate(t *testing.T, req CreateInmateRequest) *models.Inmate {
	t.Helper()
	inmate, err := f.inmates.CreateInmate(context.Background(), req)
	require.NoError(t, err)
	return inmate
}

func (f *fixture) reloadCell(t *testing.T, id string) *models.Cell {
	t.Helper()
	cell, err := f.store.Cells.GetCellByID(context.Background(), id)
	require.NoError(t, err)
	return cell
}

func (f *fixture) reloadInmate(t *testing.T, inmateID string) *models.Inmate {
	t.Helper()
	inmate, err := f.store.Inmates.GetInmateByInmateID(context.Background(), inmateID)
	require.NoError(t, err)
	return inmate
}
