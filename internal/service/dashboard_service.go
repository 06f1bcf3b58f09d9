package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"inmate-management-backend/internal/repository"
)

const (
	dashboardLimit  = 5
	admissionWindow = 7 * 24 * time.Hour
	notAvailable    = "N/A"
	dateLayout      = "2006-01-02"
)

// Stat is one dashboard tile. Value is a count or a formatted string.
// The change/color/icon fields are static decoration the frontend expects.
type Stat struct {
	Title      string      `json:"title"`
	Value      interface{} `json:"value"`
	Change     string      `json:"change"`
	ChangeType string      `json:"changeType"`
	Color      string      `json:"color"`
	Icon       string      `json:"icon"`
}

// Activity is one entry of the recent activity feed
type Activity struct {
	ID      string `json:"id"`
	Action  string `json:"action"`
	Details string `json:"details"`
	Time    string `json:"time"`
}

// Release is an estimated upcoming release. The date is derived from the
// admission date and the parsed sentence; it is not a recorded fact.
type Release struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	InmateID    string `json:"inmateId"`
	Cell        string `json:"cell"`
	ReleaseDate string `json:"releaseDate"`
}

// DashboardService computes read-only aggregates straight from the store
type DashboardService struct {
	store *repository.Store
	now   func() time.Time
}

func NewDashboardService(store *repository.Store) *DashboardService {
	return &DashboardService{
		store: store,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// GetStats returns the four dashboard tiles
func (s *DashboardService) GetStats(ctx context.Context) ([]Stat, error) {
	total, err := s.store.Inmates.CountInmates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count inmates: %w", err)
	}

	admissions, err := s.store.Inmates.CountAdmittedSince(ctx, s.now().Add(-admissionWindow))
	if err != nil {
		return nil, fmt.Errorf("failed to count admissions: %w", err)
	}

	sentences, err := s.store.Inmates.GetSentenceLengths(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sentence lengths: %w", err)
	}

	totalCells, err := s.store.Cells.CountCells(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count cells: %w", err)
	}
	occupiedCells, err := s.store.Cells.CountOccupiedCells(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count occupied cells: %w", err)
	}

	return []Stat{
		{Title: "Total Inmates", Value: total, Change: "+5%", ChangeType: "increase", Color: "bg-blue-500", Icon: "Calendar"},
		{Title: "New Admissions", Value: admissions, Change: "-2%", ChangeType: "decrease", Color: "bg-green-500", Icon: "TrendingUp"},
		{Title: "Avg Sentence Length", Value: AverageSentence(sentences), Change: "+1%", ChangeType: "increase", Color: "bg-yellow-500", Icon: "Clock"},
		{Title: "Cells Occupied", Value: OccupiedPercent(occupiedCells, totalCells), Change: "+3%", ChangeType: "increase", Color: "bg-red-500", Icon: "MapPin"},
	}, nil
}

// GetRecentActivity returns the latest admissions as activity entries
func (s *DashboardService) GetRecentActivity(ctx context.Context) ([]Activity, error) {
	inmates, err := s.store.Inmates.GetRecentAdmissions(ctx, dashboardLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recent admissions: %w", err)
	}

	activity := make([]Activity, 0, len(inmates))
	for _, inmate := range inmates {
		activity = append(activity, Activity{
			ID:      inmate.ID,
			Action:  "Inmate Registered",
			Details: fmt.Sprintf("%s (ID: %s) admitted", inmate.FullName(), inmate.InmateID),
			Time:    inmate.AdmissionDate.UTC().Format(dateLayout),
		})
	}
	return activity, nil
}

// GetUpcomingReleases returns at most five estimated releases that are not
// in the past, soonest first
func (s *DashboardService) GetUpcomingReleases(ctx context.Context) ([]Release, error) {
	inmates, err := s.store.Inmates.GetActiveWithSentence(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch active inmates: %w", err)
	}

	now := s.now()
	type estimate struct {
		release Release
		at      time.Time
	}
	var estimates []estimate
	for _, inmate := range inmates {
		if inmate.SentenceLength == nil || inmate.AdmissionDate.IsZero() {
			continue
		}
		sentence, ok := ParseSentence(*inmate.SentenceLength)
		if !ok {
			continue
		}
		// releases are day-granular: one due today has already happened
		at := sentence.ReleaseFrom(inmate.AdmissionDate).UTC().Truncate(24 * time.Hour)
		if at.Before(now) {
			continue
		}
		cell := "Unassigned"
		if inmate.Cell != nil && inmate.Cell.CellNumber != "" {
			cell = inmate.Cell.CellNumber
		}
		estimates = append(estimates, estimate{
			release: Release{
				ID:          inmate.ID,
				Name:        inmate.FullName(),
				InmateID:    inmate.InmateID,
				Cell:        cell,
				ReleaseDate: at.UTC().Format(dateLayout),
			},
			at: at,
		})
	}

	sort.SliceStable(estimates, func(i, j int) bool {
		return estimates[i].at.Before(estimates[j].at)
	})

	releases := make([]Release, 0, dashboardLimit)
	for i := 0; i < len(estimates) && i < dashboardLimit; i++ {
		releases = append(releases, estimates[i].release)
	}
	return releases, nil
}

// AverageSentence averages the parseable sentence lengths to one decimal,
// e.g. "6.5 years". Unparseable entries are left out of both sums.
func AverageSentence(sentences []string) string {
	total, count := 0, 0
	for _, text := range sentences {
		if sentence, ok := ParseSentence(text); ok {
			total += sentence.Amount
			count++
		}
	}
	if count == 0 {
		return notAvailable
	}
	return fmt.Sprintf("%.1f years", float64(total)/float64(count))
}

// OccupiedPercent renders occupied/total as a rounded percentage
func OccupiedPercent(occupied, total int64) string {
	if total == 0 {
		return notAvailable
	}
	return fmt.Sprintf("%d%%", int64(math.Round(float64(occupied)/float64(total)*100)))
}
