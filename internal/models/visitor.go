package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VisitStatus string

const (
	VisitStatusCompleted  VisitStatus = "Completed"
	VisitStatusInProgress VisitStatus = "In-progress"
	VisitStatusCancelled  VisitStatus = "Cancelled"
)

// Visitor represents the visitors table (one row per visit log entry).
// Entries are immutable once created.
type Visitor struct {
	ID           string      `gorm:"type:char(36);primaryKey" json:"id"`
	VisitorName  string      `gorm:"size:255;not null" json:"visitorName"`
	VisitorID    string      `gorm:"size:100" json:"visitorId,omitempty"`
	InmateRef    string      `gorm:"type:char(36);not null;index" json:"-"`
	VisitDate    time.Time   `gorm:"not null;index" json:"visitDate"`
	VisitTime    string      `gorm:"size:50;not null" json:"visitTime"`
	Duration     string      `gorm:"size:50" json:"duration,omitempty"`
	Relationship string      `gorm:"size:100;not null" json:"relationship"`
	Purpose      string      `gorm:"size:255" json:"purpose,omitempty"`
	Notes        string      `gorm:"type:text" json:"notes,omitempty"`
	Status       VisitStatus `gorm:"size:20;not null;default:'Completed'" json:"status"`
	CreatedAt    time.Time   `json:"createdAt"`

	// Relationships
	Inmate *Inmate `gorm:"foreignKey:InmateRef" json:"-"`
}

// TableName specifies the table name for Visitor model
func (Visitor) TableName() string {
	return "visitors"
}

// BeforeCreate assigns the primary key and the default status
func (v *Visitor) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	if v.Status == "" {
		v.Status = VisitStatusCompleted
	}
	return nil
}

// VisitorWithInmate is the listing view with the visited inmate resolved
type VisitorWithInmate struct {
	Visitor
	Inmate *InmateSummary `json:"inmate"`
}
