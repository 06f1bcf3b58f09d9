package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

type InmateStatus string

const (
	InmateStatusActive      InmateStatus = "Active"
	InmateStatusReleased    InmateStatus = "Released"
	InmateStatusTransferred InmateStatus = "Transferred"
)

// Inmate represents the inmates table
type Inmate struct {
	ID               string       `gorm:"type:char(36);primaryKey" json:"id"`
	InmateID         string       `gorm:"size:50;not null;uniqueIndex" json:"inmateId"`
	FirstName        string       `gorm:"size:100;not null" json:"firstName"`
	LastName         string       `gorm:"size:100;not null" json:"lastName"`
	DateOfBirth      time.Time    `gorm:"not null" json:"dateOfBirth"`
	Age              int          `gorm:"not null" json:"age"`
	Gender           Gender       `gorm:"size:10;not null" json:"gender"`
	Offense          string       `gorm:"type:text;not null" json:"offense"`
	AdmissionDate    time.Time    `gorm:"not null;index" json:"admissionDate"`
	SentenceLength   *string      `gorm:"size:100" json:"sentenceLength,omitempty"` // free text, e.g. "8 years"
	EmergencyContact string       `gorm:"size:255" json:"emergencyContact,omitempty"`
	EmergencyPhone   string       `gorm:"size:50" json:"emergencyPhone,omitempty"`
	Notes            string       `gorm:"type:text" json:"notes,omitempty"`
	CellID           *string      `gorm:"type:char(36);index" json:"-"`
	AssignedAt       *time.Time   `json:"assignedAt,omitempty"`
	Status           InmateStatus `gorm:"size:20;not null;index" json:"status"`
	CreatedAt        time.Time    `json:"createdAt"`
	UpdatedAt        time.Time    `json:"updatedAt"`

	// Relationships
	Cell *Cell `gorm:"foreignKey:CellID" json:"-"`
}

// TableName specifies the table name for Inmate model
func (Inmate) TableName() string {
	return "inmates"
}

// BeforeCreate assigns the primary key
func (i *Inmate) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}

// FullName joins first and last name
func (i *Inmate) FullName() string {
	return i.FirstName + " " + i.LastName
}

// Summary returns the minimal identity fields used in joined listings
func (i *Inmate) Summary() InmateSummary {
	return InmateSummary{
		ID:        i.ID,
		InmateID:  i.InmateID,
		FirstName: i.FirstName,
		LastName:  i.LastName,
	}
}

// InmateSummary is the minimal inmate identity embedded in other listings
type InmateSummary struct {
	ID        string `json:"id"`
	InmateID  string `json:"inmateId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// CellRef is the minimal cell identity embedded in inmate listings
type CellRef struct {
	ID         string `json:"id"`
	CellNumber string `json:"cellNumber"`
}

// InmateWithCell is the listing view with the assigned cell resolved
type InmateWithCell struct {
	Inmate
	Cell *CellRef `json:"cell"`
}
