package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CellBlock string

const (
	BlockA CellBlock = "A"
	BlockB CellBlock = "B"
	BlockC CellBlock = "C"
)

type CellType string

const (
	CellTypeStandard CellType = "Standard"
	CellTypeSolitary CellType = "Solitary"
)

type CellStatus string

const (
	CellStatusAvailable   CellStatus = "Available"
	CellStatusFull        CellStatus = "Full"
	CellStatusEmpty       CellStatus = "Empty"
	CellStatusMaintenance CellStatus = "Maintenance"
)

// Cell represents the cells table.
// Occupants are the inmates whose cell_id points here; CurrentOccupancy
// mirrors their count and is only changed by the assignment operation.
type Cell struct {
	ID               string     `gorm:"type:char(36);primaryKey" json:"id"`
	CellNumber       string     `gorm:"size:50;not null;uniqueIndex" json:"cellNumber"`
	Block            CellBlock  `gorm:"size:5;not null" json:"block"`
	Capacity         int        `gorm:"not null" json:"capacity"`
	CurrentOccupancy int        `gorm:"not null;default:0" json:"currentOccupancy"`
	Status           CellStatus `gorm:"size:20;not null;default:'Empty'" json:"status"`
	UnderMaintenance bool       `gorm:"not null;default:false" json:"underMaintenance"`
	Type             CellType   `gorm:"size:20;not null" json:"type"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`

	// Relationships
	Inmates []Inmate `gorm:"foreignKey:CellID" json:"-"`
}

// TableName specifies the table name for Cell model
func (Cell) TableName() string {
	return "cells"
}

// BeforeCreate assigns the primary key
func (c *Cell) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// BeforeSave keeps Status consistent with occupancy and the maintenance flag
func (c *Cell) BeforeSave(tx *gorm.DB) error {
	c.Status = DeriveCellStatus(c.CurrentOccupancy, c.Capacity, c.UnderMaintenance)
	return nil
}

// DeriveCellStatus computes the stored status. Maintenance overrides the
// occupancy-derived state.
func DeriveCellStatus(occupancy, capacity int, underMaintenance bool) CellStatus {
	switch {
	case underMaintenance:
		return CellStatusMaintenance
	case occupancy >= capacity:
		return CellStatusFull
	case occupancy == 0:
		return CellStatusEmpty
	default:
		return CellStatusAvailable
	}
}

// IsFull reports whether the cell has reached capacity
func (c *Cell) IsFull() bool {
	return c.CurrentOccupancy >= c.Capacity
}

// CellWithOccupants is the listing view with occupants resolved
type CellWithOccupants struct {
	Cell
	Inmates []InmateSummary `json:"inmates"`
}
