package models

import (
	"time"

	"gorm.io/gorm"
)

// Position is an employee's role code.
type Position string

const (
	PositionAO Position = "AO" // Account Officer
	PositionFO Position = "FO" // Funding Officer
)

// Valid reports whether p is one of the known position codes.
func (p Position) Valid() bool {
	return p == PositionAO || p == PositionFO
}

// Employee owns the targets assigned to them. Deleting an employee is a
// soft delete: their targets and achievements stay in place for reporting.
type Employee struct {
	Base
	Name           string         `gorm:"not null" json:"name"`
	Position       Position       `gorm:"type:varchar(2);not null;index" json:"position"`
	OfficeLocation string         `gorm:"not null" json:"office_location"`
	EntryDate      time.Time      `gorm:"not null" json:"entry_date"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	Targets []Target `gorm:"foreignKey:EmployeeID" json:"targets"`
}
