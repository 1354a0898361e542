package models

import "time"

// Course represents a course offered by a department.
type Course struct {
	ID           int64     `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Code         string    `json:"code" db:"code"`
	DepartmentID int64     `json:"departmentId" db:"department_id"`
	IsActive     bool      `json:"isActive" db:"is_active"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`

	// Relation (populated when needed)
	Department *Department `json:"department,omitempty"`
}
