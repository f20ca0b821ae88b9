package models

import "time"

// Department defines the department model based on the 'departments' table
type Department struct {
	ID            int64     `json:"id" db:"id"`
	Name          string    `json:"name" db:"name"`
	HeadFacultyID *int64    `json:"headFacultyId,omitempty" db:"head_faculty_id"`
	Building      *string   `json:"building,omitempty" db:"building"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
}
