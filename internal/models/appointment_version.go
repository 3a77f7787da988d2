package models

import "time"

// AppointmentVersionDB is an immutable snapshot of a superseded appointment interval.
// Rows are append-only: written alongside every appointment update, never mutated.
type AppointmentVersionDB struct {
	ID            int64     `json:"id" db:"id"`                         // Primary key
	AppointmentID int64     `json:"appointment_id" db:"appointment_id"` // Appointment this snapshot belongs to
	Start         time.Time `json:"start" db:"start_time"`              // Pre-update interval start
	End           time.Time `json:"end" db:"end_time"`                  // Pre-update interval end
	CreatedAt     time.Time `json:"created_at" db:"created_at"`         // Snapshot timestamp
}
