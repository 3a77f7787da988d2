package models

import "time"

// AppointmentDB represents an appointment record in the database.
// The interval is half-open: [Start, End), End strictly after Start.
type AppointmentDB struct {
	ID             int64     `json:"id" db:"id"`                           // Primary key
	Start          time.Time `json:"start" db:"start_time"`                // Interval start, inclusive
	End            time.Time `json:"end" db:"end_time"`                    // Interval end, exclusive
	OrganizationID int64     `json:"organization_id" db:"organization_id"` // Scheduling scope
	UserID         int64     `json:"user_id" db:"user_id"`                 // Owning user
	CreatedAt      time.Time `json:"created_at" db:"created_at"`           // Creation timestamp
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`           // Last update timestamp
}

// ConflictsWith reports whether the candidate half-open interval [start, end)
// collides with the appointment's own interval: an exact duplicate or any
// overlap is a collision, intervals that only touch at a boundary are not.
// The overlap query in the appointment repository and the
// appointments_no_overlap constraint enforce this same rule in SQL.
func (a AppointmentDB) ConflictsWith(start, end time.Time) bool {
	if a.Start.Equal(start) && a.End.Equal(end) {
		return true
	}
	return a.Start.Before(end) && a.End.After(start)
}
