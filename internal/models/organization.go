package models

import "time"

// OrganizationDB represents an organization record in the database
type OrganizationDB struct {
	ID        int64     `json:"id" db:"id"`                 // Primary key
	Name      string    `json:"name" db:"name"`             // Organization name
	UserID    int64     `json:"user_id" db:"user_id"`       // Owning user
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"` // Last update timestamp
}
