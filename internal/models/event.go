package models

// AppointmentEvent is published to Kafka on every appointment mutation
type AppointmentEvent struct {
	EventID        string `json:"event_id"`        // Unique event identifier
	Timestamp      int64  `json:"timestamp"`       // Unix timestamp of the mutation
	Operation      string `json:"operation"`       // "created", "updated" or "deleted"
	AppointmentID  int64  `json:"appointment_id"`  // Affected appointment
	OrganizationID int64  `json:"organization_id"` // Scheduling scope
	UserID         int64  `json:"user_id"`         // Acting user
}
