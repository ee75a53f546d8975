package model

// Registration is a read-only projection of one sign-up, fetched from
// the backend and never mutated here.
type Registration struct {
	ID           int    `json:"id,omitempty"`
	EventID      string `json:"eventId"`
	Name         string `json:"name"`
	Department   string `json:"department"`
	RegisteredAt string `json:"registeredAt,omitempty"`
}
