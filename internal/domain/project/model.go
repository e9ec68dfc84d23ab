package project

import "time"

// Project is a single entry on a user's board. The view layer treats it as
// an immutable value per render cycle.
type Project struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Overview  string    `json:"overview,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
