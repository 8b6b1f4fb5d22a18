package domain

import "time"

// Favourite links a user to a course code. The code is not required to
// resolve to an existing course.
type Favourite struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Code      int       `json:"code"`
	CreatedAt time.Time `json:"created_at"`
}
