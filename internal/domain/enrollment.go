package domain

import "time"

// Enrollment links a user to a course. Progress is a 0-100 percentage.
type Enrollment struct {
	ID        string
	UserID    string
	CourseID  string
	Progress  int
	CreatedAt time.Time
}
