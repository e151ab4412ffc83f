package domain

import "time"

// Course is a top-level training course made of modules.
type Course struct {
	ID          string
	Title       string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Module is a unit of course content.
type Module struct {
	ID        string
	CourseID  string
	Title     string
	Content   *string
	CreatedAt time.Time
}

// Lesson is an individual lesson inside a module.
type Lesson struct {
	ID          string
	ModuleID    string
	Title       string
	Description *string
	VideoURL    *string
	CreatedAt   time.Time
}
