package models

import "time"

// JobOpening is a position listed on the careers page
type JobOpening struct {
	ID               string    `json:"id" db:"job_id"`
	Slug             string    `json:"slug" db:"slug"`
	Title            string    `json:"title" db:"title"`
	Department       string    `json:"department" db:"department"`
	Location         string    `json:"location" db:"location"`
	Type             string    `json:"type" db:"employment_type"`
	PostedDate       time.Time `json:"posted_date" db:"posted_date"`
	Responsibilities []string  `json:"responsibilities,omitempty"`
	Requirements     []string  `json:"requirements,omitempty"`
	Qualifications   []string  `json:"qualifications,omitempty"`
	Benefits         []string  `json:"benefits,omitempty"`
}

// Event is a trade show or exhibition the company attends
type Event struct {
	ID        string     `json:"id" db:"event_id"`
	Name      string     `json:"name" db:"name"`
	Details   string     `json:"details,omitempty" db:"details"`
	Image     string     `json:"image,omitempty" db:"image"`
	Venue     string     `json:"venue,omitempty" db:"venue"`
	StartDate *time.Time `json:"start_date,omitempty" db:"start_date"`
	EndDate   *time.Time `json:"end_date,omitempty" db:"end_date"`
}

// Location is an office or factory site
type Location struct {
	ID      string `json:"id" db:"location_id"`
	Name    string `json:"name" db:"name"`
	Details string `json:"details,omitempty" db:"details"`
	Image   string `json:"image,omitempty" db:"image"`
}

// Certification is a company-level quality credential (ISO, organic, kosher...)
type Certification struct {
	ID      string `json:"id" db:"certification_id"`
	Name    string `json:"name" db:"name"`
	Details string `json:"details,omitempty" db:"details"`
	Image   string `json:"image,omitempty" db:"image"`
}
