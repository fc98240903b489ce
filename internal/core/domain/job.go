package domain

import "time"

// Job is a posted listing. Date is an ISO calendar date (YYYY-MM-DD) and pay
// is free text ("$15/hr", "stipend", ...). A job is owned by the employer who
// posted it; only the owner may update it, and only the owner or the admin
// may delete it.
type Job struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Date       string    `json:"date"`
	Pay        string    `json:"pay"`
	EmployerID string    `json:"employer_id"`
	CreatedAt  time.Time `json:"created_at"`
}
