package models

import "time"

const ApplicationStatusPending = "pending"

// Application links a laborer to a job. At most one exists per (JobID, LaborerID).
type Application struct {
	ID          string    `json:"id"`
	JobID       string    `json:"jobId"`
	LaborerID   string    `json:"laborerId"`
	LaborerName string    `json:"laborerName"`
	AppliedAt   time.Time `json:"appliedAt"`
	Status      string    `json:"status"`
}
