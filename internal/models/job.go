package models

import "time"

const (
	JobStatusActive = "active"

	// WorkDateLayout is the layout of Job.Date.
	WorkDateLayout = "2006-01-02"
)

type Job struct {
	ID           string    `json:"id"`
	ProviderID   string    `json:"providerId"`
	ProviderName string    `json:"providerName"`
	Title        string    `json:"title"`
	Profession   string    `json:"profession"`
	Description  string    `json:"description"`
	Location     string    `json:"location"`
	Date         string    `json:"date"`
	Contact      string    `json:"contact"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}
