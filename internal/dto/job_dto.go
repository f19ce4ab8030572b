package dto

import (
	"github.com/raghavenderreddy1707/Labour-Hub/internal/board"
	"github.com/raghavenderreddy1707/Labour-Hub/internal/models"
)

type JobListResponse struct {
	Jobs  []board.JobCard `json:"jobs"`
	Count int             `json:"count"`
}

type JobDetailsResponse struct {
	Job               board.JobCard     `json:"job"`
	Applicants        []board.Applicant `json:"applicants,omitempty"`
	ApplicantsVisible bool              `json:"applicantsVisible"`
}

type JobCreatedResponse struct {
	Message string      `json:"message"`
	Job     *models.Job `json:"job"`
}

type ApplicationResponse struct {
	Message     string              `json:"message"`
	Application *models.Application `json:"application"`
}

type BookmarkResponse struct {
	Message    string `json:"message"`
	Bookmarked bool   `json:"bookmarked"`
}

type LocationsResponse struct {
	Locations []string `json:"locations"`
}

type ThemeResponse struct {
	Theme models.Theme `json:"theme"`
}
