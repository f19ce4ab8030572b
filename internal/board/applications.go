package board

import (
	"context"
	"strings"

	"github.com/raghavenderreddy1707/Labour-Hub/internal/apperr"
	"github.com/raghavenderreddy1707/Labour-Hub/internal/models"
)

const (
	MsgLaborerOnly    = "Only laborers can apply to jobs"
	MsgAlreadyApplied = "You have already applied to this job!"
)

// ApplyToJob records a pending application from the session's laborer.
// A second application to the same job is rejected.
func (s *Store) ApplyToJob(ctx context.Context, jobID string, session Session) (*models.Application, error) {
	if !session.Is(models.RoleLaborer) {
		return nil, apperr.Forbidden(MsgLaborerOnly)
	}

	// jobID may alias a request buffer; the application outlives it.
	jobID = strings.Clone(jobID)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.findJob(jobID); !ok {
		return nil, apperr.NotFound(MsgJobNotFound)
	}
	if s.hasApplied(jobID, session.User.ID) {
		return nil, apperr.Duplicate(MsgAlreadyApplied)
	}

	app := models.Application{
		ID:          s.newID(),
		JobID:       jobID,
		LaborerID:   session.User.ID,
		LaborerName: session.User.Name,
		AppliedAt:   s.now().UTC(),
		Status:      models.ApplicationStatusPending,
	}

	applications := appendCopy(s.applications, app)
	if err := s.write(ctx, KeyApplications, applications); err != nil {
		return nil, err
	}
	s.applications = applications

	s.log.Info("application submitted", "job_id", jobID, "user_id", session.User.ID)
	return &app, nil
}

// HasApplied reports whether laborerID has applied to jobID.
func (s *Store) HasApplied(jobID, laborerID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hasApplied(jobID, laborerID)
}

func (s *Store) hasApplied(jobID, laborerID string) bool {
	for _, a := range s.applications {
		if a.JobID == jobID && a.LaborerID == laborerID {
			return true
		}
	}
	return false
}
