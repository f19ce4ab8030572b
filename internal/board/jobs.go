package board

import (
	"context"
	"strings"
	"time"

	"github.com/raghavenderreddy1707/Labour-Hub/internal/apperr"
	"github.com/raghavenderreddy1707/Labour-Hub/internal/models"
)

const (
	MsgProviderOnly = "Only job providers can post jobs"
	MsgJobNotFound  = "Job not found"
	MsgNotJobOwner  = "You can only delete your own job postings"
)

// Posted narrows browse results by job creation time.
type Posted string

const (
	PostedAny   Posted = ""
	PostedToday Posted = "today"
	PostedWeek  Posted = "week"
	PostedMonth Posted = "month"
)

// BrowseFilter composes conjunctively. Empty fields do not filter.
type BrowseFilter struct {
	// Search matches title, description, location or profession, ignoring case.
	Search string
	// Profession must equal the job's profession exactly.
	Profession string
	// Location is a case-insensitive substring of the job's location.
	Location string
	Posted   Posted
}

// Applicant is the part of an application a job owner may see.
type Applicant struct {
	LaborerName string    `json:"laborerName"`
	AppliedAt   time.Time `json:"appliedAt"`
}

type JobDetails struct {
	Job models.Job `json:"job"`
	// Applicants is nil unless the requester owns the job.
	Applicants []Applicant `json:"applicants,omitempty"`
	// ApplicantsVisible is true for the owning provider, even with no applicants.
	ApplicantsVisible bool `json:"applicantsVisible"`
}

// PostJob creates an active job owned by the session's provider.
func (s *Store) PostJob(ctx context.Context, req JobRequest, session Session) (*models.Job, error) {
	if !session.Is(models.RoleProvider) {
		return nil, apperr.Forbidden(MsgProviderOnly)
	}
	req = req.normalized()

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if err := ValidateJob(req, now); err != nil {
		return nil, err
	}
	if _, ok := s.findUser(session.User.ID); !ok {
		return nil, apperr.NotFound("User not found")
	}

	job := models.Job{
		ID:           s.newID(),
		ProviderID:   session.User.ID,
		ProviderName: session.User.Name,
		Title:        req.Title,
		Profession:   req.Profession,
		Description:  req.Description,
		Location:     req.Location,
		Date:         req.Date,
		Contact:      req.Contact,
		Status:       models.JobStatusActive,
		CreatedAt:    now.UTC(),
	}

	jobs := appendCopy(s.jobs, job)
	if err := s.write(ctx, KeyJobs, jobs); err != nil {
		return nil, err
	}
	s.jobs = jobs

	s.log.Info("job posted", "job_id", job.ID, "user_id", job.ProviderID)
	return &job, nil
}

// ListBrowseJobs returns active jobs matching f, in insertion order.
func (s *Store) ListBrowseJobs(f BrowseFilter) []models.Job {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	search := strings.ToLower(strings.TrimSpace(f.Search))
	location := strings.ToLower(strings.TrimSpace(f.Location))

	return filter(s.jobs, func(j models.Job) bool {
		if j.Status != models.JobStatusActive {
			return false
		}
		if search != "" && !matchesSearch(j, search) {
			return false
		}
		if f.Profession != "" && j.Profession != f.Profession {
			return false
		}
		if location != "" && !strings.Contains(strings.ToLower(j.Location), location) {
			return false
		}
		return postedWithin(j.CreatedAt, f.Posted, now)
	})
}

func matchesSearch(j models.Job, term string) bool {
	return strings.Contains(strings.ToLower(j.Title), term) ||
		strings.Contains(strings.ToLower(j.Description), term) ||
		strings.Contains(strings.ToLower(j.Location), term) ||
		strings.Contains(strings.ToLower(j.Profession), term)
}

func postedWithin(created time.Time, p Posted, now time.Time) bool {
	switch p {
	case PostedToday:
		return sameDay(now, created)
	case PostedWeek:
		return !created.Before(now.Add(-7 * 24 * time.Hour))
	case PostedMonth:
		return !created.Before(now.Add(-30 * 24 * time.Hour))
	default:
		return true
	}
}

// ListManagedJobs returns a provider's own jobs, or the jobs a laborer has
// applied to, in insertion order.
func (s *Store) ListManagedJobs(session Session) []models.Job {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case session.Is(models.RoleProvider):
		return filter(s.jobs, func(j models.Job) bool {
			return j.ProviderID == session.User.ID
		})
	case session.Is(models.RoleLaborer):
		applied := make(map[string]struct{})
		for _, a := range s.applications {
			if a.LaborerID == session.User.ID {
				applied[a.JobID] = struct{}{}
			}
		}
		return filter(s.jobs, func(j models.Job) bool {
			_, ok := applied[j.ID]
			return ok
		})
	}
	return []models.Job{}
}

// ListBookmarkedJobs returns the jobs in the bookmark set, in job order.
func (s *Store) ListBookmarkedJobs() []models.Job {
	s.mu.Lock()
	defer s.mu.Unlock()

	marked := make(map[string]struct{}, len(s.bookmarks))
	for _, id := range s.bookmarks {
		marked[id] = struct{}{}
	}
	return filter(s.jobs, func(j models.Job) bool {
		_, ok := marked[j.ID]
		return ok
	})
}

// Job returns the job with id.
func (s *Store) Job(id string) (*models.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.findJob(id)
	if !ok {
		return nil, apperr.NotFound(MsgJobNotFound)
	}
	j := s.jobs[i]
	return &j, nil
}

// GetJobDetails returns the job and, for its owning provider only, the
// applications made against it.
func (s *Store) GetJobDetails(jobID string, session Session) (*JobDetails, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.findJob(jobID)
	if !ok {
		return nil, apperr.NotFound(MsgJobNotFound)
	}

	details := &JobDetails{Job: s.jobs[i]}
	if session.Is(models.RoleProvider) && details.Job.ProviderID == session.User.ID {
		details.ApplicantsVisible = true
		details.Applicants = []Applicant{}
		for _, a := range s.applications {
			if a.JobID == jobID {
				details.Applicants = append(details.Applicants, Applicant{
					LaborerName: a.LaborerName,
					AppliedAt:   a.AppliedAt,
				})
			}
		}
	}
	return details, nil
}

// DeleteJob removes a job owned by the session's provider together with its
// applications and bookmark entries. The caller is expected to have
// confirmed the deletion with the user.
func (s *Store) DeleteJob(ctx context.Context, jobID string, session Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.findJob(jobID)
	if !ok {
		return apperr.NotFound(MsgJobNotFound)
	}
	if !session.Is(models.RoleProvider) || s.jobs[i].ProviderID != session.User.ID {
		return apperr.Forbidden(MsgNotJobOwner)
	}

	jobs := filter(s.jobs, func(j models.Job) bool { return j.ID != jobID })
	if err := s.write(ctx, KeyJobs, jobs); err != nil {
		return err
	}
	s.jobs = jobs

	applications := filter(s.applications, func(a models.Application) bool { return a.JobID != jobID })
	if err := s.write(ctx, KeyApplications, applications); err != nil {
		return err
	}
	s.applications = applications

	bookmarks := filter(s.bookmarks, func(id string) bool { return id != jobID })
	if err := s.write(ctx, KeyBookmarks, bookmarks); err != nil {
		return err
	}
	s.bookmarks = bookmarks

	s.log.Info("job deleted", "job_id", jobID, "user_id", session.User.ID)
	return nil
}

// Locations lists the distinct job locations in first-seen order.
func (s *Store) Locations() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]struct{})
	out := []string{}
	for _, j := range s.jobs {
		if _, ok := seen[j.Location]; ok {
			continue
		}
		seen[j.Location] = struct{}{}
		out = append(out, j.Location)
	}
	return out
}

// SeedJobs installs jobs when the board has none and reports how many were
// added.
func (s *Store) SeedJobs(ctx context.Context, seed []models.Job) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.jobs) > 0 || len(seed) == 0 {
		return 0, nil
	}
	jobs := make([]models.Job, len(seed))
	copy(jobs, seed)
	if err := s.write(ctx, KeyJobs, jobs); err != nil {
		return 0, err
	}
	s.jobs = jobs
	return len(jobs), nil
}
