package board

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/raghavenderreddy1707/Labour-Hub/internal/apperr"
	"github.com/raghavenderreddy1707/Labour-Hub/internal/models"
)

// Validation messages, shown to the user as-is.
const (
	MsgNameTooShort        = "Name must be at least 2 characters long"
	MsgLocationTooShort    = "Location must be at least 2 characters long"
	MsgInvalidContact      = "Please enter a valid 10-digit contact number"
	MsgProfessionRequired  = "Please select your profession"
	MsgInvalidRole         = "Please choose whether you are a laborer or a job provider"
	MsgTitleTooShort       = "Job title must be at least 5 characters long"
	MsgJobProfessionNeeded = "Please select required profession"
	MsgDescriptionTooShort = "Job description must be at least 10 characters long"
	MsgDateRequired        = "Please select work date"
	MsgDateInvalid         = "Work date must be a valid date (YYYY-MM-DD)"
	MsgDateInPast          = "Work date cannot be in the past"
)

var contactPattern = regexp.MustCompile(`^[0-9]{10}$`)

// RegisterRequest is the registration form. Profession is only read for laborers.
type RegisterRequest struct {
	Name       string `json:"name"`
	Location   string `json:"location"`
	Contact    string `json:"contact"`
	Profession string `json:"profession"`
}

// JobRequest is the job posting form. Date uses models.WorkDateLayout.
type JobRequest struct {
	Title       string `json:"title"`
	Profession  string `json:"profession"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Date        string `json:"date"`
	Contact     string `json:"contact"`
}

func (r RegisterRequest) normalized() RegisterRequest {
	r.Name = strings.TrimSpace(r.Name)
	r.Location = strings.TrimSpace(r.Location)
	r.Contact = strings.TrimSpace(r.Contact)
	r.Profession = strings.TrimSpace(r.Profession)
	return r
}

func (r JobRequest) normalized() JobRequest {
	r.Title = strings.TrimSpace(r.Title)
	r.Profession = strings.TrimSpace(r.Profession)
	r.Description = strings.TrimSpace(r.Description)
	r.Location = strings.TrimSpace(r.Location)
	r.Date = strings.TrimSpace(r.Date)
	r.Contact = strings.TrimSpace(r.Contact)
	return r
}

// ValidContact reports whether contact is exactly ten ASCII digits.
func ValidContact(contact string) bool {
	return contactPattern.MatchString(contact)
}

// ValidateRegistration checks req for role and returns the first violation.
func ValidateRegistration(req RegisterRequest, role models.Role) error {
	if !role.Valid() {
		return apperr.Validation("role", MsgInvalidRole)
	}
	if shorterThan(req.Name, 2) {
		return apperr.Validation("name", MsgNameTooShort)
	}
	if shorterThan(req.Location, 2) {
		return apperr.Validation("location", MsgLocationTooShort)
	}
	if !ValidContact(req.Contact) {
		return apperr.Validation("contact", MsgInvalidContact)
	}
	if role == models.RoleLaborer && req.Profession == "" {
		return apperr.Validation("profession", MsgProfessionRequired)
	}
	return nil
}

// ValidateJob checks req in a fixed order and returns the first violation.
// The work date may not fall before the calendar day of now.
func ValidateJob(req JobRequest, now time.Time) error {
	if shorterThan(req.Title, 5) {
		return apperr.Validation("title", MsgTitleTooShort)
	}
	if req.Profession == "" {
		return apperr.Validation("profession", MsgJobProfessionNeeded)
	}
	if shorterThan(req.Description, 10) {
		return apperr.Validation("description", MsgDescriptionTooShort)
	}
	if shorterThan(req.Location, 2) {
		return apperr.Validation("location", MsgLocationTooShort)
	}
	if req.Date == "" {
		return apperr.Validation("date", MsgDateRequired)
	}
	date, err := time.ParseInLocation(models.WorkDateLayout, req.Date, now.Location())
	if err != nil {
		return apperr.Validation("date", MsgDateInvalid)
	}
	if date.Before(startOfDay(now)) {
		return apperr.Validation("date", MsgDateInPast)
	}
	if !ValidContact(req.Contact) {
		return apperr.Validation("contact", MsgInvalidContact)
	}
	return nil
}

func shorterThan(s string, n int) bool {
	return utf8.RuneCountInString(s) < n
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.In(a.Location()).Date()
	return ay == by && am == bm && ad == bd
}
