// Package seed provides the sample jobs shown on an empty board.
package seed

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"github.com/raghavenderreddy1707/Labour-Hub/internal/models"
	"gopkg.in/yaml.v3"
)

//go:embed sample_jobs.yaml
var defaultJobs []byte

// Entry describes a sample job relative to the moment it is seeded.
type Entry struct {
	ID             string `yaml:"id"`
	ProviderID     string `yaml:"provider_id"`
	ProviderName   string `yaml:"provider_name"`
	Title          string `yaml:"title"`
	Profession     string `yaml:"profession"`
	Description    string `yaml:"description"`
	Location       string `yaml:"location"`
	Contact        string `yaml:"contact"`
	WorkInDays     int    `yaml:"work_in_days"`
	PostedHoursAgo int    `yaml:"posted_hours_ago"`
}

type File struct {
	Jobs []Entry `yaml:"jobs"`
}

// Load reads sample jobs from path, or the built-in set when path is empty,
// and resolves their dates against now.
func Load(path string, now time.Time) ([]models.Job, error) {
	data := defaultJobs
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read seed file: %w", err)
		}
	}
	return Parse(data, now)
}

func Parse(data []byte, now time.Time) ([]models.Job, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}

	jobs := make([]models.Job, 0, len(file.Jobs))
	for i, e := range file.Jobs {
		if e.ID == "" {
			return nil, fmt.Errorf("seed job %d: missing id", i)
		}
		jobs = append(jobs, models.Job{
			ID:           e.ID,
			ProviderID:   e.ProviderID,
			ProviderName: e.ProviderName,
			Title:        e.Title,
			Profession:   e.Profession,
			Description:  e.Description,
			Location:     e.Location,
			Date:         now.AddDate(0, 0, e.WorkInDays).Format(models.WorkDateLayout),
			Contact:      e.Contact,
			Status:       models.JobStatusActive,
			CreatedAt:    now.Add(-time.Duration(e.PostedHoursAgo) * time.Hour).UTC(),
		})
	}
	return jobs, nil
}
