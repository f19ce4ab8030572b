package board

import (
	"slices"

	"github.com/raghavenderreddy1707/Labour-Hub/internal/models"
)

// JobCard is a job plus the per-viewer flags a job listing renders.
type JobCard struct {
	models.Job
	TimeAgo    string `json:"timeAgo"`
	Bookmarked bool   `json:"bookmarked"`
	Applied    bool   `json:"applied"`
	Owner      bool   `json:"owner"`
}

// Cards decorates jobs for the viewer in session, keeping their order.
func (s *Store) Cards(jobs []models.Job, session Session) []JobCard {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	cards := make([]JobCard, 0, len(jobs))
	for _, j := range jobs {
		card := JobCard{
			Job:        j,
			TimeAgo:    TimeAgo(j.CreatedAt, now),
			Bookmarked: slices.Contains(s.bookmarks, j.ID),
		}
		if session.Active() {
			card.Owner = j.ProviderID == session.User.ID
			card.Applied = s.hasApplied(j.ID, session.User.ID)
		}
		cards = append(cards, card)
	}
	return cards
}
