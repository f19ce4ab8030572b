package board

import (
	"context"

	"github.com/raghavenderreddy1707/Labour-Hub/internal/models"
)

func (s *Store) Theme() models.Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme
}

// ToggleTheme flips between light and dark and returns the new theme.
func (s *Store) ToggleTheme(ctx context.Context) (models.Theme, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.theme.Toggle()
	if err := s.write(ctx, KeyTheme, next); err != nil {
		return s.theme, err
	}
	s.theme = next
	return next, nil
}
