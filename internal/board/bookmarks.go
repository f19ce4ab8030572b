package board

import (
	"context"
	"slices"
	"strings"
)

// ToggleBookmark adds jobID to the bookmark set, or removes it if present.
// It reports whether the job is bookmarked afterwards.
//
// The set is shared by every user of the board.
func (s *Store) ToggleBookmark(ctx context.Context, jobID string) (bool, error) {
	jobID = strings.Clone(jobID)

	s.mu.Lock()
	defer s.mu.Unlock()

	var (
		bookmarks []string
		added     bool
	)
	if slices.Contains(s.bookmarks, jobID) {
		bookmarks = filter(s.bookmarks, func(id string) bool { return id != jobID })
	} else {
		bookmarks = appendCopy(s.bookmarks, jobID)
		added = true
	}

	if err := s.write(ctx, KeyBookmarks, bookmarks); err != nil {
		return false, err
	}
	s.bookmarks = bookmarks
	return added, nil
}

func (s *Store) IsBookmarked(jobID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Contains(s.bookmarks, jobID)
}

// Bookmarks returns a copy of the bookmark set in insertion order.
func (s *Store) Bookmarks() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.bookmarks)
}
