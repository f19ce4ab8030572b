package board

import (
	"context"
	"testing"
	"unsafe"

	"github.com/raghavenderreddy1707/Labour-Hub/internal/models"
)

// borrowed returns a string sharing buf's memory, the way fiber hands out
// route params from its pooled request buffers.
func borrowed(buf []byte) string {
	return unsafe.String(&buf[0], len(buf))
}

func scribble(buf []byte) {
	for i := range buf {
		buf[i] = 'x'
	}
}

func TestApplyKeepsItsOwnJobID(t *testing.T) {
	b := newTestBoard(t)
	provider := b.register(t, "Suresh", "9123456780", models.RoleProvider)
	laborer := b.register(t, "Ravi", "9000000000", models.RoleLaborer)
	job := b.post(t, provider, "Fix kitchen sink", "Mysore")

	buf := []byte(job.ID)
	if _, err := b.ApplyToJob(context.Background(), borrowed(buf), laborer); err != nil {
		t.Fatalf("ApplyToJob: %v", err)
	}
	scribble(buf)

	if !b.HasApplied(job.ID, laborer.User.ID) {
		t.Fatal("application lost its job id after the caller's buffer changed")
	}
	if got := jobIDs(b.ListManagedJobs(laborer)); len(got) != 1 || got[0] != job.ID {
		t.Fatalf("managed jobs = %v, want [%s]", got, job.ID)
	}
}

func TestToggleBookmarkKeepsItsOwnJobID(t *testing.T) {
	b := newTestBoard(t)
	provider := b.register(t, "Suresh", "9123456780", models.RoleProvider)
	job := b.post(t, provider, "Fix kitchen sink", "Mysore")

	buf := []byte(job.ID)
	if _, err := b.ToggleBookmark(context.Background(), borrowed(buf)); err != nil {
		t.Fatalf("ToggleBookmark: %v", err)
	}
	scribble(buf)

	if !b.IsBookmarked(job.ID) {
		t.Fatal("bookmark lost its job id after the caller's buffer changed")
	}
	if got := jobIDs(b.ListBookmarkedJobs()); len(got) != 1 || got[0] != job.ID {
		t.Fatalf("bookmarked jobs = %v, want [%s]", got, job.ID)
	}
}
