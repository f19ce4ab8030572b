package board

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/raghavenderreddy1707/Labour-Hub/internal/models"
	"github.com/raghavenderreddy1707/Labour-Hub/internal/storage"
)

var testNow = time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC)

var errDiskFull = errors.New("disk full")

// flakyKV fails Set for the keys in failSet.
type flakyKV struct {
	*storage.Memory
	failSet map[string]bool
}

func (f *flakyKV) Set(ctx context.Context, key string, value []byte) error {
	if f.failSet[key] {
		return errDiskFull
	}
	return f.Memory.Set(ctx, key, value)
}

type testBoard struct {
	*Store
	kv    *flakyKV
	clock *time.Time
}

func newTestBoard(t *testing.T) *testBoard {
	t.Helper()
	kv := &flakyKV{Memory: storage.NewMemory(), failSet: map[string]bool{}}
	return openTestBoard(t, kv)
}

func openTestBoard(t *testing.T, kv *flakyKV) *testBoard {
	t.Helper()
	now := testNow
	seq := 0
	s, err := New(context.Background(), kv,
		WithClock(func() time.Time { return now }),
		WithIDGenerator(func() string {
			seq++
			return fmt.Sprintf("id-%d", seq)
		}),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return &testBoard{Store: s, kv: kv, clock: &now}
}

func (b *testBoard) advance(d time.Duration) {
	*b.clock = b.clock.Add(d)
}

func (b *testBoard) register(t *testing.T, name, contact string, role models.Role) Session {
	t.Helper()
	req := RegisterRequest{Name: name, Location: "Bangalore", Contact: contact}
	if role == models.RoleLaborer {
		req.Profession = "plumber"
	}
	u, err := b.Register(context.Background(), req, role)
	if err != nil {
		t.Fatalf("Register(%s): %v", name, err)
	}
	return Session{User: u}
}

func (b *testBoard) post(t *testing.T, provider Session, title, location string) *models.Job {
	t.Helper()
	job, err := b.PostJob(context.Background(), validJob(title, location), provider)
	if err != nil {
		t.Fatalf("PostJob(%s): %v", title, err)
	}
	return job
}

func validJob(title, location string) JobRequest {
	return JobRequest{
		Title:       title,
		Profession:  "plumber",
		Description: "Fix leaking pipes in the bathroom",
		Location:    location,
		Date:        testNow.AddDate(0, 2, 0).Format(models.WorkDateLayout),
		Contact:     "9876543210",
	}
}

func jobIDs(jobs []models.Job) []string {
	ids := make([]string, len(jobs))
	for i, j := range jobs {
		ids[i] = j.ID
	}
	return ids
}
