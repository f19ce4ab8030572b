package board

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/raghavenderreddy1707/Labour-Hub/internal/apperr"
	"github.com/raghavenderreddy1707/Labour-Hub/internal/models"
)

func TestPostJobRequiresProvider(t *testing.T) {
	b := newTestBoard(t)
	laborer := b.register(t, "Ravi", "9000000000", models.RoleLaborer)

	for _, s := range []Session{{}, laborer} {
		_, err := b.PostJob(context.Background(), validJob("Fix kitchen sink", "Mysore"), s)
		if !apperr.Is(err, apperr.KindForbidden) {
			t.Errorf("session %q: err = %v, want forbidden", s.UserID(), err)
		}
	}
	if len(b.ListBrowseJobs(BrowseFilter{})) != 0 {
		t.Fatal("no job should have been created")
	}
}

func TestPostJobValidationOrder(t *testing.T) {
	yesterday := testNow.AddDate(0, 0, -1).Format(models.WorkDateLayout)
	today := testNow.Format(models.WorkDateLayout)

	tests := []struct {
		name   string
		mutate func(*JobRequest)
		want   string
	}{
		{"short title wins over everything", func(r *JobRequest) { r.Title = "Fix"; r.Profession = ""; r.Contact = "" }, MsgTitleTooShort},
		{"missing profession", func(r *JobRequest) { r.Profession = "" }, MsgJobProfessionNeeded},
		{"short description", func(r *JobRequest) { r.Description = "leak" }, MsgDescriptionTooShort},
		{"short location", func(r *JobRequest) { r.Location = "M" }, MsgLocationTooShort},
		{"missing date", func(r *JobRequest) { r.Date = "" }, MsgDateRequired},
		{"malformed date", func(r *JobRequest) { r.Date = "15/10/2026" }, MsgDateInvalid},
		{"yesterday", func(r *JobRequest) { r.Date = yesterday }, MsgDateInPast},
		{"past date beats bad contact", func(r *JobRequest) { r.Date = yesterday; r.Contact = "1" }, MsgDateInPast},
		{"bad contact", func(r *JobRequest) { r.Contact = "98765" }, MsgInvalidContact},
		{"today is allowed", func(r *JobRequest) { r.Date = today }, ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := newTestBoard(t)
			provider := b.register(t, "Priya", "9123456789", models.RoleProvider)
			req := validJob("Fix kitchen sink", "Mysore")
			tc.mutate(&req)

			_, err := b.PostJob(context.Background(), req, provider)
			if tc.want == "" {
				if err != nil {
					t.Fatalf("PostJob: %v", err)
				}
				return
			}
			if !apperr.Is(err, apperr.KindValidation) {
				t.Fatalf("err = %v, want validation error", err)
			}
			if got := apperr.Message(err); got != tc.want {
				t.Fatalf("message = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestPostJobLateInTheDayAcceptsToday(t *testing.T) {
	b := newTestBoard(t)
	provider := b.register(t, "Priya", "9123456789", models.RoleProvider)
	b.advance(13*time.Hour + 59*time.Minute)

	req := validJob("Fix kitchen sink", "Mysore")
	req.Date = testNow.Format(models.WorkDateLayout)
	if _, err := b.PostJob(context.Background(), req, provider); err != nil {
		t.Fatalf("PostJob for today at 23:59: %v", err)
	}
}

func TestPostJobPopulatesFields(t *testing.T) {
	b := newTestBoard(t)
	provider := b.register(t, "Priya", "9123456789", models.RoleProvider)

	job := b.post(t, provider, "  Fix kitchen sink  ", "Mysore")
	if job.Title != "Fix kitchen sink" {
		t.Errorf("title = %q, want trimmed", job.Title)
	}
	if job.Status != models.JobStatusActive {
		t.Errorf("status = %q, want active", job.Status)
	}
	if job.ProviderID != provider.User.ID || job.ProviderName != "Priya" {
		t.Errorf("provider = %s/%s", job.ProviderID, job.ProviderName)
	}
	if !job.CreatedAt.Equal(testNow) {
		t.Errorf("createdAt = %v", job.CreatedAt)
	}

	reopened := openTestBoard(t, b.kv)
	got, err := reopened.Job(job.ID)
	if err != nil {
		t.Fatalf("Job after reload: %v", err)
	}
	if !reflect.DeepEqual(*got, *job) {
		t.Errorf("reloaded job = %+v, want %+v", *got, *job)
	}
}

func TestPostJobRequiresExistingProvider(t *testing.T) {
	b := newTestBoard(t)
	ghost := Session{User: &models.User{ID: "ghost", Role: models.RoleProvider, Name: "Ghost"}}
	_, err := b.PostJob(context.Background(), validJob("Fix kitchen sink", "Mysore"), ghost)
	if !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("err = %v, want not found", err)
	}
}

func seedBangalore(t *testing.T, b *testBoard) (Session, []*models.Job) {
	t.Helper()
	provider := b.register(t, "Rajesh", "9876543210", models.RoleProvider)
	var jobs []*models.Job
	jobs = append(jobs, b.post(t, provider, "Need experienced plumber", "Koramangala, Bangalore"))
	req := validJob("Electrical work needed", "Whitefield, Bangalore")
	req.Profession = "electrician"
	req.Description = "Complete electrical wiring for 2BHK apartment"
	j, err := b.PostJob(context.Background(), req, provider)
	if err != nil {
		t.Fatalf("PostJob: %v", err)
	}
	jobs = append(jobs, j)
	req = validJob("Wooden furniture repair", "Jayanagar, Bangalore")
	req.Profession = "carpenter"
	req.Description = "Repair dining table and chairs"
	j, err = b.PostJob(context.Background(), req, provider)
	if err != nil {
		t.Fatalf("PostJob: %v", err)
	}
	jobs = append(jobs, j)
	return provider, jobs
}

func TestBrowseFilters(t *testing.T) {
	b := newTestBoard(t)
	_, jobs := seedBangalore(t, b)
	plumber, electrician, carpenter := jobs[0].ID, jobs[1].ID, jobs[2].ID

	tests := []struct {
		name   string
		filter BrowseFilter
		want   []string
	}{
		{"no filter keeps insertion order", BrowseFilter{}, []string{plumber, electrician, carpenter}},
		{"location substring ignores case", BrowseFilter{Location: "white"}, []string{electrician}},
		{"location shared by all", BrowseFilter{Location: "BANGALORE"}, []string{plumber, electrician, carpenter}},
		{"search title", BrowseFilter{Search: "PLUMBER"}, []string{plumber}},
		{"search description", BrowseFilter{Search: "2bhk"}, []string{electrician}},
		{"search location", BrowseFilter{Search: "jayanagar"}, []string{carpenter}},
		{"search profession", BrowseFilter{Search: "carp"}, []string{carpenter}},
		{"profession is exact", BrowseFilter{Profession: "electrician"}, []string{electrician}},
		{"profession is case sensitive", BrowseFilter{Profession: "Electrician"}, []string{}},
		{"filters compose", BrowseFilter{Search: "repair", Profession: "plumber"}, []string{}},
		{"posted today", BrowseFilter{Posted: PostedToday}, []string{plumber, electrician, carpenter}},
		{"unknown posted value ignored", BrowseFilter{Posted: "year"}, []string{plumber, electrician, carpenter}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := jobIDs(b.ListBrowseJobs(tc.filter))
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("ids = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestBrowseRecency(t *testing.T) {
	b := newTestBoard(t)
	provider := b.register(t, "Rajesh", "9876543210", models.RoleProvider)
	old := b.post(t, provider, "Old plumbing job", "Mysore")
	b.advance(10 * 24 * time.Hour)
	mid := b.post(t, provider, "Mid plumbing job", "Mysore")
	b.advance(3 * 24 * time.Hour)
	recent := b.post(t, provider, "New plumbing job", "Mysore")

	tests := []struct {
		posted Posted
		want   []string
	}{
		{PostedToday, []string{recent.ID}},
		{PostedWeek, []string{mid.ID, recent.ID}},
		{PostedMonth, []string{old.ID, mid.ID, recent.ID}},
		{PostedAny, []string{old.ID, mid.ID, recent.ID}},
	}
	for _, tc := range tests {
		got := jobIDs(b.ListBrowseJobs(BrowseFilter{Posted: tc.posted}))
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("posted %q: ids = %v, want %v", tc.posted, got, tc.want)
		}
	}

	b.advance(20 * 24 * time.Hour)
	got := jobIDs(b.ListBrowseJobs(BrowseFilter{Posted: PostedMonth}))
	if !reflect.DeepEqual(got, []string{mid.ID, recent.ID}) {
		t.Errorf("month after 33 days: ids = %v", got)
	}
}

func TestBrowseSkipsInactiveJobs(t *testing.T) {
	b := newTestBoard(t)
	closed := models.Job{ID: "closed", Title: "Closed job", Status: "closed", CreatedAt: testNow}
	open := models.Job{ID: "open", Title: "Open job", Status: models.JobStatusActive, CreatedAt: testNow}
	if _, err := b.SeedJobs(context.Background(), []models.Job{closed, open}); err != nil {
		t.Fatalf("SeedJobs: %v", err)
	}
	if got := jobIDs(b.ListBrowseJobs(BrowseFilter{})); !reflect.DeepEqual(got, []string{"open"}) {
		t.Fatalf("ids = %v, want [open]", got)
	}
}

func TestListManagedJobs(t *testing.T) {
	b := newTestBoard(t)
	ctx := context.Background()
	provider, jobs := seedBangalore(t, b)
	other := b.register(t, "Priya", "9123456789", models.RoleProvider)
	otherJob := b.post(t, other, "Paint the front gate", "Mysore")
	laborer := b.register(t, "Ravi", "9000000000", models.RoleLaborer)

	for _, id := range []string{jobs[2].ID, otherJob.ID} {
		if _, err := b.ApplyToJob(ctx, id, laborer); err != nil {
			t.Fatalf("ApplyToJob(%s): %v", id, err)
		}
	}

	if got, want := jobIDs(b.ListManagedJobs(provider)), jobIDs([]models.Job{*jobs[0], *jobs[1], *jobs[2]}); !reflect.DeepEqual(got, want) {
		t.Errorf("provider managed = %v, want %v", got, want)
	}
	if got, want := jobIDs(b.ListManagedJobs(laborer)), []string{jobs[2].ID, otherJob.ID}; !reflect.DeepEqual(got, want) {
		t.Errorf("laborer managed = %v, want %v", got, want)
	}
	if got := b.ListManagedJobs(Session{}); len(got) != 0 {
		t.Errorf("anonymous managed = %v, want empty", jobIDs(got))
	}
}

func TestGetJobDetailsHidesApplicants(t *testing.T) {
	b := newTestBoard(t)
	ctx := context.Background()
	provider, jobs := seedBangalore(t, b)
	other := b.register(t, "Priya", "9123456789", models.RoleProvider)
	laborer := b.register(t, "Ravi", "9000000000", models.RoleLaborer)
	b.advance(time.Hour)
	if _, err := b.ApplyToJob(ctx, jobs[0].ID, laborer); err != nil {
		t.Fatalf("ApplyToJob: %v", err)
	}

	owner, err := b.GetJobDetails(jobs[0].ID, provider)
	if err != nil {
		t.Fatalf("GetJobDetails(owner): %v", err)
	}
	if !owner.ApplicantsVisible || len(owner.Applicants) != 1 {
		t.Fatalf("owner applicants = %+v", owner.Applicants)
	}
	if owner.Applicants[0].LaborerName != "Ravi" || !owner.Applicants[0].AppliedAt.Equal(testNow.Add(time.Hour)) {
		t.Errorf("applicant = %+v", owner.Applicants[0])
	}

	for name, s := range map[string]Session{"laborer": laborer, "other provider": other, "anonymous": {}} {
		d, err := b.GetJobDetails(jobs[0].ID, s)
		if err != nil {
			t.Fatalf("GetJobDetails(%s): %v", name, err)
		}
		if d.ApplicantsVisible || d.Applicants != nil {
			t.Errorf("%s sees applicants: %+v", name, d.Applicants)
		}
		if d.Job.ID != jobs[0].ID {
			t.Errorf("%s got job %s", name, d.Job.ID)
		}
	}

	empty, err := b.GetJobDetails(jobs[1].ID, provider)
	if err != nil {
		t.Fatalf("GetJobDetails(no applicants): %v", err)
	}
	if !empty.ApplicantsVisible || len(empty.Applicants) != 0 {
		t.Errorf("no-applicant details = %+v", empty)
	}

	if _, err := b.GetJobDetails("missing", provider); !apperr.Is(err, apperr.KindNotFound) {
		t.Errorf("missing job: err = %v, want not found", err)
	}
}

func TestDeleteJobCascades(t *testing.T) {
	b := newTestBoard(t)
	ctx := context.Background()
	provider, jobs := seedBangalore(t, b)
	laborer := b.register(t, "Ravi", "9000000000", models.RoleLaborer)
	target := jobs[1].ID

	for _, j := range jobs {
		if _, err := b.ApplyToJob(ctx, j.ID, laborer); err != nil {
			t.Fatalf("ApplyToJob: %v", err)
		}
	}
	for _, id := range []string{target, jobs[0].ID} {
		if _, err := b.ToggleBookmark(ctx, id); err != nil {
			t.Fatalf("ToggleBookmark: %v", err)
		}
	}

	if err := b.DeleteJob(ctx, target, provider); err != nil {
		t.Fatalf("DeleteJob: %v", err)
	}

	if _, err := b.Job(target); !apperr.Is(err, apperr.KindNotFound) {
		t.Errorf("deleted job still present: err = %v", err)
	}
	for _, list := range [][]models.Job{b.ListManagedJobs(provider), b.ListManagedJobs(laborer), b.ListBookmarkedJobs(), b.ListBrowseJobs(BrowseFilter{})} {
		for _, id := range jobIDs(list) {
			if id == target {
				t.Fatalf("deleted job %s still listed", target)
			}
		}
	}
	if b.HasApplied(target, laborer.User.ID) {
		t.Error("application to deleted job survived")
	}
	if !b.HasApplied(jobs[0].ID, laborer.User.ID) {
		t.Error("unrelated application removed")
	}
	if got := b.Bookmarks(); !reflect.DeepEqual(got, []string{jobs[0].ID}) {
		t.Errorf("bookmarks = %v, want [%s]", got, jobs[0].ID)
	}

	reopened := openTestBoard(t, b.kv)
	if reopened.HasApplied(target, laborer.User.ID) || reopened.IsBookmarked(target) {
		t.Error("cascade was not persisted")
	}
	if _, err := reopened.Job(target); !apperr.Is(err, apperr.KindNotFound) {
		t.Error("job deletion was not persisted")
	}
}

func TestDeleteJobOwnership(t *testing.T) {
	b := newTestBoard(t)
	ctx := context.Background()
	_, jobs := seedBangalore(t, b)
	other := b.register(t, "Priya", "9123456789", models.RoleProvider)
	laborer := b.register(t, "Ravi", "9000000000", models.RoleLaborer)

	for name, s := range map[string]Session{"other provider": other, "laborer": laborer, "anonymous": {}} {
		err := b.DeleteJob(ctx, jobs[0].ID, s)
		if !apperr.Is(err, apperr.KindForbidden) {
			t.Errorf("%s: err = %v, want forbidden", name, err)
		}
	}
	if _, err := b.Job(jobs[0].ID); err != nil {
		t.Fatalf("job should survive rejected deletes: %v", err)
	}
	if err := b.DeleteJob(ctx, "missing", other); !apperr.Is(err, apperr.KindNotFound) {
		t.Errorf("missing job: err = %v, want not found", err)
	}
}

func TestDeleteJobStorageFailure(t *testing.T) {
	b := newTestBoard(t)
	ctx := context.Background()
	provider, jobs := seedBangalore(t, b)
	b.kv.failSet[KeyJobs] = true

	err := b.DeleteJob(ctx, jobs[0].ID, provider)
	if !apperr.Is(err, apperr.KindStorage) {
		t.Fatalf("err = %v, want storage error", err)
	}
	if _, err := b.Job(jobs[0].ID); err != nil {
		t.Fatalf("job should remain in memory after failed write: %v", err)
	}
}

func TestLocations(t *testing.T) {
	b := newTestBoard(t)
	provider, _ := seedBangalore(t, b)
	b.post(t, provider, "Another plumbing job", "Koramangala, Bangalore")

	want := []string{"Koramangala, Bangalore", "Whitefield, Bangalore", "Jayanagar, Bangalore"}
	if got := b.Locations(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Locations = %v, want %v", got, want)
	}
}

func TestSeedJobsOnlyWhenEmpty(t *testing.T) {
	b := newTestBoard(t)
	ctx := context.Background()
	seed := []models.Job{{ID: "sample1", Status: models.JobStatusActive}}

	n, err := b.SeedJobs(ctx, seed)
	if err != nil || n != 1 {
		t.Fatalf("SeedJobs = %d, %v; want 1, nil", n, err)
	}
	n, err = b.SeedJobs(ctx, []models.Job{{ID: "sample2"}})
	if err != nil || n != 0 {
		t.Fatalf("second SeedJobs = %d, %v; want 0, nil", n, err)
	}
	if got := jobIDs(b.ListBrowseJobs(BrowseFilter{})); !reflect.DeepEqual(got, []string{"sample1"}) {
		t.Fatalf("jobs = %v", got)
	}
}
