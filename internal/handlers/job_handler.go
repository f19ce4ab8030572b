package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/raghavenderreddy1707/Labour-Hub/internal/board"
	"github.com/raghavenderreddy1707/Labour-Hub/internal/dto"
	"github.com/raghavenderreddy1707/Labour-Hub/internal/models"
)

type JobHandler struct {
	store *board.Store
}

func NewJobHandler(store *board.Store) *JobHandler {
	return &JobHandler{store: store}
}

// Browse lists active jobs. Query params: q, profession, location, posted.
func (h *JobHandler) Browse(c *fiber.Ctx) error {
	sess, ok := session(c, h.store)
	if !ok {
		return unauthorized(c)
	}

	jobs := h.store.ListBrowseJobs(board.BrowseFilter{
		Search:     c.Query("q"),
		Profession: c.Query("profession"),
		Location:   c.Query("location"),
		Posted:     board.Posted(c.Query("posted")),
	})
	return h.list(c, jobs, sess)
}

func (h *JobHandler) Locations(c *fiber.Ctx) error {
	return c.JSON(dto.LocationsResponse{Locations: h.store.Locations()})
}

func (h *JobHandler) Details(c *fiber.Ctx) error {
	sess, ok := session(c, h.store)
	if !ok {
		return unauthorized(c)
	}

	details, err := h.store.GetJobDetails(c.Params("id"), sess)
	if err != nil {
		return fail(c, err)
	}
	card := h.store.Cards([]models.Job{details.Job}, sess)[0]
	return c.JSON(dto.JobDetailsResponse{
		Job:               card,
		Applicants:        details.Applicants,
		ApplicantsVisible: details.ApplicantsVisible,
	})
}

func (h *JobHandler) Post(c *fiber.Ctx) error {
	sess, ok := session(c, h.store)
	if !ok || !sess.Active() {
		return unauthorized(c)
	}

	var req board.JobRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	job, err := h.store.PostJob(c.UserContext(), req, sess)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.JobCreatedResponse{
		Message: "Job posted successfully!",
		Job:     job,
	})
}

// Delete requires ?confirm=true so a stray request cannot remove a job.
func (h *JobHandler) Delete(c *fiber.Ctx) error {
	sess, ok := session(c, h.store)
	if !ok || !sess.Active() {
		return unauthorized(c)
	}
	if !c.QueryBool("confirm") {
		return badRequest(c, "Are you sure you want to delete this job? Repeat with confirm=true")
	}

	if err := h.store.DeleteJob(c.UserContext(), c.Params("id"), sess); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Job deleted successfully"})
}

func (h *JobHandler) Apply(c *fiber.Ctx) error {
	sess, ok := session(c, h.store)
	if !ok || !sess.Active() {
		return unauthorized(c)
	}

	app, err := h.store.ApplyToJob(c.UserContext(), c.Params("id"), sess)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ApplicationResponse{
		Message:     "Application submitted successfully!",
		Application: app,
	})
}

func (h *JobHandler) ToggleBookmark(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := h.store.Job(id); err != nil {
		return fail(c, err)
	}

	added, err := h.store.ToggleBookmark(c.UserContext(), id)
	if err != nil {
		return fail(c, err)
	}
	message := "Removed from bookmarks"
	if added {
		message = "Added to bookmarks"
	}
	return c.JSON(dto.BookmarkResponse{Message: message, Bookmarked: added})
}

// Managed lists a provider's postings or a laborer's applications.
func (h *JobHandler) Managed(c *fiber.Ctx) error {
	sess, ok := session(c, h.store)
	if !ok || !sess.Active() {
		return unauthorized(c)
	}
	return h.list(c, h.store.ListManagedJobs(sess), sess)
}

func (h *JobHandler) Bookmarked(c *fiber.Ctx) error {
	sess, ok := session(c, h.store)
	if !ok {
		return unauthorized(c)
	}
	return h.list(c, h.store.ListBookmarkedJobs(), sess)
}

func (h *JobHandler) list(c *fiber.Ctx, jobs []models.Job, sess board.Session) error {
	cards := h.store.Cards(jobs, sess)
	return c.JSON(dto.JobListResponse{Jobs: cards, Count: len(cards)})
}
