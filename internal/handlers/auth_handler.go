package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/raghavenderreddy1707/Labour-Hub/internal/board"
	"github.com/raghavenderreddy1707/Labour-Hub/internal/dto"
	"github.com/raghavenderreddy1707/Labour-Hub/internal/models"
	"github.com/raghavenderreddy1707/Labour-Hub/internal/services"
)

type AuthHandler struct {
	store  *board.Store
	tokens *services.TokenService
}

func NewAuthHandler(store *board.Store, tokens *services.TokenService) *AuthHandler {
	return &AuthHandler{store: store, tokens: tokens}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	user, err := h.store.Register(c.UserContext(), board.RegisterRequest{
		Name:       req.Name,
		Location:   req.Location,
		Contact:    req.Contact,
		Profession: req.Profession,
	}, req.Role)
	if err != nil {
		return fail(c, err)
	}

	return h.respondWithToken(c, fiber.StatusCreated, user, "Registration successful! Welcome aboard!")
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if !req.Role.Valid() {
		return badRequest(c, board.MsgInvalidRole)
	}

	user, err := h.store.Login(c.UserContext(), req.Contact, req.Role)
	if err != nil {
		return fail(c, err)
	}

	return h.respondWithToken(c, fiber.StatusOK, user, "Welcome back, "+user.Name+"!")
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.store.Logout(c.UserContext()); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Logged out successfully"})
}

// Me returns the caller's user. Requests without a token fall back to the
// session persisted by the last register or login.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	sess, ok := session(c, h.store)
	if !ok {
		return unauthorized(c)
	}
	if !sess.Active() {
		sess = h.store.CurrentSession()
	}
	if !sess.Active() {
		return unauthorized(c)
	}
	return c.JSON(dto.MeResponse{
		User:  sess.User,
		Stats: h.store.Stats(sess),
	})
}

func (h *AuthHandler) respondWithToken(c *fiber.Ctx, status int, user *models.User, message string) error {
	token, err := h.tokens.Issue(user)
	if err != nil {
		slog.Error("token issue failed", "user_id", user.ID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.Status(status).JSON(dto.AuthResponse{
		Message: message,
		Token:   token,
		User:    user,
	})
}
