package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/raghavenderreddy1707/Labour-Hub/internal/board"
	"github.com/raghavenderreddy1707/Labour-Hub/internal/dto"
)

type PreferenceHandler struct {
	store *board.Store
}

func NewPreferenceHandler(store *board.Store) *PreferenceHandler {
	return &PreferenceHandler{store: store}
}

func (h *PreferenceHandler) Theme(c *fiber.Ctx) error {
	return c.JSON(dto.ThemeResponse{Theme: h.store.Theme()})
}

func (h *PreferenceHandler) ToggleTheme(c *fiber.Ctx) error {
	theme, err := h.store.ToggleTheme(c.UserContext())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.ThemeResponse{Theme: theme})
}
