package server

import (
	"ripple/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetAllUsers handles GET /api/users
func (s *Server) GetAllUsers(c *fiber.Ctx) error {
	return c.JSON(s.userStore.Users())
}

// GetUserProfile handles GET /api/users/:username
func (s *Server) GetUserProfile(c *fiber.Ctx) error {
	username := c.Params("username")
	user, ok := s.userStore.GetByUsername(username)
	if !ok {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("User", username))
	}
	return c.JSON(user)
}

// FollowUser handles POST /api/users/:id/follow
func (s *Server) FollowUser(c *fiber.Ctx) error {
	receipt, err := s.userStore.Follow(c.Params("id"))
	if err != nil {
		return models.RespondWithError(c, models.HTTPStatus(err), err)
	}
	s.logDurability("follow", receipt)

	return c.JSON(fiber.Map{"following": true})
}

// UnfollowUser handles DELETE /api/users/:id/follow
func (s *Server) UnfollowUser(c *fiber.Ctx) error {
	receipt, err := s.userStore.Unfollow(c.Params("id"))
	if err != nil {
		return models.RespondWithError(c, models.HTTPStatus(err), err)
	}
	s.logDurability("unfollow", receipt)

	return c.JSON(fiber.Map{"following": false})
}

// GetMyProfile handles GET /api/me
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	user, ok := s.userStore.CurrentUser()
	if !ok {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("User", "current"))
	}
	return c.JSON(user)
}

// UpdateMyProfile handles PUT /api/me/profile
func (s *Server) UpdateMyProfile(c *fiber.Ctx) error {
	var req struct {
		Bio string `json:"bio"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	receipt, err := s.userStore.UpdateProfile(req.Bio)
	if err != nil {
		return models.RespondWithError(c, models.HTTPStatus(err), err)
	}
	s.logDurability("profile update", receipt)

	user, _ := s.userStore.CurrentUser()
	return c.JSON(user)
}

// SwitchSession handles POST /api/session
func (s *Server) SwitchSession(c *fiber.Ctx) error {
	var req struct {
		Username string `json:"username"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.Username == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Username is required"))
	}

	receipt, err := s.userStore.SetCurrentUser(req.Username)
	if err != nil {
		return models.RespondWithError(c, models.HTTPStatus(err), err)
	}
	s.logDurability("session switch", receipt)

	user, _ := s.userStore.CurrentUser()
	return c.JSON(user)
}

// ClearSession handles DELETE /api/session
func (s *Server) ClearSession(c *fiber.Ctx) error {
	receipt, err := s.userStore.SetCurrentUser("")
	if err != nil {
		return models.RespondWithError(c, models.HTTPStatus(err), err)
	}
	s.logDurability("session clear", receipt)

	return c.SendStatus(fiber.StatusNoContent)
}
