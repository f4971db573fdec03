package server

import (
	"strings"

	"ripple/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetFeed handles GET /api/feed
func (s *Server) GetFeed(c *fiber.Ctx) error {
	return c.JSON(s.postStore.Posts())
}

// RefreshFeed handles POST /api/feed/refresh. The in-memory collection is
// replaced wholesale with the persisted state.
func (s *Server) RefreshFeed(c *fiber.Ctx) error {
	s.postStore.Refresh(c.Context())
	return c.JSON(s.postStore.Posts())
}

// CreatePost handles POST /api/posts
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req struct {
		Text  string `json:"text"`
		Image string `json:"image,omitempty"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, receipt, err := s.postStore.Create(req.Text, req.Image)
	if err != nil {
		return models.RespondWithError(c, models.HTTPStatus(err), err)
	}
	s.logDurability("post create", receipt)

	return c.Status(fiber.StatusCreated).JSON(post)
}

// LikePost handles POST /api/posts/:id/like
func (s *Server) LikePost(c *fiber.Ctx) error {
	id := c.Params("id")

	receipt, err := s.postStore.Like(id)
	if err != nil {
		return models.RespondWithError(c, models.HTTPStatus(err), err)
	}
	s.logDurability("post like", receipt)

	return c.JSON(fiber.Map{"liked": true})
}

// UnlikePost handles DELETE /api/posts/:id/like
func (s *Server) UnlikePost(c *fiber.Ctx) error {
	id := c.Params("id")

	receipt, err := s.postStore.Unlike(id)
	if err != nil {
		return models.RespondWithError(c, models.HTTPStatus(err), err)
	}
	s.logDurability("post unlike", receipt)

	return c.JSON(fiber.Map{"liked": false})
}

// GetPostLiked handles GET /api/posts/:id/liked
func (s *Server) GetPostLiked(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"liked": s.postStore.IsLiked(c.Params("id"))})
}

// AddComment handles POST /api/posts/:id/comments
func (s *Server) AddComment(c *fiber.Ctx) error {
	id := c.Params("id")

	var req struct {
		Text string `json:"text"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	// The store accepts any text; rejecting blank comments is the surface's
	// job.
	if strings.TrimSpace(req.Text) == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Comment text is required"))
	}

	comment, receipt, err := s.postStore.AddComment(id, req.Text)
	if err != nil {
		return models.RespondWithError(c, models.HTTPStatus(err), err)
	}
	s.logDurability("comment add", receipt)

	return c.Status(fiber.StatusCreated).JSON(comment)
}

// GetUserPosts handles GET /api/users/:username/posts
func (s *Server) GetUserPosts(c *fiber.Ctx) error {
	posts := s.postStore.GetByAuthor(c.Params("username"))
	if posts == nil {
		posts = []models.Post{}
	}
	return c.JSON(posts)
}
