package server

import (
	"ripple/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetTrendingNews handles GET /api/trending/news
func (s *Server) GetTrendingNews(c *fiber.Ctx) error {
	articles, err := s.news.Fetch(c.Context())
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}
	return c.JSON(articles)
}

// GetTrendingVideos handles GET /api/trending/videos
func (s *Server) GetTrendingVideos(c *fiber.Ctx) error {
	videos, err := s.videos.Fetch(c.Context())
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}
	return c.JSON(videos)
}
