package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/catalog-service/internal/domain"
)

// CategoriesHandler serves the fixed category list.
type CategoriesHandler struct{}

// NewCategoriesHandler constructs handler.
func NewCategoriesHandler() *CategoriesHandler {
	return &CategoriesHandler{}
}

// List handles GET /api/categories.
func (h *CategoriesHandler) List(c *fiber.Ctx) error {
	return c.JSON(domain.Categories())
}
