package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/catalog-service/internal/api/dto"
	"github.com/spec-kit/catalog-service/internal/auth"
	"github.com/spec-kit/catalog-service/internal/service"
)

// ProductsHandler exposes catalog CRUD endpoints.
type ProductsHandler struct {
	catalog *service.CatalogService
}

// NewProductsHandler constructs handler.
func NewProductsHandler(catalog *service.CatalogService) *ProductsHandler {
	return &ProductsHandler{catalog: catalog}
}

// List handles GET /api/products.
func (h *ProductsHandler) List(c *fiber.Ctx) error {
	products, err := h.catalog.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(products)
}

// Get handles GET /api/products/:id.
func (h *ProductsHandler) Get(c *fiber.Ctx) error {
	product, err := h.catalog.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(product)
}

// Create handles POST /api/products.
func (h *ProductsHandler) Create(c *fiber.Ctx) error {
	var req dto.ProductCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	subject, _ := auth.SubjectFromContext(c)
	product, err := h.catalog.Create(c.Context(), subject, service.CreateProductInput{
		Name:          req.Name,
		Category:      req.Category,
		Price:         req.Price,
		Image:         req.Image,
		Description:   req.Description,
		Specs:         req.Specs,
		Rating:        req.Rating,
		Reviews:       req.Reviews,
		Featured:      req.Featured,
		AffiliateLink: req.AffiliateLink,
	})
	if err != nil {
		return err
	}
	return c.JSON(product)
}

// Update handles PUT /api/products/:id.
func (h *ProductsHandler) Update(c *fiber.Ctx) error {
	var req dto.ProductUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	subject, _ := auth.SubjectFromContext(c)
	product, err := h.catalog.Update(c.Context(), subject, c.Params("id"), req.Patch())
	if err != nil {
		return err
	}
	return c.JSON(product)
}

// Delete handles DELETE /api/products/:id.
func (h *ProductsHandler) Delete(c *fiber.Ctx) error {
	subject, _ := auth.SubjectFromContext(c)
	if err := h.catalog.Delete(c.Context(), subject, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(dto.DeleteResponse{Message: "Producto eliminado exitosamente"})
}
