package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"inventario/internal/dto"
	"inventario/internal/services"
	"inventario/pkg/logger"
)

// CategoryHandler handles HTTP requests for categories.
type CategoryHandler struct {
	service *services.CategoryService
	log     *logger.Logger
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(service *services.CategoryService, log *logger.Logger) *CategoryHandler {
	return &CategoryHandler{
		service: service,
		log:     log,
	}
}

// RegisterRoutes registers the category routes on router.
func (h *CategoryHandler) RegisterRoutes(router fiber.Router) {
	categoryRoutes := router.Group("/categorias")
	categoryRoutes.Get("/", h.HandleGetCategories)
	categoryRoutes.Get("/:id", h.HandleGetCategoryByID)
	categoryRoutes.Post("/", h.HandleCreateCategory)
	categoryRoutes.Put("/:id", h.HandleUpdateCategory)
	categoryRoutes.Delete("/:id", h.HandleDeleteCategory)
}

// HandleGetCategories godoc
// @Summary      List categories
// @Tags         categorias
// @Produce      json
// @Success      200  {array}   dto.CategoryDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/categorias [get]
func (h *CategoryHandler) HandleGetCategories(c *fiber.Ctx) error {
	categories, err := h.service.GetAllCategories(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(categories)
}

// HandleGetCategoryByID godoc
// @Summary      Get a category
// @Tags         categorias
// @Produce      json
// @Param        id   path      int  true  "Category ID"
// @Success      200  {object}  dto.CategoryDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/categorias/{id} [get]
func (h *CategoryHandler) HandleGetCategoryByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return invalidID(c)
	}
	category, err := h.service.GetCategoryByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(category)
}

// HandleCreateCategory godoc
// @Summary      Create a category
// @Tags         categorias
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CategoryDTO  true  "Category"
// @Success      201   {object}  dto.CategoryDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/categorias [post]
func (h *CategoryHandler) HandleCreateCategory(c *fiber.Ctx) error {
	var in dto.CategoryDTO
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c, err)
	}
	created, err := h.service.CreateCategory(c.UserContext(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	c.Location(fmt.Sprintf("/api/categorias/%d", *created.ID))
	return c.Status(fiber.StatusCreated).JSON(created)
}

// HandleUpdateCategory godoc
// @Summary      Replace a category
// @Tags         categorias
// @Accept       json
// @Param        id    path  int              true  "Category ID"
// @Param        body  body  dto.CategoryDTO  true  "Category"
// @Success      204
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/categorias/{id} [put]
func (h *CategoryHandler) HandleUpdateCategory(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return invalidID(c)
	}
	var in dto.CategoryDTO
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c, err)
	}
	if err := h.service.UpdateCategory(c.UserContext(), id, in); err != nil {
		return writeError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleDeleteCategory godoc
// @Summary      Delete a category
// @Tags         categorias
// @Param        id   path  int  true  "Category ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/categorias/{id} [delete]
func (h *CategoryHandler) HandleDeleteCategory(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return invalidID(c)
	}
	if err := h.service.DeleteCategory(c.UserContext(), id); err != nil {
		return writeError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
