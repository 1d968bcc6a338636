package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"inventario/internal/dto"
	"inventario/internal/services"
	"inventario/pkg/logger"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service *services.ProductService
	log     *logger.Logger
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService, log *logger.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		log:     log,
	}
}

// RegisterRoutes registers the product routes on router.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/productos")
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Get("/:id", h.HandleGetProductByID)
	productRoutes.Post("/", h.HandleCreateProduct)
	productRoutes.Put("/:id", h.HandleUpdateProduct)
	productRoutes.Delete("/:id", h.HandleDeleteProduct)
}

// HandleGetProducts godoc
// @Summary      List products
// @Tags         productos
// @Produce      json
// @Success      200  {array}   dto.ProductDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/productos [get]
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(products)
}

// HandleGetProductByID godoc
// @Summary      Get a product
// @Tags         productos
// @Produce      json
// @Param        id   path      int  true  "Product ID"
// @Success      200  {object}  dto.ProductDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/productos/{id} [get]
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return invalidID(c)
	}
	product, err := h.service.GetProductByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(product)
}

// HandleCreateProduct godoc
// @Summary      Create a product
// @Tags         productos
// @Accept       json
// @Produce      json
// @Param        body  body      dto.ProductDTO  true  "Product"
// @Success      201   {object}  dto.ProductDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/productos [post]
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var in dto.ProductDTO
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c, err)
	}
	created, err := h.service.CreateProduct(c.UserContext(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	c.Location(fmt.Sprintf("/api/productos/%d", *created.ID))
	return c.Status(fiber.StatusCreated).JSON(created)
}

// HandleUpdateProduct godoc
// @Summary      Replace a product
// @Tags         productos
// @Accept       json
// @Param        id    path  int              true  "Product ID"
// @Param        body  body  dto.ProductDTO  true  "Product"
// @Success      204
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/productos/{id} [put]
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return invalidID(c)
	}
	var in dto.ProductDTO
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c, err)
	}
	if err := h.service.UpdateProduct(c.UserContext(), id, in); err != nil {
		return writeError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleDeleteProduct godoc
// @Summary      Delete a product
// @Tags         productos
// @Param        id   path  int  true  "Product ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/productos/{id} [delete]
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return invalidID(c)
	}
	if err := h.service.DeleteProduct(c.UserContext(), id); err != nil {
		return writeError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
