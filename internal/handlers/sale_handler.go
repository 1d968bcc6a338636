package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"inventario/internal/dto"
	"inventario/internal/services"
	"inventario/pkg/logger"
)

// SaleHandler handles HTTP requests for sales.
type SaleHandler struct {
	service *services.SaleService
	log     *logger.Logger
}

// NewSaleHandler creates a new SaleHandler.
func NewSaleHandler(service *services.SaleService, log *logger.Logger) *SaleHandler {
	return &SaleHandler{
		service: service,
		log:     log,
	}
}

// RegisterRoutes registers the sale routes on router.
func (h *SaleHandler) RegisterRoutes(router fiber.Router) {
	saleRoutes := router.Group("/ventas")
	saleRoutes.Get("/", h.HandleGetSales)
	saleRoutes.Get("/:id", h.HandleGetSaleByID)
	saleRoutes.Post("/", h.HandleCreateSale)
	saleRoutes.Put("/:id", h.HandleUpdateSale)
	saleRoutes.Delete("/:id", h.HandleDeleteSale)
}

// HandleGetSales godoc
// @Summary      List sales
// @Tags         ventas
// @Produce      json
// @Success      200  {array}   dto.SaleDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/ventas [get]
func (h *SaleHandler) HandleGetSales(c *fiber.Ctx) error {
	sales, err := h.service.GetAllSales(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(sales)
}

// HandleGetSaleByID godoc
// @Summary      Get a sale
// @Tags         ventas
// @Produce      json
// @Param        id   path      int  true  "Sale ID"
// @Success      200  {object}  dto.SaleDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ventas/{id} [get]
func (h *SaleHandler) HandleGetSaleByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return invalidID(c)
	}
	sale, err := h.service.GetSaleByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(sale)
}

// HandleCreateSale godoc
// @Summary      Create a sale
// @Tags         ventas
// @Accept       json
// @Produce      json
// @Param        body  body      dto.SaleDTO  true  "Sale"
// @Success      201   {object}  dto.SaleDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/ventas [post]
func (h *SaleHandler) HandleCreateSale(c *fiber.Ctx) error {
	var in dto.SaleDTO
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c, err)
	}
	created, err := h.service.CreateSale(c.UserContext(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	c.Location(fmt.Sprintf("/api/ventas/%d", *created.ID))
	return c.Status(fiber.StatusCreated).JSON(created)
}

// HandleUpdateSale godoc
// @Summary      Replace a sale
// @Tags         ventas
// @Accept       json
// @Param        id    path  int              true  "Sale ID"
// @Param        body  body  dto.SaleDTO  true  "Sale"
// @Success      204
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/ventas/{id} [put]
func (h *SaleHandler) HandleUpdateSale(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return invalidID(c)
	}
	var in dto.SaleDTO
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c, err)
	}
	if err := h.service.UpdateSale(c.UserContext(), id, in); err != nil {
		return writeError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleDeleteSale godoc
// @Summary      Delete a sale
// @Tags         ventas
// @Param        id   path  int  true  "Sale ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/ventas/{id} [delete]
func (h *SaleHandler) HandleDeleteSale(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return invalidID(c)
	}
	if err := h.service.DeleteSale(c.UserContext(), id); err != nil {
		return writeError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
