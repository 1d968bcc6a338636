package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"inventario/internal/dto"
	"inventario/internal/services"
	"inventario/pkg/logger"
)

// ClientHandler handles HTTP requests for clients.
type ClientHandler struct {
	service *services.ClientService
	log     *logger.Logger
}

// NewClientHandler creates a new ClientHandler.
func NewClientHandler(service *services.ClientService, log *logger.Logger) *ClientHandler {
	return &ClientHandler{
		service: service,
		log:     log,
	}
}

// RegisterRoutes registers the client routes on router.
func (h *ClientHandler) RegisterRoutes(router fiber.Router) {
	clientRoutes := router.Group("/clientes")
	clientRoutes.Get("/", h.HandleGetClients)
	clientRoutes.Get("/:id", h.HandleGetClientByID)
	clientRoutes.Post("/", h.HandleCreateClient)
	clientRoutes.Put("/:id", h.HandleUpdateClient)
	clientRoutes.Delete("/:id", h.HandleDeleteClient)
}

// HandleGetClients godoc
// @Summary      List clients
// @Tags         clientes
// @Produce      json
// @Success      200  {array}   dto.ClientDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/clientes [get]
func (h *ClientHandler) HandleGetClients(c *fiber.Ctx) error {
	clients, err := h.service.GetAllClients(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(clients)
}

// HandleGetClientByID godoc
// @Summary      Get a client
// @Tags         clientes
// @Produce      json
// @Param        id   path      int  true  "Client ID"
// @Success      200  {object}  dto.ClientDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/clientes/{id} [get]
func (h *ClientHandler) HandleGetClientByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return invalidID(c)
	}
	client, err := h.service.GetClientByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(client)
}

// HandleCreateClient godoc
// @Summary      Create a client
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Param        body  body      dto.ClientDTO  true  "Client"
// @Success      201   {object}  dto.ClientDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/clientes [post]
func (h *ClientHandler) HandleCreateClient(c *fiber.Ctx) error {
	var in dto.ClientDTO
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c, err)
	}
	created, err := h.service.CreateClient(c.UserContext(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	c.Location(fmt.Sprintf("/api/clientes/%d", *created.ID))
	return c.Status(fiber.StatusCreated).JSON(created)
}

// HandleUpdateClient godoc
// @Summary      Replace a client
// @Tags         clientes
// @Accept       json
// @Param        id    path  int              true  "Client ID"
// @Param        body  body  dto.ClientDTO  true  "Client"
// @Success      204
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/clientes/{id} [put]
func (h *ClientHandler) HandleUpdateClient(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return invalidID(c)
	}
	var in dto.ClientDTO
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c, err)
	}
	if err := h.service.UpdateClient(c.UserContext(), id, in); err != nil {
		return writeError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleDeleteClient godoc
// @Summary      Delete a client
// @Tags         clientes
// @Param        id   path  int  true  "Client ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/clientes/{id} [delete]
func (h *ClientHandler) HandleDeleteClient(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return invalidID(c)
	}
	if err := h.service.DeleteClient(c.UserContext(), id); err != nil {
		return writeError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
