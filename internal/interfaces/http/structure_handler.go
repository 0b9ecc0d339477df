package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/templeops/temple-stock-api/internal/application/dto"
	"github.com/templeops/temple-stock-api/internal/application/registry"
)

// StructureHandler serves the structure registry endpoints.
type StructureHandler struct {
	uc *registry.StructureUseCase
}

// NewStructureHandler builds the handler.
func NewStructureHandler(uc *registry.StructureUseCase) *StructureHandler {
	return &StructureHandler{uc: uc}
}

// Create godoc
// @Summary      Register a temple structure
// @Tags         structures
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStructureRequest  true  "name, kind"
// @Success      201   {object}  dto.StructureResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/structures [post]
func (h *StructureHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateStructureRequest
	if bad, resp := parseBody(c, &in); bad {
		return resp
	}
	s, err := h.uc.Create(c.Context(), GetTempleID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(s)
}

// GetByID godoc
// @Summary      Get a temple structure
// @Tags         structures
// @Produce      json
// @Param        id   path      string  true  "structure id"
// @Success      200  {object}  dto.StructureResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/structures/{id} [get]
func (h *StructureHandler) GetByID(c *fiber.Ctx) error {
	s, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if s == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "structure not found"})
	}
	return c.JSON(s)
}

// List godoc
// @Summary      List temple structures
// @Tags         structures
// @Produce      json
// @Success      200  {object}  dto.StructureListResponse
// @Router       /api/structures [get]
func (h *StructureHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "malformed query parameters"})
	}
	page.DefaultPage()
	list, err := h.uc.List(c.Context(), GetTempleID(c), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}
