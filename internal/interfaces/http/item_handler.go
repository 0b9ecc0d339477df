package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/templeops/temple-stock-api/internal/application/dto"
	"github.com/templeops/temple-stock-api/internal/application/registry"
	"github.com/templeops/temple-stock-api/internal/domain/repository"
)

// ItemHandler serves the item registry endpoints.
type ItemHandler struct {
	uc *registry.ItemUseCase
}

// NewItemHandler builds the handler.
func NewItemHandler(uc *registry.ItemUseCase) *ItemHandler {
	return &ItemHandler{uc: uc}
}

// Save godoc
// @Summary      Create or update a stock item
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaveItemRequest  true  "item fields; id present = merge-update"
// @Success      200   {object}  dto.ItemResponse
// @Success      201   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/items [post]
func (h *ItemHandler) Save(c *fiber.Ctx) error {
	var in dto.SaveItemRequest
	if bad, resp := parseBody(c, &in); bad {
		return resp
	}
	updating := in.ID != ""
	item, err := h.uc.CreateOrUpdate(c.Context(), GetTempleID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	status := fiber.StatusCreated
	if updating && item.ID == in.ID {
		status = fiber.StatusOK
	}
	return c.Status(status).JSON(item)
}

// GetByID godoc
// @Summary      Get a stock item
// @Tags         items
// @Produce      json
// @Param        id   path      string  true  "item id"
// @Success      200  {object}  dto.ItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/{id} [get]
func (h *ItemHandler) GetByID(c *fiber.Ctx) error {
	item, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if item == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "ITEM_NOT_FOUND", Message: "stock item not found"})
	}
	return c.JSON(item)
}

// List godoc
// @Summary      List stock items
// @Tags         items
// @Produce      json
// @Param        category   query  string  false  "filter by category"
// @Param        status     query  string  false  "filter by derived status"
// @Param        structure  query  string  false  "filter by default structure"
// @Success      200  {object}  dto.ItemListResponse
// @Router       /api/items [get]
func (h *ItemHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "malformed query parameters"})
	}
	page.DefaultPage()
	list, err := h.uc.List(c.Context(), repository.ItemFilter{
		TempleID:  GetTempleID(c),
		Category:  c.Query("category"),
		Status:    c.Query("status"),
		Structure: c.Query("structure"),
		Limit:     page.Limit,
		Offset:    page.Offset,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}
