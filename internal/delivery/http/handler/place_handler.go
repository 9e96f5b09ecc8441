package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/ichidan-dokusho/place-api/internal/domain"
	"github.com/ichidan-dokusho/place-api/internal/pkg/errors"
	"github.com/ichidan-dokusho/place-api/internal/pkg/utils"
	"github.com/ichidan-dokusho/place-api/internal/usecase"
	"github.com/ichidan-dokusho/place-api/internal/usecase/dto"
)

// PlaceHandler serves cafes, bookstores and bars; methods return handlers
// bound to one kind, so the server registers the same contract under each
// path segment (/api/cafes, /api/bookstores, /api/bars).
type PlaceHandler struct {
	placeUC *usecase.PlaceUseCase
	logger  *zap.Logger
}

func NewPlaceHandler(placeUC *usecase.PlaceUseCase, logger *zap.Logger) *PlaceHandler {
	return &PlaceHandler{
		placeUC: placeUC,
		logger:  logger,
	}
}

// List handles the public listing with the optional exact-match station
// filter.
func (h *PlaceHandler) List(kind domain.PlaceKind) fiber.Handler {
	return func(c *fiber.Ctx) error {
		places, err := h.placeUC.List(c.Context(), kind, c.Query("station"))
		if err != nil {
			return utils.SendError(c, err)
		}

		return c.JSON(places)
	}
}

// ListAll is the admin view: every row, newest first, no filter.
func (h *PlaceHandler) ListAll(kind domain.PlaceKind) fiber.Handler {
	return func(c *fiber.Ctx) error {
		places, err := h.placeUC.List(c.Context(), kind, "")
		if err != nil {
			return utils.SendError(c, err)
		}

		return c.JSON(places)
	}
}

func (h *PlaceHandler) Create(kind domain.PlaceKind) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req dto.PlaceRequest
		if err := c.BodyParser(&req); err != nil {
			return utils.SendError(c, errors.ErrInvalidRequestBody)
		}

		place, err := h.placeUC.Create(c.Context(), kind, req)
		if err != nil {
			return utils.SendError(c, err)
		}

		return utils.SendCreated(c, place)
	}
}

func (h *PlaceHandler) Update(kind domain.PlaceKind) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c)
		if err != nil {
			return utils.SendError(c, err)
		}

		var req dto.PlaceRequest
		if err := c.BodyParser(&req); err != nil {
			return utils.SendError(c, errors.ErrInvalidRequestBody)
		}

		place, err := h.placeUC.Update(c.Context(), kind, id, req)
		if err != nil {
			return utils.SendError(c, err)
		}

		return c.JSON(place)
	}
}

func (h *PlaceHandler) Delete(kind domain.PlaceKind) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c)
		if err != nil {
			return utils.SendError(c, err)
		}

		if err := h.placeUC.Delete(c.Context(), kind, id); err != nil {
			return utils.SendError(c, err)
		}

		return utils.SendDeleted(c, kind.Label()+"を削除しました", id)
	}
}
