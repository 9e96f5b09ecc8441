package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/ichidan-dokusho/place-api/internal/pkg/errors"
	"github.com/ichidan-dokusho/place-api/internal/pkg/utils"
	"github.com/ichidan-dokusho/place-api/internal/usecase"
)

type RegionHandler struct {
	regionUC *usecase.RegionUseCase
	logger   *zap.Logger
}

func NewRegionHandler(regionUC *usecase.RegionUseCase, logger *zap.Logger) *RegionHandler {
	return &RegionHandler{
		regionUC: regionUC,
		logger:   logger,
	}
}

// ListRegions godoc
// @Summary 地方一覧
// @Description 八地方区分の一覧を返します
// @Tags Regions
// @Produce json
// @Success 200 {array} domain.Region
// @Router /api/regions [get]
func (h *RegionHandler) ListRegions(c *fiber.Ctx) error {
	regions, err := h.regionUC.ListRegions(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(regions)
}

// ListPrefectures godoc
// @Summary 都道府県一覧
// @Description 都道府県の一覧を返します。region_idで地方を絞り込めます
// @Tags Regions
// @Produce json
// @Param region_id query int false "地方ID"
// @Success 200 {array} domain.Prefecture
// @Failure 400 {object} map[string]string
// @Router /api/prefectures [get]
func (h *RegionHandler) ListPrefectures(c *fiber.Ctx) error {
	regionID, err := optionalIntQuery(c, "region_id")
	if err != nil {
		return utils.SendError(c, err)
	}

	prefectures, err := h.regionUC.ListPrefectures(c.Context(), regionID)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(prefectures)
}

// optionalIntQuery parses an optional integer query parameter; absence is not
// an error, garbage is.
func optionalIntQuery(c *fiber.Ctx, name string) (*int, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, errors.ErrInvalidID
	}
	return &value, nil
}

// pathID parses the :id path parameter.
func pathID(c *fiber.Ctx) (int, error) {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id < 1 {
		return 0, errors.ErrInvalidID
	}
	return id, nil
}
