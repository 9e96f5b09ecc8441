package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/ichidan-dokusho/place-api/internal/pkg/errors"
	"github.com/ichidan-dokusho/place-api/internal/pkg/utils"
	"github.com/ichidan-dokusho/place-api/internal/usecase"
	"github.com/ichidan-dokusho/place-api/internal/usecase/dto"
)

type StationHandler struct {
	stationUC *usecase.StationUseCase
	logger    *zap.Logger
}

func NewStationHandler(stationUC *usecase.StationUseCase, logger *zap.Logger) *StationHandler {
	return &StationHandler{
		stationUC: stationUC,
		logger:    logger,
	}
}

// ListNames godoc
// @Summary 駅名一覧
// @Description 駅名の一覧を返します。prefecture_idで都道府県を絞り込めます
// @Tags Stations
// @Produce json
// @Param prefecture_id query int false "都道府県ID"
// @Success 200 {array} string
// @Router /api/stations [get]
func (h *StationHandler) ListNames(c *fiber.Ctx) error {
	prefectureID, err := optionalIntQuery(c, "prefecture_id")
	if err != nil {
		return utils.SendError(c, err)
	}

	names, err := h.stationUC.ListNames(c.Context(), prefectureID)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(names)
}

// ListAll godoc
// @Summary 駅一覧（管理用）
// @Description 都道府県・地方名を含む全駅データを返します
// @Tags Stations
// @Produce json
// @Success 200 {array} domain.StationDetail
// @Router /api/stations/all [get]
func (h *StationHandler) ListAll(c *fiber.Ctx) error {
	stations, err := h.stationUC.ListDetailed(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(stations)
}

// Create godoc
// @Summary 駅の登録
// @Tags Stations
// @Accept json
// @Produce json
// @Param request body dto.StationRequest true "駅情報"
// @Success 201 {object} domain.Station
// @Failure 400 {object} map[string]string
// @Router /api/stations [post]
func (h *StationHandler) Create(c *fiber.Ctx) error {
	var req dto.StationRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequestBody)
	}

	station, err := h.stationUC.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, station)
}

// Update godoc
// @Summary 駅の更新
// @Tags Stations
// @Accept json
// @Produce json
// @Param id path int true "駅ID"
// @Param request body dto.StationRequest true "駅情報"
// @Success 200 {object} domain.Station
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/stations/{id} [put]
func (h *StationHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.StationRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequestBody)
	}

	station, err := h.stationUC.Update(c.Context(), id, req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(station)
}

// Delete godoc
// @Summary 駅の削除
// @Description 店舗から参照されている駅は削除できません
// @Tags Stations
// @Produce json
// @Param id path int true "駅ID"
// @Success 200 {object} utils.DeleteResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/stations/{id} [delete]
func (h *StationHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	station, err := h.stationUC.Delete(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendDeleted(c, "駅「"+station.Name+"」を削除しました", station.ID)
}
