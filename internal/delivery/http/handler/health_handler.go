package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ichidan-dokusho/place-api/internal/usecase"
	"github.com/ichidan-dokusho/place-api/internal/usecase/dto"
)

type HealthHandler struct {
	statsUC *usecase.StatsUseCase
}

func NewHealthHandler(statsUC *usecase.StatsUseCase) *HealthHandler {
	return &HealthHandler{statsUC: statsUC}
}

// Health godoc
// @Summary ヘルスチェック
// @Description 稼働状態とテーブルごとの件数を返します
// @Tags System
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.JSON(h.statsUC.Health(c.Context()))
}

// Banner godoc
// @Summary サービス情報
// @Tags System
// @Produce json
// @Success 200 {object} dto.BannerResponse
// @Router / [get]
func (h *HealthHandler) Banner(c *fiber.Ctx) error {
	return c.JSON(dto.BannerResponse{
		Message:     "ichidan-dokusho-place API",
		Version:     "1.0.0",
		Description: "読書に集中できる場所をレコメンドするAPI",
	})
}
