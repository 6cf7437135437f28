package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/address-microservice/internal/pkg/errors"
	"github.com/address-microservice/internal/pkg/utils"
	"github.com/address-microservice/internal/pkg/validator"
	"github.com/address-microservice/internal/usecase"
	"github.com/address-microservice/internal/usecase/dto"
)

type ImportHandler struct {
	importUC *usecase.ImportUseCase
	logger   *zap.Logger
}

func NewImportHandler(importUC *usecase.ImportUseCase, logger *zap.Logger) *ImportHandler {
	return &ImportHandler{
		importUC: importUC,
		logger:   logger,
	}
}

// Enqueue godoc
// @Summary Постановка импорта в очередь
// @Description Публикует задание в stream:address:import. Пустой country_codes означает все страны набора данных, пустой langcodes - языки из конфигурации.
// @Tags Import
// @Accept json
// @Produce json
// @Param request body dto.ImportRequest false "Страны и языки"
// @Success 202 {object} utils.SuccessResponse{data=dto.ImportResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/import [post]
func (h *ImportHandler) Enqueue(c *fiber.Ctx) error {
	var req dto.ImportRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return utils.SendError(c, errors.ErrInvalidRequest.WithMessage("Invalid request body"))
		}
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.importUC.Enqueue(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.Status(fiber.StatusAccepted).JSON(utils.SuccessResponse{Data: result})
}
