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

// FormatHandler - форматы адресов стран
type FormatHandler struct {
	formatUC *usecase.FormatUseCase
	logger   *zap.Logger
}

func NewFormatHandler(formatUC *usecase.FormatUseCase, logger *zap.Logger) *FormatHandler {
	return &FormatHandler{
		formatUC: formatUC,
		logger:   logger,
	}
}

// List godoc
// @Summary Список форматов адресов
// @Tags Formats
// @Produce json
// @Param locale query string false "Локаль шаблонов (ja, zh-Hant, ...)"
// @Success 200 {object} utils.SuccessResponse{data=dto.FormatListResponse}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/formats [get]
func (h *FormatHandler) List(c *fiber.Ctx) error {
	locale := c.Query("locale")
	result, err := h.formatUC.List(c.UserContext(), locale)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, &utils.Meta{Total: result.Total, Locale: locale})
}

// Get godoc
// @Summary Формат адреса страны
// @Description Возвращает формат страны с используемыми полями, группировкой по строкам, подписями и глубиной иерархии подразделений. Для неизвестной страны возвращается общий формат ZZ.
// @Tags Formats
// @Produce json
// @Param country path string true "Код страны ISO 3166-1 alpha-2"
// @Param locale query string false "Локаль шаблона"
// @Success 200 {object} utils.SuccessResponse{data=dto.FormatResponse}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/formats/{country} [get]
func (h *FormatHandler) Get(c *fiber.Ctx) error {
	locale := c.Query("locale")
	result, err := h.formatUC.Get(c.UserContext(), c.Params("country"), locale)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, &utils.Meta{Locale: result.Locale})
}

// Save godoc
// @Summary Создание или обновление формата
// @Tags Formats
// @Accept json
// @Produce json
// @Param country path string true "Код страны"
// @Param request body dto.SaveFormatRequest true "Формат"
// @Success 200 {object} utils.SuccessResponse{data=domain.AddressFormat}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/formats/{country} [put]
func (h *FormatHandler) Save(c *fiber.Ctx) error {
	var req dto.SaveFormatRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage("Invalid request body"))
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.formatUC.Save(c.UserContext(), c.Params("country"), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, nil)
}

// Delete godoc
// @Summary Удаление формата
// @Description Удаляет формат страны вместе со всеми её подразделениями. Общий формат ZZ удалить нельзя.
// @Tags Formats
// @Param country path string true "Код страны"
// @Success 204
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/formats/{country} [delete]
func (h *FormatHandler) Delete(c *fiber.Ctx) error {
	if err := h.formatUC.Delete(c.UserContext(), c.Params("country")); err != nil {
		return utils.SendError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
