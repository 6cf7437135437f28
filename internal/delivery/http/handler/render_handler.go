package handler

import (
	"html"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/address-microservice/internal/pkg/errors"
	"github.com/address-microservice/internal/pkg/utils"
	"github.com/address-microservice/internal/pkg/validator"
	"github.com/address-microservice/internal/usecase"
	"github.com/address-microservice/internal/usecase/dto"
)

// RenderHandler - форматирование и проверка адресов
type RenderHandler struct {
	renderUC     *usecase.RenderUseCase
	validationUC *usecase.ValidationUseCase
	logger       *zap.Logger
}

func NewRenderHandler(renderUC *usecase.RenderUseCase, validationUC *usecase.ValidationUseCase, logger *zap.Logger) *RenderHandler {
	return &RenderHandler{
		renderUC:     renderUC,
		validationUC: validationUC,
		logger:       logger,
	}
}

// Render godoc
// @Summary Форматирование адреса
// @Description Форматирует адрес по шаблону страны. Для неизвестной страны используется общий формат ZZ. Режим postal переводит поля формата в верхний регистр, добавляет префикс индекса для международной почты и убирает страну для внутренней.
// @Tags Render
// @Accept json
// @Produce json
// @Param request body dto.RenderRequest true "Адрес и параметры форматирования"
// @Success 200 {object} utils.SuccessResponse{data=dto.RenderResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/render [post]
func (h *RenderHandler) Render(c *fiber.Ctx) error {
	var req dto.RenderRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage("Invalid request body"))
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.renderUC.Render(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	if req.HTML {
		result.HTML = toHTML(result.Lines)
	}

	return utils.SendSuccess(c, result, &utils.Meta{Locale: result.Locale})
}

// BatchRender godoc
// @Summary Пакетное форматирование адресов
// @Description Форматирует до 100 адресов с общими параметрами. Порядок результатов совпадает с порядком адресов.
// @Tags Render
// @Accept json
// @Produce json
// @Param request body dto.BatchRenderRequest true "Адреса и параметры форматирования"
// @Success 200 {object} utils.SuccessResponse{data=dto.BatchRenderResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/batch/render [post]
func (h *RenderHandler) BatchRender(c *fiber.Ctx) error {
	var req dto.BatchRenderRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage("Invalid request body"))
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.renderUC.RenderBatch(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	if req.HTML {
		for i := range result.Results {
			result.Results[i].HTML = toHTML(result.Results[i].Lines)
		}
	}

	return utils.SendSuccess(c, result, &utils.Meta{Total: result.Total})
}

// Validate godoc
// @Summary Проверка адреса
// @Description Проверяет адрес по формату страны: обязательные и неиспользуемые поля, предопределённые подразделения, индекс. Нарушения возвращаются списком.
// @Tags Render
// @Accept json
// @Produce json
// @Param request body dto.ValidateAddressRequest true "Адрес и ограничения поля"
// @Success 200 {object} utils.SuccessResponse{data=dto.ValidationResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/validate [post]
func (h *RenderHandler) Validate(c *fiber.Ctx) error {
	var req dto.ValidateAddressRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage("Invalid request body"))
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.validationUC.Validate(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{Total: len(result.Violations)})
}

// toHTML экранирует строки и соединяет их через <br>
func toHTML(lines []string) string {
	escaped := make([]string, 0, len(lines))
	for _, line := range lines {
		escaped = append(escaped, html.EscapeString(line))
	}
	return strings.Join(escaped, "<br>\n")
}
