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

// SubdivisionHandler - иерархия подразделений
type SubdivisionHandler struct {
	subdivisionUC *usecase.SubdivisionUseCase
	logger        *zap.Logger
}

func NewSubdivisionHandler(subdivisionUC *usecase.SubdivisionUseCase, logger *zap.Logger) *SubdivisionHandler {
	return &SubdivisionHandler{
		subdivisionUC: subdivisionUC,
		logger:        logger,
	}
}

// Children godoc
// @Summary Дочерние подразделения
// @Description Прямые потомки родителя, отсортированные по id. Без parent возвращается верхний уровень страны. Неизвестный родитель даёт пустой список.
// @Tags Subdivisions
// @Produce json
// @Param country path string true "Код страны"
// @Param parent query string false "Id родителя (US-CA, CN-SC-CD)"
// @Param locale query string false "Локаль названий"
// @Success 200 {object} utils.SuccessResponse{data=dto.SubdivisionListResponse}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/subdivisions/{country} [get]
func (h *SubdivisionHandler) Children(c *fiber.Ctx) error {
	locale := c.Query("locale")
	result, err := h.subdivisionUC.Children(c.UserContext(), c.Params("country"), c.Query("parent"), locale)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, &utils.Meta{Total: result.Total, Locale: locale})
}

// Depth godoc
// @Summary Глубина иерархии подразделений
// @Tags Subdivisions
// @Produce json
// @Param country path string true "Код страны"
// @Success 200 {object} utils.SuccessResponse{data=dto.SubdivisionDepthResponse}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/subdivisions/{country}/depth [get]
func (h *SubdivisionHandler) Depth(c *fiber.Ctx) error {
	result, err := h.subdivisionUC.Depth(c.UserContext(), c.Params("country"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, nil)
}

// Get godoc
// @Summary Подразделение по id
// @Tags Subdivisions
// @Produce json
// @Param id path string true "Id подразделения"
// @Param locale query string false "Локаль"
// @Success 200 {object} utils.SuccessResponse{data=domain.Subdivision}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/subdivision/{id} [get]
func (h *SubdivisionHandler) Get(c *fiber.Ctx) error {
	result, err := h.subdivisionUC.Get(c.UserContext(), c.Params("id"), c.Query("locale"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, nil)
}

// Save godoc
// @Summary Создание или обновление подразделения
// @Tags Subdivisions
// @Accept json
// @Produce json
// @Param id path string true "Id подразделения"
// @Param request body dto.SaveSubdivisionRequest true "Подразделение"
// @Success 200 {object} utils.SuccessResponse{data=domain.Subdivision}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/subdivision/{id} [put]
func (h *SubdivisionHandler) Save(c *fiber.Ctx) error {
	var req dto.SaveSubdivisionRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage("Invalid request body"))
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.subdivisionUC.Save(c.UserContext(), c.Params("id"), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, nil)
}

// Delete godoc
// @Summary Удаление подразделения вместе с потомками
// @Tags Subdivisions
// @Param id path string true "Id подразделения"
// @Success 204
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/subdivision/{id} [delete]
func (h *SubdivisionHandler) Delete(c *fiber.Ctx) error {
	if err := h.subdivisionUC.Delete(c.UserContext(), c.Params("id")); err != nil {
		return utils.SendError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
