package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/address-microservice/internal/domain"
	"github.com/address-microservice/internal/pkg/errors"
	"github.com/address-microservice/internal/pkg/utils"
	"github.com/address-microservice/internal/pkg/validator"
	"github.com/address-microservice/internal/usecase"
	"github.com/address-microservice/internal/usecase/dto"
)

// ZoneHandler - зоны и проверка попадания адреса в зону
type ZoneHandler struct {
	zoneUC *usecase.ZoneUseCase
	logger *zap.Logger
}

func NewZoneHandler(zoneUC *usecase.ZoneUseCase, logger *zap.Logger) *ZoneHandler {
	return &ZoneHandler{
		zoneUC: zoneUC,
		logger: logger,
	}
}

// List godoc
// @Summary Список зон
// @Tags Zones
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.ZoneListResponse}
// @Router /api/v1/zones [get]
func (h *ZoneHandler) List(c *fiber.Ctx) error {
	result, err := h.zoneUC.List(c.UserContext())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, &utils.Meta{Total: result.Total})
}

// Get godoc
// @Summary Зона по id
// @Tags Zones
// @Produce json
// @Param id path string true "Id зоны"
// @Success 200 {object} utils.SuccessResponse{data=domain.Zone}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/zones/{id} [get]
func (h *ZoneHandler) Get(c *fiber.Ctx) error {
	result, err := h.zoneUC.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, nil)
}

// Save godoc
// @Summary Создание или обновление зоны
// @Description Участники зоны: {"type":"country",...} или {"type":"zone","zone_id":...}
// @Tags Zones
// @Accept json
// @Produce json
// @Param id path string true "Id зоны"
// @Param request body domain.Zone true "Зона"
// @Success 200 {object} utils.SuccessResponse{data=domain.Zone}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/zones/{id} [put]
func (h *ZoneHandler) Save(c *fiber.Ctx) error {
	var zone domain.Zone
	if err := c.BodyParser(&zone); err != nil {
		return utils.SendError(c, errors.ErrInvalidZone.WithMessage(err.Error()))
	}
	zone.ID = c.Params("id")

	if err := h.zoneUC.Save(c.UserContext(), &zone); err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, &zone, nil)
}

// Delete godoc
// @Summary Удаление зоны
// @Tags Zones
// @Param id path string true "Id зоны"
// @Success 204
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/zones/{id} [delete]
func (h *ZoneHandler) Delete(c *fiber.Ctx) error {
	if err := h.zoneUC.Delete(c.UserContext(), c.Params("id")); err != nil {
		return utils.SendError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Match godoc
// @Summary Попадание адреса в зону
// @Tags Zones
// @Accept json
// @Produce json
// @Param id path string true "Id зоны"
// @Param request body dto.ZoneMatchRequest true "Адрес"
// @Success 200 {object} utils.SuccessResponse{data=dto.ZoneMatchResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/zones/{id}/match [post]
func (h *ZoneHandler) Match(c *fiber.Ctx) error {
	var req dto.ZoneMatchRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage("Invalid request body"))
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.zoneUC.Match(c.UserContext(), c.Params("id"), req.Address.ToDomain())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, nil)
}
