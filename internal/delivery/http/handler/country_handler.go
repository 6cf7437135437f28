package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/address-microservice/internal/pkg/utils"
	"github.com/address-microservice/internal/usecase"
)

type CountryHandler struct {
	countryUC *usecase.CountryUseCase
	logger    *zap.Logger
}

func NewCountryHandler(countryUC *usecase.CountryUseCase, logger *zap.Logger) *CountryHandler {
	return &CountryHandler{
		countryUC: countryUC,
		logger:    logger,
	}
}

// List godoc
// @Summary Список стран
// @Description Коды и названия стран; без перевода для локали используются английские названия
// @Tags Countries
// @Produce json
// @Param locale query string false "Локаль названий"
// @Success 200 {object} utils.SuccessResponse{data=dto.CountryListResponse}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/countries [get]
func (h *CountryHandler) List(c *fiber.Ctx) error {
	locale := c.Query("locale")
	result, err := h.countryUC.List(c.UserContext(), locale)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, &utils.Meta{Total: result.Total, Locale: locale})
}
