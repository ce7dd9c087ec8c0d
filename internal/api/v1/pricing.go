package v1

import (
	"net/http"

	"github.com/flexprice/prorata/internal/api/dto"
	ierr "github.com/flexprice/prorata/internal/errors"
	"github.com/flexprice/prorata/internal/logger"
	"github.com/flexprice/prorata/internal/service"
	"github.com/gin-gonic/gin"
)

type PricingHandler struct {
	service service.PricingService
	log     *logger.Logger
}

func NewPricingHandler(service service.PricingService, log *logger.Logger) *PricingHandler {
	return &PricingHandler{service: service, log: log}
}

// @Summary Build VAT price lines
// @Description Price a tax-exclusive amount under the A, Nos, Voice and Data service classes
// @Tags Pricing
// @Accept json
// @Produce json
// @Param request body dto.PriceLinesRequest true "Price lines request"
// @Success 200 {object} dto.PriceLinesResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /pricing/lines [post]
func (h *PricingHandler) BuildPriceLines(c *gin.Context) {
	var req dto.PriceLinesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.BuildPriceLines(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
