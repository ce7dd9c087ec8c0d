package v1

import (
	"net/http"

	"github.com/flexprice/prorata/internal/api/dto"
	ierr "github.com/flexprice/prorata/internal/errors"
	"github.com/flexprice/prorata/internal/logger"
	"github.com/flexprice/prorata/internal/service"
	"github.com/gin-gonic/gin"
)

type ProrationHandler struct {
	service service.ProrationService
	log     *logger.Logger
}

func NewProrationHandler(service service.ProrationService, log *logger.Logger) *ProrationHandler {
	return &ProrationHandler{
		service: service,
		log:     log,
	}
}

// @Summary Quote a first invoice
// @Description Compute the first invoice for a subscription activated mid-cycle from its monthly price
// @Tags Proration
// @Accept json
// @Produce json
// @Param Accept-Language header string false "Language of the explanation (en or ar)"
// @Param request body dto.QuoteRequest true "Quote request"
// @Success 200 {object} dto.QuoteResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /proration/quote [post]
func (h *ProrationHandler) Quote(c *gin.Context) {
	var req dto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.Quote(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Quote from a first invoice
// @Description Derive the monthly price from a known first invoice amount
// @Tags Proration
// @Accept json
// @Produce json
// @Param Accept-Language header string false "Language of the explanation (en or ar)"
// @Param request body dto.QuoteFromInvoiceRequest true "Invoice quote request"
// @Success 200 {object} dto.QuoteResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /proration/quote/from-invoice [post]
func (h *ProrationHandler) QuoteFromInvoice(c *gin.Context) {
	var req dto.QuoteFromInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.QuoteFromInvoice(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Quote in batch
// @Description Compute up to 100 independent quotes. Items are returned in request order, each with a quote or an error.
// @Tags Proration
// @Accept json
// @Produce json
// @Param request body dto.BatchQuoteRequest true "Batch quote request"
// @Success 200 {object} dto.BatchQuoteResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /proration/quote/batch [post]
func (h *ProrationHandler) BatchQuote(c *gin.Context) {
	var req dto.BatchQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.BatchQuote(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Resolve a billing period
// @Description Resolve the billing cycle enclosing an activation date without pricing it
// @Tags Proration
// @Accept json
// @Produce json
// @Param request body dto.ResolvePeriodRequest true "Period request"
// @Success 200 {object} dto.ResolvePeriodResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /proration/period [post]
func (h *ProrationHandler) ResolvePeriod(c *gin.Context) {
	var req dto.ResolvePeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.ResolvePeriod(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
