package v1

import (
	"net/http"

	"github.com/flexprice/prorata/internal/logger"
	"github.com/flexprice/prorata/internal/service"
	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	service service.CatalogService
	log     *logger.Logger
}

func NewCatalogHandler(service service.CatalogService, log *logger.Logger) *CatalogHandler {
	return &CatalogHandler{service: service, log: log}
}

// @Summary List products
// @Description List the products that can be quoted
// @Tags Catalog
// @Produce json
// @Success 200 {object} dto.ListProductsResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /catalog/products [get]
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	resp, err := h.service.ListProducts(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Get a product
// @Description Get a product by id
// @Tags Catalog
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} dto.ProductResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /catalog/products/{id} [get]
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	resp, err := h.service.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary List add-ons
// @Description List the add-ons that can be attached to a quote
// @Tags Catalog
// @Produce json
// @Success 200 {object} dto.ListAddOnsResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /catalog/addons [get]
func (h *CatalogHandler) ListAddOns(c *gin.Context) {
	resp, err := h.service.ListAddOns(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
