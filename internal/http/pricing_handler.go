package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/storefront-service/internal/cart"
	"github.com/guttosm/storefront-service/internal/domain/dto"
	"github.com/guttosm/storefront-service/internal/i18n"
	"github.com/guttosm/storefront-service/internal/middleware"
	"github.com/guttosm/storefront-service/internal/service"
)

// PricingHandler provides HTTP handlers for the tax and shipping settings.
type PricingHandler struct {
	pricing service.PricingSettingsService
}

// NewPricingHandler creates a new PricingHandler instance.
func NewPricingHandler(pricing service.PricingSettingsService) *PricingHandler {
	return &PricingHandler{pricing: pricing}
}

// GetPricing handles GET /api/pricing requests.
//
// @Summary      Get pricing
// @Description  Returns the tax rate, flat shipping cost and free-shipping threshold currently applied to carts.
// @Tags         Pricing
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=cart.Pricing} "Current pricing"
// @Router       /api/pricing [get]
func (h *PricingHandler) GetPricing(c *gin.Context) {
	NewResponseBuilder(c).SuccessOK(h.pricing.Current(c.Request.Context()))
}

// UpdatePricing handles PUT /api/admin/pricing requests.
//
// @Summary      Update pricing
// @Description  Publishes a new version of the pricing settings. Carts pick it up within the pricing cache TTL.
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        Authorization header string true "Bearer token"
// @Param        request body dto.UpdatePricingRequest true "Pricing settings"
// @Success      200 {object} dto.SuccessResponse "Published pricing settings"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      403 {object} dto.ErrorResponse "Forbidden - insufficient permissions"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/admin/pricing [put]
func (h *PricingHandler) UpdatePricing(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := bindJSON[dto.UpdatePricingRequest](c)
	if err != nil {
		builder.ValidationError(err)
		return
	}

	settings, err := h.pricing.Create(c.Request.Context(), req.ToPricing(), c.GetString("user_email"))
	if err != nil {
		if errors.Is(err, cart.ErrInvalidTaxRate) || errors.Is(err, cart.ErrInvalidShippingCost) || errors.Is(err, cart.ErrInvalidThreshold) {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidPricing, err)
			return
		}
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	middleware.Audit(c, "pricing.updated", "Pricing settings updated", map[string]interface{}{
		"tax_rate":                settings.TaxRate,
		"flat_shipping_cost":      settings.FlatShippingCost,
		"free_shipping_threshold": settings.FreeShippingThreshold,
		"version":                 settings.Version,
	})
	builder.SuccessOK(settings)
}

// ListPricing handles GET /api/admin/pricing/history requests.
//
// @Summary      List pricing history
// @Description  Returns all pricing setting versions, newest first
// @Tags         Admin
// @Produce      json
// @Param        Authorization header string true "Bearer token"
// @Param        limit query int false "Limit number of results"
// @Success      200 {object} dto.SuccessResponse "Pricing history"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/admin/pricing/history [get]
func (h *PricingHandler) ListPricing(c *gin.Context) {
	builder := NewResponseBuilder(c)

	settings, err := h.pricing.List(c.Request.Context(), queryInt(c, "limit", 0))
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(settings)
}
