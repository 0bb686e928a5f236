package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/storefront-service/internal/domain/dto"
	"github.com/guttosm/storefront-service/internal/i18n"
	"github.com/guttosm/storefront-service/internal/service"
)

// AdminHandler provides the store overview and the activity journal for
// administrators.
type AdminHandler struct {
	dashboard service.DashboardService
	activity  service.ActivityService
}

// NewAdminHandler creates a new AdminHandler instance. Either service may be nil.
func NewAdminHandler(dashboard service.DashboardService, activity service.ActivityService) *AdminHandler {
	return &AdminHandler{dashboard: dashboard, activity: activity}
}

// Dashboard handles GET /api/admin/dashboard requests.
//
// @Summary      Dashboard statistics
// @Description  Counts of products, categories, users and orders by status, revenue of non-cancelled orders and products running low on stock.
// @Tags         Admin
// @Produce      json
// @Param        Authorization header string true "Bearer token"
// @Success      200 {object} dto.SuccessResponse{data=model.DashboardStats} "Statistics"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      403 {object} dto.ErrorResponse "Forbidden - insufficient permissions"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/admin/dashboard [get]
func (h *AdminHandler) Dashboard(c *gin.Context) {
	builder := NewResponseBuilder(c)

	stats, err := h.dashboard.Stats(c.Request.Context())
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}
	builder.SuccessOK(stats)
}

// Activity handles GET /api/admin/activity requests.
//
// @Summary      Activity journal
// @Description  Served requests and audited actions, newest first.
// @Tags         Admin
// @Produce      json
// @Param        Authorization header string true "Bearer token"
// @Param        kind query string false "request or audit"
// @Param        action query string false "Audited action, e.g. order.placed"
// @Param        user_id query string false "Account ID"
// @Param        request_id query string false "Request ID"
// @Param        since query string false "RFC 3339 lower bound (inclusive)"
// @Param        until query string false "RFC 3339 upper bound (exclusive)"
// @Param        limit query int false "Page size (max 200)"
// @Param        skip query int false "Number of entries to skip"
// @Success      200 {object} dto.SuccessResponse{data=dto.PageResponse} "Entries"
// @Failure      400 {object} dto.ErrorResponse "Invalid query"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      403 {object} dto.ErrorResponse "Forbidden - insufficient permissions"
// @Failure      503 {object} dto.ErrorResponse "Journal unavailable"
// @Security     BearerAuth
// @Router       /api/admin/activity [get]
func (h *AdminHandler) Activity(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var query dto.ActivityQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		builder.ValidationError(err)
		return
	}
	filter := query.ToFilter()
	if filter.Since != nil && filter.Until != nil && !filter.Until.After(*filter.Since) {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, nil)
		return
	}

	page, err := h.activity.Activity(c.Request.Context(), filter)
	if err != nil {
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyServiceUnavailable, err)
		return
	}
	builder.SuccessOK(dto.PageResponse{
		Items: page.Entries,
		Total: page.Total,
		Limit: page.Filter.Limit,
		Skip:  page.Filter.Skip,
	})
}
