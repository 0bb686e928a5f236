package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/storefront-service/internal/i18n"
	"github.com/guttosm/storefront-service/internal/service"
)

// SEOHandler serves the crawler documents of the storefront.
type SEOHandler struct {
	sitemap service.SitemapService
}

// NewSEOHandler creates a new SEOHandler instance.
func NewSEOHandler(sitemap service.SitemapService) *SEOHandler {
	return &SEOHandler{sitemap: sitemap}
}

// Register registers the SEO endpoints at the root of the router.
func (h *SEOHandler) Register(router *gin.Engine) {
	router.GET("/sitemap.xml", h.Sitemap)
	router.GET("/robots.txt", h.Robots)
}

// Sitemap handles GET /sitemap.xml requests.
//
// @Summary     Sitemap
// @Description XML sitemap of the home page, categories and active products.
// @Tags        SEO
// @Produce     xml
// @Success     200 {string} string "Sitemap"
// @Failure     500 {object} dto.ErrorResponse "Internal server error"
// @Router      /sitemap.xml [get]
func (h *SEOHandler) Sitemap(c *gin.Context) {
	body, err := h.sitemap.Sitemap(c.Request.Context())
	if err != nil {
		NewResponseBuilder(c).Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}
	c.Header("Cache-Control", "public, max-age=3600")
	c.Data(http.StatusOK, "application/xml; charset=utf-8", body)
}

// Robots handles GET /robots.txt requests.
//
// @Summary     robots.txt
// @Tags        SEO
// @Produce     plain
// @Success     200 {string} string "robots.txt"
// @Router      /robots.txt [get]
func (h *SEOHandler) Robots(c *gin.Context) {
	c.Header("Cache-Control", "public, max-age=86400")
	c.String(http.StatusOK, h.sitemap.Robots())
}
