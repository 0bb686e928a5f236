package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/storefront-service/internal/domain/dto"
	"github.com/guttosm/storefront-service/internal/domain/model"
	"github.com/guttosm/storefront-service/internal/i18n"
	"github.com/guttosm/storefront-service/internal/middleware"
	"github.com/guttosm/storefront-service/internal/service"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CatalogHandler provides HTTP handlers for products and categories.
type CatalogHandler struct {
	catalog service.CatalogService
	sitemap service.SitemapService
}

// NewCatalogHandler creates a new CatalogHandler instance. The sitemap, when
// given, is invalidated after every catalog change.
func NewCatalogHandler(catalog service.CatalogService, sitemap service.SitemapService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, sitemap: sitemap}
}

// ListProducts handles GET /api/products requests.
//
// @Summary      List products
// @Description  Lists active products, optionally filtered by category slug and a text search on name and description.
// @Tags         Catalog
// @Produce      json
// @Param        category query string false "Category slug"
// @Param        q query string false "Search text"
// @Param        limit query int false "Page size (max 100)"
// @Param        skip query int false "Number of products to skip"
// @Success      200 {object} dto.SuccessResponse{data=dto.PageResponse} "Products"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/products [get]
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	h.listProducts(c, true)
}

// ListAllProducts handles GET /api/admin/products requests.
//
// @Summary      List all products
// @Description  Lists products including inactive ones.
// @Tags         Admin
// @Produce      json
// @Param        Authorization header string true "Bearer token"
// @Param        category query string false "Category slug"
// @Param        q query string false "Search text"
// @Param        limit query int false "Page size (max 100)"
// @Param        skip query int false "Number of products to skip"
// @Success      200 {object} dto.SuccessResponse{data=dto.PageResponse} "Products"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      403 {object} dto.ErrorResponse "Forbidden - insufficient permissions"
// @Security     BearerAuth
// @Router       /api/admin/products [get]
func (h *CatalogHandler) ListAllProducts(c *gin.Context) {
	h.listProducts(c, false)
}

func (h *CatalogHandler) listProducts(c *gin.Context, onlyActive bool) {
	builder := NewResponseBuilder(c)

	filter := model.ProductFilter{
		Category:   c.Query("category"),
		Search:     c.Query("q"),
		OnlyActive: onlyActive,
		Limit:      queryInt(c, "limit", 0),
		Skip:       queryInt(c, "skip", 0),
	}

	products, total, err := h.catalog.ListProducts(c.Request.Context(), filter)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}
	if products == nil {
		products = []*model.Product{}
	}

	builder.SuccessOK(dto.PageResponse{
		Items: products,
		Total: total,
		Limit: filter.Limit,
		Skip:  filter.Skip,
	})
}

// GetProduct handles GET /api/products/:idOrSlug requests.
//
// @Summary      Get product
// @Description  Returns an active product by ID or slug.
// @Tags         Catalog
// @Produce      json
// @Param        idOrSlug path string true "Product ID or slug"
// @Success      200 {object} dto.SuccessResponse{data=model.Product} "Product"
// @Failure      404 {object} dto.ErrorResponse "Product not found"
// @Router       /api/products/{idOrSlug} [get]
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	builder := NewResponseBuilder(c)

	product, err := h.catalog.GetProduct(c.Request.Context(), c.Param("idOrSlug"))
	if err != nil {
		h.catalogError(builder, err)
		return
	}
	builder.SuccessOK(product)
}

// CreateProduct handles POST /api/products requests.
//
// @Summary      Create product
// @Description  Adds a product to the catalog. The slug is derived from the name when omitted.
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        Authorization header string true "Bearer token"
// @Param        request body dto.ProductRequest true "Product"
// @Success      201 {object} dto.SuccessResponse{data=model.Product} "Created product"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid JWT token"
// @Failure      403 {object} dto.ErrorResponse "Forbidden - insufficient permissions"
// @Failure      409 {object} dto.ErrorResponse "Slug already in use"
// @Security     BearerAuth
// @Router       /api/products [post]
func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.ValidationError(err)
		return
	}

	product := req.ToModel()
	if err := h.catalog.CreateProduct(c.Request.Context(), product); err != nil {
		h.catalogError(builder, err)
		return
	}

	h.invalidateSitemap()
	middleware.Audit(c, "catalog.product_created", "Product created", map[string]interface{}{
		"product_id": product.ID.Hex(),
		"slug":       product.Slug,
		"stock":      product.Stock,
	})
	builder.SuccessCreated(product)
}

// UpdateProduct handles PUT /api/products/:id requests.
//
// @Summary      Replace product
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        Authorization header string true "Bearer token"
// @Param        id path string true "Product ID"
// @Param        request body dto.ProductRequest true "Product"
// @Success      200 {object} dto.SuccessResponse{data=model.Product} "Updated product"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      404 {object} dto.ErrorResponse "Product not found"
// @Failure      409 {object} dto.ErrorResponse "Slug already in use"
// @Security     BearerAuth
// @Router       /api/products/{id} [put]
func (h *CatalogHandler) UpdateProduct(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		builder.Error(http.StatusNotFound, i18n.ErrKeyProductNotFound, nil)
		return
	}

	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.ValidationError(err)
		return
	}

	product := req.ToModel()
	product.ID = id
	if err := h.catalog.UpdateProduct(c.Request.Context(), product); err != nil {
		h.catalogError(builder, err)
		return
	}

	h.invalidateSitemap()
	middleware.Audit(c, "catalog.product_updated", "Product updated", map[string]interface{}{
		"product_id": id.Hex(),
		"price":      product.Price,
		"stock":      product.Stock,
		"active":     product.Active,
	})
	builder.SuccessOK(product)
}

// DeleteProduct handles DELETE /api/products/:id requests.
//
// @Summary      Delete product
// @Tags         Admin
// @Produce      json
// @Param        Authorization header string true "Bearer token"
// @Param        id path string true "Product ID"
// @Success      200 {object} dto.SuccessResponse "Deleted"
// @Failure      404 {object} dto.ErrorResponse "Product not found"
// @Security     BearerAuth
// @Router       /api/products/{id} [delete]
func (h *CatalogHandler) DeleteProduct(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id := c.Param("id")
	if err := h.catalog.DeleteProduct(c.Request.Context(), id); err != nil {
		h.catalogError(builder, err)
		return
	}

	h.invalidateSitemap()
	middleware.Audit(c, "catalog.product_deleted", "Product deleted", map[string]interface{}{"product_id": id})
	builder.SuccessOK(gin.H{"id": id, "deleted": true})
}

// ListCategories handles GET /api/categories requests.
//
// @Summary      List categories
// @Tags         Catalog
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=[]model.Category} "Categories"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/categories [get]
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	builder := NewResponseBuilder(c)

	categories, err := h.catalog.ListCategories(c.Request.Context())
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}
	if categories == nil {
		categories = []*model.Category{}
	}
	builder.SuccessOK(categories)
}

// CreateCategory handles POST /api/categories requests.
//
// @Summary      Create category
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        Authorization header string true "Bearer token"
// @Param        request body dto.CategoryRequest true "Category"
// @Success      201 {object} dto.SuccessResponse{data=model.Category} "Created category"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      409 {object} dto.ErrorResponse "Slug already in use"
// @Security     BearerAuth
// @Router       /api/categories [post]
func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.ValidationError(err)
		return
	}

	category := req.ToModel()
	if err := h.catalog.CreateCategory(c.Request.Context(), category); err != nil {
		h.catalogError(builder, err)
		return
	}

	h.invalidateSitemap()
	middleware.Audit(c, "catalog.category_created", "Category created", map[string]interface{}{
		"category_id": category.ID.Hex(),
		"slug":        category.Slug,
	})
	builder.SuccessCreated(category)
}

// DeleteCategory handles DELETE /api/categories/:id requests.
//
// @Summary      Delete category
// @Tags         Admin
// @Produce      json
// @Param        Authorization header string true "Bearer token"
// @Param        id path string true "Category ID"
// @Success      200 {object} dto.SuccessResponse "Deleted"
// @Failure      404 {object} dto.ErrorResponse "Category not found"
// @Security     BearerAuth
// @Router       /api/categories/{id} [delete]
func (h *CatalogHandler) DeleteCategory(c *gin.Context) {
	builder := NewResponseBuilder(c)

	id := c.Param("id")
	if err := h.catalog.DeleteCategory(c.Request.Context(), id); err != nil {
		h.catalogError(builder, err)
		return
	}

	h.invalidateSitemap()
	middleware.Audit(c, "catalog.category_deleted", "Category deleted", map[string]interface{}{"category_id": id})
	builder.SuccessOK(gin.H{"id": id, "deleted": true})
}

func (h *CatalogHandler) catalogError(builder *ResponseBuilder, err error) {
	switch {
	case errors.Is(err, service.ErrProductNotFound):
		builder.Error(http.StatusNotFound, i18n.ErrKeyProductNotFound, err)
	case errors.Is(err, service.ErrCategoryNotFound):
		builder.Error(http.StatusNotFound, i18n.ErrKeyCategoryNotFound, err)
	case errors.Is(err, service.ErrSlugTaken):
		builder.Error(http.StatusConflict, i18n.ErrKeySlugTaken, err)
	case errors.Is(err, service.ErrInvalidProduct):
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidProduct, err)
	default:
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
	}
}

func (h *CatalogHandler) invalidateSitemap() {
	if h.sitemap != nil {
		h.sitemap.Invalidate()
	}
}

// queryInt parses a non-negative integer query parameter.
func queryInt(c *gin.Context, key string, def int) int {
	raw := c.Query(key)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return def
	}
	return v
}
