package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/guttosm/storefront-service/internal/domain/dto"
	"github.com/guttosm/storefront-service/internal/domain/model"
	"github.com/guttosm/storefront-service/internal/mocks"
	"github.com/guttosm/storefront-service/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type stubSitemap struct {
	body        []byte
	err         error
	invalidated int
}

func (s *stubSitemap) Sitemap(context.Context) ([]byte, error) { return s.body, s.err }
func (s *stubSitemap) Robots() string                          { return "User-agent: *\nAllow: /\n" }
func (s *stubSitemap) Invalidate()                             { s.invalidated++ }
func (s *stubSitemap) Stop()                                   {}

func TestCatalogHandler_ListProducts(t *testing.T) {
	mug := &model.Product{ID: primitive.NewObjectID(), Name: "Ceramic Mug", Slug: "ceramic-mug", Price: 19.9, Stock: 12, Active: true}

	tests := []struct {
		name           string
		path           string
		setupMocks     func(*mocks.MockCatalogService)
		expectedStatus int
		validate       func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name: "active products filtered by category",
			path: "/products?category=kitchen&q=mug&limit=20&skip=0",
			setupMocks: func(m *mocks.MockCatalogService) {
				m.On("ListProducts", mock.Anything, model.ProductFilter{
					Category: "kitchen", Search: "mug", OnlyActive: true, Limit: 20,
				}).Return([]*model.Product{mug}, int64(1), nil)
			},
			expectedStatus: http.StatusOK,
			validate: func(t *testing.T, w *httptest.ResponseRecorder) {
				var envelope struct {
					Data struct {
						Items []model.Product `json:"items"`
						Total int64           `json:"total"`
						Limit int             `json:"limit"`
					} `json:"data"`
				}
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
				assert.Equal(t, int64(1), envelope.Data.Total)
				assert.Equal(t, 20, envelope.Data.Limit)
				require.Len(t, envelope.Data.Items, 1)
				assert.Equal(t, "ceramic-mug", envelope.Data.Items[0].Slug)
			},
		},
		{
			name: "negative paging falls back to defaults",
			path: "/products?limit=-3&skip=abc",
			setupMocks: func(m *mocks.MockCatalogService) {
				m.On("ListProducts", mock.Anything, model.ProductFilter{OnlyActive: true}).Return(nil, int64(0), nil)
			},
			expectedStatus: http.StatusOK,
			validate: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Contains(t, w.Body.String(), `"items":[]`)
			},
		},
		{
			name: "repository failure",
			path: "/products",
			setupMocks: func(m *mocks.MockCatalogService) {
				m.On("ListProducts", mock.Anything, mock.Anything).Return(nil, int64(0), errors.New("mongo down"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog := mocks.NewMockCatalogService(t)
			tt.setupMocks(catalog)

			router := newHandlerRouter(guest)
			router.GET("/products", NewCatalogHandler(catalog, nil).ListProducts)

			w := serve(router, http.MethodGet, tt.path, nil)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.validate != nil {
				tt.validate(t, w)
			}
		})
	}
}

func TestCatalogHandler_ListAllProductsIncludesInactive(t *testing.T) {
	catalog := mocks.NewMockCatalogService(t)
	catalog.On("ListProducts", mock.Anything, model.ProductFilter{OnlyActive: false}).Return([]*model.Product{}, int64(0), nil)

	router := newHandlerRouter(guest)
	router.GET("/admin/products", NewCatalogHandler(catalog, nil).ListAllProducts)

	w := serve(router, http.MethodGet, "/admin/products", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCatalogHandler_GetProduct(t *testing.T) {
	catalog := mocks.NewMockCatalogService(t)
	catalog.On("GetProduct", mock.Anything, "ceramic-mug").Return(&model.Product{Name: "Ceramic Mug", Active: true}, nil)
	catalog.On("GetProduct", mock.Anything, "missing").Return(nil, service.ErrProductNotFound)

	router := newHandlerRouter(guest)
	router.GET("/products/:idOrSlug", NewCatalogHandler(catalog, nil).GetProduct)

	w := serve(router, http.MethodGet, "/products/ceramic-mug", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(router, http.MethodGet, "/products/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCatalogHandler_ManageProducts(t *testing.T) {
	id := primitive.NewObjectID()
	inactive := false

	tests := []struct {
		name             string
		method           string
		path             string
		body             interface{}
		setupMocks       func(*mocks.MockCatalogService)
		expectedStatus   int
		expectInvalidate bool
	}{
		{
			name:   "create product",
			method: http.MethodPost,
			path:   "/products",
			body:   dto.ProductRequest{Name: "  Ceramic Mug ", Price: 19.9, Stock: 12},
			setupMocks: func(m *mocks.MockCatalogService) {
				m.On("CreateProduct", mock.Anything, mock.MatchedBy(func(p *model.Product) bool {
					return p.Name == "Ceramic Mug" && p.Active && p.Stock == 12
				})).Return(nil)
			},
			expectedStatus:   http.StatusCreated,
			expectInvalidate: true,
		},
		{
			name:           "create product with negative stock",
			method:         http.MethodPost,
			path:           "/products",
			body:           map[string]interface{}{"name": "Mug", "price": 1, "stock": -1},
			setupMocks:     func(m *mocks.MockCatalogService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "create product with taken slug",
			method: http.MethodPost,
			path:   "/products",
			body:   dto.ProductRequest{Name: "Mug", Slug: "mug"},
			setupMocks: func(m *mocks.MockCatalogService) {
				m.On("CreateProduct", mock.Anything, mock.Anything).Return(service.ErrSlugTaken)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:   "deactivate product",
			method: http.MethodPut,
			path:   "/products/" + id.Hex(),
			body:   dto.ProductRequest{Name: "Ceramic Mug", Price: 19.9, Stock: 0, Active: &inactive},
			setupMocks: func(m *mocks.MockCatalogService) {
				m.On("UpdateProduct", mock.Anything, mock.MatchedBy(func(p *model.Product) bool {
					return p.ID == id && !p.Active
				})).Return(nil)
			},
			expectedStatus:   http.StatusOK,
			expectInvalidate: true,
		},
		{
			name:           "update with malformed id",
			method:         http.MethodPut,
			path:           "/products/not-an-id",
			body:           dto.ProductRequest{Name: "Mug"},
			setupMocks:     func(m *mocks.MockCatalogService) {},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:   "delete product",
			method: http.MethodDelete,
			path:   "/products/" + id.Hex(),
			setupMocks: func(m *mocks.MockCatalogService) {
				m.On("DeleteProduct", mock.Anything, id.Hex()).Return(nil)
			},
			expectedStatus:   http.StatusOK,
			expectInvalidate: true,
		},
		{
			name:   "delete unknown product",
			method: http.MethodDelete,
			path:   "/products/" + id.Hex(),
			setupMocks: func(m *mocks.MockCatalogService) {
				m.On("DeleteProduct", mock.Anything, id.Hex()).Return(service.ErrProductNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog := mocks.NewMockCatalogService(t)
			tt.setupMocks(catalog)
			sitemap := &stubSitemap{}

			handler := NewCatalogHandler(catalog, sitemap)
			router := newHandlerRouter(model.CartOwner{UserID: "admin-1"})
			router.POST("/products", handler.CreateProduct)
			router.PUT("/products/:id", handler.UpdateProduct)
			router.DELETE("/products/:id", handler.DeleteProduct)

			w := serve(router, tt.method, tt.path, tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectInvalidate {
				assert.Equal(t, 1, sitemap.invalidated)
			} else {
				assert.Zero(t, sitemap.invalidated)
			}
		})
	}
}

func TestCatalogHandler_Categories(t *testing.T) {
	catalog := mocks.NewMockCatalogService(t)
	catalog.On("ListCategories", mock.Anything).Return(nil, nil)
	catalog.On("CreateCategory", mock.Anything, mock.MatchedBy(func(c *model.Category) bool {
		return c.Name == "Kitchen"
	})).Return(nil)
	catalog.On("DeleteCategory", mock.Anything, "unknown").Return(service.ErrCategoryNotFound)

	handler := NewCatalogHandler(catalog, nil)
	router := newHandlerRouter(model.CartOwner{UserID: "admin-1"})
	router.GET("/categories", handler.ListCategories)
	router.POST("/categories", handler.CreateCategory)
	router.DELETE("/categories/:id", handler.DeleteCategory)

	w := serve(router, http.MethodGet, "/categories", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"data":[]`)

	w = serve(router, http.MethodPost, "/categories", dto.CategoryRequest{Name: "Kitchen"})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = serve(router, http.MethodPost, "/categories", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = serve(router, http.MethodDelete, "/categories/unknown", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
