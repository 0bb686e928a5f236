package service

import (
	"context"
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/guttosm/storefront-service/internal/domain/model"
	"github.com/guttosm/storefront-service/internal/repository"
	"github.com/guttosm/storefront-service/internal/service/cache"
)

// maxSitemapURLs is the per-file limit of the sitemap protocol.
const maxSitemapURLs = 50000

const sitemapKey = "sitemap.xml"

// SitemapService renders the SEO documents of the storefront.
type SitemapService interface {
	Sitemap(ctx context.Context) ([]byte, error)
	Robots() string
	Invalidate()
	Stop()
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// SitemapServiceImpl implements SitemapService.
type SitemapServiceImpl struct {
	baseURL    string
	products   repository.ProductRepositoryInterface
	categories repository.CategoryRepositoryInterface
	cache      *cache.TTLCache[string, []byte]
}

// NewSitemapService creates a sitemap service for the site at baseURL.
func NewSitemapService(
	baseURL string,
	products repository.ProductRepositoryInterface,
	categories repository.CategoryRepositoryInterface,
	ttl time.Duration,
) SitemapService {
	return &SitemapServiceImpl{
		baseURL:    strings.TrimRight(baseURL, "/"),
		products:   products,
		categories: categories,
		cache:      cache.NewTTLCache[string, []byte]("sitemap", 1, ttl),
	}
}

// Sitemap returns the XML sitemap listing the home page, categories and
// active products.
func (s *SitemapServiceImpl) Sitemap(ctx context.Context) ([]byte, error) {
	if s.products == nil || s.categories == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.cache.GetOrLoad(sitemapKey, func() ([]byte, error) {
		return s.build(ctx)
	})
}

func (s *SitemapServiceImpl) build(ctx context.Context) ([]byte, error) {
	set := urlSet{XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	set.URLs = append(set.URLs,
		sitemapURL{Loc: s.baseURL + "/", ChangeFreq: "daily", Priority: "1.0"},
		sitemapURL{Loc: s.baseURL + "/products", ChangeFreq: "daily", Priority: "0.9"},
	)

	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	for _, c := range categories {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        s.baseURL + "/categories/" + c.Slug,
			LastMod:    lastMod(c.UpdatedAt),
			ChangeFreq: "weekly",
			Priority:   "0.7",
		})
	}

	remaining := maxSitemapURLs - len(set.URLs)
	if remaining > 0 {
		products, err := s.products.List(ctx, model.ProductFilter{OnlyActive: true, Limit: remaining})
		if err != nil {
			return nil, fmt.Errorf("list products: %w", err)
		}
		for _, p := range products {
			set.URLs = append(set.URLs, sitemapURL{
				Loc:        s.baseURL + "/products/" + p.Slug,
				LastMod:    lastMod(p.UpdatedAt),
				ChangeFreq: "weekly",
				Priority:   "0.8",
			})
		}
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), body...), nil
}

// Robots returns robots.txt pointing crawlers at the sitemap.
func (s *SitemapServiceImpl) Robots() string {
	var b strings.Builder
	b.WriteString("User-agent: *\n")
	b.WriteString("Allow: /\n")
	b.WriteString("Disallow: /api/\n")
	b.WriteString("Disallow: /admin\n")
	b.WriteString("Disallow: /cart\n")
	b.WriteString("Disallow: /checkout\n")
	b.WriteString("\nSitemap: " + s.baseURL + "/sitemap.xml\n")
	return b.String()
}

// Invalidate drops the cached sitemap so the next request rebuilds it.
func (s *SitemapServiceImpl) Invalidate() {
	s.cache.Invalidate(sitemapKey)
}

// Stop releases the sitemap cache.
func (s *SitemapServiceImpl) Stop() {
	s.cache.Stop()
}

func lastMod(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format("2006-01-02")
}
