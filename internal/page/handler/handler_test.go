package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fekuna/omnipos-storefront/internal/apiclient"
	"github.com/fekuna/omnipos-storefront/internal/page"
	"github.com/fekuna/omnipos-storefront/pkg/i18n"
	"github.com/fekuna/omnipos-storefront/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubUseCase records the last request and returns canned views.
type stubUseCase struct {
	lastLang    string
	lastRequest page.ProductsRequest
	lastSlug    string
	detailErr   error
	notFound    bool
}

func (s *stubUseCase) Home(_ context.Context, loc *i18n.Localizer) *page.Home {
	s.lastLang = loc.Lang()
	return &page.Home{Lang: loc.Lang()}
}

func (s *stubUseCase) Products(_ context.Context, req page.ProductsRequest, loc *i18n.Localizer) *page.Products {
	s.lastLang = loc.Lang()
	s.lastRequest = req
	return &page.Products{Lang: loc.Lang(), Count: 3}
}

func (s *stubUseCase) ProductDetail(_ context.Context, slug string, loc *i18n.Localizer) (*page.ProductDetail, error) {
	s.lastSlug = slug
	if s.detailErr != nil {
		return nil, s.detailErr
	}
	view := &page.ProductDetail{Lang: loc.Lang()}
	if s.notFound {
		view.NotFound = &page.NotFound{Title: "missing"}
	}
	return view, nil
}

func (s *stubUseCase) Services(_ context.Context, loc *i18n.Localizer) *page.Services {
	return &page.Services{Lang: loc.Lang()}
}

func (s *stubUseCase) Contact(_ context.Context, loc *i18n.Localizer) *page.Contact {
	return &page.Contact{Lang: loc.Lang()}
}

func newRouter(uc page.UseCase) http.Handler {
	r := chi.NewRouter()
	NewPageHandler(uc, i18n.MustNew("fr"), logger.NewNop()).RegisterRoutes(r)
	return r
}

func do(t *testing.T, h http.Handler, target string, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHome_Language(t *testing.T) {
	uc := &stubUseCase{}
	h := newRouter(uc)

	rec := do(t, h, "/v1/pages/home", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "fr", uc.lastLang)

	do(t, h, "/v1/pages/home", map[string]string{"Accept-Language": "en-GB,en;q=0.9"})
	assert.Equal(t, "en", uc.lastLang)

	do(t, h, "/v1/pages/home?lang=fr", map[string]string{"Accept-Language": "en"})
	assert.Equal(t, "fr", uc.lastLang)
}

func TestProducts_PassesState(t *testing.T) {
	uc := &stubUseCase{}
	rec := do(t, newRouter(uc), "/v1/pages/products?category=computers&subcategory=laptops&q=hp", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "computers", uc.lastRequest.Values.Get("category"))
	assert.Equal(t, "laptops", uc.lastRequest.Subcategory)
	assert.Equal(t, "hp", uc.lastRequest.Query)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.EqualValues(t, 3, body["count"])
}

func TestProductDetail_Status(t *testing.T) {
	tests := []struct {
		name string
		uc   *stubUseCase
		want int
	}{
		{"found", &stubUseCase{}, http.StatusOK},
		{"not found", &stubUseCase{notFound: true}, http.StatusNotFound},
		{"upstream", &stubUseCase{detailErr: &apiclient.Error{Method: "GET", Path: "/products/x/", StatusCode: 500}}, http.StatusBadGateway},
		{"transport", &stubUseCase{detailErr: fmt.Errorf("GET /products/x/: %w: dial tcp", apiclient.ErrRequestFailed)}, http.StatusBadGateway},
		{"other", &stubUseCase{detailErr: errors.New("boom")}, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, newRouter(tt.uc), "/v1/pages/products/hp-pavilion-15", nil)
			assert.Equal(t, tt.want, rec.Code)
			assert.Equal(t, "hp-pavilion-15", tt.uc.lastSlug)
		})
	}
}

func TestStaticPages(t *testing.T) {
	h := newRouter(&stubUseCase{})
	for _, path := range []string{"/v1/pages/services", "/v1/pages/contact"} {
		rec := do(t, h, path+"?lang=en", nil)
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.Contains(t, rec.Body.String(), `"lang":"en"`, path)
	}
}
