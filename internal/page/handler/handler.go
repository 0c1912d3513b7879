package handler

import (
	"errors"
	"net/http"

	"github.com/fekuna/omnipos-storefront/internal/apiclient"
	"github.com/fekuna/omnipos-storefront/internal/page"
	"github.com/fekuna/omnipos-storefront/pkg/httpx"
	"github.com/fekuna/omnipos-storefront/pkg/i18n"
	"github.com/fekuna/omnipos-storefront/pkg/logger"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	uc         page.UseCase
	translator *i18n.Translator
	logger     logger.ZapLogger
}

func NewPageHandler(uc page.UseCase, tr *i18n.Translator, log logger.ZapLogger) *Handler {
	return &Handler{
		uc:         uc,
		translator: tr,
		logger:     log,
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/v1/pages", func(r chi.Router) {
		r.Get("/home", h.home)
		r.Get("/products", h.products)
		r.Get("/products/{slug}", h.productDetail)
		r.Get("/services", h.services)
		r.Get("/contact", h.contact)
	})
}

func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	httpx.Respond(w, http.StatusOK, h.uc.Home(r.Context(), h.localizer(r)))
}

// products reads the category from the query string like the address bar
// does. subcategory and q carry the page's local state.
func (h *Handler) products(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := page.ProductsRequest{
		Values:      q,
		Query:       q.Get("q"),
		Subcategory: q.Get("subcategory"),
	}
	httpx.Respond(w, http.StatusOK, h.uc.Products(r.Context(), req, h.localizer(r)))
}

func (h *Handler) productDetail(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	view, err := h.uc.ProductDetail(r.Context(), slug, h.localizer(r))
	if err != nil {
		if errors.Is(err, apiclient.ErrRequestFailed) {
			h.logger.Error("product lookup failed", zap.String("slug", slug), zap.Error(err))
			httpx.RespondError(w, http.StatusBadGateway, "upstream request failed")
			return
		}
		httpx.Internal(w, h.logger, err)
		return
	}

	status := http.StatusOK
	if view.NotFound != nil {
		status = http.StatusNotFound
	}
	httpx.Respond(w, status, view)
}

func (h *Handler) services(w http.ResponseWriter, r *http.Request) {
	httpx.Respond(w, http.StatusOK, h.uc.Services(r.Context(), h.localizer(r)))
}

func (h *Handler) contact(w http.ResponseWriter, r *http.Request) {
	httpx.Respond(w, http.StatusOK, h.uc.Contact(r.Context(), h.localizer(r)))
}

// localizer prefers an explicit ?lang= over Accept-Language.
func (h *Handler) localizer(r *http.Request) *i18n.Localizer {
	return h.translator.Localizer(r.URL.Query().Get("lang"), r.Header.Get("Accept-Language"))
}
