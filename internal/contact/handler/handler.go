package handler

import (
	"errors"
	"net/http"

	"github.com/fekuna/omnipos-storefront/internal/contact"
	"github.com/fekuna/omnipos-storefront/internal/contact/dto"
	"github.com/fekuna/omnipos-storefront/pkg/httpx"
	"github.com/fekuna/omnipos-storefront/pkg/i18n"
	"github.com/fekuna/omnipos-storefront/pkg/logger"
	"github.com/go-chi/chi/v5"
)

const maxBodyBytes = 16 << 10

type Handler struct {
	uc         contact.UseCase
	translator *i18n.Translator
	logger     logger.ZapLogger
}

func NewContactHandler(uc contact.UseCase, tr *i18n.Translator, log logger.ZapLogger) *Handler {
	return &Handler{
		uc:         uc,
		translator: tr,
		logger:     log,
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/v1/contact", h.submit)
}

func (h *Handler) submit(w http.ResponseWriter, r *http.Request) {
	var input dto.Input
	if err := httpx.Decode(w, r, maxBodyBytes, &input); err != nil {
		httpx.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	loc := h.translator.Localizer(r.URL.Query().Get("lang"), r.Header.Get("Accept-Language"))

	receipt, err := h.uc.Submit(r.Context(), &input, loc)
	if err != nil {
		var verr *contact.ValidationError
		switch {
		case errors.As(err, &verr):
			httpx.Respond(w, http.StatusUnprocessableEntity, httpx.ErrorResponse{Error: "validation failed", Fields: verr.Fields})
		case errors.Is(err, contact.ErrDeliveryFailed) && receipt != nil:
			httpx.Respond(w, http.StatusBadGateway, receipt)
		default:
			httpx.Internal(w, h.logger, err)
		}
		return
	}

	httpx.Respond(w, http.StatusOK, receipt)
}
