package httpx

import (
	"encoding/json"
	"net/http"

	"github.com/fekuna/omnipos-storefront/pkg/logger"
	"go.uber.org/zap"
)

type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

func Respond(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func RespondError(w http.ResponseWriter, status int, msg string) {
	Respond(w, status, ErrorResponse{Error: msg})
}

// Decode reads a JSON body of at most maxBytes into v.
func Decode(w http.ResponseWriter, r *http.Request, maxBytes int64, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// Internal logs err and writes a generic 500.
func Internal(w http.ResponseWriter, log logger.ZapLogger, err error) {
	log.Error("request failed", zap.Error(err))
	RespondError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}
