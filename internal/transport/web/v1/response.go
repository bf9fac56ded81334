package v1

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/neocapy/friend-reader/internal/domain"
	"github.com/neocapy/friend-reader/internal/transport/web/mw"
)

// MapDomainError решает HTTP-статус для доменной ошибки. Протокол
// отвечает голым статусом без тела, конверта у него нет.
func MapDomainError(err error) int {
	switch {
	case errors.Is(err, domain.ErrBadParams):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnauth):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	default:
		// таймауты/отмены — как 500
		return http.StatusInternalServerError
	}
}

// WriteJSON пишет успешное тело как есть.
func WriteJSON(w http.ResponseWriter, r *http.Request, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Request-ID", mw.RequestIDFromCtx(r.Context()))
	_ = json.NewEncoder(w).Encode(v)
}

// WriteDomainError — голый статус по доменной ошибке.
func WriteDomainError(w http.ResponseWriter, r *http.Request, err error) {
	w.Header().Set("X-Request-ID", mw.RequestIDFromCtx(r.Context()))
	w.WriteHeader(MapDomainError(err))
}
