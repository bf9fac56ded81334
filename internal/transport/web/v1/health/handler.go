package health

import (
	"log"
	"net/http"

	"github.com/neocapy/friend-reader/internal/domain"
	"github.com/neocapy/friend-reader/internal/transport/web/logx"
	"github.com/neocapy/friend-reader/internal/transport/web/mw"
	v1 "github.com/neocapy/friend-reader/internal/transport/web/v1"
)

// Gate — нужен ли серверу пароль; сам хэш health не проверяет.
type Gate interface {
	Required() bool
}

type Handler struct {
	Log  *log.Logger
	Gate Gate
}

// Health — пробный маршрут клиента: жив ли сервер и ждёт ли он пароль.
// Единственный маршрут без проверки секрета.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	const op = "health"
	reqID := mw.RequestIDFromCtx(r.Context())

	logx.Info(h.Log, reqID, op, "ok")
	v1.WriteJSON(w, r, domain.HealthResponse{
		Status:           "ok",
		RequiresPassword: h.Gate.Required(),
	})
}
