// Package positions — протокол присутствия: снимок читателей и приём
// heartbeat-обновлений.
package positions

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/neocapy/friend-reader/internal/domain"
	"github.com/neocapy/friend-reader/internal/transport/web/logx"
	"github.com/neocapy/friend-reader/internal/transport/web/mw"
	v1 "github.com/neocapy/friend-reader/internal/transport/web/v1"
)

type Registry interface {
	Upsert(u domain.ConnectedUser)
	Snapshot() map[string]domain.ConnectedUser
}

type Gate interface {
	Allow(provided string) bool
}

type Handler struct {
	Log      *log.Logger
	Registry Registry
	Gate     Gate
}

// List — снимок всех читателей под ключом users.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	v1.WriteJSON(w, r, domain.UsersResponse{Users: h.Registry.Snapshot()})
}

// Update принимает позицию читателя. Секрет здесь едет в теле, поэтому
// маршрут не закрыт GET-гейтом. Имя, цвет и индексы не проверяются:
// клиенты сами поджимают чужие диапазоны под свою вёрстку.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	const op = "positions.update"
	reqID := mw.RequestIDFromCtx(r.Context())

	var upd domain.PositionUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		logx.Error(h.Log, reqID, op, "decode body", err)
		v1.WriteDomainError(w, r, domain.ErrBadParams)
		return
	}
	if !h.Gate.Allow(upd.PasswordHash) {
		logx.Error(h.Log, reqID, op, "rejected", domain.ErrUnauth, "name", upd.Name)
		v1.WriteDomainError(w, r, domain.ErrUnauth)
		return
	}

	h.Registry.Upsert(domain.ConnectedUser{
		Name:     upd.Name,
		Color:    upd.Color,
		Position: upd.Position,
	})
	w.WriteHeader(http.StatusOK)
}
