// Package book раздаёт загруженную книгу: документ целиком и
// картинки по идентификатору из манифеста.
package book

import (
	"log"
	"net/http"
	"path"
	"strings"

	"github.com/neocapy/friend-reader/internal/domain"
	"github.com/neocapy/friend-reader/internal/transport/web/logx"
	"github.com/neocapy/friend-reader/internal/transport/web/mw"
	v1 "github.com/neocapy/friend-reader/internal/transport/web/v1"
)

type Library interface {
	Document() *domain.Document
	Image(id string) ([]byte, bool)
}

type Handler struct {
	Log     *log.Logger
	Library Library
}

// GetDocument отдаёт весь разобранный документ одним JSON.
func (h *Handler) GetDocument(w http.ResponseWriter, r *http.Request) {
	const op = "book.document"
	reqID := mw.RequestIDFromCtx(r.Context())

	doc := h.Library.Document()
	logx.Info(h.Log, reqID, op, "serve", "elements", len(doc.Elements))
	v1.WriteJSON(w, r, doc)
}

// GetImage отдаёт байты картинки; тип выводится из расширения id.
func (h *Handler) GetImage(w http.ResponseWriter, r *http.Request) {
	const op = "book.image"
	reqID := mw.RequestIDFromCtx(r.Context())

	id := r.PathValue("id")
	data, ok := h.Library.Image(id)
	if !ok {
		logx.Error(h.Log, reqID, op, "image not found", domain.ErrNotFound, "id", id)
		v1.WriteDomainError(w, r, domain.ErrNotFound)
		return
	}

	w.Header().Set("Content-Type", contentTypeFor(id))
	w.Header().Set("X-Request-ID", reqID)
	_, _ = w.Write(data)
}

// contentTypeFor — тип по расширению идентификатора; без расширения
// отдаём октеты.
func contentTypeFor(id string) string {
	switch strings.ToLower(path.Ext(id)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	default:
		return "application/octet-stream"
	}
}
