package web

import (
	"log"
	"net/http"

	"github.com/neocapy/friend-reader/internal/transport/web/mw"
	"github.com/neocapy/friend-reader/internal/transport/web/v1/book"
	"github.com/neocapy/friend-reader/internal/transport/web/v1/health"
	"github.com/neocapy/friend-reader/internal/transport/web/v1/positions"
)

func newRouter(hh *health.Handler, bh *book.Handler, ph *positions.Handler, gate mw.Gate, logger *log.Logger) http.Handler {
	mux := http.NewServeMux()

	// health — единственный маршрут без секрета
	mux.HandleFunc("GET /health", hh.Health)

	// книга
	mux.Handle("GET /document", mw.Protect(gate, http.HandlerFunc(bh.GetDocument)))
	mux.Handle("GET /images/{id}", mw.Protect(gate, http.HandlerFunc(bh.GetImage)))

	// присутствие; у POST секрет в теле, гейт не нужен
	mux.Handle("GET /positions", mw.Protect(gate, http.HandlerFunc(ph.List)))
	mux.HandleFunc("POST /update_position", limitBody(1<<20, ph.Update)) // 1MB лимит

	// 🔗 middleware
	return mw.WithRequestID(mw.Cors(mw.Logging(logger)(mux)))
}

func limitBody(n int64, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, n)
		h(w, r)
	}
}
