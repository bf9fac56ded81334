package mw

import "net/http"

// Gate решает, пускать ли предъявленный password_hash.
type Gate interface {
	Allow(provided string) bool
}

// Protect закрывает GET-маршруты общим секретом: хэш приходит
// query-параметром password_hash. Отказ — голый 401 без тела.
// POST /update_position сюда не заворачивается: там хэш в теле,
// его проверяет сам хендлер.
func Protect(gate Gate, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !gate.Allow(r.URL.Query().Get("password_hash")) {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
