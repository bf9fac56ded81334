package web

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neocapy/friend-reader/internal/auth/secret"
	"github.com/neocapy/friend-reader/internal/domain"
	"github.com/neocapy/friend-reader/internal/presence"
	"github.com/neocapy/friend-reader/internal/transport/web/v1/book"
	"github.com/neocapy/friend-reader/internal/transport/web/v1/health"
	"github.com/neocapy/friend-reader/internal/transport/web/v1/positions"
)

type fakeLibrary struct {
	doc    *domain.Document
	images map[string][]byte
}

func (f *fakeLibrary) Document() *domain.Document { return f.doc }

func (f *fakeLibrary) Image(id string) ([]byte, bool) {
	data, ok := f.images[id]
	return data, ok
}

func testDocument() *domain.Document {
	title := "Walden"
	return &domain.Document{
		Metadata: domain.Metadata{Title: &title},
		Elements: domain.Elements{
			domain.Heading{Content: "Economy", Level: 1},
			domain.Text{Content: "When I wrote the following pages..."},
			domain.Image{ID: "cover.jpg", URL: "images/cover.jpg"},
		},
	}
}

func testRouter(t *testing.T, password string) (http.Handler, *presence.Store) {
	t.Helper()
	logger := log.New(io.Discard, "", 0)
	gate := secret.NewGate(password)
	store := presence.NewStore(logger)

	lib := &fakeLibrary{
		doc: testDocument(),
		images: map[string][]byte{
			"cover.jpg":   []byte("jpeg"),
			"map.png":     []byte("png"),
			"anim.gif":    []byte("gif"),
			"photo.webp":  []byte("webp"),
			"mystery.bin": []byte("bin"),
		},
	}

	hh := &health.Handler{Log: logger, Gate: gate}
	bh := &book.Handler{Log: logger, Library: lib}
	ph := &positions.Handler{Log: logger, Registry: store, Gate: gate}
	return newRouter(hh, bh, ph, gate, logger), store
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, nil)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w
}

func TestHealthSkipsGate(t *testing.T) {
	router, _ := testRouter(t, "letmein")

	w := do(t, router, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)

	var h domain.HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &h))
	assert.Equal(t, "ok", h.Status)
	assert.True(t, h.RequiresPassword)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestDocumentGate(t *testing.T) {
	router, _ := testRouter(t, "letmein")
	hash := secret.Hash("letmein")

	// без хэша и с неверным — голый 401 без тела
	w := do(t, router, http.MethodGet, "/document", "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, w.Body.String())

	w = do(t, router, http.MethodGet, "/document?password_hash="+secret.Hash("nope"), "")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(t, router, http.MethodGet, "/document?password_hash="+hash, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	want, err := json.Marshal(testDocument())
	require.NoError(t, err)
	assert.JSONEq(t, string(want), w.Body.String())
}

func TestDocumentOpenServer(t *testing.T) {
	router, _ := testRouter(t, "")

	w := do(t, router, http.MethodGet, "/document", "")
	require.Equal(t, http.StatusOK, w.Code)
}

func TestImageContentTypes(t *testing.T) {
	router, _ := testRouter(t, "")

	tests := []struct {
		id   string
		want string
	}{
		{"cover.jpg", "image/jpeg"},
		{"map.png", "image/png"},
		{"anim.gif", "image/gif"},
		{"photo.webp", "image/webp"},
		{"mystery.bin", "application/octet-stream"},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			w := do(t, router, http.MethodGet, "/images/"+tt.id, "")
			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.want, w.Header().Get("Content-Type"))
		})
	}
}

func TestImageNotFound(t *testing.T) {
	router, _ := testRouter(t, "")

	w := do(t, router, http.MethodGet, "/images/ghost.jpg", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestPositionsRoundTrip(t *testing.T) {
	router, _ := testRouter(t, "letmein")
	hash := secret.Hash("letmein")

	// сервер не валидирует ни имя, ни цвет, ни индексы
	body := `{"name":"bob","color":"chartreuse","position":{"start_element":-3,"start_percent":0,"end_element":99,"end_percent":1},"password_hash":"` + hash + `"}`
	w := do(t, router, http.MethodPost, "/update_position", body)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())

	w = do(t, router, http.MethodGet, "/positions?password_hash="+hash, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp domain.UsersResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Contains(t, resp.Users, "bob")
	assert.Equal(t, "chartreuse", resp.Users["bob"].Color)
	assert.Equal(t, -3, resp.Users["bob"].Position.StartElement)
	assert.Equal(t, 99, resp.Users["bob"].Position.EndElement)
}

func TestUpdatePositionRejections(t *testing.T) {
	router, _ := testRouter(t, "letmein")
	hash := secret.Hash("letmein")

	w := do(t, router, http.MethodPost, "/update_position", "{broken")
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, router, http.MethodPost, "/update_position",
		`{"name":"bob","color":"#00ff00","position":{"start_element":0,"start_percent":0,"end_element":1,"end_percent":1},"password_hash":"`+secret.Hash("nope")+`"}`)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// хэш в query для POST не считается: секрет едет только в теле
	w = do(t, router, http.MethodPost, "/update_position?password_hash="+hash,
		`{"name":"bob","color":"#00ff00","position":{"start_element":0,"start_percent":0,"end_element":1,"end_percent":1}}`)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestPositionsEmptySnapshot(t *testing.T) {
	router, _ := testRouter(t, "")

	w := do(t, router, http.MethodGet, "/positions", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"users":{}}`, w.Body.String())
}

func TestCorsPreflight(t *testing.T) {
	router, _ := testRouter(t, "letmein")

	w := do(t, router, http.MethodOptions, "/positions", "")
	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "POST")
}

func TestRequestIDEchoed(t *testing.T) {
	router, _ := testRouter(t, "")

	r := httptest.NewRequest(http.MethodGet, "/health", nil)
	r.Header.Set("X-Request-ID", "req-42")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, "req-42", w.Header().Get("X-Request-ID"))
}
