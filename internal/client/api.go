// Package client — HTTP-доступ читателя к серверу книги. Все методы
// переводят сетевые и статусные сбои в классы ошибок domain (проверка
// errors.Is), подробности остаются в обёрнутом сообщении.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/neocapy/friend-reader/internal/domain"
)

type Client struct {
	log  *log.Logger
	base string
	hash string
	http *http.Client
}

// New строит клиента для base (схема по умолчанию http://).
// passwordHash — уже посчитанный SHA-256 hex или пустая строка.
func New(base, passwordHash string, logger *log.Logger) *Client {
	if !strings.Contains(base, "://") {
		base = "http://" + base
	}
	return &Client{
		log:  logger,
		base: strings.TrimRight(base, "/"),
		hash: passwordHash,
		http: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) BaseURL() string { return c.base }

// Health — единственный запрос без предъявления секрета.
func (c *Client) Health(ctx context.Context) (domain.HealthResponse, error) {
	var out domain.HealthResponse
	body, _, err := c.get(ctx, "/health", false)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return out, fmt.Errorf("%w: health body: %v", domain.ErrUnexpected, err)
	}
	return out, nil
}

func (c *Client) Document(ctx context.Context) (*domain.Document, error) {
	body, _, err := c.get(ctx, "/document", true)
	if err != nil {
		return nil, err
	}
	var doc domain.Document
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("%w: document body: %v", domain.ErrUnexpected, err)
	}
	return &doc, nil
}

// Image возвращает байты ресурса и заявленный сервером Content-Type.
func (c *Client) Image(ctx context.Context, id string) ([]byte, string, error) {
	return c.get(ctx, "/images/"+url.PathEscape(id), true)
}

func (c *Client) Positions(ctx context.Context) (map[string]domain.ConnectedUser, error) {
	body, _, err := c.get(ctx, "/positions", true)
	if err != nil {
		return nil, err
	}
	var out domain.UsersResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("%w: positions body: %v", domain.ErrUnexpected, err)
	}
	return out.Users, nil
}

// UpdatePosition публикует позицию; секрет уходит в теле, не в query.
func (c *Client) UpdatePosition(ctx context.Context, name, color string, pos domain.Position) error {
	payload, err := json.Marshal(domain.PositionUpdate{
		Name:         name,
		Color:        color,
		Position:     pos,
		PasswordHash: c.hash,
	})
	if err != nil {
		return fmt.Errorf("encode position update: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/update_position", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrConnectivity, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return statusErr(resp.StatusCode)
}

// get выполняет GET; authed добавляет password_hash в query, если
// секрет задан. Возвращает тело и Content-Type.
func (c *Client) get(ctx context.Context, p string, authed bool) ([]byte, string, error) {
	u := c.base + p
	if authed && c.hash != "" {
		u += "?password_hash=" + url.QueryEscape(c.hash)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, "", fmt.Errorf("build request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", domain.ErrConnectivity, err)
	}
	defer resp.Body.Close()

	if err := statusErr(resp.StatusCode); err != nil {
		return nil, "", err
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("%w: read body: %v", domain.ErrConnectivity, err)
	}
	return body, resp.Header.Get("Content-Type"), nil
}

func statusErr(code int) error {
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusUnauthorized:
		return domain.ErrUnauth
	case code == http.StatusNotFound:
		return domain.ErrNotFound
	case code == http.StatusBadRequest:
		return domain.ErrBadParams
	default:
		return fmt.Errorf("%w: status %d", domain.ErrServerFault, code)
	}
}
