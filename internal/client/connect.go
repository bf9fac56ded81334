package client

import (
	"context"
	"errors"

	"github.com/cenkalti/backoff"

	"github.com/neocapy/friend-reader/internal/domain"
)

// connectRetries — сколько раз переспрашиваем недоступный сервер,
// прежде чем сдаться и показать ошибку.
const connectRetries = 4

// Connect — вход в сессию: health с экспоненциальным ретраем на сетевых
// сбоях, затем документ. Ответ сервера (401, 5xx) терминален сразу —
// повторять его бессмысленно.
func (c *Client) Connect(ctx context.Context) (*domain.Document, error) {
	probe := func() error {
		_, err := c.Health(ctx)
		if err != nil && !errors.Is(err, domain.ErrConnectivity) {
			return backoff.Permanent(err)
		}
		return err
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), connectRetries), ctx)
	if err := backoff.Retry(probe, policy); err != nil {
		if c.log != nil {
			c.log.Printf("connect to %s failed: %v", c.base, err)
		}
		return nil, err
	}
	return c.Document(ctx)
}
