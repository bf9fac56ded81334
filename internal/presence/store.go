// Package presence хранит позиции подключённых читателей в памяти.
// Хранилище одно на процесс и передаётся зависимостям явно; персистентности
// нет — перезапуск сервера обнуляет список, клиенты восстановятся
// следующим heartbeat'ом.
package presence

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/neocapy/friend-reader/internal/domain"
)

const (
	// TTL — сколько запись живёт без обновлений.
	TTL = 10 * time.Second
	// SweepInterval — период фоновой уборки.
	SweepInterval = 5 * time.Second
)

type record struct {
	user domain.ConnectedUser
	seen time.Time
}

// Store — реестр читателей, ключ — display name (last-write-wins).
type Store struct {
	log *log.Logger

	mu      sync.RWMutex
	records map[string]record

	ttl time.Duration
	now func() time.Time // подменяется в тестах
}

func NewStore(logger *log.Logger) *Store {
	return &Store{
		log:     logger,
		records: make(map[string]record),
		ttl:     TTL,
		now:     time.Now,
	}
}

// Upsert регистрирует либо обновляет читателя и продлевает его запись.
// Содержимое не валидируется: имя, цвет и индексы сохраняются как есть.
func (s *Store) Upsert(u domain.ConnectedUser) {
	s.mu.Lock()
	s.records[u.Name] = record{user: u, seen: s.now()}
	s.mu.Unlock()
}

// Snapshot возвращает копию реестра, безопасную для сериализации
// без удержания блокировки.
func (s *Store) Snapshot() map[string]domain.ConnectedUser {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]domain.ConnectedUser, len(s.records))
	for name, rec := range s.records {
		out[name] = rec.user
	}
	return out
}

// Sweep удаляет записи без heartbeat строго дольше TTL; возвращает
// число удалённых.
func (s *Store) Sweep() int {
	cutoff := s.now().Add(-s.ttl)
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for name, rec := range s.records {
		if rec.seen.Before(cutoff) {
			delete(s.records, name)
			removed++
			if s.log != nil {
				s.log.Printf("removing inactive user: %s", name)
			}
		}
	}
	return removed
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// RunSweeper гоняет Sweep каждые SweepInterval до отмены контекста.
func (s *Store) RunSweeper(ctx context.Context) {
	t := time.NewTicker(SweepInterval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.Sweep()
		}
	}
}
