package web

import "github.com/neocapy/friend-reader/internal/domain"

// Library — источник раздаваемой книги.
type Library interface {
	Document() *domain.Document
	Image(id string) ([]byte, bool)
}

// Presence — реестр активных читателей.
type Presence interface {
	Upsert(u domain.ConnectedUser)
	Snapshot() map[string]domain.ConnectedUser
}
