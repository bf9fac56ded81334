// Package library держит раздаваемую книгу в памяти: документ
// разобран при старте, картинки лежат байтами как в контейнере.
package library

import (
	"log"

	"github.com/neocapy/friend-reader/internal/domain"
)

type Library struct {
	log    *log.Logger
	doc    *domain.Document
	images map[string][]byte
}

func New(logger *log.Logger, doc *domain.Document, images map[string][]byte) *Library {
	if images == nil {
		images = map[string][]byte{}
	}
	l := &Library{log: logger, doc: doc, images: images}
	l.log.Printf("loaded %q: %d elements, %d images",
		l.Title(), len(doc.Elements), len(images))
	return l
}

// Title — заголовок книги или untitled, если метаданных нет.
func (l *Library) Title() string {
	if l.doc.Metadata.Title != nil {
		return *l.doc.Metadata.Title
	}
	return "untitled"
}

func (l *Library) Document() *domain.Document { return l.doc }

func (l *Library) Image(id string) ([]byte, bool) {
	data, ok := l.images[id]
	return data, ok
}

func (l *Library) ImageCount() int { return len(l.images) }
