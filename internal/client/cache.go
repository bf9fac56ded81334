package client

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/neocapy/friend-reader/internal/domain"
)

var (
	bucketDocuments = []byte("documents")
	bucketImages    = []byte("images")
)

// Cache — локальный кэш книг и картинок на bbolt: повторное открытие
// той же книги не тянет мегабайты по сети. Документы лежат в bucket
// documents (ключ — адрес сервера), картинки — во вложенных bucket'ах
// images/<адрес>.
type Cache struct {
	log *log.Logger
	db  *bolt.DB
}

func OpenCache(path string, logger *log.Logger) (*Cache, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open cache %s: %w", path, err)
	}
	if logger != nil {
		logger.Printf("cache opened at %s", path)
	}
	return &Cache{log: logger, db: db}, nil
}

func (c *Cache) Close() error { return c.db.Close() }

func (c *Cache) PutDocument(server string, doc *domain.Document) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	return c.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(bucketDocuments)
		if err != nil {
			return err
		}
		return b.Put([]byte(server), data)
	})
}

// Document возвращает (nil, nil) на промахе.
func (c *Cache) Document(server string) (*domain.Document, error) {
	var raw []byte
	err := c.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketDocuments)
		if b == nil {
			return nil
		}
		if v := b.Get([]byte(server)); v != nil {
			raw = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil || raw == nil {
		return nil, err
	}
	var doc domain.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode cached document: %w", err)
	}
	return &doc, nil
}

func (c *Cache) PutImage(server, id string, data []byte) error {
	return c.db.Update(func(tx *bolt.Tx) error {
		root, err := tx.CreateBucketIfNotExists(bucketImages)
		if err != nil {
			return err
		}
		b, err := root.CreateBucketIfNotExists([]byte(server))
		if err != nil {
			return err
		}
		return b.Put([]byte(id), data)
	})
}

// Image возвращает (nil, nil) на промахе.
func (c *Cache) Image(server, id string) ([]byte, error) {
	var out []byte
	err := c.db.View(func(tx *bolt.Tx) error {
		root := tx.Bucket(bucketImages)
		if root == nil {
			return nil
		}
		b := root.Bucket([]byte(server))
		if b == nil {
			return nil
		}
		if v := b.Get([]byte(id)); v != nil {
			out = append([]byte(nil), v...)
		}
		return nil
	})
	return out, err
}
