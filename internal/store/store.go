package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/mmcdole/gmes/internal/domain"
	bolt "go.etcd.io/bbolt"
)

// Bucket and key names
var (
	bucketPrefs = []byte("prefs")

	// FavoritesKey holds the JSON-serialized favorites list
	FavoritesKey = "favoriteGmes"
)

// PrefsStore implements domain.FavoritesStore using BoltDB.
// Values are raw JSON under string keys, mirroring a browser's localStorage.
type PrefsStore struct {
	db     *bolt.DB
	mu     sync.RWMutex // Protects memory cache
	logger *slog.Logger

	// In-memory copy of every value read or written
	cache map[string][]byte
}

// NewPrefsStore opens (or creates) the database at dbPath.
// An empty path keeps everything in memory.
func NewPrefsStore(dbPath string, logger *slog.Logger) (*PrefsStore, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if dbPath == "" {
		// Memory-only mode (no persistence)
		return &PrefsStore{cache: make(map[string][]byte), logger: logger}, nil
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, err
	}

	db, err := bolt.Open(dbPath, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketPrefs)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &PrefsStore{db: db, cache: make(map[string][]byte), logger: logger}, nil
}

func (s *PrefsStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// GetRaw returns the stored bytes for key
func (s *PrefsStore) GetRaw(key string) ([]byte, bool) {
	s.mu.RLock()
	if data, ok := s.cache[key]; ok {
		s.mu.RUnlock()
		return data, true
	}
	s.mu.RUnlock()

	if s.db == nil {
		return nil, false
	}

	var data []byte
	s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketPrefs)
		if b == nil {
			return nil
		}
		if v := b.Get([]byte(key)); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})

	if data == nil {
		return nil, false
	}

	s.mu.Lock()
	s.cache[key] = data
	s.mu.Unlock()

	return data, true
}

// SetRaw stores bytes under key
func (s *PrefsStore) SetRaw(key string, data []byte) error {
	s.mu.Lock()
	s.cache[key] = data
	s.mu.Unlock()

	if s.db == nil {
		return nil // Memory-only mode
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketPrefs)
		return b.Put([]byte(key), data)
	})
}

// LoadFavorites returns the stored favorites.
// A missing or malformed value is treated as an empty list.
func (s *PrefsStore) LoadFavorites() []domain.FavoriteEntry {
	data, ok := s.GetRaw(FavoritesKey)
	if !ok {
		return []domain.FavoriteEntry{}
	}

	var entries []domain.FavoriteEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		s.logger.Warn("ignoring malformed favorites", "error", err, "bytes", len(data))
		return []domain.FavoriteEntry{}
	}
	if entries == nil {
		entries = []domain.FavoriteEntry{}
	}
	return entries
}

// SaveFavorites replaces the stored favorites
func (s *PrefsStore) SaveFavorites(entries []domain.FavoriteEntry) error {
	if entries == nil {
		entries = []domain.FavoriteEntry{}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return s.SetRaw(FavoritesKey, data)
}
