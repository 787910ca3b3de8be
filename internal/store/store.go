package store

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/quillworks/redline/internal/diff"
)

// Entry is one persisted decision set. Key binds it to the exact content pair
// it was recorded against, so decisions are never replayed onto drifted text.
type Entry struct {
	Key       string                `json:"key"`
	Original  string                `json:"original"`
	Revised   string                `json:"revised"`
	Decisions map[int]diff.Decision `json:"decisions"`
	CreatedAt time.Time             `json:"createdAt"`
	UpdatedAt time.Time             `json:"updatedAt"`
}

// Store persists review decisions as JSON files, one per content pair.
type Store struct {
	dir string
}

// New creates a Store rooted at dir. An empty dir selects the platform
// default location.
func New(dir string) (*Store, error) {
	if dir == "" {
		d, err := defaultStoreDir()
		if err != nil {
			return nil, err
		}
		dir = d
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating store directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the directory backing this store.
func (s *Store) Dir() string {
	return s.dir
}

// Key derives the store key for a content pair. Either snapshot changing
// produces a different key.
func Key(originalText, revisedText string) string {
	h := sha256.New()
	h.Write([]byte(originalText))
	h.Write([]byte{0})
	h.Write([]byte(revisedText))
	return fmt.Sprintf("%x", h.Sum(nil)[:16])
}

// Load retrieves the entry for key. Missing or unreadable entries are
// misses, not errors.
func (s *Store) Load(key string) (Entry, bool) {
	data, err := os.ReadFile(s.entryPath(key))
	if err != nil {
		return Entry{}, false
	}
	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		return Entry{}, false
	}
	if entry.Key != key {
		return Entry{}, false
	}
	return entry, true
}

// Save writes the entry, stamping CreatedAt on first write and UpdatedAt on
// every write.
func (s *Store) Save(entry Entry) error {
	if entry.Key == "" {
		return fmt.Errorf("saving store entry: empty key")
	}
	now := time.Now().UTC()
	if existing, ok := s.Load(entry.Key); ok {
		entry.CreatedAt = existing.CreatedAt
	} else {
		entry.CreatedAt = now
	}
	entry.UpdatedAt = now

	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling store entry: %w", err)
	}
	return os.WriteFile(s.entryPath(entry.Key), data, 0o644)
}

// Delete removes the entry for key. Deleting a missing entry is a no-op.
func (s *Store) Delete(key string) error {
	err := os.Remove(s.entryPath(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("deleting store entry: %w", err)
	}
	return nil
}

// Clear removes all entries.
func (s *Store) Clear() error {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return fmt.Errorf("reading store directory: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		if err := os.Remove(filepath.Join(s.dir, e.Name())); err != nil {
			return fmt.Errorf("clearing store: %w", err)
		}
	}
	return nil
}

func (s *Store) entryPath(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func defaultStoreDir() (string, error) {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "redline", "sessions"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "redline", "sessions"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "redline", "sessions"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "redline", "sessions"), nil
	default:
		return filepath.Join(home, ".local", "share", "redline", "sessions"), nil
	}
}
