package ingredient

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/kitchenbuddy/pantry/internal/ids"
	"github.com/kitchenbuddy/pantry/internal/kv"
)

// StorageKey is the key the encoded collection is stored under.
const StorageKey = "ingredients"

// BlobStore persists the encoded collection as a single value.
type BlobStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
}

// Store owns the ingredient collection for the lifetime of the application.
// It is constructed once by the application root and passed to whatever
// needs it. A Store is not safe for concurrent use.
type Store struct {
	blobs  BlobStore
	logger *slog.Logger
	now    func() time.Time
	newID  func() string
	items  []Ingredient
}

// OpenOptions configures how the store is opened.
type OpenOptions struct {
	// Logger receives load and save failures. If nil, slog.Default is used.
	Logger *slog.Logger

	// Clock returns the current time. If nil, time.Now is used.
	Clock func() time.Time

	// NewID generates ingredient IDs. If nil, random UUIDs are used.
	NewID func() string
}

// Open loads the collection from blobs. Missing or unreadable data yields an
// empty collection; read failures are logged rather than returned.
func Open(ctx context.Context, blobs BlobStore, opts OpenOptions) *Store {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.NewID == nil {
		opts.NewID = ids.New
	}

	s := &Store{
		blobs:  blobs,
		logger: opts.Logger,
		now:    opts.Clock,
		newID:  opts.NewID,
	}
	s.items = s.load(ctx)
	return s
}

// Now returns the store's current time.
func (s *Store) Now() time.Time {
	return s.now()
}

// load reads the persisted collection, falling back to an empty list.
func (s *Store) load(ctx context.Context) []Ingredient {
	data, err := s.blobs.Get(ctx, StorageKey)
	if errors.Is(err, kv.ErrNotFound) {
		s.logger.Debug("no stored ingredients", slog.String("key", StorageKey))
		return nil
	}
	if err != nil {
		s.logger.Error("failed to load ingredients", slog.String("key", StorageKey), slog.String("error", err.Error()))
		return nil
	}

	items, err := Decode(data)
	if err != nil {
		s.logger.Error("failed to decode ingredients", slog.String("key", StorageKey), slog.String("error", err.Error()))
		return nil
	}

	s.logger.Debug("loaded ingredients", slog.Int("count", len(items)))
	return items
}

// save persists the full collection. Failures are logged, not returned.
func (s *Store) save(ctx context.Context) {
	data, err := Encode(s.items)
	if err != nil {
		s.logger.Error("failed to encode ingredients", slog.String("error", err.Error()))
		return
	}
	if err := s.blobs.Put(ctx, StorageKey, data); err != nil {
		s.logger.Error("failed to save ingredients", slog.String("key", StorageKey), slog.String("error", err.Error()))
		return
	}
	s.logger.Debug("saved ingredients", slog.Int("count", len(s.items)))
}

// Items returns a copy of the collection in insertion order.
func (s *Store) Items() []Ingredient {
	items := make([]Ingredient, 0, len(s.items))
	for _, item := range s.items {
		items = append(items, item.Clone())
	}
	return items
}

// IDIndex returns an index of all ingredient IDs in the store.
func (s *Store) IDIndex() IDIndex {
	return NewIDIndex(s.items)
}

// indexOf returns the position of the ingredient with exactly this ID.
func (s *Store) indexOf(id string) (int, bool) {
	for i := range s.items {
		if s.items[i].ID == id {
			return i, true
		}
	}
	return -1, false
}

// resolve returns the position of the ingredient matching an ID or a unique
// ID prefix.
func (s *Store) resolve(idOrPrefix string) (int, error) {
	if i, ok := s.indexOf(idOrPrefix); ok {
		return i, nil
	}
	id, err := s.IDIndex().Resolve(idOrPrefix)
	if err != nil {
		return -1, err
	}
	for i := range s.items {
		if strings.EqualFold(s.items[i].ID, id) {
			return i, nil
		}
	}
	return -1, ErrIngredientNotFound
}
