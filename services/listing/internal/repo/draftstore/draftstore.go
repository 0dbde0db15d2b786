package draftstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Chopaholic/MotorAdverts/services/listing/internal/entity"

	"github.com/redis/go-redis/v9"
)

// Drafts live for a week of inactivity before Redis drops them.
const draftTTL = 7 * 24 * time.Hour

type DraftStore interface {
	// Get returns the owner's draft, creating a fresh one if none exists.
	Get(ctx context.Context, ownerUID string) (*entity.Draft, error)
	// Update loads the draft, applies fn and saves the result, holding the
	// owner's lock for the whole round trip. fn returning an error aborts
	// the save.
	Update(ctx context.Context, ownerUID string, fn func(*entity.Draft) error) (*entity.Draft, error)
	Reset(ctx context.Context, ownerUID string) error
}

type draftStore struct {
	client *redis.Client

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewDraftStore(client *redis.Client) DraftStore {
	return &draftStore{
		client: client,
		locks:  make(map[string]*sync.Mutex),
	}
}

func draftKey(ownerUID string) string {
	return fmt.Sprintf("listing:draft:%s", ownerUID)
}

// ownerLock returns the mutex for one owner's draft. Concurrent mutations
// of the same draft serialize here; different owners never contend.
func (s *draftStore) ownerLock(ownerUID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[ownerUID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[ownerUID] = lock
	}
	return lock
}

func (s *draftStore) load(ctx context.Context, ownerUID string) (*entity.Draft, error) {
	data, err := s.client.Get(ctx, draftKey(ownerUID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return entity.NewDraft(ownerUID), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load draft: %w", err)
	}

	var draft entity.Draft
	if err := json.Unmarshal(data, &draft); err != nil {
		return nil, fmt.Errorf("failed to decode draft: %w", err)
	}
	return &draft, nil
}

func (s *draftStore) save(ctx context.Context, draft *entity.Draft) error {
	draft.UpdatedAt = time.Now()

	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to encode draft: %w", err)
	}
	if err := s.client.Set(ctx, draftKey(draft.OwnerUID), data, draftTTL).Err(); err != nil {
		return fmt.Errorf("failed to save draft: %w", err)
	}
	return nil
}

func (s *draftStore) Get(ctx context.Context, ownerUID string) (*entity.Draft, error) {
	lock := s.ownerLock(ownerUID)
	lock.Lock()
	defer lock.Unlock()

	return s.load(ctx, ownerUID)
}

func (s *draftStore) Update(ctx context.Context, ownerUID string, fn func(*entity.Draft) error) (*entity.Draft, error) {
	lock := s.ownerLock(ownerUID)
	lock.Lock()
	defer lock.Unlock()

	draft, err := s.load(ctx, ownerUID)
	if err != nil {
		return nil, err
	}
	if err := fn(draft); err != nil {
		return nil, err
	}
	if err := s.save(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

func (s *draftStore) Reset(ctx context.Context, ownerUID string) error {
	lock := s.ownerLock(ownerUID)
	lock.Lock()
	defer lock.Unlock()

	if err := s.client.Del(ctx, draftKey(ownerUID)).Err(); err != nil {
		return fmt.Errorf("failed to reset draft: %w", err)
	}
	return nil
}
