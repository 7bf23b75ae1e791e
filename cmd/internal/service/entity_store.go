package service

import (
	"context"
	"fmt"
	"sync"

	"entitysearch/cmd/internal/domain/entity"
	"entitysearch/cmd/internal/infrastructure/legalapi"

	"github.com/labstack/gommon/log"
)

// EntityFetcher resolves a registry identifier into a business. A nil
// error must come with a non-nil response.
type EntityFetcher interface {
	GetEntity(ctx context.Context, identifier string) (*legalapi.BusinessResponse, error)
}

// EntityState is a point in time copy of the store.
type EntityState struct {
	Entity  entity.Entity
	Err     error
	Loading bool
}

// EntityStore holds the entity currently shown by the search UI.
//
// Loads are not serialized: when two LoadEntity calls overlap, the one
// that completes last wins. The mutex only keeps individual reads and
// writes whole.
type EntityStore struct {
	fetcher EntityFetcher

	mu      sync.RWMutex
	entity  entity.Entity
	err     error
	loading bool
}

func NewEntityStore(fetcher EntityFetcher) *EntityStore {
	return &EntityStore{
		fetcher: fetcher,
		entity:  entity.New(),
	}
}

// ClearEntity resets the store to its initial state.
func (s *EntityStore) ClearEntity() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entity = entity.New()
	s.err = nil
	s.loading = false
}

// LoadEntity fetches identifier and, on success, replaces the current
// entity. A failed fetch leaves the entity untouched and is kept as the
// store error. There are no retries.
func (s *EntityStore) LoadEntity(ctx context.Context, identifier string) error {
	s.setLoading(true)
	defer s.setLoading(false)

	info, err := s.GetEntityInfo(ctx, identifier)
	if err != nil {
		return err
	}

	s.SetEntity(info)
	return nil
}

// GetEntityInfo fetches and maps identifier without touching the current
// entity. On failure it records the error and returns nil.
func (s *EntityStore) GetEntityInfo(ctx context.Context, identifier string) (*entity.Entity, error) {
	resp, err := s.fetcher.GetEntity(ctx, identifier)
	if err == nil && resp == nil {
		err = &legalapi.APIError{
			Code: legalapi.CodeServerError,
			Err:  fmt.Errorf("no business returned for %s", identifier),
		}
	}
	if err != nil {
		log.Debugf("failed to fetch entity %s: %v", identifier, err)
		s.mu.Lock()
		s.err = err
		s.mu.Unlock()
		return nil, err
	}
	return resp.Business.ToDomain(), nil
}

// SetEntity copies newEntity into the store, resolving its display name.
func (s *EntityStore) SetEntity(newEntity *entity.Entity) {
	e := newEntity.Clone()
	e.Name = newEntity.ResolveName()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entity = e
	s.err = nil
}

func (s *EntityStore) Entity() entity.Entity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.entity.Clone()
}

func (s *EntityStore) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

func (s *EntityStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// State returns the entity, error and loading flag read together.
func (s *EntityStore) State() EntityState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return EntityState{
		Entity:  s.entity.Clone(),
		Err:     s.err,
		Loading: s.loading,
	}
}

func (s *EntityStore) GetEntityCode(description string) entity.CorpTypeCd {
	return entity.CodeFor(description)
}

func (s *EntityStore) GetEntityDescription(legalType entity.CorpTypeCd) string {
	return entity.DescriptionFor(legalType)
}

func (s *EntityStore) CorpTypes() []string {
	return entity.CorpTypes()
}

func (s *EntityStore) LearBusinessTypes() []entity.BusinessType {
	return entity.LearBusinessTypes()
}

func (s *EntityStore) setLoading(loading bool) {
	s.mu.Lock()
	s.loading = loading
	s.mu.Unlock()
}
