package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"entitysearch/cmd/internal/domain/entity"
	"entitysearch/cmd/internal/infrastructure/legalapi"
	"entitysearch/cmd/internal/utils"

	"github.com/labstack/gommon/log"
)

type BusinessRepository interface {
	Save(business *entity.CachedBusiness) error
	FindByIdentifier(identifier string) (*entity.CachedBusiness, error)
}

// BusinessLookup is an EntityFetcher that keeps legal API answers,
// including "not found", in a local cache for TTL.
type BusinessLookup struct {
	Client       EntityFetcher
	BusinessRepo BusinessRepository
	TTL          time.Duration
}

func NewBusinessLookup(client EntityFetcher, businessRepo BusinessRepository, ttl time.Duration) *BusinessLookup {
	return &BusinessLookup{
		Client:       client,
		BusinessRepo: businessRepo,
		TTL:          ttl,
	}
}

func (b *BusinessLookup) GetEntity(ctx context.Context, identifier string) (*legalapi.BusinessResponse, error) {
	cached, err := b.BusinessRepo.FindByIdentifier(identifier)
	if err != nil {
		// The cache is an optimization, fall through to the API.
		log.Errorf("failed to find cached business %s: %v", identifier, err)
	}

	if cached != nil && b.isFresh(cached) {
		if !cached.Found {
			return nil, legalapi.ErrNotFound
		}

		var resp legalapi.BusinessResponse
		if err := json.Unmarshal([]byte(cached.Payload), &resp); err == nil && resp.Business.Identifier != "" {
			return &resp, nil
		}
		log.Warnf("discarding unreadable cache entry for %s", identifier)
	}

	// Cache miss
	resp, err := b.Client.GetEntity(ctx, identifier)
	if err != nil {
		if errors.Is(err, legalapi.ErrNotFound) {
			b.cacheNegativeResult(identifier)
		}
		return nil, err
	}

	// Only a real business is worth keeping.
	if resp != nil && resp.Business.Identifier != "" {
		b.cacheResult(identifier, resp)
	}
	return resp, nil
}

func (b *BusinessLookup) isFresh(cached *entity.CachedBusiness) bool {
	return utils.NowUTC()-cached.CachedAt < b.TTL.Milliseconds()
}

func (b *BusinessLookup) cacheResult(identifier string, resp *legalapi.BusinessResponse) {
	payload, err := json.Marshal(resp)
	if err != nil {
		log.Errorf("failed to encode business %s for cache: %v", identifier, err)
		return
	}

	err = b.BusinessRepo.Save(&entity.CachedBusiness{
		Identifier: identifier,
		Payload:    string(payload),
		Found:      true,
		CachedAt:   utils.NowUTC(),
	})
	if err != nil {
		// We don't fail the lookup here, since we have the data we need
		// and only the cache has failed. We can just log it and proceed.
		log.Errorf("failed to save business cache for %s: %v", identifier, err)
	}
}

func (b *BusinessLookup) cacheNegativeResult(identifier string) {
	emptyBusiness := &entity.CachedBusiness{
		Identifier: identifier,
		Found:      false,
		CachedAt:   utils.NowUTC(),
	}
	if err := b.BusinessRepo.Save(emptyBusiness); err != nil {
		log.Errorf("failed to save negative business cache for %s: %v", identifier, err)
	}
}
