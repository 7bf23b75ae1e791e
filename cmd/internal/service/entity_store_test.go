package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"entitysearch/cmd/internal/domain/entity"
	"entitysearch/cmd/internal/infrastructure/legalapi"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFetcher struct {
	mu        sync.Mutex
	responses map[string]*legalapi.BusinessResponse
	err       error
	calls     int
	onFetch   func()
}

func (f *fakeFetcher) GetEntity(_ context.Context, identifier string) (*legalapi.BusinessResponse, error) {
	f.mu.Lock()
	f.calls++
	onFetch := f.onFetch
	f.mu.Unlock()

	if onFetch != nil {
		onFetch()
	}
	if f.err != nil {
		return nil, f.err
	}
	resp, ok := f.responses[identifier]
	if !ok {
		return nil, legalapi.ErrNotFound
	}
	return resp, nil
}

func boolPtr(b bool) *bool {
	return &b
}

func acmeResponse() *legalapi.BusinessResponse {
	return &legalapi.BusinessResponse{Business: legalapi.Business{
		Identifier:    "BC1234567",
		LegalName:     "Acme Ltd",
		LegalType:     "BC",
		State:         "ACTIVE",
		GoodStanding:  boolPtr(true),
		InDissolution: boolPtr(false),
	}}
}

func TestEntityStore_NewIsCleared(t *testing.T) {
	store := NewEntityStore(&fakeFetcher{})

	state := store.State()
	assert.Equal(t, entity.New(), state.Entity)
	assert.NoError(t, state.Err)
	assert.False(t, state.Loading)
}

func TestEntityStore_LoadEntity(t *testing.T) {
	fetcher := &fakeFetcher{responses: map[string]*legalapi.BusinessResponse{"BC1234567": acmeResponse()}}
	store := NewEntityStore(fetcher)

	err := store.LoadEntity(context.Background(), "BC1234567")
	require.NoError(t, err)

	e := store.Entity()
	assert.Equal(t, "Acme Ltd", e.Name)
	assert.Equal(t, "BC1234567", e.Identifier)
	assert.True(t, e.IsActive())
	assert.True(t, e.IsBC())
	assert.Equal(t, []string{}, e.Warnings())
	assert.Empty(t, e.BN)
	assert.Empty(t, e.IncorporationDate)
	assert.NoError(t, store.Err())
	assert.False(t, store.Loading())
}

func TestEntityStore_LoadEntity_LoadingBracketsFetch(t *testing.T) {
	fetcher := &fakeFetcher{responses: map[string]*legalapi.BusinessResponse{"BC1234567": acmeResponse()}}
	store := NewEntityStore(fetcher)

	var during bool
	fetcher.onFetch = func() { during = store.Loading() }

	require.False(t, store.Loading())
	require.NoError(t, store.LoadEntity(context.Background(), "BC1234567"))

	assert.True(t, during)
	assert.False(t, store.Loading())
}

func TestEntityStore_LoadEntity_FailureKeepsEntity(t *testing.T) {
	fetcher := &fakeFetcher{responses: map[string]*legalapi.BusinessResponse{"BC1234567": acmeResponse()}}
	store := NewEntityStore(fetcher)
	require.NoError(t, store.LoadEntity(context.Background(), "BC1234567"))
	before := store.Entity()

	err := store.LoadEntity(context.Background(), "BC0000000")
	require.Error(t, err)

	assert.Equal(t, before, store.Entity())
	require.Error(t, store.Err())
	assert.Equal(t, "NOT_FOUND", store.Err().Error())
	assert.False(t, store.Loading())
}

func TestEntityStore_LoadEntity_NilResponseKeepsEntity(t *testing.T) {
	fetcher := &fakeFetcher{responses: map[string]*legalapi.BusinessResponse{
		"BC1234567": acmeResponse(),
		"BC7654321": nil,
	}}
	store := NewEntityStore(fetcher)
	require.NoError(t, store.LoadEntity(context.Background(), "BC1234567"))
	before := store.Entity()

	var err error
	require.NotPanics(t, func() {
		err = store.LoadEntity(context.Background(), "BC7654321")
	})
	require.Error(t, err)
	assert.Equal(t, legalapi.CodeServerError, err.Error())

	assert.Equal(t, before, store.Entity())
	assert.Equal(t, err, store.Err())
	assert.False(t, store.Loading())
}

func TestEntityStore_LoadEntity_UnusableBodyKeepsEntity(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"error body", `{"error": "NOT_FOUND", "message": "no such business"}`, legalapi.CodeNotFound},
		{"empty body", `{}`, legalapi.CodeServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				if r.URL.Path == "/businesses/BC1234567" {
					_, _ = w.Write([]byte(`{"business": {"identifier": "BC1234567", "legalName": "Acme Ltd", "legalType": "BC", "state": "ACTIVE"}}`))
					return
				}
				_, _ = w.Write([]byte(tt.body))
			}))
			t.Cleanup(srv.Close)

			client := legalapi.NewClient(legalapi.Options{BaseURL: srv.URL, Timeout: 5 * time.Second})
			store := NewEntityStore(client)
			require.NoError(t, store.LoadEntity(context.Background(), "BC1234567"))
			before := store.Entity()

			err := store.LoadEntity(context.Background(), "BC7654321")
			require.Error(t, err)
			assert.Equal(t, tt.want, err.Error())

			state := store.State()
			assert.Equal(t, before, state.Entity)
			assert.Equal(t, "Acme Ltd", state.Entity.Name)
			require.Error(t, state.Err)
			assert.Equal(t, tt.want, state.Err.Error())
			assert.False(t, state.Loading)
		})
	}
}

func TestEntityStore_LoadEntity_NotFoundFromCleared(t *testing.T) {
	store := NewEntityStore(&fakeFetcher{})

	err := store.LoadEntity(context.Background(), "BC1234567")
	assert.ErrorIs(t, err, legalapi.ErrNotFound)

	state := store.State()
	assert.Equal(t, entity.New(), state.Entity)
	assert.Equal(t, "NOT_FOUND", state.Err.Error())
}

func TestEntityStore_LoadEntity_ErrorStoredVerbatim(t *testing.T) {
	upstream := &legalapi.APIError{Code: legalapi.CodeServerError, Status: 503}
	store := NewEntityStore(&fakeFetcher{err: upstream})

	err := store.LoadEntity(context.Background(), "BC1234567")
	assert.Same(t, upstream, err)
	assert.Same(t, upstream, store.Err())
}

func TestEntityStore_LoadEntity_NoRetry(t *testing.T) {
	fetcher := &fakeFetcher{err: errors.New("boom")}
	store := NewEntityStore(fetcher)

	_ = store.LoadEntity(context.Background(), "BC1234567")
	assert.Equal(t, 1, fetcher.calls)
}

func TestEntityStore_SuccessClearsPreviousError(t *testing.T) {
	fetcher := &fakeFetcher{responses: map[string]*legalapi.BusinessResponse{"BC1234567": acmeResponse()}}
	store := NewEntityStore(fetcher)

	require.Error(t, store.LoadEntity(context.Background(), "BC0000000"))
	require.NoError(t, store.LoadEntity(context.Background(), "BC1234567"))

	assert.NoError(t, store.Err())
}

func TestEntityStore_LoadEntity_FirmUsesAlternateName(t *testing.T) {
	fetcher := &fakeFetcher{responses: map[string]*legalapi.BusinessResponse{
		"FM1234567": {Business: legalapi.Business{
			Identifier: "FM1234567",
			LegalName:  "SMITH, JOE",
			LegalType:  "SP",
			State:      "ACTIVE",
			TaxID:      "123456789BC0001",
			AlternateNames: []legalapi.AlternateName{
				{Identifier: "FM1234567", Name: "Joe's Plumbing"},
			},
		}},
	}}
	store := NewEntityStore(fetcher)

	require.NoError(t, store.LoadEntity(context.Background(), "FM1234567"))

	e := store.Entity()
	assert.Equal(t, "Joe's Plumbing", e.Name)
	assert.Equal(t, "123456789BC0001", e.BN)
	assert.True(t, e.IsFirm())
	assert.Equal(t, "Partnership Act", e.ActTitle())
}

func TestEntityStore_GetEntityInfo(t *testing.T) {
	fetcher := &fakeFetcher{responses: map[string]*legalapi.BusinessResponse{"BC1234567": acmeResponse()}}
	store := NewEntityStore(fetcher)

	info, err := store.GetEntityInfo(context.Background(), "BC1234567")
	require.NoError(t, err)
	assert.Equal(t, "Acme Ltd", info.Name)

	// Fetching alone never touches the current entity.
	assert.Equal(t, entity.New(), store.Entity())
	assert.False(t, store.Loading())

	info, err = store.GetEntityInfo(context.Background(), "BC0000000")
	assert.Nil(t, info)
	assert.ErrorIs(t, err, legalapi.ErrNotFound)
	assert.ErrorIs(t, store.Err(), legalapi.ErrNotFound)
}

func TestEntityStore_SetEntity(t *testing.T) {
	store := NewEntityStore(&fakeFetcher{})
	alts := []entity.AlternateName{{Identifier: "FM1", Name: "Trading Name"}}

	store.SetEntity(&entity.Entity{
		Identifier:     "FM1",
		LegalType:      entity.CorpTypePartnership,
		Name:           "Partners",
		AlternateNames: alts,
		GoodStanding:   false,
		InDissolution:  true,
	})
	alts[0].Name = "mutated"

	e := store.Entity()
	assert.Equal(t, "Trading Name", e.Name)
	assert.Equal(t, "Trading Name", e.AlternateNames[0].Name)
	assert.Equal(t, []string{entity.WarningInvoluntaryDissolution, entity.WarningNotInGoodStanding}, e.Warnings())
}

func TestEntityStore_ClearEntity(t *testing.T) {
	fetcher := &fakeFetcher{responses: map[string]*legalapi.BusinessResponse{"BC1234567": acmeResponse()}}
	store := NewEntityStore(fetcher)
	require.NoError(t, store.LoadEntity(context.Background(), "BC1234567"))
	_ = store.LoadEntity(context.Background(), "BC0000000")

	store.ClearEntity()

	state := store.State()
	assert.Equal(t, "", state.Entity.Identifier)
	assert.Equal(t, entity.CorpTypeNone, state.Entity.LegalType)
	assert.True(t, state.Entity.GoodStanding)
	assert.False(t, state.Entity.InDissolution)
	assert.NoError(t, state.Err)
	assert.False(t, state.Loading)
}

func TestEntityStore_Lookups(t *testing.T) {
	store := NewEntityStore(&fakeFetcher{})

	assert.Equal(t, entity.CorpTypeCoop, store.GetEntityCode("BC Cooperative Association"))
	assert.Equal(t, "BC Cooperative Association", store.GetEntityDescription(entity.CorpTypeCoop))
	assert.Equal(t, entity.CorpTypes(), store.CorpTypes())
	assert.Equal(t, entity.LearBusinessTypes(), store.LearBusinessTypes())
}

func TestEntityStore_OverlappingLoads(t *testing.T) {
	fetcher := &fakeFetcher{responses: map[string]*legalapi.BusinessResponse{
		"BC1234567": acmeResponse(),
		"BC7654321": {Business: legalapi.Business{Identifier: "BC7654321", LegalName: "Other Ltd", LegalType: "BC"}},
	}}
	store := NewEntityStore(fetcher)

	var wg sync.WaitGroup
	for _, id := range []string{"BC1234567", "BC7654321"} {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			_ = store.LoadEntity(context.Background(), id)
		}(id)
	}
	wg.Wait()

	assert.Contains(t, []string{"BC1234567", "BC7654321"}, store.Entity().Identifier)
	assert.False(t, store.Loading())
}
