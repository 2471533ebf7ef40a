package gigs

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gigmarket/internal/cache"
	"gigmarket/internal/remote"
)

func newTestService(t *testing.T, handler http.HandlerFunc) (*atomic.Int64, *Service) {
	t.Helper()
	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	client := remote.New(remote.Config{BaseURL: srv.URL, AnonKey: "anon"})
	return &hits, NewService(client, cache.New(nil))
}

func TestSearchEmptyTermDisablesQuery(t *testing.T) {
	hits, svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request may be issued for an empty search term")
	})

	for _, term := range []string{"", "   ", "\t"} {
		list, err := svc.Search(context.Background(), term)
		require.NoError(t, err)
		assert.NotNil(t, list)
		assert.Empty(t, list)
	}
	assert.Zero(t, hits.Load())
}

func TestSearchBuildsDisjunction(t *testing.T) {
	_, svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "(title.ilike.*logo*,description.ilike.*logo*)", r.URL.Query().Get("or"))
		assert.Equal(t, "eq.true", r.URL.Query().Get("is_active"))
		w.Write([]byte(`[{"id":"g1","seller_id":"s1","title":"Logo design","is_active":true}]`))
	})

	list, err := svc.Search(context.Background(), "logo")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "g1", list[0].ID)
}

func TestListFilterKeysCacheSeparately(t *testing.T) {
	hits, svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})

	ctx := context.Background()
	_, err := svc.List(ctx, ListFilter{CategoryID: "cat-1"})
	require.NoError(t, err)
	_, err = svc.List(ctx, ListFilter{CategoryID: "cat-2"})
	require.NoError(t, err)
	_, err = svc.List(ctx, ListFilter{CategoryID: "cat-1"})
	require.NoError(t, err)

	assert.Equal(t, int64(2), hits.Load(), "distinct filters fetch, repeats hit the cache")
}

func TestGetByIDNotFound(t *testing.T) {
	_, svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})

	_, err := svc.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, remote.ErrNotFound)
}

func TestCreateRequiresTitle(t *testing.T) {
	hits, svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {})

	_, err := svc.Create(context.Background(), CreateGigRequest{SellerID: "s1", Title: "ab"})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Zero(t, hits.Load())
}

func TestCreateInvalidatesLists(t *testing.T) {
	hits, svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			w.Write([]byte(`[{"id":"g9","seller_id":"s1","title":"New gig","is_active":true}]`))
			return
		}
		w.Write([]byte(`[]`))
	})

	ctx := context.Background()
	_, err := svc.List(ctx, ListFilter{SellerID: "s1"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, CreateGigRequest{SellerID: "s1", Title: "New gig"})
	require.NoError(t, err)

	_, err = svc.List(ctx, ListFilter{SellerID: "s1"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), hits.Load(), "create must drop cached gig lists")
}

func TestUpdateScopedToOwningSeller(t *testing.T) {
	_, svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "eq.g1", r.URL.Query().Get("id"))
		assert.Equal(t, "eq.s1", r.URL.Query().Get("seller_id"))
		// No row matched: not this seller's gig.
		w.Write([]byte(`[]`))
	})

	title := "New title"
	_, err := svc.Update(context.Background(), "g1", "s1", UpdateGigRequest{Title: &title})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestCategoriesCachedInOwnFamily(t *testing.T) {
	hits, svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "name.asc", r.URL.Query().Get("order"))
		w.Write([]byte(`[{"id":"c1","name":"Design"}]`))
	})

	ctx := context.Background()
	cats, err := svc.Categories(ctx)
	require.NoError(t, err)
	require.Len(t, cats, 1)

	_, err = svc.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), hits.Load())
}
