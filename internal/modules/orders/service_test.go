package orders

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gigmarket/internal/cache"
	"gigmarket/internal/domain"
	"gigmarket/internal/remote"
)

type remoteStub struct {
	srv  *httptest.Server
	hits atomic.Int64
}

func newRemoteStub(t *testing.T, handler http.HandlerFunc) (*remoteStub, *Service) {
	t.Helper()
	stub := &remoteStub{}
	stub.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		stub.hits.Add(1)
		handler(w, r)
	}))
	t.Cleanup(stub.srv.Close)

	client := remote.New(remote.Config{BaseURL: stub.srv.URL, AnonKey: "anon"})
	return stub, NewService(client, cache.New(nil))
}

func TestListForBuyerEmptyIDDisablesQuery(t *testing.T) {
	stub, svc := newRemoteStub(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request may be issued for an empty buyer id")
	})

	list, err := svc.ListForBuyer(context.Background(), "")
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
	assert.Zero(t, stub.hits.Load())
}

func TestListForSellerEmptyIDDisablesQuery(t *testing.T) {
	stub, svc := newRemoteStub(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request may be issued for an empty seller id")
	})

	list, err := svc.ListForSeller(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.Zero(t, stub.hits.Load())
}

func TestListForBuyerFiltersAndCaches(t *testing.T) {
	stub, svc := newRemoteStub(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "eq.buyer-1", r.URL.Query().Get("buyer_id"))
		assert.Equal(t, "created_at.desc", r.URL.Query().Get("order"))
		w.Write([]byte(`[{"id":"ord-1","buyer_id":"buyer-1","seller_id":"s1","gig_id":"g1","status":"pending"}]`))
	})

	ctx := context.Background()
	list, err := svc.ListForBuyer(ctx, "buyer-1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "ord-1", list[0].ID)

	_, err = svc.ListForBuyer(ctx, "buyer-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), stub.hits.Load(), "second list must hit the cache")
}

func TestGetByIDNotFoundPromotion(t *testing.T) {
	_, svc := newRemoteStub(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})

	_, err := svc.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateOpensPendingAndInvalidates(t *testing.T) {
	stub, svc := newRemoteStub(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "pending", body["status"])
			w.Write([]byte(`[{"id":"ord-9","buyer_id":"b1","seller_id":"s1","gig_id":"g1","status":"pending"}]`))
		default:
			w.Write([]byte(`[{"id":"ord-9","buyer_id":"b1","seller_id":"s1","gig_id":"g1","status":"pending"}]`))
		}
	})

	ctx := context.Background()
	_, err := svc.ListForBuyer(ctx, "b1")
	require.NoError(t, err)

	order, err := svc.Create(ctx, CreateOrderRequest{
		BuyerID:  "b1",
		SellerID: "s1",
		GigID:    "g1",
		Amount:   decimal.NewFromInt(50),
	})
	require.NoError(t, err)
	assert.Equal(t, "ord-9", order.ID)

	_, err = svc.ListForBuyer(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), stub.hits.Load(), "create must drop the cached order lists")
}

func TestCreateRejectsMissingFields(t *testing.T) {
	stub, svc := newRemoteStub(t, func(w http.ResponseWriter, r *http.Request) {})

	_, err := svc.Create(context.Background(), CreateOrderRequest{BuyerID: "b1"})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Zero(t, stub.hits.Load())
}

func TestUpdateStatusStampsTimestamps(t *testing.T) {
	var patches []map[string]any
	_, svc := newRemoteStub(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPatch {
			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			patches = append(patches, body)
		}
		w.Write([]byte(`[{"id":"ord-1","buyer_id":"b1","seller_id":"s1","gig_id":"g1","status":"delivered"}]`))
	})
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	ctx := context.Background()
	_, err := svc.UpdateStatus(ctx, "ord-1", domain.OrderDelivered)
	require.NoError(t, err)
	_, err = svc.UpdateStatus(ctx, "ord-1", domain.OrderCompleted)
	require.NoError(t, err)
	_, err = svc.UpdateStatus(ctx, "ord-1", domain.OrderCancelled)
	require.NoError(t, err)

	require.Len(t, patches, 3)
	assert.Contains(t, patches[0], "delivered_at")
	assert.Contains(t, patches[1], "completed_at")
	assert.NotContains(t, patches[2], "delivered_at")
	assert.NotContains(t, patches[2], "completed_at")
}

func TestRequestRevisionInsertsAndFlipsStatus(t *testing.T) {
	var sawRevisionInsert, sawStatusPatch bool
	_, svc := newRemoteStub(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/rest/v1/order_revisions":
			sawRevisionInsert = true
			w.Write([]byte(`[{"id":"rev-1","order_id":"ord-1","reason":"wrong logo"}]`))
		case r.Method == http.MethodPatch && r.URL.Path == "/rest/v1/orders":
			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, string(domain.OrderRevisionRequested), body["status"])
			sawStatusPatch = true
			w.Write([]byte(`[{"id":"ord-1","buyer_id":"b1","seller_id":"s1","gig_id":"g1","status":"revision_requested"}]`))
		default:
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	})

	rev, err := svc.RequestRevision(context.Background(), RevisionRequest{OrderID: "ord-1", Reason: "wrong logo"})
	require.NoError(t, err)
	assert.Equal(t, "rev-1", rev.ID)
	assert.True(t, sawRevisionInsert)
	assert.True(t, sawStatusPatch)
}
