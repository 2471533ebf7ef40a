package verification

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gigmarket/internal/cache"
	"gigmarket/internal/domain"
	"gigmarket/internal/localstore"
	"gigmarket/internal/remote"
)

type memKV struct {
	data map[string]string
}

func newMemKV() *memKV { return &memKV{data: map[string]string{}} }

func (m *memKV) Get(_ context.Context, key string) (string, error) {
	v, ok := m.data[key]
	if !ok {
		return "", localstore.ErrNoValue
	}
	return v, nil
}

func (m *memKV) Set(_ context.Context, key, value string) error {
	m.data[key] = value
	return nil
}

func (m *memKV) Delete(_ context.Context, key string) error {
	delete(m.data, key)
	return nil
}

func newTestService(t *testing.T, kv KV, handler http.HandlerFunc) (*atomic.Int64, *Service) {
	t.Helper()
	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	client := remote.New(remote.Config{BaseURL: srv.URL, AnonKey: "anon"})
	return &hits, NewService(client, cache.New(nil), kv)
}

func TestStatusWithoutLocalRecordSkipsRemote(t *testing.T) {
	hits, svc := newTestService(t, newMemKV(), func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("device never submitted, no remote call expected")
	})

	status, err := svc.Status(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, domain.VerificationNone, status)
	assert.Zero(t, hits.Load())
}

func TestStatusCorruptLocalRecordSelfHeals(t *testing.T) {
	kv := newMemKV()
	kv.data[submissionKey] = "{not json"

	_, svc := newTestService(t, kv, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("corrupt record must not trigger a remote call")
	})

	status, err := svc.Status(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, domain.VerificationNone, status)
	assert.NotContains(t, kv.data, submissionKey)
}

func TestSubmitThenStatusPolls(t *testing.T) {
	kv := newMemKV()
	_, svc := newTestService(t, kv, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			w.Write([]byte(`[{"id":"v1","seller_id":"s1","status":"pending"}]`))
		default:
			assert.Equal(t, "eq.s1", r.URL.Query().Get("seller_id"))
			w.Write([]byte(`[{"id":"v1","seller_id":"s1","status":"approved"}]`))
		}
	})

	ctx := context.Background()
	v, err := svc.Submit(ctx, "s1", "passport", "https://cdn.example/doc.png")
	require.NoError(t, err)
	assert.Equal(t, "v1", v.ID)
	assert.Contains(t, kv.data, submissionKey)

	status, err := svc.Status(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, domain.VerificationApproved, status)
}

func TestStatusUnknownRemoteValueReadsPending(t *testing.T) {
	kv := newMemKV()
	kv.data[submissionKey] = `{"seller_id":"s1","submitted_at":1}`

	_, svc := newTestService(t, kv, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":"v1","seller_id":"s1","status":"in_review_v2"}]`))
	})

	status, err := svc.Status(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, domain.VerificationPending, status, "unknown statuses must never read as approved")
}

func TestStatusRemoteRowGoneReadsNone(t *testing.T) {
	kv := newMemKV()
	kv.data[submissionKey] = `{"seller_id":"s1","submitted_at":1}`

	_, svc := newTestService(t, kv, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})

	status, err := svc.Status(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, domain.VerificationNone, status)
}

func TestClearSubmission(t *testing.T) {
	kv := newMemKV()
	kv.data[submissionKey] = `{"seller_id":"s1","submitted_at":1}`

	_, svc := newTestService(t, kv, func(w http.ResponseWriter, r *http.Request) {})
	require.NoError(t, svc.ClearSubmission(context.Background()))
	assert.NotContains(t, kv.data, submissionKey)
}
