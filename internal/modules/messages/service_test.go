package messages

import (
	"context"
	"encoding/json"
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

func TestConversationsEmptyUserDisablesQuery(t *testing.T) {
	hits, svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request may be issued for an empty user id")
	})

	list, err := svc.Conversations(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.Zero(t, hits.Load())
}

func TestConversationsMatchEitherSide(t *testing.T) {
	_, svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "(buyer_id.eq.u1,seller_id.eq.u1)", r.URL.Query().Get("or"))
		assert.Equal(t, "last_message_at.desc", r.URL.Query().Get("order"))
		w.Write([]byte(`[{"id":"c1","buyer_id":"u1","seller_id":"s9"}]`))
	})

	list, err := svc.Conversations(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "c1", list[0].ID)
}

func TestHistoryOldestFirst(t *testing.T) {
	_, svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "eq.c1", r.URL.Query().Get("conversation_id"))
		assert.Equal(t, "created_at.asc", r.URL.Query().Get("order"))
		w.Write([]byte(`[{"id":"m1","conversation_id":"c1","sender_id":"u1","body":"hi"}]`))
	})

	msgs, err := svc.History(context.Background(), "c1")
	require.NoError(t, err)
	require.Len(t, msgs, 1)
}

func TestSendRejectsEmptyBody(t *testing.T) {
	hits, svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {})

	_, err := svc.Send(context.Background(), "c1", "u1", "   ")
	assert.Error(t, err)
	assert.Zero(t, hits.Load())
}

func TestSendInsertsAndBumpsConversation(t *testing.T) {
	var sentID string
	var bumped bool
	_, svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/rest/v1/messages":
			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			sentID, _ = body["id"].(string)
			w.Write([]byte(`[{"id":"` + sentID + `","conversation_id":"c1","sender_id":"u1","body":"hello"}]`))
		case r.Method == http.MethodPatch && r.URL.Path == "/rest/v1/conversations":
			bumped = true
			w.Write([]byte(`[]`))
		default:
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	})

	msg, err := svc.Send(context.Background(), "c1", "u1", "hello")
	require.NoError(t, err)
	assert.NotEmpty(t, sentID, "client must generate the message id")
	assert.Equal(t, sentID, msg.ID)
	assert.True(t, bumped, "send must bump the conversation's activity timestamp")
}

func TestMarkReadExcludesOwnMessages(t *testing.T) {
	_, svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "eq.c1", r.URL.Query().Get("conversation_id"))
		assert.Equal(t, "neq.u1", r.URL.Query().Get("sender_id"))
		w.Write([]byte(`[]`))
	})

	require.NoError(t, svc.MarkRead(context.Background(), "c1", "u1"))
}

func TestMarkReadNothingUnreadIsFine(t *testing.T) {
	_, svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})
	assert.NoError(t, svc.MarkRead(context.Background(), "c1", "u1"))
}
