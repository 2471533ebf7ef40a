package wallet

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gigmarket/internal/cache"
	"gigmarket/internal/remote"
)

const walletRow = `[{"id":"w-1","seller_id":"s1","available_balance":"100.50","pending_balance":"20","total_earned":"500"}]`

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

func TestForSellerMissingRowIsErrNoWallet(t *testing.T) {
	_, svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})

	_, err := svc.ForSeller(context.Background(), "fresh-seller")
	assert.ErrorIs(t, err, ErrNoWallet)
}

func TestForSellerDecodesDecimals(t *testing.T) {
	_, svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(walletRow))
	})

	w, err := svc.ForSeller(context.Background(), "s1")
	require.NoError(t, err)
	assert.True(t, w.AvailableBalance.Equal(decimal.RequireFromString("100.50")))
	assert.True(t, w.TotalEarned.Equal(decimal.NewFromInt(500)))
}

func TestRequestWithdrawalRejectsNonPositiveAmounts(t *testing.T) {
	hits, svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {})

	_, err := svc.RequestWithdrawal(context.Background(), "s1", decimal.Zero, "paypal")
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = svc.RequestWithdrawal(context.Background(), "s1", decimal.NewFromInt(-5), "paypal")
	assert.ErrorIs(t, err, ErrInvalidAmount)
	assert.Zero(t, hits.Load(), "invalid amounts never reach the remote")
}

func TestRequestWithdrawalGuardsAvailableBalance(t *testing.T) {
	_, svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(walletRow))
	})

	_, err := svc.RequestWithdrawal(context.Background(), "s1", decimal.NewFromInt(101), "paypal")
	assert.ErrorIs(t, err, ErrInsufficientFunds)
}

func TestRequestWithdrawalFilesPending(t *testing.T) {
	_, svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/rest/v1/seller_wallets":
			w.Write([]byte(walletRow))
		case "/rest/v1/withdrawal_requests":
			assert.Equal(t, http.MethodPost, r.Method)
			w.Write([]byte(`[{"id":"wd-1","wallet_id":"w-1","seller_id":"s1","amount":"50","status":"pending"}]`))
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	})

	wd, err := svc.RequestWithdrawal(context.Background(), "s1", decimal.NewFromInt(50), "paypal")
	require.NoError(t, err)
	assert.Equal(t, "wd-1", wd.ID)
	assert.Equal(t, "pending", wd.Status)
}

func TestWithdrawalsEmptySellerDisablesQuery(t *testing.T) {
	hits, svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request may be issued for an empty seller id")
	})

	list, err := svc.Withdrawals(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.Zero(t, hits.Load())
}

func TestTransactionsScopedToWallet(t *testing.T) {
	_, svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/rest/v1/seller_wallets":
			w.Write([]byte(walletRow))
		case "/rest/v1/transactions":
			assert.Equal(t, "eq.w-1", r.URL.Query().Get("wallet_id"))
			w.Write([]byte(`[{"id":"t1","wallet_id":"w-1","amount":"10"}]`))
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	})

	txns, err := svc.Transactions(context.Background(), "s1")
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, "t1", txns[0].ID)
}
