// Package wallet is the seller-side accessor for "seller_wallets",
// "withdrawal_requests" and "transactions".
package wallet

import (
	"context"

	"github.com/shopspring/decimal"

	"gigmarket/internal/cache"
	"gigmarket/internal/domain"
	"gigmarket/internal/pkg/validator"
	"gigmarket/internal/remote"
)

const family = "wallet"

type Service struct {
	rest  *remote.Client
	cache *cache.Cache
}

func NewService(rest *remote.Client, c *cache.Cache) *Service {
	return &Service{rest: rest, cache: c}
}

// ForSeller fetches the seller's wallet. Wallets are created server-side on
// first sale; a missing row means the seller has none yet.
func (s *Service) ForSeller(ctx context.Context, sellerID string) (*domain.Wallet, error) {
	return cache.Through(s.cache, family, "seller:"+sellerID, func() (*domain.Wallet, error) {
		var w domain.Wallet
		err := s.rest.From("seller_wallets").
			Select("*").
			Eq("seller_id", sellerID).
			Single().
			Get(ctx, &w)
		if remote.IsNotFound(err) {
			return nil, ErrNoWallet
		}
		if err != nil {
			return nil, err
		}
		if err := validator.ValidateRow(&w); err != nil {
			return nil, err
		}
		return &w, nil
	})
}

// RequestWithdrawal files a pending withdrawal. The available balance check
// here is a UX guard; the remote store enforces the real invariant.
func (s *Service) RequestWithdrawal(ctx context.Context, sellerID string, amount decimal.Decimal, method string) (*domain.WithdrawalRequest, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	w, err := s.ForSeller(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	if amount.GreaterThan(w.AvailableBalance) {
		return nil, ErrInsufficientFunds
	}

	var confirmed domain.WithdrawalRequest
	err = s.rest.From("withdrawal_requests").Insert(ctx, map[string]any{
		"wallet_id": w.ID,
		"seller_id": sellerID,
		"amount":    amount,
		"method":    method,
		"status":    domain.WithdrawalPending,
	}, &confirmed)
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(family)
	return &confirmed, nil
}

// Withdrawals lists the seller's withdrawal requests, newest first.
func (s *Service) Withdrawals(ctx context.Context, sellerID string) ([]domain.WithdrawalRequest, error) {
	if sellerID == "" {
		return []domain.WithdrawalRequest{}, nil
	}
	return cache.Through(s.cache, family, "withdrawals:"+sellerID, func() ([]domain.WithdrawalRequest, error) {
		var reqs []domain.WithdrawalRequest
		err := s.rest.From("withdrawal_requests").
			Select("*").
			Eq("seller_id", sellerID).
			OrderDesc("created_at").
			Get(ctx, &reqs)
		if err != nil {
			return nil, err
		}
		return reqs, nil
	})
}

// Transactions lists the wallet ledger, newest first.
func (s *Service) Transactions(ctx context.Context, sellerID string) ([]domain.Transaction, error) {
	if sellerID == "" {
		return []domain.Transaction{}, nil
	}

	w, err := s.ForSeller(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	return cache.Through(s.cache, family, "transactions:"+w.ID, func() ([]domain.Transaction, error) {
		var txns []domain.Transaction
		err := s.rest.From("transactions").
			Select("*").
			Eq("wallet_id", w.ID).
			OrderDesc("created_at").
			Get(ctx, &txns)
		if err != nil {
			return nil, err
		}
		return txns, nil
	})
}
