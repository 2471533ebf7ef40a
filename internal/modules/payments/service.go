// Package payments is the buyer-side accessor for "payment_methods".
package payments

import (
	"context"

	"gigmarket/internal/cache"
	"gigmarket/internal/domain"
	"gigmarket/internal/remote"
)

const family = "payment_methods"

type Service struct {
	rest  *remote.Client
	cache *cache.Cache
}

func NewService(rest *remote.Client, c *cache.Cache) *Service {
	return &Service{rest: rest, cache: c}
}

// ListForUser returns the user's saved payment methods, newest first. No
// user means a disabled query.
func (s *Service) ListForUser(ctx context.Context, userID string) ([]domain.PaymentMethod, error) {
	if userID == "" {
		return []domain.PaymentMethod{}, nil
	}
	return cache.Through(s.cache, family, "user:"+userID, func() ([]domain.PaymentMethod, error) {
		var methods []domain.PaymentMethod
		err := s.rest.From("payment_methods").
			Select("*").
			Eq("user_id", userID).
			OrderDesc("created_at").
			Get(ctx, &methods)
		if err != nil {
			return nil, err
		}
		return methods, nil
	})
}

func (s *Service) Add(ctx context.Context, m *domain.PaymentMethod) (*domain.PaymentMethod, error) {
	var confirmed domain.PaymentMethod
	err := s.rest.From("payment_methods").Insert(ctx, map[string]any{
		"user_id":    m.UserID,
		"provider":   m.Provider,
		"label":      m.Label,
		"last4":      m.Last4,
		"is_default": m.IsDefault,
	}, &confirmed)
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(family)
	return &confirmed, nil
}

func (s *Service) Remove(ctx context.Context, id string) error {
	if err := s.rest.From("payment_methods").Eq("id", id).Delete(ctx); err != nil {
		return err
	}

	s.cache.Invalidate(family)
	return nil
}

// SetDefault flips the default flag to the given method.
func (s *Service) SetDefault(ctx context.Context, userID, id string) error {
	if err := s.rest.From("payment_methods").Eq("user_id", userID).Update(ctx, map[string]any{"is_default": false}, nil); err != nil && !remote.IsNotFound(err) {
		return err
	}
	if err := s.rest.From("payment_methods").Eq("id", id).Update(ctx, map[string]any{"is_default": true}, nil); err != nil {
		return err
	}

	s.cache.Invalidate(family)
	return nil
}
