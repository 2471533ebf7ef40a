// Package orders is the read/write accessor for the remote "orders" and
// "order_revisions" tables.
//
// Status transitions are written as-is and arbitrated entirely server-side;
// this layer adds the timestamps the lifecycle expects but validates no
// transition graph of its own.
package orders

import (
	"context"
	"fmt"
	"time"

	"gigmarket/internal/cache"
	"gigmarket/internal/domain"
	"gigmarket/internal/pkg/validator"
	"gigmarket/internal/remote"
)

const family = "orders"

type Service struct {
	rest  *remote.Client
	cache *cache.Cache
	now   func() time.Time
}

func NewService(rest *remote.Client, c *cache.Cache) *Service {
	return &Service{rest: rest, cache: c, now: time.Now}
}

// ListForBuyer returns the buyer's orders, newest first. An empty buyer id
// (no authenticated user) disables the query: nothing is fetched and an
// empty result reports back.
func (s *Service) ListForBuyer(ctx context.Context, buyerID string) ([]domain.Order, error) {
	if buyerID == "" {
		return []domain.Order{}, nil
	}
	return s.list(ctx, "buyer:"+buyerID, "buyer_id", buyerID)
}

// ListForSeller mirrors ListForBuyer for the selling side.
func (s *Service) ListForSeller(ctx context.Context, sellerID string) ([]domain.Order, error) {
	if sellerID == "" {
		return []domain.Order{}, nil
	}
	return s.list(ctx, "seller:"+sellerID, "seller_id", sellerID)
}

func (s *Service) list(ctx context.Context, key, col, val string) ([]domain.Order, error) {
	return cache.Through(s.cache, family, key, func() ([]domain.Order, error) {
		var orders []domain.Order
		err := s.rest.From("orders").
			Select("*").
			Eq(col, val).
			OrderDesc("created_at").
			Get(ctx, &orders)
		if err != nil {
			return nil, err
		}
		return orders, nil
	})
}

// GetByID fetches one order. A remote "no error, no row" response resolves
// to ErrNotFound, never to a nil success.
func (s *Service) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	return cache.Through(s.cache, family, "id:"+id, func() (*domain.Order, error) {
		var o domain.Order
		err := s.rest.From("orders").
			Select("*").
			Eq("id", id).
			Single().
			Get(ctx, &o)
		if remote.IsNotFound(err) {
			return nil, ErrNotFound
		}
		if err != nil {
			return nil, err
		}
		if err := validator.ValidateRow(&o); err != nil {
			return nil, err
		}
		return &o, nil
	})
}

// Create opens a new order in the pending state.
func (s *Service) Create(ctx context.Context, req CreateOrderRequest) (*domain.Order, error) {
	if errs := validator.Validate(req); errs != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, errs)
	}

	var confirmed domain.Order
	err := s.rest.From("orders").Insert(ctx, map[string]any{
		"buyer_id":  req.BuyerID,
		"seller_id": req.SellerID,
		"gig_id":    req.GigID,
		"amount":    req.Amount,
		"status":    string(domain.OrderPending),
	}, &confirmed)
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(family)
	return &confirmed, nil
}

// UpdateStatus writes the given status. Delivered and completed also stamp
// their timestamps.
func (s *Service) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	patch := map[string]any{"status": string(status)}
	switch status {
	case domain.OrderDelivered:
		patch["delivered_at"] = s.now().UTC()
	case domain.OrderCompleted:
		patch["completed_at"] = s.now().UTC()
	}

	var confirmed domain.Order
	if err := s.rest.From("orders").Eq("id", id).Update(ctx, patch, &confirmed); err != nil {
		return nil, err
	}

	s.cache.Invalidate(family)
	return &confirmed, nil
}

// AttachDelivery replaces the order's delivery file list and marks it
// delivered.
func (s *Service) AttachDelivery(ctx context.Context, id string, files []string) (*domain.Order, error) {
	var confirmed domain.Order
	err := s.rest.From("orders").Eq("id", id).Update(ctx, map[string]any{
		"delivery_files": files,
		"status":         string(domain.OrderDelivered),
		"delivered_at":   s.now().UTC(),
	}, &confirmed)
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(family)
	return &confirmed, nil
}

// RequestRevision records the buyer's revision request and flips the order
// back to revision_requested.
func (s *Service) RequestRevision(ctx context.Context, req RevisionRequest) (*domain.OrderRevision, error) {
	if errs := validator.Validate(req); errs != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, errs)
	}

	var revision domain.OrderRevision
	err := s.rest.From("order_revisions").Insert(ctx, map[string]any{
		"order_id": req.OrderID,
		"reason":   req.Reason,
	}, &revision)
	if err != nil {
		return nil, err
	}

	if _, err := s.UpdateStatus(ctx, req.OrderID, domain.OrderRevisionRequested); err != nil {
		return nil, err
	}
	return &revision, nil
}

// Revisions lists the revision history for an order, newest first.
func (s *Service) Revisions(ctx context.Context, orderID string) ([]domain.OrderRevision, error) {
	return cache.Through(s.cache, family, "revisions:"+orderID, func() ([]domain.OrderRevision, error) {
		var revs []domain.OrderRevision
		err := s.rest.From("order_revisions").
			Select("*").
			Eq("order_id", orderID).
			OrderDesc("created_at").
			Get(ctx, &revs)
		if err != nil {
			return nil, err
		}
		return revs, nil
	})
}
