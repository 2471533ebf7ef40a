// Package gigs is the read/write accessor for the remote "gigs" and
// "categories" tables.
package gigs

import (
	"context"
	"fmt"
	"strings"

	"gigmarket/internal/cache"
	"gigmarket/internal/domain"
	"gigmarket/internal/pkg/validator"
	"gigmarket/internal/remote"
)

const (
	family           = "gigs"
	categoriesFamily = "categories"
)

type Service struct {
	rest  *remote.Client
	cache *cache.Cache
}

func NewService(rest *remote.Client, c *cache.Cache) *Service {
	return &Service{rest: rest, cache: c}
}

// List returns gigs matching the filter, newest first.
func (s *Service) List(ctx context.Context, f ListFilter) ([]domain.Gig, error) {
	key := fmt.Sprintf("list:cat=%s:seller=%s:active=%t", f.CategoryID, f.SellerID, f.ActiveOnly)
	return cache.Through(s.cache, family, key, func() ([]domain.Gig, error) {
		q := s.rest.From("gigs").Select("*").OrderDesc("created_at")
		if f.CategoryID != "" {
			q = q.Eq("category_id", f.CategoryID)
		}
		if f.SellerID != "" {
			q = q.Eq("seller_id", f.SellerID)
		}
		if f.ActiveOnly {
			q = q.Eq("is_active", true)
		}

		var gigs []domain.Gig
		if err := q.Get(ctx, &gigs); err != nil {
			return nil, err
		}
		return gigs, nil
	})
}

// Search runs a title match. An empty term is a disabled query: no request
// is issued and an empty result reports back.
func (s *Service) Search(ctx context.Context, term string) ([]domain.Gig, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return []domain.Gig{}, nil
	}

	return cache.Through(s.cache, family, "search:"+term, func() ([]domain.Gig, error) {
		var gigs []domain.Gig
		err := s.rest.From("gigs").
			Select("*").
			Or(fmt.Sprintf("title.ilike.*%s*,description.ilike.*%s*", term, term)).
			Eq("is_active", true).
			OrderDesc("created_at").
			Get(ctx, &gigs)
		if err != nil {
			return nil, err
		}
		return gigs, nil
	})
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.Gig, error) {
	return cache.Through(s.cache, family, "id:"+id, func() (*domain.Gig, error) {
		var g domain.Gig
		err := s.rest.From("gigs").
			Select("*").
			Eq("id", id).
			Single().
			Get(ctx, &g)
		if err != nil {
			return nil, err
		}
		if err := validator.ValidateRow(&g); err != nil {
			return nil, err
		}
		return &g, nil
	})
}

func (s *Service) Create(ctx context.Context, req CreateGigRequest) (*domain.Gig, error) {
	if errs := validator.Validate(req); errs != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, errs)
	}

	var confirmed domain.Gig
	err := s.rest.From("gigs").Insert(ctx, map[string]any{
		"seller_id":   req.SellerID,
		"category_id": req.CategoryID,
		"title":       req.Title,
		"description": req.Description,
		"price":       req.Price,
		"is_active":   true,
	}, &confirmed)
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(family)
	return &confirmed, nil
}

// Update patches the gig, scoped to the owning seller. A write that matches
// no row means the gig is missing or owned by someone else.
func (s *Service) Update(ctx context.Context, id, sellerID string, req UpdateGigRequest) (*domain.Gig, error) {
	var confirmed domain.Gig
	err := s.rest.From("gigs").
		Eq("id", id).
		Eq("seller_id", sellerID).
		Update(ctx, req, &confirmed)
	if remote.IsNotFound(err) {
		return nil, ErrForbidden
	}
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(family)
	return &confirmed, nil
}

// Delete removes the gig, scoped to the owning seller like Update.
func (s *Service) Delete(ctx context.Context, id, sellerID string) error {
	err := s.rest.From("gigs").
		Eq("id", id).
		Eq("seller_id", sellerID).
		Delete(ctx)
	if err != nil {
		return err
	}

	s.cache.Invalidate(family)
	return nil
}

// SetActive is the moderation toggle (activate/deactivate).
func (s *Service) SetActive(ctx context.Context, id string, active bool) (*domain.Gig, error) {
	var confirmed domain.Gig
	err := s.rest.From("gigs").
		Eq("id", id).
		Update(ctx, map[string]any{"is_active": active}, &confirmed)
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(family)
	return &confirmed, nil
}

// Categories lists the fixed category set, alphabetical.
func (s *Service) Categories(ctx context.Context) ([]domain.Category, error) {
	return cache.Through(s.cache, categoriesFamily, "all", func() ([]domain.Category, error) {
		var cats []domain.Category
		err := s.rest.From("categories").
			Select("*").
			OrderAsc("name").
			Get(ctx, &cats)
		if err != nil {
			return nil, err
		}
		return cats, nil
	})
}
