// Package profiles is the read/write accessor for the remote "profiles" and
// "user_preferences" tables.
package profiles

import (
	"context"

	"gigmarket/internal/cache"
	"gigmarket/internal/domain"
	"gigmarket/internal/pkg/validator"
	"gigmarket/internal/remote"
)

const (
	family            = "profiles"
	preferencesFamily = "user_preferences"
)

type Service struct {
	rest  *remote.Client
	cache *cache.Cache
}

func NewService(rest *remote.Client, c *cache.Cache) *Service {
	return &Service{rest: rest, cache: c}
}

// GetByID fetches one profile row. Malformed rows are rejected at the
// boundary instead of being trusted downstream.
func (s *Service) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	return cache.Through(s.cache, family, "id:"+id, func() (*domain.Profile, error) {
		var p domain.Profile
		err := s.rest.From("profiles").
			Select("*").
			Eq("id", id).
			Single().
			Get(ctx, &p)
		if err != nil {
			return nil, err
		}
		if err := validator.ValidateRow(&p); err != nil {
			return nil, err
		}
		return &p, nil
	})
}

// Upsert creates the profile row or updates it when one already exists for
// the id. The server-confirmed row comes back either way.
func (s *Service) Upsert(ctx context.Context, p *domain.Profile) (*domain.Profile, error) {
	var existing domain.Profile
	err := s.rest.From("profiles").
		Select("id").
		Eq("id", p.ID).
		Single().
		Get(ctx, &existing)

	var confirmed domain.Profile
	switch {
	case remote.IsNotFound(err):
		err = s.rest.From("profiles").Insert(ctx, map[string]any{
			"id":        p.ID,
			"email":     p.Email,
			"full_name": p.FullName,
			"user_type": p.UserType,
		}, &confirmed)
	case err != nil:
		return nil, err
	default:
		err = s.rest.From("profiles").Eq("id", p.ID).Update(ctx, map[string]any{
			"email":     p.Email,
			"full_name": p.FullName,
			"user_type": p.UserType,
		}, &confirmed)
	}
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(family)
	return &confirmed, nil
}

// UpdateRole flips the profile's user_type.
func (s *Service) UpdateRole(ctx context.Context, id string, role domain.UserRole) (*domain.Profile, error) {
	var confirmed domain.Profile
	err := s.rest.From("profiles").
		Eq("id", id).
		Update(ctx, map[string]any{"user_type": string(role)}, &confirmed)
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(family)
	return &confirmed, nil
}

// UpdateContact patches contact fields only.
func (s *Service) UpdateContact(ctx context.Context, id string, patch ContactPatch) (*domain.Profile, error) {
	var confirmed domain.Profile
	err := s.rest.From("profiles").
		Eq("id", id).
		Update(ctx, patch, &confirmed)
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(family)
	return &confirmed, nil
}

// Preferences reads the user_preferences row for the user, defaulting to an
// all-on record when none exists yet.
func (s *Service) Preferences(ctx context.Context, userID string) (*domain.UserPreference, error) {
	return cache.Through(s.cache, preferencesFamily, "user:"+userID, func() (*domain.UserPreference, error) {
		var pref domain.UserPreference
		err := s.rest.From("user_preferences").
			Select("*").
			Eq("user_id", userID).
			Single().
			Get(ctx, &pref)
		if remote.IsNotFound(err) {
			return &domain.UserPreference{
				UserID:             userID,
				EmailNotifications: true,
				PushNotifications:  true,
			}, nil
		}
		if err != nil {
			return nil, err
		}
		return &pref, nil
	})
}

func (s *Service) UpdatePreferences(ctx context.Context, pref *domain.UserPreference) (*domain.UserPreference, error) {
	var confirmed domain.UserPreference
	err := s.rest.From("user_preferences").
		Eq("user_id", pref.UserID).
		Update(ctx, pref, &confirmed)
	if remote.IsNotFound(err) {
		err = s.rest.From("user_preferences").Insert(ctx, pref, &confirmed)
	}
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(preferencesFamily)
	return &confirmed, nil
}
