// Package session owns "who is using the app right now" and every transition
// between those states. One store instance is composed at startup and handed
// to all consumers; nothing here is an ambient singleton.
package session

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"gigmarket/internal/domain"
)

type State string

const (
	StateLoading       State = "loading"
	StateAnonymous     State = "anonymous"
	StateGuest         State = "guest"
	StateAuthenticated State = "authenticated"
)

// Store is the single source of truth for the current actor.
//
// The mutex guards the actor fields for memory safety only. Whole actions
// are intentionally not serialized against each other: overlapping calls
// (a logout racing a login) resolve last-write-wins, same as the behavior
// this store reproduces.
type Store struct {
	auth     AuthAPI
	profiles ProfileStore
	tokens   TokenSink
	limiter  *RateLimiter
	log      zerolog.Logger

	mu          sync.RWMutex
	state       State
	actor       domain.Actor
	accessToken string
}

func NewStore(auth AuthAPI, profiles ProfileStore, tokens TokenSink, limiter *RateLimiter, log zerolog.Logger) *Store {
	return &Store{
		auth:     auth,
		profiles: profiles,
		tokens:   tokens,
		limiter:  limiter,
		log:      log,
		state:    StateLoading,
		actor:    domain.Actor{Type: domain.ActorAnonymous},
	}
}

// Init runs the startup session probe. With no token the store settles to
// anonymous; with a stale or bad token it also settles to anonymous rather
// than erroring, since a fresh app simply shows the signed-out state.
func (s *Store) Init(ctx context.Context, accessToken string) {
	if accessToken == "" {
		s.setAnonymous()
		return
	}

	user, err := s.auth.User(ctx, accessToken)
	if err != nil {
		s.log.Info().Err(err).Msg("session probe failed, starting signed out")
		s.setAnonymous()
		return
	}

	profile, err := s.profiles.GetByID(ctx, user.ID)
	if err != nil {
		s.log.Info().Err(err).Str("user_id", user.ID).Msg("profile fetch failed, starting signed out")
		s.setAnonymous()
		return
	}

	s.adopt(profile, accessToken)
	s.log.Info().Str("user_id", user.ID).Msg("session restored")
}

// SignUp registers a new account. The device-local rate limiter is consulted
// before any remote call; a denied attempt never reaches the service.
func (s *Store) SignUp(ctx context.Context, p SignUpParams) (res ActionResult) {
	defer s.settle(&res, "signup")

	if !s.limiter.Allow(ctx) {
		s.log.Warn().Str("email", p.Email).Msg("signup blocked by local rate limiter")
		return failure(MsgTooManyAttempts)
	}

	sess, err := s.auth.SignUp(ctx, p.Email, p.Password, map[string]any{
		"full_name": p.FullName,
		"user_type": p.Role,
	})
	if recordErr := s.limiter.Record(ctx); recordErr != nil {
		s.log.Warn().Err(recordErr).Msg("failed to record signup attempt")
	}
	if err != nil {
		if isRateLimit(err) {
			s.log.Warn().Str("email", p.Email).Msg("remote signup rate limited")
			return failure(MsgTooManyAttempts)
		}
		s.log.Error().Err(err).Str("email", p.Email).Msg("signup failed")
		return failure(err.Error())
	}

	profile, err := s.profiles.Upsert(ctx, &domain.Profile{
		ID:       sess.User.ID,
		Email:    p.Email,
		FullName: p.FullName,
		UserType: p.Role,
	})
	if err != nil {
		s.log.Error().Err(err).Str("user_id", sess.User.ID).Msg("profile creation after signup failed")
		return failure(err.Error())
	}

	s.adopt(profile, sess.AccessToken)
	if err := s.limiter.Clear(ctx); err != nil {
		s.log.Warn().Err(err).Msg("failed to clear signup attempts")
	}
	s.log.Info().Str("user_id", profile.ID).Str("role", p.Role).Msg("signup complete")
	return ActionResult{}
}

// Login signs in with credentials and adopts the matching profile row. On
// failure the remote message is surfaced verbatim and the actor stays
// unchanged.
func (s *Store) Login(ctx context.Context, email, password string) (res ActionResult) {
	defer s.settle(&res, "login")

	sess, err := s.auth.SignInWithPassword(ctx, email, password)
	if err != nil {
		s.log.Warn().Err(err).Str("email", email).Msg("login failed")
		return failure(err.Error())
	}

	profile, err := s.profiles.GetByID(ctx, sess.User.ID)
	if err != nil {
		s.log.Error().Err(err).Str("user_id", sess.User.ID).Msg("profile fetch after login failed")
		return failure(err.Error())
	}

	s.adopt(profile, sess.AccessToken)
	s.log.Info().Str("user_id", profile.ID).Msg("login complete")
	return ActionResult{}
}

// Logout revokes the session remotely, best-effort: the local actor clears
// no matter what the remote call does.
func (s *Store) Logout(ctx context.Context) (res ActionResult) {
	defer s.settle(&res, "logout")

	s.mu.RLock()
	tok := s.accessToken
	s.mu.RUnlock()

	if tok != "" {
		if err := s.auth.SignOut(ctx, tok); err != nil {
			s.log.Warn().Err(err).Msg("remote sign-out failed, clearing local session anyway")
		}
	}

	s.setAnonymous()
	s.log.Info().Msg("logged out")
	return ActionResult{}
}

// ContinueAsGuest installs a local-only guest actor. No remote calls; guest
// and authenticated are mutually exclusive.
func (s *Store) ContinueAsGuest() (res ActionResult) {
	defer s.settle(&res, "guest")

	s.mu.Lock()
	s.actor = domain.Actor{Type: domain.ActorGuest}
	s.state = StateGuest
	s.accessToken = ""
	s.mu.Unlock()
	s.tokens.SetAccessToken("")

	s.log.Info().Msg("continuing as guest")
	return ActionResult{}
}

// SwitchToSeller flips the current profile's role to seller and re-derives
// the actor. The identity comes from a fresh session probe, not the cached
// actor.
func (s *Store) SwitchToSeller(ctx context.Context) (res ActionResult) {
	defer s.settle(&res, "switch_to_seller")

	s.mu.RLock()
	tok := s.accessToken
	s.mu.RUnlock()
	if tok == "" {
		return failure("not signed in")
	}

	user, err := s.auth.User(ctx, tok)
	if err != nil {
		s.log.Warn().Err(err).Msg("session probe before role switch failed")
		return failure(err.Error())
	}

	profile, err := s.profiles.UpdateRole(ctx, user.ID, domain.RoleSeller)
	if err != nil {
		s.log.Error().Err(err).Str("user_id", user.ID).Msg("role switch failed")
		return failure(err.Error())
	}

	s.adopt(profile, tok)
	s.log.Info().Str("user_id", user.ID).Msg("switched to seller")
	return ActionResult{}
}

// RefreshUser re-fetches the profile row and re-derives the actor, used
// after out-of-band profile edits.
func (s *Store) RefreshUser(ctx context.Context, id, email string) (res ActionResult) {
	defer s.settle(&res, "refresh_user")

	profile, err := s.profiles.GetByID(ctx, id)
	if err != nil {
		s.log.Warn().Err(err).Str("user_id", id).Msg("user refresh failed")
		return failure(err.Error())
	}
	if profile.Email == "" {
		profile.Email = email
	}

	s.mu.RLock()
	tok := s.accessToken
	s.mu.RUnlock()
	s.adopt(profile, tok)
	return ActionResult{}
}

// Actor returns a copy of the current actor.
func (s *Store) Actor() domain.Actor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.actor
}

func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *Store) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

func (s *Store) adopt(p *domain.Profile, accessToken string) {
	actor := domain.ActorFromProfile(p)
	s.mu.Lock()
	s.actor = actor
	s.state = StateAuthenticated
	s.accessToken = accessToken
	s.mu.Unlock()
	s.tokens.SetAccessToken(accessToken)
}

func (s *Store) setAnonymous() {
	s.mu.Lock()
	s.actor = domain.Actor{Type: domain.ActorAnonymous}
	s.state = StateAnonymous
	s.accessToken = ""
	s.mu.Unlock()
	s.tokens.SetAccessToken("")
}

// settle converts a panic inside an action into an error-carrying result,
// keeping the "actions always settle, never throw" contract.
func (s *Store) settle(res *ActionResult, action string) {
	if r := recover(); r != nil {
		s.log.Error().Interface("panic", r).Str("action", action).Msg("session action panicked")
		*res = failure(MsgUnexpected)
	}
}
