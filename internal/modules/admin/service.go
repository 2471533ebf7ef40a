// Package admin is the back-office console: its own session concept,
// moderation operations against the remote tables, and local fixture lists.
//
// The payout role gate here is advisory, client-side only. The remote
// store's rules are the real enforcement.
package admin

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"gigmarket/internal/cache"
	"gigmarket/internal/domain"
	"gigmarket/internal/remote"
)

const (
	usersFamily         = "admin_users"
	disputesFamily      = "admin_disputes"
	withdrawalsFamily   = "admin_withdrawals"
	verificationsFamily = "admin_verifications"
)

type Service struct {
	rest     *remote.Client
	cache    *cache.Cache
	accounts AccountStore
	log      zerolog.Logger

	mu           sync.RWMutex
	current      *domain.AdminUser
	activityLogs []domain.ActivityLog
	supportQueue []domain.SupportTicket
}

func NewService(rest *remote.Client, c *cache.Cache, accounts AccountStore, log zerolog.Logger) *Service {
	return &Service{
		rest:         rest,
		cache:        c,
		accounts:     accounts,
		log:          log,
		supportQueue: seedSupportTickets(),
	}
}

// LoginAdmin checks credentials against the seeded account fixtures and
// installs the admin actor.
func (s *Service) LoginAdmin(ctx context.Context, email, password string) (*domain.AdminUser, error) {
	acc, err := s.accounts.AdminByEmail(ctx, email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(password)) != nil {
		s.log.Warn().Str("email", email).Msg("admin login rejected")
		return nil, ErrInvalidCredentials
	}

	admin := &domain.AdminUser{
		ID:        acc.ID,
		Email:     acc.Email,
		Name:      acc.Name,
		Role:      domain.AdminRole(acc.Role),
		CreatedAt: acc.CreatedAt,
	}

	s.mu.Lock()
	s.current = admin
	s.mu.Unlock()

	s.log.Info().Str("admin_id", admin.ID).Str("role", string(admin.Role)).Msg("admin signed in")
	return admin, nil
}

func (s *Service) LogoutAdmin() {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
}

func (s *Service) CurrentAdmin() (*domain.AdminUser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil, ErrNotSignedIn
	}
	copied := *s.current
	return &copied, nil
}

func (s *Service) ActivityLogs() []domain.ActivityLog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.ActivityLog, len(s.activityLogs))
	copy(out, s.activityLogs)
	return out
}

func (s *Service) SupportTickets() []domain.SupportTicket {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.SupportTicket, len(s.supportQueue))
	copy(out, s.supportQueue)
	return out
}

// -------------------- Users --------------------

func (s *Service) ListUsers(ctx context.Context) ([]domain.Profile, error) {
	return cache.Through(s.cache, usersFamily, "all", func() ([]domain.Profile, error) {
		var users []domain.Profile
		err := s.rest.From("profiles").
			Select("*").
			OrderDesc("created_at").
			Get(ctx, &users)
		if err != nil {
			return nil, err
		}
		return users, nil
	})
}

func (s *Service) SetUserBanned(ctx context.Context, userID string, banned bool) error {
	admin, err := s.CurrentAdmin()
	if err != nil {
		return err
	}

	err = s.rest.From("profiles").
		Eq("id", userID).
		Update(ctx, map[string]any{"is_banned": banned}, nil)
	if err != nil {
		return err
	}

	s.cache.Invalidate(usersFamily)
	action := "user_banned"
	if !banned {
		action = "user_unbanned"
	}
	s.recordActivity(admin.ID, action, userID, "")
	return nil
}

// -------------------- Gigs --------------------

func (s *Service) SetGigActive(ctx context.Context, gigID string, active bool) error {
	admin, err := s.CurrentAdmin()
	if err != nil {
		return err
	}

	err = s.rest.From("gigs").
		Eq("id", gigID).
		Update(ctx, map[string]any{"is_active": active}, nil)
	if err != nil {
		return err
	}

	s.cache.Invalidate("gigs")
	action := "gig_deactivated"
	if active {
		action = "gig_activated"
	}
	s.recordActivity(admin.ID, action, gigID, "")
	return nil
}

// -------------------- Disputes --------------------

func (s *Service) ListDisputes(ctx context.Context, status string) ([]domain.Dispute, error) {
	return cache.Through(s.cache, disputesFamily, "status:"+status, func() ([]domain.Dispute, error) {
		q := s.rest.From("disputes").Select("*").OrderDesc("created_at")
		if status != "" {
			q = q.Eq("status", status)
		}
		var disputes []domain.Dispute
		if err := q.Get(ctx, &disputes); err != nil {
			return nil, err
		}
		return disputes, nil
	})
}

func (s *Service) ResolveDispute(ctx context.Context, disputeID, resolution string) error {
	admin, err := s.CurrentAdmin()
	if err != nil {
		return err
	}

	err = s.rest.From("disputes").
		Eq("id", disputeID).
		Update(ctx, map[string]any{"status": "resolved", "resolution": resolution}, nil)
	if err != nil {
		return err
	}

	s.cache.Invalidate(disputesFamily)
	s.recordActivity(admin.ID, "dispute_resolved", disputeID, resolution)
	return nil
}

// -------------------- Payouts --------------------

func (s *Service) ListWithdrawals(ctx context.Context, status string) ([]domain.WithdrawalRequest, error) {
	return cache.Through(s.cache, withdrawalsFamily, "status:"+status, func() ([]domain.WithdrawalRequest, error) {
		q := s.rest.From("withdrawal_requests").Select("*").OrderDesc("created_at")
		if status != "" {
			q = q.Eq("status", status)
		}
		var reqs []domain.WithdrawalRequest
		if err := q.Get(ctx, &reqs); err != nil {
			return nil, err
		}
		return reqs, nil
	})
}

// ReviewWithdrawal approves or declines a payout. Only finance-tagged roles
// may act.
func (s *Service) ReviewWithdrawal(ctx context.Context, withdrawalID string, approve bool) error {
	admin, err := s.CurrentAdmin()
	if err != nil {
		return err
	}
	if !admin.CanActOnPayouts() {
		return ErrRoleForbidden
	}

	status := domain.WithdrawalDeclined
	if approve {
		status = domain.WithdrawalApproved
	}
	err = s.rest.From("withdrawal_requests").
		Eq("id", withdrawalID).
		Update(ctx, map[string]any{"status": status}, nil)
	if err != nil {
		return err
	}

	s.cache.Invalidate(withdrawalsFamily)
	s.cache.Invalidate("wallet")
	s.recordActivity(admin.ID, "withdrawal_"+status, withdrawalID, "")
	return nil
}

// -------------------- Verifications --------------------

func (s *Service) ListVerifications(ctx context.Context, status string) ([]domain.SellerVerification, error) {
	return cache.Through(s.cache, verificationsFamily, "status:"+status, func() ([]domain.SellerVerification, error) {
		q := s.rest.From("seller_verifications").Select("*").OrderDesc("created_at")
		if status != "" {
			q = q.Eq("status", status)
		}
		var rows []domain.SellerVerification
		if err := q.Get(ctx, &rows); err != nil {
			return nil, err
		}
		return rows, nil
	})
}

// ReviewVerification approves or rejects a seller verification and mirrors
// the outcome onto the profile row the apps derive their actor from.
func (s *Service) ReviewVerification(ctx context.Context, verificationID, sellerID string, approve bool, notes string) error {
	admin, err := s.CurrentAdmin()
	if err != nil {
		return err
	}

	status := domain.VerificationRejected
	if approve {
		status = domain.VerificationApproved
	}

	err = s.rest.From("seller_verifications").
		Eq("id", verificationID).
		Update(ctx, map[string]any{"status": string(status), "notes": notes}, nil)
	if err != nil {
		return err
	}

	err = s.rest.From("profiles").
		Eq("id", sellerID).
		Update(ctx, map[string]any{"verification_status": string(status)}, nil)
	if err != nil && !errors.Is(err, remote.ErrNotFound) {
		return err
	}

	s.cache.Invalidate(verificationsFamily)
	s.cache.Invalidate("profiles")
	s.recordActivity(admin.ID, "verification_"+string(status), verificationID, notes)
	return nil
}

func (s *Service) recordActivity(adminID, action, targetID, details string) {
	entry := domain.ActivityLog{
		ID:        uuid.NewString(),
		AdminID:   adminID,
		Action:    action,
		TargetID:  targetID,
		Details:   details,
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	s.activityLogs = append([]domain.ActivityLog{entry}, s.activityLogs...)
	s.mu.Unlock()

	s.log.Info().Str("admin_id", adminID).Str("action", action).Str("target", targetID).Msg("admin action")
}
