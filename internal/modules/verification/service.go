// Package verification handles seller onboarding approval: submitting the
// verification record and checking its status.
//
// Status checks poll: the local submission record says whether anything was
// ever submitted from this device, then the remote row is re-read for the
// current status. A push subscription could replace the poll; the polling
// shape is kept deliberately.
package verification

import (
	"context"
	"encoding/json"
	"time"

	"gigmarket/internal/cache"
	"gigmarket/internal/domain"
	"gigmarket/internal/remote"
)

const (
	family        = "seller_verifications"
	submissionKey = "verification_submission"
)

// KV is the slice of the local store the submission record lives in.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

type submissionRecord struct {
	SellerID    string `json:"seller_id"`
	SubmittedAt int64  `json:"submitted_at"`
}

type Service struct {
	rest  *remote.Client
	cache *cache.Cache
	kv    KV
}

func NewService(rest *remote.Client, c *cache.Cache, kv KV) *Service {
	return &Service{rest: rest, cache: c, kv: kv}
}

// Submit files a verification record and remembers the submission locally
// for the polling path.
func (s *Service) Submit(ctx context.Context, sellerID, documentType, documentURL string) (*domain.SellerVerification, error) {
	var confirmed domain.SellerVerification
	err := s.rest.From("seller_verifications").Insert(ctx, map[string]any{
		"seller_id":     sellerID,
		"document_type": documentType,
		"document_url":  documentURL,
		"status":        string(domain.VerificationPending),
	}, &confirmed)
	if err != nil {
		return nil, err
	}

	buf, _ := json.Marshal(submissionRecord{SellerID: sellerID, SubmittedAt: time.Now().UnixMilli()})
	if err := s.kv.Set(ctx, submissionKey, string(buf)); err != nil {
		return nil, err
	}

	s.cache.Invalidate(family)
	return &confirmed, nil
}

// Status reports the seller's verification state. Without a local
// submission record the device never submitted: status none, no remote
// round trip. Unknown remote statuses read as pending, never approved.
func (s *Service) Status(ctx context.Context, sellerID string) (domain.VerificationStatus, error) {
	raw, err := s.kv.Get(ctx, submissionKey)
	if err != nil {
		return domain.VerificationNone, nil
	}
	var rec submissionRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		_ = s.kv.Delete(ctx, submissionKey)
		return domain.VerificationNone, nil
	}

	var row domain.SellerVerification
	err = s.rest.From("seller_verifications").
		Select("*").
		Eq("seller_id", sellerID).
		OrderDesc("created_at").
		Limit(1).
		Single().
		Get(ctx, &row)
	if remote.IsNotFound(err) {
		return domain.VerificationNone, nil
	}
	if err != nil {
		return domain.VerificationPending, err
	}

	return domain.ParseVerificationStatus(row.Status), nil
}

// ClearSubmission forgets the local record, used once a terminal status has
// been seen.
func (s *Service) ClearSubmission(ctx context.Context) error {
	return s.kv.Delete(ctx, submissionKey)
}
