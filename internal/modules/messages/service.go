// Package messages backs the inbox: conversations and their messages.
package messages

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"gigmarket/internal/cache"
	"gigmarket/internal/domain"
	"gigmarket/internal/pkg/validator"
	"gigmarket/internal/remote"
)

const family = "messages"

type Service struct {
	rest  *remote.Client
	cache *cache.Cache
}

func NewService(rest *remote.Client, c *cache.Cache) *Service {
	return &Service{rest: rest, cache: c}
}

// Conversations lists the user's conversations from either side, most
// recent activity first. No user means a disabled query.
func (s *Service) Conversations(ctx context.Context, userID string) ([]domain.Conversation, error) {
	if userID == "" {
		return []domain.Conversation{}, nil
	}
	return cache.Through(s.cache, family, "conversations:"+userID, func() ([]domain.Conversation, error) {
		var convs []domain.Conversation
		err := s.rest.From("conversations").
			Select("*").
			Or(fmt.Sprintf("buyer_id.eq.%s,seller_id.eq.%s", userID, userID)).
			OrderDesc("last_message_at").
			Get(ctx, &convs)
		if err != nil {
			return nil, err
		}
		return convs, nil
	})
}

// History returns a conversation's messages oldest first, the way the
// thread renders.
func (s *Service) History(ctx context.Context, conversationID string) ([]domain.Message, error) {
	if conversationID == "" {
		return []domain.Message{}, nil
	}
	return cache.Through(s.cache, family, "history:"+conversationID, func() ([]domain.Message, error) {
		var msgs []domain.Message
		err := s.rest.From("messages").
			Select("*").
			Eq("conversation_id", conversationID).
			OrderAsc("created_at").
			Get(ctx, &msgs)
		if err != nil {
			return nil, err
		}
		return msgs, nil
	})
}

// Send writes one message with a client-generated id and bumps the
// conversation's activity timestamp.
func (s *Service) Send(ctx context.Context, conversationID, senderID, body string) (*domain.Message, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, fmt.Errorf("message body is empty")
	}

	msg := &domain.Message{
		ID:             uuid.NewString(),
		ConversationID: conversationID,
		SenderID:       senderID,
		Body:           body,
	}
	if err := validator.ValidateRow(msg); err != nil {
		return nil, err
	}

	var confirmed domain.Message
	err := s.rest.From("messages").Insert(ctx, map[string]any{
		"id":              msg.ID,
		"conversation_id": conversationID,
		"sender_id":       senderID,
		"body":            body,
	}, &confirmed)
	if err != nil {
		return nil, err
	}

	_ = s.rest.From("conversations").
		Eq("id", conversationID).
		Update(ctx, map[string]any{"last_message_at": time.Now().UTC()}, nil)

	s.cache.Invalidate(family)
	return &confirmed, nil
}

// MarkRead stamps every unread message in the conversation not sent by the
// reader.
func (s *Service) MarkRead(ctx context.Context, conversationID, readerID string) error {
	err := s.rest.From("messages").
		Eq("conversation_id", conversationID).
		Neq("sender_id", readerID).
		Update(ctx, map[string]any{"read_at": time.Now().UTC()}, nil)
	if err != nil && !remote.IsNotFound(err) {
		return err
	}

	s.cache.Invalidate(family)
	return nil
}
