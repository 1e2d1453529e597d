package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/nexuslabs/social-api/internal/api/metrics"
	"github.com/nexuslabs/social-api/internal/core/domain"
	"github.com/nexuslabs/social-api/internal/core/ports"
)

// MessageService appends messages to conversations.
type MessageService struct {
	repo   ports.MessageRepository
	logger zerolog.Logger
}

func NewMessageService(repo ports.MessageRepository, logger zerolog.Logger) *MessageService {
	return &MessageService{repo: repo, logger: logger}
}

// SendMessage appends one message. The sender id is always the authenticated
// principal's — caller-supplied sender identities are never accepted. No
// conversation-existence or membership check is made; any authenticated
// principal may post into any conversation id.
func (s *MessageService) SendMessage(ctx context.Context, principal *domain.Principal, conversationID, content string) error {
	if conversationID == "" || content == "" {
		return domain.ErrMessageRequired
	}

	msg := &domain.Message{
		ConversationID: conversationID,
		SenderID:       principal.ID,
		Content:        content,
	}
	if err := s.repo.Insert(ctx, msg); err != nil {
		s.logger.Error().Err(err).Str("conversation_id", conversationID).Msg("failed to append message")
		return err
	}

	metrics.MessagesSentTotal.Inc()
	return nil
}
