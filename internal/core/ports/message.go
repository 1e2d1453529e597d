package ports

import (
	"context"

	"github.com/nexuslabs/social-api/internal/core/domain"
)

// MessageRepository appends messages to the messages table.
type MessageRepository interface {
	Insert(ctx context.Context, msg *domain.Message) error
}

// MessageService defines the messaging use case. Append only: no listing,
// delivery or read receipts.
type MessageService interface {
	SendMessage(ctx context.Context, principal *domain.Principal, conversationID, content string) error
}
