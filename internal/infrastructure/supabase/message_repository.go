package supabase

import (
	"context"
	"fmt"

	"github.com/nexuslabs/social-api/internal/core/domain"
)

const messagesTable = "messages"

// MessageRepository implements ports.MessageRepository on the platform's
// messages table.
type MessageRepository struct {
	client *Client
}

func NewMessageRepository(client *Client) *MessageRepository {
	return &MessageRepository{client: client}
}

type messageRow struct {
	ConversationID string `json:"conversation_id"`
	SenderID       string `json:"sender_id"`
	Content        string `json:"content"`
}

// Insert appends one message row. created_at is a store-side default.
func (r *MessageRepository) Insert(ctx context.Context, msg *domain.Message) error {
	rows := []messageRow{{
		ConversationID: msg.ConversationID,
		SenderID:       msg.SenderID,
		Content:        msg.Content,
	}}

	_, err := r.client.From(messagesTable).
		Insert(rows).
		Minimal().
		Execute(ctx)
	if err != nil {
		return fmt.Errorf("insert message: %w", err)
	}
	return nil
}
