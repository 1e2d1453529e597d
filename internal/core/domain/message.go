package domain

// Message is one append-only row in a conversation. SenderID is always the
// authenticated principal's id; created_at is assigned by the store.
type Message struct {
	ConversationID string `json:"conversation_id"`
	SenderID       string `json:"sender_id"`
	Content        string `json:"content"`
}
