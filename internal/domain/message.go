package domain

import "time"

// Message is one entry in the conversation log between two users. System
// messages are engine-generated announcements (session proposed, confirmed,
// declined) and carry no reaction.
type Message struct {
	ID         string    `json:"id" db:"id"`
	SenderID   int       `json:"sender_id" db:"sender_id"`
	ReceiverID int       `json:"receiver_id" db:"receiver_id"`
	Text       string    `json:"text" db:"text"`
	IsSystem   bool      `json:"is_system" db:"is_system"`
	Reaction   string    `json:"reaction,omitempty" db:"reaction"`
	SentAt     time.Time `json:"sent_at" db:"sent_at"`
}

// System message kinds, used by event consumers to distinguish announcements.
const (
	EventSessionProposed  = "session_proposed"
	EventSessionConfirmed = "session_confirmed"
	EventSessionDeclined  = "session_declined"
)

// SystemMessageEvent announces a session negotiation step in the conversation
// between two users. Lifecycle operations always emit it; whether and where it
// is delivered is the publisher's concern.
type SystemMessageEvent struct {
	ID         string    `json:"id"`
	Kind       string    `json:"kind"`
	SenderID   int       `json:"sender_id"`
	ReceiverID int       `json:"receiver_id"`
	Text       string    `json:"text"`
	Date       time.Time `json:"date"`
	EmittedAt  time.Time `json:"emitted_at"`
}
