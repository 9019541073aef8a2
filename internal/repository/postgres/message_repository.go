package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/skillswap-app/skillswap-backend/internal/domain"
	"github.com/skillswap-app/skillswap-backend/internal/repository"
)

type messageRepository struct {
	db *sqlx.DB
}

func NewMessageRepository(db *sqlx.DB) repository.MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Append(ctx context.Context, msg *domain.Message) error {
	query := `
		INSERT INTO messages (id, sender_id, receiver_id, text, is_system, reaction, sent_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.ExecContext(ctx, query,
		msg.ID, msg.SenderID, msg.ReceiverID, msg.Text, msg.IsSystem, msg.Reaction, msg.SentAt)
	return err
}

func (r *messageRepository) History(ctx context.Context, userID, partnerID int) ([]*domain.Message, error) {
	var messages []*domain.Message
	query := `
		SELECT id, sender_id, receiver_id, text, is_system, reaction, sent_at
		FROM messages
		WHERE (sender_id = $1 AND receiver_id = $2) OR (sender_id = $2 AND receiver_id = $1)
		ORDER BY sent_at
	`
	err := r.db.SelectContext(ctx, &messages, query, userID, partnerID)
	return messages, err
}

func (r *messageRepository) UpdateReaction(ctx context.Context, userID, partnerID int, messageID, reaction string) error {
	query := `
		UPDATE messages SET reaction = $1
		WHERE id = $2
		  AND ((sender_id = $3 AND receiver_id = $4) OR (sender_id = $4 AND receiver_id = $3))
	`
	result, err := r.db.ExecContext(ctx, query, reaction, messageID, userID, partnerID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrMessageNotFound
	}
	return nil
}

func (r *messageRepository) DeleteForUser(ctx context.Context, userID int) error {
	query := `DELETE FROM messages WHERE sender_id = $1 OR receiver_id = $1`
	_, err := r.db.ExecContext(ctx, query, userID)
	return err
}
