package postgres

import (
	"context"
	"fmt"

	"github.com/MTomala-IT/storeapi/internal/model"
)

var _ model.CommentStore = (*CommentRepository)(nil)

type CommentRepository struct {
	db DBTX
}

func NewCommentRepository(db DBTX) *CommentRepository {
	return &CommentRepository{
		db: db,
	}
}

func (r *CommentRepository) Create(ctx context.Context, comment model.Comment) (model.Comment, error) {
	query := `INSERT INTO comments (post_id, user_id, body)
			  VALUES ($1, $2, $3)
			  RETURNING id, post_id, user_id, body, created_at`

	var saved model.Comment
	err := r.db.QueryRowContext(ctx, query, comment.PostID, comment.UserID, comment.Body).Scan(
		&saved.ID, &saved.PostID, &saved.UserID, &saved.Body, &saved.CreatedAt,
	)
	if err != nil {
		return model.Comment{}, fmt.Errorf("failed to create comment: %w", err)
	}

	return saved, nil
}

func (r *CommentRepository) ListByPost(ctx context.Context, postID int64) ([]model.Comment, error) {
	query := `SELECT id, post_id, user_id, body, created_at
			  FROM comments WHERE post_id = $1 ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}
	defer rows.Close()

	comments := make([]model.Comment, 0)
	for rows.Next() {
		var c model.Comment
		if err := rows.Scan(&c.ID, &c.PostID, &c.UserID, &c.Body, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate comments: %w", err)
	}

	return comments, nil
}
