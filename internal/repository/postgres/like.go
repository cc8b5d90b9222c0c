package postgres

import (
	"context"
	"fmt"

	"github.com/MTomala-IT/storeapi/internal/model"
)

var _ model.LikeStore = (*LikeRepository)(nil)

type LikeRepository struct {
	db DBTX
}

func NewLikeRepository(db DBTX) *LikeRepository {
	return &LikeRepository{
		db: db,
	}
}

func (r *LikeRepository) Create(ctx context.Context, like model.Like) (model.Like, error) {
	query := `INSERT INTO likes (post_id, user_id)
			  VALUES ($1, $2)
			  RETURNING id, post_id, user_id`

	var saved model.Like
	err := r.db.QueryRowContext(ctx, query, like.PostID, like.UserID).Scan(&saved.ID, &saved.PostID, &saved.UserID)
	if err != nil {
		return model.Like{}, fmt.Errorf("failed to create like: %w", err)
	}

	return saved, nil
}
