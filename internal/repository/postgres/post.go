package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MTomala-IT/storeapi/internal/model"
)

var _ model.PostStore = (*PostRepository)(nil)

const selectPostWithLikes = `SELECT p.id, p.user_id, p.body, p.image_url, p.created_at, COUNT(l.id) AS likes
			  FROM posts p LEFT JOIN likes l ON l.post_id = p.id`

var postOrder = map[model.PostSorting]string{
	model.PostSortingNew:       "p.id DESC",
	model.PostSortingOld:       "p.id ASC",
	model.PostSortingMostLikes: "likes DESC, p.id DESC",
}

type PostRepository struct {
	db DBTX
}

func NewPostRepository(db DBTX) *PostRepository {
	return &PostRepository{
		db: db,
	}
}

func (r *PostRepository) Create(ctx context.Context, post model.Post) (model.Post, error) {
	query := `INSERT INTO posts (user_id, body, image_url)
			  VALUES ($1, $2, $3)
			  RETURNING id, user_id, body, image_url, created_at`

	var saved model.Post
	err := r.db.QueryRowContext(ctx, query, post.UserID, post.Body, post.ImageURL).Scan(
		&saved.ID, &saved.UserID, &saved.Body, &saved.ImageURL, &saved.CreatedAt,
	)
	if err != nil {
		return model.Post{}, fmt.Errorf("failed to create post: %w", err)
	}

	return saved, nil
}

func (r *PostRepository) GetByID(ctx context.Context, id int64) (model.PostWithLikes, error) {
	query := selectPostWithLikes + ` WHERE p.id = $1 GROUP BY p.id`

	var post model.PostWithLikes
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&post.ID, &post.UserID, &post.Body, &post.ImageURL, &post.CreatedAt, &post.Likes,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.PostWithLikes{}, model.ErrNotFound
		}
		return model.PostWithLikes{}, fmt.Errorf("failed to get post by id: %w", err)
	}

	return post, nil
}

func (r *PostRepository) List(ctx context.Context, sorting model.PostSorting) ([]model.PostWithLikes, error) {
	order, ok := postOrder[sorting]
	if !ok {
		return nil, fmt.Errorf("unknown post sorting %q", sorting)
	}
	query := selectPostWithLikes + ` GROUP BY p.id ORDER BY ` + order

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}
	defer rows.Close()

	posts := make([]model.PostWithLikes, 0)
	for rows.Next() {
		var post model.PostWithLikes
		if err := rows.Scan(&post.ID, &post.UserID, &post.Body, &post.ImageURL, &post.CreatedAt, &post.Likes); err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate posts: %w", err)
	}

	return posts, nil
}
