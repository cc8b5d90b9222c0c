package model

import (
	"context"
	"time"
)

// PostSorting selects the order of a post listing.
type PostSorting string

const (
	PostSortingNew       PostSorting = "new"
	PostSortingOld       PostSorting = "old"
	PostSortingMostLikes PostSorting = "most_likes"
)

// PostStore defines persistence operations for posts.
type PostStore interface {
	Create(ctx context.Context, post Post) (Post, error)
	GetByID(ctx context.Context, id int64) (PostWithLikes, error)
	List(ctx context.Context, sorting PostSorting) ([]PostWithLikes, error)
}

// CommentStore defines persistence operations for comments.
type CommentStore interface {
	Create(ctx context.Context, comment Comment) (Comment, error)
	ListByPost(ctx context.Context, postID int64) ([]Comment, error)
}

// LikeStore defines persistence operations for likes.
type LikeStore interface {
	Create(ctx context.Context, like Like) (Like, error)
}

type Post struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Body      string    `json:"body"`
	ImageURL  string    `json:"image_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type PostWithLikes struct {
	Post
	Likes int `json:"likes"`
}

type Comment struct {
	ID        int64     `json:"id"`
	PostID    int64     `json:"post_id"`
	UserID    int64     `json:"user_id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

type Like struct {
	ID     int64 `json:"id"`
	PostID int64 `json:"post_id"`
	UserID int64 `json:"user_id"`
}

type PostWithComments struct {
	Post     PostWithLikes `json:"post"`
	Comments []Comment     `json:"comments"`
}
