package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MTomala-IT/storeapi/internal/logger"
	"github.com/MTomala-IT/storeapi/internal/model"
)

type Post struct {
	postStore    model.PostStore
	commentStore model.CommentStore
	likeStore    model.LikeStore
	logger       *logger.Logger
}

func NewPost(
	postStore model.PostStore,
	commentStore model.CommentStore,
	likeStore model.LikeStore,
	logger *logger.Logger,
) *Post {
	return &Post{
		postStore:    postStore,
		commentStore: commentStore,
		likeStore:    likeStore,
		logger:       logger,
	}
}

func (s *Post) CreatePost(ctx context.Context, user model.User, body, imageURL string) (model.Post, error) {
	post, err := s.postStore.Create(ctx, model.Post{UserID: user.ID, Body: body, ImageURL: imageURL})
	if err != nil {
		return model.Post{}, fmt.Errorf("failed to create post: %w", err)
	}

	s.logger.Ctx(ctx).Debug("Post service: post created", "post_id", post.ID, "user_id", user.ID)

	return post, nil
}

func (s *Post) ListPosts(ctx context.Context, sorting model.PostSorting) ([]model.PostWithLikes, error) {
	if sorting == "" {
		sorting = model.PostSortingNew
	}

	posts, err := s.postStore.List(ctx, sorting)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	return posts, nil
}

func (s *Post) GetPostWithComments(ctx context.Context, postID int64) (model.PostWithComments, error) {
	post, err := s.findPost(ctx, postID)
	if err != nil {
		return model.PostWithComments{}, err
	}

	comments, err := s.commentStore.ListByPost(ctx, postID)
	if err != nil {
		return model.PostWithComments{}, fmt.Errorf("failed to list comments: %w", err)
	}

	return model.PostWithComments{Post: post, Comments: comments}, nil
}

func (s *Post) CreateComment(ctx context.Context, user model.User, postID int64, body string) (model.Comment, error) {
	if _, err := s.findPost(ctx, postID); err != nil {
		return model.Comment{}, err
	}

	comment, err := s.commentStore.Create(ctx, model.Comment{PostID: postID, UserID: user.ID, Body: body})
	if err != nil {
		return model.Comment{}, fmt.Errorf("failed to create comment: %w", err)
	}

	s.logger.Ctx(ctx).Debug("Post service: comment created", "comment_id", comment.ID, "post_id", postID)

	return comment, nil
}

func (s *Post) ListComments(ctx context.Context, postID int64) ([]model.Comment, error) {
	comments, err := s.commentStore.ListByPost(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	return comments, nil
}

func (s *Post) LikePost(ctx context.Context, user model.User, postID int64) (model.Like, error) {
	if _, err := s.findPost(ctx, postID); err != nil {
		return model.Like{}, err
	}

	like, err := s.likeStore.Create(ctx, model.Like{PostID: postID, UserID: user.ID})
	if err != nil {
		return model.Like{}, fmt.Errorf("failed to like post: %w", err)
	}

	s.logger.Ctx(ctx).Debug("Post service: post liked", "post_id", postID, "user_id", user.ID)

	return like, nil
}

func (s *Post) findPost(ctx context.Context, postID int64) (model.PostWithLikes, error) {
	post, err := s.postStore.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.PostWithLikes{}, model.ErrPostNotFound
		}
		return model.PostWithLikes{}, fmt.Errorf("failed to get post by id: %w", err)
	}

	return post, nil
}
