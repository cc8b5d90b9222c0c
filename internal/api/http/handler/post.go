package handler

import (
	"context"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/gofiber/fiber/v2"

	"github.com/MTomala-IT/storeapi/internal/logger"
	"github.com/MTomala-IT/storeapi/internal/model"
)

// PostService defines the post, comment and like operations.
type PostService interface {
	CreatePost(ctx context.Context, user model.User, body, imageURL string) (model.Post, error)
	ListPosts(ctx context.Context, sorting model.PostSorting) ([]model.PostWithLikes, error)
	GetPostWithComments(ctx context.Context, postID int64) (model.PostWithComments, error)
	CreateComment(ctx context.Context, user model.User, postID int64, body string) (model.Comment, error)
	ListComments(ctx context.Context, postID int64) ([]model.Comment, error)
	LikePost(ctx context.Context, user model.User, postID int64) (model.Like, error)
}

type PostRequest struct {
	Body     string `json:"body"`
	ImageURL string `json:"image_url"`
}

func (r PostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Body, validation.Required),
		validation.Field(&r.ImageURL, is.URL),
	)
}

type CommentRequest struct {
	Body   string `json:"body"`
	PostID int64  `json:"post_id"`
}

func (r CommentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Body, validation.Required),
		validation.Field(&r.PostID, validation.Required, validation.Min(int64(1))),
	)
}

type LikeRequest struct {
	PostID int64 `json:"post_id"`
}

func (r LikeRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.PostID, validation.Required, validation.Min(int64(1))),
	)
}

type listPostsQuery struct {
	Sorting string `json:"sorting"`
}

func (q listPostsQuery) Validate() error {
	return validation.ValidateStruct(&q,
		validation.Field(&q.Sorting, validation.In(
			string(model.PostSortingNew),
			string(model.PostSortingOld),
			string(model.PostSortingMostLikes),
		)),
	)
}

// Post handles the post, comment and like endpoints.
type Post struct {
	postService    PostService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewPost creates a new Post handler.
func NewPost(postService PostService, contextManager model.ContextManager, logger *logger.Logger) *Post {
	return &Post{postService: postService, contextManager: contextManager, logger: logger}
}

func (h *Post) CreatePost(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := h.currentUser(ctx)
	if err != nil {
		return err
	}

	var req PostRequest
	if err := c.BodyParser(&req); err != nil {
		return errBadBody
	}
	if err := req.Validate(); err != nil {
		return err
	}

	post, err := h.postService.CreatePost(ctx, user, req.Body, req.ImageURL)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

func (h *Post) ListPosts(c *fiber.Ctx) error {
	query := listPostsQuery{Sorting: c.Query("sorting")}
	if err := query.Validate(); err != nil {
		return err
	}

	posts, err := h.postService.ListPosts(c.UserContext(), model.PostSorting(query.Sorting))
	if err != nil {
		return err
	}

	return c.JSON(posts)
}

func (h *Post) GetPost(c *fiber.Ctx) error {
	postID, err := postIDParam(c)
	if err != nil {
		return err
	}

	post, err := h.postService.GetPostWithComments(c.UserContext(), postID)
	if err != nil {
		return err
	}

	return c.JSON(post)
}

func (h *Post) ListComments(c *fiber.Ctx) error {
	postID, err := postIDParam(c)
	if err != nil {
		return err
	}

	comments, err := h.postService.ListComments(c.UserContext(), postID)
	if err != nil {
		return err
	}

	return c.JSON(comments)
}

func (h *Post) CreateComment(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := h.currentUser(ctx)
	if err != nil {
		return err
	}

	var req CommentRequest
	if err := c.BodyParser(&req); err != nil {
		return errBadBody
	}
	if err := req.Validate(); err != nil {
		return err
	}

	comment, err := h.postService.CreateComment(ctx, user, req.PostID, req.Body)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(comment)
}

func (h *Post) LikePost(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := h.currentUser(ctx)
	if err != nil {
		return err
	}

	var req LikeRequest
	if err := c.BodyParser(&req); err != nil {
		return errBadBody
	}
	if err := req.Validate(); err != nil {
		return err
	}

	like, err := h.postService.LikePost(ctx, user, req.PostID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(like)
}

func (h *Post) currentUser(ctx context.Context) (model.User, error) {
	user, ok := h.contextManager.GetUserFromContext(ctx)
	if !ok {
		return model.User{}, model.NewInvalidCredentialsError("Not authenticated")
	}
	return user, nil
}

func postIDParam(c *fiber.Ctx) (int64, error) {
	postID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || postID < 1 {
		return 0, fiber.NewError(fiber.StatusUnprocessableEntity, "id: must be a positive integer.")
	}
	return postID, nil
}
