package handler

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/MTomala-IT/storeapi/internal/mocks"
	"github.com/MTomala-IT/storeapi/internal/model"
	"github.com/MTomala-IT/storeapi/internal/testutil"
)

func newPostApp(svc PostService, authenticated bool) *fiber.App {
	cm := newContextManager()
	h := NewPost(svc, cm, testutil.MakeNoopLogger())

	app := newTestApp()
	if authenticated {
		app.Use(withUser(cm, testUser))
	}
	app.Post("/post", h.CreatePost)
	app.Get("/post", h.ListPosts)
	app.Get("/post/:id", h.GetPost)
	app.Get("/post/:id/comment", h.ListComments)
	app.Post("/comment", h.CreateComment)
	app.Post("/like", h.LikePost)
	return app
}

func TestPost_CreatePost(t *testing.T) {
	t.Parallel()

	svc := mocks.NewPostService(t)
	svc.On("CreatePost", mock.Anything, testUser, "hello", "").
		Return(model.Post{ID: 1, UserID: testUser.ID, Body: "hello"}, nil).Once()

	app := newPostApp(svc, true)
	status, _, raw := doRequest(t, app, jsonRequest(t, fiber.MethodPost, "/post", PostRequest{Body: "hello"}))

	require.Equal(t, fiber.StatusCreated, status)

	var got model.Post
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, testUser.ID, got.UserID)
	assert.Equal(t, "hello", got.Body)
}

func TestPost_CreatePost_Validation(t *testing.T) {
	t.Parallel()

	app := newPostApp(mocks.NewPostService(t), true)

	status, _, raw := doRequest(t, app, jsonRequest(t, fiber.MethodPost, "/post", PostRequest{}))
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	assert.Equal(t, "body: cannot be blank.", decodeDetail(t, raw))

	status, _, _ = doRequest(t, app, jsonRequest(t, fiber.MethodPost, "/post", PostRequest{Body: "b", ImageURL: "not a url"}))
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
}

func TestPost_CreatePost_Anonymous(t *testing.T) {
	t.Parallel()

	app := newPostApp(mocks.NewPostService(t), false)
	status, header, raw := doRequest(t, app, jsonRequest(t, fiber.MethodPost, "/post", PostRequest{Body: "hello"}))

	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "Bearer", header.Get(fiber.HeaderWWWAuthenticate))
	assert.Equal(t, "Not authenticated", decodeDetail(t, raw))
}

func TestPost_ListPosts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		target      string
		wantSorting model.PostSorting
	}{
		{name: "default", target: "/post", wantSorting: ""},
		{name: "new", target: "/post?sorting=new", wantSorting: model.PostSortingNew},
		{name: "old", target: "/post?sorting=old", wantSorting: model.PostSortingOld},
		{name: "most likes", target: "/post?sorting=most_likes", wantSorting: model.PostSortingMostLikes},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewPostService(t)
			svc.On("ListPosts", mock.Anything, tt.wantSorting).Return([]model.PostWithLikes{
				{Post: model.Post{ID: 2, Body: "b"}, Likes: 3},
			}, nil).Once()

			status, _, raw := doRequest(t, newPostApp(svc, false), jsonRequest(t, fiber.MethodGet, tt.target, nil))
			require.Equal(t, fiber.StatusOK, status)

			var got []model.PostWithLikes
			require.NoError(t, json.Unmarshal(raw, &got))
			require.Len(t, got, 1)
			assert.Equal(t, 3, got[0].Likes)
		})
	}
}

func TestPost_ListPosts_InvalidSorting(t *testing.T) {
	t.Parallel()

	status, _, raw := doRequest(t, newPostApp(mocks.NewPostService(t), false), jsonRequest(t, fiber.MethodGet, "/post?sorting=random", nil))

	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	assert.Equal(t, "sorting: must be a valid value.", decodeDetail(t, raw))
}

func TestPost_GetPost(t *testing.T) {
	t.Parallel()

	svc := mocks.NewPostService(t)
	svc.On("GetPostWithComments", mock.Anything, int64(5)).Return(model.PostWithComments{
		Post:     model.PostWithLikes{Post: model.Post{ID: 5, Body: "p"}},
		Comments: []model.Comment{{ID: 1, PostID: 5, Body: "c"}},
	}, nil).Once()

	status, _, raw := doRequest(t, newPostApp(svc, false), jsonRequest(t, fiber.MethodGet, "/post/5", nil))
	require.Equal(t, fiber.StatusOK, status)

	var got struct {
		Post     model.PostWithLikes `json:"post"`
		Comments []model.Comment     `json:"comments"`
	}
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, int64(5), got.Post.ID)
	require.Len(t, got.Comments, 1)
	assert.Equal(t, "c", got.Comments[0].Body)
}

func TestPost_GetPost_Errors(t *testing.T) {
	t.Parallel()

	svc := mocks.NewPostService(t)
	svc.On("GetPostWithComments", mock.Anything, int64(404)).Return(model.PostWithComments{}, model.ErrPostNotFound).Once()
	app := newPostApp(svc, false)

	status, _, raw := doRequest(t, app, jsonRequest(t, fiber.MethodGet, "/post/404", nil))
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "Post not found", decodeDetail(t, raw))

	status, _, _ = doRequest(t, app, jsonRequest(t, fiber.MethodGet, "/post/abc", nil))
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)

	status, _, _ = doRequest(t, app, jsonRequest(t, fiber.MethodGet, "/post/0", nil))
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
}

func TestPost_ListComments(t *testing.T) {
	t.Parallel()

	svc := mocks.NewPostService(t)
	svc.On("ListComments", mock.Anything, int64(5)).Return([]model.Comment{{ID: 1, PostID: 5}, {ID: 2, PostID: 5}}, nil).Once()

	status, _, raw := doRequest(t, newPostApp(svc, false), jsonRequest(t, fiber.MethodGet, "/post/5/comment", nil))
	require.Equal(t, fiber.StatusOK, status)

	var got []model.Comment
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Len(t, got, 2)
}

func TestPost_CreateComment(t *testing.T) {
	t.Parallel()

	svc := mocks.NewPostService(t)
	svc.On("CreateComment", mock.Anything, testUser, int64(5), "nice").
		Return(model.Comment{ID: 9, PostID: 5, UserID: testUser.ID, Body: "nice"}, nil).Once()
	svc.On("CreateComment", mock.Anything, testUser, int64(6), "nice").
		Return(model.Comment{}, model.ErrPostNotFound).Once()
	app := newPostApp(svc, true)

	status, _, raw := doRequest(t, app, jsonRequest(t, fiber.MethodPost, "/comment", CommentRequest{Body: "nice", PostID: 5}))
	require.Equal(t, fiber.StatusCreated, status)
	var got model.Comment
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, int64(9), got.ID)

	status, _, raw = doRequest(t, app, jsonRequest(t, fiber.MethodPost, "/comment", CommentRequest{Body: "nice", PostID: 6}))
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "Post not found", decodeDetail(t, raw))

	status, _, _ = doRequest(t, app, jsonRequest(t, fiber.MethodPost, "/comment", CommentRequest{PostID: 5}))
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
}

func TestPost_LikePost(t *testing.T) {
	t.Parallel()

	svc := mocks.NewPostService(t)
	svc.On("LikePost", mock.Anything, testUser, int64(5)).
		Return(model.Like{ID: 1, PostID: 5, UserID: testUser.ID}, nil).Once()
	svc.On("LikePost", mock.Anything, testUser, int64(6)).
		Return(model.Like{}, errors.New("db down")).Once()
	app := newPostApp(svc, true)

	status, _, raw := doRequest(t, app, jsonRequest(t, fiber.MethodPost, "/like", LikeRequest{PostID: 5}))
	require.Equal(t, fiber.StatusCreated, status)
	var got model.Like
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, model.Like{ID: 1, PostID: 5, UserID: testUser.ID}, got)

	status, _, _ = doRequest(t, app, jsonRequest(t, fiber.MethodPost, "/like", LikeRequest{PostID: 6}))
	assert.Equal(t, fiber.StatusInternalServerError, status)

	status, _, _ = doRequest(t, app, jsonRequest(t, fiber.MethodPost, "/like", LikeRequest{}))
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
}
