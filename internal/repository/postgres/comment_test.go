package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MTomala-IT/storeapi/internal/model"
)

var commentColumns = []string{"id", "post_id", "user_id", "body", "created_at"}

func TestCommentRepository_Create(t *testing.T) {
	now := time.Now()
	db, mock := newMockDB(t)
	mock.ExpectQuery(`INSERT INTO comments \(post_id, user_id, body\) VALUES \(\$1, \$2, \$3\)`).
		WithArgs(int64(1), int64(7), "nice").
		WillReturnRows(sqlmock.NewRows(commentColumns).AddRow(5, 1, 7, "nice", now))

	got, err := NewCommentRepository(db).Create(context.Background(), model.Comment{PostID: 1, UserID: 7, Body: "nice"})
	require.NoError(t, err)
	assert.Equal(t, model.Comment{ID: 5, PostID: 1, UserID: 7, Body: "nice", CreatedAt: now}, got)
}

func TestCommentRepository_Create_Error(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`INSERT INTO comments`).WillReturnError(errors.New("fk violation"))

	_, err := NewCommentRepository(db).Create(context.Background(), model.Comment{PostID: 1, UserID: 7, Body: "nice"})
	require.EqualError(t, err, "failed to create comment: fk violation")
}

func TestCommentRepository_ListByPost(t *testing.T) {
	now := time.Now()
	db, mock := newMockDB(t)
	mock.ExpectQuery(`SELECT (.+) FROM comments WHERE post_id = \$1 ORDER BY id`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(commentColumns).
			AddRow(1, 1, 7, "first", now).
			AddRow(2, 1, 8, "second", now))

	got, err := NewCommentRepository(db).ListByPost(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "second", got[1].Body)
	assert.Equal(t, int64(8), got[1].UserID)
}
