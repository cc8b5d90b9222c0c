package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/MTomala-IT/storeapi/internal/hasher"
	servermocks "github.com/MTomala-IT/storeapi/internal/mocks"
	"github.com/MTomala-IT/storeapi/internal/model"
	"github.com/MTomala-IT/storeapi/internal/testutil"
	"github.com/MTomala-IT/storeapi/internal/token"
)

func newTestAuth(t *testing.T, store model.UserStore) (*Auth, *token.JWT) {
	t.Helper()
	jwtManager, err := token.NewJWT("test-secret")
	require.NoError(t, err)

	log := testutil.MakeNoopLogger()
	tokens := NewTokenService(jwtManager, 30*time.Minute, 24*time.Hour, log)
	return NewAuth(store, hasher.NewBcrypt(bcrypt.MinCost, 1), tokens, log), jwtManager
}

func TestAuth_RegistrationFlow(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewMemoryUserStore()
	a, jwtManager := newTestAuth(t, store)

	reg, err := a.Register(ctx, "a@example.net", "pw1")
	require.NoError(t, err)
	assert.NotZero(t, reg.User.ID)
	assert.Equal(t, "a@example.net", reg.User.Email)
	assert.False(t, reg.User.Confirmed)
	assert.NotEqual(t, "pw1", reg.User.PasswordHash)
	require.NotEmpty(t, reg.ConfirmationToken)

	_, err = a.Register(ctx, "a@example.net", "pw1")
	require.ErrorIs(t, err, model.ErrDuplicateUser)
	assert.Equal(t, "A user with that email already exists", err.Error())

	_, err = a.Authenticate(ctx, "a@example.net", "pw1")
	require.ErrorIs(t, err, model.ErrUnconfirmedAccount)
	_, err = a.Login(ctx, "a@example.net", "pw1")
	require.ErrorIs(t, err, model.ErrUnconfirmedAccount)

	email, err := a.Confirm(ctx, reg.ConfirmationToken)
	require.NoError(t, err)
	assert.Equal(t, "a@example.net", email)

	user, err := a.Authenticate(ctx, "a@example.net", "pw1")
	require.NoError(t, err)
	assert.True(t, user.Confirmed)

	access, err := a.Login(ctx, "a@example.net", "pw1")
	require.NoError(t, err)
	subject, err := jwtManager.ExtractSubject(access, model.TokenPurposeAccess)
	require.NoError(t, err)
	assert.Equal(t, "a@example.net", subject)

	resolved, err := a.Resolve(ctx, access)
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, resolved.ID)
}

func TestAuth_Confirm_Idempotent(t *testing.T) {
	ctx := context.Background()
	a, _ := newTestAuth(t, testutil.NewMemoryUserStore())

	reg, err := a.Register(ctx, "a@example.net", "pw1")
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		email, err := a.Confirm(ctx, reg.ConfirmationToken)
		require.NoError(t, err)
		assert.Equal(t, "a@example.net", email)
	}
}

func TestAuth_Authenticate_IndistinguishableFailures(t *testing.T) {
	ctx := context.Background()
	a, _ := newTestAuth(t, testutil.NewMemoryUserStore())

	reg, err := a.Register(ctx, "a@example.net", "pw1")
	require.NoError(t, err)
	_, err = a.Confirm(ctx, reg.ConfirmationToken)
	require.NoError(t, err)

	_, notFound := a.Authenticate(ctx, "nobody@example.net", "pw1")
	_, wrongPassword := a.Authenticate(ctx, "a@example.net", "wrong")

	require.ErrorIs(t, notFound, model.ErrInvalidCredentials)
	require.ErrorIs(t, wrongPassword, model.ErrInvalidCredentials)
	assert.Equal(t, notFound.Error(), wrongPassword.Error())
}

func TestAuth_TokenPurposes(t *testing.T) {
	ctx := context.Background()
	a, _ := newTestAuth(t, testutil.NewMemoryUserStore())

	reg, err := a.Register(ctx, "a@example.net", "pw1")
	require.NoError(t, err)

	_, err = a.Resolve(ctx, reg.ConfirmationToken)
	require.ErrorIs(t, err, model.ErrInvalidToken)

	_, err = a.Confirm(ctx, reg.ConfirmationToken)
	require.NoError(t, err)
	access, err := a.Login(ctx, "a@example.net", "pw1")
	require.NoError(t, err)

	_, err = a.Confirm(ctx, access)
	require.ErrorIs(t, err, model.ErrInvalidToken)
}

func TestAuth_Resolve_UserGone(t *testing.T) {
	ctx := context.Background()
	a, jwtManager := newTestAuth(t, testutil.NewMemoryUserStore())

	access, err := jwtManager.Issue("ghost@example.net", model.TokenPurposeAccess, time.Minute)
	require.NoError(t, err)

	_, err = a.Resolve(ctx, access)
	require.ErrorIs(t, err, model.ErrInvalidCredentials)
	assert.Equal(t, "Could not find user for this token", err.Error())
}

func TestAuth_Register_StoreErrors(t *testing.T) {
	ctx := context.Background()
	log := testutil.MakeNoopLogger()

	t.Run("lookup fails", func(t *testing.T) {
		store := servermocks.NewUserStore(t)
		store.On("GetByEmail", mock.Anything, "a@example.net").Return(model.User{}, assert.AnError).Once()

		a := NewAuth(store, servermocks.NewPasswordHasher(t), NewTokenService(servermocks.NewTokenManager(t), time.Minute, time.Hour, log), log)

		_, err := a.Register(ctx, "a@example.net", "pw1")
		require.ErrorIs(t, err, assert.AnError)
		assert.Contains(t, err.Error(), "failed to get user by email")
	})

	t.Run("insert races with another registration", func(t *testing.T) {
		store := servermocks.NewUserStore(t)
		hash := servermocks.NewPasswordHasher(t)
		store.On("GetByEmail", mock.Anything, "a@example.net").Return(model.User{}, model.ErrNotFound).Once()
		hash.On("Hash", mock.Anything, "pw1").Return("hashed", nil).Once()
		store.On("Create", mock.Anything, model.User{Email: "a@example.net", PasswordHash: "hashed"}).
			Return(model.User{}, model.ErrDuplicateUser).Once()

		a := NewAuth(store, hash, NewTokenService(servermocks.NewTokenManager(t), time.Minute, time.Hour, log), log)

		_, err := a.Register(ctx, "a@example.net", "pw1")
		require.ErrorIs(t, err, model.ErrDuplicateUser)
	})

	t.Run("hashing fails", func(t *testing.T) {
		store := servermocks.NewUserStore(t)
		hash := servermocks.NewPasswordHasher(t)
		store.On("GetByEmail", mock.Anything, "a@example.net").Return(model.User{}, model.ErrNotFound).Once()
		hash.On("Hash", mock.Anything, "pw1").Return("", assert.AnError).Once()

		a := NewAuth(store, hash, NewTokenService(servermocks.NewTokenManager(t), time.Minute, time.Hour, log), log)

		_, err := a.Register(ctx, "a@example.net", "pw1")
		require.ErrorIs(t, err, assert.AnError)
	})
}

func TestAuth_Confirm_Errors(t *testing.T) {
	ctx := context.Background()
	log := testutil.MakeNoopLogger()

	t.Run("expired token", func(t *testing.T) {
		manager := servermocks.NewTokenManager(t)
		manager.On("ExtractSubject", "tok", model.TokenPurposeConfirmation).Return("", model.ErrExpiredToken).Once()

		a := NewAuth(servermocks.NewUserStore(t), servermocks.NewPasswordHasher(t), NewTokenService(manager, time.Minute, time.Hour, log), log)

		_, err := a.Confirm(ctx, "tok")
		require.ErrorIs(t, err, model.ErrExpiredToken)
	})

	t.Run("unknown user", func(t *testing.T) {
		manager := servermocks.NewTokenManager(t)
		store := servermocks.NewUserStore(t)
		manager.On("ExtractSubject", "tok", model.TokenPurposeConfirmation).Return("a@example.net", nil).Once()
		store.On("SetConfirmed", mock.Anything, "a@example.net").Return(model.ErrNotFound).Once()

		a := NewAuth(store, servermocks.NewPasswordHasher(t), NewTokenService(manager, time.Minute, time.Hour, log), log)

		_, err := a.Confirm(ctx, "tok")
		require.ErrorIs(t, err, model.ErrInvalidCredentials)
	})

	t.Run("store failure", func(t *testing.T) {
		manager := servermocks.NewTokenManager(t)
		store := servermocks.NewUserStore(t)
		manager.On("ExtractSubject", "tok", model.TokenPurposeConfirmation).Return("a@example.net", nil).Once()
		store.On("SetConfirmed", mock.Anything, "a@example.net").Return(assert.AnError).Once()

		a := NewAuth(store, servermocks.NewPasswordHasher(t), NewTokenService(manager, time.Minute, time.Hour, log), log)

		_, err := a.Confirm(ctx, "tok")
		require.ErrorIs(t, err, assert.AnError)
		assert.Contains(t, err.Error(), "failed to confirm user")
	})
}
