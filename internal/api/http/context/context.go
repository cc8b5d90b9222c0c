package context

import (
	"context"

	"github.com/MTomala-IT/storeapi/internal/model"
)

type userKey struct{}

// Manager keeps the authenticated user on the request context.
type Manager struct{}

func NewManager() *Manager {
	return &Manager{}
}

// SetUserToContext returns a copy of ctx carrying user.
func (m *Manager) SetUserToContext(ctx context.Context, user model.User) context.Context {
	return context.WithValue(ctx, userKey{}, user)
}

// GetUserFromContext returns the user stored by SetUserToContext.
// The boolean is false for anonymous requests.
func (m *Manager) GetUserFromContext(ctx context.Context) (model.User, bool) {
	user, ok := ctx.Value(userKey{}).(model.User)
	if !ok || user.Email == "" {
		return model.User{}, false
	}
	return user, true
}
