package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConnection_InvalidDSN(t *testing.T) {
	_, err := NewConnection(context.Background(), "://not a dsn")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse postgres dsn")
}

func TestConnection_PingWithoutPool(t *testing.T) {
	conn := &Connection{}

	err := conn.Ping(context.Background())
	require.Error(t, err)
	assert.NoError(t, conn.Close())
}
