package testutil

import (
	"github.com/MTomala-IT/storeapi/internal/logger"
)

func MakeNoopLogger() *logger.Logger {
	return logger.NewNop()
}
