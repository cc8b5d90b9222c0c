package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	httpctx "github.com/MTomala-IT/storeapi/internal/api/http/context"
	"github.com/MTomala-IT/storeapi/internal/model"
	"github.com/MTomala-IT/storeapi/internal/testutil"
)

var testUser = model.User{ID: 7, Email: "a@example.net", Confirmed: true}

func newTestApp() *fiber.App {
	return fiber.New(fiber.Config{ErrorHandler: NewErrorHandler(testutil.MakeNoopLogger())})
}

// withUser stands in for the authentication middleware.
func withUser(cm model.ContextManager, user model.User) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.SetUserContext(cm.SetUserToContext(c.UserContext(), user))
		return c.Next()
	}
}

func newContextManager() model.ContextManager {
	return httpctx.NewManager()
}

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return req
}

func doRequest(t *testing.T, app *fiber.App, req *http.Request) (int, http.Header, []byte) {
	t.Helper()

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, resp.Header, raw
}

func decodeDetail(t *testing.T, raw []byte) string {
	t.Helper()

	var body struct {
		Detail string `json:"detail"`
	}
	require.NoError(t, json.Unmarshal(raw, &body))
	return body.Detail
}
