package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petr3232-cloud/syndicate-backend/internal/telegram"
)

func TestHandleAuth_Success(t *testing.T) {
	app := &mockApp{
		authenticateFn: func(_ context.Context, initData string) (string, error) {
			assert.Equal(t, "user=x&hash=y", initData)
			return "signed-token", nil
		},
	}
	ts := newTestServer(t, app)

	rec := ts.do(t, http.MethodPost, "/auth", `{"initData":"user=x&hash=y"}`, "")
	assert.Equal(t, 200, rec.Code)

	var resp authResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
	assert.Equal(t, "signed-token", resp.Token)
}

func TestHandleAuth_MissingInitData(t *testing.T) {
	ts := newTestServer(t, &mockApp{})

	rec := ts.do(t, http.MethodPost, "/auth", `{}`, "")
	assert.Equal(t, 400, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ok":false`)
}

func TestHandleAuth_MalformedBody(t *testing.T) {
	ts := newTestServer(t, &mockApp{})

	rec := ts.do(t, http.MethodPost, "/auth", `{not json`, "")
	assert.Equal(t, 400, rec.Code)
}

func TestHandleAuth_BadSignature(t *testing.T) {
	app := &mockApp{
		authenticateFn: func(_ context.Context, _ string) (string, error) {
			return "", telegram.ErrInvalidSignature
		},
	}
	ts := newTestServer(t, app)

	rec := ts.do(t, http.MethodPost, "/auth", `{"initData":"user=x&hash=bad"}`, "")
	assert.Equal(t, 403, rec.Code)
}

func TestHandleAuth_MissingHash(t *testing.T) {
	app := &mockApp{
		authenticateFn: func(_ context.Context, _ string) (string, error) {
			return "", telegram.ErrHashMissing
		},
	}
	ts := newTestServer(t, app)

	rec := ts.do(t, http.MethodPost, "/auth", `{"initData":"user=x"}`, "")
	assert.Equal(t, 403, rec.Code)
}

func TestHandleAuth_StoreFailure(t *testing.T) {
	app := &mockApp{
		authenticateFn: func(_ context.Context, _ string) (string, error) {
			return "", errors.New("connection refused")
		},
	}
	ts := newTestServer(t, app)

	rec := ts.do(t, http.MethodPost, "/auth", `{"initData":"user=x&hash=y"}`, "")
	assert.Equal(t, 500, rec.Code)
}
