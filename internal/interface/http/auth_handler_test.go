package handlers

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignupMissingFields(t *testing.T) {
	env := newTestEnv(t, nil)

	for _, body := range []map[string]any{
		{"username": "u1"},
		{"password": "p1"},
		{},
	} {
		w := env.do(t, http.MethodPost, "/signup", "", body)
		// Legacy contract: validation failures on signup are 200s with a
		// body-level flag, not 4xx.
		assert.Equal(t, http.StatusOK, w.Code)
		resp := decodeBody(t, w)
		assert.Equal(t, false, resp["success"])
		assert.Equal(t, "Please include both username and password to signup.", resp["msg"])
	}
}

func TestSignupAndSignin(t *testing.T) {
	env := newTestEnv(t, nil)

	w := env.do(t, http.MethodPost, "/signup", "", map[string]any{"name": "User One", "username": "u1", "password": "p1"})
	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody(t, w)
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "Successfully created new user.", resp["msg"])

	w = env.do(t, http.MethodPost, "/signin", "", map[string]any{"username": "u1", "password": "p1"})
	require.Equal(t, http.StatusOK, w.Code)
	resp = decodeBody(t, w)
	assert.Equal(t, true, resp["success"])
	token, _ := resp["token"].(string)
	assert.True(t, strings.HasPrefix(token, "JWT "), "token must carry the legacy JWT scheme prefix, got %q", token)

	claims, err := env.jwt.ParseToken(strings.TrimPrefix(token, "JWT "))
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.Username)
	assert.NotEmpty(t, claims.UserID)
}

func TestSignupDuplicateUsername(t *testing.T) {
	env := newTestEnv(t, nil)

	w := env.do(t, http.MethodPost, "/signup", "", map[string]any{"username": "u1", "password": "p1"})
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodPost, "/signup", "", map[string]any{"username": "u1", "password": "other"})
	// Duplicate is a distinct message, never a generic 500.
	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody(t, w)
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "A user with that username already exists.", resp["message"])
}

func TestSignupStoreFaultPassedThrough(t *testing.T) {
	env := newTestEnv(t, nil)
	env.users.failCreate = assert.AnError

	w := env.do(t, http.MethodPost, "/signup", "", map[string]any{"username": "u1", "password": "p1"})
	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody(t, w)
	assert.Equal(t, false, resp["success"])
	assert.Contains(t, resp["message"], assert.AnError.Error())
}

func TestSigninFailures(t *testing.T) {
	env := newTestEnv(t, nil)
	w := env.do(t, http.MethodPost, "/signup", "", map[string]any{"username": "u1", "password": "p1"})
	require.Equal(t, http.StatusOK, w.Code)

	cases := []struct {
		name string
		body map[string]any
	}{
		{"unknown user", map[string]any{"username": "nobody", "password": "p1"}},
		{"wrong password", map[string]any{"username": "u1", "password": "wrong"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := env.do(t, http.MethodPost, "/signin", "", tc.body)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			resp := decodeBody(t, w)
			assert.Equal(t, false, resp["success"])
			assert.Equal(t, "Authentication failed.", resp["msg"])
		})
	}
}
