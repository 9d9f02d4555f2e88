package api_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMe(t *testing.T) {
	env := newTestEnv(t)
	userID, token := env.registerTestUser(t, "me@example.com")

	resp := env.doGet(t, "/users/me", token)
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	body := decodeBody(t, resp)
	assert.Equal(t, userID, body["id"])
	assert.Equal(t, "me@example.com", body["email"])
	// The hash never leaves the service.
	assert.NotContains(t, body, "password_hash")
}

func TestMeRequiresToken(t *testing.T) {
	env := newTestEnv(t)

	resp := env.doGet(t, "/users/me", "")
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestMeRejectsGarbageToken(t *testing.T) {
	env := newTestEnv(t)

	resp := env.doGet(t, "/users/me", "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestGetOtherUserProfile(t *testing.T) {
	env := newTestEnv(t)
	otherID, _ := env.registerTestUser(t, "other@example.com")
	_, token := env.registerTestUser(t, "viewer@example.com")

	// Profile reads by id are open to any authenticated user.
	resp := env.doGet(t, "/users/"+otherID, token)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "other@example.com", decodeBody(t, resp)["email"])
}

func TestGetUserNotFoundEndpoint(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.registerTestUser(t, "viewer2@example.com")

	resp := env.doGet(t, "/users/"+uuid.NewString(), token)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestUpdateMe(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.registerTestUser(t, "patchme@example.com")

	resp := env.doJSON(t, http.MethodPut, "/users/me", token, gin.H{
		"age":            33,
		"preferred_mode": "beast",
	})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	body := decodeBody(t, resp)
	assert.Equal(t, 33.0, body["age"])
	assert.Equal(t, "beast", body["preferred_mode"])
	assert.Equal(t, "patchme@example.com", body["email"])
}

func TestUpdateMeEmailConflict(t *testing.T) {
	env := newTestEnv(t)
	env.registerTestUser(t, "taken@example.com")
	_, token := env.registerTestUser(t, "patcher@example.com")

	resp := env.doJSON(t, http.MethodPut, "/users/me", token, gin.H{
		"email": "taken@example.com",
	})
	assert.Equal(t, http.StatusConflict, resp.Code)
}

func TestUpdateMeInvalidMode(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.registerTestUser(t, "badmode@example.com")

	resp := env.doJSON(t, http.MethodPut, "/users/me", token, gin.H{
		"preferred_mode": "turbo",
	})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}
