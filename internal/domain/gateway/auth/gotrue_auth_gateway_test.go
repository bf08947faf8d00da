package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-api/internal/domain/model"
	httpclient "todo-api/pkg/http"
)

func newGateway(t *testing.T, handler http.HandlerFunc) *GoTrueAuthGateway {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := httpclient.NewHttpClient(server.URL+"/auth/v1", httpclient.ClientOptions{})
	return NewGoTrueAuthGateway(client, GoTrueConfig{
		APIKey:          "anon-key",
		EmailRedirectTo: "http://localhost:3000/dashboard",
	})
}

func TestSignIn(t *testing.T) {
	gateway := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/token", r.URL.Path)
		assert.Equal(t, "password", r.URL.Query().Get("grant_type"))
		assert.Equal(t, "anon-key", r.Header.Get("apikey"))

		var body credentials
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if body.Password != "secret1" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"invalid_grant","error_description":"Invalid login credentials"}`))
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"jwt","token_type":"bearer","expires_in":3600,"refresh_token":"r","user":{"id":"u-1","email":"ana@example.com"}}`))
	})

	session, err := gateway.SignIn(context.Background(), "ana@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "jwt", session.AccessToken)
	assert.Equal(t, 3600, session.ExpiresIn)
	assert.Equal(t, "u-1", session.User.ID)

	_, err = gateway.SignIn(context.Background(), "ana@example.com", "wrong")
	assert.ErrorIs(t, err, model.ErrInvalidCredentials)
}

func TestSignUpSendsRedirect(t *testing.T) {
	gateway := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/signup", r.URL.Path)
		assert.Equal(t, "http://localhost:3000/dashboard", r.URL.Query().Get("redirect_to"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"u-2","email":"bo@example.com"}`))
	})

	user, err := gateway.SignUp(context.Background(), "bo@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "u-2", user.ID)
}

func TestUpdateUserRejection(t *testing.T) {
	gateway := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "Bearer jwt", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"code":422,"error_code":"same_password","msg":"New password should be different from the old password."}`))
	})

	err := gateway.UpdatePassword(context.Background(), "jwt", "secret1")

	var providerErr *model.ProviderError
	require.True(t, errors.As(err, &providerErr))
	assert.Equal(t, http.StatusUnprocessableEntity, providerErr.StatusCode)
	assert.Equal(t, "New password should be different from the old password.", providerErr.Message)
}

func TestServerFailureIsUnavailable(t *testing.T) {
	gateway := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	err := gateway.SignOut(context.Background(), "jwt")
	assert.ErrorIs(t, err, model.ErrProviderUnavailable)
}
