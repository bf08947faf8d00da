package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/model"
	httpclient "todo-api/pkg/http"
)

type GoTrueConfig struct {
	// URL is the auth API root, e.g. https://project.example.co/auth/v1
	URL             string
	APIKey          string
	EmailRedirectTo string
}

// GoTrueAuthGateway talks to a GoTrue-compatible auth REST API.
type GoTrueAuthGateway struct {
	client *httpclient.Client
	config GoTrueConfig
}

var _ AuthGateway = (*GoTrueAuthGateway)(nil)

func NewGoTrueAuthGateway(client *httpclient.Client, config GoTrueConfig) *GoTrueAuthGateway {
	return &GoTrueAuthGateway{client: client, config: config}
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	AccessToken  string          `json:"access_token"`
	TokenType    string          `json:"token_type"`
	ExpiresIn    int             `json:"expires_in"`
	RefreshToken string          `json:"refresh_token"`
	User         entity.AuthUser `json:"user"`
}

type errorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
	ErrorCode        string `json:"error_code"`
	Msg              string `json:"msg"`
	Message          string `json:"message"`
}

func (e errorResponse) text() string {
	for _, candidate := range []string{e.Msg, e.ErrorDescription, e.Message, e.Error} {
		if candidate != "" {
			return candidate
		}
	}
	return ""
}

func (gateway *GoTrueAuthGateway) SignIn(ctx context.Context, email string, password string) (*entity.AuthSession, error) {
	var token tokenResponse
	var failure errorResponse
	status, err := gateway.request().
		WithMethod(httpclient.POST).
		WithPath("/token").
		WithQueryParams(map[string]string{"grant_type": "password"}).
		WithBody(credentials{Email: email, Password: password}).
		WithSuccessResp(&token).
		WithErrorResp(&failure).
		Execute(ctx)
	if err != nil {
		if status == http.StatusBadRequest || status == http.StatusUnauthorized {
			return nil, model.ErrInvalidCredentials
		}
		return nil, providerError("sign in", status, failure, err)
	}

	return &entity.AuthSession{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		TokenType:    token.TokenType,
		ExpiresIn:    token.ExpiresIn,
		User:         token.User,
	}, nil
}

func (gateway *GoTrueAuthGateway) SignUp(ctx context.Context, email string, password string) (*entity.AuthUser, error) {
	query := map[string]string{}
	if gateway.config.EmailRedirectTo != "" {
		query["redirect_to"] = gateway.config.EmailRedirectTo
	}

	var user entity.AuthUser
	var failure errorResponse
	status, err := gateway.request().
		WithMethod(httpclient.POST).
		WithPath("/signup").
		WithQueryParams(query).
		WithBody(credentials{Email: email, Password: password}).
		WithSuccessResp(&user).
		WithErrorResp(&failure).
		Execute(ctx)
	if err != nil {
		return nil, providerError("sign up", status, failure, err)
	}
	return &user, nil
}

func (gateway *GoTrueAuthGateway) SignOut(ctx context.Context, accessToken string) error {
	var failure errorResponse
	status, err := gateway.request().
		WithMethod(httpclient.POST).
		WithPath("/logout").
		WithHeader("Authorization", "Bearer "+accessToken).
		WithErrorResp(&failure).
		Execute(ctx)
	if err != nil {
		return providerError("sign out", status, failure, err)
	}
	return nil
}

func (gateway *GoTrueAuthGateway) UpdatePassword(ctx context.Context, accessToken string, password string) error {
	return gateway.updateUser(ctx, accessToken, map[string]string{"password": password})
}

func (gateway *GoTrueAuthGateway) UpdateEmail(ctx context.Context, accessToken string, email string) error {
	return gateway.updateUser(ctx, accessToken, map[string]string{"email": email})
}

func (gateway *GoTrueAuthGateway) updateUser(ctx context.Context, accessToken string, attributes map[string]string) error {
	var failure errorResponse
	status, err := gateway.request().
		WithMethod(httpclient.PUT).
		WithPath("/user").
		WithHeader("Authorization", "Bearer "+accessToken).
		WithBody(attributes).
		WithErrorResp(&failure).
		Execute(ctx)
	if err != nil {
		return providerError("update user", status, failure, err)
	}
	return nil
}

func (gateway *GoTrueAuthGateway) request() *httpclient.Request {
	request := gateway.client.Request()
	if gateway.config.APIKey != "" {
		request.WithHeader("apikey", gateway.config.APIKey)
	}
	return request
}

// providerError keeps 4xx rejections visible to the caller and folds the rest into ErrProviderUnavailable.
func providerError(operation string, status int, failure errorResponse, err error) error {
	var statusErr *httpclient.StatusError
	if errors.As(err, &statusErr) && status >= 400 && status < 500 {
		message := failure.text()
		if message == "" {
			message = fmt.Sprintf("%s rejected with status %d", operation, status)
		}
		return &model.ProviderError{StatusCode: status, Message: message}
	}
	return fmt.Errorf("%s: %w: %v", operation, model.ErrProviderUnavailable, err)
}
