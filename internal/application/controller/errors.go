package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"todo-api/internal/domain/model"
	"todo-api/pkg/log"
	"todo-api/pkg/msg"
	"todo-api/pkg/resource"
)

type errorMapping struct {
	target error
	status int
	key    string
}

var errorMappings = []errorMapping{
	{model.ErrNotAuthenticated, http.StatusUnauthorized, "auth.error.unauthenticated"},
	{model.ErrInvalidCredentials, http.StatusUnauthorized, "auth.error.invalid-credentials"},
	{model.ErrTooManyAttempts, http.StatusTooManyRequests, "auth.error.too-many-attempts"},
	{model.ErrTodoNotFound, http.StatusNotFound, "todo.error.not-found"},
	{model.ErrSubtaskNotFound, http.StatusNotFound, "todo.error.subtask-not-found"},
	{model.ErrTitleRequired, http.StatusBadRequest, "todo.error.title-required"},
	{model.ErrInvalidStatus, http.StatusBadRequest, "todo.error.invalid-status"},
	{model.ErrInvalidFilter, http.StatusBadRequest, "todo.error.invalid-filter"},
	{model.ErrPasswordMismatch, http.StatusBadRequest, "settings.error.password-mismatch"},
	{model.ErrInvalidTheme, http.StatusBadRequest, "profile.error.invalid-theme"},
	{model.ErrProviderUnavailable, http.StatusBadGateway, "app.error.provider"},
}

// errorResponse writes {"error": message} with the status matching err.
func errorResponse(c echo.Context, err error) error {
	for _, mapping := range errorMappings {
		if errors.Is(err, mapping.target) {
			return c.JSON(mapping.status, map[string]string{"error": msg.GetMessage(mapping.key)})
		}
	}

	if errors.Is(err, model.ErrPasswordTooShort) {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": msg.GetMessage("settings.error.password-too-short", resource.GetInt("app.auth.password-min-length")),
		})
	}

	var providerErr *model.ProviderError
	if errors.As(err, &providerErr) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": providerErr.Message})
	}

	log.Error(msg.GetMessage("app.error.internal"), zap.Error(err))
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": msg.GetMessage("app.error.internal")})
}

// bindAndValidate decodes the request body into dto and runs its validate tags.
func bindAndValidate(c echo.Context, dto any) error {
	if err := c.Bind(dto); err != nil {
		return err
	}
	return c.Validate(dto)
}

func invalidRequest(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, map[string]string{"error": msg.GetMessage("app.error.invalid-request")})
}
