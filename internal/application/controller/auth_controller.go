package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"todo-api/internal/application/middleware"
	"todo-api/internal/domain/model"
	"todo-api/internal/domain/usecase/auth"
)

type AuthController struct {
	api     *echo.Group
	useCase auth.UseCase
	session *middleware.SessionAuth
}

func NewAuthController(api *echo.Group, useCase auth.UseCase, session *middleware.SessionAuth) *AuthController {
	return &AuthController{api: api, useCase: useCase, session: session}
}

// InitAuthRoutes initializes sign-in, sign-up and sign-out routes
func (controller *AuthController) InitAuthRoutes() {
	controller.api.POST("/auth/sign-in", controller.SignIn)
	controller.api.POST("/auth/sign-up", controller.SignUp)
	controller.api.POST("/auth/sign-out", controller.SignOut, controller.session.Required())
}

// SignIn godoc
// @Summary Sign in with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body model.SignInDTO true "Credentials"
// @Success 200 {object} entity.AuthSession "Provider session"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Invalid email or password"
// @Failure 429 {object} map[string]string "Too many attempts"
// @Failure 502 {object} map[string]string "Auth provider unavailable"
// @Router /auth/sign-in [post]
func (controller *AuthController) SignIn(c echo.Context) error {
	var dto model.SignInDTO
	if err := bindAndValidate(c, &dto); err != nil {
		return invalidRequest(c)
	}

	session, err := controller.useCase.SignIn(c.Request().Context(), dto)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, session)
}

// SignUp godoc
// @Summary Create an account
// @Description Sends a confirmation email that redirects back to the dashboard
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body model.SignUpDTO true "Credentials"
// @Success 201 {object} model.MessageResponse "Confirmation email sent"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Router /auth/sign-up [post]
func (controller *AuthController) SignUp(c echo.Context) error {
	var dto model.SignUpDTO
	if err := bindAndValidate(c, &dto); err != nil {
		return invalidRequest(c)
	}

	response, err := controller.useCase.SignUp(c.Request().Context(), dto)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusCreated, response)
}

// SignOut godoc
// @Summary Sign out
// @Tags auth
// @Security BearerAuth
// @Success 204 "Signed out"
// @Failure 401 {object} map[string]string "Authentication required"
// @Router /auth/sign-out [post]
func (controller *AuthController) SignOut(c echo.Context) error {
	if err := controller.useCase.SignOut(c.Request().Context(), middleware.SessionFrom(c)); err != nil {
		return errorResponse(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
