package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"todo-api/internal/application/middleware"
	"todo-api/internal/domain/model"
	"todo-api/internal/domain/usecase/profile"
)

type ProfileController struct {
	api     *echo.Group
	useCase profile.UseCase
	session *middleware.SessionAuth
}

func NewProfileController(api *echo.Group, useCase profile.UseCase, session *middleware.SessionAuth) *ProfileController {
	return &ProfileController{api: api, useCase: useCase, session: session}
}

// InitProfileRoutes initializes profile routes
func (controller *ProfileController) InitProfileRoutes() {
	group := controller.api.Group("/profile", controller.session.Required())
	group.GET("", controller.Get)
	group.PUT("", controller.Update)
	group.PUT("/theme", controller.UpdateTheme)
}

// Get godoc
// @Summary Get the profile
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.ProfileResponse "Profile"
// @Failure 401 {object} map[string]string "Authentication required"
// @Router /profile [get]
func (controller *ProfileController) Get(c echo.Context) error {
	response, err := controller.useCase.Get(c.Request().Context(), middleware.SessionFrom(c))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, response)
}

// Update godoc
// @Summary Update email and username
// @Description A new email is confirmed through the auth provider before it takes effect
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profile body model.UpdateProfileDTO true "Profile data"
// @Success 200 {object} model.ProfileResponse "Updated profile"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Router /profile [put]
func (controller *ProfileController) Update(c echo.Context) error {
	var dto model.UpdateProfileDTO
	if err := bindAndValidate(c, &dto); err != nil {
		return invalidRequest(c)
	}

	response, err := controller.useCase.Update(c.Request().Context(), middleware.SessionFrom(c), dto)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, response)
}

// UpdateTheme godoc
// @Summary Change the color theme
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param theme body model.UpdateThemeDTO true "light, dark or system"
// @Success 200 {object} model.ProfileResponse "Updated profile"
// @Failure 400 {object} map[string]string "Invalid theme"
// @Router /profile/theme [put]
func (controller *ProfileController) UpdateTheme(c echo.Context) error {
	var dto model.UpdateThemeDTO
	if err := bindAndValidate(c, &dto); err != nil {
		return errorResponse(c, model.ErrInvalidTheme)
	}

	response, err := controller.useCase.UpdateTheme(c.Request().Context(), middleware.SessionFrom(c), dto.Theme)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, response)
}
