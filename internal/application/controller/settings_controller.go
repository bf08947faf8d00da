package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"todo-api/internal/application/middleware"
	"todo-api/internal/domain/model"
	"todo-api/internal/domain/usecase/settings"
)

type SettingsController struct {
	api     *echo.Group
	useCase settings.UseCase
	session *middleware.SessionAuth
}

func NewSettingsController(api *echo.Group, useCase settings.UseCase, session *middleware.SessionAuth) *SettingsController {
	return &SettingsController{api: api, useCase: useCase, session: session}
}

// InitSettingsRoutes initializes account settings routes
func (controller *SettingsController) InitSettingsRoutes() {
	group := controller.api.Group("/settings", controller.session.Required())
	group.PUT("/password", controller.ChangePassword)
	group.DELETE("/data", controller.ClearAllData)
}

// ChangePassword godoc
// @Summary Change the account password
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param password body model.ChangePasswordDTO true "New password and confirmation"
// @Success 200 {object} model.MessageResponse "Password updated"
// @Failure 400 {object} map[string]string "Passwords do not match or are too short"
// @Failure 502 {object} map[string]string "Auth provider unavailable"
// @Router /settings/password [put]
func (controller *SettingsController) ChangePassword(c echo.Context) error {
	var dto model.ChangePasswordDTO
	if err := bindAndValidate(c, &dto); err != nil {
		return invalidRequest(c)
	}

	response, err := controller.useCase.ChangePassword(c.Request().Context(), middleware.SessionFrom(c), dto)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, response)
}

// ClearAllData godoc
// @Summary Delete every todo of the account
// @Tags settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.MessageResponse "Data cleared"
// @Failure 401 {object} map[string]string "Authentication required"
// @Router /settings/data [delete]
func (controller *SettingsController) ClearAllData(c echo.Context) error {
	response, err := controller.useCase.ClearAllData(c.Request().Context(), middleware.SessionFrom(c))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, response)
}
