package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"todo-api/internal/application/middleware"
	"todo-api/internal/domain/usecase/stats"
)

type StatsController struct {
	api     *echo.Group
	useCase stats.UseCase
	session *middleware.SessionAuth
}

func NewStatsController(api *echo.Group, useCase stats.UseCase, session *middleware.SessionAuth) *StatsController {
	return &StatsController{api: api, useCase: useCase, session: session}
}

// InitStatsRoutes initializes statistics routes
func (controller *StatsController) InitStatsRoutes() {
	controller.api.GET("/stats", controller.Summary, controller.session.Optional())
}

// Summary godoc
// @Summary Todo statistics
// @Description Counts for the past day, 7 and 30 days, the longest running open todos and the fastest completions
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.StatsResponse "Statistics"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /stats [get]
func (controller *StatsController) Summary(c echo.Context) error {
	response, err := controller.useCase.Summary(c.Request().Context(), middleware.SessionFrom(c))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, response)
}
