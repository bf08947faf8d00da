package controller

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"todo-api/internal/application/middleware"
	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/model"
	"todo-api/internal/domain/usecase/todo"
	"todo-api/pkg/util/numberutils"
)

type TodoController struct {
	api     *echo.Group
	useCase todo.UseCase
	session *middleware.SessionAuth
}

func NewTodoController(api *echo.Group, useCase todo.UseCase, session *middleware.SessionAuth) *TodoController {
	return &TodoController{api: api, useCase: useCase, session: session}
}

// InitTodoRoutes initializes todo routes
func (controller *TodoController) InitTodoRoutes() {
	required := controller.session.Required()

	controller.api.GET("/todos", controller.List, controller.session.Optional())
	controller.api.POST("/todos", controller.Create, required)
	controller.api.GET("/todos/:id", controller.Get, required)
	controller.api.PUT("/todos/:id", controller.Update, required)
	controller.api.DELETE("/todos/:id", controller.Delete, required)
	controller.api.POST("/todos/:id/toggle", controller.ToggleComplete, required)
	controller.api.PUT("/todos/:id/status", controller.ChangeStatus, required)
	controller.api.POST("/todos/:id/subtasks/:subtaskId/toggle", controller.ToggleSubtask, required)
}

// List godoc
// @Summary List the user's todos
// @Description Anonymous callers get an empty list. Counts cover every todo regardless of the filter.
// @Tags todos
// @Produce json
// @Security BearerAuth
// @Param filter query string false "all, pending or completed" default(all)
// @Param status query int false "Status id (1 Pending, 2 In Progress, 3 Completed)"
// @Success 200 {object} model.TodoListResponse "Todos with progress"
// @Failure 400 {object} map[string]string "Invalid filter or status"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /todos [get]
func (controller *TodoController) List(c echo.Context) error {
	filter, err := model.ParseTodoFilter(c.QueryParam("filter"))
	if err != nil {
		return errorResponse(c, err)
	}
	query := model.ListTodosQuery{Filter: filter}

	if raw := c.QueryParam("status"); raw != "" {
		status, err := entity.ParseStatus(numberutils.ToIntWithDefault(raw, 0))
		if err != nil {
			return errorResponse(c, model.ErrInvalidStatus)
		}
		query.Status = &status
	}

	response, err := controller.useCase.List(c.Request().Context(), middleware.SessionFrom(c), query)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, response)
}

// Get godoc
// @Summary Get a todo
// @Tags todos
// @Produce json
// @Security BearerAuth
// @Param id path string true "Todo id"
// @Success 200 {object} model.TodoResponse "Todo with progress"
// @Failure 404 {object} map[string]string "Todo not found"
// @Router /todos/{id} [get]
func (controller *TodoController) Get(c echo.Context) error {
	id, err := pathID(c, "id", model.ErrTodoNotFound)
	if err != nil {
		return errorResponse(c, err)
	}

	response, err := controller.useCase.Get(c.Request().Context(), middleware.SessionFrom(c), id)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, response)
}

// Create godoc
// @Summary Create a todo
// @Description Subtask weights are clamped to 1..5. With subtasks the status follows their completion.
// @Tags todos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param todo body model.CreateTodoDTO true "Todo data"
// @Success 201 {object} model.TodoResponse "Created todo"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Authentication required"
// @Router /todos [post]
func (controller *TodoController) Create(c echo.Context) error {
	var dto model.CreateTodoDTO
	if err := bindAndValidate(c, &dto); err != nil {
		return invalidRequest(c)
	}

	response, err := controller.useCase.Create(c.Request().Context(), middleware.SessionFrom(c), dto)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusCreated, response)
}

// Update godoc
// @Summary Edit a todo
// @Description Replaces every subtask with the submitted list. Without statusId the status follows the subtasks; an explicit statusId is kept as chosen.
// @Tags todos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Todo id"
// @Param todo body model.UpdateTodoDTO true "Todo data"
// @Success 200 {object} model.TodoResponse "Updated todo"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 404 {object} map[string]string "Todo not found"
// @Router /todos/{id} [put]
func (controller *TodoController) Update(c echo.Context) error {
	id, err := pathID(c, "id", model.ErrTodoNotFound)
	if err != nil {
		return errorResponse(c, err)
	}

	var dto model.UpdateTodoDTO
	if err := bindAndValidate(c, &dto); err != nil {
		return invalidRequest(c)
	}

	response, err := controller.useCase.Update(c.Request().Context(), middleware.SessionFrom(c), id, dto)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, response)
}

// ToggleComplete godoc
// @Summary Toggle a todo's completion
// @Description Completing checks every subtask. Un-completing resets the status to Pending.
// @Tags todos
// @Produce json
// @Security BearerAuth
// @Param id path string true "Todo id"
// @Success 200 {object} model.TodoResponse "Toggled todo"
// @Failure 404 {object} map[string]string "Todo not found"
// @Router /todos/{id}/toggle [post]
func (controller *TodoController) ToggleComplete(c echo.Context) error {
	id, err := pathID(c, "id", model.ErrTodoNotFound)
	if err != nil {
		return errorResponse(c, err)
	}

	response, err := controller.useCase.ToggleComplete(c.Request().Context(), middleware.SessionFrom(c), id)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, response)
}

// ToggleSubtask godoc
// @Summary Toggle a subtask
// @Description The todo is promoted to In Progress or Completed as its subtasks get checked
// @Tags todos
// @Produce json
// @Security BearerAuth
// @Param id path string true "Todo id"
// @Param subtaskId path string true "Subtask id"
// @Success 200 {object} model.TodoResponse "Todo after the toggle"
// @Failure 404 {object} map[string]string "Todo or subtask not found"
// @Router /todos/{id}/subtasks/{subtaskId}/toggle [post]
func (controller *TodoController) ToggleSubtask(c echo.Context) error {
	todoID, err := pathID(c, "id", model.ErrTodoNotFound)
	if err != nil {
		return errorResponse(c, err)
	}
	subtaskID, err := pathID(c, "subtaskId", model.ErrSubtaskNotFound)
	if err != nil {
		return errorResponse(c, err)
	}

	response, err := controller.useCase.ToggleSubtask(c.Request().Context(), middleware.SessionFrom(c), todoID, subtaskID)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, response)
}

// ChangeStatus godoc
// @Summary Set a todo's status
// @Tags todos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Todo id"
// @Param status body model.ChangeStatusDTO true "New status"
// @Success 200 {object} model.TodoResponse "Updated todo"
// @Failure 400 {object} map[string]string "Invalid status"
// @Failure 404 {object} map[string]string "Todo not found"
// @Router /todos/{id}/status [put]
func (controller *TodoController) ChangeStatus(c echo.Context) error {
	id, err := pathID(c, "id", model.ErrTodoNotFound)
	if err != nil {
		return errorResponse(c, err)
	}

	var dto model.ChangeStatusDTO
	if err := bindAndValidate(c, &dto); err != nil {
		return errorResponse(c, model.ErrInvalidStatus)
	}

	response, err := controller.useCase.ChangeStatus(c.Request().Context(), middleware.SessionFrom(c), id, dto.StatusID)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, response)
}

// Delete godoc
// @Summary Delete a todo and its subtasks
// @Tags todos
// @Security BearerAuth
// @Param id path string true "Todo id"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Todo not found"
// @Router /todos/{id} [delete]
func (controller *TodoController) Delete(c echo.Context) error {
	id, err := pathID(c, "id", model.ErrTodoNotFound)
	if err != nil {
		return errorResponse(c, err)
	}

	if err := controller.useCase.Delete(c.Request().Context(), middleware.SessionFrom(c), id); err != nil {
		return errorResponse(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// pathID reads a uuid path parameter in canonical form. Anything else cannot
// name a stored row, so it is reported as notFound.
func pathID(c echo.Context, name string, notFound error) (string, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return "", notFound
	}
	return id.String(), nil
}
