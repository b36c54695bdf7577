package handler

import (
	"errors"
	"net/http"

	"main/dto"
	"main/model"
	"main/repository"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TodoHandler struct {
	service *usecase.TodoService
}

func NewTodoHandler(service *usecase.TodoService) *TodoHandler {
	return &TodoHandler{service: service}
}

// WelcomeHandler serves the API root
func WelcomeHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Welcome to the Todo API"})
}

func (h *TodoHandler) GetTodos(c *gin.Context) {
	todos, err := h.service.GetTodos(c.Request.Context())
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, dto.ToTodoResponses(todos))
}

func (h *TodoHandler) GetTodo(c *gin.Context) {
	id, ok := h.parseTodoID(c)
	if !ok {
		return
	}

	todo, err := h.service.GetTodo(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrTodoNotFound) {
			utils.NotFound(c, "Todo not found")
			return
		}
		utils.InternalError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, dto.ToTodoResponse(todo))
}

func (h *TodoHandler) CreateTodo(c *gin.Context) {
	var req dto.CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.UnprocessableEntity(c, "Invalid request body", utils.ValidationDetails(err))
		return
	}

	// req.ID is deliberately dropped; the storage layer assigns the id.
	todo := &model.Todo{
		Title:       req.Title,
		Description: req.Description,
		Deadline:    req.Deadline,
	}

	created, err := h.service.CreateTodo(c.Request.Context(), todo)
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, dto.ToTodoResponse(created))
}

func (h *TodoHandler) UpdateTodo(c *gin.Context) {
	id, ok := h.parseTodoID(c)
	if !ok {
		return
	}

	var req dto.UpdateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.UnprocessableEntity(c, "Invalid request body", utils.ValidationDetails(err))
		return
	}

	updates := &model.Todo{
		Title:       req.Title,
		Description: req.Description,
		Deadline:    req.Deadline,
	}

	updated, err := h.service.UpdateTodo(c.Request.Context(), id, updates)
	if err != nil {
		if errors.Is(err, repository.ErrTodoNotFound) {
			utils.NotFound(c, "Todo not found")
			return
		}
		utils.InternalError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, dto.ToTodoResponse(updated))
}

func (h *TodoHandler) DeleteTodo(c *gin.Context) {
	id, ok := h.parseTodoID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteTodo(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrTodoNotFound) {
			utils.NotFound(c, "Todo not found")
			return
		}
		utils.InternalError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Todo deleted successfully"})
}

// parseTodoID converts the path id into an ObjectID, answering 400 itself
// when the hex form is malformed.
func (h *TodoHandler) parseTodoID(c *gin.Context) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.TrackError("request", "invalid_todo_id")
		utils.BadRequest(c, "Invalid todo ID")
		return primitive.NilObjectID, false
	}
	return id, true
}
