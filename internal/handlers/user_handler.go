package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"

	"back_office/internal/models"
	"back_office/internal/query"
	"back_office/internal/services"
	"back_office/internal/validation"
)

type UserHandler struct {
	service  services.UserService
	validate *validatorv10.Validate
}

func NewUserHandler(service services.UserService, validate *validatorv10.Validate) *UserHandler {
	return &UserHandler{service: service, validate: validate}
}

func (h *UserHandler) Register(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	{
		users.GET("", h.List)
		users.GET("/:id", h.Get)
		users.POST("", h.Create)
		users.PATCH("/:id", h.Update)
		users.PUT("/:id", h.Update)
		users.DELETE("/:id", h.Deactivate)
	}
}

func (h *UserHandler) List(c *gin.Context) {
	page, err := h.service.List(c.Request.Context(), query.ParsePagination(c.Request.URL.Query(), 50))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *UserHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	user, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) Create(c *gin.Context) {
	var req validation.CreateUserRequest
	if err := validation.BindAndValidate(c, &req, h.validate); err != nil {
		return
	}
	user, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (h *UserHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req validation.UpdateUserRequest
	if err := validation.BindAndValidate(c, &req, h.validate); err != nil {
		return
	}
	user, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Deactivate soft-disables the account instead of removing the row, so
// audit references (created_by, assigned_to) stay resolvable.
func (h *UserHandler) Deactivate(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.Deactivate(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.Message{Message: "User deactivated successfully"})
}
