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

type CategoryHandler struct {
	service  services.CategoryService
	validate *validatorv10.Validate
}

func NewCategoryHandler(service services.CategoryService, validate *validatorv10.Validate) *CategoryHandler {
	return &CategoryHandler{service: service, validate: validate}
}

func (h *CategoryHandler) Register(rg *gin.RouterGroup) {
	categories := rg.Group("/categories")
	{
		categories.GET("", h.List)
		categories.GET("/:id", h.Get)
		categories.POST("", h.Create)
		categories.PATCH("/:id", h.Update)
		categories.PUT("/:id", h.Update)
		categories.DELETE("/:id", h.Delete)
	}
}

func (h *CategoryHandler) List(c *gin.Context) {
	filter := query.ParseCategoryFilter(c.Request.URL.Query())
	page, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *CategoryHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	category, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var req validation.CreateCategoryRequest
	if err := validation.BindAndValidate(c, &req, h.validate); err != nil {
		return
	}
	category, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req validation.UpdateCategoryRequest
	if err := validation.BindAndValidate(c, &req, h.validate); err != nil {
		return
	}
	category, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.Message{Message: "Category deleted successfully"})
}
