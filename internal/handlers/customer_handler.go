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

type CustomerHandler struct {
	service  services.CustomerService
	validate *validatorv10.Validate
}

func NewCustomerHandler(service services.CustomerService, validate *validatorv10.Validate) *CustomerHandler {
	return &CustomerHandler{service: service, validate: validate}
}

func (h *CustomerHandler) Register(rg *gin.RouterGroup) {
	customers := rg.Group("/customers")
	{
		customers.GET("", h.List)
		customers.GET("/:id", h.Get)
		customers.POST("", h.Create)
		customers.PATCH("/:id", h.Update)
		customers.PUT("/:id", h.Update)
		customers.DELETE("/:id", h.Delete)
	}
}

func (h *CustomerHandler) List(c *gin.Context) {
	filter := query.ParseCustomerFilter(c.Request.URL.Query())
	page, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *CustomerHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	customer, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (h *CustomerHandler) Create(c *gin.Context) {
	var req validation.CreateCustomerRequest
	if err := validation.BindAndValidate(c, &req, h.validate); err != nil {
		return
	}
	customer, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, customer)
}

func (h *CustomerHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req validation.UpdateCustomerRequest
	if err := validation.BindAndValidate(c, &req, h.validate); err != nil {
		return
	}
	customer, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (h *CustomerHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.Message{Message: "Customer deleted successfully"})
}
