package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"

	"back_office/internal/models"
	"back_office/internal/policy"
	"back_office/internal/query"
	"back_office/internal/services"
	"back_office/internal/validation"
)

type OrderHandler struct {
	service  services.OrderService
	validate *validatorv10.Validate
}

func NewOrderHandler(service services.OrderService, validate *validatorv10.Validate) *OrderHandler {
	return &OrderHandler{service: service, validate: validate}
}

func (h *OrderHandler) Register(rg *gin.RouterGroup) {
	orders := rg.Group("/orders")
	{
		orders.GET("", h.List)
		orders.GET("/:id", h.Get)
		orders.GET("/:id/transitions", h.Transitions)
		orders.POST("", h.Create)
		orders.PATCH("/:id", h.Update)
		orders.PUT("/:id", h.Update)
		orders.DELETE("/:id", h.Delete)
	}
}

func (h *OrderHandler) List(c *gin.Context) {
	filter := query.ParseOrderFilter(c.Request.URL.Query())
	page, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	order, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// Transitions reports what the current status allows, so clients can
// enable or disable actions without duplicating the lifecycle rules.
func (h *OrderHandler) Transitions(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	order, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	status := policy.Normalize(order.Status)
	c.JSON(http.StatusOK, gin.H{
		"status":                status,
		"allowed_transitions":   policy.AllowedTransitions(status),
		"can_delete":            policy.CanDelete(status),
		"has_other_transitions": policy.HasOtherTransitions(status),
	})
}

func (h *OrderHandler) Create(c *gin.Context) {
	var req validation.CreateOrderRequest
	if err := validation.BindAndValidate(c, &req, h.validate); err != nil {
		return
	}
	order, err := h.service.Create(c.Request.Context(), req, actorID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (h *OrderHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req validation.UpdateOrderRequest
	if err := validation.BindAndValidate(c, &req, h.validate); err != nil {
		return
	}
	order, err := h.service.Update(c.Request.Context(), id, req, actorID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.Message{Message: "Order deleted successfully"})
}
