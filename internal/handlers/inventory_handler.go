package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"

	"back_office/internal/query"
	"back_office/internal/services"
	"back_office/internal/validation"
)

type InventoryHandler struct {
	service  services.InventoryService
	validate *validatorv10.Validate
}

func NewInventoryHandler(service services.InventoryService, validate *validatorv10.Validate) *InventoryHandler {
	return &InventoryHandler{service: service, validate: validate}
}

func (h *InventoryHandler) Register(rg *gin.RouterGroup) {
	inventory := rg.Group("/inventory")
	{
		inventory.GET("/transactions", h.ListTransactions)
		inventory.POST("/adjustments", h.CreateAdjustment)
	}
}

func (h *InventoryHandler) ListTransactions(c *gin.Context) {
	filter := query.ParseInventoryFilter(c.Request.URL.Query())
	page, err := h.service.ListTransactions(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *InventoryHandler) CreateAdjustment(c *gin.Context) {
	var req validation.CreateAdjustmentRequest
	if err := validation.BindAndValidate(c, &req, h.validate); err != nil {
		return
	}
	transaction, err := h.service.CreateAdjustment(c.Request.Context(), req, actorID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, transaction)
}
