package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"back_office/internal/query"
	"back_office/internal/services"
)

type MediaHandler struct {
	service services.MediaService
}

func NewMediaHandler(service services.MediaService) *MediaHandler {
	return &MediaHandler{service: service}
}

func (h *MediaHandler) Register(rg *gin.RouterGroup) {
	media := rg.Group("/media")
	{
		media.GET("", h.List)
		media.POST("/upload", h.Upload)
		media.DELETE("/:id", h.Delete)
	}
}

func (h *MediaHandler) List(c *gin.Context) {
	filter := query.ParseMediaFilter(c.Request.URL.Query())
	page, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *MediaHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	media, err := h.service.Upload(c.Request.Context(), file, actorID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, media)
}

func (h *MediaHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
