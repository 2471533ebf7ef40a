package prefs

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gigmarket/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(v1 *gin.RouterGroup) {
	prefGroup := v1.Group("/prefs")
	{
		prefGroup.GET("", h.Get)
		prefGroup.PUT("/theme", h.SetTheme)
		prefGroup.PUT("/language", h.SetLanguage)
	}
}

func (h *Handler) Get(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{
		"theme":    h.service.Theme(),
		"language": h.service.Language(),
		"colors":   h.service.Colors(),
	})
}

func (h *Handler) SetTheme(c *gin.Context) {
	var req struct {
		Mode string `json:"mode" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := h.service.SetTheme(c.Request.Context(), ThemeMode(req.Mode)); err != nil {
		response.Error(c, http.StatusUnprocessableEntity, "PREFS_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, gin.H{"theme": h.service.Theme(), "colors": h.service.Colors()})
}

func (h *Handler) SetLanguage(c *gin.Context) {
	var req struct {
		Language string `json:"language" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := h.service.SetLanguage(c.Request.Context(), Language(req.Language)); err != nil {
		response.Error(c, http.StatusUnprocessableEntity, "PREFS_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, gin.H{"language": h.service.Language()})
}
