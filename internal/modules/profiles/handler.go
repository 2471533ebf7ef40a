package profiles

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"gigmarket/internal/domain"
	"gigmarket/internal/pkg/response"
	"gigmarket/internal/remote"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(v1 *gin.RouterGroup, authRequired gin.HandlerFunc) {
	profileGroup := v1.Group("/profiles", authRequired)
	{
		profileGroup.GET("/:id", h.GetByID)
		profileGroup.PATCH("/:id/contact", h.UpdateContact)
		profileGroup.PATCH("/:id/role", h.UpdateRole)
		profileGroup.GET("/:id/preferences", h.Preferences)
		profileGroup.PUT("/:id/preferences", h.UpdatePreferences)
	}
}

func (h *Handler) GetByID(c *gin.Context) {
	p, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, remote.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Profile not found")
			return
		}
		response.Error(c, http.StatusBadGateway, "UPSTREAM_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, p)
}

func (h *Handler) UpdateContact(c *gin.Context) {
	var patch ContactPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	p, err := h.service.UpdateContact(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		response.Error(c, http.StatusBadGateway, "UPSTREAM_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, p)
}

func (h *Handler) UpdateRole(c *gin.Context) {
	var req struct {
		Role string `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	p, err := h.service.UpdateRole(c.Request.Context(), c.Param("id"), domain.UserRole(req.Role))
	if err != nil {
		response.Error(c, http.StatusBadGateway, "UPSTREAM_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, p)
}

func (h *Handler) Preferences(c *gin.Context) {
	pref, err := h.service.Preferences(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadGateway, "UPSTREAM_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, pref)
}

func (h *Handler) UpdatePreferences(c *gin.Context) {
	var pref domain.UserPreference
	if err := c.ShouldBindJSON(&pref); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	pref.UserID = c.Param("id")

	saved, err := h.service.UpdatePreferences(c.Request.Context(), &pref)
	if err != nil {
		response.Error(c, http.StatusBadGateway, "UPSTREAM_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, saved)
}
