package payments

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gigmarket/internal/domain"
	"gigmarket/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(v1 *gin.RouterGroup, authRequired gin.HandlerFunc) {
	payGroup := v1.Group("/payment-methods", authRequired)
	{
		payGroup.GET("/user/:userId", h.ListForUser)
		payGroup.POST("", h.Add)
		payGroup.DELETE("/:id", h.Remove)
		payGroup.PATCH("/user/:userId/default/:id", h.SetDefault)
	}
}

func (h *Handler) ListForUser(c *gin.Context) {
	list, err := h.service.ListForUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		response.Error(c, http.StatusBadGateway, "UPSTREAM_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, list)
}

func (h *Handler) Add(c *gin.Context) {
	var m domain.PaymentMethod
	if err := c.ShouldBindJSON(&m); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	saved, err := h.service.Add(c.Request.Context(), &m)
	if err != nil {
		response.Error(c, http.StatusBadGateway, "UPSTREAM_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusCreated, saved)
}

func (h *Handler) Remove(c *gin.Context) {
	if err := h.service.Remove(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, http.StatusBadGateway, "UPSTREAM_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) SetDefault(c *gin.Context) {
	if err := h.service.SetDefault(c.Request.Context(), c.Param("userId"), c.Param("id")); err != nil {
		response.Error(c, http.StatusBadGateway, "UPSTREAM_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, gin.H{"default": c.Param("id")})
}
