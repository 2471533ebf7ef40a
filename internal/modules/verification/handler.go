package verification

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

func (h *Handler) RegisterRoutes(v1 *gin.RouterGroup, authRequired gin.HandlerFunc) {
	verifyGroup := v1.Group("/verification", authRequired)
	{
		verifyGroup.POST("", h.Submit)
		verifyGroup.GET("/:sellerId/status", h.Status)
	}
}

func (h *Handler) Submit(c *gin.Context) {
	var req struct {
		SellerID     string `json:"seller_id" binding:"required"`
		DocumentType string `json:"document_type" binding:"required"`
		DocumentURL  string `json:"document_url" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	v, err := h.service.Submit(c.Request.Context(), req.SellerID, req.DocumentType, req.DocumentURL)
	if err != nil {
		response.Error(c, http.StatusBadGateway, "UPSTREAM_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusCreated, v)
}

func (h *Handler) Status(c *gin.Context) {
	status, err := h.service.Status(c.Request.Context(), c.Param("sellerId"))
	if err != nil {
		response.Error(c, http.StatusBadGateway, "UPSTREAM_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, gin.H{"status": status})
}
