package messages

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
	msgGroup := v1.Group("/messages", authRequired)
	{
		msgGroup.GET("/conversations/user/:userId", h.Conversations)
		msgGroup.GET("/conversations/:id", h.History)
		msgGroup.POST("/conversations/:id", h.Send)
		msgGroup.POST("/conversations/:id/read", h.MarkRead)
	}
}

func (h *Handler) Conversations(c *gin.Context) {
	list, err := h.service.Conversations(c.Request.Context(), c.Param("userId"))
	if err != nil {
		response.Error(c, http.StatusBadGateway, "UPSTREAM_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, list)
}

func (h *Handler) History(c *gin.Context) {
	list, err := h.service.History(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadGateway, "UPSTREAM_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, list)
}

func (h *Handler) Send(c *gin.Context) {
	var req struct {
		SenderID string `json:"sender_id" binding:"required"`
		Body     string `json:"body" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	msg, err := h.service.Send(c.Request.Context(), c.Param("id"), req.SenderID, req.Body)
	if err != nil {
		response.Error(c, http.StatusBadGateway, "UPSTREAM_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusCreated, msg)
}

func (h *Handler) MarkRead(c *gin.Context) {
	var req struct {
		ReaderID string `json:"reader_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := h.service.MarkRead(c.Request.Context(), c.Param("id"), req.ReaderID); err != nil {
		response.Error(c, http.StatusBadGateway, "UPSTREAM_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, gin.H{"read": true})
}
