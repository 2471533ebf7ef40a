package orders

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"gigmarket/internal/domain"
	"gigmarket/internal/pkg/response"
	"gigmarket/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(v1 *gin.RouterGroup, authRequired gin.HandlerFunc) {
	orderGroup := v1.Group("/orders", authRequired)
	{
		orderGroup.GET("/buyer/:id", h.ListForBuyer)
		orderGroup.GET("/seller/:id", h.ListForSeller)
		orderGroup.GET("/:id", h.GetByID)
		orderGroup.POST("", h.Create)
		orderGroup.PATCH("/:id/status", h.UpdateStatus)
		orderGroup.POST("/:id/delivery", h.AttachDelivery)
		orderGroup.POST("/revisions", h.RequestRevision)
		orderGroup.GET("/:id/revisions", h.Revisions)
	}
}

func (h *Handler) ListForBuyer(c *gin.Context) {
	list, err := h.service.ListForBuyer(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadGateway, "UPSTREAM_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, list)
}

func (h *Handler) ListForSeller(c *gin.Context) {
	list, err := h.service.ListForSeller(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadGateway, "UPSTREAM_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, list)
}

func (h *Handler) GetByID(c *gin.Context) {
	order, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Order not found")
			return
		}
		response.Error(c, http.StatusBadGateway, "UPSTREAM_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, order)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid order fields", errs)
		return
	}

	order, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusBadGateway, "UPSTREAM_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusCreated, order)
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	order, err := h.service.UpdateStatus(c.Request.Context(), c.Param("id"), domain.OrderStatus(req.Status))
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
			return
		}
		response.Error(c, http.StatusBadGateway, "UPSTREAM_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, order)
}

func (h *Handler) AttachDelivery(c *gin.Context) {
	var req struct {
		Files []string `json:"files" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	order, err := h.service.AttachDelivery(c.Request.Context(), c.Param("id"), req.Files)
	if err != nil {
		response.Error(c, http.StatusBadGateway, "UPSTREAM_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, order)
}

func (h *Handler) RequestRevision(c *gin.Context) {
	var req RevisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid revision fields", errs)
		return
	}

	rev, err := h.service.RequestRevision(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusBadGateway, "UPSTREAM_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusCreated, rev)
}

func (h *Handler) Revisions(c *gin.Context) {
	revs, err := h.service.Revisions(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadGateway, "UPSTREAM_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, revs)
}
