package gigs

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"gigmarket/internal/pkg/response"
	"gigmarket/internal/pkg/validator"
	"gigmarket/internal/remote"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(v1 *gin.RouterGroup, authRequired gin.HandlerFunc) {
	gigGroup := v1.Group("/gigs")
	{
		gigGroup.GET("", h.List)
		gigGroup.GET("/search", h.Search)
		gigGroup.GET("/:id", h.GetByID)
		gigGroup.POST("", authRequired, h.Create)
		gigGroup.PUT("/:id", authRequired, h.Update)
		gigGroup.DELETE("/:id", authRequired, h.Delete)
		gigGroup.PATCH("/:id/active", authRequired, h.SetActive)
	}
	v1.GET("/categories", h.Categories)
}

func (h *Handler) List(c *gin.Context) {
	f := ListFilter{
		CategoryID: c.Query("category_id"),
		SellerID:   c.Query("seller_id"),
	}
	if v := c.Query("active_only"); v != "" {
		f.ActiveOnly, _ = strconv.ParseBool(v)
	}

	list, err := h.service.List(c.Request.Context(), f)
	if err != nil {
		response.Error(c, http.StatusBadGateway, "UPSTREAM_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, list)
}

func (h *Handler) Search(c *gin.Context) {
	list, err := h.service.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		response.Error(c, http.StatusBadGateway, "UPSTREAM_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, list)
}

func (h *Handler) GetByID(c *gin.Context) {
	gig, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, remote.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Gig not found")
			return
		}
		response.Error(c, http.StatusBadGateway, "UPSTREAM_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, gig)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateGigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid gig fields", errs)
		return
	}

	gig, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
			return
		}
		response.Error(c, http.StatusBadGateway, "UPSTREAM_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusCreated, gig)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateGigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	gig, err := h.service.Update(c.Request.Context(), c.Param("id"), c.GetString("user_id"), req)
	if err != nil {
		if errors.Is(err, ErrForbidden) {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", err.Error())
			return
		}
		response.Error(c, http.StatusBadGateway, "UPSTREAM_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, gig)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id"), c.GetString("user_id")); err != nil {
		response.Error(c, http.StatusBadGateway, "UPSTREAM_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) SetActive(c *gin.Context) {
	var req struct {
		Active bool `json:"active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	gig, err := h.service.SetActive(c.Request.Context(), c.Param("id"), req.Active)
	if err != nil {
		response.Error(c, http.StatusBadGateway, "UPSTREAM_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, gig)
}

func (h *Handler) Categories(c *gin.Context) {
	cats, err := h.service.Categories(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusBadGateway, "UPSTREAM_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, cats)
}
