package admin

import (
	"errors"
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
	adminGroup := v1.Group("/admin")
	{
		adminGroup.POST("/login", h.Login)
		adminGroup.POST("/logout", h.Logout)
		adminGroup.GET("/me", h.Me)
		adminGroup.GET("/activity", h.Activity)
		adminGroup.GET("/tickets", h.Tickets)
		adminGroup.GET("/users", h.Users)
		adminGroup.PATCH("/users/:id/banned", h.SetUserBanned)
		adminGroup.PATCH("/gigs/:id/active", h.SetGigActive)
		adminGroup.GET("/disputes", h.Disputes)
		adminGroup.POST("/disputes/:id/resolve", h.ResolveDispute)
		adminGroup.GET("/withdrawals", h.Withdrawals)
		adminGroup.POST("/withdrawals/:id/review", h.ReviewWithdrawal)
		adminGroup.GET("/verifications", h.Verifications)
		adminGroup.POST("/verifications/:id/review", h.ReviewVerification)
	}
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", err.Error())
	case errors.Is(err, ErrNotSignedIn):
		response.Error(c, http.StatusUnauthorized, "NOT_SIGNED_IN", err.Error())
	case errors.Is(err, ErrRoleForbidden):
		response.Error(c, http.StatusForbidden, "ROLE_FORBIDDEN", err.Error())
	default:
		response.Error(c, http.StatusBadGateway, "UPSTREAM_ERROR", err.Error())
	}
}

func (h *Handler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	account, err := h.service.LoginAdmin(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, account)
}

func (h *Handler) Logout(c *gin.Context) {
	h.service.LogoutAdmin()
	response.Success(c, http.StatusOK, gin.H{"signed_out": true})
}

func (h *Handler) Me(c *gin.Context) {
	account, err := h.service.CurrentAdmin()
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, account)
}

func (h *Handler) Activity(c *gin.Context) {
	response.Success(c, http.StatusOK, h.service.ActivityLogs())
}

func (h *Handler) Tickets(c *gin.Context) {
	response.Success(c, http.StatusOK, h.service.SupportTickets())
}

func (h *Handler) Users(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, users)
}

func (h *Handler) SetUserBanned(c *gin.Context) {
	var req struct {
		Banned bool `json:"banned"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if err := h.service.SetUserBanned(c.Request.Context(), c.Param("id"), req.Banned); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"banned": req.Banned})
}

func (h *Handler) SetGigActive(c *gin.Context) {
	var req struct {
		Active bool `json:"active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if err := h.service.SetGigActive(c.Request.Context(), c.Param("id"), req.Active); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"active": req.Active})
}

func (h *Handler) Disputes(c *gin.Context) {
	disputes, err := h.service.ListDisputes(c.Request.Context(), c.Query("status"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, disputes)
}

func (h *Handler) ResolveDispute(c *gin.Context) {
	var req struct {
		Resolution string `json:"resolution" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if err := h.service.ResolveDispute(c.Request.Context(), c.Param("id"), req.Resolution); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"resolved": true})
}

func (h *Handler) Withdrawals(c *gin.Context) {
	list, err := h.service.ListWithdrawals(c.Request.Context(), c.Query("status"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, list)
}

func (h *Handler) ReviewWithdrawal(c *gin.Context) {
	var req struct {
		Approve bool `json:"approve"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if err := h.service.ReviewWithdrawal(c.Request.Context(), c.Param("id"), req.Approve); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"approved": req.Approve})
}

func (h *Handler) Verifications(c *gin.Context) {
	list, err := h.service.ListVerifications(c.Request.Context(), c.Query("status"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, list)
}

func (h *Handler) ReviewVerification(c *gin.Context) {
	var req struct {
		SellerID string `json:"seller_id" binding:"required"`
		Approve  bool   `json:"approve"`
		Notes    string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if err := h.service.ReviewVerification(c.Request.Context(), c.Param("id"), req.SellerID, req.Approve, req.Notes); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"approved": req.Approve})
}
