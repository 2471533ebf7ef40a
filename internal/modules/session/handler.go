package session

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gigmarket/internal/pkg/response"
	"gigmarket/internal/pkg/validator"
)

// Handler exposes the session actions to the screens.
type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

func (h *Handler) RegisterRoutes(v1 *gin.RouterGroup) {
	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/signup", h.SignUp)
		authGroup.POST("/login", h.Login)
		authGroup.POST("/logout", h.Logout)
		authGroup.POST("/guest", h.ContinueAsGuest)
		authGroup.POST("/switch-to-seller", h.SwitchToSeller)
		authGroup.GET("/me", h.Me)
	}
}

func (h *Handler) SignUp(c *gin.Context) {
	var req SignUpParams
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid signup fields", errs)
		return
	}

	res := h.store.SignUp(c.Request.Context(), req)
	if !res.OK() {
		// Rate limiting and auth failures both render inline; the result
		// carries the user-facing message either way.
		response.Error(c, http.StatusUnprocessableEntity, "SIGNUP_FAILED", res.Err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"actor": h.store.Actor(),
		"token": h.store.AccessToken(),
	})
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginParams
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	res := h.store.Login(c.Request.Context(), req.Email, req.Password)
	if !res.OK() {
		response.Error(c, http.StatusUnauthorized, "LOGIN_FAILED", res.Err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"actor": h.store.Actor(),
		"token": h.store.AccessToken(),
	})
}

func (h *Handler) Logout(c *gin.Context) {
	_ = h.store.Logout(c.Request.Context())
	response.Success(c, http.StatusOK, gin.H{"state": h.store.State()})
}

func (h *Handler) ContinueAsGuest(c *gin.Context) {
	_ = h.store.ContinueAsGuest()
	response.Success(c, http.StatusOK, gin.H{"actor": h.store.Actor()})
}

func (h *Handler) SwitchToSeller(c *gin.Context) {
	res := h.store.SwitchToSeller(c.Request.Context())
	if !res.OK() {
		response.Error(c, http.StatusUnprocessableEntity, "ROLE_SWITCH_FAILED", res.Err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"actor": h.store.Actor()})
}

func (h *Handler) Me(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{
		"state": h.store.State(),
		"actor": h.store.Actor(),
	})
}
