package wallet

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"gigmarket/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(v1 *gin.RouterGroup, authRequired gin.HandlerFunc) {
	walletGroup := v1.Group("/wallet", authRequired)
	{
		walletGroup.GET("/:sellerId", h.ForSeller)
		walletGroup.GET("/:sellerId/withdrawals", h.Withdrawals)
		walletGroup.GET("/:sellerId/transactions", h.Transactions)
		walletGroup.POST("/:sellerId/withdrawals", h.RequestWithdrawal)
	}
}

func (h *Handler) ForSeller(c *gin.Context) {
	w, err := h.service.ForSeller(c.Request.Context(), c.Param("sellerId"))
	if err != nil {
		if errors.Is(err, ErrNoWallet) {
			response.Error(c, http.StatusNotFound, "NO_WALLET", err.Error())
			return
		}
		response.Error(c, http.StatusBadGateway, "UPSTREAM_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, w)
}

func (h *Handler) RequestWithdrawal(c *gin.Context) {
	var req struct {
		Amount decimal.Decimal `json:"amount"`
		Method string          `json:"method"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	wr, err := h.service.RequestWithdrawal(c.Request.Context(), c.Param("sellerId"), req.Amount, req.Method)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrInsufficientFunds):
			response.Error(c, http.StatusUnprocessableEntity, "WITHDRAWAL_REJECTED", err.Error())
		case errors.Is(err, ErrNoWallet):
			response.Error(c, http.StatusNotFound, "NO_WALLET", err.Error())
		default:
			response.Error(c, http.StatusBadGateway, "UPSTREAM_ERROR", err.Error())
		}
		return
	}
	response.Success(c, http.StatusCreated, wr)
}

func (h *Handler) Withdrawals(c *gin.Context) {
	list, err := h.service.Withdrawals(c.Request.Context(), c.Param("sellerId"))
	if err != nil {
		response.Error(c, http.StatusBadGateway, "UPSTREAM_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, list)
}

func (h *Handler) Transactions(c *gin.Context) {
	list, err := h.service.Transactions(c.Request.Context(), c.Param("sellerId"))
	if err != nil {
		response.Error(c, http.StatusBadGateway, "UPSTREAM_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, list)
}
