package handler

import (
	"net/http"

	"anoa.com/nftmarketplace/internal/modules/wallet/dto"
	wallet "anoa.com/nftmarketplace/internal/modules/wallet/service"
	"anoa.com/nftmarketplace/pkg/response"
	"github.com/gin-gonic/gin"
)

type WalletHandler struct {
	service wallet.WalletService
}

func NewWalletHandler(service wallet.WalletService) *WalletHandler {
	return &WalletHandler{service: service}
}

// GetWallets lists the platform wallet pool ordered by index, with pool stats.
func (h *WalletHandler) GetWallets(c *gin.Context) {
	res, err := h.service.GetWallets(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	response.Success(c, http.StatusOK, res)
}

func (h *WalletHandler) InitializeWallets(c *gin.Context) {
	var req dto.InitializeWalletsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	res, err := h.service.InitializeWallets(c.Request.Context(), req.Count)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	response.SuccessWithMessage(c, http.StatusCreated, res, "platform wallets initialized")
}
