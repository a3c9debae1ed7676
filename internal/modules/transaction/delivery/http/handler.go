package handler

import (
	"net/http"

	"anoa.com/nftmarketplace/internal/modules/transaction/dto"
	transaction "anoa.com/nftmarketplace/internal/modules/transaction/service"
	"anoa.com/nftmarketplace/pkg/response"
	"github.com/gin-gonic/gin"
)

type TransactionHandler struct {
	service transaction.TransactionService
}

func NewTransactionHandler(service transaction.TransactionService) *TransactionHandler {
	return &TransactionHandler{service: service}
}

// GetStats is public: platform-wide volume only, nothing per user.
func (h *TransactionHandler) GetStats(c *gin.Context) {
	stats, err := h.service.GetStats(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	response.Success(c, http.StatusOK, stats)
}

func (h *TransactionHandler) GetUserTransactions(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	var query dto.TransactionListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.ValidationError(c, err)
		return
	}

	transactions, meta, err := h.service.GetUserTransactions(c.Request.Context(), userID, query)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	response.Paginated(c, transactions, meta)
}
