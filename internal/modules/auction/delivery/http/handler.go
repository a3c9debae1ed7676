package handler

import (
	"net/http"

	"anoa.com/nftmarketplace/internal/modules/auction/dto"
	auction "anoa.com/nftmarketplace/internal/modules/auction/service"
	"anoa.com/nftmarketplace/pkg/response"
	"github.com/gin-gonic/gin"
)

type AuctionHandler struct {
	service auction.AuctionService
}

func NewAuctionHandler(service auction.AuctionService) *AuctionHandler {
	return &AuctionHandler{service: service}
}

func (h *AuctionHandler) GetStats(c *gin.Context) {
	stats, err := h.service.GetStats(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	response.Success(c, http.StatusOK, stats)
}

func (h *AuctionHandler) GetAuctions(c *gin.Context) {
	var query dto.AuctionListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.ValidationError(c, err)
		return
	}

	auctions, meta, err := h.service.GetAuctions(c.Request.Context(), query)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	response.Paginated(c, auctions, meta)
}
