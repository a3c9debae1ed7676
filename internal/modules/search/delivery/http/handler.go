package handler

import (
	"net/http"

	search "anoa.com/nftmarketplace/internal/modules/search/service"
	"anoa.com/nftmarketplace/pkg/logger"
	"anoa.com/nftmarketplace/pkg/response"
	"github.com/gin-gonic/gin"
)

type SearchHandler struct {
	service search.MeiliSearchService
	host    string
}

func NewSearchHandler(service search.MeiliSearchService, host string) *SearchHandler {
	return &SearchHandler{service: service, host: host}
}

// GetSearchToken hands clients a tenant token for querying public exhibitions directly.
func (h *SearchHandler) GetSearchToken(c *gin.Context) {
	token, err := h.service.GenerateSearchToken()
	if err != nil {
		logger.Error(err)
		response.Fail(c, http.StatusServiceUnavailable, "search is unavailable")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"token": token,
		"host":  h.host,
		"index": search.ExhibitionsIndex,
	})
}
