package handler

import (
	"net/http"

	"anoa.com/nftmarketplace/internal/modules/analytics/dto"
	analytics "anoa.com/nftmarketplace/internal/modules/analytics/service"
	"anoa.com/nftmarketplace/pkg/response"
	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	service analytics.AnalyticsService
}

func NewAnalyticsHandler(service analytics.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

func (h *AnalyticsHandler) GetVisitors(c *gin.Context) {
	var query dto.VisitorQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.ValidationError(c, err)
		return
	}

	response.Success(c, http.StatusOK, h.service.GetVisitors(dto.ParseDays(query.Days)))
}
