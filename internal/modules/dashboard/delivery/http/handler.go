package handler

import (
	"net/http"

	dashboard "anoa.com/nftmarketplace/internal/modules/dashboard/service"
	"anoa.com/nftmarketplace/pkg/response"
	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	service dashboard.DashboardService
}

func NewDashboardHandler(service dashboard.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

func (h *DashboardHandler) GetQuickActions(c *gin.Context) {
	response.Success(c, http.StatusOK, h.service.GetQuickActions())
}
