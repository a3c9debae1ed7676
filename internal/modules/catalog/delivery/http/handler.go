package handler

import (
	"net/http"

	"anoa.com/nftmarketplace/internal/catalog"
	"anoa.com/nftmarketplace/pkg/response"
	"github.com/gin-gonic/gin"
)

type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

func (h *CatalogHandler) GetCatalog(c *gin.Context) {
	response.Success(c, http.StatusOK, catalog.Get())
}

func (h *CatalogHandler) GetCategories(c *gin.Context) {
	response.Success(c, http.StatusOK, catalog.Categories())
}
