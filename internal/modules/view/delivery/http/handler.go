package handler

import (
	"net/http"

	view "anoa.com/nftmarketplace/internal/modules/view/service"
	"anoa.com/nftmarketplace/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ViewHandler struct {
	service view.ViewService
}

func NewViewHandler(service view.ViewService) *ViewHandler {
	return &ViewHandler{service: service}
}

// RecordView counts a view of an exhibition. Viewers are the session user when present, else the client IP.
func (h *ViewHandler) RecordView(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid exhibition id")
		return
	}

	viewer := "ip:" + c.ClientIP()
	if userID, err := response.GetUserID(c); err == nil {
		viewer = "user:" + userID.String()
	}

	if err := h.service.RecordView(c.Request.Context(), id, viewer); err != nil {
		response.ResponseError(c, err)
		return
	}

	response.SuccessWithMessage(c, http.StatusOK, nil, "view recorded")
}
