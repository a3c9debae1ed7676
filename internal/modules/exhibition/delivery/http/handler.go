package handler

import (
	"net/http"

	"anoa.com/nftmarketplace/internal/modules/exhibition/dto"
	exhibition "anoa.com/nftmarketplace/internal/modules/exhibition/service"
	commonDto "anoa.com/nftmarketplace/pkg/dto"
	"anoa.com/nftmarketplace/pkg/response"
	"github.com/gin-gonic/gin"
)

const maxCoverSize = 5 << 20

type ExhibitionHandler struct {
	service exhibition.ExhibitionService
}

func NewExhibitionHandler(service exhibition.ExhibitionService) *ExhibitionHandler {
	return &ExhibitionHandler{service: service}
}

// GetPublicExhibitions lists active and upcoming exhibitions, soonest first.
func (h *ExhibitionHandler) GetPublicExhibitions(c *gin.Context) {
	var query dto.PublicExhibitionQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.ValidationError(c, err)
		return
	}

	exhibitions, meta, err := h.service.GetPublicExhibitions(c.Request.Context(), query)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	response.Paginated(c, exhibitions, meta)
}

func (h *ExhibitionHandler) GetStats(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	stats, err := h.service.GetCreatorStats(c.Request.Context(), userID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	response.Success(c, http.StatusOK, stats)
}

// CreateExhibition accepts JSON, or a multipart form with an optional "cover" image.
func (h *ExhibitionHandler) CreateExhibition(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	var req dto.CreateExhibitionRequest
	if err := c.ShouldBind(&req); err != nil {
		response.ValidationError(c, err)
		return
	}

	var cover *commonDto.UploadFile
	if fileHeader, err := c.FormFile("cover"); err == nil {
		if fileHeader.Size > maxCoverSize {
			response.Fail(c, http.StatusBadRequest, "cover image must be 5MB or smaller")
			return
		}
		file, err := fileHeader.Open()
		if err != nil {
			response.Fail(c, http.StatusBadRequest, "failed to read cover image")
			return
		}
		defer file.Close()

		cover = &commonDto.UploadFile{Reader: file, FileName: fileHeader.Filename}
	}

	created, err := h.service.CreateExhibition(c.Request.Context(), userID, req, cover)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, created)
}
