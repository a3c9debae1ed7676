package dto

import (
	"time"

	"anoa.com/nftmarketplace/internal/catalog"
	"anoa.com/nftmarketplace/internal/entity"
	commonDto "anoa.com/nftmarketplace/pkg/dto"
	"github.com/go-playground/validator/v10"
)

type PublicExhibitionQuery struct {
	commonDto.PaginationQuery
	Status   string `form:"status"`
	Category string `form:"category"`
}

// ExhibitionFilter is the predicate of a public listing. Statuses is never empty.
type ExhibitionFilter struct {
	Statuses []entity.ExhibitionStatus
	Category string
}

// BuildPublicFilter narrows to a single status only when it is one of the public ones;
// any other status value falls back to every public status.
func BuildPublicFilter(status, category string) ExhibitionFilter {
	filter := ExhibitionFilter{
		Statuses: append([]entity.ExhibitionStatus(nil), entity.PublicExhibitionStatuses...),
		Category: commonDto.FilterValue(category),
	}

	if s := entity.ExhibitionStatus(status); s.IsPublic() {
		filter.Statuses = []entity.ExhibitionStatus{s}
	}
	return filter
}

type CreateExhibitionRequest struct {
	Title         string    `json:"title" form:"title" binding:"required,min=3,max=100"`
	Description   string    `json:"description" form:"description" binding:"required,min=10,max=2000"`
	Category      string    `json:"category" form:"category" binding:"required,catalog_category"`
	StartDate     time.Time `json:"startDate" form:"startDate" binding:"required"`
	EndDate       time.Time `json:"endDate" form:"endDate" binding:"required,gtfield=StartDate"`
	Status        string    `json:"status" form:"status" binding:"omitempty,oneof=draft upcoming"`
	CoverImageURL string    `json:"coverImageUrl" form:"coverImageUrl" binding:"omitempty,url,max=500"`
}

type ExhibitionStats struct {
	Total             int64 `json:"total"`
	Active            int64 `json:"active"`
	Upcoming          int64 `json:"upcoming"`
	Ended             int64 `json:"ended"`
	Draft             int64 `json:"draft"`
	TotalViews        int64 `json:"totalViews"`
	TotalLikes        int64 `json:"totalLikes"`
	TotalParticipants int64 `json:"totalParticipants"`
}

// Validations are the custom binding tags exhibition requests rely on.
var Validations = map[string]validator.Func{
	"catalog_category": func(fl validator.FieldLevel) bool {
		return catalog.IsCategory(fl.Field().String())
	},
}
