package dto

import (
	"anoa.com/nftmarketplace/internal/entity"
	commonDto "anoa.com/nftmarketplace/pkg/dto"
	"github.com/shopspring/decimal"
)

type AuctionStats struct {
	TotalAuctions    int64           `json:"totalAuctions"`
	LiveAuctions     int64           `json:"liveAuctions"`
	EndedAuctions    int64           `json:"endedAuctions"`
	UpcomingAuctions int64           `json:"upcomingAuctions"`
	TotalBids        int64           `json:"totalBids"`
	TotalVolume      decimal.Decimal `json:"totalVolume"`
	ActiveBidders    int64           `json:"activeBidders"`
	SuccessRate      float64         `json:"successRate"`
}

type AuctionListQuery struct {
	commonDto.PaginationQuery
	Status string `form:"status"`
	Type   string `form:"type"`
}

// AuctionFilter holds only recognised enum values; a zero field means no predicate.
type AuctionFilter struct {
	Status entity.AuctionStatus
	Type   entity.AuctionType
}

func BuildAuctionFilter(status, auctionType string) AuctionFilter {
	var filter AuctionFilter
	if s := entity.AuctionStatus(status); s.IsValid() {
		filter.Status = s
	}
	if t := entity.AuctionType(auctionType); t.IsValid() {
		filter.Type = t
	}
	return filter
}

// SuccessRate is successful/ended as a percentage rounded to two decimals, 0 when nothing ended.
func SuccessRate(successful, ended int64) float64 {
	if ended <= 0 {
		return 0
	}
	return decimal.NewFromInt(successful).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(ended)).
		Round(2).
		InexactFloat64()
}
