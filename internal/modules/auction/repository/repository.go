package repository

import (
	"context"

	"anoa.com/nftmarketplace/internal/entity"
	"anoa.com/nftmarketplace/internal/modules/auction/dto"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type AuctionRepository interface {
	CountAuctions(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context) (map[entity.AuctionStatus]int64, error)
	CountBids(ctx context.Context) (int64, error)
	SumBidAmounts(ctx context.Context) (decimal.Decimal, error)
	CountActiveBidders(ctx context.Context) (int64, error)
	CountEndedWithBids(ctx context.Context) (int64, error)
	FindAll(ctx context.Context, filter dto.AuctionFilter, offset, limit int) ([]entity.Auction, int64, error)
}

type auctionRepository struct {
	db *gorm.DB
}

func NewAuctionRepository(db *gorm.DB) AuctionRepository {
	return &auctionRepository{db: db}
}

func (r *auctionRepository) CountAuctions(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Auction{}).Count(&count).Error
	return count, err
}

func (r *auctionRepository) CountByStatus(ctx context.Context) (map[entity.AuctionStatus]int64, error) {
	var rows []struct {
		Status entity.AuctionStatus
		Count  int64
	}

	if err := r.db.WithContext(ctx).
		Model(&entity.Auction{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[entity.AuctionStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func (r *auctionRepository) CountBids(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Bid{}).Count(&count).Error
	return count, err
}

func (r *auctionRepository) SumBidAmounts(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).
		Model(&entity.Bid{}).
		Select("COALESCE(SUM(amount), 0)").
		Row().
		Scan(&total)
	return total, err
}

// CountActiveBidders counts distinct bidders among bids on live auctions.
func (r *auctionRepository) CountActiveBidders(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.Bid{}).
		Joins("JOIN auctions ON auctions.id = bids.auction_id").
		Where("auctions.status = ?", entity.AuctionLive).
		Distinct("bids.bidder_id").
		Count(&count).Error
	return count, err
}

func (r *auctionRepository) CountEndedWithBids(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.Auction{}).
		Where("status = ?", entity.AuctionEnded).
		Where("EXISTS (SELECT 1 FROM bids WHERE bids.auction_id = auctions.id)").
		Count(&count).Error
	return count, err
}

func (r *auctionRepository) FindAll(ctx context.Context, filter dto.AuctionFilter, offset, limit int) ([]entity.Auction, int64, error) {
	var auctions []entity.Auction
	var total int64

	query := r.db.WithContext(ctx)

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}

	if err := query.Model(&entity.Auction{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&auctions).Error; err != nil {
		return nil, 0, err
	}

	return auctions, total, nil
}
