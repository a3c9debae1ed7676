package service

import (
	"context"
	"fmt"

	"anoa.com/nftmarketplace/internal/entity"
	"anoa.com/nftmarketplace/internal/modules/auction/dto"
	"anoa.com/nftmarketplace/internal/modules/auction/repository"
	"anoa.com/nftmarketplace/pkg/cache"
	commonDto "anoa.com/nftmarketplace/pkg/dto"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const statsCacheKey = "auctions"

type AuctionService interface {
	GetStats(ctx context.Context) (*dto.AuctionStats, error)
	GetAuctions(ctx context.Context, query dto.AuctionListQuery) ([]entity.Auction, commonDto.PaginationMeta, error)
}

type auctionService struct {
	repo  repository.AuctionRepository
	cache *cache.JSONCache
}

// NewAuctionService accepts a nil cache; stats are then computed on every call.
func NewAuctionService(repo repository.AuctionRepository, statsCache *cache.JSONCache) AuctionService {
	return &auctionService{
		repo:  repo,
		cache: statsCache,
	}
}

func (s *auctionService) GetStats(ctx context.Context) (*dto.AuctionStats, error) {
	stats, err := cache.GetOrLoad(ctx, s.cache, statsCacheKey, s.computeStats)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// computeStats runs every aggregate concurrently; the first failure cancels the rest.
func (s *auctionService) computeStats(ctx context.Context) (dto.AuctionStats, error) {
	var (
		stats      dto.AuctionStats
		byStatus   map[entity.AuctionStatus]int64
		volume     decimal.Decimal
		successful int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		stats.TotalAuctions, err = s.repo.CountAuctions(gctx)
		return err
	})
	g.Go(func() (err error) {
		byStatus, err = s.repo.CountByStatus(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.TotalBids, err = s.repo.CountBids(gctx)
		return err
	})
	g.Go(func() (err error) {
		volume, err = s.repo.SumBidAmounts(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.ActiveBidders, err = s.repo.CountActiveBidders(gctx)
		return err
	})
	g.Go(func() (err error) {
		successful, err = s.repo.CountEndedWithBids(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return dto.AuctionStats{}, fmt.Errorf("auction stats: %w", err)
	}

	stats.LiveAuctions = byStatus[entity.AuctionLive]
	stats.EndedAuctions = byStatus[entity.AuctionEnded]
	stats.UpcomingAuctions = byStatus[entity.AuctionUpcoming]
	stats.TotalVolume = volume
	stats.SuccessRate = dto.SuccessRate(successful, stats.EndedAuctions)
	return stats, nil
}

func (s *auctionService) GetAuctions(ctx context.Context, query dto.AuctionListQuery) ([]entity.Auction, commonDto.PaginationMeta, error) {
	page := commonDto.ParsePagination(query.PaginationQuery)
	filter := dto.BuildAuctionFilter(query.Status, query.Type)

	auctions, total, err := s.repo.FindAll(ctx, filter, page.Skip(), page.Limit)
	if err != nil {
		return nil, commonDto.PaginationMeta{}, err
	}
	if auctions == nil {
		auctions = []entity.Auction{}
	}

	return auctions, commonDto.NewPaginationMeta(page, total), nil
}
