package service

import (
	"context"
	"fmt"

	"anoa.com/nftmarketplace/internal/entity"
	"anoa.com/nftmarketplace/internal/modules/transaction/dto"
	"anoa.com/nftmarketplace/internal/modules/transaction/repository"
	"anoa.com/nftmarketplace/pkg/cache"
	commonDto "anoa.com/nftmarketplace/pkg/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const statsCacheKey = "transactions"

type TransactionService interface {
	GetStats(ctx context.Context) (*dto.TransactionStats, error)
	GetUserTransactions(ctx context.Context, userID uuid.UUID, query dto.TransactionListQuery) ([]entity.Transaction, commonDto.PaginationMeta, error)
}

type transactionService struct {
	repo  repository.TransactionRepository
	cache *cache.JSONCache
}

func NewTransactionService(repo repository.TransactionRepository, statsCache *cache.JSONCache) TransactionService {
	return &transactionService{
		repo:  repo,
		cache: statsCache,
	}
}

func (s *transactionService) GetStats(ctx context.Context) (*dto.TransactionStats, error) {
	stats, err := cache.GetOrLoad(ctx, s.cache, statsCacheKey, s.computeStats)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (s *transactionService) computeStats(ctx context.Context) (dto.TransactionStats, error) {
	var (
		byStatus map[entity.TransactionStatus]int64
		sales    dto.SaleAggregate
		gas      decimal.Decimal
		byType   map[entity.TransactionType]dto.TypeVolume
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		byStatus, err = s.repo.CountByStatus(gctx)
		return err
	})
	g.Go(func() (err error) {
		sales, err = s.repo.SaleAggregate(gctx)
		return err
	})
	g.Go(func() (err error) {
		gas, err = s.repo.SumCompletedGasFees(gctx)
		return err
	})
	g.Go(func() (err error) {
		byType, err = s.repo.VolumeByType(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return dto.TransactionStats{}, fmt.Errorf("transaction stats: %w", err)
	}

	stats := dto.TransactionStats{
		CompletedTransactions: byStatus[entity.TransactionCompleted],
		PendingTransactions:   byStatus[entity.TransactionPending],
		TotalVolume:           sales.Volume,
		TotalGasFees:          gas,
		AverageSalePrice:      decimal.Zero,
		VolumeByType:          byType,
	}
	for _, n := range byStatus {
		stats.TotalTransactions += n
	}
	if sales.Count > 0 {
		stats.AverageSalePrice = sales.Volume.DivRound(decimal.NewFromInt(sales.Count), 18)
	}
	if stats.VolumeByType == nil {
		stats.VolumeByType = map[entity.TransactionType]dto.TypeVolume{}
	}
	return stats, nil
}

func (s *transactionService) GetUserTransactions(ctx context.Context, userID uuid.UUID, query dto.TransactionListQuery) ([]entity.Transaction, commonDto.PaginationMeta, error) {
	page := commonDto.ParsePagination(query.PaginationQuery)
	filter := dto.BuildTransactionFilter(userID, query.Status, query.Type)

	transactions, total, err := s.repo.FindByUser(ctx, filter, page.Skip(), page.Limit)
	if err != nil {
		return nil, commonDto.PaginationMeta{}, err
	}
	if transactions == nil {
		transactions = []entity.Transaction{}
	}

	return transactions, commonDto.NewPaginationMeta(page, total), nil
}
