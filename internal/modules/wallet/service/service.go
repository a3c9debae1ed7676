package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"anoa.com/nftmarketplace/internal/entity"
	"anoa.com/nftmarketplace/internal/modules/wallet/dto"
	"anoa.com/nftmarketplace/internal/modules/wallet/repository"
	"anoa.com/nftmarketplace/pkg/apperror"
	"anoa.com/nftmarketplace/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type WalletService interface {
	GetWallets(ctx context.Context) (*dto.AdminWalletsResponse, error)
	GetWalletStats(ctx context.Context) (*dto.WalletStats, error)
	InitializeWallets(ctx context.Context, count int) (*dto.InitializeWalletsResponse, error)
	AssignWallet(ctx context.Context, userID uuid.UUID) (*entity.PlatformWallet, error)
}

type walletService struct {
	repo repository.WalletRepository
	seed []byte
	now  func() time.Time
}

func NewWalletService(repo repository.WalletRepository, seed string) WalletService {
	return &walletService{
		repo: repo,
		seed: []byte(seed),
		now:  time.Now,
	}
}

func (s *walletService) GetWallets(ctx context.Context) (*dto.AdminWalletsResponse, error) {
	var (
		wallets []entity.PlatformWallet
		stats   *dto.WalletStats
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		wallets, err = s.repo.FindAllOrdered(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats, err = s.repo.Stats(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load platform wallets: %w", err)
	}

	if wallets == nil {
		wallets = []entity.PlatformWallet{}
	}
	return &dto.AdminWalletsResponse{Wallets: wallets, Stats: *stats}, nil
}

func (s *walletService) GetWalletStats(ctx context.Context) (*dto.WalletStats, error) {
	return s.repo.Stats(ctx)
}

// InitializeWallets appends count wallets after the current highest index.
func (s *walletService) InitializeWallets(ctx context.Context, count int) (*dto.InitializeWalletsResponse, error) {
	if count < 1 || count > dto.MaxInitializeCount {
		return nil, apperror.New(http.StatusBadRequest, fmt.Sprintf("count must be between 1 and %d", dto.MaxInitializeCount), apperror.ErrInvalidInput)
	}

	maxIndex, err := s.repo.MaxIndex(ctx)
	if err != nil {
		return nil, err
	}
	first := maxIndex + 1

	wallets := make([]entity.PlatformWallet, 0, count)
	for i := first; i < first+count; i++ {
		address, err := DeriveAddress(s.seed, i)
		if err != nil {
			return nil, err
		}
		wallets = append(wallets, entity.PlatformWallet{Index: i, Address: address})
	}

	if err := s.repo.CreateBatch(ctx, wallets); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.New(http.StatusConflict, "wallet pool changed concurrently, retry", apperror.ErrConflict)
		}
		return nil, err
	}

	logger.Info("platform wallets initialized",
		zap.Int("count", count),
		zap.Int("first_index", first),
	)

	return &dto.InitializeWalletsResponse{
		Created:    count,
		FirstIndex: first,
		LastIndex:  first + count - 1,
	}, nil
}

func (s *walletService) AssignWallet(ctx context.Context, userID uuid.UUID) (*entity.PlatformWallet, error) {
	wallet, err := s.repo.AssignNext(ctx, userID, s.now().UTC())
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, apperror.ErrNotFound
		case errors.Is(err, repository.ErrNoWalletAvailable):
			return nil, apperror.New(http.StatusInternalServerError, repository.ErrNoWalletAvailable.Error(), err)
		}
		return nil, err
	}
	return wallet, nil
}
