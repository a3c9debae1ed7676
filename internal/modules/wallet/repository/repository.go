package repository

import (
	"context"
	"errors"
	"time"

	"anoa.com/nftmarketplace/internal/entity"
	"anoa.com/nftmarketplace/internal/modules/wallet/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrNoWalletAvailable = errors.New("no platform wallets available")

type WalletRepository interface {
	FindAllOrdered(ctx context.Context) ([]entity.PlatformWallet, error)
	Stats(ctx context.Context) (*dto.WalletStats, error)
	MaxIndex(ctx context.Context) (int, error)
	CreateBatch(ctx context.Context, wallets []entity.PlatformWallet) error
	AssignNext(ctx context.Context, userID uuid.UUID, at time.Time) (*entity.PlatformWallet, error)
}

type walletRepository struct {
	db *gorm.DB
}

func NewWalletRepository(db *gorm.DB) WalletRepository {
	return &walletRepository{db: db}
}

func (r *walletRepository) FindAllOrdered(ctx context.Context) ([]entity.PlatformWallet, error) {
	var wallets []entity.PlatformWallet
	if err := r.db.WithContext(ctx).Order("wallet_index ASC").Find(&wallets).Error; err != nil {
		return nil, err
	}
	return wallets, nil
}

func (r *walletRepository) Stats(ctx context.Context) (*dto.WalletStats, error) {
	var row struct {
		Total    int64
		Assigned int64
		Balance  decimal.Decimal
	}

	err := r.db.WithContext(ctx).
		Model(&entity.PlatformWallet{}).
		Select(`COUNT(*) AS total,
			COUNT(*) FILTER (WHERE is_assigned) AS assigned,
			COALESCE(SUM(balance), 0) AS balance`).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}

	return &dto.WalletStats{
		TotalWallets:     row.Total,
		AssignedWallets:  row.Assigned,
		AvailableWallets: row.Total - row.Assigned,
		TotalBalance:     row.Balance,
	}, nil
}

// MaxIndex returns -1 for an empty pool.
func (r *walletRepository) MaxIndex(ctx context.Context) (int, error) {
	var maxIndex int
	err := r.db.WithContext(ctx).
		Model(&entity.PlatformWallet{}).
		Select("COALESCE(MAX(wallet_index), -1)").
		Scan(&maxIndex).Error
	return maxIndex, err
}

func (r *walletRepository) CreateBatch(ctx context.Context, wallets []entity.PlatformWallet) error {
	if len(wallets) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(wallets, 100).Error
}

// AssignNext hands the lowest free wallet to userID, or returns the wallet it already holds.
// The user row is locked for the duration so concurrent calls for one user serialize;
// free wallets are claimed with SKIP LOCKED so calls for different users do not queue.
func (r *walletRepository) AssignNext(ctx context.Context, userID uuid.UUID, at time.Time) (*entity.PlatformWallet, error) {
	var assigned entity.PlatformWallet

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user entity.User
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", userID).
			First(&user).Error; err != nil {
			return err
		}

		err := tx.Where("assigned_user_id = ?", userID).First(&assigned).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		err = tx.Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
			Where("is_assigned = ?", false).
			Order("wallet_index ASC").
			First(&assigned).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNoWalletAvailable
			}
			return err
		}

		assigned.IsAssigned = true
		assigned.AssignedUserID = &userID
		assigned.AssignedAt = &at
		if err := tx.Model(&entity.PlatformWallet{}).
			Where("id = ?", assigned.ID).
			Updates(map[string]any{
				"is_assigned":      true,
				"assigned_user_id": userID,
				"assigned_at":      at,
			}).Error; err != nil {
			return err
		}

		return tx.Model(&entity.User{}).
			Where("id = ?", userID).
			Updates(map[string]any{
				"assigned_wallet":    assigned.Address,
				"wallet_assigned_at": at,
			}).Error
	})
	if err != nil {
		return nil, err
	}
	return &assigned, nil
}
