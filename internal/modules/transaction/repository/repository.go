package repository

import (
	"context"

	"anoa.com/nftmarketplace/internal/entity"
	"anoa.com/nftmarketplace/internal/modules/transaction/dto"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type TransactionRepository interface {
	CountByStatus(ctx context.Context) (map[entity.TransactionStatus]int64, error)
	SaleAggregate(ctx context.Context) (dto.SaleAggregate, error)
	SumCompletedGasFees(ctx context.Context) (decimal.Decimal, error)
	VolumeByType(ctx context.Context) (map[entity.TransactionType]dto.TypeVolume, error)
	FindByUser(ctx context.Context, filter dto.TransactionFilter, offset, limit int) ([]entity.Transaction, int64, error)
}

type transactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) CountByStatus(ctx context.Context) (map[entity.TransactionStatus]int64, error) {
	var rows []struct {
		Status entity.TransactionStatus
		Count  int64
	}

	if err := r.db.WithContext(ctx).
		Model(&entity.Transaction{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[entity.TransactionStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func (r *transactionRepository) SaleAggregate(ctx context.Context) (dto.SaleAggregate, error) {
	var agg dto.SaleAggregate
	err := r.db.WithContext(ctx).
		Model(&entity.Transaction{}).
		Select("COUNT(*) AS count, COALESCE(SUM(price), 0) AS volume").
		Where("status = ? AND transaction_type = ?", entity.TransactionCompleted, entity.TransactionSale).
		Scan(&agg).Error
	return agg, err
}

func (r *transactionRepository) SumCompletedGasFees(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).
		Model(&entity.Transaction{}).
		Select("COALESCE(SUM(gas_fee), 0)").
		Where("status = ?", entity.TransactionCompleted).
		Row().
		Scan(&total)
	return total, err
}

func (r *transactionRepository) VolumeByType(ctx context.Context) (map[entity.TransactionType]dto.TypeVolume, error) {
	var rows []struct {
		TransactionType entity.TransactionType
		Count           int64
		Volume          decimal.Decimal
	}

	if err := r.db.WithContext(ctx).
		Model(&entity.Transaction{}).
		Select("transaction_type, COUNT(*) AS count, COALESCE(SUM(price), 0) AS volume").
		Where("status = ?", entity.TransactionCompleted).
		Group("transaction_type").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	out := make(map[entity.TransactionType]dto.TypeVolume, len(rows))
	for _, row := range rows {
		out[row.TransactionType] = dto.TypeVolume{Count: row.Count, Volume: row.Volume}
	}
	return out, nil
}

func (r *transactionRepository) FindByUser(ctx context.Context, filter dto.TransactionFilter, offset, limit int) ([]entity.Transaction, int64, error) {
	var transactions []entity.Transaction
	var total int64

	query := r.db.WithContext(ctx).Where("user_id = ?", filter.UserID)

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Type != "" {
		query = query.Where("transaction_type = ?", filter.Type)
	}

	if err := query.Model(&entity.Transaction{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&transactions).Error; err != nil {
		return nil, 0, err
	}

	return transactions, total, nil
}
