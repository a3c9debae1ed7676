package dto

import (
	"anoa.com/nftmarketplace/internal/entity"
	commonDto "anoa.com/nftmarketplace/pkg/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TypeVolume struct {
	Count  int64           `json:"count"`
	Volume decimal.Decimal `json:"volume"`
}

type TransactionStats struct {
	TotalTransactions     int64                                 `json:"totalTransactions"`
	CompletedTransactions int64                                 `json:"completedTransactions"`
	PendingTransactions   int64                                 `json:"pendingTransactions"`
	TotalVolume           decimal.Decimal                       `json:"totalVolume"`
	TotalGasFees          decimal.Decimal                       `json:"totalGasFees"`
	AverageSalePrice      decimal.Decimal                       `json:"averageSalePrice"`
	VolumeByType          map[entity.TransactionType]TypeVolume `json:"volumeByType"`
}

// SaleAggregate covers completed sale rows.
type SaleAggregate struct {
	Count  int64
	Volume decimal.Decimal
}

type TransactionListQuery struct {
	commonDto.PaginationQuery
	Status string `form:"status"`
	Type   string `form:"type"`
}

type TransactionFilter struct {
	UserID uuid.UUID
	Status entity.TransactionStatus
	Type   entity.TransactionType
}

func BuildTransactionFilter(userID uuid.UUID, status, txType string) TransactionFilter {
	filter := TransactionFilter{UserID: userID}
	if s := entity.TransactionStatus(status); s.IsValid() {
		filter.Status = s
	}
	if t := entity.TransactionType(txType); t.IsValid() {
		filter.Type = t
	}
	return filter
}
