package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "pending"
	TransactionCompleted TransactionStatus = "completed"
	TransactionFailed    TransactionStatus = "failed"
	TransactionCancelled TransactionStatus = "cancelled"
)

func (s TransactionStatus) IsValid() bool {
	switch s {
	case TransactionPending, TransactionCompleted, TransactionFailed, TransactionCancelled:
		return true
	}
	return false
}

type TransactionType string

const (
	TransactionSale       TransactionType = "sale"
	TransactionPurchase   TransactionType = "purchase"
	TransactionDeposit    TransactionType = "deposit"
	TransactionWithdrawal TransactionType = "withdrawal"
	TransactionMint       TransactionType = "mint"
	TransactionBid        TransactionType = "bid"
)

func (t TransactionType) IsValid() bool {
	switch t {
	case TransactionSale, TransactionPurchase, TransactionDeposit, TransactionWithdrawal, TransactionMint, TransactionBid:
		return true
	}
	return false
}

type Transaction struct {
	ID              uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	UserID          uuid.UUID         `gorm:"type:uuid;not null;index" json:"userId"`
	Status          TransactionStatus `gorm:"size:20;not null;index" json:"status"`
	TransactionType TransactionType   `gorm:"size:20;not null;index" json:"transactionType"`
	Price           decimal.Decimal   `gorm:"type:numeric(36,18);not null;default:0" json:"price"`
	GasFee          decimal.Decimal   `gorm:"type:numeric(36,18);not null;default:0" json:"gasFee"`
	Currency        string            `gorm:"size:10;not null;default:ETH" json:"currency"`
	TxHash          *string           `gorm:"size:66;uniqueIndex" json:"txHash"`
	CreatedAt       time.Time         `gorm:"autoCreateTime;index" json:"createdAt"`
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == uuid.Nil {
		t.ID, err = uuid.NewV7()
	}
	return
}
