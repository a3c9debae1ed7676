package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PlatformWallet struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Index          int             `gorm:"column:wallet_index;not null;uniqueIndex" json:"index"`
	Address        string          `gorm:"size:42;not null;uniqueIndex" json:"address"`
	Balance        decimal.Decimal `gorm:"type:numeric(36,18);not null;default:0" json:"balance"`
	IsAssigned     bool            `gorm:"not null;default:false;index" json:"isAssigned"`
	AssignedUserID *uuid.UUID      `gorm:"type:uuid;uniqueIndex" json:"assignedUserId"`
	AssignedAt     *time.Time      `json:"assignedAt"`
	CreatedAt      time.Time       `gorm:"autoCreateTime" json:"createdAt"`
}

func (w *PlatformWallet) BeforeCreate(tx *gorm.DB) (err error) {
	if w.ID == uuid.Nil {
		w.ID, err = uuid.NewV7()
	}
	return
}
