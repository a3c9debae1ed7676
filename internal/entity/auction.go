package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type AuctionStatus string

const (
	AuctionLive     AuctionStatus = "live"
	AuctionEnded    AuctionStatus = "ended"
	AuctionUpcoming AuctionStatus = "upcoming"
)

func (s AuctionStatus) IsValid() bool {
	switch s {
	case AuctionLive, AuctionEnded, AuctionUpcoming:
		return true
	}
	return false
}

type AuctionType string

const (
	AuctionEnglish AuctionType = "english"
	AuctionDutch   AuctionType = "dutch"
	AuctionVickrey AuctionType = "vickrey"
)

func (t AuctionType) IsValid() bool {
	switch t {
	case AuctionEnglish, AuctionDutch, AuctionVickrey:
		return true
	}
	return false
}

type Auction struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	SellerID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"sellerId"`
	Title         string          `gorm:"size:150;not null" json:"title"`
	TokenID       string          `gorm:"size:100;not null" json:"tokenId"`
	Status        AuctionStatus   `gorm:"size:20;not null;index" json:"status"`
	Type          AuctionType     `gorm:"size:20;not null" json:"type"`
	StartingPrice decimal.Decimal `gorm:"type:numeric(36,18);not null;default:0" json:"startingPrice"`
	StartTime     time.Time       `json:"startTime"`
	EndTime       time.Time       `json:"endTime"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"createdAt"`
}

func (a *Auction) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID, err = uuid.NewV7()
	}
	return
}

// Bid rows are append-only.
type Bid struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	AuctionID uuid.UUID       `gorm:"type:uuid;not null;index" json:"auctionId"`
	Auction   *Auction        `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	BidderID  uuid.UUID       `gorm:"type:uuid;not null;index" json:"bidderId"`
	Amount    decimal.Decimal `gorm:"type:numeric(36,18);not null" json:"amount"`
	CreatedAt time.Time       `gorm:"autoCreateTime" json:"createdAt"`
}

func (b *Bid) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == uuid.Nil {
		b.ID, err = uuid.NewV7()
	}
	return
}
