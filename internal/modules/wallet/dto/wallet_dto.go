package dto

import (
	"anoa.com/nftmarketplace/internal/entity"
	"github.com/shopspring/decimal"
)

const MaxInitializeCount = 1000

type WalletStats struct {
	TotalWallets     int64           `json:"totalWallets"`
	AssignedWallets  int64           `json:"assignedWallets"`
	AvailableWallets int64           `json:"availableWallets"`
	TotalBalance     decimal.Decimal `json:"totalBalance"`
}

type AdminWalletsResponse struct {
	Wallets []entity.PlatformWallet `json:"wallets"`
	Stats   WalletStats             `json:"stats"`
}

type InitializeWalletsRequest struct {
	Count int `json:"count" binding:"required,min=1,max=1000"`
}

type InitializeWalletsResponse struct {
	Created    int `json:"created"`
	FirstIndex int `json:"firstIndex"`
	LastIndex  int `json:"lastIndex"`
}
