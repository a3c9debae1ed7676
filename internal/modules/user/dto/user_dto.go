package dto

import (
	"time"

	"anoa.com/nftmarketplace/internal/entity"
)

type RegisterInput struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	AccessToken string       `json:"accessToken"`
	TokenType   string       `json:"tokenType"`
	ExpiresAt   int64        `json:"expiresAt"`
	User        *entity.User `json:"user"`
}

type WalletResponse struct {
	AssignedWallet   *string    `json:"assignedWallet"`
	WalletAssignedAt *time.Time `json:"walletAssignedAt"`
}

type DepositAddressResponse struct {
	Address string `json:"address"`
	Chain   string `json:"chain"`
	ChainID int64  `json:"chainId"`
}
