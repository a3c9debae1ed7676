package service

import "anoa.com/nftmarketplace/internal/modules/dashboard/dto"

var quickActions = []dto.QuickAction{
	{
		ID:          "deposit",
		Title:       "Deposit",
		Description: "Add funds to your platform wallet",
		Icon:        "arrow-down-circle",
		Href:        "/wallet/deposit",
		Color:       "green",
		Enabled:     true,
	},
	{
		ID:          "withdraw",
		Title:       "Withdraw",
		Description: "Move funds to an external wallet",
		Icon:        "arrow-up-circle",
		Href:        "/wallet/withdraw",
		Color:       "blue",
		Enabled:     true,
	},
	{
		ID:          "mint",
		Title:       "Mint NFT",
		Description: "Create a new token from your artwork",
		Icon:        "sparkles",
		Href:        "/dashboard/mint",
		Color:       "purple",
		Enabled:     true,
	},
	{
		ID:          "create-auction",
		Title:       "Create Auction",
		Description: "List an NFT for english, dutch or sealed bidding",
		Icon:        "gavel",
		Href:        "/dashboard/auctions/new",
		Color:       "orange",
		Enabled:     true,
	},
}

type DashboardService interface {
	GetQuickActions() []dto.QuickAction
}

type dashboardService struct{}

func NewDashboardService() DashboardService {
	return &dashboardService{}
}

// GetQuickActions returns a copy so callers cannot alter the shared table.
func (s *dashboardService) GetQuickActions() []dto.QuickAction {
	return append([]dto.QuickAction(nil), quickActions...)
}
