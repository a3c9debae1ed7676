package service

import (
	"context"
	"errors"
	"net/http"

	"anoa.com/nftmarketplace/internal/catalog"
	"anoa.com/nftmarketplace/internal/entity"
	"anoa.com/nftmarketplace/internal/modules/user/dto"
	"anoa.com/nftmarketplace/internal/modules/user/repository"
	walletService "anoa.com/nftmarketplace/internal/modules/wallet/service"
	"anoa.com/nftmarketplace/pkg/apperror"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WalletAssigner hands out platform wallets.
type WalletAssigner interface {
	AssignWallet(ctx context.Context, userID uuid.UUID) (*entity.PlatformWallet, error)
}

// ParticipationFinder lists a user's exhibition participations.
type ParticipationFinder interface {
	FindParticipationsByUser(ctx context.Context, userID uuid.UUID) ([]entity.ExhibitionParticipation, error)
}

type UserService interface {
	GetWallet(ctx context.Context, userID uuid.UUID) (*dto.WalletResponse, error)
	AssignWallet(ctx context.Context, userID uuid.UUID) (*dto.WalletResponse, error)
	GetDepositAddress(ctx context.Context, userID uuid.UUID) (*dto.DepositAddressResponse, error)
	GetExhibitionParticipations(ctx context.Context, userID uuid.UUID) ([]entity.ExhibitionParticipation, error)
}

type userService struct {
	repo           repository.UserRepository
	wallets        WalletAssigner
	participations ParticipationFinder
}

func NewUserService(repo repository.UserRepository, wallets WalletAssigner, participations ParticipationFinder) UserService {
	return &userService{
		repo:           repo,
		wallets:        wallets,
		participations: participations,
	}
}

func (s *userService) findUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.New(http.StatusNotFound, "user not found", apperror.ErrNotFound)
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) GetWallet(ctx context.Context, userID uuid.UUID) (*dto.WalletResponse, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &dto.WalletResponse{
		AssignedWallet:   user.AssignedWallet,
		WalletAssignedAt: user.WalletAssignedAt,
	}, nil
}

func (s *userService) AssignWallet(ctx context.Context, userID uuid.UUID) (*dto.WalletResponse, error) {
	wallet, err := s.wallets.AssignWallet(ctx, userID)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, apperror.New(http.StatusNotFound, "user not found", apperror.ErrNotFound)
		}
		return nil, err
	}

	address := wallet.Address
	return &dto.WalletResponse{
		AssignedWallet:   &address,
		WalletAssignedAt: wallet.AssignedAt,
	}, nil
}

// GetDepositAddress returns the user's assigned wallet on the primary chain.
func (s *userService) GetDepositAddress(ctx context.Context, userID uuid.UUID) (*dto.DepositAddressResponse, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.AssignedWallet == nil || *user.AssignedWallet == "" {
		return nil, apperror.New(http.StatusNotFound, "no deposit address assigned", apperror.ErrNotFound)
	}

	address, ok := walletService.NormalizeAddress(*user.AssignedWallet)
	if !ok {
		return nil, apperror.New(http.StatusInternalServerError, "stored deposit address is invalid", apperror.ErrInternal)
	}

	chain := catalog.PrimaryChain()
	return &dto.DepositAddressResponse{
		Address: address,
		Chain:   chain.ID,
		ChainID: chain.ChainID,
	}, nil
}

func (s *userService) GetExhibitionParticipations(ctx context.Context, userID uuid.UUID) ([]entity.ExhibitionParticipation, error) {
	participations, err := s.participations.FindParticipationsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if participations == nil {
		participations = []entity.ExhibitionParticipation{}
	}
	return participations, nil
}
