package bootstrap

import (
	"context"
	"errors"

	"anoa.com/nftmarketplace/internal/entity"
	wallet "anoa.com/nftmarketplace/internal/modules/wallet/service"
	"anoa.com/nftmarketplace/pkg/logger"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	devAdminEmail    = "admin@nftmarketplace.local"
	devAdminUsername = "admin"
	devAdminPassword = "admin12345"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.User{},
		&entity.PlatformWallet{},
		&entity.Exhibition{},
		&entity.ExhibitionParticipation{},
		&entity.Auction{},
		&entity.Bid{},
		&entity.Transaction{},
	)
}

// SeedAdminUser creates the development superadmin once.
func SeedAdminUser(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entity.User{}).
		Where("email = ?", devAdminEmail).
		Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		logger.Debug("admin user already exists, skipping seed")
		return nil
	}

	hashedPasswordBytes, err := bcrypt.GenerateFromPassword([]byte(devAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	adminUser := entity.User{
		Username:     devAdminUsername,
		Email:        devAdminEmail,
		PasswordHash: string(hashedPasswordBytes),
		Role:         entity.RoleSuperAdmin,
	}
	if err := db.Create(&adminUser).Error; err != nil {
		return err
	}

	logger.Info("admin user seeded",
		zap.String("email", devAdminEmail),
		zap.String("password", devAdminPassword),
	)
	return nil
}

// SeedWalletPool fills an empty pool with size wallets. A non-empty pool is left alone.
func SeedWalletPool(ctx context.Context, wallets wallet.WalletService, size int) error {
	if size <= 0 {
		return nil
	}

	stats, err := wallets.GetWalletStats(ctx)
	if err != nil {
		return err
	}
	if stats.TotalWallets > 0 {
		return nil
	}

	res, err := wallets.InitializeWallets(ctx, size)
	if err != nil {
		return errors.Join(errors.New("seed wallet pool"), err)
	}

	logger.Info("wallet pool seeded",
		zap.Int("created", res.Created),
		zap.Int("first_index", res.FirstIndex),
		zap.Int("last_index", res.LastIndex),
	)
	return nil
}
