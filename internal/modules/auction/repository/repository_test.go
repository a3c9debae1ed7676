package repository_test

import (
	"context"
	"testing"
	"time"

	"anoa.com/nftmarketplace/internal/entity"
	"anoa.com/nftmarketplace/internal/modules/auction/dto"
	"anoa.com/nftmarketplace/internal/modules/auction/repository"
	"anoa.com/nftmarketplace/internal/testutil"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuctionRepositoryAggregates(t *testing.T) {
	db := testutil.NewPostgres(t, &entity.Auction{}, &entity.Bid{})
	repo := repository.NewAuctionRepository(db)
	ctx := context.Background()

	newAuction := func(status entity.AuctionStatus, typ entity.AuctionType) *entity.Auction {
		a := &entity.Auction{
			SellerID:      uuid.New(),
			Title:         "Genesis #" + string(status),
			TokenID:       "1",
			Status:        status,
			Type:          typ,
			StartingPrice: decimal.RequireFromString("0.1"),
			StartTime:     time.Now().Add(-time.Hour),
			EndTime:       time.Now().Add(time.Hour),
		}
		require.NoError(t, db.Create(a).Error)
		return a
	}
	bid := func(a *entity.Auction, bidder uuid.UUID, amount string) {
		require.NoError(t, db.Create(&entity.Bid{
			AuctionID: a.ID,
			BidderID:  bidder,
			Amount:    decimal.RequireFromString(amount),
		}).Error)
	}

	live := newAuction(entity.AuctionLive, entity.AuctionEnglish)
	endedWithBids := newAuction(entity.AuctionEnded, entity.AuctionDutch)
	newAuction(entity.AuctionEnded, entity.AuctionEnglish)
	newAuction(entity.AuctionUpcoming, entity.AuctionVickrey)

	alice, bob := uuid.New(), uuid.New()
	bid(live, alice, "1.5")
	bid(live, alice, "2")
	bid(live, bob, "2.25")
	bid(endedWithBids, bob, "0.75")

	total, err := repo.CountAuctions(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)

	byStatus, err := repo.CountByStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), byStatus[entity.AuctionLive])
	assert.Equal(t, int64(2), byStatus[entity.AuctionEnded])

	bids, err := repo.CountBids(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), bids)

	volume, err := repo.SumBidAmounts(ctx)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("6.5").Equal(volume), volume.String())

	bidders, err := repo.CountActiveBidders(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), bidders)

	successful, err := repo.CountEndedWithBids(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), successful)

	list, filtered, err := repo.FindAll(ctx, dto.BuildAuctionFilter("ended", "all"), 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), filtered)
	assert.Len(t, list, 2)
}
