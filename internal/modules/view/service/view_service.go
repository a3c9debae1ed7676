package view

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"anoa.com/nftmarketplace/pkg/apperror"
	"anoa.com/nftmarketplace/pkg/logger"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	pendingKey     = "pending:exhibition_views"
	viewerDedupTTL = time.Hour
)

// ViewCounter persists accumulated view counts.
type ViewCounter interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	AddViews(ctx context.Context, id uuid.UUID, delta int64) error
}

type ViewService interface {
	RecordView(ctx context.Context, exhibitionID uuid.UUID, viewer string) error
	SyncViews(ctx context.Context) (int, error)
	StartViewSyncWorker(ctx context.Context, interval time.Duration)
}

type viewService struct {
	redisClient *redis.Client
	counter     ViewCounter
}

// NewViewService buffers views in redis when redisClient is set; otherwise each view is written through.
func NewViewService(redisClient *redis.Client, counter ViewCounter) ViewService {
	return &viewService{
		redisClient: redisClient,
		counter:     counter,
	}
}

func viewsKey(id uuid.UUID) string {
	return fmt.Sprintf("exhibition:views:%s", id)
}

func viewerKey(id uuid.UUID, viewer string) string {
	return fmt.Sprintf("exhibition:viewer:%s:%s", id, viewer)
}

// RecordView counts one view per viewer per hour.
func (s *viewService) RecordView(ctx context.Context, exhibitionID uuid.UUID, viewer string) error {
	if s.redisClient == nil {
		return s.writeThrough(ctx, exhibitionID)
	}

	exists, err := s.counter.Exists(ctx, exhibitionID)
	if err != nil {
		return err
	}
	if !exists {
		return errExhibitionNotFound()
	}

	fresh, err := s.redisClient.SetNX(ctx, viewerKey(exhibitionID, viewer), "viewed", viewerDedupTTL).Result()
	if err != nil {
		return fmt.Errorf("failed to check viewer: %w", err)
	}
	if !fresh {
		return nil
	}

	pipe := s.redisClient.TxPipeline()
	pipe.Incr(ctx, viewsKey(exhibitionID))
	pipe.SAdd(ctx, pendingKey, exhibitionID.String())
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to buffer view: %w", err)
	}
	return nil
}

func (s *viewService) writeThrough(ctx context.Context, exhibitionID uuid.UUID) error {
	err := s.counter.AddViews(ctx, exhibitionID, 1)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errExhibitionNotFound()
	}
	return err
}

func errExhibitionNotFound() error {
	return apperror.New(http.StatusNotFound, "exhibition not found", apperror.ErrNotFound)
}

// SyncViews flushes buffered counters into the database and reports how many exhibitions were updated.
func (s *viewService) SyncViews(ctx context.Context) (int, error) {
	if s.redisClient == nil {
		return 0, nil
	}

	ids, err := s.redisClient.SMembers(ctx, pendingKey).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to read pending views: %w", err)
	}

	synced := 0
	for _, raw := range ids {
		if err := s.redisClient.SRem(ctx, pendingKey, raw).Err(); err != nil {
			return synced, err
		}

		id, err := uuid.Parse(raw)
		if err != nil {
			logger.Warn("dropping invalid exhibition id from view buffer", zap.String("id", raw))
			continue
		}

		count, err := s.redisClient.GetDel(ctx, viewsKey(id)).Int64()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			s.redisClient.SAdd(ctx, pendingKey, raw)
			return synced, err
		}
		if count == 0 {
			continue
		}

		if err := s.counter.AddViews(ctx, id, count); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			// put the count back so the next run retries it
			s.redisClient.IncrBy(ctx, viewsKey(id), count)
			s.redisClient.SAdd(ctx, pendingKey, raw)
			return synced, err
		}
		synced++
	}
	return synced, nil
}

func (s *viewService) StartViewSyncWorker(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			n, err := s.SyncViews(ctx)
			if err != nil {
				logger.ErrorCtx(ctx, err, zap.String("job", "exhibition_view_sync"))
				continue
			}
			if n > 0 {
				logger.Debug("exhibition views synced", zap.Int("exhibitions", n))
			}
		case <-ctx.Done():
			return
		}
	}
}
