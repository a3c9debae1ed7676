package service

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"anoa.com/nftmarketplace/internal/entity"
	"anoa.com/nftmarketplace/internal/modules/exhibition/dto"
	"anoa.com/nftmarketplace/internal/modules/exhibition/repository"
	search "anoa.com/nftmarketplace/internal/modules/search/service"
	"anoa.com/nftmarketplace/pkg/apperror"
	commonDto "anoa.com/nftmarketplace/pkg/dto"
	"anoa.com/nftmarketplace/pkg/logger"
	"anoa.com/nftmarketplace/pkg/storage"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const coverFolder = "exhibitions"

type ExhibitionService interface {
	GetPublicExhibitions(ctx context.Context, query dto.PublicExhibitionQuery) ([]entity.Exhibition, commonDto.PaginationMeta, error)
	GetCreatorStats(ctx context.Context, creatorID uuid.UUID) (*dto.ExhibitionStats, error)
	CreateExhibition(ctx context.Context, creatorID uuid.UUID, req dto.CreateExhibitionRequest, cover *commonDto.UploadFile) (*entity.Exhibition, error)
}

type exhibitionService struct {
	repo         repository.ExhibitionRepository
	imageStorage storage.ImageStorage
	meili        search.MeiliSearchService
	sanitizer    *bluemonday.Policy
}

// NewExhibitionService accepts nil imageStorage and meili; uploads are then rejected and indexing skipped.
func NewExhibitionService(repo repository.ExhibitionRepository, imageStorage storage.ImageStorage, meili search.MeiliSearchService) ExhibitionService {
	return &exhibitionService{
		repo:         repo,
		imageStorage: imageStorage,
		meili:        meili,
		sanitizer:    bluemonday.StrictPolicy(),
	}
}

func (s *exhibitionService) GetPublicExhibitions(ctx context.Context, query dto.PublicExhibitionQuery) ([]entity.Exhibition, commonDto.PaginationMeta, error) {
	page := commonDto.ParsePagination(query.PaginationQuery)
	filter := dto.BuildPublicFilter(query.Status, query.Category)

	exhibitions, total, err := s.repo.FindPublic(ctx, filter, page.Skip(), page.Limit)
	if err != nil {
		return nil, commonDto.PaginationMeta{}, err
	}
	if exhibitions == nil {
		exhibitions = []entity.Exhibition{}
	}

	return exhibitions, commonDto.NewPaginationMeta(page, total), nil
}

func (s *exhibitionService) GetCreatorStats(ctx context.Context, creatorID uuid.UUID) (*dto.ExhibitionStats, error) {
	var (
		counts       map[entity.ExhibitionStatus]int64
		views, likes int64
		participants int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		counts, err = s.repo.CountByStatus(gctx, creatorID)
		return err
	})
	g.Go(func() (err error) {
		views, likes, err = s.repo.SumEngagement(gctx, creatorID)
		return err
	})
	g.Go(func() (err error) {
		participants, err = s.repo.CountParticipants(gctx, creatorID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("exhibition stats: %w", err)
	}

	stats := &dto.ExhibitionStats{
		Active:            counts[entity.ExhibitionActive],
		Upcoming:          counts[entity.ExhibitionUpcoming],
		Ended:             counts[entity.ExhibitionEnded],
		Draft:             counts[entity.ExhibitionDraft],
		TotalViews:        views,
		TotalLikes:        likes,
		TotalParticipants: participants,
	}
	for _, n := range counts {
		stats.Total += n
	}
	return stats, nil
}

func (s *exhibitionService) CreateExhibition(ctx context.Context, creatorID uuid.UUID, req dto.CreateExhibitionRequest, cover *commonDto.UploadFile) (*entity.Exhibition, error) {
	description := search.PlainText(s.sanitizer, req.Description)
	if len(description) < 10 {
		return nil, apperror.New(http.StatusBadRequest, "description must contain at least 10 characters of text", apperror.ErrInvalidInput)
	}

	status := entity.ExhibitionStatus(req.Status)
	if status == "" {
		status = entity.ExhibitionDraft
	}

	exhibition := &entity.Exhibition{
		CreatorID:   creatorID,
		Title:       strings.TrimSpace(req.Title),
		Description: description,
		Category:    req.Category,
		Status:      status,
		StartDate:   req.StartDate.UTC(),
		EndDate:     req.EndDate.UTC(),
	}
	if req.CoverImageURL != "" {
		coverURL := req.CoverImageURL
		exhibition.CoverImageURL = &coverURL
	}

	if cover != nil {
		coverURL, err := s.uploadCover(ctx, creatorID, cover)
		if err != nil {
			return nil, err
		}
		exhibition.CoverImageURL = &coverURL
	}

	if err := s.repo.Create(ctx, exhibition); err != nil {
		if exhibition.CoverImageURL != nil && cover != nil {
			s.discardCover(*exhibition.CoverImageURL)
		}
		return nil, err
	}

	if s.meili != nil {
		if err := s.meili.IndexExhibition(exhibition); err != nil {
			logger.Warn("failed to index exhibition",
				zap.String("exhibition_id", exhibition.ID.String()),
				zap.Error(err),
			)
		}
	}

	return exhibition, nil
}

func (s *exhibitionService) uploadCover(ctx context.Context, creatorID uuid.UUID, cover *commonDto.UploadFile) (string, error) {
	if s.imageStorage == nil {
		return "", apperror.New(http.StatusBadRequest, "image uploads are not configured", apperror.ErrBadRequest)
	}

	fileName := creatorID.String() + strings.ToLower(filepath.Ext(cover.FileName))
	url, err := s.imageStorage.UploadImage(ctx, cover.Reader, coverFolder, fileName)
	if err != nil {
		return "", apperror.New(http.StatusBadRequest, "failed to upload cover image", err)
	}
	return url, nil
}

func (s *exhibitionService) discardCover(url string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.imageStorage.DeleteImage(ctx, url); err != nil {
		logger.Warn("failed to delete orphaned cover", zap.String("url", url), zap.Error(err))
	}
}
