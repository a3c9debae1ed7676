package repository

import (
	"context"

	"anoa.com/nftmarketplace/internal/entity"
	"anoa.com/nftmarketplace/internal/modules/exhibition/dto"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ExhibitionRepository interface {
	Create(ctx context.Context, exhibition *entity.Exhibition) error
	FindPublic(ctx context.Context, filter dto.ExhibitionFilter, offset, limit int) ([]entity.Exhibition, int64, error)
	CountByStatus(ctx context.Context, creatorID uuid.UUID) (map[entity.ExhibitionStatus]int64, error)
	SumEngagement(ctx context.Context, creatorID uuid.UUID) (views int64, likes int64, err error)
	CountParticipants(ctx context.Context, creatorID uuid.UUID) (int64, error)
	FindParticipationsByUser(ctx context.Context, userID uuid.UUID) ([]entity.ExhibitionParticipation, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	AddViews(ctx context.Context, id uuid.UUID, delta int64) error
}

type exhibitionRepository struct {
	db *gorm.DB
}

func NewExhibitionRepository(db *gorm.DB) ExhibitionRepository {
	return &exhibitionRepository{db: db}
}

func (r *exhibitionRepository) Create(ctx context.Context, exhibition *entity.Exhibition) error {
	return r.db.WithContext(ctx).Create(exhibition).Error
}

func (r *exhibitionRepository) FindPublic(ctx context.Context, filter dto.ExhibitionFilter, offset, limit int) ([]entity.Exhibition, int64, error) {
	var exhibitions []entity.Exhibition
	var total int64

	query := r.db.WithContext(ctx).Where("status IN ?", filter.Statuses)

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}

	if err := query.Model(&entity.Exhibition{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Order("start_date ASC").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&exhibitions).Error; err != nil {
		return nil, 0, err
	}

	return exhibitions, total, nil
}

func (r *exhibitionRepository) CountByStatus(ctx context.Context, creatorID uuid.UUID) (map[entity.ExhibitionStatus]int64, error) {
	var rows []struct {
		Status entity.ExhibitionStatus
		Count  int64
	}

	if err := r.db.WithContext(ctx).
		Model(&entity.Exhibition{}).
		Select("status, COUNT(*) AS count").
		Where("creator_id = ?", creatorID).
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[entity.ExhibitionStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func (r *exhibitionRepository) SumEngagement(ctx context.Context, creatorID uuid.UUID) (int64, int64, error) {
	var row struct {
		Views int64
		Likes int64
	}

	err := r.db.WithContext(ctx).
		Model(&entity.Exhibition{}).
		Select("COALESCE(SUM(views), 0) AS views, COALESCE(SUM(likes), 0) AS likes").
		Where("creator_id = ?", creatorID).
		Scan(&row).Error
	return row.Views, row.Likes, err
}

func (r *exhibitionRepository) CountParticipants(ctx context.Context, creatorID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.ExhibitionParticipation{}).
		Joins("JOIN exhibitions ON exhibitions.id = exhibition_participations.exhibition_id").
		Where("exhibitions.creator_id = ?", creatorID).
		Count(&count).Error
	return count, err
}

func (r *exhibitionRepository) FindParticipationsByUser(ctx context.Context, userID uuid.UUID) ([]entity.ExhibitionParticipation, error) {
	var participations []entity.ExhibitionParticipation
	if err := r.db.WithContext(ctx).
		Preload("Exhibition").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&participations).Error; err != nil {
		return nil, err
	}
	return participations, nil
}

func (r *exhibitionRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.Exhibition{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

// AddViews returns gorm.ErrRecordNotFound when no exhibition has id.
func (r *exhibitionRepository) AddViews(ctx context.Context, id uuid.UUID, delta int64) error {
	res := r.db.WithContext(ctx).
		Model(&entity.Exhibition{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", delta))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
