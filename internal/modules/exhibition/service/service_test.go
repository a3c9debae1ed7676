package service

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"anoa.com/nftmarketplace/internal/entity"
	"anoa.com/nftmarketplace/internal/modules/exhibition/dto"
	"anoa.com/nftmarketplace/pkg/apperror"
	commonDto "anoa.com/nftmarketplace/pkg/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	created      []*entity.Exhibition
	createErr    error
	gotFilter    dto.ExhibitionFilter
	gotOffset    int
	gotLimit     int
	public       []entity.Exhibition
	total        int64
	counts       map[entity.ExhibitionStatus]int64
	views, likes int64
	participants int64
	statsErr     error
}

func (f *fakeRepo) Create(_ context.Context, e *entity.Exhibition) error {
	if f.createErr != nil {
		return f.createErr
	}
	e.ID = uuid.New()
	f.created = append(f.created, e)
	return nil
}

func (f *fakeRepo) FindPublic(_ context.Context, filter dto.ExhibitionFilter, offset, limit int) ([]entity.Exhibition, int64, error) {
	f.gotFilter, f.gotOffset, f.gotLimit = filter, offset, limit
	return f.public, f.total, nil
}

func (f *fakeRepo) CountByStatus(context.Context, uuid.UUID) (map[entity.ExhibitionStatus]int64, error) {
	return f.counts, nil
}

func (f *fakeRepo) SumEngagement(context.Context, uuid.UUID) (int64, int64, error) {
	return f.views, f.likes, nil
}

func (f *fakeRepo) CountParticipants(context.Context, uuid.UUID) (int64, error) {
	return f.participants, f.statsErr
}

func (f *fakeRepo) FindParticipationsByUser(context.Context, uuid.UUID) ([]entity.ExhibitionParticipation, error) {
	return nil, nil
}

func (f *fakeRepo) Exists(context.Context, uuid.UUID) (bool, error) {
	return false, nil
}

func (f *fakeRepo) AddViews(context.Context, uuid.UUID, int64) error {
	return nil
}

type fakeStorage struct {
	uploaded []string
	deleted  []string
}

func (f *fakeStorage) UploadImage(_ context.Context, r io.Reader, folder, fileName string) (string, error) {
	if _, err := io.ReadAll(r); err != nil {
		return "", err
	}
	url := "https://res.cloudinary.com/demo/image/upload/v1/" + folder + "/" + fileName
	f.uploaded = append(f.uploaded, url)
	return url, nil
}

func (f *fakeStorage) DeleteImage(_ context.Context, url string) error {
	f.deleted = append(f.deleted, url)
	return nil
}

type fakeIndexer struct {
	indexed []uuid.UUID
	err     error
}

func (f *fakeIndexer) IndexExhibition(e *entity.Exhibition) error {
	f.indexed = append(f.indexed, e.ID)
	return f.err
}

func (f *fakeIndexer) DeleteExhibition(string) error { return nil }

func (f *fakeIndexer) GenerateSearchToken() (string, error) { return "token", nil }

func validRequest() dto.CreateExhibitionRequest {
	start := time.Date(2026, 11, 1, 10, 0, 0, 0, time.FixedZone("WIB", 7*3600))
	return dto.CreateExhibitionRequest{
		Title:       "  Genesis Drop ",
		Description: "<p>A curated <b>genesis</b> collection</p>",
		Category:    "art",
		StartDate:   start,
		EndDate:     start.Add(72 * time.Hour),
	}
}

func TestGetPublicExhibitions(t *testing.T) {
	repo := &fakeRepo{total: 25}
	svc := NewExhibitionService(repo, nil, nil)

	rows, meta, err := svc.GetPublicExhibitions(context.Background(), dto.PublicExhibitionQuery{
		PaginationQuery: commonDto.PaginationQuery{Page: "3", Limit: "10"},
		Status:          "draft",
		Category:        "all",
	})
	require.NoError(t, err)

	assert.NotNil(t, rows)
	assert.Equal(t, []entity.ExhibitionStatus{entity.ExhibitionActive, entity.ExhibitionUpcoming}, repo.gotFilter.Statuses)
	assert.Empty(t, repo.gotFilter.Category)
	assert.Equal(t, 20, repo.gotOffset)
	assert.Equal(t, 10, repo.gotLimit)
	assert.Equal(t, commonDto.PaginationMeta{Page: 3, Limit: 10, Total: 25, Pages: 3}, meta)
}

func TestGetPublicExhibitionsDefaults(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewExhibitionService(repo, nil, nil)

	_, meta, err := svc.GetPublicExhibitions(context.Background(), dto.PublicExhibitionQuery{
		PaginationQuery: commonDto.PaginationQuery{Page: "abc", Limit: "-4"},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, repo.gotOffset)
	assert.Equal(t, 12, repo.gotLimit)
	assert.Equal(t, 0, meta.Pages)
}

func TestGetCreatorStats(t *testing.T) {
	repo := &fakeRepo{
		counts: map[entity.ExhibitionStatus]int64{
			entity.ExhibitionActive: 2,
			entity.ExhibitionDraft:  1,
			entity.ExhibitionEnded:  4,
		},
		views:        120,
		likes:        7,
		participants: 9,
	}
	svc := NewExhibitionService(repo, nil, nil)

	stats, err := svc.GetCreatorStats(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, &dto.ExhibitionStats{
		Total:             7,
		Active:            2,
		Upcoming:          0,
		Ended:             4,
		Draft:             1,
		TotalViews:        120,
		TotalLikes:        7,
		TotalParticipants: 9,
	}, stats)
}

func TestGetCreatorStatsFailsOnAnyAggregate(t *testing.T) {
	repo := &fakeRepo{statsErr: errors.New("timeout")}
	svc := NewExhibitionService(repo, nil, nil)

	_, err := svc.GetCreatorStats(context.Background(), uuid.New())
	assert.Error(t, err)
}

func TestCreateExhibition(t *testing.T) {
	repo := &fakeRepo{}
	indexer := &fakeIndexer{}
	svc := NewExhibitionService(repo, nil, indexer)
	creator := uuid.New()

	e, err := svc.CreateExhibition(context.Background(), creator, validRequest(), nil)
	require.NoError(t, err)

	assert.Equal(t, creator, e.CreatorID)
	assert.Equal(t, "Genesis Drop", e.Title)
	assert.Equal(t, "A curated genesis collection", e.Description)
	assert.Equal(t, entity.ExhibitionDraft, e.Status)
	assert.Equal(t, time.UTC, e.StartDate.Location())
	assert.Nil(t, e.CoverImageURL)
	assert.Equal(t, []uuid.UUID{e.ID}, indexer.indexed)
}

func TestCreateExhibitionIndexFailureIsNotFatal(t *testing.T) {
	svc := NewExhibitionService(&fakeRepo{}, nil, &fakeIndexer{err: errors.New("meili down")})

	req := validRequest()
	req.Status = "upcoming"
	e, err := svc.CreateExhibition(context.Background(), uuid.New(), req, nil)
	require.NoError(t, err)
	assert.Equal(t, entity.ExhibitionUpcoming, e.Status)
}

func TestCreateExhibitionRejectsMarkupOnlyDescription(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewExhibitionService(repo, nil, nil)

	req := validRequest()
	req.Description = "<img src=x onerror=alert(1)><b>hi</b>"
	_, err := svc.CreateExhibition(context.Background(), uuid.New(), req, nil)

	assert.Equal(t, http.StatusBadRequest, apperror.MapErrorToStatus(err))
	assert.Empty(t, repo.created)
}

func TestCreateExhibitionWithCover(t *testing.T) {
	store := &fakeStorage{}
	svc := NewExhibitionService(&fakeRepo{}, store, nil)

	cover := &commonDto.UploadFile{Reader: strings.NewReader("png-bytes"), FileName: "Cover.PNG"}
	e, err := svc.CreateExhibition(context.Background(), uuid.New(), validRequest(), cover)
	require.NoError(t, err)

	require.Len(t, store.uploaded, 1)
	require.NotNil(t, e.CoverImageURL)
	assert.Equal(t, store.uploaded[0], *e.CoverImageURL)
	assert.True(t, strings.HasSuffix(*e.CoverImageURL, ".png"))
}

func TestCreateExhibitionDiscardsCoverWhenInsertFails(t *testing.T) {
	store := &fakeStorage{}
	svc := NewExhibitionService(&fakeRepo{createErr: errors.New("insert failed")}, store, nil)

	cover := &commonDto.UploadFile{Reader: strings.NewReader("png-bytes"), FileName: "cover.png"}
	_, err := svc.CreateExhibition(context.Background(), uuid.New(), validRequest(), cover)
	require.Error(t, err)
	assert.Equal(t, store.uploaded, store.deleted)
}

func TestCreateExhibitionCoverWithoutStorage(t *testing.T) {
	svc := NewExhibitionService(&fakeRepo{}, nil, nil)

	cover := &commonDto.UploadFile{Reader: strings.NewReader("x"), FileName: "cover.png"}
	_, err := svc.CreateExhibition(context.Background(), uuid.New(), validRequest(), cover)
	assert.Equal(t, http.StatusBadRequest, apperror.MapErrorToStatus(err))
}
