package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"anoa.com/nftmarketplace/internal/entity"
	"anoa.com/nftmarketplace/internal/modules/exhibition/dto"
	commonDto "anoa.com/nftmarketplace/pkg/dto"
	"anoa.com/nftmarketplace/pkg/response"
	"anoa.com/nftmarketplace/pkg/validator"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubService struct {
	created   bool
	gotCover  string
	gotQuery  dto.PublicExhibitionQuery
	coverBody string
}

func (s *stubService) GetPublicExhibitions(_ context.Context, q dto.PublicExhibitionQuery) ([]entity.Exhibition, commonDto.PaginationMeta, error) {
	s.gotQuery = q
	return []entity.Exhibition{{Title: "Genesis", Status: entity.ExhibitionActive}},
		commonDto.PaginationMeta{Page: 1, Limit: 12, Total: 1, Pages: 1}, nil
}

func (s *stubService) GetCreatorStats(context.Context, uuid.UUID) (*dto.ExhibitionStats, error) {
	return &dto.ExhibitionStats{Total: 1, Active: 1}, nil
}

func (s *stubService) CreateExhibition(_ context.Context, creatorID uuid.UUID, req dto.CreateExhibitionRequest, cover *commonDto.UploadFile) (*entity.Exhibition, error) {
	s.created = true
	if cover != nil {
		s.gotCover = cover.FileName
		body, _ := io.ReadAll(cover.Reader)
		s.coverBody = string(body)
	}
	return &entity.Exhibition{ID: uuid.New(), CreatorID: creatorID, Title: req.Title}, nil
}

func setupRouter(t *testing.T, svc *stubService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, validator.Setup(dto.Validations))

	h := NewExhibitionHandler(svc)
	userID := uuid.NewString()

	r := gin.New()
	r.GET("/api/exhibitions/public", h.GetPublicExhibitions)
	authed := r.Group("/api/exhibitions", func(c *gin.Context) {
		c.Set(response.ContextUserIDKey, userID)
		c.Next()
	})
	authed.GET("/stats", h.GetStats)
	authed.POST("", h.CreateExhibition)
	return r
}

func TestGetPublicExhibitions(t *testing.T) {
	svc := &stubService{}
	r := setupRouter(t, svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/exhibitions/public?status=upcoming&category=art&page=2&limit=5", nil))
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "upcoming", svc.gotQuery.Status)
	assert.Equal(t, "art", svc.gotQuery.Category)
	assert.Equal(t, "2", svc.gotQuery.Page)
	assert.Equal(t, "5", svc.gotQuery.Limit)

	var body struct {
		Success    bool                     `json:"success"`
		Data       []map[string]any         `json:"data"`
		Pagination commonDto.PaginationMeta `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Len(t, body.Data, 1)
	assert.Equal(t, int64(1), body.Pagination.Total)
}

func TestCreateExhibitionValidation(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantField string
		wantMsg   string
	}{
		{
			name:      "end before start",
			body:      `{"title":"Genesis","description":"A long enough description","category":"art","startDate":"2026-11-02T00:00:00Z","endDate":"2026-11-01T00:00:00Z"}`,
			wantField: "endDate",
			wantMsg:   "End date must be after start date",
		},
		{
			name:      "end equals start",
			body:      `{"title":"Genesis","description":"A long enough description","category":"art","startDate":"2026-11-01T00:00:00Z","endDate":"2026-11-01T00:00:00Z"}`,
			wantField: "endDate",
			wantMsg:   "End date must be after start date",
		},
		{
			name:      "short title",
			body:      `{"title":"Ge","description":"A long enough description","category":"art","startDate":"2026-11-01T00:00:00Z","endDate":"2026-11-02T00:00:00Z"}`,
			wantField: "title",
			wantMsg:   "Title must be at least 3 characters",
		},
		{
			name:      "unknown category",
			body:      `{"title":"Genesis","description":"A long enough description","category":"memes","startDate":"2026-11-01T00:00:00Z","endDate":"2026-11-02T00:00:00Z"}`,
			wantField: "category",
			wantMsg:   "Category is not a supported category",
		},
		{
			name:      "status not creatable",
			body:      `{"title":"Genesis","description":"A long enough description","category":"art","status":"active","startDate":"2026-11-01T00:00:00Z","endDate":"2026-11-02T00:00:00Z"}`,
			wantField: "status",
			wantMsg:   "Status must be one of: draft, upcoming",
		},
		{
			name:      "missing description",
			body:      `{"title":"Genesis","category":"art","startDate":"2026-11-01T00:00:00Z","endDate":"2026-11-02T00:00:00Z"}`,
			wantField: "description",
			wantMsg:   "Description is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubService{}
			r := setupRouter(t, svc)

			req := httptest.NewRequest(http.MethodPost, "/api/exhibitions", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			require.Equal(t, http.StatusBadRequest, w.Code)
			assert.False(t, svc.created, "invalid input must not reach the service")

			var body response.Envelope
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.False(t, body.Success)
			assert.Equal(t, tt.wantMsg, body.Errors[tt.wantField])
		})
	}
}

func TestCreateExhibitionJSON(t *testing.T) {
	svc := &stubService{}
	r := setupRouter(t, svc)

	body := `{"title":"Genesis","description":"A long enough description","category":"art","status":"upcoming","startDate":"2026-11-01T00:00:00Z","endDate":"2026-11-02T00:00:00Z"}`
	req := httptest.NewRequest(http.MethodPost, "/api/exhibitions", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, svc.created)
	assert.Empty(t, svc.gotCover)
}

func TestCreateExhibitionMultipartWithCover(t *testing.T) {
	svc := &stubService{}
	r := setupRouter(t, svc)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fields := map[string]string{
		"title":       "Genesis",
		"description": "A long enough description",
		"category":    "photography",
		"startDate":   "2026-11-01T00:00:00Z",
		"endDate":     "2026-11-02T00:00:00Z",
	}
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	part, err := mw.CreateFormFile("cover", "cover.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("png-bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/exhibitions", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "cover.png", svc.gotCover)
	assert.Equal(t, "png-bytes", svc.coverBody)
}

func TestGetStats(t *testing.T) {
	r := setupRouter(t, &stubService{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/exhibitions/stats", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"totalParticipants":0`)
}
