package service

import (
	"fmt"
	"html"
	"strings"
	"time"

	"anoa.com/nftmarketplace/internal/entity"
	"anoa.com/nftmarketplace/pkg/logger"
	"github.com/meilisearch/meilisearch-go"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

const (
	ExhibitionsIndex = "exhibitions"
	signingKeyName   = "ExhibitionTenantTokenSigner"
	searchTokenTTL   = 24 * time.Hour
)

type MeiliSearchService interface {
	IndexExhibition(exhibition *entity.Exhibition) error
	DeleteExhibition(id string) error
	GenerateSearchToken() (string, error)
}

type meiliSearchService struct {
	client        meilisearch.ServiceManager
	signingKeyUID string
	signingKey    string
	sanitizer     *bluemonday.Policy
}

func NewMeiliSearchService(client meilisearch.ServiceManager) MeiliSearchService {
	s := &meiliSearchService{
		client:    client,
		sanitizer: bluemonday.StrictPolicy(),
	}
	s.initIndexes()
	s.initSigningKey()
	return s
}

func (s *meiliSearchService) initIndexes() {
	filterable := []any{"status", "category", "creator_id"}
	if _, err := s.client.Index(ExhibitionsIndex).UpdateFilterableAttributes(&filterable); err != nil {
		logger.Warn("failed to update exhibitions filterable attributes", zap.Error(err))
	}

	sortable := []string{"start_date", "created_at", "views", "likes"}
	if _, err := s.client.Index(ExhibitionsIndex).UpdateSortableAttributes(&sortable); err != nil {
		logger.Warn("failed to update exhibitions sortable attributes", zap.Error(err))
	}
}

func (s *meiliSearchService) initSigningKey() {
	resp, err := s.client.GetKeys(&meilisearch.KeysQuery{Limit: 20})
	if err != nil {
		logger.Warn("failed to list meilisearch keys", zap.Error(err))
		return
	}

	for _, key := range resp.Results {
		if key.Name == signingKeyName {
			s.signingKeyUID = key.UID
			s.signingKey = key.Key
			return
		}
	}

	key, err := s.client.CreateKey(&meilisearch.Key{
		Description: "Signs public exhibition search tokens",
		Name:        signingKeyName,
		Actions:     []string{"search"},
		Indexes:     []string{ExhibitionsIndex},
		ExpiresAt:   time.Now().AddDate(100, 0, 0),
	})
	if err != nil {
		logger.Warn("failed to create meilisearch signing key", zap.Error(err))
		return
	}

	s.signingKeyUID = key.UID
	s.signingKey = key.Key
	logger.Info("created meilisearch signing key")
}

type exhibitionDoc struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Status      string `json:"status"`
	CreatorID   string `json:"creator_id"`
	CoverImage  string `json:"cover_image_url"`
	Views       int64  `json:"views"`
	Likes       int64  `json:"likes"`
	StartDate   int64  `json:"start_date"`
	EndDate     int64  `json:"end_date"`
	CreatedAt   int64  `json:"created_at"`
}

// PlainText strips markup and collapses whitespace.
func PlainText(policy *bluemonday.Policy, content string) string {
	content = strings.ReplaceAll(content, "</p>", " ")
	content = strings.ReplaceAll(content, "<br>", " ")
	content = strings.ReplaceAll(content, "</div>", " ")

	cleaned := html.UnescapeString(policy.Sanitize(content))
	return strings.Join(strings.Fields(cleaned), " ")
}

func (s *meiliSearchService) IndexExhibition(exhibition *entity.Exhibition) error {
	doc := exhibitionDoc{
		ID:          exhibition.ID.String(),
		Title:       exhibition.Title,
		Description: PlainText(s.sanitizer, exhibition.Description),
		Category:    exhibition.Category,
		Status:      string(exhibition.Status),
		CreatorID:   exhibition.CreatorID.String(),
		Views:       exhibition.Views,
		Likes:       exhibition.Likes,
		StartDate:   exhibition.StartDate.Unix(),
		EndDate:     exhibition.EndDate.Unix(),
		CreatedAt:   exhibition.CreatedAt.Unix(),
	}
	if exhibition.CoverImageURL != nil {
		doc.CoverImage = *exhibition.CoverImageURL
	}

	task, err := s.client.Index(ExhibitionsIndex).AddDocuments([]exhibitionDoc{doc}, strPtr("id"))
	if err != nil {
		return err
	}
	logger.Debug("indexed exhibition",
		zap.String("exhibition_id", doc.ID),
		zap.Int64("task_uid", task.TaskUID),
	)
	return nil
}

func (s *meiliSearchService) DeleteExhibition(id string) error {
	_, err := s.client.Index(ExhibitionsIndex).DeleteDocument(id)
	return err
}

// GenerateSearchToken returns a tenant token that only matches public exhibitions.
func (s *meiliSearchService) GenerateSearchToken() (string, error) {
	if s.signingKeyUID == "" || s.signingKey == "" {
		return "", fmt.Errorf("signing key not initialized")
	}

	searchRules := map[string]any{
		ExhibitionsIndex: map[string]any{
			"filter": fmt.Sprintf("status IN ['%s', '%s']", entity.ExhibitionActive, entity.ExhibitionUpcoming),
		},
	}

	return s.client.GenerateTenantToken(s.signingKeyUID, searchRules, &meilisearch.TenantTokenOptions{
		APIKey:    s.signingKey,
		ExpiresAt: time.Now().Add(searchTokenTTL),
	})
}

func strPtr(s string) *string {
	return &s
}
