package dto

import (
	"testing"

	"anoa.com/nftmarketplace/internal/entity"
	"github.com/stretchr/testify/assert"
)

func TestBuildPublicFilter(t *testing.T) {
	both := []entity.ExhibitionStatus{entity.ExhibitionActive, entity.ExhibitionUpcoming}

	tests := []struct {
		name         string
		status       string
		category     string
		wantStatuses []entity.ExhibitionStatus
		wantCategory string
	}{
		{"defaults", "", "", both, ""},
		{"active only", "active", "", []entity.ExhibitionStatus{entity.ExhibitionActive}, ""},
		{"upcoming only", "upcoming", "art", []entity.ExhibitionStatus{entity.ExhibitionUpcoming}, "art"},
		{"draft is never public", "draft", "", both, ""},
		{"ended is never public", "ended", "", both, ""},
		{"all status", "all", "all", both, ""},
		{"unknown status", "archived", "music", both, "music"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := BuildPublicFilter(tt.status, tt.category)
			assert.Equal(t, tt.wantStatuses, f.Statuses)
			assert.Equal(t, tt.wantCategory, f.Category)
		})
	}
}

func TestBuildPublicFilterDoesNotAliasDefaults(t *testing.T) {
	f := BuildPublicFilter("", "")
	f.Statuses[0] = entity.ExhibitionDraft

	assert.Equal(t, entity.ExhibitionActive, entity.PublicExhibitionStatuses[0])
}
