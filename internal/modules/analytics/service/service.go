package service

import (
	"math/rand/v2"
	"time"

	"anoa.com/nftmarketplace/internal/modules/analytics/dto"
)

const dateLayout = "2006-01-02"

// AnalyticsService serves synthetic visitor numbers until a tracking store exists.
type AnalyticsService interface {
	GetVisitors(days int) []dto.VisitorEntry
}

type analyticsService struct {
	now func() time.Time
}

func NewAnalyticsService() AnalyticsService {
	return &analyticsService{now: time.Now}
}

// GetVisitors returns one entry per day, oldest first, the last one being today in UTC.
func (s *analyticsService) GetVisitors(days int) []dto.VisitorEntry {
	if days < 1 {
		days = dto.DefaultDays
	}

	y, m, d := s.now().UTC().Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	entries := make([]dto.VisitorEntry, 0, days)
	for i := days - 1; i >= 0; i-- {
		visitors := 100 + rand.IntN(900)
		entries = append(entries, dto.VisitorEntry{
			Date:      today.AddDate(0, 0, -i).Format(dateLayout),
			Visitors:  visitors,
			PageViews: visitors + rand.IntN(visitors*3+1),
			Duration:  30 + rand.IntN(270),
		})
	}
	return entries
}
