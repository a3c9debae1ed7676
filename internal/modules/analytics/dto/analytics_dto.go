package dto

import "strconv"

const DefaultDays = 7

type VisitorQuery struct {
	Days string `form:"days"`
}

// ParseDays falls back to DefaultDays for missing, malformed or non-positive input.
func ParseDays(raw string) int {
	days, err := strconv.Atoi(raw)
	if err != nil || days < 1 {
		return DefaultDays
	}
	return days
}

type VisitorEntry struct {
	Date      string `json:"date"`
	Visitors  int    `json:"visitors"`
	PageViews int    `json:"pageViews"`
	Duration  int    `json:"duration"`
}
