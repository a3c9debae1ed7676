package dto

type QuickAction struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Href        string `json:"href"`
	Color       string `json:"color"`
	Enabled     bool   `json:"enabled"`
}
