package ads

import "time"

// Mobile banner dimensions are fixed by the client layout.
const (
	defaultBgColor   = "#3B82F6"
	defaultTextColor = "#FFFFFF"
	defaultPosition  = "mobile"
	bannerWidth      = 40
	bannerHeight     = 20
)

// Ad represents a promotional banner shown in the mobile app.
type Ad struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Title       string    `json:"title" bson:"title,omitempty"`
	Description string    `json:"description" bson:"description,omitempty"`
	Details     string    `json:"details" bson:"details,omitempty"`
	Link        string    `json:"link" bson:"link,omitempty"`
	BgColor     string    `json:"bgColor" bson:"bgColor,omitempty"`
	TextColor   string    `json:"textColor" bson:"textColor,omitempty"`
	IsActive    bool      `json:"isActive" bson:"isActive"`
	Position    string    `json:"position" bson:"position,omitempty"`
	Width       int       `json:"width" bson:"width,omitempty"`
	Height      int       `json:"height" bson:"height,omitempty"`
	Clicks      int64     `json:"clicks" bson:"clicks"`
	Impressions int64     `json:"impressions" bson:"impressions"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updatedAt,omitempty"`
}

// Input captures the editable ad fields.
type Input struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Details     string `json:"details"`
	Link        string `json:"link"`
	BgColor     string `json:"bgColor"`
	TextColor   string `json:"textColor"`
	IsActive    *bool  `json:"isActive"`
	Position    string `json:"position"`
}

// Stats aggregates campaign performance across all ads.
type Stats struct {
	Total            int     `json:"total"`
	Active           int     `json:"active"`
	Inactive         int     `json:"inactive"`
	TotalClicks      int64   `json:"totalClicks"`
	TotalImpressions int64   `json:"totalImpressions"`
	CTR              float64 `json:"ctr"`
}
