package review

import "time"

// Audience selects which side of a completed request the review covers.
const (
	AudienceCustomer = "customer"
	AudienceProvider = "provider"
)

// Fallback display names for records whose author cannot be resolved.
const (
	anonymousCustomer = "Anonymous Customer"
	genericProvider   = "Service Provider"
)

// Review is one rating left on a completed request.
type Review struct {
	ID            string    `json:"id"`
	Audience      string    `json:"audience"`
	ReviewerID    string    `json:"reviewerId,omitempty"`
	ReviewerName  string    `json:"reviewerName"`
	RecipientID   string    `json:"recipientId,omitempty"`
	RecipientName string    `json:"recipientName"`
	Service       string    `json:"service,omitempty"`
	Rating        float64   `json:"rating"`
	Comment       string    `json:"comment,omitempty"`
	RatedAt       time.Time `json:"ratedAt,omitempty"`
	CreatedAt     time.Time `json:"createdAt,omitempty"`
}

// Summary aggregates reviews for one audience.
type Summary struct {
	Reviews       []Review `json:"reviews"`
	Total         int      `json:"total"`
	AverageRating float64  `json:"averageRating"`
}
